// cmd/mission-manager/serve.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"design-missions/internal/catalog"
	awsclient "design-missions/internal/common/aws"
	"design-missions/internal/common/camunda"
	"design-missions/internal/common/config"
	"design-missions/internal/common/database"
	"design-missions/internal/common/logger"
	"design-missions/internal/common/observability"
	"design-missions/internal/customization"
	"design-missions/internal/mission"
	"design-missions/internal/optimization"
	"design-missions/internal/selection"
	"design-missions/internal/server"
	dm "design-missions/internal/workers/design/design-mission"
	st "design-missions/internal/workers/design/select-template"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the orchestrator, job workers and ops server",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := loadConfig(path)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// closers runs cleanup in reverse registration order.
type closers []func()

func (c *closers) add(fn func()) { *c = append(*c, fn) }

func (c closers) run() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	log.Info("starting mission manager", map[string]interface{}{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	})

	var cleanup closers
	defer cleanup.run()

	obs := observability.New(cfg.App.Name)
	cleanup.add(obs.Shutdown)

	var checks []server.Check

	cat, catChecks, err := loadCatalog(ctx, cfg, &cleanup)
	if err != nil {
		return err
	}
	checks = append(checks, catChecks...)
	log.Info("template catalog loaded", map[string]interface{}{
		"source":    cfg.Catalog.Source,
		"templates": cat.Len(),
	})

	var rdb *database.RedisClient
	if cfg.Database.Redis.Enabled || cfg.Events.Redis.Enabled {
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		cleanup.add(func() { _ = rdb.Close() })
		if err := rdb.Ping(ctx); err != nil {
			return err
		}
		checks = append(checks, server.Check{Name: "redis", Ping: rdb.Ping})
	}

	customizer := customization.NewGenerator()
	advisor := optimization.NewAdvisor()
	opts := []selection.Option{selection.WithLogger(log)}
	if rdb != nil && cfg.Database.Redis.Enabled {
		opts = append(opts, selection.WithCache(selection.NewRedisCache(rdb.Client, cfg.Orchestrator.SelectionCacheTTLDuration())))
	}
	engine := selection.NewEngine(cat, customizer, advisor, opts...)

	orch := mission.New(mission.Deps{
		Selector:      engine,
		Customizer:    customizer,
		Advisor:       advisor,
		Observability: obs,
	}, mission.ConfigFrom(cfg.Orchestrator), log)

	if err := attachSinks(ctx, cfg, orch, rdb, log); err != nil {
		_ = orch.Close(context.Background())
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Camunda.Enabled {
		zc, err := camunda.NewClient(ctx, camunda.ConfigFrom(cfg.Camunda))
		if err != nil {
			_ = orch.Close(context.Background())
			return err
		}
		cleanup.add(func() { _ = zc.Close() })
		checks = append(checks, server.Check{Name: "zeebe", Ping: zc.HealthCheck})

		workers := startWorkers(cfg, zc, engine, orch, log)
		g.Go(func() error {
			<-gctx.Done()
			for _, w := range workers {
				w.Stop()
			}
			return nil
		})
	}

	if rdb != nil && cfg.Events.Redis.Enabled {
		cmds, err := mission.RedisCommands(gctx, rdb.Client, cfg.Events.Redis.ControlChannel, log)
		if err != nil {
			_ = orch.Close(context.Background())
			return fmt.Errorf("subscribe control channel: %w", err)
		}
		g.Go(func() error {
			if err := orch.ServeControl(gctx, cmds); err != nil && gctx.Err() == nil {
				return err
			}
			return nil
		})
	}

	srv := server.New(orch, checks, log)
	shutdownTimeout := config.GetDuration(cfg.Server.ShutdownTimeout)
	g.Go(func() error {
		return srv.ListenAndServe(gctx, cfg.Server.Address, shutdownTimeout)
	})

	g.Go(func() error {
		<-gctx.Done()
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("draining orchestrator", nil)
		return orch.Close(closeCtx)
	})

	err = g.Wait()
	log.Info("mission manager stopped", nil)
	return err
}

func loadCatalog(ctx context.Context, cfg *config.Config, cleanup *closers) (*catalog.Catalog, []server.Check, error) {
	switch cfg.Catalog.Source {
	case "postgres":
		pg, err := database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return nil, nil, err
		}
		cleanup.add(func() { _ = pg.Close() })
		src, err := catalog.NewPostgresSource(pg.DB, cfg.Catalog.Table)
		if err != nil {
			return nil, nil, err
		}
		cat, err := catalog.Load(ctx, src)
		return cat, []server.Check{{Name: "postgres", Ping: pg.Ping}}, err
	case "elasticsearch":
		es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return nil, nil, err
		}
		cat, err := catalog.Load(ctx, catalog.NewElasticsearchSource(es.Client, cfg.Catalog.Index))
		return cat, []server.Check{{Name: "elasticsearch", Ping: es.Ping}}, err
	default:
		cat, err := catalog.Load(ctx, catalog.NewFileSource(cfg.Catalog.Path))
		return cat, nil, err
	}
}

func attachSinks(ctx context.Context, cfg *config.Config, orch *mission.Orchestrator, rdb *database.RedisClient, log logger.Logger) error {
	if cfg.Events.Log.Enabled {
		orch.AddSink(mission.NewLogSink(log))
	}
	if cfg.Events.Redis.Enabled && rdb != nil {
		orch.AddSink(mission.NewRedisSink(rdb.Client, cfg.Events.Redis.Channel))
	}
	if cfg.Events.SNS.Enabled {
		sns, err := awsclient.NewSNSClient(ctx, cfg.Events.SNS.Region, cfg.Events.SNS.TopicARN)
		if err != nil {
			return err
		}
		orch.AddSink(mission.NewSNSSink(sns))
	}
	return nil
}

func startWorkers(cfg *config.Config, zc *camunda.Client, engine *selection.Engine, orch *mission.Orchestrator, log logger.Logger) []*camunda.Worker {
	var workers []*camunda.Worker

	if config.IsWorkerEnabled(cfg, st.TaskType) {
		wc := config.GetWorkerConfig(cfg, st.TaskType)
		h := st.NewHandler(st.FromWorkerConfig(wc), engine, log)
		workers = append(workers, camunda.NewWorker(zc.Zeebe(), st.TaskType, maxJobs(cfg, wc), lockTimeout(wc), h, log))
	}
	if config.IsWorkerEnabled(cfg, dm.TaskType) {
		wc := config.GetWorkerConfig(cfg, dm.TaskType)
		h := dm.NewHandler(dm.FromWorkerConfig(wc), orch, log)
		workers = append(workers, camunda.NewWorker(zc.Zeebe(), dm.TaskType, maxJobs(cfg, wc), lockTimeout(wc), h, log))
	}
	return workers
}

func maxJobs(cfg *config.Config, wc config.WorkerConfig) int {
	if wc.MaxJobsActive > 0 {
		return wc.MaxJobsActive
	}
	if cfg.Camunda.MaxJobsActive > 0 {
		return cfg.Camunda.MaxJobsActive
	}
	return 5
}

// lockTimeout gives the broker some slack over the handler's own deadline.
func lockTimeout(wc config.WorkerConfig) time.Duration {
	if wc.Timeout <= 0 {
		return 0
	}
	return config.GetDuration(wc.Timeout) + 5*time.Second
}
