// internal/selection/engine.go
package selection

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"design-missions/internal/catalog"
	apperrors "design-missions/internal/common/errors"
	"design-missions/internal/common/logger"
	"design-missions/internal/common/metrics"
	"design-missions/internal/customization"
	"design-missions/internal/models"
	"design-missions/internal/optimization"
)

// Choice is the outcome of ranking, before customization and optimization.
type Choice struct {
	Primary      models.Template
	Alternatives []models.Template
	MatchScore   int
	Scores       []models.TemplateScore
	Required     []string
}

// Cache stores full selection results. A miss returns (nil, nil).
type Cache interface {
	Get(ctx context.Context, key string) (*models.SmartSelectionResult, error)
	Set(ctx context.Context, key string, result *models.SmartSelectionResult) error
}

type Engine struct {
	catalog    *catalog.Catalog
	customizer *customization.Generator
	advisor    *optimization.Advisor
	cache      Cache
	logger     logger.Logger
}

type Option func(*Engine)

func WithCache(c Cache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

func NewEngine(cat *catalog.Catalog, customizer *customization.Generator, advisor *optimization.Advisor, opts ...Option) *Engine {
	e := &Engine{
		catalog:    cat,
		customizer: customizer,
		advisor:    advisor,
		logger:     logger.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rank scores every template of the requested sector, best first.
// Equal scores are ordered by template id.
func (e *Engine) Rank(req models.BusinessRequirements) ([]models.TemplateScore, error) {
	_, scores, err := e.rank(req)
	return scores, err
}

func (e *Engine) rank(req models.BusinessRequirements) ([]models.Template, []models.TemplateScore, error) {
	candidates := e.catalog.BySector(req.Sector)
	if len(candidates) == 0 {
		return nil, nil, apperrors.NewTemplateNotFoundError(string(req.Sector))
	}

	required := requiredFeatures(req)
	type ranked struct {
		tpl   models.Template
		score models.TemplateScore
	}
	items := make([]ranked, len(candidates))
	for i, tpl := range candidates {
		items[i] = ranked{tpl: tpl, score: scoreTemplate(tpl, req, required)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].score.Score != items[j].score.Score {
			return items[i].score.Score > items[j].score.Score
		}
		return items[i].tpl.ID < items[j].tpl.ID
	})

	templates := make([]models.Template, len(items))
	scores := make([]models.TemplateScore, len(items))
	for i, it := range items {
		templates[i] = it.tpl
		scores[i] = it.score
	}
	return templates, scores, nil
}

// Choose ranks the sector and keeps the primary template and up to three alternatives.
func (e *Engine) Choose(ctx context.Context, req models.BusinessRequirements) (*Choice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	templates, scores, err := e.rank(req)
	if err != nil {
		return nil, err
	}

	n := len(templates) - 1
	if n > maxAlternatives {
		n = maxAlternatives
	}

	return &Choice{
		Primary:      templates[0],
		Alternatives: append([]models.Template(nil), templates[1:1+n]...),
		MatchScore:   scores[0].Score,
		Scores:       scores,
		Required:     requiredFeatures(req),
	}, nil
}

// SelectOptimalTemplate ranks, customizes and optimizes in one call, consulting the cache first.
func (e *Engine) SelectOptimalTemplate(ctx context.Context, req models.BusinessRequirements, business models.BusinessInfo) (*models.SmartSelectionResult, error) {
	key := CacheKey(req, business)
	if e.cache != nil {
		cached, err := e.cache.Get(ctx, key)
		switch {
		case err != nil:
			e.logger.Warn("selection cache lookup failed", map[string]interface{}{
				"key":   key,
				"error": err,
			})
		case cached != nil:
			metrics.SelectionCacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.SelectionCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	choice, err := e.Choose(ctx, req)
	if err != nil {
		return nil, err
	}

	if business.Sector == "" {
		business.Sector = req.Sector
	}
	style := StyleFor(req, choice)
	custom := e.customizer.Generate(business, style, req.TargetAudience)
	opts, _ := e.advisor.Optimize(choice.Primary, business, req.TargetAudience)

	result := Compose(choice, req, custom, optimization.Strings(opts))

	e.logger.Info("template selected", map[string]interface{}{
		"sector":     req.Sector,
		"templateId": result.Primary.ID,
		"matchScore": result.MatchScore,
	})

	if e.cache != nil {
		if err := e.cache.Set(ctx, key, result); err != nil {
			e.logger.Warn("selection cache store failed", map[string]interface{}{
				"key":   key,
				"error": err,
			})
		}
	}
	return result, nil
}

// StyleFor is the style the customization is generated for: the requested one,
// or the primary template's when none was requested.
func StyleFor(req models.BusinessRequirements, choice *Choice) models.DesignStyle {
	if req.PreferredStyle != "" {
		return req.PreferredStyle
	}
	return choice.Primary.Style
}

// Compose assembles the selection result from its parts.
func Compose(choice *Choice, req models.BusinessRequirements, custom models.CustomizationResult, optimizations []string) *models.SmartSelectionResult {
	return &models.SmartSelectionResult{
		Primary:           choice.Primary,
		Alternatives:      choice.Alternatives,
		MatchScore:        choice.MatchScore,
		Customization:     custom,
		Optimizations:     optimizations,
		EstimatedDelivery: EstimatedDelivery(req.Timeframe),
		Reasoning:         reasoning(choice, req),
		Scores:            choice.Scores,
	}
}

func EstimatedDelivery(tf models.Timeframe) string {
	if d, ok := estimatedDelivery[tf]; ok {
		return d
	}
	return estimatedDelivery[models.TimeframeStandard]
}

func reasoning(choice *Choice, req models.BusinessRequirements) string {
	best := choice.Scores[0]
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s) scored %d/100 among %d %s templates.",
		choice.Primary.Name, choice.Primary.Style, choice.MatchScore, len(choice.Scores), req.Sector)

	if req.PreferredStyle != "" && choice.Primary.Style != req.PreferredStyle {
		fmt.Fprintf(&b, " No %s template ranked first; %s is the closest available style (affinity %.0f%%).",
			req.PreferredStyle, choice.Primary.Style, best.StyleMatch*100)
	} else if req.PreferredStyle != "" {
		fmt.Fprintf(&b, " It matches the requested %s style.", req.PreferredStyle)
	}

	if best.BudgetFit == 1 {
		fmt.Fprintf(&b, " The style fits the %s budget.", req.Budget)
	} else {
		fmt.Fprintf(&b, " The style stretches the %s budget.", req.Budget)
	}

	if len(choice.Required) > 0 {
		fmt.Fprintf(&b, " Covers %.0f%% of the expected features (%s).",
			best.FeatureFit*100, strings.Join(choice.Required, ", "))
	}

	fmt.Fprintf(&b, " Performance index %.0f%%.", best.Performance*100)
	return b.String()
}

// CacheKey hashes the inputs that influence a selection result.
func CacheKey(req models.BusinessRequirements, business models.BusinessInfo) string {
	payload, _ := json.Marshal(struct {
		Requirements models.BusinessRequirements `json:"r"`
		Business     models.BusinessInfo         `json:"b"`
	}{req, business})
	sum := sha256.Sum256(payload)
	return "selection:" + hex.EncodeToString(sum[:])
}
