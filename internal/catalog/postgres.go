package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"

	"design-missions/internal/models"
)

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*$`)

// PostgresSource reads templates from a table, ordered by its position column.
type PostgresSource struct {
	db    *sql.DB
	table string
}

func NewPostgresSource(db *sql.DB, table string) (*PostgresSource, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid catalog table name %q", table)
	}
	return &PostgresSource{db: db, table: table}, nil
}

func (s *PostgresSource) Name() string {
	return "postgres:" + s.table
}

func (s *PostgresSource) Load(ctx context.Context) ([]models.Template, error) {
	query := fmt.Sprintf(`
		SELECT id, name, sector, style, features,
		       primary_color, secondary_color, accent_color,
		       load_time, performance_score, conversion_rate
		FROM %s
		ORDER BY position, id`, s.table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		var (
			tpl      models.Template
			sector   string
			style    string
			features []byte
		)
		if err := rows.Scan(
			&tpl.ID, &tpl.Name, &sector, &style, &features,
			&tpl.Colors.Primary, &tpl.Colors.Secondary, &tpl.Colors.Accent,
			&tpl.Performance.LoadTime, &tpl.Performance.Score, &tpl.Performance.ConversionRate,
		); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		tpl.Sector = models.Sector(sector)
		tpl.Style = models.DesignStyle(style)
		if len(features) > 0 {
			if err := json.Unmarshal(features, &tpl.Features); err != nil {
				return nil, fmt.Errorf("decode features of %s: %w", tpl.ID, err)
			}
		}
		templates = append(templates, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}

	return templates, nil
}
