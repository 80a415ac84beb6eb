// internal/catalog/catalog_test.go
package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	apperrors "design-missions/internal/common/errors"
	"design-missions/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func tpl(id string, sector models.Sector, style models.DesignStyle) models.Template {
	return models.Template{
		ID:     id,
		Name:   id,
		Sector: sector,
		Style:  style,
		Performance: models.TemplatePerformance{
			LoadTime:       "0.6s",
			Score:          90,
			ConversionRate: "40%",
		},
	}
}

type failingSource struct{}

func (failingSource) Name() string { return "failing" }

func (failingSource) Load(context.Context) ([]models.Template, error) {
	return nil, errors.New("connection refused")
}

// ==========================
// Catalog Tests
// ==========================

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		templates []models.Template
		wantErr   string
	}{
		{
			name:      "missing id",
			templates: []models.Template{tpl("", models.SectorRetail, models.StyleModern)},
			wantErr:   "no id",
		},
		{
			name: "duplicate id",
			templates: []models.Template{
				tpl("a", models.SectorRetail, models.StyleModern),
				tpl("a", models.SectorRetail, models.StyleBold),
			},
			wantErr: "duplicate",
		},
		{
			name:      "unknown sector",
			templates: []models.Template{tpl("a", "bakery", models.StyleModern)},
			wantErr:   "unknown sector",
		},
		{
			name:      "unknown style",
			templates: []models.Template{tpl("a", models.SectorRetail, "grunge")},
			wantErr:   "unknown style",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.templates)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCatalog_BySectorKeepsOrder(t *testing.T) {
	c, err := New([]models.Template{
		tpl("z-retail", models.SectorRetail, models.StyleModern),
		tpl("a-health", models.SectorHealth, models.StyleModern),
		tpl("b-retail", models.SectorRetail, models.StyleClassic),
	})
	require.NoError(t, err)

	retail := c.BySector(models.SectorRetail)
	require.Len(t, retail, 2)
	assert.Equal(t, "z-retail", retail[0].ID)
	assert.Equal(t, "b-retail", retail[1].ID)

	assert.Empty(t, c.BySector(models.SectorFitness))
	assert.Equal(t, []models.Sector{models.SectorRetail, models.SectorHealth}, c.Sectors())
	assert.Equal(t, 3, c.Len())

	got, ok := c.Get("a-health")
	assert.True(t, ok)
	assert.Equal(t, models.SectorHealth, got.Sector)
	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	c, err := New([]models.Template{tpl("a", models.SectorRetail, models.StyleModern)})
	require.NoError(t, err)

	all := c.All()
	all[0].ID = "mutated"

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)
}

func TestCatalog_FeaturesAreDetached(t *testing.T) {
	withFeatures := tpl("a", models.SectorRetail, models.StyleModern)
	withFeatures.Features = []string{"Online Shop", "Newsletter"}
	c, err := New([]models.Template{withFeatures})
	require.NoError(t, err)

	withFeatures.Features[0] = "from input"
	c.All()[0].Features[0] = "from All"
	c.BySector(models.SectorRetail)[0].Features[0] = "from BySector"
	got, _ := c.Get("a")
	got.Features[0] = "from Get"

	again, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []string{"Online Shop", "Newsletter"}, again.Features)
}

func TestDefault_CoversEverySector(t *testing.T) {
	c := Default()

	assert.Equal(t, models.Sectors, c.Sectors())
	first := c.BySector(models.SectorRestaurant)[0]
	assert.Equal(t, "restaurant-bistro-modern", first.ID)
	assert.Equal(t, models.StyleModern, first.Style)
	assert.Equal(t, "48%", first.Performance.ConversionRate)
	assert.NotEmpty(t, first.Features)
}

func TestLoad_WrapsSourceErrors(t *testing.T) {
	_, err := Load(context.Background(), failingSource{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeCatalogLoadFailed))
}

// ==========================
// File Source Tests
// ==========================

func TestFileSource_JSONAndYAML(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"templates":[
		{"id":"j1","name":"J","sector":"beauty","style":"elegant","features":["Online Booking"],
		 "colors":{"primary":"#000000","secondary":"#111111","accent":"#222222"},
		 "performance":{"loadTime":"0.5s","score":90,"conversionRate":"50%"}}]}`), 0o600))

	yamlPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`templates:
  - id: y1
    name: Y
    sector: fitness
    style: bold
    features: [Class Schedule]
    performance: {loadTime: "0.6s", score: 91, conversionRate: "45%"}
`), 0o600))

	c, err := Load(context.Background(), NewFileSource(jsonPath))
	require.NoError(t, err)
	got, ok := c.Get("j1")
	require.True(t, ok)
	assert.Equal(t, []string{"Online Booking"}, got.Features)

	c, err = Load(context.Background(), NewFileSource(yamlPath))
	require.NoError(t, err)
	got, ok = c.Get("y1")
	require.True(t, ok)
	assert.Equal(t, models.StyleBold, got.Style)
	assert.Equal(t, 91, got.Performance.Score)

	_, err = Load(context.Background(), NewFileSource(filepath.Join(dir, "missing.yaml")))
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeCatalogLoadFailed))
}

// ==========================
// Postgres Source Tests
// ==========================

func TestPostgresSource_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	columns := []string{
		"id", "name", "sector", "style", "features",
		"primary_color", "secondary_color", "accent_color",
		"load_time", "performance_score", "conversion_rate",
	}
	mock.ExpectQuery(regexp.QuoteMeta("FROM design_templates")).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("p1", "Clinic", "health", "professional", []byte(`["Online Booking","Practitioner Profiles"]`),
				"#0EA5E9", "#E0F2FE", "#0369A1", "0.5s", 97, "51%").
			AddRow("p2", "Studio", "fitness", "bold", []byte(`[]`),
				"#111111", "#FF3B30", "#FFFFFF", "0.6s", 92, "57%"))

	src, err := NewPostgresSource(db, "design_templates")
	require.NoError(t, err)

	c, err := Load(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	p1, ok := c.Get("p1")
	require.True(t, ok)
	assert.Equal(t, []string{"Online Booking", "Practitioner Profiles"}, p1.Features)
	assert.Equal(t, "#0EA5E9", p1.Colors.Primary)
	assert.Equal(t, 97, p1.Performance.Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSource_RejectsUnsafeTable(t *testing.T) {
	_, err := NewPostgresSource(nil, "templates; DROP TABLE users")
	assert.Error(t, err)
}

func TestPostgresSource_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("relation does not exist"))

	src, err := NewPostgresSource(db, "design_templates")
	require.NoError(t, err)

	_, err = Load(context.Background(), src)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeCatalogLoadFailed))
	assert.Contains(t, err.Error(), "postgres:design_templates")
}

// ==========================
// Elasticsearch Source Tests
// ==========================

func newFakeElasticsearch(t *testing.T, status int, body string) *elasticsearch.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return client
}

func TestElasticsearchSource_Load(t *testing.T) {
	client := newFakeElasticsearch(t, http.StatusOK, `{"hits":{"hits":[
		{"_id":"1","_source":{"id":"e1","name":"Agency","sector":"services","style":"modern",
		 "features":["Contact Form","Case Studies"],"performance":{"loadTime":"0.5s","score":96,"conversionRate":"44%"}}},
		{"_id":"2","_source":{"id":"e2","name":"Legal","sector":"services","style":"classic",
		 "features":["Practice Areas"],"performance":{"loadTime":"0.8s","score":89,"conversionRate":"33%"}}}
	]}}`)

	c, err := Load(context.Background(), NewElasticsearchSource(client, "design-templates"))
	require.NoError(t, err)

	services := c.BySector(models.SectorServices)
	require.Len(t, services, 2)
	assert.Equal(t, "e1", services[0].ID)
	assert.Equal(t, []string{"Contact Form", "Case Studies"}, services[0].Features)
}

func TestElasticsearchSource_ErrorStatus(t *testing.T) {
	client := newFakeElasticsearch(t, http.StatusNotFound, `{"error":"index_not_found_exception"}`)

	_, err := Load(context.Background(), NewElasticsearchSource(client, "missing"))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeCatalogLoadFailed))
}
