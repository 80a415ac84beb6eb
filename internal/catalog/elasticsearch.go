package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"design-missions/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
)

const maxIndexedTemplates = 1000

// ElasticsearchSource reads every template document of an index.
type ElasticsearchSource struct {
	client *elasticsearch.Client
	index  string
}

func NewElasticsearchSource(client *elasticsearch.Client, index string) *ElasticsearchSource {
	return &ElasticsearchSource{client: client, index: index}
}

func (s *ElasticsearchSource) Name() string {
	return "elasticsearch:" + s.index
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source models.Template `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (s *ElasticsearchSource) Load(ctx context.Context) ([]models.Template, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{"match_all": map[string]interface{}{}},
		"size":  maxIndexedTemplates,
		"sort": []interface{}{
			map[string]interface{}{"position": map[string]interface{}{"order": "asc", "unmapped_type": "long"}},
			map[string]interface{}{"id": map[string]interface{}{"order": "asc", "unmapped_type": "keyword"}},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("encode search body: %w", err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("search templates: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search templates: %s", res.Status())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	templates := make([]models.Template, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		templates = append(templates, hit.Source)
	}
	return templates, nil
}
