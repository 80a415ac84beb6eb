package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"design-missions/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var builtinTemplates []byte

type catalogFile struct {
	Templates []models.Template `json:"templates" yaml:"templates"`
}

// FileSource reads a YAML or JSON catalog file. An empty path selects the built-in catalog.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Name() string {
	if s.Path == "" {
		return "builtin"
	}
	return "file:" + s.Path
}

func (s *FileSource) Load(_ context.Context) ([]models.Template, error) {
	if s.Path == "" {
		return decodeYAML(builtinTemplates)
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(s.Path), ".json") {
		var f catalogFile
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode catalog json: %w", err)
		}
		return f.Templates, nil
	}
	return decodeYAML(data)
}

func decodeYAML(data []byte) ([]models.Template, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog yaml: %w", err)
	}
	return f.Templates, nil
}

// Default loads the built-in catalog. It panics only if the embedded file is broken.
func Default() *Catalog {
	templates, err := decodeYAML(builtinTemplates)
	if err != nil {
		panic(fmt.Sprintf("builtin catalog: %v", err))
	}
	c, err := New(templates)
	if err != nil {
		panic(fmt.Sprintf("builtin catalog: %v", err))
	}
	return c
}
