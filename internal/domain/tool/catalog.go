package tool

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCatalog читает YAML-каталог инструментов.
// Статус по умолчанию - active, видимость по умолчанию - публичная.
func LoadCatalog(path string) ([]Tool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) ([]Tool, error) {
	var raw struct {
		Tools []struct {
			Tool     `yaml:",inline"`
			IsPublic *bool `yaml:"is_public"`
		} `yaml:"tools"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	tools := make([]Tool, 0, len(raw.Tools))
	for _, entry := range raw.Tools {
		t := entry.Tool
		if t.Status == "" {
			t.Status = StatusActive
		}
		t.IsPublic = entry.IsPublic == nil || *entry.IsPublic
		tools = append(tools, t)
	}
	return tools, nil
}
