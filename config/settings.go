package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Grade is one school-grade entry of the settings file.
type Grade struct {
	Generation  int    `yaml:"generation" json:"generation"`
	DisplayName string `yaml:"display_name" json:"display_name"`
}

// Grades maps the five school grades onto club generations.
type Grades struct {
	Senior2 Grade `yaml:"senior2" json:"senior2"`
	Senior1 Grade `yaml:"senior1" json:"senior1"`
	Junior3 Grade `yaml:"junior3" json:"junior3"`
	Junior2 Grade `yaml:"junior2" json:"junior2"`
	Junior1 Grade `yaml:"junior1" json:"junior1"`
}

// Settings is the static organization data read from settings.yml.
type Settings struct {
	Grade Grades `yaml:"grade" json:"grade"`
}

// LoadSettings reads and parses the settings file at path.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &s, nil
}
