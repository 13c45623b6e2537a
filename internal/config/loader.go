package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Content file names inside a bundle directory.
const (
	FileConfig       = "config.yaml"
	FileAge          = "age.yaml"
	FileEvents       = "events.yaml"
	FileTalents      = "talents.yaml"
	FileAchievements = "achievements.yaml"
	FileCareers      = "careers.yaml"
	FileEndings      = "endings.yaml"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadAll reads every content file from dir and validates the result.
func LoadAll(dir string) (*Bundle, error) {
	var (
		gc GameConfig
		ac AgeConfig
		ec EventsConfig
		tc TalentsConfig
		hc AchievementsConfig
		cc Careers
		nc Endings
	)
	files := []struct {
		name string
		out  any
	}{
		{FileConfig, &gc},
		{FileAge, &ac},
		{FileEvents, &ec},
		{FileTalents, &tc},
		{FileAchievements, &hc},
		{FileCareers, &cc},
		{FileEndings, &nc},
	}
	for _, f := range files {
		if err := loadYAML(filepath.Join(dir, f.name), f.out); err != nil {
			return nil, fmt.Errorf("load content: %w", err)
		}
	}
	b := &Bundle{
		Config:       gc,
		Age:          ac.Ages,
		Events:       ec.Events,
		Talents:      tc.Talents,
		Achievements: hc.Achievements,
		Careers:      cc,
		Endings:      nc,
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}
	return b, nil
}

// Parse decodes a single-document bundle, with each section under its own
// top-level key. Handy for fixtures and embedded content.
func Parse(data []byte) (*Bundle, error) {
	var doc struct {
		Config       GameConfig    `yaml:"config"`
		Ages         []AgeEntry    `yaml:"ages"`
		Events       []Event       `yaml:"events"`
		Talents      []Talent      `yaml:"talents"`
		Achievements []Achievement `yaml:"achievements"`
		Careers      Careers       `yaml:"careers"`
		Endings      Endings       `yaml:"endings"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	b := &Bundle{
		Config:       doc.Config,
		Age:          doc.Ages,
		Events:       doc.Events,
		Talents:      doc.Talents,
		Achievements: doc.Achievements,
		Careers:      doc.Careers,
		Endings:      doc.Endings,
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}
	return b, nil
}
