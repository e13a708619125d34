package search

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/opendatakr/foodsearch/internal/provider"
)

// Tuning holds the engine knobs that are worth adjusting per deployment:
// how many rows the exact-match upstreams are asked for when their catalog
// is filtered locally, and how far back the change ledgers are scanned.
type Tuning struct {
	CatalogWindow int `yaml:"catalog_window"`
	HistoryWindow int `yaml:"history_window"`
}

// DefaultTuning returns the built-in windows.
func DefaultTuning() Tuning {
	return Tuning{
		CatalogWindow: provider.DefaultCatalogWindow,
		HistoryWindow: provider.DefaultHistoryWindow,
	}
}

// LoadTuning reads tuning from a YAML file. Missing or zero values fall
// back to the defaults.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "search: read tuning %s", path)
	}

	// The YAML has a top-level "search" key.
	var wrapper struct {
		Search Tuning `yaml:"search"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "search: parse tuning")
	}

	t := wrapper.Search
	defaults := DefaultTuning()
	if t.CatalogWindow <= 0 {
		t.CatalogWindow = defaults.CatalogWindow
	}
	if t.HistoryWindow <= 0 {
		t.HistoryWindow = defaults.HistoryWindow
	}
	return &t, nil
}
