package bmsconv

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// TableConfig is the YAML form of a rule table
//
//	signals:
//	  - name: pack_voltage
//	    factor: 0.01
//	    offset: 0
//	    width: 16
type TableConfig struct {
	Signals []Rule `yaml:"signals"`
}

// LoadTable reads a YAML rule table and returns the built-in rules overridden/extended by it
func LoadTable(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read rule table: %w", err)
	}
	return parseTable(data)
}

// LoadTableFile is LoadTable for a file path
func LoadTableFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule table: %w", err)
	}
	return parseTable(data)
}

func parseTable(data []byte) (*Table, error) {
	var cfg TableConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse rule table: %w", err)
	}
	return NewTable(cfg.Signals...)
}
