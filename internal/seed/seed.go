// Package seed provides the initial record set the table starts with.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ytget/record-table/internal/model"
)

//go:embed records.yaml
var defaultRecords []byte

type document struct {
	Records []model.Record `yaml:"records"`
}

// Default returns the embedded initial records
func Default() ([]model.Record, error) {
	return Parse(defaultRecords)
}

// Parse decodes a YAML document with a top-level "records" list
func Parse(data []byte) ([]model.Record, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed records: %w", err)
	}
	return doc.Records, nil
}
