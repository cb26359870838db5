package model

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Decode reads a file description from YAML or JSON bytes. JSON is a
// YAML subset, so one decoder covers both.
func Decode(data []byte) (*FileModel, error) {
	var f FileModel
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.WithMessage(err, "decode file description")
	}
	return &f, nil
}

// Load reads and decodes a file description from path.
func Load(path string) (*FileModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessagef(err, "read %s", path)
	}
	return Decode(data)
}
