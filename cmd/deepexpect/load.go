package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// loadDocument reads & decodes a document into the generic tree types the
// checker operates on. YAML is picked by file extension, everything else is
// treated as JSON
func loadDocument(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var v interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, errors.Wrapf(err, "parsing yaml document %s", path)
		}
	default:
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, errors.Wrapf(err, "parsing json document %s", path)
		}
	}
	return v, nil
}
