// Package cardinality reads the cardinality override table: multiplicities
// the structural model leaves unset, keyed by entity and attribute.
//
//	{"Study": {"cardinalities": {"versions": "1..*"}}}
//
// JSON and YAML are both accepted.
package cardinality

import (
	"context"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/dictmap/pkg/errors"
	"github.com/agentstation/dictmap/pkg/logging"
	"github.com/agentstation/dictmap/pkg/model"
	"github.com/agentstation/dictmap/pkg/sources"
)

// entry is the per-entity value of the override file.
type entry struct {
	Cardinalities map[string]string `yaml:"cardinalities" json:"cardinalities"`
}

// Parse reads an override table.
func Parse(r io.Reader) (model.Overrides, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", "", err)
	}
	var raw map[string]entry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}

	out := make(model.Overrides, len(raw))
	for name, e := range raw {
		if len(e.Cardinalities) > 0 {
			out[name] = e.Cardinalities
		}
	}
	return out, nil
}

// Load reads the override table at path. A missing file is not an error
// when optional is set; the table is then empty.
func Load(ctx context.Context, path string, optional bool) (model.Overrides, error) {
	logger := logging.FromContext(logging.WithSource(ctx, sources.CardinalitiesID.String()))

	f, err := os.Open(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			logger.Debug().Str("file", path).Msg("no cardinality overrides")
			return model.Overrides{}, nil
		}
		return nil, errors.WrapSource(sources.CardinalitiesID.String(), path, errors.WrapIO("open", path, err))
	}
	defer func() { _ = f.Close() }()

	overrides, err := Parse(f)
	if err != nil {
		return nil, errors.WrapSource(sources.CardinalitiesID.String(), path, err)
	}
	logger.Debug().Str("file", path).Int("entities", len(overrides)).Msg("cardinality overrides loaded")
	return overrides, nil
}
