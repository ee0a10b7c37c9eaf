// Package dictmap reconciles the structural model, the terminology table
// and the wire schema of a domain model into a data dictionary, a structure
// document and an alignment report, and diffs two releases of the
// structural model.
package dictmap

import (
	"context"

	"github.com/agentstation/dictmap/internal/sources/api"
	"github.com/agentstation/dictmap/internal/sources/cardinality"
	"github.com/agentstation/dictmap/internal/sources/terminology"
	"github.com/agentstation/dictmap/internal/sources/xmi"
	"github.com/agentstation/dictmap/pkg/aligner"
	"github.com/agentstation/dictmap/pkg/differ"
	"github.com/agentstation/dictmap/pkg/errors"
	"github.com/agentstation/dictmap/pkg/logging"
	"github.com/agentstation/dictmap/pkg/model"
	"github.com/agentstation/dictmap/pkg/sources"
	"github.com/agentstation/dictmap/pkg/structure"
)

// Dictmap runs one reconciliation pass over the configured inputs.
type Dictmap interface {
	// Dictionary returns the structural model enriched with terminology,
	// cardinality overrides and inherited attributes
	Dictionary(ctx context.Context) (model.Model, error)

	// Structure merges the enriched model with the wire schema
	Structure(ctx context.Context) (*structure.Document, error)

	// Align compares class and attribute names across the three sources
	Align(ctx context.Context) (*aligner.Result, error)

	// Diff compares the previous release of the structural model with the current one
	Diff(ctx context.Context) (*differ.Changeset, error)

	// Warnings returns the recoverable conditions met by the last operation
	Warnings() []model.Warning
}

// dictmap is the internal implementation of the Dictmap interface
type dictmap struct {
	config   *config
	warnings []model.Warning
}

// New creates a new Dictmap instance with the given options
func New(opts ...Option) (Dictmap, error) {
	dm := &dictmap{config: defaultConfig()}
	for _, opt := range opts {
		if err := opt(dm.config); err != nil {
			return nil, errors.NewConfigError("dictmap", "applying options", err)
		}
	}
	return dm, nil
}

// Warnings returns the recoverable conditions met by the last operation
func (d *dictmap) Warnings() []model.Warning {
	return d.warnings
}

// Dictionary returns the enriched structural model
func (d *dictmap) Dictionary(ctx context.Context) (model.Model, error) {
	d.warnings = nil
	ctx = logging.WithOperation(ctx, "dictionary")
	return d.enriched(ctx)
}

// Structure merges the enriched structural model with the wire schema
func (d *dictmap) Structure(ctx context.Context) (*structure.Document, error) {
	d.warnings = nil
	ctx = logging.WithOperation(ctx, "structure")

	m, err := d.enriched(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := api.New(api.WithPath(d.config.apiPath)).Document()
	if err != nil {
		return nil, err
	}
	return structure.Build(ctx, m, doc), nil
}

// Align loads the three sources independently and aligns their names
func (d *dictmap) Align(ctx context.Context) (*aligner.Result, error) {
	d.warnings = nil
	ctx = logging.WithOperation(ctx, "align")

	srcs := sources.NewSources(
		xmi.New(xmi.WithPath(d.config.umlPath)),
		terminology.New(terminology.WithPath(d.config.terminologyPath)),
		api.New(api.WithPath(d.config.apiPath), api.WithRoot(d.config.apiRoot)),
	)
	views := make(map[sources.ID]model.Model, srcs.Len())
	for _, id := range []sources.ID{sources.UMLID, sources.TerminologyID, sources.APIID} {
		src, _ := srcs.Get(id)
		m, err := src.Load(ctx)
		if err != nil {
			d.warnings = srcs.Warnings()
			return nil, err
		}
		views[id] = m
	}
	d.warnings = srcs.Warnings()

	result := aligner.New(d.config.alignerOptions...).Align(ctx, views[sources.UMLID], views[sources.TerminologyID], views[sources.APIID])
	return result, nil
}

// Diff loads both releases of the structural model and diffs them
func (d *dictmap) Diff(ctx context.Context) (*differ.Changeset, error) {
	d.warnings = nil
	ctx = logging.WithOperation(ctx, "diff")

	if d.config.previousPath == "" {
		return nil, errors.NewConfigError("diff", "no previous release configured", errors.ErrMissingInput)
	}
	previous, err := d.load(ctx, xmi.New(xmi.WithPath(d.config.previousPath)))
	if err != nil {
		return nil, err
	}
	current, err := d.load(ctx, xmi.New(xmi.WithPath(d.config.umlPath)))
	if err != nil {
		return nil, err
	}

	changes := differ.New(d.config.differOptions...).Models(previous, current)
	logging.FromContext(ctx).Info().
		Int("classes_added", changes.Summary.ClassesAdded).
		Int("classes_removed", changes.Summary.ClassesRemoved).
		Int("properties_added", changes.Summary.PropertiesAdded).
		Int("properties_removed", changes.Summary.PropertiesRemoved).
		Msg("releases compared")
	return changes, nil
}

// enriched loads the structural model, describes it from the terminology
// table, applies cardinality overrides and copies inherited attributes.
func (d *dictmap) enriched(ctx context.Context) (model.Model, error) {
	logger := logging.FromContext(ctx)

	m, err := d.load(ctx, xmi.New(xmi.WithPath(d.config.umlPath)))
	if err != nil {
		return nil, err
	}

	ct := terminology.New(terminology.WithPath(d.config.terminologyPath))
	warnings, err := ct.Populate(ctx, m)
	if err != nil {
		return nil, err
	}
	d.warnings = append(d.warnings, warnings...)

	overrides, err := cardinality.Load(ctx, d.config.cardinalityPath, !d.config.cardinalityRequired)
	if err != nil {
		return nil, err
	}
	applied, warnings := m.ApplyCardinalities(ctx, overrides)
	d.warnings = append(d.warnings, warnings...)

	inherited := 0
	if d.config.inherit {
		inherited = m.Inherit()
	}

	if err := m.Validate(); err != nil {
		logger.Warn().Err(err).Msg("model does not satisfy its invariants")
	}

	logger.Info().
		Int("classes", len(m)).
		Int("cardinalities", applied).
		Int("inherited", inherited).
		Int("warnings", len(d.warnings)).
		Msg("model enriched")
	return m, nil
}

// load runs one source and keeps its warnings.
func (d *dictmap) load(ctx context.Context, src sources.Source) (model.Model, error) {
	m, err := src.Load(ctx)
	d.warnings = append(d.warnings, src.Warnings()...)
	if err != nil {
		return nil, err
	}
	return m, nil
}
