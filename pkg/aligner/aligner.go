// Package aligner joins the class and attribute sets of the structural
// model, the terminology table and the wire schema into one alignment
// table, flagging everything one of the sources does not describe.
package aligner

import (
	"context"
	"slices"

	"github.com/agentstation/dictmap/internal/utils/ptr"
	"github.com/agentstation/dictmap/pkg/logging"
	"github.com/agentstation/dictmap/pkg/model"
	"github.com/agentstation/dictmap/pkg/synonyms"
)

// Aligner compares three canonical views of the same domain model.
type Aligner interface {
	// Align builds the alignment table from the structural (uml),
	// terminology (ct) and wire-schema (api) models.
	Align(ctx context.Context, uml, ct, api model.Model) *Result
}

// New creates an Aligner. By default "instanceType" is exempt from the API
// check and "id" and "instanceType" from the CT check.
func New(opts ...Option) Aligner {
	a := &aligner{
		apiExempt: toSet([]string{"instanceType"}),
		ctExempt:  toSet([]string{"id", "instanceType"}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type aligner struct {
	apiExempt map[string]bool
	ctExempt  map[string]bool
}

// Align implements Aligner.
func (a *aligner) Align(ctx context.Context, uml, ct, api model.Model) *Result {
	logger := logging.FromContext(logging.WithOperation(ctx, "align"))

	result := &Result{Attributes: make(map[string][]Record)}
	for _, class := range unionNames(uml, ct, api) {
		rec := Record{
			Class: class,
			API:   presence(api, class),
			CT:    presence(ct, class),
			UML:   presence(uml, class),
		}
		sources := 3 - len(rec.Missing())
		if sources < 3 {
			rec.Flagged = true
			result.Classes = append(result.Classes, rec)
			logger.Debug().Str("entity", class).Strs("missing", rec.Missing()).Msg("class not in every source")
		}
		if sources > 1 {
			result.Attributes[class] = a.alignAttributes(class, uml[class], ct[class], api[class])
		}
	}
	logger.Info().
		Int("classes", len(result.Attributes)).
		Int("discrepancies", len(result.Discrepancies())).
		Msg("alignment complete")
	return result
}

// alignAttributes joins the attributes of one class. Any of the entities may be nil.
func (a *aligner) alignAttributes(class string, uml, ct, api *model.Entity) []Record {
	t := newTable(class)

	for _, name := range attributeNames(uml) {
		t.row(name).UML = ptr.String(name)
	}
	for _, name := range attributeNames(ct) {
		t.row(name).CT = ptr.String(name)
	}

	// Exact matches first, so a verbatim row is never taken by a synonym.
	var pending []string
	for _, name := range attributeNames(api) {
		if r, ok := t.rows[name]; ok && r.API == nil {
			r.API = ptr.String(name)
			continue
		}
		pending = append(pending, name)
	}
	for _, name := range pending {
		t.attachAPI(name)
	}

	out := t.records()
	for i := range out {
		out[i].Flagged = a.flagged(out[i])
	}
	return out
}

func (a *aligner) flagged(r Record) bool {
	key := r.Key()
	return (r.API == nil && !a.apiExempt[key]) ||
		(r.CT == nil && !a.ctExempt[key]) ||
		r.UML == nil
}

// table is the alignment table of one class, keyed by attribute.
type table struct {
	class string
	rows  map[string]*Record
}

func newTable(class string) *table {
	return &table{class: class, rows: make(map[string]*Record)}
}

func (t *table) row(key string) *Record {
	if r, ok := t.rows[key]; ok {
		return r
	}
	r := &Record{Class: t.class, Attribute: key}
	t.rows[key] = r
	return r
}

// attachAPI adds a wire name to the first row, in reverse-synonym order,
// whose API column is still free; otherwise it opens a row under the
// verbatim name.
func (t *table) attachAPI(name string) {
	for _, candidate := range synonyms.FromReferenceForm(name) {
		if r, ok := t.rows[candidate]; ok && r.API == nil {
			r.API = ptr.String(name)
			return
		}
	}
	t.row(name).API = ptr.String(name)
}

func (t *table) records() []Record {
	keys := make([]string, 0, len(t.rows))
	for k := range t.rows {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]Record, 0, len(keys))
	for _, k := range keys {
		out = append(out, *t.rows[k])
	}
	return out
}

func presence(m model.Model, name string) *string {
	if m.Has(name) {
		return ptr.String(name)
	}
	return nil
}

func attributeNames(e *model.Entity) []string {
	if e == nil {
		return nil
	}
	return e.AttributeNames()
}

func unionNames(models ...model.Model) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range models {
		for name := range m {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	slices.Sort(out)
	return out
}
