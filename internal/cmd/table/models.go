// Package table converts dictionary, alignment and release-diff results
// into rows for the tabular formatters.
package table

import (
	"strings"

	"github.com/agentstation/dictmap/internal/utils/ptr"
	"github.com/agentstation/dictmap/pkg/aligner"
	"github.com/agentstation/dictmap/pkg/differ"
	"github.com/agentstation/dictmap/pkg/model"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// DictionaryHeaders are the columns of the data dictionary.
var DictionaryHeaders = []string{
	"Class Name", "Attribute Name", "Data Type", "NCI C-Code", "Cardinality",
	"Preferred Term", "Definition", "Codelist Ref", "Inherited From",
}

// DictionaryToTableData converts an enriched model to data dictionary rows:
// one row per class in name order, followed by one row per attribute.
func DictionaryToTableData(m model.Model) Data {
	var rows [][]string
	for _, name := range m.Names() {
		e := m[name]
		rows = append(rows, []string{
			e.Name, "", "",
			ptr.Deref(e.Code), "",
			ptr.Deref(e.PreferredTerm),
			ptr.Deref(e.Definition),
			"", "",
		})
		for _, attrName := range e.AttributeNames() {
			a := e.Attributes[attrName]
			rows = append(rows, []string{
				"", a.Name,
				a.Types.String(),
				ptr.Deref(a.Code),
				ptr.Deref(a.Multiplicity),
				ptr.Deref(a.PreferredTerm),
				ptr.Deref(a.Definition),
				strings.Join(a.CodeLists, ", "),
				ptr.Deref(a.InheritedFrom),
			})
		}
	}

	return Data{
		Headers:         DictionaryHeaders,
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignCenter, AlignLeft, AlignLeft, AlignLeft},
	}
}

// AlignmentHeaders are the columns of the alignment report.
var AlignmentHeaders = []string{"Class", "Attribute", aligner.SourceAPI, aligner.SourceCT, aligner.SourceUML, "Comment"}

// AlignmentToTableData converts alignment records to rows.
func AlignmentToTableData(records []aligner.Record) Data {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Class,
			r.Attribute,
			ptr.Deref(r.API),
			ptr.Deref(r.CT),
			ptr.Deref(r.UML),
			r.Comment(),
		})
	}
	return Data{Headers: AlignmentHeaders, Rows: rows}
}

// ChangesHeaders are the columns of the release diff.
var ChangesHeaders = []string{"Status", "Class Name", "Property Name", "Data Type"}

// ChangesToTableData converts a changeset to rows. A class record is
// followed by one row per member attribute.
func ChangesToTableData(changes *differ.Changeset) Data {
	var rows [][]string
	for _, r := range changes.Records {
		rows = append(rows, []string{string(r.Status), r.Class, r.Attribute, r.DataType})
		for _, member := range r.Members {
			rows = append(rows, []string{"", "", member.Name, member.DataType})
		}
	}
	return Data{
		Headers:         ChangesHeaders,
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft},
	}
}

// WarningsHeaders are the columns of the warnings report.
var WarningsHeaders = []string{"Source", "Class", "Attribute", "Message"}

// WarningsToTableData converts warnings to rows.
func WarningsToTableData(warnings []model.Warning) Data {
	rows := make([][]string, 0, len(warnings))
	for _, w := range warnings {
		rows = append(rows, []string{w.Source, w.Entity, w.Attribute, w.Message})
	}
	return Data{Headers: WarningsHeaders, Rows: rows}
}
