package aligner

import (
	"strings"

	"github.com/agentstation/dictmap/internal/utils/ptr"
)

// Source columns of an alignment record.
const (
	SourceAPI = "API"
	SourceCT  = "CT"
	SourceUML = "UML / DD"
)

// Record is one row of the alignment table. Each source column holds the
// name under which that source mentions the class or attribute, or nil.
type Record struct {
	Class     string  `json:"class" yaml:"class"`
	Attribute string  `json:"attribute,omitempty" yaml:"attribute,omitempty"` // Empty for class-level records
	API       *string `json:"api,omitempty" yaml:"api,omitempty"`
	CT        *string `json:"ct,omitempty" yaml:"ct,omitempty"`
	UML       *string `json:"uml,omitempty" yaml:"uml,omitempty"`
	Flagged   bool    `json:"flagged" yaml:"flagged"`
}

// IsClass reports whether r is a class-level record.
func (r Record) IsClass() bool {
	return r.Attribute == ""
}

// Missing lists the sources that do not mention the record's key.
func (r Record) Missing() []string {
	var out []string
	if r.API == nil {
		out = append(out, SourceAPI)
	}
	if r.CT == nil {
		out = append(out, SourceCT)
	}
	if r.UML == nil {
		out = append(out, SourceUML)
	}
	return out
}

// Comment describes why a flagged record was flagged, and notes wire
// names that matched through a synonym.
func (r Record) Comment() string {
	var parts []string
	if r.Flagged {
		if missing := r.Missing(); len(missing) > 0 {
			parts = append(parts, "missing from "+strings.Join(missing, ", "))
		}
	}
	if api := ptr.Deref(r.API); api != "" && !r.IsClass() && api != r.Attribute {
		parts = append(parts, "API name "+api)
	}
	return strings.Join(parts, "; ")
}

// Key returns the attribute key, or the class name for class-level records.
func (r Record) Key() string {
	if r.IsClass() {
		return r.Class
	}
	return r.Attribute
}
