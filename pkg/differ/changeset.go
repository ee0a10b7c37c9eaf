// Package differ computes the structural delta between two releases of a
// canonical model: classes and properties added or removed.
package differ

import (
	"fmt"
	"io"
	"strings"
)

// Status labels a change record.
type Status string

const (
	// ClassNew indicates a class only the current release has.
	ClassNew Status = "Class-New"
	// ClassDeleted indicates a class only the previous release has.
	ClassDeleted Status = "Class-Deleted"
	// PropertyNew indicates a property only the current release has.
	PropertyNew Status = "Property-New"
	// PropertyDeleted indicates a property only the previous release has.
	PropertyDeleted Status = "Property-Deleted"
)

// Statuses lists every status in display order.
var Statuses = []Status{ClassNew, ClassDeleted, PropertyNew, PropertyDeleted}

// Inverse swaps New and Deleted.
func (s Status) Inverse() Status {
	switch s {
	case ClassNew:
		return ClassDeleted
	case ClassDeleted:
		return ClassNew
	case PropertyNew:
		return PropertyDeleted
	case PropertyDeleted:
		return PropertyNew
	}
	return s
}

// IsAddition reports whether s is ClassNew or PropertyNew.
func (s Status) IsAddition() bool {
	return s == ClassNew || s == PropertyNew
}

// Record is one structural change.
type Record struct {
	Status    Status   `json:"status" yaml:"status"`
	Class     string   `json:"class" yaml:"class"`
	Attribute string   `json:"attribute,omitempty" yaml:"attribute,omitempty"` // Empty for class records
	DataType  string   `json:"data_type,omitempty" yaml:"data_type,omitempty"` // Property records only
	Members   []Member `json:"members,omitempty" yaml:"members,omitempty"`     // Class records: attributes sorted by name
}

// Member is one attribute of an added or removed class.
type Member struct {
	Name     string `json:"name" yaml:"name"`
	DataType string `json:"data_type,omitempty" yaml:"data_type,omitempty"`
}

// Changeset represents all changes between two releases.
type Changeset struct {
	Records []Record         // Changes in walk order
	Summary ChangesetSummary // Counts per status
}

// ChangesetSummary provides summary statistics for a changeset.
type ChangesetSummary struct {
	ClassesAdded      int
	ClassesRemoved    int
	PropertiesAdded   int
	PropertiesRemoved int
	TotalChanges      int
}

// calculateSummary computes the summary for a set of records.
func calculateSummary(records []Record) ChangesetSummary {
	var s ChangesetSummary
	for _, r := range records {
		switch r.Status {
		case ClassNew:
			s.ClassesAdded++
		case ClassDeleted:
			s.ClassesRemoved++
		case PropertyNew:
			s.PropertiesAdded++
		case PropertyDeleted:
			s.PropertiesRemoved++
		}
	}
	s.TotalChanges = len(records)
	return s
}

// HasChanges returns true if the changeset contains any changes.
func (c *Changeset) HasChanges() bool {
	return c.Summary.TotalChanges > 0
}

// IsEmpty returns true if the changeset contains no changes.
func (c *Changeset) IsEmpty() bool {
	return !c.HasChanges()
}

// ByStatus returns the records with the given status, in walk order.
func (c *Changeset) ByStatus(status Status) []Record {
	var out []Record
	for _, r := range c.Records {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// String returns a human-readable summary of the changeset.
func (c *Changeset) String() string {
	if c.IsEmpty() {
		return "No changes detected"
	}

	var parts []string
	if c.Summary.ClassesAdded > 0 || c.Summary.ClassesRemoved > 0 {
		parts = append(parts, fmt.Sprintf("Classes: %d added, %d removed", c.Summary.ClassesAdded, c.Summary.ClassesRemoved))
	}
	if c.Summary.PropertiesAdded > 0 || c.Summary.PropertiesRemoved > 0 {
		parts = append(parts, fmt.Sprintf("Properties: %d added, %d removed", c.Summary.PropertiesAdded, c.Summary.PropertiesRemoved))
	}

	return fmt.Sprintf("Changeset: %s (Total: %d changes)", strings.Join(parts, "; "), c.Summary.TotalChanges)
}

// Print writes a detailed, human-readable view of the changeset.
func (c *Changeset) Print(w io.Writer) {
	_, _ = fmt.Fprintln(w, c.String())
	if c.IsEmpty() {
		return
	}
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, r := range c.Records {
		sign := "-"
		if r.Status.IsAddition() {
			sign = "+"
		}
		if r.Attribute == "" {
			_, _ = fmt.Fprintf(w, "%s %s\n", sign, r.Class)
			for _, m := range r.Members {
				_, _ = fmt.Fprintf(w, "    %s (%s)\n", m.Name, m.DataType)
			}
			continue
		}
		_, _ = fmt.Fprintf(w, "%s %s.%s (%s)\n", sign, r.Class, r.Attribute, r.DataType)
	}
}

// ApplyStrategy selects which changes a filtered changeset keeps.
type ApplyStrategy string

const (
	// ApplyAll keeps every change.
	ApplyAll ApplyStrategy = "all"

	// ApplyAdditionsOnly keeps new classes and properties.
	ApplyAdditionsOnly ApplyStrategy = "additions-only"

	// ApplyRemovalsOnly keeps deleted classes and properties.
	ApplyRemovalsOnly ApplyStrategy = "removals-only"

	// ApplyClassesOnly keeps class-level changes.
	ApplyClassesOnly ApplyStrategy = "classes-only"
)

// Filter filters the changeset based on the apply strategy.
func (c *Changeset) Filter(strategy ApplyStrategy) *Changeset {
	switch strategy {
	case ApplyAdditionsOnly:
		return c.Select(func(r Record) bool { return r.Status.IsAddition() })
	case ApplyRemovalsOnly:
		return c.Select(func(r Record) bool { return !r.Status.IsAddition() })
	case ApplyClassesOnly:
		return c.Select(func(r Record) bool { return r.Attribute == "" })
	default:
		return c
	}
}

// Select returns a changeset holding the records keep accepts, in walk
// order, with a recalculated summary.
func (c *Changeset) Select(keep func(Record) bool) *Changeset {
	filtered := &Changeset{Records: []Record{}}
	for _, r := range c.Records {
		if keep(r) {
			filtered.Records = append(filtered.Records, r)
		}
	}
	filtered.Summary = calculateSummary(filtered.Records)
	return filtered
}
