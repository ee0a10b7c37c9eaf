package aligner

import "slices"

// Result is the output of one alignment pass.
type Result struct {
	// Classes holds a record for every class missing from at least one source.
	Classes []Record `json:"classes" yaml:"classes"`
	// Attributes holds every attribute row, sorted by key, for each class
	// present in more than one source.
	Attributes map[string][]Record `json:"attributes" yaml:"attributes"`
}

// Discrepancies returns the flagged records in class order; each class
// record comes before the flagged attribute rows of its class.
func (r *Result) Discrepancies() []Record {
	classes := make(map[string]bool)
	names := make([]string, 0, len(r.Attributes)+len(r.Classes))
	for _, c := range r.Classes {
		classes[c.Class] = true
		names = append(names, c.Class)
	}
	for name := range r.Attributes {
		if !classes[name] {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	byClass := make(map[string]Record, len(r.Classes))
	for _, c := range r.Classes {
		byClass[c.Class] = c
	}

	var out []Record
	for _, name := range names {
		if c, ok := byClass[name]; ok {
			out = append(out, c)
		}
		for _, row := range r.Attributes[name] {
			if row.Flagged {
				out = append(out, row)
			}
		}
	}
	return out
}

// Rows returns every attribute row of every class in class order.
func (r *Result) Rows() []Record {
	names := make([]string, 0, len(r.Attributes))
	for name := range r.Attributes {
		names = append(names, name)
	}
	slices.Sort(names)

	var out []Record
	for _, name := range names {
		out = append(out, r.Attributes[name]...)
	}
	return out
}
