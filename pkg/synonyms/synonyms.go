// Package synonyms bridges the naming drift between the structural model
// and the wire schema. An attribute "activities" may appear on the wire as
// "activities", "activityIds" or "activitiesId"; ToReferenceForms lists the
// spellings to probe for, FromReferenceForm maps a wire name back to the
// canonical names it may stand for.
//
// Both functions are pure and operate on strings only. Candidate order is
// significant: the bare name always comes first so an exact match is never
// mistaken for a reference.
package synonyms

import "strings"

// Reference suffixes used by the wire schema.
const (
	IDSuffix      = "Id"
	IDsSuffix     = "Ids"
	pluralSuffix  = "s"
	irregularPl   = "ies"
	irregularSing = "y"
)

// Irregular plurals that appear inside compound names.
var irregulars = []struct{ plural, singular string }{
	{"children", "child"},
	{"criteria", "criterion"},
}

// ToReferenceForms returns, in probe order and without duplicates, the
// wire-schema spellings an attribute called name may have been given.
func ToReferenceForms(name string) []string {
	var out forms
	out.add(name)
	out.add(name + IDSuffix)
	out.add(name + IDsSuffix)
	if strings.HasSuffix(name, pluralSuffix) {
		out.add(strings.TrimSuffix(name, pluralSuffix) + IDsSuffix)
	}
	if strings.HasSuffix(name, irregularPl) {
		out.add(strings.TrimSuffix(name, irregularPl) + irregularSing + IDsSuffix)
	}
	for _, irr := range irregulars {
		if strings.Contains(name, irr.plural) {
			out.add(strings.ReplaceAll(name, irr.plural, irr.singular) + IDsSuffix)
		}
	}
	return out
}

// FromReferenceForm returns, in probe order and without duplicates, the
// canonical names a wire-schema property called name may stand for. The
// verbatim name is always the first candidate.
func FromReferenceForm(name string) []string {
	var out forms
	out.add(name)
	if stem, ok := strings.CutSuffix(name, IDSuffix); ok {
		out.add(stem)
	}
	if stem, ok := strings.CutSuffix(name, irregularSing+IDsSuffix); ok {
		out.add(stem + irregularPl)
	}
	stem, ok := strings.CutSuffix(name, IDsSuffix)
	if !ok {
		return out
	}
	out.add(stem + pluralSuffix)
	out.add(stem)
	for _, irr := range irregulars {
		for _, candidate := range replaceAny(stem, irr.singular, irr.plural) {
			out.add(candidate)
		}
	}
	return out
}

// replaceAny returns every variant of s with a non-empty subset of the
// occurrences of old replaced by repl. Single replacements come first.
func replaceAny(s, old, repl string) []string {
	var at []int
	for offset := 0; ; {
		i := strings.Index(s[offset:], old)
		if i < 0 {
			break
		}
		at = append(at, offset+i)
		offset += i + len(old)
	}

	var out []string
	for mask := 1; mask < 1<<len(at); mask++ {
		var b strings.Builder
		prev := 0
		for k, pos := range at {
			if mask&(1<<k) == 0 {
				continue
			}
			b.WriteString(s[prev:pos])
			b.WriteString(repl)
			prev = pos + len(old)
		}
		b.WriteString(s[prev:])
		out = append(out, b.String())
	}
	return out
}

// forms is an insertion-ordered list of distinct strings.
type forms []string

func (f *forms) add(s string) {
	for _, existing := range *f {
		if existing == s {
			return
		}
	}
	*f = append(*f, s)
}
