package differ

import (
	"slices"

	"github.com/agentstation/dictmap/pkg/model"
)

// Differ handles change detection between two releases of a model.
type Differ interface {
	// Models compares the previous and current releases and returns
	// the added and removed classes and properties.
	Models(previous, current model.Model) *Changeset
}

// differ is the default implementation of Differ.
type differ struct {
	ignoreClasses    map[string]bool
	ignoreAttributes map[string]bool
	includeInherited bool
}

// New creates a Differ with default settings.
func New(opts ...Option) Differ {
	d := &differ{
		ignoreClasses:    make(map[string]bool),
		ignoreAttributes: make(map[string]bool),
		includeInherited: true,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Models walks the byte-wise sorted class names of both releases with two
// pointers. A name present on one side only is a class change; a name on
// both sides gets the same walk over its attribute names. An exhausted
// side sorts after every name and the walk runs until both are exhausted.
func (diff *differ) Models(previous, current model.Model) *Changeset {
	changeset := &Changeset{Records: []Record{}}

	prev := diff.classNames(previous)
	curr := diff.classNames(current)

	i, j := 0, 0
	for i < len(prev) || j < len(curr) {
		switch compare(prev, i, curr, j) {
		case -1:
			changeset.Records = append(changeset.Records, diff.classRecord(ClassDeleted, previous[prev[i]]))
			i++
		case 1:
			changeset.Records = append(changeset.Records, diff.classRecord(ClassNew, current[curr[j]]))
			j++
		default:
			changeset.Records = append(changeset.Records, diff.attributes(previous[prev[i]], current[curr[j]])...)
			i++
			j++
		}
	}

	changeset.Summary = calculateSummary(changeset.Records)
	return changeset
}

// attributes runs the merge walk over the attributes of one class.
func (diff *differ) attributes(previous, current *model.Entity) []Record {
	var records []Record

	prev := diff.attributeNames(previous)
	curr := diff.attributeNames(current)

	i, j := 0, 0
	for i < len(prev) || j < len(curr) {
		switch compare(prev, i, curr, j) {
		case -1:
			records = append(records, propertyRecord(PropertyDeleted, previous.Name, previous.Attributes[prev[i]]))
			i++
		case 1:
			records = append(records, propertyRecord(PropertyNew, current.Name, current.Attributes[curr[j]]))
			j++
		default:
			i++
			j++
		}
	}
	return records
}

// compare orders prev[i] against curr[j], treating an exhausted side as
// greater than every name. Both sides are never exhausted together.
func compare(prev []string, i int, curr []string, j int) int {
	switch {
	case i >= len(prev):
		return 1
	case j >= len(curr):
		return -1
	case prev[i] < curr[j]:
		return -1
	case prev[i] > curr[j]:
		return 1
	}
	return 0
}

func (diff *differ) classNames(m model.Model) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		if !diff.ignoreClasses[name] {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func (diff *differ) attributeNames(e *model.Entity) []string {
	names := make([]string, 0, len(e.Attributes))
	for name, a := range e.Attributes {
		if diff.ignoreAttributes[name] || (!diff.includeInherited && a.IsInherited()) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (diff *differ) classRecord(status Status, e *model.Entity) Record {
	return Record{
		Status:  status,
		Class:   e.Name,
		Members: diff.members(e),
	}
}

func (diff *differ) members(e *model.Entity) []Member {
	names := diff.attributeNames(e)
	out := make([]Member, 0, len(names))
	for _, name := range names {
		out = append(out, Member{Name: name, DataType: e.Attributes[name].Types.String()})
	}
	return out
}

func propertyRecord(status Status, class string, a *model.Attribute) Record {
	return Record{
		Status:    status,
		Class:     class,
		Attribute: a.Name,
		DataType:  a.Types.String(),
	}
}
