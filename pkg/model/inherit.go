package model

import "github.com/agentstation/dictmap/internal/utils/ptr"

// LinkSubclasses derives every entity's SubClasses from the SuperClasses
// declared across the model. Superclasses missing from the model are ignored.
func (m Model) LinkSubclasses() {
	for _, name := range m.Names() {
		for _, super := range m[name].SuperClasses {
			if parent, ok := m[super]; ok {
				parent.SubClasses.Add(name)
			}
		}
	}
}

// Inherit copies the locally declared attributes of each entity's ancestors
// into the entity unless it declares an attribute of the same name. Nearer
// ancestors win over farther ones. Copies carry InheritedFrom. It returns
// the number of attributes copied.
func (m Model) Inherit() int {
	copied := 0
	for _, name := range m.Names() {
		e := m[name]
		for _, ancestor := range m.Ancestors(name) {
			parent := m[ancestor]
			for _, attrName := range parent.AttributeNames() {
				a := parent.Attributes[attrName]
				if a.IsInherited() {
					continue
				}
				c := a.Clone()
				c.InheritedFrom = ptr.String(ancestor)
				if e.AddAttribute(c) {
					copied++
				}
			}
		}
	}
	return copied
}

// Ancestors lists the transitive superclasses of name present in the model,
// nearest first. Inheritance cycles are cut at the first repeated name.
func (m Model) Ancestors(name string) []string {
	e, ok := m[name]
	if !ok {
		return nil
	}
	visited := map[string]bool{name: true}
	var out []string
	queue := e.SuperClasses.Values()
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if visited[next] {
			continue
		}
		visited[next] = true
		parent, ok := m[next]
		if !ok {
			continue
		}
		out = append(out, next)
		queue = append(queue, parent.SuperClasses...)
	}
	return out
}
