package model

import "fmt"

// Warning is a recoverable condition found while populating or
// reconciling a model, attributable to one entity and optionally one attribute.
type Warning struct {
	Source    string `json:"source" yaml:"source"`
	Entity    string `json:"entity" yaml:"entity"`
	Attribute string `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	Message   string `json:"message" yaml:"message"`
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.Attribute != "" {
		return fmt.Sprintf("%s: %s.%s: %s", w.Source, w.Entity, w.Attribute, w.Message)
	}
	return fmt.Sprintf("%s: %s: %s", w.Source, w.Entity, w.Message)
}
