package model

import (
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/agentstation/dictmap/pkg/constants"
	"github.com/agentstation/dictmap/pkg/errors"
)

var multiplicityPattern = regexp.MustCompile(`^\d+\.\.(\d+|\*)$`)

// Validate checks every entity of the model.
func (m Model) Validate() error {
	errs := validation.Errors{}
	for _, name := range m.Names() {
		if err := m[name].Validate(); err != nil {
			errs[name] = err
		}
	}
	if err := errs.Filter(); err != nil {
		return errors.WrapValidation("model", err)
	}
	return nil
}

// Validate checks the entity name and each attribute.
func (e *Entity) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Name, validation.Required),
		validation.Field(&e.Attributes),
	)
}

// Validate checks the attribute name, its multiplicity and, once resolved, its types.
func (a *Attribute) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Name, validation.Required),
		validation.Field(&a.Types, validation.When(a.Resolved, validation.Required)),
		validation.Field(&a.Multiplicity,
			validation.Match(multiplicityPattern).Error("must be an interval <min>..<max|*>"),
			validation.By(orderedBounds),
		),
	)
}

// ValidMultiplicity reports whether s is a well-formed interval with min <= max.
func ValidMultiplicity(s string) bool {
	return multiplicityPattern.MatchString(s) && orderedBounds(s) == nil
}

// NormalizeMultiplicity rewrites the shorthand forms "n" and "*" to intervals.
// Other input is returned unchanged.
func NormalizeMultiplicity(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case s == "*":
		return constants.CardinalityMany
	case s != "" && isDigits(s):
		return s + ".." + s
	}
	return s
}

func orderedBounds(value any) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	default:
		return nil
	}
	lo, hi, ok := strings.Cut(s, "..")
	if !ok || hi == "*" {
		return nil
	}
	minimum, err := strconv.Atoi(lo)
	if err != nil {
		return nil
	}
	maximum, err := strconv.Atoi(hi)
	if err != nil {
		return nil
	}
	if minimum > maximum {
		return validation.NewError("validation_multiplicity_bounds", "lower bound exceeds upper bound")
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Check validates every entity and reports each failure as a warning
// instead of failing the whole model.
func (m Model) Check() []Warning {
	var out []Warning
	for _, name := range m.Names() {
		if err := m[name].Validate(); err != nil {
			out = append(out, Warning{Source: "model", Entity: name, Message: err.Error()})
		}
	}
	return out
}
