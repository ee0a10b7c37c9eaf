// Package wireschema loads a JSON-Schema-like wire document (OpenAPI
// components) and exposes its class property trees as resolved variants.
//
// Raw property maps are turned into Property values once, at load time:
// every later consumer switches on Kind instead of probing raw maps.
package wireschema

import (
	"fmt"

	"github.com/agentstation/dictmap/pkg/constants"
)

// Kind tags the variant held by a Property.
type Kind int

// Property kinds.
const (
	Unknown Kind = iota // nothing recognizable
	Scalar              // {"type": "string"}
	Array               // {"type": "array", "items": ...}
	Union               // {"anyOf": [...]}
	Const               // {"const": ...}
	Ref                 // {"$ref": "#/components/schemas/X"}
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Array:
		return "array"
	case Union:
		return "union"
	case Const:
		return "const"
	case Ref:
		return "ref"
	default:
		return "unknown"
	}
}

// Property is one resolved node of a property tree.
type Property struct {
	Name     string      // Declared name; empty for nested nodes
	Kind     Kind        // Variant tag
	Type     string      // Scalar: JSON type name
	Items    *Property   // Array: element variant, never nil
	Variants []*Property // Union: members in declaration order
	Ref      string      // Ref: raw reference
	Literal  any         // Const: literal value
}

// IsString reports whether the property is a string scalar or a string constant.
func (p *Property) IsString() bool {
	switch p.Kind {
	case Scalar:
		return p.Type == constants.String
	case Const:
		_, ok := p.Literal.(string)
		return ok
	}
	return false
}

// First returns the first union member, or p itself for any other kind.
func (p *Property) First() *Property {
	if p.Kind == Union && len(p.Variants) > 0 {
		return p.Variants[0]
	}
	return p
}

// Refs lists every reference reachable through array items and union members.
func (p *Property) Refs() []string {
	switch p.Kind {
	case Ref:
		return []string{p.Ref}
	case Array:
		return p.Items.Refs()
	case Union:
		var out []string
		for _, v := range p.Variants {
			out = append(out, v.Refs()...)
		}
		return out
	}
	return nil
}

func (p *Property) String() string {
	switch p.Kind {
	case Scalar:
		return p.Type
	case Array:
		return fmt.Sprintf("array<%s>", p.Items)
	case Union:
		return fmt.Sprintf("anyOf%v", p.Variants)
	case Const:
		return fmt.Sprintf("const(%v)", p.Literal)
	case Ref:
		return p.Ref
	}
	return constants.Unknown
}

func unknown(name string) *Property {
	return &Property{Name: name, Kind: Unknown}
}
