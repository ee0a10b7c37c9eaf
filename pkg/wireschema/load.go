package wireschema

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/dictmap/pkg/errors"
)

// Sections that may hold named schemas, in lookup order.
var schemaSections = [][]string{
	{"components", "schemas"},
	{"$defs"},
	{"definitions"},
}

// LoadFile reads a wire-schema document from disk.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	doc, err := load(f, path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Load reads a wire-schema document. JSON and YAML are both accepted;
// property declaration order is preserved.
func Load(r io.Reader) (*Document, error) {
	return load(r, "")
}

func load(r io.Reader, file string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", file, err)
	}

	var root any
	if err := yaml.UnmarshalWithOptions(data, &root, yaml.UseOrderedMap()); err != nil {
		return nil, errors.WrapParse("json", file, err)
	}
	top, ok := root.(yaml.MapSlice)
	if !ok {
		return nil, errors.NewParseError("json", file, "document is not an object", nil)
	}

	doc := newDocument()
	for _, path := range schemaSections {
		section, ok := lookup(top, path...)
		if !ok {
			continue
		}
		for _, item := range section {
			key := fmt.Sprint(item.Key)
			node, _ := item.Value.(yaml.MapSlice)
			doc.add(parseSchema(key, node))
		}
	}
	if doc.Len() == 0 {
		return nil, errors.NewParseError("json", file, "no schemas found under components.schemas", errors.ErrEmptySource)
	}
	return doc, nil
}

func parseSchema(key string, node yaml.MapSlice) *Schema {
	s := &Schema{Key: key}
	s.Title, _ = get(node, "title").(string)
	if ref, ok := get(node, "$ref").(string); ok {
		s.Alias = ref
	}
	props, _ := get(node, "properties").(yaml.MapSlice)
	for _, item := range props {
		name := fmt.Sprint(item.Key)
		child, _ := item.Value.(yaml.MapSlice)
		s.Properties = append(s.Properties, parseProperty(name, child))
	}
	return s
}

// parseProperty resolves a raw property map into its variant. A node is
// classified by the first of $ref, anyOf/oneOf, allOf (single member),
// type and const that it carries.
func parseProperty(name string, node yaml.MapSlice) *Property {
	if node == nil {
		return unknown(name)
	}
	if ref, ok := get(node, "$ref").(string); ok {
		return &Property{Name: name, Kind: Ref, Ref: ref}
	}
	for _, key := range []string{"anyOf", "oneOf"} {
		if members, ok := get(node, key).([]any); ok {
			return &Property{Name: name, Kind: Union, Variants: parseList(members)}
		}
	}
	if members, ok := get(node, "allOf").([]any); ok && len(members) == 1 {
		child, _ := members[0].(yaml.MapSlice)
		p := parseProperty("", child)
		p.Name = name
		return p
	}
	switch t := get(node, "type").(type) {
	case string:
		if t == "array" {
			items, _ := get(node, "items").(yaml.MapSlice)
			return &Property{Name: name, Kind: Array, Items: parseProperty("", items)}
		}
		return &Property{Name: name, Kind: Scalar, Type: t}
	case []any:
		variants := make([]*Property, 0, len(t))
		for _, v := range t {
			variants = append(variants, &Property{Kind: Scalar, Type: fmt.Sprint(v)})
		}
		return &Property{Name: name, Kind: Union, Variants: variants}
	}
	if literal, ok := lookupValue(node, "const"); ok {
		return &Property{Name: name, Kind: Const, Literal: literal}
	}
	return unknown(name)
}

func parseList(members []any) []*Property {
	out := make([]*Property, 0, len(members))
	for _, m := range members {
		child, _ := m.(yaml.MapSlice)
		out = append(out, parseProperty("", child))
	}
	return out
}

func get(node yaml.MapSlice, key string) any {
	v, _ := lookupValue(node, key)
	return v
}

func lookupValue(node yaml.MapSlice, key string) (any, bool) {
	for _, item := range node {
		if k, ok := item.Key.(string); ok && k == key {
			return item.Value, true
		}
	}
	return nil, false
}

func lookup(node yaml.MapSlice, path ...string) (yaml.MapSlice, bool) {
	for _, key := range path {
		next, ok := get(node, key).(yaml.MapSlice)
		if !ok {
			return nil, false
		}
		node = next
	}
	return node, true
}
