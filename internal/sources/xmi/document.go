package xmi

import "encoding/xml"

// document is the subset of an XMI 2.x export the reader needs. Element
// and attribute names are matched by local name so the reader survives
// namespace URI changes between exporter versions.
type document struct {
	XMLName   xml.Name
	Models    []element   `xml:"Model"`
	Packaged  []element   `xml:"packagedElement"`
	Extension []extension `xml:"Extension"`
}

// element is a packagedElement: a package, class, enumeration or data type.
type element struct {
	Attrs           []xml.Attr       `xml:",any,attr"`
	Packaged        []element        `xml:"packagedElement"`
	OwnedAttributes []ownedAttribute `xml:"ownedAttribute"`
	Generalizations []generalization `xml:"generalization"`
}

type ownedAttribute struct {
	Attrs []xml.Attr `xml:",any,attr"`
	Lower *literal   `xml:"lowerValue"`
	Upper *literal   `xml:"upperValue"`
	Type  *typeRef   `xml:"type"`
}

type literal struct {
	Value string `xml:"value,attr"`
}

type typeRef struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

type generalization struct {
	General string `xml:"general,attr"`
}

// extension is the tool-specific section; Enterprise Architect records
// the display type of every attribute and the ends of every association
// there.
type extension struct {
	Elements   []extElement `xml:"elements>element"`
	Connectors []connector  `xml:"connectors>connector"`
}

// connector is an association. The target end names the role the source
// class holds it under and carries its multiplicity.
type connector struct {
	Source connectorEnd `xml:"source"`
	Target connectorEnd `xml:"target"`
}

type connectorEnd struct {
	Attrs []xml.Attr `xml:",any,attr"`
	Role  *struct {
		Name string `xml:"name,attr"`
	} `xml:"role"`
	Type *struct {
		Multiplicity string `xml:"multiplicity,attr"`
	} `xml:"type"`
}

type extElement struct {
	Attrs      []xml.Attr     `xml:",any,attr"`
	Attributes []extAttribute `xml:"attributes>attribute"`
}

type extAttribute struct {
	Attrs      []xml.Attr `xml:",any,attr"`
	Properties *struct {
		Type string `xml:"type,attr"`
	} `xml:"properties"`
	Bounds *struct {
		Lower string `xml:"lower,attr"`
		Upper string `xml:"upper,attr"`
	} `xml:"bounds"`
}

// attr returns the value of the attribute with the given local name.
// With qualified set it only matches namespaced attributes (xmi:type),
// otherwise only plain ones (type).
func attr(attrs []xml.Attr, local string, qualified bool) string {
	for _, a := range attrs {
		if a.Name.Local == local && (a.Name.Space != "") == qualified {
			return a.Value
		}
	}
	return ""
}

func (e element) kind() string { return attr(e.Attrs, "type", true) }
func (e element) id() string   { return attr(e.Attrs, "id", true) }
func (e element) name() string { return attr(e.Attrs, "name", false) }

func (a ownedAttribute) kind() string { return attr(a.Attrs, "type", true) }
func (a ownedAttribute) id() string   { return attr(a.Attrs, "id", true) }
func (a ownedAttribute) name() string { return attr(a.Attrs, "name", false) }
