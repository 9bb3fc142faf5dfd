// Package manifest models a custom-elements manifest: the machine-readable
// description of a component library's public classes that the generator
// turns into reference documents.
//
// Accessors are deliberately permissive. Manifests produced by older analyzer
// versions omit optional fields freely, so a missing member list, type or
// parameter set reads as empty rather than failing the run.
package manifest

type Package struct {
	SchemaVersion string   `json:"schemaVersion"`
	Modules       []Module `json:"modules"`
}

// Module is one source file record. Path is relative to the project root
// (e.g. "src/place_rating/place_rating.ts") and drives both the destination
// document and the import alias resolution.
type Module struct {
	Kind         string        `json:"kind"`
	Path         string        `json:"path"`
	Declarations []Declaration `json:"declarations"`
}

type Declaration struct {
	Kind          string        `json:"kind"`
	Name          string        `json:"name"`
	TagName       string        `json:"tagName"`
	CustomElement bool          `json:"customElement"`
	Description   string        `json:"description"`
	Superclass    *Reference    `json:"superclass"`
	Members       []Member      `json:"members"`
	Slots         []Slot        `json:"slots"`
	Events        []Event       `json:"events"`
	CSSProperties []CSSProperty `json:"cssProperties"`
	CSSParts      []CSSPart     `json:"cssParts"`
}

type Reference struct {
	Name    string `json:"name"`
	Package string `json:"package"`
	Module  string `json:"module"`
}

// Member covers both field-kind and method-kind entries; which metadata is
// meaningful depends on Kind.
type Member struct {
	Kind        string      `json:"kind"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Privacy     string      `json:"privacy"`
	Static      bool        `json:"static"`
	Attribute   string      `json:"attribute"`
	Reflects    bool        `json:"reflects"`
	Type        *Type       `json:"type"`
	Default     string      `json:"default"`
	Parameters  []Parameter `json:"parameters"`
	Return      *Return     `json:"return"`
}

type Type struct {
	Text string `json:"text"`
}

type Return struct {
	Type        *Type  `json:"type"`
	Description string `json:"description"`
}

type Parameter struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
	Type        *Type  `json:"type"`
}

type Slot struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Event struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        *Type  `json:"type"`
}

type CSSProperty struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     string `json:"default"`
}

type CSSPart struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Public reports whether the member carries no explicit privacy marker.
func (m Member) Public() bool {
	return m.Privacy == ""
}

func (m Member) TypeText() string {
	if m.Type == nil {
		return ""
	}
	return m.Type.Text
}

func (m Member) ReturnTypeText() string {
	if m.Return == nil || m.Return.Type == nil {
		return ""
	}
	return m.Return.Type.Text
}

func (p Parameter) TypeText() string {
	if p.Type == nil {
		return ""
	}
	return p.Type.Text
}

func (e Event) TypeText() string {
	if e.Type == nil {
		return ""
	}
	return e.Type.Text
}

func (d Declaration) SuperclassName() string {
	if d.Superclass == nil {
		return ""
	}
	return d.Superclass.Name
}

// PublicFields returns the field-kind members visible in documentation, in
// declaration order.
func (d Declaration) PublicFields() []Member {
	var fields []Member
	for _, m := range d.Members {
		if m.Kind == "field" && m.Public() {
			fields = append(fields, m)
		}
	}
	return fields
}

// PublicMethods returns the method-kind members visible in documentation, in
// declaration order.
func (d Declaration) PublicMethods() []Member {
	var methods []Member
	for _, m := range d.Members {
		if m.Kind == "method" && m.Public() {
			methods = append(methods, m)
		}
	}
	return methods
}
