package docgen

import "strings"

// Document is one destination file being assembled. Bodies grow append-only
// in manifest order; the inventory section, when the document owns one, is
// attached at finalization and rendered between the static header and the
// body.
type Document struct {
	// Rel is the destination path relative to the project root, with
	// forward slashes.
	Rel string

	// Inventory is the pre-rendered summary section, empty for plain
	// component documents.
	Inventory string

	body strings.Builder
}

func (d *Document) Append(fragment string) {
	d.body.WriteString(fragment)
}

func (d *Document) Body() string {
	return d.body.String()
}

// documentSet keys documents by destination path and remembers first-seen
// order so output is deterministic.
type documentSet struct {
	order []string
	byRel map[string]*Document
}

func newDocumentSet() *documentSet {
	return &documentSet{byRel: make(map[string]*Document)}
}

func (s *documentSet) get(rel string) *Document {
	if doc, ok := s.byRel[rel]; ok {
		return doc
	}
	doc := &Document{Rel: rel}
	s.byRel[rel] = doc
	s.order = append(s.order, rel)
	return doc
}

func (s *documentSet) all() []*Document {
	docs := make([]*Document, 0, len(s.order))
	for _, rel := range s.order {
		docs = append(docs, s.byRel[rel])
	}
	return docs
}
