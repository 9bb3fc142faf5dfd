package manifest

import "strings"

// InternalTagSuffix marks elements that are registered for internal
// composition only and never documented.
const InternalTagSuffix = "-internal"

// Documentable reports whether the declaration is a public custom element
// worth a reference entry: a class, registered as a custom element, with a
// tag name that is not internal-only. Absent or malformed fields evaluate
// to false.
func (d Declaration) Documentable() bool {
	if d.Kind != "class" {
		return false
	}
	if !d.CustomElement {
		return false
	}
	if d.TagName == "" {
		return false
	}
	return !strings.HasSuffix(d.TagName, InternalTagSuffix)
}
