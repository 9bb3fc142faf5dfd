package docgen

import (
	"fmt"
	"path"
	"strings"
)

// sourceDirMarker is the path segment that exists in the source layout but
// gets no crumb of its own; it still counts toward the parent-hop distance.
const sourceDirMarker = "src"

// Breadcrumbs builds the navigation trail for the document at relPath
// (slash-separated, relative to the project root). Every crumb links to the
// document of the corresponding ancestor directory; the first crumb is the
// project root, labelled with the project name. The current document links
// to itself, which keeps the trail stable when files are moved together.
func Breadcrumbs(projectName, relPath, outputName string) string {
	dir := path.Dir(relPath)

	var comps []string
	if dir != "." {
		comps = strings.Split(dir, "/")
	}

	crumbs := []string{
		fmt.Sprintf("[%s](%s%s)", projectName, strings.Repeat("../", len(comps)), outputName),
	}

	for i, comp := range comps {
		if comp == sourceDirMarker {
			continue
		}
		hops := len(comps) - 1 - i
		crumbs = append(crumbs, fmt.Sprintf("[%s](%s%s)", crumbLabel(comp), strings.Repeat("../", hops), outputName))
	}

	return strings.Join(crumbs, " » ") + "\n\n"
}

func crumbLabel(segment string) string {
	s := strings.NewReplacer("_", " ", "-", " ").Replace(segment)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
