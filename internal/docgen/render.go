package docgen

import (
	"fmt"
	"strings"

	"github.com/placeui/elemdoc/internal/manifest"
)

// Renderer turns one declaration into a self-contained Markdown fragment.
// It reads optional per-module side-files (examples, API notes) and the
// lazily-loaded export index, and mutates nothing.
type Renderer struct {
	rootDir string
	exports *ExportIndex
}

func NewRenderer(rootDir string, exports *ExportIndex) *Renderer {
	return &Renderer{rootDir: rootDir, exports: exports}
}

// Declaration renders one component at the given header nesting level.
// Section order is fixed: header, description, consumer callout, importing,
// attributes, slots, methods, events, styling, then example and API
// side-file content.
func (r *Renderer) Declaration(d manifest.Declaration, mod manifest.Module, level int) string {
	var b strings.Builder

	h := strings.Repeat("#", level)
	sub := strings.Repeat("#", level+1)

	title := fmt.Sprintf("`<%s>` (class `%s`)", d.TagName, d.Name)
	if friendly, ok := friendlyNames[d.Name]; ok {
		title = friendly + ": " + title
	}
	fmt.Fprintf(&b, "%s %s\n\n", h, title)

	if d.Description != "" {
		b.WriteString(d.Description + "\n\n")
	}

	if d.SuperclassName() == consumerBaseClass {
		b.WriteString(consumerCallout + "\n\n")
	}

	r.importing(&b, d, mod, sub)
	r.attributes(&b, d, sub)
	r.slots(&b, d, sub)
	r.methods(&b, d, sub, level)
	r.events(&b, d, sub)
	r.styling(&b, d, sub)

	if examples := examplesFor(r.rootDir, mod.Path); examples != "" {
		fmt.Fprintf(&b, "%s Examples\n\n%s\n\n", sub, strings.TrimRight(examples, "\n"))
	}
	if apis := apisFor(r.rootDir, mod.Path); apis != "" {
		fmt.Fprintf(&b, "%s APIs and pricing\n\n%s\n\n", sub, strings.TrimRight(apis, "\n"))
	}

	return b.String()
}

func (r *Renderer) importing(b *strings.Builder, d manifest.Declaration, mod manifest.Module, sub string) {
	specifier, ok := r.exports.Lookup(DistPath(mod.Path))
	if !ok {
		return
	}

	fmt.Fprintf(b, "%s Importing\n\n", sub)
	b.WriteString("When bundling your project with npm, import the element definition for its side effects:\n\n")
	fmt.Fprintf(b, "```js\nimport '%s';\n```\n\n", specifier)
	b.WriteString("Or import the class itself to reference it in code:\n\n")
	fmt.Fprintf(b, "```js\nimport { %s } from '%s';\n```\n\n", d.Name, specifier)
}

func (r *Renderer) attributes(b *strings.Builder, d manifest.Declaration, sub string) {
	fields := d.PublicFields()
	if len(fields) == 0 {
		return
	}

	fmt.Fprintf(b, "%s Attributes and properties\n\n", sub)
	b.WriteString("| Attribute | Property | Property type | Description | Default | Reflects? |\n")
	b.WriteString("| --------- | -------- | ------------- | ----------- | ------- | --------- |\n")
	for _, f := range fields {
		reflects := reflectsNo
		if f.Reflects {
			reflects = reflectsYes
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s |\n",
			codeCell(f.Attribute),
			codeCell(f.Name),
			codeCell(f.TypeText()),
			sanitizeCell(f.Description),
			codeCell(f.Default),
			reflects)
	}
	b.WriteString("\n")
}

func (r *Renderer) slots(b *strings.Builder, d manifest.Declaration, sub string) {
	if len(d.Slots) == 0 {
		return
	}

	named := false
	for _, s := range d.Slots {
		if s.Name != "" {
			named = true
			break
		}
	}

	fmt.Fprintf(b, "%s Slots\n\n", sub)
	if named {
		b.WriteString("This element uses named slots. Pass content to a specific slot by setting the `slot` attribute on a child element.\n\n")
	}
	b.WriteString("| Slot name | Description |\n")
	b.WriteString("| --------- | ----------- |\n")
	for _, s := range d.Slots {
		name := "(default)"
		if s.Name != "" {
			name = codeCell(s.Name)
		}
		fmt.Fprintf(b, "| %s | %s |\n", name, sanitizeCell(s.Description))
	}
	b.WriteString("\n")
}

func (r *Renderer) methods(b *strings.Builder, d manifest.Declaration, sub string, level int) {
	methods := d.PublicMethods()
	if len(methods) == 0 {
		return
	}

	fmt.Fprintf(b, "%s Methods\n\n", sub)
	subsub := strings.Repeat("#", level+2)

	for _, m := range methods {
		names := make([]string, 0, len(m.Parameters))
		for _, p := range m.Parameters {
			names = append(names, p.Name)
		}

		sig := fmt.Sprintf("%s(%s)", m.Name, strings.Join(names, ", "))
		note := ""
		if m.Static {
			sig = d.Name + "." + sig
			note = " (static method)"
		}
		fmt.Fprintf(b, "%s `%s`%s\n\n", subsub, sig, note)

		if m.Description != "" {
			b.WriteString(m.Description + "\n\n")
		}
		if ret := m.ReturnTypeText(); ret != "" {
			fmt.Fprintf(b, "**Returns:** `%s`\n\n", ret)
		}

		if len(m.Parameters) > 0 {
			b.WriteString("| Parameter | Optional? | Type | Description |\n")
			b.WriteString("| --------- | --------- | ---- | ----------- |\n")
			for _, p := range m.Parameters {
				optional := optionalNo
				if p.Optional {
					optional = optionalYes
				}
				fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
					codeCell(p.Name),
					optional,
					codeCell(p.TypeText()),
					sanitizeCell(p.Description))
			}
			b.WriteString("\n")
		}
	}
}

func (r *Renderer) events(b *strings.Builder, d manifest.Declaration, sub string) {
	if len(d.Events) == 0 {
		return
	}

	fmt.Fprintf(b, "%s Events\n\n", sub)
	b.WriteString("| Name | Type | Description |\n")
	b.WriteString("| ---- | ---- | ----------- |\n")
	for _, e := range d.Events {
		fmt.Fprintf(b, "| %s | %s | %s |\n",
			codeCell(e.Name),
			codeCell(e.TypeText()),
			sanitizeCell(e.Description))
	}
	b.WriteString("\n")
}

func (r *Renderer) styling(b *strings.Builder, d manifest.Declaration, sub string) {
	hasStyleMeta := len(d.CSSProperties) > 0 || len(d.CSSParts) > 0
	if !hasStyleMeta && !simpleTextStyled[d.Name] {
		return
	}

	fmt.Fprintf(b, "%s Styling\n\n", sub)

	if simpleTextStyled[d.Name] {
		b.WriteString("This component renders plain text and inherits the typography of its surroundings. Adjust it with the shared font tokens:\n\n")
		b.WriteString("```css\nbody {\n  --placeui-font-family-base: 'Roboto', sans-serif;\n}\n```\n\n")
		return
	}

	b.WriteString("This component supports the following style customizations.\n\n")

	if len(d.CSSProperties) > 0 {
		footnote := false
		b.WriteString("| CSS custom property | Default | Description |\n")
		b.WriteString("| ------------------- | ------- | ----------- |\n")
		for _, p := range d.CSSProperties {
			def := p.Default
			if def == "" {
				def = globalStyleDefaults[p.Name]
			}
			desc := sanitizeCell(p.Description)
			if globalTokens[p.Name] {
				desc = strings.TrimSpace(desc + " " + tokenMarker)
				footnote = true
			}
			fmt.Fprintf(b, "| %s | %s | %s |\n", codeCell(p.Name), codeCell(def), desc)
		}
		b.WriteString("\n")
		if footnote {
			b.WriteString(tokenFootnote + "\n\n")
		}
	}

	if len(d.CSSParts) > 0 {
		b.WriteString("| Shadow part | Description |\n")
		b.WriteString("| ----------- | ----------- |\n")
		for _, p := range d.CSSParts {
			fmt.Fprintf(b, "| %s | %s |\n", codeCell(p.Name), sanitizeCell(p.Description))
		}
		b.WriteString("\n")
	}
}

// codeCell wraps non-empty cell text in inline code, sanitized.
func codeCell(s string) string {
	if s == "" {
		return ""
	}
	return "`" + sanitizeCell(s) + "`"
}
