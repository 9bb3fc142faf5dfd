package docgen

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// InventoryRow is one summary entry: a link-wrapped display name and the
// first paragraph of the component description.
type InventoryRow struct {
	Name        string
	Description string
}

// InventoryTable accumulates rows in arrival order and sorts them once at
// finalization. The header row is fixed and never participates in sorting.
type InventoryTable struct {
	rows []InventoryRow
}

// Add appends a row. The name must already be link-wrapped by the caller;
// the description is cut to its first paragraph and sanitized here.
func (t *InventoryTable) Add(linkedName, description string) {
	t.rows = append(t.rows, InventoryRow{
		Name:        linkedName,
		Description: sanitizeCell(firstParagraph(description)),
	})
}

func (t *InventoryTable) Len() int {
	return len(t.rows)
}

func (t *InventoryTable) sortBy(c *collate.Collator) {
	sort.SliceStable(t.rows, func(i, j int) bool {
		return c.CompareString(t.rows[i].Name, t.rows[j].Name) < 0
	})
}

// Markdown renders the table in its current row order, header first.
func (t *InventoryTable) Markdown() string {
	var b strings.Builder
	b.WriteString("| Component | Description |\n")
	b.WriteString("| --------- | ----------- |\n")
	for _, row := range t.rows {
		fmt.Fprintf(&b, "| %s | %s |\n", row.Name, row.Description)
	}
	return b.String()
}

// Inventory holds the three summary tables: the root table for top-level
// components and the bifurcated provider/details tables for the building
// blocks group.
type Inventory struct {
	Root     InventoryTable
	Provider InventoryTable
	Details  InventoryTable

	collator *collate.Collator
}

// NewInventory builds an inventory sorting with the collation rules of the
// given BCP 47 locale. Unrecognized locales fall back to the root locale.
func NewInventory(locale string) *Inventory {
	return &Inventory{collator: collate.New(language.Make(locale))}
}

// Finalize sorts every table by display name. Call exactly once, after all
// rows (including the synthetic building-blocks row) have been added.
func (inv *Inventory) Finalize() {
	inv.Root.sortBy(inv.collator)
	inv.Provider.sortBy(inv.collator)
	inv.Details.sortBy(inv.collator)
}
