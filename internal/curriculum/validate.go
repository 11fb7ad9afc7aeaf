package curriculum

import (
	"fmt"
	"strings"

	"github.com/abhisek/edulanding/internal/checklist"
)

// validateCatalog performs the structural checks the schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(sections []Section, items []checklist.Item) error {
	var errs []string

	// Section sequence must be exactly the closed enumeration, in order.
	seen := make(map[SectionID]bool, len(sections))
	for _, s := range sections {
		if seen[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate section ID: %q", s.ID))
		}
		seen[s.ID] = true
		if strings.TrimSpace(s.Body) == "" {
			errs = append(errs, fmt.Sprintf("section %q has an empty body", s.ID))
		}
	}

	want := AllSectionIDs()
	for _, id := range want {
		if !seen[id] {
			errs = append(errs, fmt.Sprintf("section %q is missing", id))
		}
	}
	known := make(map[SectionID]bool, len(want))
	for _, id := range want {
		known[id] = true
	}
	for _, s := range sections {
		if !known[s.ID] {
			errs = append(errs, fmt.Sprintf("unknown section ID: %q", s.ID))
		}
	}
	if len(errs) == 0 {
		for i, s := range sections {
			if s.ID != want[i] {
				errs = append(errs, fmt.Sprintf("section %d is %q, want %q", i, s.ID, want[i]))
			}
		}
	}

	// Charts: every series must share the first series' labels.
	for _, s := range sections {
		for _, c := range s.Charts {
			if len(c.Series) == 0 {
				continue
			}
			first := c.Series[0].Points
			for _, ser := range c.Series[1:] {
				if len(ser.Points) != len(first) {
					errs = append(errs, fmt.Sprintf("section %q chart %q: series %q has %d points, want %d",
						s.ID, c.Title, ser.Name, len(ser.Points), len(first)))
					continue
				}
				for i, p := range ser.Points {
					if p.Label != first[i].Label {
						errs = append(errs, fmt.Sprintf("section %q chart %q: series %q point %d label %q, want %q",
							s.ID, c.Title, ser.Name, i, p.Label, first[i].Label))
					}
				}
			}
		}
	}

	// Checklist items.
	if len(items) == 0 {
		errs = append(errs, "checklist has no items")
	}
	itemIDs := make(map[string]bool, len(items))
	for _, it := range items {
		if itemIDs[it.ID] {
			errs = append(errs, fmt.Sprintf("duplicate checklist item ID: %q", it.ID))
		}
		itemIDs[it.ID] = true
		if strings.TrimSpace(it.Category) == "" {
			errs = append(errs, fmt.Sprintf("checklist item %q has no category", it.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
