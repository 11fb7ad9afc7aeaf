package checklist

// Item is a single pre-launch verification statement.
type Item struct {
	ID       string `yaml:"id" json:"id"`
	Category string `yaml:"category" json:"category"`
	Text     string `yaml:"text" json:"text"`
}

// Group is one category of items, in list order.
type Group struct {
	Category string `json:"category"`
	Items    []Item `json:"items"`
}

// Categories returns the distinct categories of items in order of first appearance.
func Categories(items []Item) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, it := range items {
		if seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		cats = append(cats, it.Category)
	}
	return cats
}

// GroupByCategory partitions items into groups. Category order is first
// appearance; item order within a group follows the input.
func GroupByCategory(items []Item) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, it := range items {
		i, ok := index[it.Category]
		if !ok {
			i = len(groups)
			index[it.Category] = i
			groups = append(groups, Group{Category: it.Category})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}
