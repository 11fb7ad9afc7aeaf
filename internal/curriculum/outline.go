package curriculum

import (
	"strings"

	"rsc.io/markdown"
)

// Heading is one entry of a section outline.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Outline returns the headings of a section body in document order.
func Outline(s Section) []Heading {
	p := markdown.Parser{Table: true}
	doc := p.Parse(s.Body)

	var out []Heading
	for _, b := range doc.Blocks {
		h, ok := b.(*markdown.Heading)
		if !ok || h.Text == nil {
			continue
		}
		out = append(out, Heading{
			Level: h.Level,
			Text:  strings.TrimSpace(plainText(h.Text.Inline)),
		})
	}
	return out
}

// plainText flattens inline markup to its visible text.
func plainText(inlines []markdown.Inline) string {
	var b strings.Builder
	for _, in := range inlines {
		switch x := in.(type) {
		case *markdown.Plain:
			b.WriteString(x.Text)
		case *markdown.Strong:
			b.WriteString(plainText(x.Inner))
		case *markdown.Emph:
			b.WriteString(plainText(x.Inner))
		case *markdown.Del:
			b.WriteString(plainText(x.Inner))
		case *markdown.Link:
			b.WriteString(plainText(x.Inner))
		case *markdown.Code:
			b.WriteString(x.Text)
		case *markdown.Escaped:
			b.WriteString(x.Text)
		}
	}
	return b.String()
}
