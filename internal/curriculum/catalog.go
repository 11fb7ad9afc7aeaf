package curriculum

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/edulanding/internal/checklist"
)

const (
	catalogFile = "catalog.yaml"
	schemaFile  = "catalog.schema.json"
	schemaURL   = "schema://edulanding/catalog.json"
)

//go:embed catalog.yaml catalog.schema.json sections/*.md
var embedded embed.FS

// Catalog is the complete, immutable curriculum: ordered sections plus the
// pre-launch checklist.
type Catalog struct {
	Title    string
	Subtitle string
	Edition  string

	sections     []Section
	index        map[SectionID]int
	items        []checklist.Item
	template     string
	templateHint string
}

type catalogDoc struct {
	Title     string         `yaml:"title"`
	Subtitle  string         `yaml:"subtitle"`
	Edition   string         `yaml:"edition"`
	Sections  []sectionDoc   `yaml:"sections"`
	Checklist checklistBlock `yaml:"checklist"`
}

type sectionDoc struct {
	ID     SectionID `yaml:"id"`
	Title  string    `yaml:"title"`
	Icon   string    `yaml:"icon"`
	Body   string    `yaml:"body"`
	Charts []Chart   `yaml:"charts"`
}

type checklistBlock struct {
	Template     string           `yaml:"template"`
	TemplateHint string           `yaml:"template_hint"`
	Items        []checklist.Item `yaml:"items"`
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Load(embedded)
})

// Default returns the catalog compiled into the binary. The result is
// loaded and validated once.
func Default() (*Catalog, error) {
	return loadDefault()
}

// Load reads catalog.yaml and the section bodies it references from fsys,
// validates the document against the catalog schema and then checks the
// structural invariants.
func Load(fsys fs.FS) (*Catalog, error) {
	raw, err := fs.ReadFile(fsys, catalogFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", catalogFile, err)
	}

	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var doc catalogDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", catalogFile, err)
	}

	c := &Catalog{
		Title:        doc.Title,
		Subtitle:     doc.Subtitle,
		Edition:      doc.Edition,
		index:        make(map[SectionID]int, len(doc.Sections)),
		items:        doc.Checklist.Items,
		template:     doc.Checklist.Template,
		templateHint: doc.Checklist.TemplateHint,
	}

	for _, sd := range doc.Sections {
		body, err := fs.ReadFile(fsys, sd.Body)
		if err != nil {
			return nil, fmt.Errorf("section %q: read body: %w", sd.ID, err)
		}
		c.sections = append(c.sections, Section{
			ID:     sd.ID,
			Title:  sd.Title,
			Icon:   sd.Icon,
			Body:   string(body),
			Charts: sd.Charts,
		})
	}

	if err := validateCatalog(c.sections, c.items); err != nil {
		return nil, err
	}

	for i, s := range c.sections {
		c.index[s.ID] = i
	}
	return c, nil
}

// validateSchema checks the raw YAML document against the embedded JSON schema.
func validateSchema(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode %s: %w", catalogFile, err)
	}

	// Round-trip through JSON so the validator sees json.Number values and
	// string-keyed objects only.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s as json: %w", catalogFile, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("parse %s as json: %w", catalogFile, err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}
	return nil
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	raw, err := embedded.ReadFile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", schemaFile, err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", schemaFile, err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	return s, nil
})

// Sections returns all sections in curriculum order.
func (c *Catalog) Sections() []Section {
	return slices.Clone(c.sections)
}

// IDs returns the ordered section id sequence.
func (c *Catalog) IDs() []SectionID {
	ids := make([]SectionID, len(c.sections))
	for i, s := range c.sections {
		ids[i] = s.ID
	}
	return ids
}

// Section returns the section with the given id.
func (c *Catalog) Section(id SectionID) (Section, bool) {
	i, ok := c.index[id]
	if !ok {
		return Section{}, false
	}
	return c.sections[i], true
}

// ChecklistItems returns the pre-launch checklist items in authored order.
func (c *Catalog) ChecklistItems() []checklist.Item {
	return slices.Clone(c.items)
}

// ChecklistTemplate returns the A/B test planning template shown with the checklist.
func (c *Catalog) ChecklistTemplate() string {
	return c.template
}

// ChecklistTemplateHint returns the one-line usage hint for the template.
func (c *Catalog) ChecklistTemplateHint() string {
	return c.templateHint
}
