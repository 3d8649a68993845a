package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
)

// DefaultBadgeClass is used for categories without a configured style
const DefaultBadgeClass = "badge-pollution"

// CategoryStyle maps a category name to its badge class
type CategoryStyle struct {
	ID         types.CategoryID `yaml:"id,omitempty"`
	Name       string           `yaml:"name"`
	BadgeClass string           `yaml:"badge_class"`
}

// Validate validates the category style
func (c *CategoryStyle) Validate() error {
	if c.Name == "" {
		return goerr.New("category name is required")
	}
	if c.BadgeClass == "" {
		return goerr.New("badge class is required", goerr.V("name", c.Name))
	}
	if c.ID < 0 {
		return goerr.New("category id must not be negative", goerr.V("name", c.Name), goerr.V("id", c.ID))
	}
	return nil
}

// CategoryStyles is the declarative category to badge lookup used by the reports table
type CategoryStyles struct {
	Styles   []CategoryStyle `yaml:"styles"`
	Fallback string          `yaml:"fallback,omitempty"`
}

// DefaultCategoryStyles returns the built-in category styles
func DefaultCategoryStyles() *CategoryStyles {
	return &CategoryStyles{
		Styles: []CategoryStyle{
			{Name: "Pollution", BadgeClass: "badge-pollution"},
			{Name: "Wildlife", BadgeClass: "badge-wildlife"},
			{Name: "Waste Management", BadgeClass: "badge-waste"},
			{Name: "Deforestation", BadgeClass: "badge-deforestation"},
			{Name: "Water Bodies", BadgeClass: "badge-water"},
			{Name: "Climate Action", BadgeClass: "badge-climate"},
		},
		Fallback: DefaultBadgeClass,
	}
}

// Validate validates the category styles
func (c *CategoryStyles) Validate() error {
	names := make(map[string]bool)
	for i, style := range c.Styles {
		if err := style.Validate(); err != nil {
			return goerr.Wrap(err, "invalid category style at index",
				goerr.V("index", i))
		}
		if names[style.Name] {
			return goerr.New("duplicate category style",
				goerr.V("name", style.Name))
		}
		names[style.Name] = true
	}
	return nil
}

// BadgeClass returns the badge class for a category, or the fallback for unknown categories
func (c *CategoryStyles) BadgeClass(category string) string {
	if c != nil {
		for _, style := range c.Styles {
			if style.Name == category {
				return style.BadgeClass
			}
		}
		if c.Fallback != "" {
			return c.Fallback
		}
	}
	return DefaultBadgeClass
}

// CategoryOption is one choice of the report form category selector
type CategoryOption struct {
	ID   types.CategoryID
	Name string
}

// Options returns the form choices. Styles without an explicit ID are numbered by position, starting at 1.
func (c *CategoryStyles) Options() []CategoryOption {
	if c == nil {
		return nil
	}

	options := make([]CategoryOption, 0, len(c.Styles))
	for i, style := range c.Styles {
		id := style.ID
		if id == 0 {
			id = types.CategoryID(i + 1)
		}
		options = append(options, CategoryOption{ID: id, Name: style.Name})
	}
	return options
}
