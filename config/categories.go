package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"keyword-soup/internal/category"
	"keyword-soup/internal/model"
)

// BuildCategoryTable returns the table from the configured file, or the
// built-in table when no file is set.
func BuildCategoryTable(cfg CategoriesConfig) (category.Table, error) {
	categories := category.DefaultCategories()
	if cfg.File != "" {
		loaded, err := LoadCategories(cfg.File)
		if err != nil {
			return category.Table{}, err
		}
		categories = loaded
	}
	return category.NewTable(categories)
}

// LoadCategories reads a category table from a YAML file, keeping the order
// in which categories are declared. Two layouts are accepted:
//
//	Questions: [who, what, how]         # name -> keywords
//	Cost_Related:
//	  keywords: [price, cost]           # name -> {keywords, icon, color}
//	  icon: "💰"
//
// or a list of {name, keywords, icon, color} entries.
func LoadCategories(path string) ([]model.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read categories file: %w", err)
	}
	return ParseCategories(data)
}

// ParseCategories decodes a category table document. See LoadCategories.
func ParseCategories(data []byte) ([]model.Category, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("parse categories: empty document")
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var categories []model.Category
		if err := root.Decode(&categories); err != nil {
			return nil, fmt.Errorf("parse categories: %w", err)
		}
		return categories, nil

	case yaml.MappingNode:
		categories := make([]model.Category, 0, len(root.Content)/2)
		for i := 0; i+1 < len(root.Content); i += 2 {
			name, value := root.Content[i].Value, root.Content[i+1]

			c := model.Category{Name: name}
			switch value.Kind {
			case yaml.SequenceNode:
				if err := value.Decode(&c.Keywords); err != nil {
					return nil, fmt.Errorf("parse category %s: %w", name, err)
				}
			case yaml.MappingNode:
				if err := value.Decode(&c); err != nil {
					return nil, fmt.Errorf("parse category %s: %w", name, err)
				}
				c.Name = name
			default:
				return nil, fmt.Errorf("parse category %s: expected list or mapping at line %d", name, value.Line)
			}
			categories = append(categories, c)
		}
		return categories, nil

	default:
		return nil, fmt.Errorf("parse categories: expected mapping or list at line %d", root.Line)
	}
}
