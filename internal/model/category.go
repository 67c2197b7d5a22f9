package model

// Category is a named bucket of suggestions defined by its trigger keywords.
// Icon and Color are display metadata only.
type Category struct {
	Name     string   `json:"name"     yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Icon     string   `json:"icon"     yaml:"icon"`
	Color    string   `json:"color"    yaml:"color"`
}
