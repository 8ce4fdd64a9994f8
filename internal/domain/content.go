package domain

// Service is a consulting offering shown on the marketing site
type Service struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Audience    []string `json:"audience" yaml:"audience"`
	Description string   `json:"description" yaml:"description"`
	Highlights  []string `json:"highlights" yaml:"highlights"`
}

// Highlight is a headline metric shown on the marketing site
type Highlight struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}
