package category

import (
	"strconv"
	"strings"

	"keyword-soup/internal/model"
)

type Service interface {
	// Categorize groups suggestions by every category whose keywords they contain
	Categorize(suggestions []string) Result

	// MatchCategories returns the categories a single suggestion belongs to
	MatchCategories(suggestion string) []string

	// Metrics computes per-category counts and percentages against total
	Metrics(result Result, total int) Metrics

	// Categories returns the configured table, display metadata included
	Categories() []model.Category
}

type service struct {
	table Table
}

func New(table Table) Service {
	return &service{table: table}
}

func (s *service) Categories() []model.Category {
	return s.table.Categories()
}

// matchIndexes returns the table positions of the categories that match.
func (s *service) matchIndexes(suggestion string) []int {
	if suggestion == "" {
		return nil
	}

	lower := strings.ToLower(suggestion)
	var matched []int
	for i, keywords := range s.table.lowered {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, i)
				break
			}
		}
	}
	return matched
}

func (s *service) MatchCategories(suggestion string) []string {
	idx := s.matchIndexes(suggestion)
	names := make([]string, len(idx))
	for i, j := range idx {
		names[i] = s.table.categories[j].Name
	}
	return names
}

func (s *service) Categorize(suggestions []string) Result {
	groups := make([]Group, len(s.table.categories))
	members := make([]map[string]struct{}, len(s.table.categories))
	for i, c := range s.table.categories {
		groups[i] = Group{Name: c.Name, Suggestions: []string{}}
		members[i] = make(map[string]struct{})
	}

	for _, suggestion := range suggestions {
		for _, i := range s.matchIndexes(suggestion) {
			if _, ok := members[i][suggestion]; ok {
				continue
			}
			members[i][suggestion] = struct{}{}
			groups[i].Suggestions = append(groups[i].Suggestions, suggestion)
		}
	}

	return Result{Groups: groups}
}

func (s *service) Metrics(result Result, total int) Metrics {
	metrics := Metrics{
		Total:      total,
		Categories: make([]CategoryMetric, 0, len(result.Groups)),
	}

	for _, g := range result.Groups {
		count := len(g.Suggestions)
		percentage := 0.0
		if total > 0 {
			percentage = roundOneDecimal(float64(count) / float64(total) * 100)
		}
		metrics.Categories = append(metrics.Categories, CategoryMetric{
			Name:       g.Name,
			Count:      count,
			Percentage: percentage,
		})
	}

	return metrics
}

// roundOneDecimal rounds on the exact decimal value, ties to even.
func roundOneDecimal(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}
