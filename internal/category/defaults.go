package category

import "keyword-soup/internal/model"

// DefaultCategories is the built-in category table used when no categories
// file is configured.
func DefaultCategories() []model.Category {
	return []model.Category{
		{Name: "Questions", Keywords: []string{"who", "what", "where", "when", "why", "how", "are"}, Icon: "❓", Color: "#667eea"},
		{Name: "Prepositions", Keywords: []string{"can", "with", "for"}, Icon: "🔗", Color: "#764ba2"},
		{Name: "Comparisons", Keywords: []string{"vs", "versus", "or"}, Icon: "⚖️", Color: "#f093fb"},
		{Name: "Intent_Based", Keywords: []string{"buy", "review", "price", "best", "top", "how to", "why to"}, Icon: "🎯", Color: "#4facfe"},
		{Name: "Time_Related", Keywords: []string{"when", "schedule", "deadline", "today", "now", "latest"}, Icon: "⏰", Color: "#43e97b"},
		{Name: "Audience_Specific", Keywords: []string{"for beginners", "for small businesses", "for students", "for professionals"}, Icon: "👥", Color: "#fa709a"},
		{Name: "Problem_Solving", Keywords: []string{"solution", "issue", "error", "troubleshoot", "fix"}, Icon: "🔧", Color: "#30cfd0"},
		{Name: "Feature_Specific", Keywords: []string{"with video", "with images", "analytics", "tools", "with example"}, Icon: "⚙️", Color: "#a8edea"},
		{Name: "Opinions_Reviews", Keywords: []string{"review", "opinion", "rating", "feedback", "testimonial"}, Icon: "⭐", Color: "#ffd89b"},
		{Name: "Cost_Related", Keywords: []string{"price", "cost", "budget", "cheap", "expensive", "value"}, Icon: "💰", Color: "#19547b"},
		{Name: "Trend_Based", Keywords: []string{"trends", "new", "upcoming"}, Icon: "📈", Color: "#f5af19"},
	}
}
