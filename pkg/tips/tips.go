// Package tips holds the static financial tips shown alongside the tools.
package tips

// Tip is a short piece of advice with its category badge.
type Tip struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Badge string `json:"badge"`
	Icon  string `json:"icon"`
}

var catalog = []Tip{
	{
		Title: "The 50/30/20 rule",
		Body:  "Split your income: 50% for needs, 30% for wants, 20% for savings.",
		Badge: "Basic planning",
		Icon:  "Target",
	},
	{
		Title: "Emergency fund",
		Body:  "Build a reserve covering 3-6 months of expenses for unexpected situations.",
		Badge: "Financial protection",
		Icon:  "Shield",
	},
	{
		Title: "Automation",
		Body:  "Set up automatic transfers to your savings accounts.",
		Badge: "Efficiency",
		Icon:  "Zap",
	},
	{
		Title: "Debt control",
		Body:  "Pay off high-interest debts first.",
		Badge: "Optimization",
		Icon:  "TrendingDown",
	},
	{
		Title: "The 24-hour rule",
		Body:  "Wait a day before large purchases to avoid impulse spending.",
		Badge: "Mindfulness",
		Icon:  "Clock",
	},
	{
		Title: "Invest in yourself",
		Body:  "Invest in education and skills, the best way to grow your income.",
		Badge: "Growth",
		Icon:  "GraduationCap",
	},
}

// All returns the tips in display order. The slice is a copy.
func All() []Tip {
	return append([]Tip(nil), catalog...)
}
