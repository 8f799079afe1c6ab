package quiz

// DefaultBank returns the built-in question bank. Each call returns a fresh
// copy so callers cannot alter the seed data.
func DefaultBank() []Question {
	out := make([]Question, len(defaultBank))
	for i, q := range defaultBank {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

var defaultBank = []Question{
	{
		ID:          1,
		Text:        "What share of income is recommended for savings?",
		Options:     []string{"5%", "10-20%", "30%", "50%"},
		Correct:     1,
		Explanation: "Financial experts recommend putting 10-20% of income into savings and investments.",
		Difficulty:  Beginner,
	},
	{
		ID:   2,
		Text: "What is an emergency fund?",
		Options: []string{
			"Money for entertainment",
			"Savings for a vacation",
			"A reserve covering 3-6 months of expenses",
			"An investment portfolio",
		},
		Correct:     2,
		Explanation: "An emergency fund should cover 3-6 months of expenses in case income is lost.",
		Difficulty:  Beginner,
	},
	{
		ID:   3,
		Text: "Which rule helps control impulse purchases?",
		Options: []string{
			"The 24-hour rule",
			"Buy immediately",
			"Take out a loan",
			"Wait a whole year",
		},
		Correct:     0,
		Explanation: "The 24-hour rule: wait a day before a large purchase to make sure you really need it.",
		Difficulty:  Beginner,
	},
	{
		ID:   4,
		Text: "What does the 50/30/20 rule mean?",
		Options: []string{
			"50% entertainment, 30% food, 20% housing",
			"50% needs, 30% wants, 20% savings",
			"50% savings, 30% entertainment, 20% food",
			"50% investments, 30% taxes, 20% expenses",
		},
		Correct:     1,
		Explanation: "The 50/30/20 rule balances income between the main spending categories.",
		Difficulty:  Beginner,
	},
	{
		ID:   5,
		Text: "What is investment diversification?",
		Options: []string{
			"Putting all money into a single stock",
			"Spreading investments across different assets",
			"Buying only government bonds",
			"Investing only in real estate",
		},
		Correct:     1,
		Explanation: "Diversification lowers risk by spreading investments across different asset types.",
		Difficulty:  Intermediate,
	},
	{
		ID:   6,
		Text: "What is the main goal of rebalancing a portfolio?",
		Options: []string{
			"Increase returns at any cost",
			"Keep the desired asset allocation",
			"Sell every losing asset",
			"Buy only rising stocks",
		},
		Correct:     1,
		Explanation: "Rebalancing keeps the target asset allocation in line with the investment strategy.",
		Difficulty:  Intermediate,
	},
	{
		ID:   7,
		Text: "What does the Sharpe ratio show?",
		Options: []string{
			"Only the return of an investment",
			"Return relative to the risk taken",
			"The number of trades per year",
			"The size of the broker's fee",
		},
		Correct:     1,
		Explanation: "The Sharpe ratio measures investment efficiency adjusted for the risk taken.",
		Difficulty:  Intermediate,
	},
	{
		ID:   8,
		Text: "What is the compound interest effect?",
		Options: []string{
			"Simple interest accrual",
			"Earning interest on interest",
			"Tax deducted from interest",
			"Monthly interest payouts",
		},
		Correct:     1,
		Explanation: "Compound interest accrues not only on the principal but also on interest already earned.",
		Difficulty:  Advanced,
	},
	{
		ID:   9,
		Text: "What does currency hedging mean?",
		Options: []string{
			"Buying only rouble assets",
			"Protection against currency risk",
			"Investing in cryptocurrency",
			"Exchanging currency every day",
		},
		Correct:     1,
		Explanation: "Currency hedging protects a portfolio from adverse exchange-rate moves.",
		Difficulty:  Advanced,
	},
	{
		ID:   10,
		Text: "Which measure best reflects the actual return after inflation?",
		Options: []string{
			"Nominal return",
			"Real return",
			"Average return",
			"Maximum return",
		},
		Correct:     1,
		Explanation: "Real return accounts for inflation and shows the actual growth in purchasing power.",
		Difficulty:  Advanced,
	},
}
