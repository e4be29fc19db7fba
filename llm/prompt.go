package llm

import (
	"fmt"
	"strings"

	"github.com/Zoh007/WealthScore/models"
)

const basePrompt = `You are a helpful AI assistant for WealthScore, a financial wealth management platform. You help users understand their financial data, provide insights about their wealth, and answer questions about financial planning, investments, savings, and budgeting.

Key capabilities you can help with:
- Explaining financial metrics and scores
- Interpreting transaction data and spending patterns
- Providing insights on savings goals and progress
- Offering financial planning advice
- Explaining dashboard features and data visualizations
- Helping with budgeting and expense management

Always be professional, accurate, and helpful. Use the user's actual financial data when available to provide specific insights. Keep responses concise but informative.`

// BuildSystemPrompt embeds the user's current financial summary into the
// assistant prompt. A nil snapshot yields the base prompt only.
func BuildSystemPrompt(snapshot *models.Snapshot) string {
	if snapshot == nil {
		return basePrompt
	}

	var totalBalance, totalDeposits, totalSpent float64
	for _, a := range snapshot.Accounts {
		totalBalance += a.Balance
	}
	for _, d := range snapshot.Deposits {
		totalDeposits += d.Amount
	}
	for _, p := range snapshot.Purchases {
		totalSpent += p.Amount
	}

	lastUpdated := "Unknown"
	if !snapshot.LastUpdated.IsZero() {
		lastUpdated = snapshot.LastUpdated.Format("1/2/2006, 3:04:05 PM")
	}

	var b strings.Builder
	b.WriteString(basePrompt)
	fmt.Fprintf(&b, "\n\nUSER'S CURRENT FINANCIAL DATA:\n")
	fmt.Fprintf(&b, "- WealthScore: %d/100\n", snapshot.WealthScore)
	fmt.Fprintf(&b, "- Total Account Balance: $%.2f\n", totalBalance)
	fmt.Fprintf(&b, "- Total Deposits: $%.2f (%d transactions)\n", totalDeposits, len(snapshot.Deposits))
	fmt.Fprintf(&b, "- Total Spent: $%.2f (%d purchases)\n", totalSpent, len(snapshot.Purchases))
	fmt.Fprintf(&b, "- Accounts: %d accounts\n", len(snapshot.Accounts))
	fmt.Fprintf(&b, "- Last Updated: %s\n", lastUpdated)
	b.WriteString("\nUse this data to provide specific, personalized insights about the user's financial situation.")
	return b.String()
}
