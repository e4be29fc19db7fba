package models

// ChatMessage mirrors the UI's message shape: isUser distinguishes the two
// roles, there is no system role on the wire.
type ChatMessage struct {
	ID        string `json:"id,omitempty"`
	Text      string `json:"text"`
	IsUser    bool   `json:"isUser"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ChatRequest is the POST /api/chat body. FinancialData is optional; when the
// client omits it the server falls back to the poller's current snapshot.
type ChatRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []ChatMessage `json:"conversationHistory,omitempty"`
	FinancialData       *Snapshot     `json:"financialData,omitempty"`
}

// ChatResponse carries the assistant's reply text.
type ChatResponse struct {
	Response string `json:"response"`
}

// PlanningRequest asks for goal-progress classification against the given
// income and savings rate (percent).
type PlanningRequest struct {
	Goals         []Goal  `json:"goals"`
	MonthlyIncome float64 `json:"monthlyIncome"`
	SavingsRate   float64 `json:"savingsRate"`
}

// GoalProgress is the per-goal classification result.
type GoalProgress struct {
	Goal            Goal    `json:"goal"`
	Status          string  `json:"status"`
	MonthlySavings  float64 `json:"monthlySavings"`
	NeededPerMonth  float64 `json:"neededPerMonth"`
	MonthsRemaining int     `json:"monthsRemaining"`
	ProjectedMonths float64 `json:"projectedMonths"`
}
