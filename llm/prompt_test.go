package llm

import (
	"strings"
	"testing"
	"time"

	"github.com/Zoh007/WealthScore/models"
)

func TestBuildSystemPromptWithoutSnapshot(t *testing.T) {
	prompt := BuildSystemPrompt(nil)
	if prompt != basePrompt {
		t.Error("nil snapshot should yield the base prompt only")
	}
	if strings.Contains(prompt, "USER'S CURRENT FINANCIAL DATA") {
		t.Error("base prompt should not include financial data section")
	}
}

func TestBuildSystemPromptEmbedsSnapshot(t *testing.T) {
	snapshot := &models.Snapshot{
		Accounts:    []models.Account{{Balance: 6000}, {Balance: 4000}},
		Deposits:    []models.Transaction{{Amount: 1500}},
		Purchases:   []models.Transaction{{Amount: 200}, {Amount: 300}},
		WealthScore: 72,
		LastUpdated: time.Date(2025, time.September, 1, 14, 30, 0, 0, time.UTC),
	}

	prompt := BuildSystemPrompt(snapshot)

	for _, want := range []string{
		"WealthScore: 72/100",
		"Total Account Balance: $10000.00",
		"Total Deposits: $1500.00 (1 transactions)",
		"Total Spent: $500.00 (2 purchases)",
		"Accounts: 2 accounts",
		"9/1/2025",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildMessagesOrder(t *testing.T) {
	req := models.ChatRequest{
		Message: "What should I save?",
		ConversationHistory: []models.ChatMessage{
			{Text: "Hi", IsUser: true},
			{Text: "Hello!", IsUser: false},
		},
	}

	messages := BuildMessages(req, nil)

	if len(messages) != 4 {
		t.Fatalf("got %d messages, want 4", len(messages))
	}
	wantRoles := []string{"system", "user", "assistant", "user"}
	for i, want := range wantRoles {
		if messages[i].Role != want {
			t.Errorf("message %d role = %q, want %q", i, messages[i].Role, want)
		}
	}
	if messages[3].Content != "What should I save?" {
		t.Errorf("current message = %q", messages[3].Content)
	}
}
