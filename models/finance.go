package models

import "time"

// TransactionType tags which upstream endpoint a transaction came from. Every
// transaction carries exactly one of these.
type TransactionType string

const (
	TypeDeposit  TransactionType = "deposit"
	TypePurchase TransactionType = "purchase"
	TypeBill     TransactionType = "bill"
)

// Account is a customer account as returned by the demo banking API. Fetched
// read-only, never mutated locally.
type Account struct {
	ID         string  `json:"_id"`
	CustomerID string  `json:"customer_id,omitempty"`
	Balance    float64 `json:"balance"`
	Type       string  `json:"type"`
	Nickname   string  `json:"nickname,omitempty"`
	Rewards    float64 `json:"rewards,omitempty"`
}

// Transaction is the unified shape for deposits, purchases and per-account
// bills. The upstream returns different date field names per endpoint
// (transaction_date, purchase_date); the nessie client normalizes those into
// Date and stamps Type.
type Transaction struct {
	ID           string          `json:"_id"`
	Amount       float64         `json:"amount"`
	Description  string          `json:"description,omitempty"`
	Date         string          `json:"date,omitempty"`
	Type         TransactionType `json:"type,omitempty"`
	Status       string          `json:"status,omitempty"`
	Medium       string          `json:"medium,omitempty"`
	MerchantID   string          `json:"merchant_id,omitempty"`
	MerchantName string          `json:"merchant_name,omitempty"`
	PayerID      string          `json:"payer_id,omitempty"`
	PayeeID      string          `json:"payee_id,omitempty"`
}

// Bill is the enterprise bills endpoint shape, distinct from per-account
// bill transactions.
type Bill struct {
	ID                  string  `json:"_id"`
	PaymentAmount       float64 `json:"payment_amount"`
	Nickname            string  `json:"nickname,omitempty"`
	UpcomingPaymentDate string  `json:"upcoming_payment_date,omitempty"`
	PaymentDate         string  `json:"payment_date,omitempty"`
	CreationDate        string  `json:"creation_date,omitempty"`
	Payee               string  `json:"payee,omitempty"`
	Status              string  `json:"status,omitempty"`
	RecurringDate       int     `json:"recurring_date,omitempty"`
}

// ScoreBreakdown holds the four weighted sub-terms of the wealth score.
type ScoreBreakdown struct {
	Balance   float64 `json:"balance"`
	Deposit   float64 `json:"deposit"`
	Spending  float64 `json:"spending"`
	Diversity float64 `json:"diversity"`
}

// Snapshot is the full financial dataset the poller rebuilds on every tick.
// It is replaced wholesale, never patched.
type Snapshot struct {
	Accounts    []Account      `json:"accounts"`
	Deposits    []Transaction  `json:"deposits"`
	Purchases   []Transaction  `json:"purchases"`
	Bills       []Transaction  `json:"bills"`
	WealthScore int            `json:"wealthScore"`
	Breakdown   ScoreBreakdown `json:"scoreBreakdown"`
	LastUpdated time.Time      `json:"lastUpdated"`
}

// Goal is a user-defined savings target. Goals live in the browser's local
// storage; the server only ever sees them inside planning requests.
type Goal struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	TargetDate  string  `json:"targetDate"`
	Description string  `json:"description,omitempty"`
}
