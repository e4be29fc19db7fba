package nessie

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Address is the customer address shape the upstream requires on creation.
type Address struct {
	StreetNumber string `json:"street_number"`
	StreetName   string `json:"street_name"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
}

// NewCustomer is the customer creation payload.
type NewCustomer struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Address   Address `json:"address"`
}

// NewAccount is the account creation payload.
type NewAccount struct {
	Type     string  `json:"type"`
	Nickname string  `json:"nickname"`
	Rewards  float64 `json:"rewards"`
	Balance  float64 `json:"balance"`
}

// NewDeposit is the deposit creation payload.
type NewDeposit struct {
	Medium          string  `json:"medium"`
	TransactionDate string  `json:"transaction_date"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description"`
}

// NewPurchase is the purchase creation payload.
type NewPurchase struct {
	MerchantID   string  `json:"merchant_id,omitempty"`
	Medium       string  `json:"medium"`
	PurchaseDate string  `json:"purchase_date"`
	Amount       float64 `json:"amount"`
	Description  string  `json:"description"`
}

// NewBill is the bill creation payload.
type NewBill struct {
	Status        string  `json:"status"`
	Payee         string  `json:"payee"`
	Nickname      string  `json:"nickname"`
	PaymentDate   string  `json:"payment_date"`
	RecurringDate int     `json:"recurring_date"`
	PaymentAmount float64 `json:"payment_amount"`
}

// createResponse wraps the upstream's objectCreated envelope.
type createResponse struct {
	ObjectCreated struct {
		ID string `json:"_id"`
	} `json:"objectCreated"`
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BuildURL(path, ""), bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("nessie: create %s returned status %d", path, resp.StatusCode)
	}

	var created createResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decode create response: %w", err)
	}
	return created.ObjectCreated.ID, nil
}

// CreateCustomer creates a customer and returns its id.
func (c *Client) CreateCustomer(ctx context.Context, customer NewCustomer) (string, error) {
	return c.postJSON(ctx, "customers", customer)
}

// CreateAccount creates an account under a customer and returns its id.
func (c *Client) CreateAccount(ctx context.Context, customerID string, account NewAccount) (string, error) {
	return c.postJSON(ctx, "customers/"+customerID+"/accounts", account)
}

// CreateDeposit creates a deposit on an account and returns its id.
func (c *Client) CreateDeposit(ctx context.Context, accountID string, deposit NewDeposit) (string, error) {
	return c.postJSON(ctx, "accounts/"+accountID+"/deposits", deposit)
}

// CreatePurchase creates a purchase on an account and returns its id.
func (c *Client) CreatePurchase(ctx context.Context, accountID string, purchase NewPurchase) (string, error) {
	return c.postJSON(ctx, "accounts/"+accountID+"/purchases", purchase)
}

// CreateBill creates a bill on an account and returns its id.
func (c *Client) CreateBill(ctx context.Context, accountID string, bill NewBill) (string, error) {
	return c.postJSON(ctx, "accounts/"+accountID+"/bills", bill)
}
