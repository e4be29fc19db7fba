// Package nessie is a thin client for the Nessie demo banking API. The
// upstream is an unauthenticated REST API keyed by a query parameter; every
// call here is a single best-effort request with no retry.
package nessie

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Zoh007/WealthScore/logger"
	"github.com/Zoh007/WealthScore/models"
	"go.uber.org/zap"
)

const defaultBaseURL = "http://api.nessieisreal.com"

// StatusError reports a non-2xx upstream response so handlers can relay the
// status code.
type StatusError struct {
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("nessie: %s returned status %d", e.Path, e.Status)
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL and API key.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientFromEnv reads NESSIE_BASE_URL and NESSIE_API_KEY. The key is not
// defaulted: a missing key means every upstream call fails with 401, which the
// caller surfaces like any other upstream error.
func NewClientFromEnv() *Client {
	return NewClient(os.Getenv("NESSIE_BASE_URL"), os.Getenv("NESSIE_API_KEY"))
}

// BuildURL appends the API key and any extra query string to a path.
func (c *Client) BuildURL(path, rawQuery string) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/") + "?key=" + url.QueryEscape(c.apiKey)
	if rawQuery != "" {
		u += "&" + rawQuery
	}
	return u
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BuildURL(path, ""), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Path: path, Status: resp.StatusCode}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Accounts fetches all accounts for a customer.
func (c *Client) Accounts(ctx context.Context, customerID string) ([]models.Account, error) {
	var accounts []models.Account
	if err := c.getJSON(ctx, "customers/"+customerID+"/accounts", &accounts); err != nil {
		return nil, fmt.Errorf("fetch accounts: %w", err)
	}
	return accounts, nil
}

// rawTransaction covers the upstream's per-endpoint date field names.
type rawTransaction struct {
	models.Transaction
	TransactionDate     string `json:"transaction_date"`
	PurchaseDate        string `json:"purchase_date"`
	PaymentDate         string `json:"payment_date"`
	UpcomingPaymentDate string `json:"upcoming_payment_date"`
}

func (r rawTransaction) normalize(typ models.TransactionType) models.Transaction {
	tx := r.Transaction
	tx.Type = typ
	if tx.Date == "" {
		switch typ {
		case models.TypeDeposit:
			tx.Date = r.TransactionDate
		case models.TypePurchase:
			tx.Date = r.PurchaseDate
		case models.TypeBill:
			tx.Date = r.PaymentDate
			if tx.Date == "" {
				tx.Date = r.UpcomingPaymentDate
			}
		}
	}
	return tx
}

func (c *Client) transactions(ctx context.Context, accountID, endpoint string, typ models.TransactionType) ([]models.Transaction, error) {
	var raw []rawTransaction
	if err := c.getJSON(ctx, "accounts/"+accountID+"/"+endpoint, &raw); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	txns := make([]models.Transaction, 0, len(raw))
	for _, r := range raw {
		txns = append(txns, r.normalize(typ))
	}
	return txns, nil
}

// Deposits fetches an account's deposits, normalizing transaction_date into
// the unified date field.
func (c *Client) Deposits(ctx context.Context, accountID string) ([]models.Transaction, error) {
	return c.transactions(ctx, accountID, "deposits", models.TypeDeposit)
}

// Purchases fetches an account's purchases, normalizing purchase_date.
func (c *Client) Purchases(ctx context.Context, accountID string) ([]models.Transaction, error) {
	return c.transactions(ctx, accountID, "purchases", models.TypePurchase)
}

// Bills fetches an account's bills.
func (c *Client) Bills(ctx context.Context, accountID string) ([]models.Transaction, error) {
	return c.transactions(ctx, accountID, "bills", models.TypeBill)
}

// EnterpriseBills fetches the enterprise bills feed. The upstream is not
// consistent about its shape, so a single object becomes a one-element slice
// and anything that is neither array nor object comes back as nil with no
// error — callers decide what to substitute.
func (c *Client) EnterpriseBills(ctx context.Context) ([]models.Bill, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "enterprise/bills", &raw); err != nil {
		return nil, fmt.Errorf("fetch enterprise bills: %w", err)
	}

	trimmed := strings.TrimSpace(string(raw))
	switch {
	case strings.HasPrefix(trimmed, "["):
		var bills []models.Bill
		if err := json.Unmarshal(raw, &bills); err != nil {
			return nil, fmt.Errorf("decode enterprise bills: %w", err)
		}
		return bills, nil
	case strings.HasPrefix(trimmed, "{"):
		var bill models.Bill
		if err := json.Unmarshal(raw, &bill); err != nil {
			return nil, fmt.Errorf("decode enterprise bill: %w", err)
		}
		return []models.Bill{bill}, nil
	default:
		logger.Get().Warn("enterprise bills returned unexpected shape",
			zap.String("body", trimmed))
		return nil, nil
	}
}

// ProxyResult is the relayed upstream response.
type ProxyResult struct {
	StatusCode  int
	Body        []byte
	ContentType string
	OK          bool
}

// Proxy forwards an arbitrary path and query string to the upstream with the
// API key appended, relaying the response verbatim. Used by the catch-all
// route; no retry, no backoff.
func (c *Client) Proxy(ctx context.Context, method, path, rawQuery string, body io.Reader) (*ProxyResult, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BuildURL(path, rawQuery), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &ProxyResult{
		StatusCode:  resp.StatusCode,
		Body:        data,
		ContentType: resp.Header.Get("Content-Type"),
		OK:          resp.StatusCode >= 200 && resp.StatusCode < 300,
	}, nil
}
