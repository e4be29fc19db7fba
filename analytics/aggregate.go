// Package analytics holds the pure reductions over transaction lists: day
// bucketing, month/week rollups and bill-to-calendar-event conversion.
package analytics

import (
	"sort"
	"time"

	"github.com/Zoh007/WealthScore/models"
	"github.com/shopspring/decimal"
)

const dayKeyLayout = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	dayKeyLayout,
}

// DateKey normalizes a transaction date to its yyyy-MM-dd bucket key.
// Returns false for missing or unparseable dates.
func DateKey(date string) (string, bool) {
	if date == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format(dayKeyLayout), true
		}
	}
	return "", false
}

// GroupByDate buckets transactions by calendar day. Transactions without a
// parseable date are dropped; every dated transaction lands in exactly one
// bucket.
func GroupByDate(txns []models.Transaction) map[string][]models.Transaction {
	buckets := make(map[string][]models.Transaction)
	for _, tx := range txns {
		key, ok := DateKey(tx.Date)
		if !ok {
			continue
		}
		buckets[key] = append(buckets[key], tx)
	}
	return buckets
}

// MerchantStat is one entry of the top-merchants list.
type MerchantStat struct {
	Name  string          `json:"name"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// Summary is the rollup over a transaction window. TotalPayments is the
// absolute value of the payment sum so outflows read as positive magnitudes.
type Summary struct {
	TotalDeposits        decimal.Decimal `json:"totalDeposits"`
	TotalPayments        decimal.Decimal `json:"totalPayments"`
	Count                int             `json:"count"`
	DepositCount         int             `json:"depositCount"`
	PaymentCount         int             `json:"paymentCount"`
	AvgDeposit           decimal.Decimal `json:"avgDeposit"`
	AvgPayment           decimal.Decimal `json:"avgPayment"`
	NetAvgPerTransaction decimal.Decimal `json:"netAvgPerTransaction"`
	TopMerchants         []MerchantStat  `json:"topMerchants"`
}

func merchantKey(tx models.Transaction) string {
	switch {
	case tx.MerchantName != "":
		return tx.MerchantName
	case tx.MerchantID != "":
		return tx.MerchantID
	case tx.Description != "":
		return tx.Description
	default:
		return "unknown"
	}
}

// Aggregate computes deposit/payment totals, counts, averages and the top-3
// merchants by frequency.
func Aggregate(txns []models.Transaction) Summary {
	s := Summary{Count: len(txns)}

	var paymentSum decimal.Decimal
	type merchantAcc struct {
		count int
		total decimal.Decimal
	}
	merchants := make(map[string]*merchantAcc)

	for _, tx := range txns {
		amount := decimal.NewFromFloat(tx.Amount)
		switch tx.Type {
		case models.TypeDeposit:
			s.TotalDeposits = s.TotalDeposits.Add(amount)
			s.DepositCount++
		case models.TypePurchase, models.TypeBill:
			paymentSum = paymentSum.Add(amount)
			s.PaymentCount++
		}

		key := merchantKey(tx)
		acc, ok := merchants[key]
		if !ok {
			acc = &merchantAcc{}
			merchants[key] = acc
		}
		acc.count++
		acc.total = acc.total.Add(amount)
	}

	s.TotalPayments = paymentSum.Abs()

	if s.DepositCount > 0 {
		s.AvgDeposit = s.TotalDeposits.Div(decimal.NewFromInt(int64(s.DepositCount)))
	}
	if s.PaymentCount > 0 {
		s.AvgPayment = s.TotalPayments.Div(decimal.NewFromInt(int64(s.PaymentCount)))
	}
	if s.Count > 0 {
		net := s.TotalDeposits.Sub(s.TotalPayments)
		s.NetAvgPerTransaction = net.Div(decimal.NewFromInt(int64(s.Count)))
	}

	stats := make([]MerchantStat, 0, len(merchants))
	for name, acc := range merchants {
		stats = append(stats, MerchantStat{Name: name, Count: acc.count, Total: acc.total})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})
	if len(stats) > 3 {
		stats = stats[:3]
	}
	s.TopMerchants = stats

	return s
}

// MonthSummary aggregates the transactions falling inside the given month.
func MonthSummary(txns []models.Transaction, year int, month time.Month) Summary {
	var window []models.Transaction
	for _, tx := range txns {
		key, ok := DateKey(tx.Date)
		if !ok {
			continue
		}
		t, _ := time.Parse(dayKeyLayout, key)
		if t.Year() == year && t.Month() == month {
			window = append(window, tx)
		}
	}
	return Aggregate(window)
}

// WeekSummary aggregates the transactions falling inside the ISO week
// containing day.
func WeekSummary(txns []models.Transaction, day time.Time) Summary {
	wantYear, wantWeek := day.ISOWeek()
	var window []models.Transaction
	for _, tx := range txns {
		key, ok := DateKey(tx.Date)
		if !ok {
			continue
		}
		t, _ := time.Parse(dayKeyLayout, key)
		if y, w := t.ISOWeek(); y == wantYear && w == wantWeek {
			window = append(window, tx)
		}
	}
	return Aggregate(window)
}
