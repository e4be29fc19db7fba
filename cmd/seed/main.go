// Command seed populates the demo banking API with sample customers,
// accounts and transactions so the dashboard has data to poll.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/Zoh007/WealthScore/logger"
	"github.com/Zoh007/WealthScore/nessie"
	"github.com/Zoh007/WealthScore/worker"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type merchant struct {
	name     string
	category string
}

var merchants = []merchant{
	{"Walmart", "Retail"},
	{"Starbucks", "Food"},
	{"Netflix", "Entertainment"},
	{"Kroger", "Retail"},
	{"DoorDash", "Travel"},
	{"AMC Theatres", "Entertainment"},
	{"Jersey Mike's", "Food"},
	{"Lyft", "Travel"},
	{"Uber", "Travel"},
	{"Best Buy", "Retail"},
}

var firstNames = []string{"John", "Jane", "Alex", "Maria", "Sam"}

func main() {
	customers := flag.Int("customers", 1, "number of demo customers to create")
	deposits := flag.Int("deposits", 8, "deposits per checking account")
	purchases := flag.Int("purchases", 23, "purchases per checking account")
	bills := flag.Int("bills", 3, "bills per checking account")
	workers := flag.Int("workers", 4, "concurrent seed workers")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}
	if err := logger.Init(true, logger.InfoLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	client := nessie.NewClientFromEnv()
	pool := worker.NewPool(*workers)
	pool.Start()

	for i := 0; i < *customers; i++ {
		i := i
		pool.Submit(func(ctx context.Context) error {
			return seedCustomer(ctx, client, i, *deposits, *purchases, *bills)
		}, int32(i%*workers))
	}

	pool.Stop()
	logger.Get().Info("seeding finished", zap.Any("metrics", pool.Metrics()))
}

func seedCustomer(ctx context.Context, client *nessie.Client, index, depositCount, purchaseCount, billCount int) error {
	firstName := firstNames[index%len(firstNames)]
	customerID, err := client.CreateCustomer(ctx, nessie.NewCustomer{
		FirstName: firstName,
		LastName:  "Doe",
		Address: nessie.Address{
			StreetNumber: "123",
			StreetName:   "Main Street",
			City:         "Springfield",
			State:        "IL",
			Zip:          "62701",
		},
	})
	if err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	logger.Get().Info("customer created",
		zap.String("customer_id", customerID), zap.String("name", firstName))

	checkingID, err := client.CreateAccount(ctx, customerID, nessie.NewAccount{
		Type:     "Checking",
		Nickname: "My Checking Account",
		Balance:  5000,
	})
	if err != nil {
		return fmt.Errorf("create checking account: %w", err)
	}

	savingsID, err := client.CreateAccount(ctx, customerID, nessie.NewAccount{
		Type:     "Savings",
		Nickname: "My Savings Account",
		Balance:  12000,
	})
	if err != nil {
		return fmt.Errorf("create savings account: %w", err)
	}
	logger.Get().Info("accounts created",
		zap.String("checking_id", checkingID), zap.String("savings_id", savingsID))

	// Bi-weekly salary history, newest first.
	payDate := time.Now()
	for i := 0; i < depositCount; i++ {
		_, err := client.CreateDeposit(ctx, checkingID, nessie.NewDeposit{
			Medium:          "balance",
			TransactionDate: payDate.Format("2006-01-02"),
			Amount:          float64(rand.Intn(2000) + 500),
			Description:     "Bi-Weekly Salary",
		})
		if err != nil {
			logger.Get().Error("create deposit failed", zap.Int("n", i+1), zap.Error(err))
		}
		payDate = payDate.AddDate(0, 0, -14)
	}

	for i := 0; i < purchaseCount; i++ {
		m := merchants[rand.Intn(len(merchants))]
		date := time.Now().AddDate(0, 0, -rand.Intn(3))
		_, err := client.CreatePurchase(ctx, checkingID, nessie.NewPurchase{
			Medium:       "balance",
			PurchaseDate: date.Format("2006-01-02"),
			Amount:       float64(rand.Intn(200) + 10),
			Description:  fmt.Sprintf("Purchase at %s - %s", m.name, m.category),
		})
		if err != nil {
			logger.Get().Error("create purchase failed", zap.Int("n", i+1), zap.Error(err))
		}
	}

	for i := 0; i < billCount; i++ {
		due := time.Now().AddDate(0, 0, (i+1)*7)
		_, err := client.CreateBill(ctx, checkingID, nessie.NewBill{
			Status:        "pending",
			Payee:         "Utility Co",
			Nickname:      fmt.Sprintf("Monthly Bill %d", i+1),
			PaymentDate:   due.Format("2006-01-02"),
			RecurringDate: due.Day(),
			PaymentAmount: float64(rand.Intn(150) + 40),
		})
		if err != nil {
			logger.Get().Error("create bill failed", zap.Int("n", i+1), zap.Error(err))
		}
	}

	logger.Get().Info("customer seeded", zap.String("customer_id", customerID))
	return nil
}
