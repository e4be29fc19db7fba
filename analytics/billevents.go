package analytics

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/Zoh007/WealthScore/models"
)

// billEventIDBase keeps derived event ids out of the range the store hands
// to user-created events.
const billEventIDBase = 10000

var systemUser = models.CalendarUser{ID: "system", Name: "System"}

// BillsToEvents converts enterprise bills into all-day calendar events.
// Bills without any usable date are skipped. Derived events always carry a
// non-positive amount: bills are outflows.
func BillsToEvents(bills []models.Bill) []models.CalendarEvent {
	events := make([]models.CalendarEvent, 0, len(bills))
	for i, bill := range bills {
		date := bill.UpcomingPaymentDate
		if date == "" {
			date = bill.PaymentDate
		}
		key, ok := DateKey(date)
		if !ok {
			continue
		}
		day, _ := time.Parse(dayKeyLayout, key)

		title := bill.Nickname
		if title == "" {
			title = "Bill Payment"
		}
		amount := -math.Abs(bill.PaymentAmount)

		description := "Bill payment: " + title
		if bill.Payee != "" {
			description += "\nPayee: " + bill.Payee
		}

		user := systemUser
		event := models.CalendarEvent{
			ID:          models.EventID(strconv.Itoa(billEventIDBase + i)),
			StartDate:   day.Format(time.RFC3339),
			EndDate:     day.AddDate(0, 0, 1).Format(time.RFC3339),
			Title:       fmt.Sprintf("%s - $%.2f", title, math.Abs(amount)),
			Color:       "red",
			Description: description,
			User:        &user,
			Kind:        models.KindBill,
			Amount:      &amount,
			AllDay:      true,
		}
		if bill.RecurringDate > 0 {
			event.Recurrence = fmt.Sprintf("Monthly on day %d", bill.RecurringDate)
		}
		events = append(events, event)
	}
	return events
}
