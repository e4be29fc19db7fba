package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EventID accepts both numeric timestamp ids and string ids on the wire and
// always marshals back to a string, so id matching stays a plain string
// comparison.
type EventID string

func (id EventID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id *EventID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = EventID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("event id must be a string or number: %w", err)
	}
	*id = EventID(n.String())
	return nil
}

// CalendarUser owns calendar events.
type CalendarUser struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PicturePath *string `json:"picturePath"`
}

// CalendarEvent is one entry in the flat calendar-events document.
type CalendarEvent struct {
	ID          EventID       `json:"id"`
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	Title       string        `json:"title"`
	Color       string        `json:"color,omitempty"`
	Description string        `json:"description,omitempty"`
	User        *CalendarUser `json:"user,omitempty"`
	Kind        string        `json:"kind,omitempty"`
	Amount      *float64      `json:"amount,omitempty"`
	AllDay      bool          `json:"allDay,omitempty"`
	Recurrence  string        `json:"recurrence,omitempty"`
	GoalID      string        `json:"goalId,omitempty"`
}

// EventKind values. Bill-derived events always carry a non-positive amount.
const (
	KindBill         = "bill"
	KindPayday       = "payday"
	KindSubscription = "subscription"
	KindTransfer     = "transfer"
	KindReminder     = "reminder"
	KindGoal         = "goal"
	KindOther        = "other"
)
