package models

import (
	"time"
)

// Ticket is one purchase record. Its existence is always mirrored by its
// quantity having been subtracted from the owning event's remaining count.
type Ticket struct {
	ID           string    `json:"ticket_id" db:"ticket_id"`
	EventID      int       `json:"event_id" db:"event_id"`
	UserID       int       `json:"user_id" db:"user_id"`
	Quantity     int       `json:"quantity" db:"quantity"`
	PurchaseDate time.Time `json:"purchase_date" db:"purchase_date"`
}

// UserTicket is the ticket/event join returned to the purchaser
type UserTicket struct {
	TicketID      string    `json:"ticket_id" db:"ticket_id"`
	Quantity      int       `json:"quantity" db:"quantity"`
	PurchaseDate  time.Time `json:"purchase_date" db:"purchase_date"`
	EventTitle    string    `json:"event_title" db:"event_title"`
	EventLocation string    `json:"event_location" db:"event_location"`
	EventDate     time.Time `json:"event_date" db:"event_date"`
}
