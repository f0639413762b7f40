package models

import (
	"time"
)

// Event represents a ticketed event
type Event struct {
	ID               int       `json:"event_id" db:"event_id"`
	Title            string    `json:"title" db:"title"`
	Location         string    `json:"location" db:"location"`
	EventDate        time.Time `json:"event_date" db:"event_date"`
	ImageURL         string    `json:"image_url" db:"image_url"`
	TotalTickets     int       `json:"total_tickets" db:"total_tickets"`
	TicketsSold      int       `json:"tickets_sold" db:"tickets_sold"`
	TicketsRemaining int       `json:"tickets_remaining" db:"tickets_remaining"`
}

// EventSummary is the public listing view of an event
type EventSummary struct {
	ID               int       `json:"event_id" db:"event_id"`
	Title            string    `json:"title" db:"title"`
	Location         string    `json:"location" db:"location"`
	EventDate        time.Time `json:"event_date" db:"event_date"`
	ImageURL         string    `json:"image_url" db:"image_url"`
	TicketsRemaining int       `json:"tickets_remaining" db:"tickets_remaining"`
}
