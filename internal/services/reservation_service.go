package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/ticketline/backend/internal/models"
)

// ReservationService is the ticket-inventory transaction core. Every mutation
// of an event's sold/remaining pair goes through here, serialized by a
// row-level lock on the event, with the matching ticket row created or
// removed in the same transaction.
type ReservationService struct {
	db *sql.DB
}

func NewReservationService(db *sql.DB) *ReservationService {
	return &ReservationService{db: db}
}

// Purchase buys quantity tickets for eventID on behalf of userID and returns
// the new ticket id. The decision read (remaining vs quantity) and the writes
// happen under the same row lock; concurrent purchases for one event
// serialize, so the remaining count never goes negative.
func (s *ReservationService) Purchase(eventID, userID, quantity int) (string, error) {
	if quantity <= 0 {
		return "", ErrInvalidInput
	}

	ticketID := uuid.New().String()

	err := runInTx(s.db, func(tx *sql.Tx) error {
		event, err := s.lockEvent(tx, eventID)
		if err == sql.ErrNoRows {
			return ErrEventNotFound
		}
		if err != nil {
			return classifyStorageError(err)
		}

		if event.TicketsRemaining < quantity {
			return ErrInsufficientTickets
		}

		if err := s.updateEventCounts(tx, eventID,
			event.TicketsSold+quantity, event.TicketsRemaining-quantity); err != nil {
			return classifyStorageError(err)
		}

		_, err = tx.Exec(`
			INSERT INTO tickets (ticket_id, event_id, user_id, quantity, purchase_date)
			VALUES ($1, $2, $3, $4, $5)`,
			ticketID, eventID, userID, quantity, time.Now())
		return classifyStorageError(err)
	})
	if err != nil {
		return "", err
	}

	log.Printf("[RESERVATION] Purchase committed - ticket: %s, event: %d, user: %d, qty: %d",
		ticketID, eventID, userID, quantity)
	return ticketID, nil
}

// Cancel deletes userID's ticket and restores the event's capacity. Locks are
// taken event-first, matching Purchase, so the two operations cannot deadlock
// against each other. If the event row is already gone the ticket is still
// deleted and the restore is skipped.
func (s *ReservationService) Cancel(ticketID string, userID int) error {
	err := runInTx(s.db, func(tx *sql.Tx) error {
		// Unlocked read to learn the owning event; ownership and existence
		// are re-checked once the rows are locked.
		var eventID int
		err := tx.QueryRow(`SELECT event_id FROM tickets WHERE ticket_id = $1`, ticketID).
			Scan(&eventID)
		if err == sql.ErrNoRows {
			return ErrTicketNotFound
		}
		if err != nil {
			return classifyStorageError(err)
		}

		event, err := s.lockEvent(tx, eventID)
		eventExists := true
		if err == sql.ErrNoRows {
			eventExists = false
		} else if err != nil {
			return classifyStorageError(err)
		}

		ticket, err := s.lockTicket(tx, ticketID)
		if err == sql.ErrNoRows {
			// Cancelled concurrently between the unlocked read and the lock.
			return ErrTicketNotFound
		}
		if err != nil {
			return classifyStorageError(err)
		}

		if ticket.UserID != userID {
			return ErrNotTicketOwner
		}

		if eventExists {
			if err := s.updateEventCounts(tx, eventID,
				event.TicketsSold-ticket.Quantity, event.TicketsRemaining+ticket.Quantity); err != nil {
				return classifyStorageError(err)
			}
		}

		_, err = tx.Exec(`DELETE FROM tickets WHERE ticket_id = $1`, ticketID)
		return classifyStorageError(err)
	})
	if err != nil {
		return err
	}

	log.Printf("[RESERVATION] Cancel committed - ticket: %s, user: %d", ticketID, userID)
	return nil
}

// CreateEvent inserts a new event with a fixed capacity and nothing sold.
func (s *ReservationService) CreateEvent(event *models.Event) (int, error) {
	if event.TotalTickets <= 0 || event.Title == "" || event.Location == "" || event.EventDate.IsZero() {
		return 0, ErrInvalidInput
	}

	var eventID int
	err := s.db.QueryRow(`
		INSERT INTO events (title, location, event_date, image_url, total_tickets, tickets_sold, tickets_remaining)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING event_id`,
		event.Title, event.Location, event.EventDate, event.ImageURL,
		event.TotalTickets, 0, event.TotalTickets).Scan(&eventID)
	if err != nil {
		return 0, classifyStorageError(err)
	}

	log.Printf("[RESERVATION] Event created - ID: %d, capacity: %d", eventID, event.TotalTickets)
	return eventID, nil
}

// DeleteEvent removes an event that has no sold tickets. The sold count is
// read under the same lock that guards the delete, so a concurrent purchase
// cannot slip in between the check and the removal.
func (s *ReservationService) DeleteEvent(eventID int) error {
	err := runInTx(s.db, func(tx *sql.Tx) error {
		event, err := s.lockEvent(tx, eventID)
		if err == sql.ErrNoRows {
			return ErrEventNotFound
		}
		if err != nil {
			return classifyStorageError(err)
		}

		if event.TicketsSold > 0 {
			return ErrEventHasSales
		}

		_, err = tx.Exec(`DELETE FROM events WHERE event_id = $1`, eventID)
		return classifyStorageError(err)
	})
	if err != nil {
		return err
	}

	log.Printf("[RESERVATION] Event deleted - ID: %d", eventID)
	return nil
}

// ListUpcomingEvents returns events that have not yet taken place
func (s *ReservationService) ListUpcomingEvents() ([]models.EventSummary, error) {
	rows, err := s.db.Query(`
		SELECT event_id, title, location, event_date, image_url, tickets_remaining
		FROM events
		WHERE event_date >= CURRENT_DATE
		ORDER BY event_date ASC`)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	defer rows.Close()

	events := []models.EventSummary{}
	for rows.Next() {
		var e models.EventSummary
		if err := rows.Scan(&e.ID, &e.Title, &e.Location, &e.EventDate, &e.ImageURL, &e.TicketsRemaining); err != nil {
			return nil, classifyStorageError(err)
		}
		events = append(events, e)
	}
	return events, classifyStorageError(rows.Err())
}

// ListUserTickets returns the caller's tickets joined with their events
func (s *ReservationService) ListUserTickets(userID int) ([]models.UserTicket, error) {
	rows, err := s.db.Query(`
		SELECT t.ticket_id, t.quantity, t.purchase_date,
		       e.title AS event_title, e.location AS event_location, e.event_date
		FROM tickets t
		JOIN events e ON t.event_id = e.event_id
		WHERE t.user_id = $1
		ORDER BY e.event_date DESC`, userID)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	defer rows.Close()

	tickets := []models.UserTicket{}
	for rows.Next() {
		var t models.UserTicket
		if err := rows.Scan(&t.TicketID, &t.Quantity, &t.PurchaseDate,
			&t.EventTitle, &t.EventLocation, &t.EventDate); err != nil {
			return nil, classifyStorageError(err)
		}
		tickets = append(tickets, t)
	}
	return tickets, classifyStorageError(rows.Err())
}

// TicketOwner reports the owner of a ticket, for read-only ownership checks
func (s *ReservationService) TicketOwner(ticketID string) (int, error) {
	var ownerID int
	err := s.db.QueryRow(`SELECT user_id FROM tickets WHERE ticket_id = $1`, ticketID).
		Scan(&ownerID)
	if err == sql.ErrNoRows {
		return 0, ErrTicketNotFound
	}
	if err != nil {
		return 0, classifyStorageError(err)
	}
	return ownerID, nil
}

func (s *ReservationService) lockEvent(tx *sql.Tx, eventID int) (*models.Event, error) {
	var event models.Event
	err := tx.QueryRow(`
		SELECT event_id, total_tickets, tickets_sold, tickets_remaining
		FROM events
		WHERE event_id = $1
		FOR UPDATE`, eventID).
		Scan(&event.ID, &event.TotalTickets, &event.TicketsSold, &event.TicketsRemaining)

	return &event, err
}

func (s *ReservationService) lockTicket(tx *sql.Tx, ticketID string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := tx.QueryRow(`
		SELECT ticket_id, event_id, user_id, quantity, purchase_date
		FROM tickets
		WHERE ticket_id = $1
		FOR UPDATE`, ticketID).
		Scan(&ticket.ID, &ticket.EventID, &ticket.UserID, &ticket.Quantity, &ticket.PurchaseDate)

	return &ticket, err
}

func (s *ReservationService) updateEventCounts(tx *sql.Tx, eventID, sold, remaining int) error {
	_, err := tx.Exec(`
		UPDATE events
		SET tickets_sold = $1, tickets_remaining = $2
		WHERE event_id = $3`,
		sold, remaining, eventID)
	return err
}
