package services

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ticketline/backend/internal/models"
)

// EventService is the HTTP surface for event administration and listing
type EventService struct {
	reservations *ReservationService
	validator    *ValidationHelper
}

func NewEventService(reservations *ReservationService) *EventService {
	return &EventService{
		reservations: reservations,
		validator:    NewValidationHelper(),
	}
}

// CreateEventRequest represents the event creation payload
// @Description Event creation request structure
type CreateEventRequest struct {
	Title        string    `json:"title" validate:"required" example:"Summer Festival"`
	Location     string    `json:"location" validate:"required" example:"Central Park"`
	EventDate    time.Time `json:"event_date" validate:"required" example:"2026-09-20T19:00:00Z"`
	ImageURL     string    `json:"image_url" example:"/static/event-images/festival.png"`
	TotalTickets int       `json:"total_tickets" validate:"required,gt=0" example:"100"`
}

// CreateEvent creates a new event (admin only)
// @Summary Create event
// @Description Create a new event with a fixed ticket capacity
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEventRequest true "Event data"
// @Success 201 {object} object{eventId=int}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /events [post]
func (es *EventService) CreateEvent(w http.ResponseWriter, r *http.Request) {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req CreateEventRequest
	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := es.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	eventID, err := es.reservations.CreateEvent(&models.Event{
		Title:        req.Title,
		Location:     req.Location,
		EventDate:    req.EventDate,
		ImageURL:     req.ImageURL,
		TotalTickets: req.TotalTickets,
	})
	if err != nil {
		log.Printf("[EVENT] Create failed for %q: %v", req.Title, err)
		SendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"eventId": eventID,
	})
}

// ListEvents lists upcoming events
// @Summary List upcoming events
// @Description Get events that have not yet taken place, soonest first
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{events=[]models.EventSummary,count=int}
// @Failure 500 {object} ErrorResponse
// @Router /events [get]
func (es *EventService) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := es.reservations.ListUpcomingEvents()
	if err != nil {
		log.Printf("[EVENT] Failed to list events: %v", err)
		SendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"events": events,
		"count":  len(events),
	})
}

// DeleteEvent removes an event without sales (admin only)
// @Summary Delete event
// @Description Delete an event; fails if any tickets have been sold
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /events/{eventId} [delete]
func (es *EventService) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.Atoi(chi.URLParam(r, "eventId"))
	if err != nil {
		SendErrorResponse(w, "Invalid event ID", http.StatusBadRequest, nil)
		return
	}

	if err := es.reservations.DeleteEvent(eventID); err != nil {
		log.Printf("[EVENT] Delete failed for event %d: %v", eventID, err)
		SendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Event deleted successfully"})
}
