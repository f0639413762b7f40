package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
)

// TicketService is the HTTP surface over the reservation core for purchases
type TicketService struct {
	reservations *ReservationService
	validator    *ValidationHelper
}

func NewTicketService(reservations *ReservationService) *TicketService {
	return &TicketService{
		reservations: reservations,
		validator:    NewValidationHelper(),
	}
}

// PurchaseRequest represents the ticket purchase payload
// @Description Ticket purchase request structure
type PurchaseRequest struct {
	EventID  int `json:"event_id" validate:"required,gt=0" example:"1"` // Target event
	Quantity int `json:"quantity" validate:"required,gt=0" example:"2"` // Tickets requested
}

// PurchaseTicket buys tickets for an event
// @Summary Purchase tickets
// @Description Atomically purchase tickets for an event
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PurchaseRequest true "Purchase request"
// @Success 201 {object} object{ticketId=string}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /tickets [post]
func (ts *TicketService) PurchaseTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int)
	if !ok {
		SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req PurchaseRequest
	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := ts.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	ticketID, err := ts.reservations.Purchase(req.EventID, userID, req.Quantity)
	if err != nil {
		log.Printf("[TICKET] Purchase failed - event: %d, user: %d: %v", req.EventID, userID, err)
		SendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"success":  true,
		"ticketId": ticketID,
	})
}

// CancelTicket cancels a purchase and restores event capacity
// @Summary Cancel a ticket purchase
// @Description Delete the caller's ticket and restore the event's remaining count
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param ticketId path string true "Ticket ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /tickets/{ticketId} [delete]
func (ts *TicketService) CancelTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int)
	if !ok {
		SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	ticketID := chi.URLParam(r, "ticketId")
	if ticketID == "" {
		SendErrorResponse(w, "Ticket ID required", http.StatusBadRequest, nil)
		return
	}

	if err := ts.reservations.Cancel(ticketID, userID); err != nil {
		log.Printf("[TICKET] Cancel failed - ticket: %s, user: %d: %v", ticketID, userID, err)
		SendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Purchase cancelled successfully"})
}

// ListMyTickets lists the caller's tickets
// @Summary List my tickets
// @Description Get the authenticated user's tickets joined with event details
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{tickets=[]models.UserTicket,count=int}
// @Failure 500 {object} ErrorResponse
// @Router /tickets [get]
func (ts *TicketService) ListMyTickets(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int)
	if !ok {
		SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	tickets, err := ts.reservations.ListUserTickets(userID)
	if err != nil {
		log.Printf("[TICKET] Failed to list tickets for user %d: %v", userID, err)
		SendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"tickets": tickets,
		"count":   len(tickets),
	})
}

// TicketQR renders the ticket id as a QR code for entry-gate scanning
// @Summary Get ticket QR code
// @Description Get a QR code image for a ticket owned by the caller
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param ticketId path string true "Ticket ID"
// @Success 200 {object} object{qrImage=string}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tickets/{ticketId}/qr [get]
func (ts *TicketService) TicketQR(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int)
	if !ok {
		SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	ticketID := chi.URLParam(r, "ticketId")

	ownerID, err := ts.reservations.TicketOwner(ticketID)
	if err != nil {
		SendServiceError(w, err)
		return
	}
	if ownerID != userID {
		SendServiceError(w, ErrNotTicketOwner)
		return
	}

	qr, err := qrcode.New(ticketID, qrcode.Medium)
	if err != nil {
		SendErrorResponse(w, "Failed to generate QR code", http.StatusInternalServerError, nil)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(256)); err != nil {
		SendErrorResponse(w, "Failed to generate QR code", http.StatusInternalServerError, nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"qrImage": base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}
