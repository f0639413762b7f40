package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestEventService_CreateEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	service := NewEventService(NewReservationService(db))

	t.Run("successful create", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO events").
			WithArgs("Summer Festival", "Central Park", sqlmock.AnyArg(), "", 100, 0, 100).
			WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow(1))

		body, _ := json.Marshal(map[string]any{
			"title":         "Summer Festival",
			"location":      "Central Park",
			"event_date":    time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
			"total_tickets": 100,
		})
		w := httptest.NewRecorder()

		service.CreateEvent(w, authedRequest("POST", "/events", body, 1))

		assert.Equal(t, http.StatusCreated, w.Code)
		var response map[string]any
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, float64(1), response["eventId"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing capacity fails validation", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{
			"title":      "Summer Festival",
			"location":   "Central Park",
			"event_date": time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
		})
		w := httptest.NewRecorder()

		service.CreateEvent(w, authedRequest("POST", "/events", body, 1))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		body := []byte(`{"title":"X","location":"Y","event_date":"2026-09-20T19:00:00Z","total_tickets":10,"tickets_sold":5}`)
		w := httptest.NewRecorder()

		service.CreateEvent(w, authedRequest("POST", "/events", body, 1))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEventService_ListEvents(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	service := NewEventService(NewReservationService(db))

	mock.ExpectQuery("SELECT event_id, title, location, event_date, image_url, tickets_remaining FROM events").
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "title", "location", "event_date", "image_url", "tickets_remaining"}).
			AddRow(1, "Summer Festival", "Central Park", time.Now().AddDate(0, 0, 7), "", 98))

	w := httptest.NewRecorder()
	service.ListEvents(w, authedRequest("GET", "/events", nil, 7))

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]any
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(1), response["count"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventService_DeleteEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	service := NewEventService(NewReservationService(db))

	router := chi.NewRouter()
	router.Delete("/events/{eventId}", service.DeleteEvent)

	t.Run("successful delete", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockEventQ).
			WithArgs(1).
			WillReturnRows(eventRows(1, 100, 0, 100))
		mock.ExpectExec("DELETE FROM events WHERE event_id = \\$1").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("DELETE", "/events/1", nil, 1))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("event with sales maps to conflict", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockEventQ).
			WithArgs(1).
			WillReturnRows(eventRows(1, 100, 3, 97))
		mock.ExpectRollback()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("DELETE", "/events/1", nil, 1))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-numeric id is a bad request", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("DELETE", "/events/abc", nil, 1))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
