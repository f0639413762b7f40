package services

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
)

const dashboardCacheTTL = 30 * time.Second

// DashboardService serves the admin sales dashboard. All queries are
// read-only aggregates; results are cached briefly in redis when available.
type DashboardService struct {
	db    *sql.DB
	redis *redis.Client
}

func NewDashboardService(db *sql.DB, redisClient *redis.Client) *DashboardService {
	return &DashboardService{
		db:    db,
		redis: redisClient,
	}
}

// DashboardStats holds the headline totals
type DashboardStats struct {
	TotalEvents     int `json:"total_events"`
	TicketsSold     int `json:"tickets_sold"`
	RegisteredUsers int `json:"registered_users"`
}

// EventStatusCounts buckets events by availability
type EventStatusCounts struct {
	Available int `json:"available"`
	SoldOut   int `json:"sold_out"`
	Past      int `json:"past"`
}

// EventSales is one row of the sales-by-event report
type EventSales struct {
	EventID      int       `json:"event_id"`
	Title        string    `json:"title"`
	EventDate    time.Time `json:"event_date"`
	TotalTickets int       `json:"total_tickets"`
	TicketsSold  int       `json:"tickets_sold"`
	Remaining    int       `json:"tickets_remaining"`
	PercentSold  float64   `json:"percent_sold"`
}

// GetStats returns headline dashboard totals
// @Summary Dashboard statistics
// @Description Get total events, tickets sold and registered users
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardStats
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/stats [get]
func (ds *DashboardService) GetStats(w http.ResponseWriter, r *http.Request) {
	if ds.serveCached(w, r, "dashboard:stats") {
		return
	}

	var stats DashboardStats
	err := ds.db.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM events) as total_events,
			(SELECT COALESCE(SUM(tickets_sold), 0) FROM events) as tickets_sold,
			(SELECT COUNT(*) FROM users) as registered_users`).
		Scan(&stats.TotalEvents, &stats.TicketsSold, &stats.RegisteredUsers)
	if err != nil {
		log.Printf("[DASHBOARD] Stats query failed: %v", err)
		SendErrorResponse(w, "Failed to fetch statistics", http.StatusInternalServerError, nil)
		return
	}

	ds.respondAndCache(w, r, "dashboard:stats", stats)
}

// GetEventStatus buckets events into available, sold out and past
// @Summary Events by status
// @Description Count events that are available, sold out or already past
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} EventStatusCounts
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/event-status [get]
func (ds *DashboardService) GetEventStatus(w http.ResponseWriter, r *http.Request) {
	if ds.serveCached(w, r, "dashboard:event-status") {
		return
	}

	var counts EventStatusCounts
	err := ds.db.QueryRow(`
		SELECT
			COUNT(CASE WHEN tickets_remaining > 0 AND event_date >= CURRENT_DATE THEN 1 END) as available,
			COUNT(CASE WHEN tickets_remaining = 0 AND event_date >= CURRENT_DATE THEN 1 END) as sold_out,
			COUNT(CASE WHEN event_date < CURRENT_DATE THEN 1 END) as past
		FROM events`).
		Scan(&counts.Available, &counts.SoldOut, &counts.Past)
	if err != nil {
		log.Printf("[DASHBOARD] Event status query failed: %v", err)
		SendErrorResponse(w, "Failed to fetch event status", http.StatusInternalServerError, nil)
		return
	}

	ds.respondAndCache(w, r, "dashboard:event-status", counts)
}

// GetSalesByEvent returns the top selling events
// @Summary Sales by event
// @Description Top ten events by tickets sold with percentage sold
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} EventSales
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/sales-by-event [get]
func (ds *DashboardService) GetSalesByEvent(w http.ResponseWriter, r *http.Request) {
	if ds.serveCached(w, r, "dashboard:sales-by-event") {
		return
	}

	rows, err := ds.db.Query(`
		SELECT
			event_id,
			title,
			event_date,
			total_tickets,
			tickets_sold,
			tickets_remaining,
			ROUND((tickets_sold::DECIMAL / NULLIF(total_tickets, 0) * 100), 2) as percent_sold
		FROM events
		WHERE tickets_sold > 0
		ORDER BY tickets_sold DESC
		LIMIT 10`)
	if err != nil {
		log.Printf("[DASHBOARD] Sales query failed: %v", err)
		SendErrorResponse(w, "Failed to fetch sales", http.StatusInternalServerError, nil)
		return
	}
	defer rows.Close()

	sales := []EventSales{}
	for rows.Next() {
		var s EventSales
		if err := rows.Scan(&s.EventID, &s.Title, &s.EventDate, &s.TotalTickets,
			&s.TicketsSold, &s.Remaining, &s.PercentSold); err != nil {
			log.Printf("[DASHBOARD] Sales scan failed: %v", err)
			SendErrorResponse(w, "Failed to fetch sales", http.StatusInternalServerError, nil)
			return
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[DASHBOARD] Sales rows failed: %v", err)
		SendErrorResponse(w, "Failed to fetch sales", http.StatusInternalServerError, nil)
		return
	}

	ds.respondAndCache(w, r, "dashboard:sales-by-event", sales)
}

// serveCached writes a cached payload if one exists
func (ds *DashboardService) serveCached(w http.ResponseWriter, r *http.Request, key string) bool {
	if ds.redis == nil {
		return false
	}

	data, err := ds.redis.Get(r.Context(), key).Bytes()
	if err != nil {
		return false
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
	return true
}

// respondAndCache writes the payload and stores it for the cache TTL
func (ds *DashboardService) respondAndCache(w http.ResponseWriter, r *http.Request, key string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		SendErrorResponse(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	if ds.redis != nil {
		if err := ds.redis.Set(r.Context(), key, data, dashboardCacheTTL).Err(); err != nil {
			log.Printf("[DASHBOARD] Cache write failed for %s: %v", key, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
