package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conversation roles, as serialized by the server.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationMessage is one turn of a plan's server-side transcript.
// Insertion order is significant; the server only ever appends.
type ConversationMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TravelPlan is the server-owned itinerary record. The client fetches,
// displays and optimistically patches it, but the server remains the source
// of truth.
type TravelPlan struct {
	ID                  int64                 `json:"id"`
	Title               string                `json:"title"`
	Destination         string                `json:"destination"`
	DurationDays        int                   `json:"duration"`
	Budget              *float64              `json:"budget,omitempty"`
	Currency            string                `json:"currency"`
	GroupSize           int                   `json:"group_size"`
	Content             string                `json:"content"`
	ConversationHistory []ConversationMessage `json:"conversation_history"`
	CreatedAt           time.Time             `json:"created_at"`
}

// GeneratePlanRequest creates a new plan.
type GeneratePlanRequest struct {
	Title       string   `json:"title"`
	Destination string   `json:"destination"`
	Duration    int      `json:"duration"`
	Budget      *float64 `json:"budget,omitempty"`
	Currency    string   `json:"currency"`
	Preferences []string `json:"preferences"`
	GroupSize   int      `json:"group_size"`
}

// ChatRequest continues the conversation on an existing plan.
type ChatRequest struct {
	Message string `json:"message"`
}

// Credentials for login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest registers a new account.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and signup.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// User is the current-user profile record.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profile_image,omitempty"`
	IsAdmin      bool      `json:"is_admin,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserStats summarizes the current user's activity for the dashboard.
type UserStats struct {
	TotalPlans   int `json:"total_plans"`
	TotalQueries int `json:"total_queries"`
}

// WeatherReport is the public weather-by-city response. Temperature and
// condition live inside the free-text description; see internal/weather for
// the extraction heuristics.
type WeatherReport struct {
	City           string `json:"city"`
	CurrentWeather struct {
		Description string `json:"description"`
	} `json:"current_weather"`
	Forecast []struct {
		Date        string `json:"date"`
		Description string `json:"description"`
	} `json:"forecast,omitempty"`
}

// WeatherRequest asks for current weather in a city.
type WeatherRequest struct {
	City string `json:"city"`
}

// RateTable is a base currency and its exchange rates.
type RateTable struct {
	BaseCurrency string                     `json:"base_currency"`
	Rates        map[string]decimal.Decimal `json:"rates"`
}

// ConvertRequest converts an amount between currencies.
type ConvertRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	FromCurrency string          `json:"from_currency"`
	ToCurrency   string          `json:"to_currency"`
}

// ConvertResponse carries the converted amount.
type ConvertResponse struct {
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
}

// Place is a point of interest on the plan map.
type Place struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Rating  float64 `json:"rating,omitempty"`
	Address string  `json:"address,omitempty"`
}

// LatLng is a map center point.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapData is the map overlay for a plan's destination.
type MapData struct {
	Center      *LatLng `json:"center"`
	Attractions []Place `json:"attractions"`
	Restaurants []Place `json:"restaurants"`
	Hotels      []Place `json:"hotels"`
}

// AdminStats is the admin-panel overview.
type AdminStats struct {
	System struct {
		TotalUsers       int    `json:"total_users"`
		TotalPlans       int    `json:"total_plans"`
		TotalQueries     int    `json:"total_queries"`
		TotalAPIRequests int    `json:"total_api_requests"`
		DBSize           string `json:"db_size,omitempty"`
		ActiveSessions   int    `json:"active_sessions,omitempty"`
		Uptime           string `json:"uptime,omitempty"`
	} `json:"system"`
	PopularDestinations []struct {
		Destination string `json:"destination"`
		Count       int    `json:"count"`
	} `json:"popular_destinations"`
	Averages struct {
		TripDuration float64 `json:"trip_duration"`
		Budget       float64 `json:"budget"`
	} `json:"averages"`
	APIEndpoints []struct {
		Endpoint        string  `json:"endpoint"`
		Requests        int     `json:"requests"`
		AvgResponseTime float64 `json:"avg_response_time"`
	} `json:"api_endpoints"`
}

// AdminUser is one row of the admin users table.
type AdminUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// CleanupRequest removes records older than Days.
type CleanupRequest struct {
	Days int `json:"days"`
}

// CleanupResponse reports how many records were removed.
type CleanupResponse struct {
	Deleted int `json:"deleted"`
}
