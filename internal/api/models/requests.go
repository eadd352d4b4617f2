package models

import "github.com/Project-Sylos/Mirage/internal/random"

// CreateSessionRequest represents the request to start a new session
type CreateSessionRequest struct {
	Seed           random.Seed `json:"seed"`
	Locale         string      `json:"locale"`
	LocaleFallback string      `json:"locale_fallback"`
}

// SeedRequest represents the request to reseed a session. A null or
// missing seed installs an entropy seed.
type SeedRequest struct {
	Seed random.Seed `json:"seed"`
}

// LocaleRequest represents the request to change a session's locales
type LocaleRequest struct {
	Locale         string `json:"locale"`
	LocaleFallback string `json:"locale_fallback"`
}

// DrawRequest represents the request to draw bounded values
type DrawRequest struct {
	Min   int64 `json:"min"`
	Max   int64 `json:"max"`
	Count int   `json:"count"` // defaults to 1
}

// DrawResponse carries drawn values
type DrawResponse struct {
	Values []int64 `json:"values"`
}

// PersonResponse is a generated person
type PersonResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

// LocationResponse is a generated location
type LocationResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}
