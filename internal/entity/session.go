package entity

import "time"

// Session is a cookie-identified browsing session. It carries the
// cosmetic home-page visit counter.
type Session struct {
	ID         string    `json:"id"`
	NumVisits  int       `json:"num_visits"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
}
