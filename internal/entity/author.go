package entity

import "time"

type Author struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DisplayName renders the listing form "Last, First".
func (a Author) DisplayName() string {
	return a.LastName + ", " + a.FirstName
}

// AbsoluteURL is the canonical detail locator for this author,
// derivable from the id alone.
func (a Author) AbsoluteURL() string {
	return "/catalog/authors/" + a.ID
}
