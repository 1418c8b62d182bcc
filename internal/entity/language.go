package entity

type Language struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Code *string `json:"code,omitempty"` // two-letter code, eg "es"
}
