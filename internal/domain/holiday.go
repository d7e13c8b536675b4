package domain

type Holiday struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}
