package domain

type Testimonial struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Avatar  string `json:"avatar"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"` // display text, e.g. "Janvier 2026"
}
