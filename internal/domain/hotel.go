package domain

type HotelType string

const (
	HotelTypeHotel     HotelType = "hotel"
	HotelTypeResidence HotelType = "residence"
	HotelTypeVilla     HotelType = "villa"
)

var HotelTypes = []HotelType{HotelTypeHotel, HotelTypeResidence, HotelTypeVilla}

type Hotel struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        HotelType `json:"type"`
	Stars       int       `json:"stars"` // 1..5
	Price       int64     `json:"price"` // FCFA per night
	Image       string    `json:"image"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Amenities   []string  `json:"amenities"`
	Rating      float64   `json:"rating"` // 0..5
	Reviews     int       `json:"reviews"`
	Featured    bool      `json:"featured,omitempty"`
}
