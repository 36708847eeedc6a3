package reservation

import (
	"strconv"
	"strings"
	"time"

	"saly_tourisme/internal/domain"
)

// Confirmation is the read-only booking summary shown on the last step. Card
// data is never copied into it.
type Confirmation struct {
	Reference       string           `json:"reference"`
	OfferType       domain.OfferType `json:"offerType"`
	OfferID         string           `json:"offerId"`
	OfferName       string           `json:"offerName"`
	OfferDetail     string           `json:"offerDetail,omitempty"`
	Price           *int64           `json:"price,omitempty"`
	Traveler        string           `json:"traveler"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone,omitempty"`
	Country         string           `json:"country"`
	Date            string           `json:"date"`
	EndDate         string           `json:"endDate,omitempty"`
	PartySize       string           `json:"partySize"`
	RoomType        string           `json:"roomType,omitempty"`
	PaymentMethod   string           `json:"paymentMethod"`
	PaymentLabel    string           `json:"paymentLabel"`
	SpecialRequests string           `json:"specialRequests,omitempty"`
	ConfirmedAt     time.Time        `json:"confirmedAt"`
}

// DateToConfirm is shown when no start date was given.
const DateToConfirm = "À confirmer"

// Reference is time based: unique enough for one session, not a durable id.
func Reference(t time.Time) string {
	return "ST-" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}

func PaymentLabel(method string) string {
	switch method {
	case "card":
		return "Carte bancaire"
	case "orange":
		return "Orange Money"
	}
	return "Wave"
}

// Confirm snapshots the draft and resolved offer at time t.
func Confirm(s State, t time.Time) Confirmation {
	d := s.Draft
	c := Confirmation{
		Reference:       Reference(t),
		OfferType:       s.OfferType,
		OfferID:         s.OfferID,
		Traveler:        strings.TrimSpace(d.FirstName + " " + d.LastName),
		Email:           d.Email,
		Phone:           d.Phone,
		Country:         d.Country,
		Date:            d.StartDate,
		PartySize:       d.PartySize,
		PaymentMethod:   d.PaymentMethod,
		PaymentLabel:    PaymentLabel(d.PaymentMethod),
		SpecialRequests: d.SpecialRequests,
		ConfirmedAt:     t.UTC(),
	}
	if c.Date == "" {
		c.Date = DateToConfirm
	}
	if s.IsHotel() {
		c.EndDate = d.EndDate
		c.RoomType = d.RoomType
	}
	if s.Offer != nil {
		price := s.Offer.Price
		c.OfferName = s.Offer.Name
		c.OfferDetail = s.Offer.Detail
		c.Price = &price
	}
	return c
}
