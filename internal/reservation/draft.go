package reservation

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrUnknownField       = errors.New("unknown reservation field")
	ErrInvalidValue       = errors.New("invalid value for field")
	ErrFieldNotApplicable = errors.New("field does not apply to this offer")
	ErrTerminal           = errors.New("reservation already confirmed")
)

var validate = validator.New()

// Field names a single typed slot of the draft. Names match the JSON keys the
// front-end binds its inputs to.
type Field string

const (
	FieldStartDate        Field = "startDate"
	FieldEndDate          Field = "endDate"
	FieldPartySize        Field = "partySize"
	FieldRoomType         Field = "roomType"
	FieldFirstName        Field = "firstName"
	FieldLastName         Field = "lastName"
	FieldEmail            Field = "email"
	FieldPhone            Field = "phone"
	FieldCountry          Field = "country"
	FieldSpecialRequests  Field = "specialRequests"
	FieldPaymentMethod    Field = "paymentMethod"
	FieldCardNumber       Field = "cardNumber"
	FieldCardName         Field = "cardName"
	FieldCardExpiry       Field = "cardExpiry"
	FieldCardCvv          Field = "cardCvv"
	FieldMobileMoneyPhone Field = "mobileMoneyPhone"
)

var (
	PartySizes     = []string{"1 personne", "2 personnes", "3 personnes", "4 personnes", "5 personnes", "6+ personnes"}
	RoomTypes      = []string{"standard", "superieure", "suite"}
	Countries      = []string{"France", "Sénégal", "Belgique", "Maroc", "Côte d'Ivoire", "Espagne", "Royaume-Uni", "Autre"}
	PaymentMethods = []string{"card", "orange", "wave"}
)

const (
	DefaultPartySize = "2 personnes"
	DefaultRoomType  = "standard"
	DefaultCountry   = "France"
	DefaultPayment   = "card"
)

// hotelOnly fields are only collected for hotel stays.
var hotelOnly = map[Field]bool{FieldEndDate: true, FieldRoomType: true}

// Draft is the in-progress booking input, grouped by wizard step.
type Draft struct {
	// Stay
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	PartySize string `json:"partySize"`
	RoomType  string `json:"roomType,omitempty"`

	// Contact
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Country         string `json:"country"`
	SpecialRequests string `json:"specialRequests,omitempty"`

	// Payment
	PaymentMethod    string `json:"paymentMethod"`
	CardNumber       string `json:"cardNumber,omitempty"`
	CardName         string `json:"cardName,omitempty"`
	CardExpiry       string `json:"cardExpiry,omitempty"`
	CardCvv          string `json:"cardCvv,omitempty"`
	MobileMoneyPhone string `json:"mobileMoneyPhone,omitempty"`
}

func NewDraft(hotel bool) Draft {
	d := Draft{
		PartySize:     DefaultPartySize,
		Country:       DefaultCountry,
		PaymentMethod: DefaultPayment,
	}
	if hotel {
		d.RoomType = DefaultRoomType
	}
	return d
}

func oneOf(set []string, v string, allowEmpty bool) bool {
	if v == "" {
		return allowEmpty
	}
	return slices.Contains(set, v)
}

func isDate(v string) bool {
	return validate.Var(v, "omitempty,datetime=2006-01-02") == nil
}

// Set assigns one field after checking the value against the field's domain.
// Free-text fields are stored as given apart from surrounding whitespace.
func (d *Draft) Set(f Field, v string) error {
	v = strings.TrimSpace(v)
	bad := func() error { return fmt.Errorf("%w %s: %q", ErrInvalidValue, f, v) }

	switch f {
	case FieldStartDate:
		if !isDate(v) {
			return bad()
		}
		d.StartDate = v
	case FieldEndDate:
		if !isDate(v) {
			return bad()
		}
		d.EndDate = v
	case FieldPartySize:
		if !oneOf(PartySizes, v, false) {
			return bad()
		}
		d.PartySize = v
	case FieldRoomType:
		if !oneOf(RoomTypes, v, false) {
			return bad()
		}
		d.RoomType = v
	case FieldFirstName:
		d.FirstName = v
	case FieldLastName:
		d.LastName = v
	case FieldEmail:
		d.Email = v
	case FieldPhone:
		d.Phone = v
	case FieldCountry:
		if !oneOf(Countries, v, false) {
			return bad()
		}
		d.Country = v
	case FieldSpecialRequests:
		d.SpecialRequests = v
	case FieldPaymentMethod:
		// clearing is allowed; the payment guard then blocks confirmation
		if !oneOf(PaymentMethods, v, true) {
			return bad()
		}
		d.PaymentMethod = v
	case FieldCardNumber:
		d.CardNumber = v
	case FieldCardName:
		d.CardName = v
	case FieldCardExpiry:
		d.CardExpiry = v
	case FieldCardCvv:
		d.CardCvv = v
	case FieldMobileMoneyPhone:
		d.MobileMoneyPhone = v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return nil
}
