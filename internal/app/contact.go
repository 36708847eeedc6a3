package app

import (
	"context"
	"reflect"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"saly_tourisme/internal/adapters/observability"
)

// ContactTypes and ContactPartySizes are the contact form's select options.
var (
	ContactTypes = []string{
		"Hébergement seul",
		"Forfait tout compris",
		"Activité / Excursion",
		"Transfert aéroport",
		"Sur-mesure",
	}
	ContactPartySizes = []string{
		"1 personne",
		"2 personnes",
		"3 – 4 personnes",
		"5 – 8 personnes",
		"Groupe (9+)",
	}
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("contact_type", func(fl validator.FieldLevel) bool {
		return slices.Contains(ContactTypes, fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("contact_persons", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		return v == "" || slices.Contains(ContactPartySizes, v)
	}); err != nil {
		panic(err)
	}
}

// ContactMessage is the contact page form.
type ContactMessage struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=40"`
	Type    string `json:"type" validate:"required,contact_type"`
	Dates   string `json:"dates" validate:"max=120"`
	Persons string `json:"persons" validate:"contact_persons"`
	Message string `json:"message" validate:"max=4000"`
	Consent bool   `json:"rgpd" validate:"required"`
}

// ValidationError lists invalid fields by their JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid fields: " + strings.Join(keys, ", ")
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "This field is required"
		case "email":
			fields[fe.Field()] = "Invalid email format"
		case "max":
			fields[fe.Field()] = "Value is too long (max: " + fe.Param() + ")"
		case "contact_type":
			fields[fe.Field()] = "Must be one of: " + strings.Join(ContactTypes, ", ")
		case "contact_persons":
			fields[fe.Field()] = "Must be one of: " + strings.Join(ContactPartySizes, ", ")
		default:
			fields[fe.Field()] = "Invalid value"
		}
	}
	return &ValidationError{Fields: fields}
}

// ContactAck is returned once a message is accepted.
type ContactAck struct {
	Ticket     string    `json:"ticket"`
	ReceivedAt time.Time `json:"receivedAt"`
}

type ContactService struct {
	now   func() time.Time
	newID func() string
}

func NewContactService() *ContactService {
	return &ContactService{now: time.Now, newID: uuid.NewString}
}

// Submit validates and records a contact request. Messages are logged, not stored.
func (s *ContactService) Submit(ctx context.Context, m ContactMessage) (ContactAck, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Type = strings.TrimSpace(m.Type)
	if err := validateStruct(m); err != nil {
		return ContactAck{}, err
	}

	ack := ContactAck{Ticket: s.newID(), ReceivedAt: s.now()}
	observability.ObserveContact(m.Type)
	log.Info().
		Str("ticket", ack.Ticket).
		Str("type", m.Type).
		Str("persons", m.Persons).
		Str("dates", m.Dates).
		Int("message_len", len(m.Message)).
		Msg("contact message received")
	return ack, nil
}
