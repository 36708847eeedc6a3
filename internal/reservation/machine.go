// Package reservation implements the booking wizard as an explicit finite
// state machine: Stay → Contact → Payment → Confirmation. Transitions are a
// pure function of (State, Event); nothing here performs I/O.
package reservation

import (
	"strings"
	"time"

	"saly_tourisme/internal/domain"
)

type Step int

const (
	StepStay Step = iota + 1
	StepContact
	StepPayment
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepStay:
		return "stay"
	case StepContact:
		return "contact"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	}
	return "unknown"
}

type transition struct {
	next  Step
	prev  Step // 0 when retreat is not allowed
	guard func(Draft) bool
}

// Confirmation has no entry: it is terminal.
var transitions = map[Step]transition{
	StepStay:    {next: StepContact, guard: stayComplete},
	StepContact: {next: StepPayment, prev: StepStay, guard: contactComplete},
	StepPayment: {next: StepConfirmation, prev: StepContact, guard: paymentChosen},
}

// endDate is collected for hotels but deliberately not required here.
func stayComplete(d Draft) bool { return d.StartDate != "" }

func contactComplete(d Draft) bool {
	return d.FirstName != "" && d.LastName != "" && d.Email != ""
}

func paymentChosen(d Draft) bool { return oneOf(PaymentMethods, d.PaymentMethod, false) }

// State is everything the presentation layer needs to render the wizard.
type State struct {
	Step         Step             `json:"step"`
	OfferType    domain.OfferType `json:"offerType"`
	OfferID      string           `json:"offerId"`
	Offer        *domain.Offer    `json:"offer,omitempty"`
	Draft        Draft            `json:"draft"`
	Confirmation *Confirmation    `json:"confirmation,omitempty"`
}

func (s State) IsHotel() bool   { return s.OfferType == domain.OfferHotel }
func (s State) IsTerminal() bool { return s.Step == StepConfirmation }

// Start builds the initial state for an offer taken from navigation
// parameters. Empty parameters default to hotel #1. offer is nil when the
// lookup failed; the wizard still runs with a degraded summary.
func Start(offerType, offerID string, offer *domain.Offer) State {
	t := domain.OfferType(strings.TrimSpace(offerType))
	if t == "" {
		t = domain.OfferHotel
	}
	id := strings.TrimSpace(offerID)
	if id == "" {
		id = "1"
	}
	return State{
		Step:      StepStay,
		OfferType: t,
		OfferID:   id,
		Offer:     offer,
		Draft:     NewDraft(t == domain.OfferHotel),
	}
}

func CanAdvance(s State) bool {
	tr, ok := transitions[s.Step]
	return ok && tr.guard(s.Draft)
}

func CanRetreat(s State) bool {
	tr, ok := transitions[s.Step]
	return ok && tr.prev != 0
}

type EventKind string

const (
	EventSetField EventKind = "set_field"
	EventAdvance  EventKind = "advance"
	EventRetreat  EventKind = "retreat"
)

type Event struct {
	Kind  EventKind
	Field Field
	Value string
}

func SetField(f Field, v string) Event { return Event{Kind: EventSetField, Field: f, Value: v} }
func Advance() Event                   { return Event{Kind: EventAdvance} }
func Retreat() Event                   { return Event{Kind: EventRetreat} }

// Machine applies events. Now stamps confirmations; nil means time.Now.
type Machine struct {
	Now func() time.Time
}

func (m Machine) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// Apply returns the state after ev. A blocked advance or retreat returns s
// unchanged with a nil error; only malformed field edits are errors.
func (m Machine) Apply(s State, ev Event) (State, error) {
	switch ev.Kind {
	case EventSetField:
		if s.IsTerminal() {
			return s, ErrTerminal
		}
		if hotelOnly[ev.Field] && !s.IsHotel() {
			return s, ErrFieldNotApplicable
		}
		d := s.Draft
		if err := d.Set(ev.Field, ev.Value); err != nil {
			return s, err
		}
		s.Draft = d
		return s, nil

	case EventAdvance:
		if !CanAdvance(s) {
			return s, nil
		}
		next := transitions[s.Step].next
		if next == StepConfirmation {
			c := Confirm(s, m.now())
			s.Confirmation = &c
			s.Draft = Draft{}
		}
		s.Step = next
		return s, nil

	case EventRetreat:
		if !CanRetreat(s) {
			return s, nil
		}
		s.Step = transitions[s.Step].prev
		return s, nil
	}
	return s, nil
}
