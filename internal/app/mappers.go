package app

import (
	"unicode"

	"saly_tourisme/internal/domain"
	"saly_tourisme/internal/reservation"
)

/********** session view **********/

// SessionView is what the wizard front-end renders.
type SessionView struct {
	ID           string                    `json:"id"`
	Step         int                       `json:"step"`
	StepName     string                    `json:"stepName"`
	CanAdvance   bool                      `json:"canAdvance"`
	CanRetreat   bool                      `json:"canRetreat"`
	OfferType    domain.OfferType          `json:"offerType"`
	OfferID      string                    `json:"offerId"`
	Offer        *domain.Offer             `json:"offer"`
	Draft        *reservation.Draft        `json:"draft,omitempty"`
	Confirmation *reservation.Confirmation `json:"confirmation,omitempty"`
}

func ToSessionView(s Session) SessionView {
	st := s.State
	v := SessionView{
		ID:           s.ID,
		Step:         int(st.Step),
		StepName:     st.Step.String(),
		CanAdvance:   reservation.CanAdvance(st),
		CanRetreat:   reservation.CanRetreat(st),
		OfferType:    st.OfferType,
		OfferID:      st.OfferID,
		Offer:        st.Offer,
		Confirmation: st.Confirmation,
	}
	if !st.IsTerminal() {
		d := maskDraft(st.Draft)
		v.Draft = &d
	}
	return v
}

// maskDraft keeps card data out of storage and responses: the number is
// reduced to its last four digits and the CVV is never kept. It is idempotent.
func maskDraft(d reservation.Draft) reservation.Draft {
	d.CardNumber = maskCard(d.CardNumber)
	if d.CardCvv != "" {
		d.CardCvv = "***"
	}
	return d
}

func maskCard(n string) string {
	digits := make([]rune, 0, len(n))
	for _, r := range n {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return ""
	}
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return "•••• " + string(digits)
}
