package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Catalog is the read-only content store snapshot. Collections are loaded once
// and never mutated afterwards; ids are unique per collection only.
type Catalog struct {
	Hotels       []Hotel       `json:"hotels"`
	Activities   []Activity    `json:"activities"`
	Packages     []Package     `json:"packages"`
	Testimonials []Testimonial `json:"testimonials"`
}

// OfferType names the collection an offer belongs to, as passed in navigation
// parameters (?type=hotel&id=1).
type OfferType string

const (
	OfferHotel    OfferType = "hotel"
	OfferActivity OfferType = "activite"
	OfferPackage  OfferType = "forfait"
)

// Offer is the flattened summary of any catalog item a reservation references.
type Offer struct {
	Type   OfferType `json:"type"`
	ID     int64     `json:"id"`
	Name   string    `json:"name"`
	Image  string    `json:"image"`
	Price  int64     `json:"price"`
	Detail string    `json:"detail"`
}

func (c Catalog) Hotel(id int64) (Hotel, bool) {
	for _, h := range c.Hotels {
		if h.ID == id {
			return h, true
		}
	}
	return Hotel{}, false
}

func (c Catalog) Activity(id int64) (Activity, bool) {
	for _, a := range c.Activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

func (c Catalog) Package(id int64) (Package, bool) {
	for _, p := range c.Packages {
		if p.ID == id {
			return p, true
		}
	}
	return Package{}, false
}

// ResolveOffer looks up an offer from opaque navigation strings. A malformed id
// or an unknown type is treated like a missing item.
func (c Catalog) ResolveOffer(t OfferType, rawID string) (Offer, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		return Offer{}, false
	}
	switch t {
	case OfferHotel:
		if h, ok := c.Hotel(id); ok {
			return Offer{Type: t, ID: h.ID, Name: h.Name, Image: h.Image, Price: h.Price,
				Detail: fmt.Sprintf("%d★ · %s", h.Stars, h.Location)}, true
		}
	case OfferActivity:
		if a, ok := c.Activity(id); ok {
			return Offer{Type: t, ID: a.ID, Name: a.Name, Image: a.Image, Price: a.Price,
				Detail: a.Duration + " · Par personne"}, true
		}
	case OfferPackage:
		if p, ok := c.Package(id); ok {
			return Offer{Type: t, ID: p.ID, Name: p.Name, Image: p.Image, Price: p.Price,
				Detail: p.Duration + " · " + p.Persons}, true
		}
	}
	return Offer{}, false
}
