package giftcard

import (
	"encoding/json"
	"fmt"

	"github.com/alexadamm/s2p-go/pkg/registration"
)

// Tnc holds the card's terms and conditions, as a link, inline text or both
type Tnc struct {
	URL     string `json:"url,omitempty"`
	Content string `json:"content,omitempty"`
}

// NewTnc creates terms and conditions. At least one of url and content must
// be non-empty.
func NewTnc(url, content string) (*Tnc, error) {
	t := &Tnc{URL: url, Content: content}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the required fields
func (t *Tnc) Validate() error {
	if t.URL == "" && t.Content == "" {
		return registration.Invalid("Terms and Conditions' content and url are both missing, at least one of them has to be provided")
	}
	return nil
}

// Card describes the gift card being registered
type Card struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
	Tnc      *Tnc   `json:"tnc"`
}

// NewCard creates a card
func NewCard(id, imageURL string, tnc *Tnc) (*Card, error) {
	c := &Card{ID: id, ImageURL: imageURL, Tnc: tnc}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the required fields, including the terms and conditions
func (c *Card) Validate() error {
	if c.ID == "" {
		return registration.Invalid("Card id is missing")
	}
	if c.ImageURL == "" {
		return registration.Invalid("Card image url is missing")
	}
	if c.Tnc == nil {
		return registration.Invalid("Card terms and conditions is missing")
	}
	return c.Tnc.Validate()
}

// Merchant identifies the issuer of the card
type Merchant struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}

// NewMerchant creates a merchant
func NewMerchant(name, logoURL string) (*Merchant, error) {
	m := &Merchant{Name: name, LogoURL: logoURL}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the required fields
func (m *Merchant) Validate() error {
	if m.Name == "" {
		return registration.Invalid("Merchant name is missing")
	}
	if m.LogoURL == "" {
		return registration.Invalid("Merchant logo url is missing")
	}
	return nil
}

// Registration is the gift card registration payload
type Registration struct {
	Card     *Card     `json:"card"`
	Merchant *Merchant `json:"merchant"`
}

// NewRegistration creates a registration from a card and its merchant
func NewRegistration(card *Card, merchant *Merchant) (*Registration, error) {
	r := &Registration{Card: card, Merchant: merchant}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the registration and everything it contains
func (r *Registration) Validate() error {
	if r.Card == nil {
		return registration.Invalid("Registration card is missing")
	}
	if r.Merchant == nil {
		return registration.Invalid("Registration merchant is missing")
	}
	if err := r.Card.Validate(); err != nil {
		return err
	}
	return r.Merchant.Validate()
}

// CanonicalJSON implements registration.Payload
func (r *Registration) CanonicalJSON() (string, error) {
	return registration.MarshalCanonical(r)
}

// ParseRegistration decodes a gift card registration from JSON and
// validates it. Unknown fields are ignored.
func ParseRegistration(data []byte) (*Registration, error) {
	var r Registration
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %w", registration.ErrEncoding, err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}
