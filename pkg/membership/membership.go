package membership

import (
	"encoding/json"
	"fmt"

	"github.com/alexadamm/s2p-go/pkg/registration"
)

// Registration is the membership card registration payload
type Registration struct {
	CardID           string         `json:"cardId"`
	MembershipID     string         `json:"membershipId"`
	MembershipIDType IDType         `json:"membershipIdType"`
	ProgramName      string         `json:"programName"`
	Barcode          *Barcode       `json:"barcode,omitempty"`
	Tracks           *Tracks        `json:"tracks,omitempty"`
	CardStatus       CardStatus     `json:"cardStatus,omitempty"`
	UserMessages     []*UserMessage `json:"userMessages,omitempty"`
	CustomClaims     []*CustomClaim `json:"customClaims,omitempty"`
	CardArt          *CardArt       `json:"cardArt,omitempty"`
}

// NewRegistration validates r and returns a copy of it
func NewRegistration(r Registration) (*Registration, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks the required fields, then every optional part that is set
func (r *Registration) Validate() error {
	if r.CardID == "" {
		return registration.Invalid("Registration card ID is missing")
	}
	if r.MembershipID == "" {
		return registration.Invalid("Registration membership ID is missing")
	}
	if r.MembershipIDType == "" {
		return registration.Invalid("Registration membership ID type is missing")
	}
	if !r.MembershipIDType.Valid() {
		return registration.Invalid(fmt.Sprintf("Registration membership ID type %q is not supported", r.MembershipIDType))
	}
	if r.ProgramName == "" {
		return registration.Invalid("Registration programName is missing")
	}
	if r.CardStatus != "" && !r.CardStatus.Valid() {
		return registration.Invalid(fmt.Sprintf("Registration card status %q is not supported", r.CardStatus))
	}

	if r.Barcode != nil {
		if err := r.Barcode.Validate(); err != nil {
			return err
		}
	}
	if r.Tracks != nil {
		if err := r.Tracks.Validate(); err != nil {
			return err
		}
	}
	for _, m := range r.UserMessages {
		if m == nil {
			return registration.Invalid("Registration user message is missing")
		}
		if err := m.Validate(); err != nil {
			return err
		}
	}
	for _, c := range r.CustomClaims {
		if c == nil {
			return registration.Invalid("Registration custom claim is missing")
		}
		if err := c.Validate(); err != nil {
			return err
		}
	}
	if r.CardArt != nil {
		if err := r.CardArt.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CanonicalJSON implements registration.Payload
func (r *Registration) CanonicalJSON() (string, error) {
	return registration.MarshalCanonical(r)
}

// ParseRegistration decodes a membership registration from JSON and
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
