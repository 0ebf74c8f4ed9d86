package giftcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexadamm/s2p-go/pkg/registration"
)

func validCard(t *testing.T) *Card {
	t.Helper()
	tnc, err := NewTnc("https://example.com/tnc", "")
	require.NoError(t, err)
	card, err := NewCard("card-1", "https://example.com/card.png", tnc)
	require.NoError(t, err)
	return card
}

func validMerchant(t *testing.T) *Merchant {
	t.Helper()
	m, err := NewMerchant("Holly", "https://example.com/logo.png")
	require.NoError(t, err)
	return m
}

// TestValidation verifies that each missing field is reported with its own message
func TestValidation(t *testing.T) {
	tnc := &Tnc{Content: "terms"}
	card := validCard(t)
	merchant := validMerchant(t)

	tests := []struct {
		name    string
		build   func() error
		message string
	}{
		{
			name:    "Tnc without url and content",
			build:   func() error { _, err := NewTnc("", ""); return err },
			message: "Terms and Conditions' content and url are both missing, at least one of them has to be provided",
		},
		{
			name:    "Card id",
			build:   func() error { _, err := NewCard("", "img", tnc); return err },
			message: "Card id is missing",
		},
		{
			name:    "Card image url",
			build:   func() error { _, err := NewCard("id", "", tnc); return err },
			message: "Card image url is missing",
		},
		{
			name:    "Card tnc",
			build:   func() error { _, err := NewCard("id", "img", nil); return err },
			message: "Card terms and conditions is missing",
		},
		{
			name:    "Merchant name",
			build:   func() error { _, err := NewMerchant("", "logo"); return err },
			message: "Merchant name is missing",
		},
		{
			name:    "Merchant logo url",
			build:   func() error { _, err := NewMerchant("name", ""); return err },
			message: "Merchant logo url is missing",
		},
		{
			name:    "Registration card",
			build:   func() error { _, err := NewRegistration(nil, merchant); return err },
			message: "Registration card is missing",
		},
		{
			name:    "Registration merchant",
			build:   func() error { _, err := NewRegistration(card, nil); return err },
			message: "Registration merchant is missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, registration.ErrInvalid)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestCanonicalJSON(t *testing.T) {
	tnc, err := NewTnc("https://example.com/tnc?a=1&b=2", "See <terms>")
	require.NoError(t, err)
	card, err := NewCard("card-1", "https://example.com/card.png", tnc)
	require.NoError(t, err)

	reg, err := NewRegistration(card, validMerchant(t))
	require.NoError(t, err)

	got, err := reg.CanonicalJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"card":{"id":"card-1","imageUrl":"https://example.com/card.png","tnc":{"url":"https://example.com/tnc?a=1&b=2","content":"See <terms>"}},"merchant":{"name":"Holly","logoUrl":"https://example.com/logo.png"}}`,
		got)

	again, err := reg.CanonicalJSON()
	require.NoError(t, err)
	assert.Equal(t, got, again)

	var _ registration.Payload = reg
}

func TestParseRegistration(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		reg, err := ParseRegistration([]byte(`{
			"merchant": {"name": "Holly", "logoUrl": "logo"},
			"card": {"id": "1", "imageUrl": "img", "tnc": {"content": "terms"}},
			"extra": true
		}`))
		require.NoError(t, err)

		got, err := reg.CanonicalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"card":{"id":"1","imageUrl":"img","tnc":{"content":"terms"}},"merchant":{"name":"Holly","logoUrl":"logo"}}`, got)
	})

	t.Run("Nested field missing", func(t *testing.T) {
		_, err := ParseRegistration([]byte(`{"card":{"id":"1","imageUrl":"img","tnc":{}},"merchant":{"name":"m","logoUrl":"l"}}`))
		assert.ErrorIs(t, err, registration.ErrInvalid)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseRegistration([]byte(`{"card":`))
		assert.ErrorIs(t, err, registration.ErrEncoding)
	})
}
