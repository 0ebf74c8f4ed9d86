package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexadamm/s2p-go/pkg/registration"
)

func minimalRegistration() Registration {
	return Registration{
		CardID:           "321321",
		MembershipID:     "123",
		MembershipIDType: IDTypeCardNum,
		ProgramName:      "Holly membership program name",
	}
}

// TestValidation verifies that each constructor reports the first missing field
func TestValidation(t *testing.T) {
	withReg := func(mutate func(r *Registration)) func() error {
		return func() error {
			r := minimalRegistration()
			mutate(&r)
			_, err := NewRegistration(r)
			return err
		}
	}

	tests := []struct {
		name    string
		build   func() error
		message string
	}{
		{
			name:    "Barcode symbology",
			build:   func() error { _, err := NewBarcode("", "1234567890"); return err },
			message: "Barcode symbology is missing",
		},
		{
			name:    "Barcode unknown symbology",
			build:   func() error { _, err := NewBarcode("CODE_11", "1234567890"); return err },
			message: `Barcode symbology "CODE_11" is not supported`,
		},
		{
			name:    "Barcode data",
			build:   func() error { _, err := NewBarcode(SymbologyCode39, ""); return err },
			message: "Barcode data is missing",
		},
		{
			name:    "Tracks",
			build:   func() error { _, err := NewTracks("", "", ""); return err },
			message: "Track (track1, track2, track3) is missing",
		},
		{
			name:    "CustomClaimI18n label",
			build:   func() error { _, err := NewCustomClaimI18n("en", "", "content"); return err },
			message: "CustomClaim label is missing",
		},
		{
			name:    "CustomClaimI18n content",
			build:   func() error { _, err := NewCustomClaimI18n("en", "label", ""); return err },
			message: "CustomClaim content is missing",
		},
		{
			name:    "CustomClaim i18ns",
			build:   func() error { _, err := NewCustomClaim(); return err },
			message: "CustomClaim i18ns is missing",
		},
		{
			name:    "CardArtI18n artUrl",
			build:   func() error { _, err := NewCardArtI18n("en", ""); return err },
			message: "CardArtI18n artUrl is missing",
		},
		{
			name:    "CardArt i18ns",
			build:   func() error { _, err := NewCardArt(); return err },
			message: "CardArt i18ns is missing",
		},
		{
			name:    "CardArt nil entry",
			build:   func() error { _, err := NewCardArt(&CardArtI18n{ArtURL: "a"}, nil); return err },
			message: "CardArt i18ns is missing",
		},
		{
			name:    "UserMessage i18ns",
			build:   func() error { _, err := NewUserMessage("", "", nil); return err },
			message: "UserMessage i18ns is missing",
		},
		{
			name:    "Registration card ID",
			build:   withReg(func(r *Registration) { r.CardID = "" }),
			message: "Registration card ID is missing",
		},
		{
			name:    "Registration membership ID",
			build:   withReg(func(r *Registration) { r.MembershipID = "" }),
			message: "Registration membership ID is missing",
		},
		{
			name:    "Registration membership ID type",
			build:   withReg(func(r *Registration) { r.MembershipIDType = "" }),
			message: "Registration membership ID type is missing",
		},
		{
			name:    "Registration programName",
			build:   withReg(func(r *Registration) { r.ProgramName = "" }),
			message: "Registration programName is missing",
		},
		{
			name:    "Registration unknown card status",
			build:   withReg(func(r *Registration) { r.CardStatus = "LOST" }),
			message: `Registration card status "LOST" is not supported`,
		},
		{
			name:    "Registration nested barcode",
			build:   withReg(func(r *Registration) { r.Barcode = &Barcode{Symbology: SymbologyQRCode} }),
			message: "Barcode data is missing",
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
	t.Run("Minimal", func(t *testing.T) {
		reg, err := NewRegistration(minimalRegistration())
		require.NoError(t, err)

		got, err := reg.CanonicalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"cardId":"321321","membershipId":"123","membershipIdType":"CARDNUM","programName":"Holly membership program name"}`, got)
	})

	t.Run("Full", func(t *testing.T) {
		barcode, err := NewBarcode(SymbologyQRCode, "1234567890")
		require.NoError(t, err)
		tracks, err := NewTracks("", "2222", "")
		require.NoError(t, err)
		art, err := NewCardArtI18n("en", "https://example.com/art.png")
		require.NoError(t, err)
		cardArt, err := NewCardArt(art)
		require.NoError(t, err)
		claimI18n, err := NewCustomClaimI18n("en", "Tier", "Gold & up")
		require.NoError(t, err)
		claim, err := NewCustomClaim(claimI18n)
		require.NoError(t, err)
		message, err := NewUserMessage("2017-01-01T00:00:00Z", "", NewUserMessageI18n("en", "Hi", "Welcome"))
		require.NoError(t, err)

		r := minimalRegistration()
		r.Barcode = barcode
		r.Tracks = tracks
		r.CardStatus = CardStatusActive
		r.UserMessages = []*UserMessage{message}
		r.CustomClaims = []*CustomClaim{claim}
		r.CardArt = cardArt

		reg, err := NewRegistration(r)
		require.NoError(t, err)

		got, err := reg.CanonicalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"cardId":"321321","membershipId":"123","membershipIdType":"CARDNUM","programName":"Holly membership program name",`+
			`"barcode":{"symbology":"QR_CODE","data":"1234567890"},"tracks":{"track2":"2222"},"cardStatus":"ACTIVE",`+
			`"userMessages":[{"startAt":"2017-01-01T00:00:00Z","i18ns":[{"language":"en","title":"Hi","body":"Welcome"}]}],`+
			`"customClaims":[{"i18ns":[{"language":"en","label":"Tier","content":"Gold & up"}]}],`+
			`"cardArt":{"i18ns":[{"language":"en","artUrl":"https://example.com/art.png"}]}}`, got)
	})
}

func TestParseRegistration(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		reg, err := ParseRegistration([]byte(`{"programName":"p","cardId":"c","membershipId":"m","membershipIdType":"CARDNUM","cardStatus":"INACTIVE","unknown":1}`))
		require.NoError(t, err)
		assert.Equal(t, CardStatusInactive, reg.CardStatus)

		got, err := reg.CanonicalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"cardId":"c","membershipId":"m","membershipIdType":"CARDNUM","programName":"p","cardStatus":"INACTIVE"}`, got)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseRegistration([]byte(`{"cardId":"c"}`))
		assert.ErrorIs(t, err, registration.ErrInvalid)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseRegistration([]byte(`[`))
		assert.ErrorIs(t, err, registration.ErrEncoding)
	})
}

func TestEnums(t *testing.T) {
	assert.Len(t, symbologies, 17)
	assert.True(t, SymbologyUPCEANExtension.Valid())
	assert.False(t, Symbology("qr_code").Valid())
	assert.True(t, CardStatusActive.Valid())
	assert.False(t, CardStatus("").Valid())
	assert.True(t, IDTypeCardNum.Valid())
}
