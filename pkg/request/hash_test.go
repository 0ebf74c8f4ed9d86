package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const goldenJTI = "04ualIxMSud2o_yhe7OFZyAyiv3szZyqmMU-1pw0B3s"

func TestCanonicalHash(t *testing.T) {
	base := [4]string{"POST", ContentTypeJSON, "/sapi/loyalty/v1/registrations", `{"a":1}`}
	hash := func(p [4]string) string { return CanonicalHash(p[0], p[1], p[2], p[3]) }

	t.Run("Golden", func(t *testing.T) {
		assert.Equal(t, goldenJTI, hash(base))
		assert.Equal(t, goldenJTI, SaveToMembership.Hash(`{"a":1}`))
	})

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, hash(base), hash(base))
	})

	t.Run("Shape", func(t *testing.T) {
		for _, p := range [][4]string{base, {}, {"GET", "", "/", strings.Repeat("x", 10000)}} {
			h := hash(p)
			assert.Len(t, h, 43)
			assert.NotContains(t, h, "=")
			assert.NotContains(t, h, "+")
			assert.NotContains(t, h, "/")
		}
	})

	t.Run("Each component matters", func(t *testing.T) {
		for i := range base {
			changed := base
			changed[i] += "x"
			assert.NotEqual(t, hash(base), hash(changed), "component %d", i)
		}
	})

	t.Run("Delimiter is part of the input", func(t *testing.T) {
		// moving a character across a boundary must change the hash
		assert.NotEqual(t, CanonicalHash("POS", "Tapplication/json", "/u", "{}"), CanonicalHash("POST", "application/json", "/u", "{}"))
	})
}

func TestDescriptors(t *testing.T) {
	tests := []struct {
		name string
		want Descriptor
	}{
		{"membership", SaveToMembership},
		{"giftcard", SaveToGiftCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DescriptorByName(tt.name)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "POST", got.Method)
			assert.Equal(t, "application/json;charset=UTF-8", got.ContentType)
		})
	}

	assert.Equal(t, "/sapi/loyalty/v1/registrations", SaveToMembership.URI)
	assert.Equal(t, "/sapi/giftcard/v1/registrations", SaveToGiftCard.URI)
	assert.Equal(t, []string{"giftcard", "membership"}, DescriptorNames())

	_, err := DescriptorByName("loyalty")
	assert.ErrorIs(t, err, ErrUnknownDescriptor)

	assert.True(t, Descriptor{}.IsZero())
	assert.False(t, SaveToGiftCard.IsZero())
}
