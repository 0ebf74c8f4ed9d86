package request

import (
	"fmt"
	"net/http"
	"sort"
)

// ContentTypeJSON is the content type of every registration request
const ContentTypeJSON = "application/json;charset=UTF-8"

// Descriptor identifies a remote operation. The zero value means no
// descriptor was given.
type Descriptor struct {
	Name        string
	Method      string
	ContentType string
	URI         string
}

var (
	// SaveToMembership registers a membership card
	SaveToMembership = Descriptor{
		Name:        "membership",
		Method:      http.MethodPost,
		ContentType: ContentTypeJSON,
		URI:         "/sapi/loyalty/v1/registrations",
	}

	// SaveToGiftCard registers a gift card
	SaveToGiftCard = Descriptor{
		Name:        "giftcard",
		Method:      http.MethodPost,
		ContentType: ContentTypeJSON,
		URI:         "/sapi/giftcard/v1/registrations",
	}
)

var descriptors = map[string]Descriptor{
	SaveToMembership.Name: SaveToMembership,
	SaveToGiftCard.Name:   SaveToGiftCard,
}

// DescriptorByName returns the predefined descriptor with the given name
func DescriptorByName(name string) (Descriptor, error) {
	d, ok := descriptors[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownDescriptor, name)
	}
	return d, nil
}

// DescriptorNames returns the names of the predefined descriptors, sorted
func DescriptorNames() []string {
	names := make([]string, 0, len(descriptors))
	for name := range descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsZero reports whether d is the zero Descriptor
func (d Descriptor) IsZero() bool {
	return d == Descriptor{}
}

// Hash returns the canonical hash of a request to d carrying body
func (d Descriptor) Hash(body string) string {
	return CanonicalHash(d.Method, d.ContentType, d.URI, body)
}
