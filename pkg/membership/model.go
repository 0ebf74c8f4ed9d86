package membership

import (
	"fmt"

	"github.com/alexadamm/s2p-go/pkg/registration"
)

// Barcode is the barcode shown on the card
type Barcode struct {
	Symbology Symbology `json:"symbology"`
	Data      string    `json:"data"`
}

// NewBarcode creates a barcode
func NewBarcode(symbology Symbology, data string) (*Barcode, error) {
	b := &Barcode{Symbology: symbology, Data: data}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks the required fields
func (b *Barcode) Validate() error {
	if b.Symbology == "" {
		return registration.Invalid("Barcode symbology is missing")
	}
	if !b.Symbology.Valid() {
		return registration.Invalid(fmt.Sprintf("Barcode symbology %q is not supported", b.Symbology))
	}
	if b.Data == "" {
		return registration.Invalid("Barcode data is missing")
	}
	return nil
}

// Tracks holds magnetic stripe data. At least one track is required.
type Tracks struct {
	Track1 string `json:"track1,omitempty"`
	Track2 string `json:"track2,omitempty"`
	Track3 string `json:"track3,omitempty"`
}

// NewTracks creates magnetic stripe tracks
func NewTracks(track1, track2, track3 string) (*Tracks, error) {
	t := &Tracks{Track1: track1, Track2: track2, Track3: track3}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks that at least one track is set
func (t *Tracks) Validate() error {
	if t.Track1 == "" && t.Track2 == "" && t.Track3 == "" {
		return registration.Invalid("Track (track1, track2, track3) is missing")
	}
	return nil
}

// CardArtI18n is the card image for one language
type CardArtI18n struct {
	Language string `json:"language,omitempty"`
	ArtURL   string `json:"artUrl"`
}

// NewCardArtI18n creates a localized card image
func NewCardArtI18n(language, artURL string) (*CardArtI18n, error) {
	c := &CardArtI18n{Language: language, ArtURL: artURL}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the required fields
func (c *CardArtI18n) Validate() error {
	if c.ArtURL == "" {
		return registration.Invalid("CardArtI18n artUrl is missing")
	}
	return nil
}

// CardArt groups the localized card images
type CardArt struct {
	I18ns []*CardArtI18n `json:"i18ns"`
}

// NewCardArt creates card art from localized images
func NewCardArt(i18ns ...*CardArtI18n) (*CardArt, error) {
	c := &CardArt{I18ns: i18ns}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the list and each entry
func (c *CardArt) Validate() error {
	if missing(c.I18ns) {
		return registration.Invalid("CardArt i18ns is missing")
	}
	for _, i18n := range c.I18ns {
		if err := i18n.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CustomClaimI18n is a label and value pair for one language
type CustomClaimI18n struct {
	Language string `json:"language,omitempty"`
	Label    string `json:"label"`
	Content  string `json:"content"`
}

// NewCustomClaimI18n creates a localized custom claim
func NewCustomClaimI18n(language, label, content string) (*CustomClaimI18n, error) {
	c := &CustomClaimI18n{Language: language, Label: label, Content: content}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the required fields
func (c *CustomClaimI18n) Validate() error {
	if c.Label == "" {
		return registration.Invalid("CustomClaim label is missing")
	}
	if c.Content == "" {
		return registration.Invalid("CustomClaim content is missing")
	}
	return nil
}

// CustomClaim is an extra field displayed on the card
type CustomClaim struct {
	I18ns []*CustomClaimI18n `json:"i18ns"`
}

// NewCustomClaim creates a custom claim from its localized values
func NewCustomClaim(i18ns ...*CustomClaimI18n) (*CustomClaim, error) {
	c := &CustomClaim{I18ns: i18ns}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the list and each entry
func (c *CustomClaim) Validate() error {
	if missing(c.I18ns) {
		return registration.Invalid("CustomClaim i18ns is missing")
	}
	for _, i18n := range c.I18ns {
		if err := i18n.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// UserMessageI18n is a message for one language. Title and body are optional.
type UserMessageI18n struct {
	Language string `json:"language,omitempty"`
	Title    string `json:"title,omitempty"`
	Body     string `json:"body,omitempty"`
}

// NewUserMessageI18n creates a localized message. It has no required fields.
func NewUserMessageI18n(language, title, body string) *UserMessageI18n {
	return &UserMessageI18n{Language: language, Title: title, Body: body}
}

// UserMessage is a message shown to the card holder, optionally within a
// time window. StartAt and EndAt are passed through as given.
type UserMessage struct {
	StartAt string             `json:"startAt,omitempty"`
	EndAt   string             `json:"endAt,omitempty"`
	I18ns   []*UserMessageI18n `json:"i18ns"`
}

// NewUserMessage creates a user message
func NewUserMessage(startAt, endAt string, i18ns ...*UserMessageI18n) (*UserMessage, error) {
	m := &UserMessage{StartAt: startAt, EndAt: endAt, I18ns: i18ns}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks that the message has at least one localized entry
func (m *UserMessage) Validate() error {
	if missing(m.I18ns) {
		return registration.Invalid("UserMessage i18ns is missing")
	}
	return nil
}

// missing reports whether a list is empty or holds a nil entry
func missing[T any](items []*T) bool {
	if len(items) == 0 {
		return true
	}
	for _, item := range items {
		if item == nil {
			return true
		}
	}
	return false
}
