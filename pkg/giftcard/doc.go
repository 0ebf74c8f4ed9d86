// Package giftcard provides the gift card registration payload.
//
// Every constructor validates its input and returns a
// *registration.ValidationError naming the first missing field.
package giftcard
