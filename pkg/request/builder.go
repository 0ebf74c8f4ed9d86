package request

import (
	"fmt"
	"reflect"

	"github.com/go-logr/logr"

	"github.com/alexadamm/s2p-go/pkg/keys"
	"github.com/alexadamm/s2p-go/pkg/logs"
	"github.com/alexadamm/s2p-go/pkg/registration"
	"github.com/alexadamm/s2p-go/pkg/token"
	"github.com/alexadamm/s2p-go/pkg/token/algorithms"
)

// Builder signs registration requests. It holds no per-request state and
// is safe for concurrent use.
type Builder struct {
	logger logr.Logger
	loader *keys.Loader
}

// Option configures a Builder
type Option func(*Builder)

// WithLogger sets the logger. Only identifiers are logged.
func WithLogger(logger logr.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithKeyLoader sets the loader used by BuildFromPEMFile
func WithKeyLoader(loader *keys.Loader) Option {
	return func(b *Builder) {
		b.loader = loader
	}
}

// NewBuilder creates a Builder
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.loader == nil {
		b.loader = keys.NewLoader(keys.WithLogger(b.logger))
	}
	return b
}

var defaultBuilder = NewBuilder()

// Build signs a request with the default builder. See Builder.Build.
func Build(desc Descriptor, payload registration.Payload, keyID string, key *keys.PrivateKey) (*Envelope, error) {
	return defaultBuilder.Build(desc, payload, keyID, key)
}

// BuildWithSigner signs a request with the default builder. See Builder.BuildWithSigner.
func BuildWithSigner(desc Descriptor, payload registration.Payload, keyID string, signer algorithms.Signer) (*Envelope, error) {
	return defaultBuilder.BuildWithSigner(desc, payload, keyID, signer)
}

// BuildFromPEMFile signs a request with the default builder. See Builder.BuildFromPEMFile.
func BuildFromPEMFile(desc Descriptor, payload registration.Payload, keyID, path, passphrase string) (*Envelope, error) {
	return defaultBuilder.BuildFromPEMFile(desc, payload, keyID, path, passphrase)
}

// Build signs a request to desc carrying payload with an RS256 key.
//
// Inputs are checked in this order: key, keyID, payload, descriptor.
func (b *Builder) Build(desc Descriptor, payload registration.Payload, keyID string, key *keys.PrivateKey) (*Envelope, error) {
	if key == nil || key.Key == nil {
		return nil, missing(FieldPrivateKey)
	}
	if err := validate(desc, payload, keyID); err != nil {
		return nil, err
	}

	signer, err := algorithms.NewRS256(key.Key)
	if err != nil {
		return nil, err
	}

	return b.sign(desc, payload, keyID, signer)
}

// BuildWithSigner is Build for keys held outside the process. The signer
// must implement RS256.
func (b *Builder) BuildWithSigner(desc Descriptor, payload registration.Payload, keyID string, signer algorithms.Signer) (*Envelope, error) {
	if isNil(signer) {
		return nil, missing(FieldSigner)
	}
	if err := validate(desc, payload, keyID); err != nil {
		return nil, err
	}

	return b.sign(desc, payload, keyID, signer)
}

// BuildFromPEMFile loads the key at path and signs the request with it.
// The passphrase is only used for encrypted keys. Inputs are checked
// before the file is read.
func (b *Builder) BuildFromPEMFile(desc Descriptor, payload registration.Payload, keyID, path, passphrase string) (*Envelope, error) {
	if path == "" {
		return nil, missing(FieldKeyPEMPath)
	}
	if err := validate(desc, payload, keyID); err != nil {
		return nil, err
	}

	key, err := b.loader.LoadFile(path, passphrase)
	if err != nil {
		return nil, err
	}

	return b.Build(desc, payload, keyID, key)
}

func validate(desc Descriptor, payload registration.Payload, keyID string) error {
	if keyID == "" {
		return missing(FieldKeyID)
	}
	if isNil(payload) {
		return missing(FieldRegistration)
	}
	if desc.IsZero() {
		return missing(FieldDescriptor)
	}
	return nil
}

func (b *Builder) sign(desc Descriptor, payload registration.Payload, keyID string, signer algorithms.Signer) (*Envelope, error) {
	reg, err := payload.CanonicalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: registration: %w", ErrSerialization, err)
	}

	jti := desc.Hash(reg)

	jwt, err := token.New(token.NewHeader(keyID), token.Claims{ID: jti})
	if err != nil {
		return nil, err
	}

	compact, err := jwt.Sign(signer)
	if err != nil {
		return nil, err
	}

	b.logger.V(logs.Debug).Info("signed registration request", "kid", keyID, "uri", desc.URI, "jti", jti, "alg", signer.Name())

	return &Envelope{
		JWT: compact,
		Reg: reg,
		URI: desc.URI,
	}, nil
}

// isNil also catches typed nil pointers stored in an interface
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}
