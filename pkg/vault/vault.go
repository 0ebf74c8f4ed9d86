package vault

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/hashicorp/vault/api"

	"github.com/alexadamm/s2p-go/pkg/logs"
	"github.com/alexadamm/s2p-go/pkg/token/algorithms"
)

// DefaultMountPath is where the Transit engine is mounted unless configured otherwise
const DefaultMountPath = "transit"

// ErrKeyNotFound is returned when the Transit key does not exist
var ErrKeyNotFound = errors.New("transit key not found")

// Config holds configuration for the Vault signer
type Config struct {
	// Address is the Vault server address. Defaults to VAULT_ADDR.
	Address string

	// Token is the authentication token. Defaults to VAULT_TOKEN.
	Token string

	// KeyName is the name of the Transit key. Required.
	KeyName string

	// MountPath is the Transit mount, "transit" when empty
	MountPath string

	// Timeout bounds each request to Vault. Zero keeps the client default.
	Timeout time.Duration

	// Logger receives diagnostic messages
	Logger logr.Logger
}

// Signer signs with an RSA key held in Vault's Transit engine.
// It implements algorithms.Signer for RS256; the private key never leaves Vault.
type Signer struct {
	client  *api.Client
	mount   string
	keyName string
	logger  logr.Logger
}

// NewSigner creates a new Vault backed RS256 signer
func NewSigner(config Config) (*Signer, error) {
	if config.KeyName == "" {
		return nil, fmt.Errorf("%w: vault key name is required", algorithms.ErrInvalidKey)
	}

	vaultConfig := api.DefaultConfig()
	if vaultConfig.Error != nil {
		return nil, fmt.Errorf("failed to read vault environment: %w", vaultConfig.Error)
	}
	if config.Address != "" {
		vaultConfig.Address = config.Address
	}
	if config.Timeout > 0 {
		vaultConfig.Timeout = config.Timeout
	}
	// a failed sign is terminal for the call; retrying is up to the caller
	vaultConfig.MaxRetries = 0

	client, err := api.NewClient(vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}

	if config.Token != "" {
		client.SetToken(config.Token)
	}

	mount := strings.Trim(config.MountPath, "/")
	if mount == "" {
		mount = DefaultMountPath
	}

	logger := config.Logger
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}

	return &Signer{
		client:  client,
		mount:   mount,
		keyName: config.KeyName,
		logger:  logger.WithValues("mount", mount, "key", config.KeyName),
	}, nil
}

// Name implements algorithms.Signer
func (s *Signer) Name() string {
	return algorithms.RS256
}

// Sign implements algorithms.Signer
func (s *Signer) Sign(message []byte) ([]byte, error) {
	return s.SignContext(context.Background(), message)
}

// SignContext asks Vault for an RSASSA-PKCS1-v1_5 SHA-256 signature over message
func (s *Signer) SignContext(ctx context.Context, message []byte) ([]byte, error) {
	path := fmt.Sprintf("%s/sign/%s/sha2-256", s.mount, s.keyName)

	secret, err := s.client.Logical().WriteWithContext(ctx, path, map[string]interface{}{
		"input":               base64.StdEncoding.EncodeToString(message),
		"signature_algorithm": "pkcs1v15",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: vault: %w", algorithms.ErrSigning, err)
	}

	if secret == nil {
		return nil, fmt.Errorf("%w: vault returned no signature", algorithms.ErrSigning)
	}

	signature, ok := secret.Data["signature"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: invalid signature format", algorithms.ErrSigning)
	}

	raw, version, err := parseSignature(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", algorithms.ErrSigning, err)
	}

	s.logger.V(logs.Trace).Info("signed with vault", "keyVersion", version)

	return raw, nil
}

// parseSignature splits "vault:v<N>:<base64>" into the raw signature and its key version
func parseSignature(signature string) ([]byte, string, error) {
	parts := strings.SplitN(signature, ":", 3)
	if len(parts) != 3 || parts[0] != "vault" || !strings.HasPrefix(parts[1], "v") {
		return nil, "", fmt.Errorf("unexpected signature format")
	}

	raw, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode signature: %w", err)
	}

	return raw, parts[1], nil
}

// PublicKey returns the public half of the latest version of the Transit key
func (s *Signer) PublicKey(ctx context.Context) (*rsa.PublicKey, int64, error) {
	path := fmt.Sprintf("%s/keys/%s", s.mount, s.keyName)

	secret, err := s.client.Logical().ReadWithContext(ctx, path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read key info: %w", err)
	}

	if secret == nil {
		return nil, 0, fmt.Errorf("%w: %s", ErrKeyNotFound, path)
	}

	if keyType, _ := secret.Data["type"].(string); !strings.HasPrefix(keyType, "rsa-") {
		return nil, 0, fmt.Errorf("%w: transit key type %q is not RSA", algorithms.ErrInvalidKey, keyType)
	}

	latestVersion, ok := secret.Data["latest_version"].(json.Number)
	if !ok {
		return nil, 0, fmt.Errorf("invalid version format")
	}

	version, err := latestVersion.Int64()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse version: %w", err)
	}

	keys, ok := secret.Data["keys"].(map[string]interface{})
	if !ok {
		return nil, 0, fmt.Errorf("invalid key data format")
	}

	keyData, ok := keys[latestVersion.String()].(map[string]interface{})
	if !ok {
		return nil, 0, fmt.Errorf("version %d not found", version)
	}

	publicKey, ok := keyData["public_key"].(string)
	if !ok {
		return nil, 0, fmt.Errorf("public key not found")
	}

	block, _ := pem.Decode([]byte(publicKey))
	if block == nil {
		return nil, 0, fmt.Errorf("failed to decode PEM block")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, 0, fmt.Errorf("%w: key is not RSA", algorithms.ErrInvalidKey)
	}

	return rsaKey, version, nil
}
