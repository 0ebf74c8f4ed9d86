package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexadamm/s2p-go/pkg/giftcard"
	"github.com/alexadamm/s2p-go/pkg/membership"
	"github.com/alexadamm/s2p-go/pkg/registration"
	"github.com/alexadamm/s2p-go/pkg/request"
	"github.com/alexadamm/s2p-go/pkg/vault"
)

// keyOptions locate a PEM private key
type keyOptions struct {
	path       string
	passphrase string
}

func (o *keyOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.path, "key", "", "Path to the PEM encoded RSA private key.")
	fs.StringVar(&o.passphrase, "passphrase", "", "Passphrase of an encrypted private key. Prefer S2P_PASSPHRASE over the flag.")
}

// vaultOptions select a Transit key instead of a PEM file
type vaultOptions struct {
	key     string
	addr    string
	token   string
	mount   string
	timeout time.Duration
}

func (o *vaultOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.key, "vault-key", "", "Name of a Vault Transit RSA key to use instead of --key.")
	fs.StringVar(&o.addr, "vault-addr", "", "Vault address. Defaults to VAULT_ADDR.")
	fs.StringVar(&o.token, "vault-token", "", "Vault token. Defaults to VAULT_TOKEN.")
	fs.StringVar(&o.mount, "vault-mount", vault.DefaultMountPath, "Mount path of the Transit engine.")
	fs.DurationVar(&o.timeout, "vault-timeout", 30*time.Second, "Timeout for each Vault request.")
}

func (o *vaultOptions) enabled() bool {
	return o.key != ""
}

func (o *vaultOptions) signer(logger logr.Logger) (*vault.Signer, error) {
	return vault.NewSigner(vault.Config{
		Address:   o.addr,
		Token:     o.token,
		KeyName:   o.key,
		MountPath: o.mount,
		Timeout:   o.timeout,
		Logger:    logger,
	})
}

// readInput reads a file, or stdin when path is "-"
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("--payload is required")
	}
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// loadPayload turns the payload file into a registration. Unless raw is set,
// known request types are decoded and validated, and the registration is
// re-encoded in its canonical form.
func loadPayload(desc request.Descriptor, data []byte, raw bool) (registration.Payload, error) {
	if raw {
		return registration.RawJSON(data), nil
	}

	switch desc.Name {
	case request.SaveToGiftCard.Name:
		reg, err := giftcard.ParseRegistration(data)
		if err != nil {
			return nil, fmt.Errorf("invalid gift card registration: %w", err)
		}
		return reg, nil
	case request.SaveToMembership.Name:
		reg, err := membership.ParseRegistration(data)
		if err != nil {
			return nil, fmt.Errorf("invalid membership registration: %w", err)
		}
		return reg, nil
	}

	return registration.RawJSON(data), nil
}
