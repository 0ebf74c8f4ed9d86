package main

import (
	"fmt"

	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/spf13/cobra"

	"github.com/alexadamm/s2p-go/pkg/jwks"
	"github.com/alexadamm/s2p-go/pkg/keys"
	"github.com/alexadamm/s2p-go/pkg/logs"
)

type jwksOptions struct {
	keyID string
	key   keyOptions
	vault vaultOptions
}

func newJWKSCmd() *cobra.Command {
	o := &jwksOptions{}

	cmd := &cobra.Command{
		Use:   "jwks",
		Short: "Print the public key as a JWKS document",
		Long: `Print the public half of the signing key as a JWKS document. When
--key-id is empty the RFC 7638 thumbprint is used as the key ID.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&o.keyID, "key-id", "", "Key ID to publish.")
	o.key.addFlags(fs)
	o.vault.addFlags(fs)

	return cmd
}

func (o *jwksOptions) run(cmd *cobra.Command) error {
	logger := logs.Logger("jwks")

	var key jwk.Key
	if o.vault.enabled() {
		signer, err := o.vault.signer(logger)
		if err != nil {
			return err
		}
		pub, version, err := signer.PublicKey(cmd.Context())
		if err != nil {
			return err
		}
		logger.V(logs.Debug).Info("read vault public key", "keyVersion", version)
		key, err = jwks.FromPublicKey(o.keyID, pub)
		if err != nil {
			return err
		}
	} else {
		if o.key.path == "" {
			return fmt.Errorf("--key or --vault-key is required")
		}
		priv, err := keys.NewLoader(keys.WithLogger(logger)).LoadFile(o.key.path, o.key.passphrase)
		if err != nil {
			return err
		}
		key, err = jwks.PublicJWK(o.keyID, priv.Key)
		if err != nil {
			return err
		}
	}

	set, err := jwks.Set(key)
	if err != nil {
		return err
	}

	doc, err := jwks.Marshal(set)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(doc))
	return err
}
