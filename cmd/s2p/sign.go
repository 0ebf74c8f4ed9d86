package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexadamm/s2p-go/pkg/keys"
	"github.com/alexadamm/s2p-go/pkg/logs"
	"github.com/alexadamm/s2p-go/pkg/request"
)

type signOptions struct {
	requestName string
	keyID       string
	payload     string
	raw         bool
	encode      bool
	key         keyOptions
	vault       vaultOptions
}

func newSignCmd() *cobra.Command {
	o := &signOptions{}

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Build a signed registration request",
		Long: `Build a signed registration request and print the envelope.

The payload is read from --payload (a file, or - for stdin). Gift card and
membership payloads are validated and re-encoded in canonical form unless
--raw is given, in which case the JSON is only compacted.`,
		Example: `  s2p sign --request giftcard --key-id 1D2BE69FF72F4C25AC89B894689C2F1E --key merchant.pem --payload card.json
  S2P_PASSPHRASE=secret s2p sign --request membership --key-id ... --key merchant-enc.pem --payload - --encode < member.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&o.requestName, "request", request.SaveToMembership.Name,
		fmt.Sprintf("Request type, one of: %s.", strings.Join(request.DescriptorNames(), ", ")))
	fs.StringVar(&o.keyID, "key-id", "", "Key ID registered with the receiving service.")
	fs.StringVar(&o.payload, "payload", "", "Registration JSON file, or - for stdin.")
	fs.BoolVar(&o.raw, "raw", false, "Sign the payload JSON as given, without decoding it.")
	fs.BoolVar(&o.encode, "encode", false, "Print the base64url transport form instead of the envelope JSON.")
	o.key.addFlags(fs)
	o.vault.addFlags(fs)

	return cmd
}

func (o *signOptions) run(cmd *cobra.Command) error {
	logger := logs.Logger("sign")

	desc, err := request.DescriptorByName(o.requestName)
	if err != nil {
		return err
	}

	data, err := readInput(cmd, o.payload)
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	payload, err := loadPayload(desc, data, o.raw)
	if err != nil {
		return err
	}

	builder := request.NewBuilder(
		request.WithLogger(logger),
		request.WithKeyLoader(keys.NewLoader(keys.WithLogger(logger))),
	)

	var env *request.Envelope
	if o.vault.enabled() {
		signer, err := o.vault.signer(logger)
		if err != nil {
			return err
		}
		env, err = builder.BuildWithSigner(desc, payload, o.keyID, signer)
		if err != nil {
			return err
		}
	} else {
		env, err = builder.BuildFromPEMFile(desc, payload, o.keyID, o.key.path, o.key.passphrase)
		if err != nil {
			return err
		}
	}

	var out string
	if o.encode {
		out, err = env.Encode()
	} else {
		var b []byte
		b, err = env.JSON()
		out = string(b)
	}
	if err != nil {
		return err
	}

	logger.Info("built registration request", "request", desc.Name, "kid", o.keyID, "uri", env.URI)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
