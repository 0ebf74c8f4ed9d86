package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexadamm/s2p-go/pkg/request"
)

type hashOptions struct {
	requestName string
	method      string
	contentType string
	uri         string
	payload     string
	raw         bool
}

func newHashCmd() *cobra.Command {
	o := &hashOptions{}

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print the canonical hash of a request",
		Long: `Print the canonical request hash, the value carried in the token's jti
claim. Use --request for a predefined request, or give --method,
--content-type and --uri.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&o.requestName, "request", "", "Predefined request type. Overrides --method, --content-type and --uri.")
	fs.StringVar(&o.method, "method", "POST", "HTTP method.")
	fs.StringVar(&o.contentType, "content-type", request.ContentTypeJSON, "Content type.")
	fs.StringVar(&o.uri, "uri", "", "Request URI.")
	fs.StringVar(&o.payload, "payload", "", "Registration JSON file, or - for stdin.")
	fs.BoolVar(&o.raw, "raw", false, "Hash the payload JSON as given, without decoding it.")

	return cmd
}

func (o *hashOptions) run(cmd *cobra.Command) error {
	desc := request.Descriptor{
		Method:      o.method,
		ContentType: o.contentType,
		URI:         o.uri,
	}
	if o.requestName != "" {
		var err error
		desc, err = request.DescriptorByName(o.requestName)
		if err != nil {
			return err
		}
	}
	if desc.URI == "" {
		return fmt.Errorf("--uri or --request is required")
	}

	data, err := readInput(cmd, o.payload)
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	payload, err := loadPayload(desc, data, o.raw)
	if err != nil {
		return err
	}

	body, err := payload.CanonicalJSON()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), desc.Hash(body))
	return err
}
