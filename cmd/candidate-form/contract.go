package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-candidateform/pkg/contract"
)

func newContractCmd() *cobra.Command {
	var (
		asJSON   bool
		document bool
	)

	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Describe the submission endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if document {
				_, err := out.Write(contract.Document())
				return err
			}

			api, err := contract.Load(cmd.Context())
			if err != nil {
				return err
			}
			op := api.Operation()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(op)
			}
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(op); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the operation as JSON")
	cmd.Flags().BoolVar(&document, "document", false, "print the embedded OpenAPI document")
	return cmd
}
