package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-candidateform/pkg/contract"
	"github.com/goliatone/go-candidateform/pkg/form"
	"github.com/goliatone/go-candidateform/pkg/model"
)

var errValuesInvalid = errors.New("values are invalid")

func newValidateCmd(flags *globalFlags) *cobra.Command {
	var valuesPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a values file against the form rules without submitting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			values, err := readValues(valuesPath)
			if err != nil {
				return err
			}

			controller := form.New(controllerOptions(cfg, flags.logger(cmd.ErrOrStderr()))...)
			if err := controller.SetValues(values); err != nil {
				return err
			}
			snapshot := controller.Snapshot()
			out := cmd.OutOrStdout()

			problems := 0
			for _, field := range descriptorFor(cfg).Fields {
				if field.Name == model.FieldPhoneNumber && !snapshot.PhoneVisible {
					continue
				}
				if msg := snapshot.Errors.Get(field.Name); msg != "" {
					fmt.Fprintf(out, "%s: %s\n", field.Name, msg)
					problems++
				}
			}

			if problems == 0 {
				api, err := contract.Load(cmd.Context())
				if err != nil {
					return err
				}
				if err := api.ValidatePayload(controller.Payload()); err != nil {
					fmt.Fprintf(out, "contract: %v\n", err)
					problems++
				}
			}

			if problems > 0 {
				return errValuesInvalid
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&valuesPath, "values", "", "YAML file with field values")
	_ = cmd.MarkFlagRequired("values")
	return cmd
}
