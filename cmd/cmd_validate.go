// cmd_validate.go - Parameter-Validierung Command
// Hauptfunktionen: ValidateHandler, newValidateCmd
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archai3d/grag/api"
)

// ValidateHandler - Prueft ein (λ, δ) Paar gegen die unterstuetzten Bereiche
func ValidateHandler(cmd *cobra.Command, args []string) error {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}

	req := api.ValidateRequest{}
	req.Lambda, _ = cmd.Flags().GetFloat64("lambda")
	req.Delta, _ = cmd.Flags().GetFloat64("delta")

	resp, err := client.Validate(cmd.Context(), &req)
	if err != nil {
		return err
	}

	fmt.Printf("lambda=%.3f delta=%.3f: ok\n", req.Lambda, req.Delta)
	for _, advisory := range resp.Advisories {
		fmt.Printf("  advisory: %s\n", advisory)
	}
	return nil
}

// newValidateCmd - Erstellt den validate Command
func newValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:     "validate",
		Short:   "Validate a lambda/delta pair",
		PreRunE: checkServerHeartbeat,
		RunE:    ValidateHandler,
	}

	validateCmd.Flags().Float64("lambda", 1.0, "Bias strength lambda")
	validateCmd.Flags().Float64("delta", 1.05, "Deviation strength delta")

	return validateCmd
}
