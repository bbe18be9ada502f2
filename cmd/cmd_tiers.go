// cmd_tiers.go - Tier-Aufloesung Command
// Hauptfunktionen: TierResolveHandler, newTiersCmd
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archai3d/grag/api"
)

// TierResolveHandler - Loest eine Aufloesung gegen die Tier-Tabelle auf
func TierResolveHandler(cmd *cobra.Command, args []string) error {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}

	req := api.TierResolveRequest{}
	resolution, _ := cmd.Flags().GetUint32("resolution")
	req.Resolution = resolution
	req.Preset, _ = cmd.Flags().GetString("preset")
	req.Tier1Resolution, _ = cmd.Flags().GetUint32("tier1-resolution")
	req.Tier1Lambda, _ = cmd.Flags().GetFloat64("tier1-lambda")
	req.Tier1Delta, _ = cmd.Flags().GetFloat64("tier1-delta")
	req.Tier2Resolution, _ = cmd.Flags().GetUint32("tier2-resolution")
	req.Tier2Lambda, _ = cmd.Flags().GetFloat64("tier2-lambda")
	req.Tier2Delta, _ = cmd.Flags().GetFloat64("tier2-delta")

	resp, err := client.ResolveTier(cmd.Context(), &req)
	if err != nil {
		return err
	}

	fmt.Printf("resolution %d: lambda=%.4f delta=%.4f\n", resolution, resp.Lambda, resp.Delta)
	return nil
}

// newTiersCmd - Erstellt den tiers Command
func newTiersCmd() *cobra.Command {
	tiersCmd := &cobra.Command{
		Use:     "tiers",
		Short:   "Resolve a feature-map resolution to a coefficient pair",
		PreRunE: checkServerHeartbeat,
		RunE:    TierResolveHandler,
	}

	tiersCmd.Flags().Uint32("resolution", 1024, "Feature-map resolution to resolve")
	tiersCmd.Flags().String("preset", "", "Named tier preset")
	tiersCmd.Flags().Uint32("tier1-resolution", 512, "Tier 1 resolution")
	tiersCmd.Flags().Float64("tier1-lambda", 1.0, "Tier 1 lambda")
	tiersCmd.Flags().Float64("tier1-delta", 1.0, "Tier 1 delta")
	tiersCmd.Flags().Uint32("tier2-resolution", 4096, "Tier 2 resolution")
	tiersCmd.Flags().Float64("tier2-lambda", 1.0, "Tier 2 lambda")
	tiersCmd.Flags().Float64("tier2-delta", 1.05, "Tier 2 delta")

	return tiersCmd
}
