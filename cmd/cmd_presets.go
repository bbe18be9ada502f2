// cmd_presets.go - Preset Commands
// Hauptfunktionen: PresetsHandler, newPresetsCmd
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/archai3d/grag/api"
)

// PresetsHandler - Listet den Preset-Katalog des Servers auf
func PresetsHandler(cmd *cobra.Command, args []string) error {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}

	resp, err := client.Presets(cmd.Context())
	if err != nil {
		return err
	}

	var data [][]string
	for _, p := range resp.Presets {
		if len(args) == 0 || strings.HasPrefix(strings.ToLower(p.Key), strings.ToLower(args[0])) {
			data = append(data, []string{
				p.Key,
				p.Name,
				fmt.Sprintf("%.2f", p.Lambda),
				fmt.Sprintf("%.2f", p.Delta),
				p.Category,
			})
		}
	}

	renderTable([]string{"KEY", "NAME", "LAMBDA", "DELTA", "CATEGORY"}, data)
	return nil
}

// PresetShowHandler - Zeigt ein einzelnes Preset
func PresetShowHandler(cmd *cobra.Command, args []string) error {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}

	p, err := client.Preset(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("  %s (%s)\n", p.Name, p.Key)
	fmt.Printf("    lambda      %.3f\n", p.Lambda)
	fmt.Printf("    delta       %.3f\n", p.Delta)
	fmt.Printf("    strength    %.3f\n", p.Strength)
	fmt.Printf("    category    %s\n", p.Category)
	if p.Description != "" {
		fmt.Printf("    description %s\n", p.Description)
	}
	return nil
}

// newPresetsCmd - Erstellt den presets Command
func newPresetsCmd() *cobra.Command {
	presetsCmd := &cobra.Command{
		Use:     "presets",
		Aliases: []string{"ls"},
		Short:   "List reweighting presets",
		PreRunE: checkServerHeartbeat,
		RunE:    PresetsHandler,
	}

	showCmd := &cobra.Command{
		Use:     "show KEY",
		Short:   "Show a single preset",
		Args:    cobra.ExactArgs(1),
		PreRunE: checkServerHeartbeat,
		RunE:    PresetShowHandler,
	}

	presetsCmd.AddCommand(showCmd)
	return presetsCmd
}
