// cmd_schedule.go - Schedule Commands
// Hauptfunktionen: LayerScheduleHandler, TimestepScheduleHandler
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/archai3d/grag/api"
)

// LayerScheduleHandler - Fragt per-Layer λ/δ Sequenzen vom Server ab
func LayerScheduleHandler(cmd *cobra.Command, args []string) error {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}

	req := api.LayerScheduleRequest{}
	req.TotalLayers, _ = cmd.Flags().GetInt("layers")
	req.Strategy, _ = cmd.Flags().GetString("strategy")
	req.Preset, _ = cmd.Flags().GetString("preset")

	if cmd.Flags().Changed("lambda-start") {
		v, _ := cmd.Flags().GetFloat64("lambda-start")
		req.LambdaStart = &v
	}
	if cmd.Flags().Changed("lambda-end") {
		v, _ := cmd.Flags().GetFloat64("lambda-end")
		req.LambdaEnd = &v
	}
	if cmd.Flags().Changed("delta-start") {
		v, _ := cmd.Flags().GetFloat64("delta-start")
		req.DeltaStart = &v
	}
	if cmd.Flags().Changed("delta-end") {
		v, _ := cmd.Flags().GetFloat64("delta-end")
		req.DeltaEnd = &v
	}

	resp, err := client.LayerSchedule(cmd.Context(), &req)
	if err != nil {
		return err
	}

	var data [][]string
	for i := range resp.Lambdas {
		data = append(data, []string{
			strconv.Itoa(i),
			fmt.Sprintf("%.4f", resp.Lambdas[i]),
			fmt.Sprintf("%.4f", resp.Deltas[i]),
		})
	}

	renderTable([]string{"LAYER", "LAMBDA", "DELTA"}, data)
	return nil
}

// TimestepScheduleHandler - Fragt den per-Timestep Schedule vom Server ab
func TimestepScheduleHandler(cmd *cobra.Command, args []string) error {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}

	req := api.TimestepScheduleRequest{}
	req.TotalSteps, _ = cmd.Flags().GetInt("steps")
	req.ScheduleType, _ = cmd.Flags().GetString("type")
	req.Preset, _ = cmd.Flags().GetString("preset")

	if cmd.Flags().Changed("lambda-base") {
		v, _ := cmd.Flags().GetFloat64("lambda-base")
		req.LambdaBase = &v
	}
	if cmd.Flags().Changed("delta-base") {
		v, _ := cmd.Flags().GetFloat64("delta-base")
		req.DeltaBase = &v
	}
	if cmd.Flags().Changed("multiplier-start") {
		v, _ := cmd.Flags().GetFloat64("multiplier-start")
		req.MultiplierStart = &v
	}
	if cmd.Flags().Changed("multiplier-end") {
		v, _ := cmd.Flags().GetFloat64("multiplier-end")
		req.MultiplierEnd = &v
	}

	resp, err := client.TimestepSchedule(cmd.Context(), &req)
	if err != nil {
		return err
	}

	var data [][]string
	for i, pair := range resp.Schedule {
		data = append(data, []string{
			strconv.Itoa(i),
			fmt.Sprintf("%.4f", pair.Lambda),
			fmt.Sprintf("%.4f", pair.Delta),
		})
	}

	renderTable([]string{"STEP", "LAMBDA", "DELTA"}, data)
	return nil
}

// renderTable - Gibt Daten als Tabelle ohne Rahmen aus
func renderTable(header []string, data [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

// newScheduleCmd - Erstellt den schedule Command mit Subcommands
func newScheduleCmd() *cobra.Command {
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate coefficient schedules",
	}

	layersCmd := &cobra.Command{
		Use:     "layers",
		Short:   "Per-layer lambda/delta distribution",
		PreRunE: checkServerHeartbeat,
		RunE:    LayerScheduleHandler,
	}
	layersCmd.Flags().Int("layers", 24, "Number of transformer layers")
	layersCmd.Flags().String("strategy", "", "Distribution strategy (linear, u_shaped, bell_curve, custom)")
	layersCmd.Flags().String("preset", "", "Named layer preset")
	layersCmd.Flags().Float64("lambda-start", 0.9, "Starting lambda")
	layersCmd.Flags().Float64("lambda-end", 1.3, "Ending lambda")
	layersCmd.Flags().Float64("delta-start", 0.9, "Starting delta")
	layersCmd.Flags().Float64("delta-end", 1.3, "Ending delta")

	timestepsCmd := &cobra.Command{
		Use:     "timesteps",
		Short:   "Per-timestep coefficient schedule",
		PreRunE: checkServerHeartbeat,
		RunE:    TimestepScheduleHandler,
	}
	timestepsCmd.Flags().Int("steps", 20, "Number of denoising steps")
	timestepsCmd.Flags().String("type", "", "Schedule type (linear, exponential, sine, cosine, custom)")
	timestepsCmd.Flags().String("preset", "", "Named schedule preset")
	timestepsCmd.Flags().Float64("lambda-base", 1.0, "Base lambda")
	timestepsCmd.Flags().Float64("delta-base", 1.05, "Base delta")
	timestepsCmd.Flags().Float64("multiplier-start", 0.8, "Starting multiplier")
	timestepsCmd.Flags().Float64("multiplier-end", 1.5, "Ending multiplier")

	scheduleCmd.AddCommand(layersCmd, timestepsCmd)
	return scheduleCmd
}
