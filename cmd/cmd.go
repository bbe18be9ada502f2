// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/containerd/console"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/archai3d/grag/api"
	"github.com/archai3d/grag/envconfig"
	"github.com/archai3d/grag/version"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// versionHandler - Gibt die Version aus; bevorzugt die Server-Version
func versionHandler(cmd *cobra.Command, _ []string) {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return
	}

	serverVersion, err := client.Version(cmd.Context())
	if err != nil {
		fmt.Println("Warning: could not connect to a running grag instance")
	}

	if serverVersion != "" {
		fmt.Printf("grag server version is %s\n", serverVersion)
	}

	fmt.Printf("grag client version is %s\n", version.Version)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cobra.EnableCommandSorting = false

	if runtime.GOOS == "windows" && term.IsTerminal(int(os.Stdout.Fd())) {
		console.ConsoleFromFile(os.Stdin) //nolint:errcheck
	}

	rootCmd := &cobra.Command{
		Use:           "grag",
		Short:         "Attention-key reweighting scheduler for diffusion image generation",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				versionHandler(cmd, args)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	serveCmd := newServeCmd()
	scheduleCmd := newScheduleCmd()
	tiersCmd := newTiersCmd()
	validateCmd := newValidateCmd()
	presetsCmd := newPresetsCmd()

	envVars := envconfig.AsMap()
	envs := []envconfig.EnvVar{envVars["GRAG_HOST"]}

	for _, cmd := range []*cobra.Command{
		scheduleCmd,
		tiersCmd,
		validateCmd,
		presetsCmd,
	} {
		appendEnvDocs(cmd, envs)
	}

	appendEnvDocs(serveCmd, []envconfig.EnvVar{
		envVars["GRAG_DEBUG"],
		envVars["GRAG_HOST"],
		envVars["GRAG_ORIGINS"],
		envVars["GRAG_PRESETS"],
	})

	rootCmd.AddCommand(
		serveCmd,
		scheduleCmd,
		tiersCmd,
		validateCmd,
		presetsCmd,
	)

	return rootCmd
}
