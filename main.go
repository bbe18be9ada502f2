// main.go - Einstiegspunkt des grag CLI
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/archai3d/grag/cmd"
)

func main() {
	cobra.CheckErr(cmd.NewCLI().ExecuteContext(context.Background()))
}
