package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixbrock/hellopage/internal/app"
	"github.com/felixbrock/hellopage/internal/export"
)

var exportOut string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the page and its assets as static files",
	Long:  `Render index.html and copy the public assets into the output directory.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "out", "output directory")
}

func runExport(cmd *cobra.Command, args []string) error {
	err := export.Export(cmd.Context(), exportOut, app.DefaultComponentBuilder())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportOut)
	return nil
}
