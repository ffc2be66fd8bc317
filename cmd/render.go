package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixbrock/hellopage/internal/app"
	"github.com/felixbrock/hellopage/internal/export"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the rendered page to stdout",
	RunE:  runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	content, err := export.Page(cmd.Context(), app.DefaultComponentBuilder())
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(content)
	return err
}
