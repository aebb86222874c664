package cmd

import (
	"homefolder/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Opens a file in an editor",
	Long: `Opens <home>/<application>/<folder>/<file> in the editor from the config
file, $EDITOR or vi.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectEditCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(location(args[0]))
	},
}
