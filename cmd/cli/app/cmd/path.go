package cmd

import (
	"homefolder/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path [file]",
	Short: "Prints the folder path, creating the folder if needed",
	Long: `Ensures <home>/<application>/<folder> exists and prints it. When a file name
is given the path of that file inside the folder is printed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectPathCommandHandler()
		if err != nil {
			return err
		}
		fileName := ""
		if len(args) == 1 {
			fileName = args[0]
		}

		return handler.Handle(location(fileName), cmd.OutOrStdout())
	},
}
