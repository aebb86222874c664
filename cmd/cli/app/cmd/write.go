package cmd

import (
	"fmt"

	"homefolder/cmd/cli/app"
	"homefolder/internal/cli/output"
	"homefolder/internal/core/handler"

	"github.com/spf13/cobra"
)

var writeEncrypt bool

func init() {
	writeCmd.Flags().BoolVarP(&writeEncrypt, "encrypt", "e", false, "Encrypt the content with a key kept in the OS keyring")
	rootCmd.AddCommand(writeCmd)
}

var writeCmd = &cobra.Command{
	Use:   "write <file> [content]",
	Short: "Writes a file, replacing its content",
	Long: `Writes content to <home>/<application>/<folder>/<file>. Existing content is
replaced. Without a content argument the content is read from stdin.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := app.InjectWriteCommandHandler()
		if err != nil {
			return err
		}
		request := handler.WriteRequest{
			Location: location(args[0]),
			Encrypt:  writeEncrypt,
		}
		if len(args) == 2 {
			request.Content = &args[1]
		}

		if err := h.Handle(request, cmd.InOrStdin()); err != nil {
			return err
		}
		output.PrintSuccess(fmt.Sprintf("Wrote %s", args[0]))
		return nil
	},
}
