package cmd

import (
	"homefolder/cmd/cli/app"
	"homefolder/internal/core/handler"

	"github.com/spf13/cobra"
)

var (
	readEncrypt   bool
	readJoinLines bool
)

func init() {
	readCmd.Flags().BoolVarP(&readEncrypt, "encrypt", "e", false, "Decrypt content written with --encrypt")
	readCmd.Flags().BoolVarP(&readJoinLines, "join-lines", "j", false, "Concatenate lines without separators")
	rootCmd.AddCommand(readCmd)
}

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Prints the content of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := app.InjectReadCommandHandler()
		if err != nil {
			return err
		}

		return h.Handle(handler.ReadRequest{
			Location:  location(args[0]),
			JoinLines: readJoinLines,
			Encrypt:   readEncrypt,
		}, cmd.OutOrStdout())
	},
}
