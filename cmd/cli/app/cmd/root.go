package cmd

import (
	"os"

	"homefolder/internal/cli/output"
	"homefolder/internal/core/domain"
	"homefolder/internal/logging"

	"github.com/spf13/cobra"
)

var (
	applicationName string
	folderName      string
	verbose         bool
)

var rootCmd = &cobra.Command{
	Use:   "homefolder",
	Short: "Stores text files in per-application folders below the home directory",
	Long: `homefolder reads and writes whole text files stored at

  <home>/<application>/<folder>/<file>

Missing folders are created on every access. Defaults for the application and
folder names are read from ~/.homefolder-config.yaml; run 'homefolder initialize'
to create one. Set HOMEFOLDER_HOME to use another directory as home.

Common workflows:
  homefolder -a MyApp -f data write notes.txt "hello"   Write a file
  echo hello | homefolder write notes.txt               Write stdin to a file
  homefolder read notes.txt                             Print a file
  homefolder path                                       Print the folder path`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&applicationName, "app", "a", "", "Application folder below the home directory (default from config)")
	rootCmd.PersistentFlags().StringVarP(&folderName, "folder", "f", "", "Folder below the application folder (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

// location builds the location addressed by the global flags and fileName.
func location(fileName string) domain.Location {
	return domain.Location{
		ApplicationName: applicationName,
		FolderName:      folderName,
		FileName:        fileName,
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.PrintError(err.Error())
		os.Exit(1)
	}
}
