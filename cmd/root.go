package cmd

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	outDir  string
	verbose bool

	// logger carries diagnostic telemetry; it is silent unless --verbose.
	logger = log.New(io.Discard, "palladium: ", log.Ltime)
)

var rootCmd = &cobra.Command{
	Use:   "palladium",
	Short: "Palladium compiler: translates .pd programs to Java",
	Long: `Palladium compiles .pd source files into Java classes.

Commands:
  init   Scaffold a new Palladium source file
  build  Compile (.pd) source files into (.java), optionally javac and run them
  watch  Recompile sources whenever they change
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetOutput(os.Stderr)
		}
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "", "output directory for .java files (default: beside each source)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log phase timings and toolchain commands to stderr")

	rootCmd.AddCommand(InitCmd, BuildCmd, WatchCmd)
}
