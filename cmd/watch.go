package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/palladium-lang/palladium/internal/compiler"
	"github.com/palladium-lang/palladium/internal/watch"
	"github.com/spf13/cobra"
)

// watch: recompile on save
var WatchCmd = &cobra.Command{
	Use:   "watch <source.pd|dir>...",
	Short: "Recompile Palladium sources whenever they change",
	Args:  cobra.MinimumNArgs(1),
	RunE:  watchRun,
}

func watchRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w, err := watch.New(compiler.SourceExt, args...)
	if err != nil {
		return err
	}
	defer w.Close()

	fmt.Printf("↪ watching %d path(s), Ctrl-C to stop\n", len(args))
	return w.Run(ctx, rebuild)
}

// rebuild compiles one changed file. Errors are reported and watching
// continues.
func rebuild(path string) {
	outFile, res, err := compiler.CompileAndWrite(path, outDir)
	if err != nil {
		fmt.Printf("✘ %v\n", err)
		return
	}
	fmt.Printf("✔︎ compiled %s → %s in %dms\n", path, outFile, res.Elapsed().Milliseconds())
	logger.Printf("%s: parse %s, generate %s", path, res.ParseTime, res.EmitTime)
}
