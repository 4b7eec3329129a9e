package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/palladium-lang/palladium/internal/compiler"
	"github.com/spf13/cobra"
)

const helloTemplate = `// %s
let greeting :: str = "Hello from %s";
output(greeting);
`

// init: scaffold a new source file
var InitCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Scaffold a new Palladium source file",
	Args:  cobra.ExactArgs(1),
	RunE:  initRun,
}

func initRun(cmd *cobra.Command, args []string) error {
	path := args[0]
	if filepath.Ext(path) != compiler.SourceExt {
		path += compiler.SourceExt
	}
	name := filepath.Base(path)
	fmt.Printf("↪ scaffolding %q ...\n", path)

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	src := fmt.Sprintf(helloTemplate, name, name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		return err
	}

	fmt.Printf("✔︎ created %s\n", path)
	return nil
}
