package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/palladium-lang/palladium/internal/compiler"
	"github.com/palladium-lang/palladium/internal/toolchain"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	buildDebug    bool
	buildCompile  bool
	buildRunJava  bool
	buildJavacVer string
	buildJobs     int
)

// build: compile .pd -> .java
var BuildCmd = &cobra.Command{
	Use:   "build <source.pd>...",
	Short: "Compile Palladium source files into Java",
	Args:  cobra.MinimumNArgs(1),
	RunE:  buildRun,
}

func init() {
	f := BuildCmd.Flags()
	f.BoolVarP(&buildDebug, "debug", "d", false, "print the token stream and syntax tree")
	f.BoolVar(&buildCompile, "compile", false, "run javac on the generated files")
	f.BoolVar(&buildRunJava, "run", false, "run javac, then execute each class with java")
	f.StringVar(&buildJavacVer, "javac-version", toolchain.DefaultConstraint, "semver constraint the javac version must satisfy")
	f.IntVarP(&buildJobs, "jobs", "j", runtime.NumCPU(), "number of sources compiled at once")
}

type buildOutput struct {
	src     string
	outFile string
	res     *compiler.Result
}

func buildRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	outputs, err := compileAll(ctx, args)
	if err != nil {
		return err
	}

	for _, o := range outputs {
		if buildDebug {
			printDebug(o.res)
		}
		fmt.Printf("✔︎ compiled %s → %s in %dms\n", o.src, o.outFile, o.res.Elapsed().Milliseconds())
		logger.Printf("%s: parse %s, generate %s", o.src, o.res.ParseTime, o.res.EmitTime)
	}

	if !buildCompile && !buildRunJava {
		return nil
	}
	return runToolchain(ctx, outputs)
}

// compileAll compiles every source concurrently, each in its own single
// pass. The first failure cancels sources that have not started yet.
// Results come back in argument order.
func compileAll(ctx context.Context, srcs []string) ([]buildOutput, error) {
	if err := checkOutputCollisions(srcs); err != nil {
		return nil, err
	}
	outputs := make([]buildOutput, len(srcs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(buildJobs, 1))

	for i, src := range srcs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fmt.Printf("↪ building %q ...\n", src)
			outFile, res, err := compiler.CompileAndWrite(src, outDir)
			if err != nil {
				return err
			}
			outputs[i] = buildOutput{src: src, outFile: outFile, res: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

// checkOutputCollisions rejects sources that would write the same
// <Class>.java, such as a/x.pd and b/x.pd under one --out directory.
func checkOutputCollisions(srcs []string) error {
	seen := make(map[string]string, len(srcs))
	for _, src := range srcs {
		out := compiler.OutputPath(src, outDir)
		if prev, ok := seen[out]; ok {
			return fmt.Errorf("%s and %s both compile to %s", prev, src, out)
		}
		seen[out] = src
	}
	return nil
}

func runToolchain(ctx context.Context, outputs []buildOutput) error {
	jdk, err := toolchain.Detect(ctx, logger)
	if err != nil {
		return err
	}
	if err := jdk.Require(buildJavacVer); err != nil {
		return err
	}

	for _, o := range outputs {
		if err := jdk.Compile(ctx, o.outFile); err != nil {
			return fmt.Errorf("%s: %w", o.outFile, err)
		}
		fmt.Printf("✔︎ javac %s\n", o.outFile)

		if !buildRunJava {
			continue
		}
		stdout, err := jdk.Run(ctx, filepath.Dir(o.outFile), o.res.ClassName)
		fmt.Print(stdout)
		if err != nil {
			return err
		}
	}
	return nil
}

func printDebug(res *compiler.Result) {
	toks := make([]string, 0, len(res.Tokens))
	for _, t := range res.Tokens {
		toks = append(toks, fmt.Sprintf("%s(%q)@%d", t.Type, t.Literal, t.Line))
	}
	fmt.Printf("TOKENS: [%s]\n", strings.Join(toks, " "))
	fmt.Printf("TREE:\n%s", res.Program.String())
}
