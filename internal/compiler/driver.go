package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/palladium-lang/palladium/internal/compiler/ast"
	"github.com/palladium-lang/palladium/internal/compiler/emitter"
	"github.com/palladium-lang/palladium/internal/compiler/lexer"
	"github.com/palladium-lang/palladium/internal/compiler/lib"
	"github.com/palladium-lang/palladium/internal/compiler/parser"
	"github.com/palladium-lang/palladium/internal/compiler/token"
)

const SourceExt = ".pd"

// Result is one finished compilation. Every phase runs to completion
// before the next starts.
type Result struct {
	ClassName string
	Tokens    []token.Token
	Program   *ast.Main
	Java      string

	ParseTime time.Duration
	EmitTime  time.Duration
}

// Elapsed is the parse plus generation time.
func (r *Result) Elapsed() time.Duration {
	return r.ParseTime + r.EmitTime
}

// Compile runs lex, parse and emit over src. No Java is produced when any
// phase fails.
func Compile(src, className string) (*Result, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}

	p := parser.NewParser(toks)
	prog, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	java := emitter.NewEmitter().Emit(prog, className)

	return &Result{
		ClassName: className,
		Tokens:    toks,
		Program:   prog,
		Java:      java,
		ParseTime: p.ParseTime(),
		EmitTime:  time.Since(start),
	}, nil
}

// CompileFile compiles srcPath without writing anything.
func CompileFile(srcPath string) (*Result, error) {
	if err := validateExtension(srcPath); err != nil {
		return nil, err
	}

	content, err := readSource(srcPath)
	if err != nil {
		return nil, err
	}

	res, err := Compile(content, lib.ClassName(srcPath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", srcPath, err)
	}
	return res, nil
}

// CompileAndWrite compiles srcPath and writes <Class>.java into outDir, or
// beside the source when outDir is empty. It returns the written path.
func CompileAndWrite(srcPath, outDir string) (string, *Result, error) {
	res, err := CompileFile(srcPath)
	if err != nil {
		return "", nil, err
	}

	outFile, err := writeOutput(res, srcPath, outDir)
	if err != nil {
		return "", nil, err
	}
	return outFile, res, nil
}

// OutputPath is where CompileAndWrite puts the Java for srcPath.
func OutputPath(srcPath, outDir string) string {
	if outDir == "" {
		outDir = filepath.Dir(srcPath)
	}
	return filepath.Join(outDir, lib.ClassName(srcPath)+".java")
}

func validateExtension(path string) error {
	if filepath.Ext(path) != SourceExt {
		return fmt.Errorf("%s: source must have %s extension", path, SourceExt)
	}
	return nil
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading source: %w", err)
	}
	return string(b), nil
}

func writeOutput(res *Result, srcPath, outDir string) (string, error) {
	outFile := OutputPath(srcPath, outDir)
	if err := os.MkdirAll(filepath.Dir(outFile), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(outFile, []byte(res.Java), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outFile, err)
	}
	return outFile, nil
}
