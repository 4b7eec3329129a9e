// Package toolchain drives the JDK that consumes the generated Java:
// locating javac, gating on its version, compiling and running classes.
package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultConstraint accepts Java 8 (which reports itself as 1.8) and later.
const DefaultConstraint = ">=1.8"

type JDK struct {
	Javac   string
	Java    string
	Version *semver.Version

	log *log.Logger
}

// Detect finds javac and java on PATH and reads the javac version.
func Detect(ctx context.Context, logger *log.Logger) (*JDK, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	javac, err := exec.LookPath("javac")
	if err != nil {
		return nil, fmt.Errorf("javac not found on PATH: %w", err)
	}
	java, err := exec.LookPath("java")
	if err != nil {
		return nil, fmt.Errorf("java not found on PATH: %w", err)
	}

	// JDK 8 prints the version on stderr, later releases on stdout.
	out, err := exec.CommandContext(ctx, javac, "-version").CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("running %s -version: %w", javac, err)
	}
	v, err := ParseJavacVersion(string(out))
	if err != nil {
		return nil, err
	}
	logger.Printf("toolchain: %s reports %s", javac, v)

	return &JDK{Javac: javac, Java: java, Version: v, log: logger}, nil
}

// ParseJavacVersion extracts the version from `javac -version` output such
// as "javac 17.0.2" or "javac 1.8.0_292".
func ParseJavacVersion(output string) (*semver.Version, error) {
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "javac" {
			continue
		}
		raw := fields[1]
		if i := strings.IndexFunc(raw, func(r rune) bool {
			return r != '.' && (r < '0' || r > '9')
		}); i >= 0 {
			raw = raw[:i]
		}
		// Some vendors append a fourth component (11.0.20.1).
		if parts := strings.Split(raw, "."); len(parts) > 3 {
			raw = strings.Join(parts[:3], ".")
		}
		v, err := semver.NewVersion(strings.TrimSuffix(raw, "."))
		if err != nil {
			return nil, fmt.Errorf("invalid javac version %q: %w", fields[1], err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("no javac version in output %q", strings.TrimSpace(output))
}

// Require fails unless the detected javac satisfies constraint.
func (j *JDK) Require(constraint string) error {
	if constraint == "" {
		constraint = DefaultConstraint
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid javac version constraint %q: %w", constraint, err)
	}
	if ok, errs := c.Validate(j.Version); !ok {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		return fmt.Errorf("javac %s does not satisfy %q: %s", j.Version, constraint, strings.Join(msgs, "; "))
	}
	return nil
}

// Compile runs javac on javaFile. On failure the error carries javac's
// diagnostics one per line.
func (j *JDK) Compile(ctx context.Context, javaFile string) error {
	cmd := exec.CommandContext(ctx, j.Javac, javaFile)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	j.log.Printf("toolchain: %s", strings.Join(cmd.Args, " "))

	if err := cmd.Run(); err != nil {
		var b strings.Builder
		fmt.Fprintf(&b, "java compilation failed: %v", err)
		for _, line := range strings.Split(strings.TrimRight(stderr.String(), "\n"), "\n") {
			if line != "" {
				b.WriteString("\n\t" + line)
			}
		}
		return fmt.Errorf("%s", b.String())
	}
	return nil
}

// Run executes className from classDir and returns its standard output.
func (j *JDK) Run(ctx context.Context, classDir, className string) (string, error) {
	args := []string{}
	if classDir != "" {
		args = append(args, "-classpath", classDir)
	}
	args = append(args, className)

	cmd := exec.CommandContext(ctx, j.Java, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	j.log.Printf("toolchain: %s", strings.Join(cmd.Args, " "))

	if err := cmd.Run(); err != nil {
		return stdout.String(), fmt.Errorf("running %s: %w: %s", className, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
