package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitThenBuild(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "hello")

	if err := initRun(InitCmd, []string{src}); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := initRun(InitCmd, []string{src}); err == nil {
		t.Errorf("second init should refuse to overwrite")
	}

	outDir = filepath.Join(dir, "out")
	buildJobs = 2
	t.Cleanup(func() { outDir = "" })

	if err := buildRun(BuildCmd, []string{src + ".pd"}); err != nil {
		t.Fatalf("build: %v", err)
	}
	java, err := os.ReadFile(filepath.Join(outDir, "Hello.java"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(java), `String greeting = "Hello from hello.pd";`) {
		t.Errorf("unexpected Java:\n%s", java)
	}
}

func TestBuildStopsOnFirstError(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.pd")
	bad := filepath.Join(dir, "bad.pd")
	if err := os.WriteFile(good, []byte("output(1)"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("output(nope)"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := compileAll(context.Background(), []string{good, bad})
	if err == nil || !strings.Contains(err.Error(), "unresolved name") {
		t.Fatalf("error = %v, want unresolved name", err)
	}
}

func TestBuildRejectsOutputCollisions(t *testing.T) {
	dir := t.TempDir()
	var srcs []string
	for _, rel := range []string{"a/x.pd", "b/x.pd"} {
		src := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(src), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(src, []byte("output(1)"), 0o644); err != nil {
			t.Fatal(err)
		}
		srcs = append(srcs, src)
	}

	// Beside each source the outputs differ.
	if _, err := compileAll(context.Background(), srcs); err != nil {
		t.Fatalf("compileAll without --out: %v", err)
	}

	outDir = filepath.Join(dir, "out")
	t.Cleanup(func() { outDir = "" })
	_, err := compileAll(context.Background(), srcs)
	if err == nil || !strings.Contains(err.Error(), "both compile to") {
		t.Fatalf("error = %v, want an output collision", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "X.java")); !os.IsNotExist(err) {
		t.Errorf("nothing should be written on a collision (stat err = %v)", err)
	}

	if err := checkOutputCollisions([]string{"my-prog.pd", "myprog.pd"}); err == nil {
		t.Errorf("my-prog.pd and myprog.pd both map to Myprog.java")
	}
}
