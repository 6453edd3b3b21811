// Command gen_examples regenerates testdata/*.expected by running the
// xoomonk interpreter over every testdata/*.xo program and capturing its
// stdout, grounded on the teacher's scripts/gen_vm_expects.go: build the
// binary once, then fan the example files out through an errgroup, under
// one overall x/net/context deadline so a slow or hanging program can't
// stall the rest, the same pairing of golang.org/x/net/context and
// golang.org/x/sync/errgroup the teacher's own script used.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

var timeout = flag.Duration("timeout", 30*time.Second, "overall deadline for the regeneration run")

func main() {
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context) error {
	bin, err := buildInterpreter(ctx)
	if err != nil {
		return fmt.Errorf("building xoomonk: %w", err)
	}
	defer os.Remove(bin)

	sources, err := filepath.Glob("testdata/*.xo")
	if err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, src := range sources {
		src := src
		eg.Go(func() error {
			return regenerate(ctx, bin, src)
		})
	}
	return eg.Wait()
}

func buildInterpreter(ctx context.Context) (string, error) {
	bin := filepath.Join(os.TempDir(), "xoomonk-gen-examples")
	cmd := exec.CommandContext(ctx, "go", "build", "-o", bin, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return bin, nil
}

// regenerate runs bin against src and writes its stdout to src with its
// extension replaced by ".expected". The exit status is ignored and whatever
// stdout the program wrote is recorded, so a program that fails still gets a
// golden file of its partial output -- reviewing the diff before committing
// regenerated fixtures catches that (Test_Examples also fails on any fixture
// whose program returns an error).
func regenerate(ctx context.Context, bin, src string) error {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, src)
	cmd.Stdout = &out
	_ = cmd.Run() // exit status intentionally ignored, see doc comment

	dst := src[:len(src)-len(filepath.Ext(src))] + ".expected"
	return ioutil.WriteFile(dst, out.Bytes(), 0644)
}
