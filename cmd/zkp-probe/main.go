// zkp-probe checks that the native secp256k1-zkp bindings are usable and
// validates hex test vectors against the opaque value types.
//
//	zkp-probe --scratch-size 0,100,1048576
//	zkp-probe --vectors testdata/vectors.yaml
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/hsiuhsiu/secp256k1-zkp-go/pkg/zkp"
	"github.com/hsiuhsiu/secp256k1-zkp-go/pkg/zkp/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flagSet := pflag.NewFlagSet("zkp-probe", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	sizes := flagSet.IntSlice("scratch-size", nil, "create one scratch space per size, borrow it once and release it")
	vectorsPath := flagSet.String("vectors", "", "YAML file of {name, type, hex} vectors to validate")
	verbose := flagSet.BoolP("verbose", "v", false, "log scratch-space lifecycle at debug level")
	showVersion := flagSet.Bool("version", false, "print versions and exit")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	fmt.Fprintf(stdout, "secp256k1-zkp-go %s (upstream %s, %s)\n", zkp.WrapperVersion(), zkp.UpstreamVersion(), zkp.UpstreamDir)
	if *showVersion {
		return nil
	}

	if len(*sizes) > 0 {
		if err := probeScratch(*sizes, zkp.Config{Logger: logger}, stdout); err != nil {
			return err
		}
	}

	if *vectorsPath != "" {
		f, err := os.Open(*vectorsPath)
		if err != nil {
			return fmt.Errorf("open vectors: %w", err)
		}
		defer f.Close()

		vectors, err := loadVectors(f)
		if err != nil {
			return err
		}
		if invalid := checkVectors(vectors, stdout); invalid > 0 {
			return fmt.Errorf("%d of %d vectors invalid", invalid, len(vectors))
		}
	}
	return nil
}

func probeScratch(sizes []int, cfg zkp.Config, out io.Writer) error {
	ctx, err := zkp.NewCurveContext(zkp.ContextNone)
	if errors.Is(err, zkp.ErrNotBuilt) {
		fmt.Fprintf(out, "native bindings unavailable: %v\n", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("create curve context: %w", err)
	}
	defer ctx.Close()

	spaces := make([]*zkp.ScratchSpace, 0, len(sizes))
	defer func() {
		for _, s := range spaces {
			_ = s.Close()
		}
	}()

	for _, size := range sizes {
		s, err := zkp.NewScratchSpaceWithConfig(ctx, size, cfg)
		if err != nil {
			return fmt.Errorf("scratch space of %d bytes: %w", size, err)
		}
		spaces = append(spaces, s)

		err = s.Use(func(h zkp.Handle) error {
			if h.Scratch() == nil {
				return errors.New("nil native handle")
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("scratch space of %d bytes: %w", size, err)
		}
		fmt.Fprintf(out, "scratch space ok: max_size=%d\n", s.MaxSize())
	}
	return nil
}
