// Command funcgen generates the fixed-arity families of packages fn and tuple.
//
// Usage:
//
//	funcgen -kind func|tuple -max 22 -pkg NAME -o FILE
//
// It is normally run through go:generate from the target package directory.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type config struct {
	kind    string
	pkg     string
	out     string
	max     int
	verbose bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.kind, "kind", "func", "family to generate: func or tuple")
	flag.StringVar(&cfg.pkg, "pkg", "", "package name of the generated file (defaults to -kind's package)")
	flag.StringVar(&cfg.out, "o", "zz_generated.go", "output file")
	flag.IntVar(&cfg.max, "max", 22, "highest arity to generate")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	flag.Parse()

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "funcgen: failed to create logger: %v\n", err)
		os.Exit(2)
	}

	err = run(cfg, logger)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

var defaultPkg = map[string]string{
	"func":  "fn",
	"tuple": "tuple",
}

func run(cfg config, logger *zap.Logger) error {
	pkg := cfg.pkg
	if pkg == "" {
		pkg = defaultPkg[cfg.kind]
	}
	logger.Debug("rendering family",
		zap.String("kind", cfg.kind),
		zap.String("pkg", pkg),
		zap.Int("max", cfg.max),
	)

	src, err := render(cfg.kind, pkg, cfg.max)
	if err != nil {
		return err
	}
	if err := writeFile(cfg.out, src); err != nil {
		return err
	}

	logger.Info("wrote family",
		zap.String("kind", cfg.kind),
		zap.String("file", cfg.out),
		zap.Int("bytes", len(src)),
	)
	return nil
}

func writeFile(path string, src []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if _, err := f.Write(src); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
