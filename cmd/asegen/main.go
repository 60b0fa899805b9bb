// Asegen converts a JSON or YAML swatch document into an Adobe Swatch Exchange file.
//
// Usage:
//
//	asegen [flags]
//
// The flags are:
//
//	-in=palette.yaml
//	    swatch document to read, "-" for stdin
//	-out=palette.ase
//	    file to write, stdout when empty
//	-compress=none
//	    compress the output with none, zstd, s2 or lz4
//	-v
//	    enable debug logging
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/ase"
	"github.com/arloliu/ase/format"
	"github.com/arloliu/ase/swatch"
	"github.com/arloliu/ase/swatchfile"
	"go.uber.org/zap"
)

type config struct {
	in          string
	out         string
	compression format.CompressionType
}

var (
	inPath      = flag.String("in", "", "swatch document to read (JSON or YAML), \"-\" for stdin")
	outPath     = flag.String("out", "", "ASE file to write; stdout when empty")
	compressArg = flag.String("compress", "none", "output compression: none, zstd, s2 or lz4")
	verbose     = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s -in FILE [-out FILE] [-compress ALGO] [-v]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "asegen: create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	comp, err := format.ParseCompressionType(*compressArg)
	if err != nil {
		logger.Error("invalid -compress flag", zap.Error(err))
		os.Exit(2)
	}
	if *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config{in: *inPath, out: *outPath, compression: comp}
	if err := run(cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("encode failed", zap.String("in", cfg.in), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// newLogger logs JSON to stderr so that stdout stays free for the encoded file.
func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return cfg.Build()
}

func run(cfg config, logger *zap.Logger, stdin io.Reader, stdout io.Writer) error {
	doc, err := loadDocument(cfg.in, stdin)
	if err != nil {
		return err
	}

	chunks, err := doc.ChunkCount()
	if err != nil {
		return err
	}
	logger.Debug("loaded swatch document",
		zap.String("in", cfg.in),
		zap.Int("groups", len(doc.Groups)),
		zap.Int("colors", len(doc.Colors)),
		zap.Uint32("chunks", chunks),
	)

	encoder, err := ase.NewEncoder(swatch.WithCompression(cfg.compression))
	if err != nil {
		return err
	}

	data, err := encoder.Encode(doc)
	if err != nil {
		return err
	}

	if err := writeOutput(cfg.out, data, stdout); err != nil {
		return err
	}

	logger.Info("wrote swatch file",
		zap.String("out", outputName(cfg.out)),
		zap.Stringer("compression", cfg.compression),
		zap.Int("bytes", len(data)),
		zap.Uint32("chunks", chunks),
		zap.String("digest", fmt.Sprintf("%016x", ase.Digest(data))),
	)

	return nil
}

func loadDocument(path string, stdin io.Reader) (swatch.Document, error) {
	if path == "-" {
		return swatchfile.Decode(stdin)
	}

	return swatchfile.Load(path)
}

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func outputName(path string) string {
	if path == "" {
		return "<stdout>"
	}

	return path
}
