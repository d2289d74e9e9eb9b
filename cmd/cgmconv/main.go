// Command cgmconv decodes a binary Computer Graphics Metafile and writes
// its ISO/IEC 8632-4 clear-text rendering.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/cgmkit/cgm/pkg/cgm"
)

var (
	inputPath       string
	outputPath      string
	configPath      string
	wrapColumn      int64
	preserveVDCType bool
	jsonDiagnostics bool
)

func main() {
	app := &cli.Command{
		Name:  "cgmconv",
		Usage: "convert a binary CGM metafile to ISO/IEC 8632-4 clear text",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Required:    true,
				Usage:       "input .cgm or .cgm.gz file",
				Destination: &inputPath,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output file (default: stdout)",
				Destination: &outputPath,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "YAML config file",
				Destination: &configPath,
			},
			&cli.Int64Flag{
				Name:        "wrap-column",
				Usage:       "clear-text soft wrap column (0 = use config/default)",
				Destination: &wrapColumn,
			},
			&cli.BoolFlag{
				Name:        "preserve-vdc-type",
				Usage:       "do not force real formatting for integer VDC TYPE",
				Destination: &preserveVDCType,
			},
			&cli.BoolFlag{
				Name:        "json-diagnostics",
				Usage:       "write diagnostics as JSON to stderr instead of logging them",
				Destination: &jsonDiagnostics,
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "cgmconv:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	_ = ctx
	_ = cmd

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, err := readInput(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	resolvedWrap := cfg.WrapColumn
	if wrapColumn > 0 {
		resolvedWrap = int(wrapColumn)
	}

	vdcMode := cgm.ForceRealVdcOnEmit
	if cfg.VdcMode == "preserve" || preserveVDCType {
		vdcMode = cgm.PreserveVdcType
	}

	opts := cgm.Options{
		SrcData:              data,
		VdcMode:              vdcMode,
		WrapColumn:           uint16(resolvedWrap),
		EmitUnknownAsComment: cfg.EmitUnknownAsComment,
		Logger:               newLogger(),
	}

	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer closeOut()

	diags, err := cgm.Convert(data, out, opts)
	if err != nil {
		return err
	}

	if jsonDiagnostics {
		payload, err := cgm.MarshalDiagnostics(diags)
		if err != nil {
			return fmt.Errorf("marshal diagnostics: %w", err)
		}
		fmt.Fprintln(os.Stderr, string(payload))
	}

	return nil
}

// readInput transparently decompresses a .cgm.gz input, per SPEC_FULL.md's
// wiring of klauspost/compress/gzip.
func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		return io.ReadAll(gz)
	}
	return io.ReadAll(f)
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// newLogger colorizes output only when stderr is an interactive terminal,
// per SPEC_FULL.md's golang.org/x/term wiring.
func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:   term.IsTerminal(int(os.Stderr.Fd())),
		FullTimestamp: true,
	})
	return logger
}
