package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/ezprint"
	"github.com/bjaus/ezprint/internal/document"
)

const stdinPath = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	input       string // input format, or "auto" to infer from the extension
	maxWidth    int    // truncate output lines to this many columns, 0 = no limit
	bytesAsText bool   // render byte slices as text
	config      string // optional YAML config file
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		input:       string(document.Auto),
		bytesAsText: true,
	}

	cmd := &cobra.Command{
		Use:   "render [files...]",
		Short: "Print documents in ezprint text format",
		Long:  `Decodes each file (or standard input when no file or "-" is given) and prints every document it contains on its own line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.config != "" {
				cfg, err := loadConfig(opts.config)
				if err != nil {
					return err
				}
				opts.merge(cmd, cfg)
			}
			if len(args) == 0 {
				args = []string{stdinPath}
			}
			return runRender(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", opts.input, fmt.Sprintf("input format: %v", document.Formats()))
	cmd.Flags().IntVarP(&opts.maxWidth, "max-width", "w", 0, "truncate output lines to this many columns (0 = no limit)")
	cmd.Flags().BoolVar(&opts.bytesAsText, "bytes-as-text", opts.bytesAsText, "render byte sequences as text")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "YAML config file")

	return cmd
}

// merge applies config file values to every option not set on the command
// line.
func (o *renderOpts) merge(cmd *cobra.Command, cfg Config) {
	flags := cmd.Flags()
	if cfg.Input != "" && !flags.Changed("input") {
		o.input = cfg.Input
	}
	if cfg.MaxWidth != nil && !flags.Changed("max-width") {
		o.maxWidth = *cfg.MaxWidth
	}
	if cfg.BytesAsText != nil && !flags.Changed("bytes-as-text") {
		o.bytesAsText = *cfg.BytesAsText
	}
}

func runRender(ctx context.Context, stdin io.Reader, out io.Writer, paths []string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	format, err := document.ParseFormat(opts.input)
	if err != nil {
		return err
	}
	printer := ezprint.New(ezprint.WithBytesAsText(opts.bytesAsText))

	for _, path := range paths {
		docs, err := readDocuments(stdin, path, format)
		if err != nil {
			return err
		}
		logger.Debug("decoded", "path", path, "documents", len(docs))
		for _, doc := range docs {
			line := truncate(printer.Sprint(doc), opts.maxWidth)
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func readDocuments(stdin io.Reader, path string, format document.Format) ([]any, error) {
	if format == document.Auto {
		if path == stdinPath {
			return nil, fmt.Errorf("%w: standard input needs --input", document.ErrUnsupportedFormat)
		}
		f, err := document.FormatFor(path)
		if err != nil {
			return nil, err
		}
		format = f
	}

	if path == stdinPath {
		return document.Decode(stdin, format)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := document.Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}
