package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zostay/go-headerlines/header/field"
	"github.com/zostay/go-headerlines/internal/logging"
)

// now is replaced in tests.
var now = time.Now

// options are the flags shared by every subcommand.
type options struct {
	headers []string
	date    string
	body    string
	verbose bool
}

// NewRootCmd builds the hdrline command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "hdrline",
		Short:        "Write a protocol header section, then a body, to stdout",
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringArrayVarP(&opts.headers, "header", "H", nil, `add a header field written as "Name: value" (repeatable)`)
	pf.StringVar(&opts.date, "date", "", `add a Date field: "now" or any recognizable date`)
	pf.StringVar(&opts.body, "body", "", `file to copy after the header, "-" for stdin`)
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log every header line written")

	rootCmd.AddCommand(newHTTPCmd(opts))
	rootCmd.AddCommand(newMailCmd(opts))

	return rootCmd
}

// Execute runs hdrline with the arguments from the command line.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) logger(cmd *cobra.Command) zerolog.Logger {
	return logging.New(cmd.ErrOrStderr(), o.verbose)
}

func (o *options) fields() ([]*field.Field, error) {
	fs := make([]*field.Field, 0, len(o.headers))
	for _, h := range o.headers {
		name, body, found := strings.Cut(h, ":")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("header %q is not written as \"Name: value\"", h)
		}
		fs = append(fs, field.New(name, strings.TrimSpace(body)))
	}
	return fs, nil
}

func parseDate(s string) (time.Time, error) {
	switch s {
	case "":
		return time.Time{}, nil
	case "now":
		return now(), nil
	default:
		return field.ParseTime(s)
	}
}

// emit writes the header section described by wt followed by the body. The
// header block flushes the buffer when it closes, so the header reaches stdout
// before the body is read.
func (o *options) emit(cmd *cobra.Command, wt io.WriterTo) error {
	out := bufio.NewWriter(cmd.OutOrStdout())
	if _, err := wt.WriteTo(out); err != nil {
		return err
	}

	if err := o.copyBody(cmd, out); err != nil {
		return err
	}

	return out.Flush()
}

func (o *options) copyBody(cmd *cobra.Command, w io.Writer) error {
	var r io.Reader
	switch o.body {
	case "":
		return nil
	case "-":
		r = cmd.InOrStdin()
	default:
		f, err := os.Open(o.body)
		if err != nil {
			return fmt.Errorf("unable to open body: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("unable to copy body: %w", err)
	}

	return nil
}
