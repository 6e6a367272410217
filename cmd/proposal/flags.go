package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds per-proposal values.
type documentFlags struct {
	voiceID string
	client  string
	date    string
}

// outputFlags holds output selection flags.
type outputFlags struct {
	format string // pdf, md, html, all or a comma-separated mix
	verify bool   // validate written PDFs with pdfcpu
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common    commonFlags
	output    string
	workers   int
	timeout   string
	assetPath string
	document  documentFlags
	out       outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing and debug logs")
}

// addDocumentFlags adds per-proposal flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.voiceID, "voice-id", "", "voice recording ID (default: transcript file name)")
	fs.StringVar(&f.client, "client", "", "client name printed on the cover")
	fs.StringVar(&f.date, "date", "", "cover date (\"auto\" = today)")
}

// addOutputFlags adds output selection flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.format, "format", "f", formatPDF, "outputs: pdf, md, html, all (comma-separated)")
	fs.BoolVar(&f.verify, "verify", false, "validate generated PDFs")
}

// registerGenerateFlags registers every generate flag on fs.
// Shared by parsing and shell completion.
func registerGenerateFlags(fs *flag.FlagSet, f *generateFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output directory, or file for a single transcript")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-proposal timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addOutputFlags(fs, &f.out)
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, usage io.Writer) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &generateFlags{}
	registerGenerateFlags(fs, f)

	fs.Usage = func() { printGenerateUsage(usage) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
		}
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
