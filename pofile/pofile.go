// Package pofile implements end-to-end loading of gettext PO catalogs:
// charset detection and decoding, block splitting, header-first
// parsing, sequential or parallel processing of entry blocks, and
// population of the resulting catalog.
package pofile

import (
	"fmt"
	"os"

	"github.com/minios-linux/pocat/blocks"
	"github.com/minios-linux/pocat/catalog"
	"github.com/minios-linux/pocat/logging"
	"github.com/minios-linux/pocat/parser"
)

// Load reads, decodes and parses the PO file at path into a catalog.
func Load(path string, opts Options) (*catalog.Catalog, error) {
	cat, diags, err := LoadWithDiagnostics(path, opts)
	printDiagnostics(diags)
	return cat, err
}

// LoadWithDiagnostics is Load without the stderr printing: collected
// continue-mode diagnostics are returned to the caller instead.
func LoadWithDiagnostics(path string, opts Options) (*catalog.Catalog, []*parser.ParseError, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	content, err := decode(data, DetectCharset(data))
	if err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return ParseWithDiagnostics(content, opts)
}

// Parse parses already-decoded PO content into a catalog, printing
// continue-mode diagnostics to stderr before returning.
func Parse(content string, opts Options) (*catalog.Catalog, error) {
	cat, diags, err := ParseWithDiagnostics(content, opts)
	printDiagnostics(diags)
	return cat, err
}

// ParseWithDiagnostics parses already-decoded PO content. The returned
// catalog is populated from the header block and every well-formed
// entry block; under abort policy the first invalid entry is fatal and
// no catalog is returned.
func ParseWithDiagnostics(content string, opts Options) (*catalog.Catalog, []*parser.ParseError, error) {
	log := logging.New(opts.Debug)
	defer log.Sync()

	cat := catalog.New(opts.Locale, opts.Domain, opts.Charset, opts.Version)
	blks := blocks.Split(content)
	col := &parser.Collector{}
	popts := parser.Options{
		Parallel:       opts.Parallel,
		BatchDivisor:   opts.BatchDivisor,
		AbortOnInvalid: opts.AbortOnInvalid,
		Logger:         log,
	}

	// The header must be applied before any ordinary block: plural
	// completeness validation reads the plural count it establishes.
	if err := parser.InterpretHeader(blks, cat, col, popts); err != nil {
		return nil, nil, fail(opts, err)
	}

	if len(blks) > 1 {
		msgs, err := parser.Run(blks[1:], cat, col, popts)
		if err != nil {
			return nil, nil, fail(opts, err)
		}
		for _, m := range msgs {
			if m.Obsolete {
				if !opts.DropObsolete {
					cat.AddObsolete(m)
				}
				continue
			}
			cat.Add(m)
		}
	}
	return cat, col.Errors(), nil
}

// fail optionally mirrors a fatal error to stderr before returning it.
func fail(opts Options, err error) error {
	if opts.PrintErrors {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func printDiagnostics(diags []*parser.ParseError) {
	if len(diags) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, "Errors encountered:")
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d)
	}
}
