// pocat — gettext PO catalog parser and inspector.
package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minios-linux/pocat/config"
	"github.com/minios-linux/pocat/i18n"
	"github.com/minios-linux/pocat/pofile"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flags
// ---------------------------------------------------------------------------

var (
	flagDebug        bool
	flagParallel     bool
	flagBatchDivisor int
	flagLocale       string
	flagDomain       string
)

// loadOptions builds the parse options for one invocation: .pocat.yaml
// defaults (discovered upward from the working directory), overridden
// by whichever flags were set on the command line.
func loadOptions(cmd *cobra.Command) (pofile.Options, error) {
	var file *config.File
	if dir := config.Find("."); dir != "" {
		f, err := config.Load(dir)
		if err != nil {
			return pofile.Options{}, err
		}
		file = f
	}

	opts := file.Options()
	if cmd.Flags().Changed("debug") {
		opts.Debug = flagDebug
	}
	if cmd.Flags().Changed("parallel") {
		opts.Parallel = flagParallel
	}
	if cmd.Flags().Changed("batch-divisor") {
		opts.BatchDivisor = flagBatchDivisor
	}
	if cmd.Flags().Changed("locale") {
		opts.Locale = flagLocale
	}
	if cmd.Flags().Changed("domain") {
		opts.Domain = flagDomain
	}
	return opts, nil
}

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pocat",
		Short: "gettext PO catalog parser and inspector",
		Long: `pocat — gettext PO catalog parser and inspector.

Parses PO files into message catalogs with full diagnostics: header
interpretation, plural-form validation, flag and location comments, and
obsolete ("#~") entries. Large files can be processed in parallel.

Commands:
  check       Validate PO files and report problems
  stats       Show translation statistics for PO files
  header      Show the interpreted catalog header of a PO file`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags — inherited by all subcommands
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable per-line parser trace logging")
	root.PersistentFlags().BoolVar(&flagParallel, "parallel", false, "Process entry blocks in parallel")
	root.PersistentFlags().IntVar(&flagBatchDivisor, "batch-divisor", 2, "Divide the parallel batch count (larger batches)")
	root.PersistentFlags().StringVar(&flagLocale, "locale", "", "Catalog language code (overrides the PO header)")
	root.PersistentFlags().StringVar(&flagDomain, "domain", "", "gettext domain name")

	root.AddCommand(
		newCheckCmd(),
		newStatsCmd(),
		newHeaderCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pocat version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// check (validate PO files, report diagnostics)
// ---------------------------------------------------------------------------

func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <file.po> [file.po...]",
		Short: "Validate PO files and report problems",
		Long: `Parse each PO file and report every problem found: malformed
entries, unterminated blocks, incomplete plural sets, unknown flags and
invalid header fields.

By default bad entries are skipped and all problems are collected; the
exit status reflects whether any were found. With --strict parsing
stops at the first invalid entry instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			opts.AbortOnInvalid = strict
			return runCheck(args, opts)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Stop at the first invalid entry")

	return cmd
}

func runCheck(paths []string, opts pofile.Options) error {
	failed := 0
	for _, path := range paths {
		cat, diags, err := pofile.LoadWithDiagnostics(path, opts)
		if err != nil {
			logError("%s: %v", path, err)
			failed++
			continue
		}
		for _, d := range diags {
			logWarning("%s: %v", path, d)
		}
		if len(diags) > 0 {
			logError("%s: %s", path,
				fmt.Sprintf(i18n.N("%d problem found", "%d problems found", len(diags)), len(diags)))
			failed++
			continue
		}
		logSuccess("%s: %s (%d %s)", path, i18n.T("parsed without errors"),
			cat.Len(), i18n.N("entry", "entries", cat.Len()))
	}
	if failed > 0 {
		return errors.New(fmt.Sprintf(i18n.N("%d file failed validation", "%d files failed validation", failed), failed))
	}
	return nil
}

// ---------------------------------------------------------------------------
// stats (translation statistics)
// ---------------------------------------------------------------------------

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file.po> [file.po...]",
		Short: "Show translation statistics for PO files",
		Long: `Show per-file translation statistics: total, translated, fuzzy
and untranslated message counts, plus obsolete entries kept from "#~"
blocks. Does not modify any files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			// Statistics should survive the odd bad entry.
			opts.AbortOnInvalid = false
			return runStats(args, opts)
		},
	}

	return cmd
}

func runStats(paths []string, opts pofile.Options) error {
	for _, path := range paths {
		cat, diags, err := pofile.LoadWithDiagnostics(path, opts)
		if err != nil {
			logError("%s: %v", path, err)
			continue
		}

		total, translated, fuzzy, untranslated := cat.Stats()
		fmt.Fprintf(os.Stderr, "\n%s%s%s\n", colorBlue, path, colorReset)
		fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
		fmt.Fprintf(os.Stderr, "  Language:     %s\n", orDash(cat.Locale))
		fmt.Fprintf(os.Stderr, "  Plural forms: %d\n", cat.NumPlurals())
		fmt.Fprintf(os.Stderr, "  Messages:     %d\n", total)
		fmt.Fprintf(os.Stderr, "  Translated:   %d (%s)\n", translated, percent(translated, total))
		fmt.Fprintf(os.Stderr, "  Fuzzy:        %d\n", fuzzy)
		fmt.Fprintf(os.Stderr, "  Untranslated: %d\n", untranslated)
		fmt.Fprintf(os.Stderr, "  Obsolete:     %d\n", len(cat.ObsoleteMessages()))
		if len(diags) > 0 {
			logWarning("%s: skipped %d malformed %s", path, len(diags),
				i18n.N("entry", "entries", len(diags)))
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func percent(part, total int) string {
	if total == 0 {
		return "100%"
	}
	return fmt.Sprintf("%d%%", part*100/total)
}

// ---------------------------------------------------------------------------
// header (interpreted catalog header)
// ---------------------------------------------------------------------------

func newHeaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "header <file.po>",
		Short: "Show the interpreted catalog header of a PO file",
		Long: `Parse only as far as the header entry and print the interpreted
MIME header fields, the detected charset, and the plural count the
catalog will use.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			return runHeader(args[0], opts)
		},
	}

	return cmd
}

func runHeader(path string, opts pofile.Options) error {
	cat, _, err := pofile.LoadWithDiagnostics(path, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fields := cat.MimeHeaders()
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	sort.Strings(names)

	fmt.Fprintf(os.Stderr, "\n%s%s%s\n", colorBlue, path, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-28s %s\n", name+":", cat.HeaderField(name))
	}
	fmt.Fprintln(os.Stderr)
	logInfo("charset: %s", cat.Charset)
	logInfo("plural forms: %d", cat.NumPlurals())
	if cat.Fuzzy {
		logWarning("header is marked fuzzy")
	}

	return nil
}
