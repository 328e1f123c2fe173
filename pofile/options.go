package pofile

// Options is the explicit parse configuration. No parser state is
// process-global; every option is threaded from here to the scheduler
// and its workers.
type Options struct {
	// Debug enables per-line trace logging to stderr.
	Debug bool
	// Parallel processes block batches on parallel workers.
	Parallel bool
	// BatchDivisor reduces the parallel batch count on machines with
	// many cores. 0 means the default of 2.
	BatchDivisor int
	// PrintErrors additionally prints a fatal parse error to stderr
	// before it is returned.
	PrintErrors bool
	// DropObsolete discards "#~" entries instead of storing them in
	// the catalog's obsolete section.
	DropObsolete bool
	// AbortOnInvalid stops the whole parse at the first invalid entry.
	// When false, errors are collected and printed after parsing and
	// the offending blocks yield no entries.
	AbortOnInvalid bool

	// Catalog identity for the default catalog the parse populates.
	Locale  string
	Domain  string
	Charset string
	Version string
}

// DefaultOptions returns the default configuration: sequential
// execution, abort on the first invalid entry, obsolete entries kept.
func DefaultOptions() Options {
	return Options{
		BatchDivisor:   2,
		AbortOnInvalid: true,
	}
}
