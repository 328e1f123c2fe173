package parser

import (
	"context"
	"runtime"
	"sort"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/minios-linux/pocat/blocks"
	"github.com/minios-linux/pocat/catalog"
)

// Options configures one parse run. The zero value is sequential
// execution with collect-and-continue disabled (abort on the first
// invalid entry is chosen by the caller, see pofile.DefaultOptions).
type Options struct {
	// Parallel runs block batches on a worker per batch instead of
	// processing blocks one at a time in order.
	Parallel bool
	// BatchDivisor reduces the parallel batch count to limit
	// scheduling overhead on machines with many cores. 0 means 2.
	BatchDivisor int
	// AbortOnInvalid makes the first grammar or completeness error
	// fatal for the whole run. When false, errors are recorded in the
	// Collector and the offending block yields no entry.
	AbortOnInvalid bool
	// Logger receives per-line trace output; nil disables tracing.
	Logger *zap.SugaredLogger
}

func (o Options) logger() *zap.SugaredLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop().Sugar()
}

func (o Options) divisor() int {
	if o.BatchDivisor > 0 {
		return o.BatchDivisor
	}
	return 2
}

// Run processes the ordinary blocks (the caller excludes the header
// block) and returns the finished messages sorted by source line.
// Blocks are independent; under abort policy the first fatal error
// cancels all in-flight workers and is returned once they have exited.
func Run(blks []blocks.Block, sink Sink, col *Collector, opts Options) ([]*catalog.Message, error) {
	if len(blks) == 0 {
		return nil, nil
	}
	m := &machine{sink: sink, log: opts.logger()}
	if !opts.Parallel {
		return runSequential(m, blks, col, opts)
	}
	return runParallel(m, blks, col, opts)
}

func runSequential(m *machine, blks []blocks.Block, col *Collector, opts Options) ([]*catalog.Message, error) {
	out := make([]*catalog.Message, 0, len(blks))
	for _, b := range blks {
		msg, err := m.processBlock(b)
		if err != nil {
			if opts.AbortOnInvalid {
				return nil, err
			}
			col.Add(asParseError(err))
			continue
		}
		out = append(out, msg)
	}
	sortByLine(out)
	return out, nil
}

func runParallel(m *machine, blks []blocks.Block, col *Collector, opts Options) ([]*catalog.Message, error) {
	batches := splitBatches(blks, batchCount(len(blks), opts.divisor()))
	m.log.Debugw("parallel run", "blocks", len(blks), "batches", len(batches))

	// The only mutable state shared across workers: set once by the
	// first worker to hit a fatal error, read before every block.
	var abort atomic.Bool

	results := make([][]*catalog.Message, len(batches))
	g, ctx := errgroup.WithContext(context.Background())
	for i, batch := range batches {
		i, batch := i, batch
		g.Go(func() error {
			msgs := make([]*catalog.Message, 0, len(batch))
			for _, b := range batch {
				if abort.Load() || ctx.Err() != nil {
					return nil
				}
				msg, err := m.processBlock(b)
				if err != nil {
					if opts.AbortOnInvalid {
						abort.Store(true)
						return err
					}
					col.Add(asParseError(err))
					continue
				}
				msgs = append(msgs, msg)
			}
			results[i] = msgs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []*catalog.Message
	for _, msgs := range results {
		out = append(out, msgs...)
	}
	sortByLine(out)
	return out, nil
}

// batchCount derives the parallel batch count from available CPUs,
// reduced by the divisor on larger machines, capped by the block count.
func batchCount(nblocks, divisor int) int {
	n := runtime.NumCPU() - 2
	if n < 1 {
		n = 1
	}
	if n >= 5 {
		n /= divisor
		if n < 1 {
			n = 1
		}
	}
	if n > nblocks {
		n = nblocks
	}
	return n
}

// splitBatches partitions blks into n contiguous near-equal batches,
// spreading the remainder over the first batches.
func splitBatches(blks []blocks.Block, n int) [][]blocks.Block {
	size := len(blks) / n
	rem := len(blks) % n
	out := make([][]blocks.Block, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		end := start + size
		if i < rem {
			end++
		}
		out = append(out, blks[start:end])
		start = end
	}
	return out
}

// sortByLine orders messages by their msgid source line; messages with
// no recorded line sort first. This makes output order independent of
// batch scheduling.
func sortByLine(msgs []*catalog.Message) {
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].Line < msgs[j].Line })
}
