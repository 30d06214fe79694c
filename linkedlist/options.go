package linkedlist

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/amp-labs/amp-sequences/compare"
)

// Options holds the construction-time configuration of a List.
type Options struct {
	Comparator compare.Comparator
	Sorter     Sorter
	Logger     *slog.Logger
}

// Option is a functional option for configuring a List via New.
type Option func(*config)

type config struct {
	comparator compare.Comparator
	sorter     Sorter
	logger     *slog.Logger
}

// WithComparator replaces the default byte-wise comparator.
// A nil comparator keeps the default.
func WithComparator(cmp compare.Comparator) Option {
	return func(c *config) {
		if cmp != nil {
			c.comparator = cmp
		}
	}
}

// WithSorter replaces the default merge sort strategy.
// A nil sorter keeps the default.
func WithSorter(s Sorter) Option {
	return func(c *config) {
		if s != nil {
			c.sorter = s
		}
	}
}

// WithLogger sets the logger used for Debug-level records about structural
// operations. A nil logger keeps the process default.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.logger = log
		}
	}
}

// WithOptions applies a whole Options struct at once. Nil fields keep their
// defaults.
func WithOptions(opts Options) Option {
	return func(c *config) {
		WithComparator(opts.Comparator)(c)
		WithSorter(opts.Sorter)(c)
		WithLogger(opts.Logger)(c)
	}
}

func applyOptions(opts []Option) config {
	conf := config{
		comparator: compare.Bytewise{},
		sorter:     MergeSorter{},
		logger:     nil,
	}

	for _, opt := range opts {
		opt(&conf)
	}

	return conf
}

// logger tags every record with a per-list identity so interleaved lists can
// be told apart in shared log output.
type logger struct {
	log *slog.Logger
	id  uuid.UUID
}

func newLogger(base *slog.Logger) logger {
	if base == nil {
		base = slog.Default()
	}

	return logger{log: base, id: uuid.New()}
}

// fork derives a logger for an independent list (clone or join result) with
// its own identity.
func (lg logger) fork() logger {
	return logger{log: lg.log, id: uuid.New()}
}

func (lg logger) debug(msg string, args ...any) {
	lg.log.Debug(msg, append([]any{"list", lg.id.String()}, args...)...)
}
