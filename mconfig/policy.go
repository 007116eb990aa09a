// Package mconfig carries the functional-options configuration shared
// by the homolog facade: whether chain-complex construction validates
// the chain condition, and which Logger receives progress events.
package mconfig

import "github.com/JKural/mc-homology/logging"

// DefaultStrictChainCheck matches the checked ChainComplex
// constructor: reject boundary sequences that don't satisfy
// B_{n-1}.B_n = 0.
const DefaultStrictChainCheck = true

// Option mutates a Policy. Safe to apply repeatedly.
type Option func(*Policy)

// Policy is the resolved configuration consumed by homolog. Its
// fields are unexported; callers build one with NewPolicy.
type Policy struct {
	strictChainCheck bool
	logger           logging.Logger
}

// WithStrictChainCheck requires homolog.ComputeHomologyEuclidean and
// homolog.ComputeHomologyField to use the checked
// ChainComplex constructor (the default).
func WithStrictChainCheck() Option {
	return func(p *Policy) { p.strictChainCheck = true }
}

// WithoutChainCheck skips chain-condition validation, for callers who
// already trust the boundary sequence they are handing in (e.g. one
// produced by construct.ChainComplexOver, which is correct by
// construction).
func WithoutChainCheck() Option {
	return func(p *Policy) { p.strictChainCheck = false }
}

// WithLogger attaches a Logger that homolog reports progress to. The
// default policy uses logging.NopLogger.
func WithLogger(l logging.Logger) Option {
	return func(p *Policy) { p.logger = l }
}

// StrictChainCheck reports whether the checked constructor should be
// used.
func (p Policy) StrictChainCheck() bool { return p.strictChainCheck }

// Logger returns the configured Logger. A Policy built by NewPolicy
// always has one set; the zero Policy does not.
func (p Policy) Logger() logging.Logger { return p.logger }

// NewPolicy resolves opts against the documented defaults.
func NewPolicy(opts ...Option) Policy {
	p := Policy{
		strictChainCheck: DefaultStrictChainCheck,
		logger:           logging.NopLogger{},
	}
	for _, set := range opts {
		set(&p)
	}
	return p
}
