package machina

import (
	"context"
	"strconv"

	"github.com/google/uuid"
)

// Bounds caps how much of the configuration graph a Search will explore.
// Exceeding either terminates the run with verdict Diverged.
type Bounds struct {
	MaxDepth   int // longest path from the initial configuration
	MaxVisited int // total unique configurations, by CanonicalKey
}

// Verdict is a Search outcome, in ascending priority: when a run surfaces
// more than one of these, the highest-priority one wins.
type Verdict int

const (
	Stuck Verdict = iota
	Diverged
	Rejected
	Halted
	Accepted
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case Halted:
		return "halted"
	case Rejected:
		return "rejected"
	case Diverged:
		return "diverged"
	default:
		return "stuck"
	}
}

// Result is everything a Search run produced.
type Result struct {
	Verdict         Verdict
	Output          []Symbol // trimmed tape dump, TM accept or halt only
	RAMOutput       []Word   // RAM halt only
	VisitedCount    int
	MaxFrontierSize int
	Cancelled       bool
	Trace           []TraceEdge // nil unless tracing was requested
	Witness         []Rule      // the path to the winning configuration
}

type searchOptions struct {
	ctx   context.Context
	trace bool
}

// Option configures a Search call.
type Option func(*searchOptions)

// WithContext threads a cancellation context through Search. It is checked
// once per frontier pop; on cancellation the verdict is Diverged with
// Cancelled set.
func WithContext(ctx context.Context) Option {
	return func(o *searchOptions) { o.ctx = ctx }
}

// WithTrace enables recording of every enqueue edge, so Result.Trace and
// Result.Witness are populated.
func WithTrace(enabled bool) Option {
	return func(o *searchOptions) { o.trace = enabled }
}

type frontierNode struct {
	config Configuration
	id     uuid.UUID
	parent uuid.UUID
	rule   *Rule
}

// ParseRAMWord converts a decimal-literal Symbol (e.g. "13") into a RAM
// Word, the convention Search uses when a RAM Descriptor's input is given
// as a symbol sequence rather than constructed directly as []Word.
func ParseRAMWord(s Symbol) (Word, error) {
	v, err := strconv.ParseUint(string(s), 10, 64)
	if err != nil {
		return nil, &ParseError{Reason: "RAM input symbol is not a non-negative integer", Cause: err}
	}
	return WordFromUint64(v, 0), nil
}

// Search explores the configuration graph reachable from d's initial
// configuration over input by breadth-first frontier expansion, matching
// Turing's own description of running every possible sequence of choices
// "simultaneously" — here realized as level-order traversal with a
// dedup set instead of true concurrency, so the first accepting
// configuration found is always at minimal depth.
//
// Verdicts are decided in priority order accepted > halted > rejected >
// diverged > stuck: Accepted short-circuits immediately (BFS guarantees no
// shallower accept exists), the others are decided once the bounded
// portion of the graph has been fully explored.
func Search(d *Descriptor, input []Symbol, bounds Bounds, opts ...Option) Result {
	o := searchOptions{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	var tr *Trace
	if o.trace {
		tr = newTrace()
	}

	var init Configuration
	if d.Kind == RAM {
		words := make([]Word, 0, len(input))
		for _, s := range input {
			w, err := ParseRAMWord(s)
			if err != nil {
				return Result{Verdict: Stuck}
			}
			words = append(words, w)
		}
		init = d.InitialRAMConfiguration(words)
	} else {
		init = d.InitialConfiguration(input)
	}

	rootID := uuid.New()
	frontier := []frontierNode{{config: init, id: rootID}}
	if tr != nil {
		tr.record(uuid.Nil, nil, rootID)
	}
	visited := make(map[string]struct{})

	var (
		visitedCount    int
		maxFrontierSize int
		sawRejected     bool
		sawHalted       bool
		haltedID        uuid.UUID
		haltedConfig    Configuration
		capped          bool
	)

	for len(frontier) > 0 {
		if len(frontier) > maxFrontierSize {
			maxFrontierSize = len(frontier)
		}

		if o.ctx.Err() != nil {
			return Result{
				Verdict:         Diverged,
				Cancelled:       true,
				VisitedCount:    visitedCount,
				MaxFrontierSize: maxFrontierSize,
				Trace:           tr.Edges(),
			}
		}

		node := frontier[0]
		frontier = frontier[1:]

		key := node.config.CanonicalKey()
		if _, seen := visited[key]; seen {
			continue
		}
		visited[key] = struct{}{}
		visitedCount++

		if visitedCount > bounds.MaxVisited {
			capped = true
			break
		}

		if acceptedConfiguration(d, node.config) {
			result := Result{
				Verdict:         Accepted,
				VisitedCount:    visitedCount,
				MaxFrontierSize: maxFrontierSize,
				Trace:           tr.Edges(),
			}
			if d.Kind == TM {
				result.Output = tapeDump(lastTape(node.config))
			}
			if tr != nil {
				result.Witness = tr.Witness(node.id)
			}
			return result
		}

		if node.config.Depth >= bounds.MaxDepth {
			capped = true
			continue
		}

		children, term := Step(d, node.config)
		switch term {
		case TermAccept:
			result := Result{
				Verdict:         Accepted,
				VisitedCount:    visitedCount,
				MaxFrontierSize: maxFrontierSize,
				Trace:           tr.Edges(),
			}
			if d.Kind == TM {
				result.Output = tapeDump(lastTape(node.config))
			}
			if tr != nil {
				result.Witness = tr.Witness(node.id)
			}
			return result
		case TermReject:
			sawRejected = true
		case TermHalt:
			if !sawHalted {
				sawHalted = true
				haltedID = node.id
				haltedConfig = node.config
			}
		}

		for i := range children {
			childID := uuid.New()
			if tr != nil {
				tr.record(node.id, children[i].Rule, childID)
			}
			frontier = append(frontier, frontierNode{
				config: children[i].Config,
				id:     childID,
				parent: node.id,
				rule:   children[i].Rule,
			})
		}
	}

	result := Result{
		VisitedCount:    visitedCount,
		MaxFrontierSize: maxFrontierSize,
		Trace:           tr.Edges(),
	}

	switch {
	case sawHalted:
		result.Verdict = Halted
		if tr != nil {
			result.Witness = tr.Witness(haltedID)
		}
		switch d.Kind {
		case RAM:
			result.RAMOutput = haltedConfig.Mem.Output
		case TM:
			result.Output = tapeDump(lastTape(haltedConfig))
		}
	case sawRejected:
		result.Verdict = Rejected
	case capped:
		result.Verdict = Diverged
	case d.Kind == FSA || d.Kind == PDA:
		// The automaton's whole configuration graph was explored without
		// reaching acceptance, so the input is rejected.
		result.Verdict = Rejected
	default:
		result.Verdict = Stuck
	}
	return result
}

// tapeDump returns a tape's trimmed written region as a plain Symbol slice.
func tapeDump(t Tape) []Symbol {
	lo, hi := t.Bounds()
	return t.Dump(lo, hi)
}

// lastTape returns the tape a multi-tape TM's result is read from: the
// final tape by convention (single-tape machines have only tape 0, which
// is both their input and their output).
func lastTape(c Configuration) Tape {
	return c.Tapes[len(c.Tapes)-1]
}

// acceptedConfiguration decides FSA/PDA acceptance, which — unlike TM/RAM
// accept-via-stuck — can fire on a configuration that still has outgoing
// rules, so Search must check it before stepping rather than rely on
// Step's Terminal return.
func acceptedConfiguration(d *Descriptor, c Configuration) bool {
	switch d.Kind {
	case FSA:
		return d.Accept != "" && c.State == d.Accept && AtEndOfInput(d, c)
	case PDA:
		if d.PDAAcceptEmpty {
			return AtEndOfInput(d, c) && c.Stack.Empty()
		}
		return d.Accept != "" && c.State == d.Accept && AtEndOfInput(d, c)
	default:
		return false
	}
}
