package machina

import "github.com/google/uuid"

// TraceEdge records one enqueue event: a child configuration was produced
// from Parent by applying Rule. Root configurations have a nil Rule and
// a Parent equal to uuid.Nil.
type TraceEdge struct {
	Parent uuid.UUID
	Rule   *Rule
	Child  uuid.UUID
}

// Trace is the append-only buffer of TraceEdges a Search accumulates when
// tracing is enabled, owned entirely by the search call rather than any
// package-level state.
type Trace struct {
	edges  []TraceEdge
	byNode map[uuid.UUID]int // node id -> index into edges, for witness walk
}

func newTrace() *Trace {
	return &Trace{byNode: make(map[uuid.UUID]int)}
}

func (t *Trace) record(parent uuid.UUID, rule *Rule, child uuid.UUID) {
	t.edges = append(t.edges, TraceEdge{Parent: parent, Rule: rule, Child: child})
	t.byNode[child] = len(t.edges) - 1
}

// Edges returns every recorded edge, in the order they were enqueued.
func (t *Trace) Edges() []TraceEdge {
	if t == nil {
		return nil
	}
	return t.edges
}

// Witness walks parent ids from terminal back to the root, returning the
// sequence of Rules applied along that path in forward (root-to-terminal)
// order. Walked from an id Search reports (the first copy of a
// configuration it visited), this is a shortest accepting/halting path,
// since BFS visits shallower copies first.
func (t *Trace) Witness(terminal uuid.UUID) []Rule {
	if t == nil {
		return nil
	}
	var reversed []Rule
	cur := terminal
	for {
		idx, ok := t.byNode[cur]
		if !ok {
			break
		}
		edge := t.edges[idx]
		if edge.Rule == nil {
			break
		}
		reversed = append(reversed, *edge.Rule)
		cur = edge.Parent
	}
	out := make([]Rule, len(reversed))
	for i, r := range reversed {
		out[len(reversed)-1-i] = r
	}
	return out
}
