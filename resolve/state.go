package resolve

// stateKind discriminates the two cases of ResolutionState described in
// spec §3: a choice point retaining every alternative, versus a derived
// state trialing exactly one of them.
type stateKind uint8

const (
	// dependencyKind is an un-committed choice point: Possibilities holds
	// every remaining candidate for Requirement, lowest-preference first.
	dependencyKind stateKind = iota
	// possibilityKind is derived from a dependencyKind state by popping one
	// possibility off of it; Possibilities holds exactly that one candidate.
	possibilityKind
)

// ResolutionState is a snapshot of the search frontier at one point: the
// partial graph, outstanding requirements, the requirement currently being
// worked on, its remaining candidate possibilities, and the conflicts
// accumulated so far.
//
// A DependencyState (Kind == dependencyKind) owns the graph snapshot taken
// when it was constructed; nothing else on the stack may mutate it. A
// PossibilityState (Kind == possibilityKind) is derived from a
// DependencyState by popPossibility, which takes its own fresh snapshot of
// the parent's graph: trialing a candidate may activate it in place
// (mutating the PossibilityState's graph directly, per §4.7), and that must
// never be visible to the parent's remaining alternatives if the trial is
// later discarded on failure.
type ResolutionState struct {
	Kind stateKind

	// Name is the package name under consideration; empty when Requirement
	// is absent (nothing left to do).
	Name Name

	// Requirements is the ordered queue of still-pending requirements,
	// beyond the one currently being worked.
	Requirements []Requirement

	// Graph is the activated-graph snapshot at this choice point.
	Graph *DependencyGraph

	// Requirement is the requirement currently being worked on.
	Requirement    Requirement
	HasRequirement bool

	// Possibilities holds the ordered candidates for Requirement,
	// lowest-preference first: the last element is the next one to try.
	Possibilities []Possibility

	// Depth is the logical search depth, used only for UI indentation.
	Depth int

	// Conflicts maps package name to the most recently recorded Conflict
	// for that name.
	Conflicts map[Name]*Conflict
}

func (s *ResolutionState) isDependencyState() bool {
	return s.Kind == dependencyKind
}

// possibility returns the current trial candidate without removing it:
// the last element of Possibilities.
func (s *ResolutionState) possibility() (Possibility, bool) {
	if len(s.Possibilities) == 0 {
		return nil, false
	}
	return s.Possibilities[len(s.Possibilities)-1], true
}

// popPossibility splits a DependencyState into a derived PossibilityState:
// it removes the last possibility from s (the receiver keeps every other
// alternative) and returns a new state holding only that one candidate. It
// reports false, changing nothing, if s had no possibilities left.
//
// The derived state gets its own graph snapshot rather than sharing s's: a
// trial that succeeds activates a possibility by mutating its state's graph
// in place (§4.7), and per §3/§5 each state owns an independent snapshot so
// that mutation can never reach back into s's remaining alternatives.
func (s *ResolutionState) popPossibility() (*ResolutionState, bool) {
	if len(s.Possibilities) == 0 {
		return nil, false
	}
	last := s.Possibilities[len(s.Possibilities)-1]
	s.Possibilities = s.Possibilities[:len(s.Possibilities)-1]

	derived := *s
	derived.Kind = possibilityKind
	derived.Possibilities = []Possibility{last}
	derived.Graph = s.Graph.Snapshot()
	derived.Conflicts = snapshotConflicts(s.Conflicts)
	return &derived, true
}
