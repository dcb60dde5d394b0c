package resolve

import "time"

// Resolve runs the backtracking search described in spec §4 to completion.
//
// provider and ui must be non-nil. base may be nil, in which case it is
// treated as an empty (unlocked) graph. requested may be empty, in which
// case Resolve returns an empty frozen graph without ever calling
// provider.SearchFor.
//
// On success it returns a frozen DependencyGraph in which every activated
// package satisfies every requirement imposed on it. On failure it returns
// either a *VersionConflict (the search was exhausted) or whatever error a
// SpecificationProvider call returned (enriched into *NoSuchDependency
// where applicable).
func Resolve(provider SpecificationProvider, ui UI, requested []Requirement, base *DependencyGraph) (*DependencyGraph, error) {
	if provider == nil {
		return nil, badOptsFailure("resolve: must provide a non-nil SpecificationProvider")
	}
	if ui == nil {
		return nil, badOptsFailure("resolve: must provide a non-nil UI")
	}
	if base == nil {
		base = NewDependencyGraph()
	}

	r := &resolver{provider: provider, ui: ui, base: base}

	ui.BeforeResolution()
	defer ui.AfterResolution()

	init, err := r.initialState(requested)
	if err != nil {
		return nil, err
	}
	stack := []*ResolutionState{init}

	start := time.Now()
	var counter, iterationRate int
	var latched bool

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if !top.HasRequirement && len(top.Requirements) == 0 {
			break
		}

		counter++
		if !latched {
			if time.Since(start) >= ui.ProgressRate() {
				iterationRate = counter
				latched = true
			}
		} else if iterationRate > 0 && counter%iterationRate == 0 {
			ui.IndicateProgress()
		}

		if top.isDependencyState() {
			if derived, ok := top.popPossibility(); ok {
				stack = append(stack, derived)
			}
		}

		stack, err = r.step(stack)
		if err != nil {
			return nil, err
		}
	}

	final := stack[len(stack)-1].Graph
	final.Freeze()
	return final, nil
}

// resolver holds the collaborators needed across the driver loop and
// activation protocol. It is not itself part of the public API; Resolve is
// the only entry point.
type resolver struct {
	provider SpecificationProvider
	ui       UI
	base     *DependencyGraph
}

// initialState builds the first DependencyState, per spec §4.2.
func (r *resolver) initialState(requested []Requirement) (*ResolutionState, error) {
	g := NewDependencyGraph()
	for _, req := range requested {
		g.AddRootVertex(r.provider.NameFor(req), req)
	}

	sorted := r.provider.SortDependencies(append([]Requirement(nil), requested...), g, map[Name]*Conflict{})

	state := &ResolutionState{
		Kind:      dependencyKind,
		Graph:     g,
		Conflicts: map[Name]*Conflict{},
	}
	if len(sorted) == 0 {
		return state, nil
	}

	r0 := sorted[0]
	state.Requirements = append([]Requirement(nil), sorted[1:]...)
	state.Requirement = r0
	state.HasRequirement = true
	state.Name = r.provider.NameFor(r0)

	poss, err := r.searchFor(g, r0)
	if err != nil {
		return nil, err
	}
	state.Possibilities = poss
	return state, nil
}

// step runs the activation protocol (§4.4) on the current top of stack and
// returns the stack as it should be after this step: either grown by one
// (a successful activation or reuse) or truncated by an unwind.
func (r *resolver) step(stack []*ResolutionState) ([]*ResolutionState, error) {
	top := stack[len(stack)-1]

	poss, ok := top.possibility()
	if !ok {
		// No possibility left to try. By construction this can only happen
		// to a DependencyState: a PossibilityState always carries exactly
		// the one candidate it was derived with.
		r.conflict(top, nil, false)
		r.trace(top, func() string { return "exhausted possibilities for " + string(top.Name) })
		return r.unwind(stack, top.Name, top.Requirement)
	}

	name := top.Name
	activated := top.Graph
	vtx, exists := activated.VertexNamed(name)

	if exists && vtx.HasPayload() {
		if r.provider.IsSatisfiedBy(top.Requirement, activated, vtx.Payload) {
			next, err := r.reuse(top, activated)
			if err != nil {
				return nil, err
			}
			return append(stack, next), nil
		}
		r.conflict(top, poss, true)
		return r.unwind(stack, name, top.Requirement)
	}

	lockedPayload, hasLocked := r.lockedPayload(name)
	satisfiesReq := r.provider.IsSatisfiedBy(top.Requirement, activated, poss)
	satisfiesLock := !hasLocked || r.provider.IsSatisfiedBy(lockedPayload, activated, poss)

	if satisfiesReq && satisfiesLock {
		next, err := r.activate(top, activated, poss)
		if err != nil {
			return nil, err
		}
		r.trace(top, func() string { return "activate " + string(name) })
		return append(stack, next), nil
	}

	r.conflict(top, poss, true)
	return r.unwind(stack, name, top.Requirement)
}

func (r *resolver) lockedPayload(name Name) (Possibility, bool) {
	vtx, ok := r.base.VertexNamed(name)
	if !ok || !vtx.HasPayload() {
		return nil, false
	}
	return vtx.Payload, true
}

// conflict records a Conflict for the package the top state is currently
// working on (§4.5).
func (r *resolver) conflict(top *ResolutionState, poss Possibility, hasPoss bool) {
	lockedPayload, hasLocked := r.lockedPayload(top.Name)
	c := buildConflict(
		top.Graph, top.Name, top.Requirement, poss, hasPoss,
		r.provider.NameForExplicitDependencySource(),
		r.provider.NameForLockingDependencySource(),
		lockedPayload, hasLocked,
	)
	top.Conflicts[top.Name] = c
}

// activate commits to possibility for the package name, wires its nested
// dependencies into the graph, and pushes the next DependencyState (§4.7).
func (r *resolver) activate(top *ResolutionState, activated *DependencyGraph, possibility Possibility) (*ResolutionState, error) {
	name := top.Name

	nested, err := r.dependenciesFor(activated, possibility)
	if err != nil {
		return nil, err
	}

	activated.Activate(name, possibility)
	for _, dep := range nested {
		activated.AddChildVertex(r.provider.NameFor(dep), []Name{name}, dep)
	}
	delete(top.Conflicts, name)

	pending := append(append([]Requirement(nil), top.Requirements...), nested...)
	return r.pushNext(activated, pending, top.Conflicts, top.Depth)
}

// reuse advances past a requirement already satisfied by a previously
// activated spec, without introducing any new nested dependencies.
func (r *resolver) reuse(top *ResolutionState, activated *DependencyGraph) (*ResolutionState, error) {
	return r.pushNext(activated, top.Requirements, top.Conflicts, top.Depth)
}

// pushNext builds the DependencyState that covers whatever requirement is
// most preferred among pending, per spec §4.7.
func (r *resolver) pushNext(activated *DependencyGraph, pending []Requirement, conflicts map[Name]*Conflict, depth int) (*ResolutionState, error) {
	g := activated.Snapshot()
	sorted := r.provider.SortDependencies(pending, g, conflicts)

	next := &ResolutionState{
		Kind:      dependencyKind,
		Graph:     g,
		Depth:     depth,
		Conflicts: snapshotConflicts(conflicts),
	}
	if len(sorted) == 0 {
		return next, nil
	}

	nreq := sorted[0]
	next.Requirements = append([]Requirement(nil), sorted[1:]...)
	next.Requirement = nreq
	next.HasRequirement = true
	next.Name = r.provider.NameFor(nreq)

	poss, err := r.searchFor(g, nreq)
	if err != nil {
		return nil, err
	}
	next.Possibilities = poss
	return next, nil
}

// unwind computes the rewind target for a conflict on failedName/failedReq
// and truncates stack accordingly, per spec §4.6. It returns a
// *VersionConflict error if no target could be found.
func (r *resolver) unwind(stack []*ResolutionState, failedName Name, failedReq Requirement) ([]*ResolutionState, error) {
	finalConflicts := stack[len(stack)-1].Conflicts

	target := -1
	for i := len(stack) - 1; i >= 0; i-- {
		s := stack[i]

		vtx, ok := s.Graph.VertexNamed(failedName)
		if !ok {
			target = -1
			break
		}

		if s.Kind != dependencyKind {
			continue
		}
		// A DependencyState with nothing left to try can never be a
		// meaningful rewind target, even for its own failure: "rewind to
		// the deepest DependencyState that still has meaningful
		// alternatives" (§4.6) rules out a state whose possibilities are
		// already exhausted.
		if len(s.Possibilities) == 0 {
			continue
		}

		stillPending := s.HasRequirement && s.Requirement == failedReq
		inQueue := containsRequirement(s.Requirements, failedReq)

		if !vtx.HasPayload() || (!stillPending && !inQueue) {
			target = i
			break
		}
	}

	if target < 0 {
		return nil, &VersionConflict{Conflicts: finalConflicts}
	}

	// Per spec §4.6/§9: truncate to target+2 entries (the target plus its
	// successor PossibilityState, the one representing the failed trial),
	// then pop once more. Algebraically that is always stack[:target+1] —
	// keep everything up to and including the target itself, discarding
	// both the failed trial and anything pushed above it. Computing it as
	// a plain slice (rather than a clamped two-step truncate-then-pop)
	// matters when the target is the very state that just ran out of
	// possibilities: there it has no successor PossibilityState above it
	// at all, and a clamped "truncate then pop" would instead discard the
	// target itself, exposing whatever sits below it as the new top.
	stack = stack[:target+1]

	stack[len(stack)-1].Conflicts = finalConflicts
	return stack, nil
}

func containsRequirement(reqs []Requirement, req Requirement) bool {
	for _, r := range reqs {
		if r == req {
			return true
		}
	}
	return false
}

func (r *resolver) trace(top *ResolutionState, thunk func() string) {
	r.ui.Debug(top.Depth, thunk)
}

// searchFor and dependenciesFor route every call to the provider through a
// single point so that a *NoSuchDependency error can be enriched uniformly
// (§4.8), regardless of which provider method raised it.
func (r *resolver) searchFor(g *DependencyGraph, req Requirement) ([]Possibility, error) {
	poss, err := r.provider.SearchFor(req)
	if err != nil {
		return nil, r.enrich(err, g)
	}
	return poss, nil
}

func (r *resolver) dependenciesFor(g *DependencyGraph, p Possibility) ([]Requirement, error) {
	deps, err := r.provider.DependenciesFor(p)
	if err != nil {
		return nil, r.enrich(err, g)
	}
	return deps, nil
}

func (r *resolver) enrich(err error, g *DependencyGraph) error {
	nsd, ok := err.(*NoSuchDependency)
	if !ok {
		return err
	}

	name := r.provider.NameFor(nsd.Requirement)
	vtx, ok := g.VertexNamed(name)
	if !ok {
		return nsd
	}

	seen := make(map[Name]bool, len(vtx.Incoming))
	for _, e := range vtx.Incoming {
		if !seen[e.Origin] {
			seen[e.Origin] = true
			nsd.RequiredBy = append(nsd.RequiredBy, e.Origin)
		}
	}
	if len(vtx.Explicit) > 0 {
		nsd.RequiredBy = append(nsd.RequiredBy, r.provider.NameForExplicitDependencySource())
	}
	return nsd
}
