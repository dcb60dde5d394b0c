package resolve

import "time"

// SpecificationProvider supplies all domain knowledge the core lacks:
// search, satisfaction checks, dependency extraction, naming, sort order,
// and the reserved source names used in conflict reports. The core treats
// an implementation as a black box; see spec §6.
type SpecificationProvider interface {
	// SearchFor returns the ordered candidates that may satisfy r, highest
	// preference last (the core trials from the end of the list). It may
	// return a *NoSuchDependency error, which the core enriches before
	// propagating it.
	SearchFor(r Requirement) ([]Possibility, error)

	// DependenciesFor returns the nested requirements a possibility
	// introduces once activated. It may return a *NoSuchDependency error.
	DependenciesFor(p Possibility) ([]Requirement, error)

	// IsSatisfiedBy reports whether candidate would satisfy requirement,
	// given the current state of activated. requirement is usually a
	// Requirement, but per spec §4.2 it may also be a Possibility drawn
	// from a locked graph and reused as a synthetic requirement.
	IsSatisfiedBy(requirement any, activated *DependencyGraph, candidate Possibility) bool

	// NameFor returns the package name a requirement or possibility refers
	// to. Implementations must never return an empty string; doing so is a
	// contract violation the core is entitled to treat as undefined
	// behavior (spec §7).
	NameFor(x any) Name

	// NameForExplicitDependencySource returns the reserved source name used
	// to attribute top-level requested requirements in a Conflict.
	NameForExplicitDependencySource() Name

	// NameForLockingDependencySource returns the reserved source name used
	// to attribute a requirement synthesized from a base (locked) payload.
	NameForLockingDependencySource() Name

	// SortDependencies returns reqs reordered so that the most-preferred
	// requirement to resolve next is first. Must be stable and
	// deterministic for a given (reqs, activated, conflicts) triple.
	SortDependencies(reqs []Requirement, activated *DependencyGraph, conflicts map[Name]*Conflict) []Requirement

	// AllowMissing reports whether a missing dependency referenced by r
	// should be tolerated. The core never calls this directly; it exists so
	// a provider's own DependenciesFor can decide whether to raise
	// *NoSuchDependency.
	AllowMissing(r Requirement) bool
}

// UI receives progress and debug notifications from a running resolution.
// See spec §6.
type UI interface {
	// BeforeResolution and AfterResolution bracket a resolve() call.
	// AfterResolution is guaranteed to run on every exit path, including
	// ones caused by a returned error.
	BeforeResolution()
	AfterResolution()

	// IndicateProgress is called at most once per ProgressRate-implied
	// iteration interval, after the first ProgressRate seconds of wall
	// time have elapsed.
	IndicateProgress()

	// Debug receives a lazy message producer at depth; the UI decides
	// whether to evaluate thunk at all.
	Debug(depth int, thunk func() string)

	// ProgressRate reports how long to wait, in wall-clock time, before
	// latching the iteration rate used to throttle IndicateProgress.
	ProgressRate() time.Duration
}
