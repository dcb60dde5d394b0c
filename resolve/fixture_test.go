package resolve

import "time"

// tReq and tPoss are the fixture Requirement/Possibility values used across
// this package's tests: plain comparable structs so that the core's value
// equality and map-keying assumptions (§3) hold without a real domain.
type tReq struct {
	Pkg      string
	Min, Max int // inclusive version range; zero Max means unbounded
	Optional bool
}

type tPoss struct {
	Pkg string
	Ver int
}

func (r tReq) admits(v int) bool {
	if v < r.Min {
		return false
	}
	if r.Max != 0 && v > r.Max {
		return false
	}
	return true
}

// fixtureProvider is a SpecificationProvider over a small in-memory table,
// built fresh per test. registry lists candidates oldest-to-newest per
// package (the core trials from the end of the list first); deps maps a
// specific (pkg, ver) to the requirements it introduces.
type fixtureProvider struct {
	registry map[string][]int
	deps     map[tPoss][]tReq
}

func newFixtureProvider() *fixtureProvider {
	return &fixtureProvider{registry: map[string][]int{}, deps: map[tPoss][]tReq{}}
}

func (p *fixtureProvider) SearchFor(requirement Requirement) ([]Possibility, error) {
	req := requirement.(tReq)
	vers, ok := p.registry[req.Pkg]
	if !ok {
		if req.Optional {
			return nil, nil
		}
		return nil, &NoSuchDependency{Requirement: requirement}
	}
	var out []Possibility
	for _, v := range vers {
		if req.admits(v) {
			out = append(out, tPoss{Pkg: req.Pkg, Ver: v})
		}
	}
	return out, nil
}

// DependenciesFor leaves out any requirement whose package is absent from
// the registry when AllowMissing tolerates it.
func (p *fixtureProvider) DependenciesFor(poss Possibility) ([]Requirement, error) {
	t := poss.(tPoss)
	reqs := p.deps[t]
	out := make([]Requirement, 0, len(reqs))
	for _, r := range reqs {
		if _, ok := p.registry[r.Pkg]; !ok && p.AllowMissing(r) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (p *fixtureProvider) IsSatisfiedBy(requirement any, _ *DependencyGraph, candidate Possibility) bool {
	cand := candidate.(tPoss)
	switch r := requirement.(type) {
	case tReq:
		return r.Pkg == cand.Pkg && r.admits(cand.Ver)
	case tPoss:
		return r == cand
	default:
		return false
	}
}

func (p *fixtureProvider) NameFor(x any) Name {
	switch v := x.(type) {
	case tReq:
		return Name(v.Pkg)
	case tPoss:
		return Name(v.Pkg)
	default:
		return ""
	}
}

func (p *fixtureProvider) NameForExplicitDependencySource() Name { return "$explicit" }
func (p *fixtureProvider) NameForLockingDependencySource() Name  { return "$locked" }

// SortDependencies is the identity: fixtures list requested/pending
// requirements in the order each scenario wants them processed.
func (p *fixtureProvider) SortDependencies(reqs []Requirement, _ *DependencyGraph, _ map[Name]*Conflict) []Requirement {
	return reqs
}

func (p *fixtureProvider) AllowMissing(requirement Requirement) bool {
	r, ok := requirement.(tReq)
	return ok && r.Optional
}

// fixtureUI records every debug line and otherwise does nothing; its
// progress rate is long enough that fast tests never trip IndicateProgress.
type fixtureUI struct {
	debugLines []string
}

func (u *fixtureUI) BeforeResolution() {}
func (u *fixtureUI) AfterResolution()  {}
func (u *fixtureUI) IndicateProgress() {}
func (u *fixtureUI) Debug(_ int, thunk func() string) {
	u.debugLines = append(u.debugLines, thunk())
}
func (u *fixtureUI) ProgressRate() time.Duration { return time.Hour }
