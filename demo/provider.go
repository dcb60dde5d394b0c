package demo

import (
	"sort"

	"github.com/Masterminds/semver"

	"github.com/solvecorp/resolve/resolve"
)

// Reserved source names, distinct from any package name a registry could
// plausibly contain, per spec §6's name_for_explicit/locking_dependency_source.
const (
	ExplicitSource resolve.Name = "$explicit"
	LockingSource  resolve.Name = "$locked"
)

// Provider is a SpecificationProvider backed by an in-memory Registry and
// Masterminds/semver constraint matching.
type Provider struct {
	Registry Registry
}

// NewProvider returns a Provider backed by reg. reg is not copied; callers
// must not mutate it for the lifetime of a resolution.
func NewProvider(reg Registry) *Provider {
	return &Provider{Registry: reg}
}

// SearchFor returns every registry entry for req's package that the
// constraint admits, oldest first (so the core, which trials from the end
// of the list, tries the newest matching version first).
func (p *Provider) SearchFor(requirement resolve.Requirement) ([]resolve.Possibility, error) {
	req := requirement.(Requirement)

	entries, ok := p.Registry[req.Package]
	if !ok {
		if req.Optional {
			return nil, nil
		}
		return nil, &resolve.NoSuchDependency{Requirement: requirement}
	}

	cons, err := req.constraints()
	if err != nil {
		return nil, err
	}

	var out []resolve.Possibility
	for _, e := range entries {
		v, err := semver.NewVersion(e.Version)
		if err != nil {
			return nil, err
		}
		if cons.Check(v) {
			out = append(out, e.possibility(req.Package))
		}
	}
	return out, nil
}

// DependenciesFor returns the nested requirements recorded against p's
// registry entry, leaving out any requirement whose package is absent from
// the registry when AllowMissing tolerates it.
func (p *Provider) DependenciesFor(poss resolve.Possibility) ([]resolve.Requirement, error) {
	possibility := poss.(Possibility)

	for _, e := range p.Registry[possibility.Package] {
		if e.Version == possibility.Version {
			out := make([]resolve.Requirement, 0, len(e.Dependencies))
			for _, d := range e.Dependencies {
				if _, ok := p.Registry[d.Package]; !ok && p.AllowMissing(d) {
					continue
				}
				out = append(out, d)
			}
			return out, nil
		}
	}
	return nil, &resolve.NoSuchDependency{Requirement: possibility}
}

// IsSatisfiedBy reports whether candidate's version falls within
// requirement's constraint. Per spec §4.2, requirement may also be a
// Possibility drawn from a locked base graph and reused as a synthetic
// requirement; in that case satisfaction means exact package+version
// equality, since a locked spec must be reproduced verbatim.
func (p *Provider) IsSatisfiedBy(requirement any, _ *resolve.DependencyGraph, candidate resolve.Possibility) bool {
	cand := candidate.(Possibility)

	switch req := requirement.(type) {
	case Requirement:
		cons, err := req.constraints()
		if err != nil {
			return false
		}
		v, err := semver.NewVersion(cand.Version)
		if err != nil {
			return false
		}
		return cons.Check(v)
	case Possibility:
		return req == cand
	default:
		return false
	}
}

// NameFor returns the package name a Requirement or Possibility refers to.
func (p *Provider) NameFor(x any) resolve.Name {
	switch v := x.(type) {
	case Requirement:
		return resolve.Name(v.Package)
	case Possibility:
		return resolve.Name(v.Package)
	default:
		return ""
	}
}

func (p *Provider) NameForExplicitDependencySource() resolve.Name { return ExplicitSource }
func (p *Provider) NameForLockingDependencySource() resolve.Name  { return LockingSource }

// AllowMissing reports whether a requirement whose package is absent from
// the registry entirely should be tolerated rather than treated as a
// NoSuchDependency.
func (p *Provider) AllowMissing(requirement resolve.Requirement) bool {
	req, ok := requirement.(Requirement)
	return ok && req.Optional
}

// SortDependencies orders reqs so that the package with the fewest
// candidate versions in the registry comes first — all else equal, the most
// constrained requirement is the one most worth resolving next, since it is
// the most likely to conflict and the cheapest to search. Ties break on
// package name for determinism.
func (p *Provider) SortDependencies(reqs []resolve.Requirement, _ *resolve.DependencyGraph, _ map[resolve.Name]*resolve.Conflict) []resolve.Requirement {
	out := append([]resolve.Requirement(nil), reqs...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].(Requirement), out[j].(Requirement)
		ci, cj := len(p.Registry[ri.Package]), len(p.Registry[rj.Package])
		if ci != cj {
			return ci < cj
		}
		return ri.Package < rj.Package
	})
	return out
}
