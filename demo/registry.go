// Package demo is a small example SpecificationProvider, grounded on the
// teacher's own example wiring (gps ships an example.go/cmd/dep pairing its
// solver to a real SourceManager): an in-memory package registry plus
// semver-based constraint matching, so that package resolve has at least one
// runnable caller.
//
// None of this lives in package resolve itself: constraint syntax, registry
// storage, and naming conventions are exactly the kind of domain knowledge
// the core delegates to a SpecificationProvider (spec §1/§6).
package demo

import "github.com/Masterminds/semver"

// Requirement is this provider's concrete Requirement value: a constraint on
// a single named package. Optional marks a requirement whose package may be
// entirely absent from the Registry: when a version introduces such a
// requirement, Provider.DependenciesFor leaves it out (see
// Provider.AllowMissing). A requested (top-level) Optional requirement whose
// package is absent has no candidates and ends in a *resolve.VersionConflict.
type Requirement struct {
	Package    string
	Constraint string
	Optional   bool
}

// Possibility is this provider's concrete Possibility value: one specific
// version of a named package.
type Possibility struct {
	Package string
	Version string
}

// Registry is an in-memory package index: for each package name, the
// versions available and the requirements each version introduces once
// activated.
type Registry map[string][]RegistryEntry

// RegistryEntry is one version of one package, together with the
// requirements it introduces. Entries for a package should be listed in
// ascending version order; Provider.SearchFor returns them unchanged, and
// the core trials from the end of that list first (spec §5 ordering
// guarantee), so the last entry here is this provider's "most preferred"
// candidate.
type RegistryEntry struct {
	Version      string
	Dependencies []Requirement
}

func (e RegistryEntry) possibility(pkg string) Possibility {
	return Possibility{Package: pkg, Version: e.Version}
}

// constraints parses req.Constraint. An empty constraint matches any
// version.
func (r Requirement) constraints() (*semver.Constraints, error) {
	if r.Constraint == "" {
		return semver.NewConstraint("*")
	}
	return semver.NewConstraint(r.Constraint)
}
