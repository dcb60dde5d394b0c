// Package resolve implements the core of a generic dependency resolver: a
// backtracking search that, given a set of initial requirements and a
// SpecificationProvider supplying domain knowledge about packages, produces
// a locked DependencyGraph in which every activated package satisfies every
// requirement imposed on it.
//
// The package is domain-agnostic. It never inspects version strings, parses
// constraints, or performs I/O; all such knowledge is delegated to the
// SpecificationProvider and UI collaborators passed to Resolve. Callers
// wanting a concrete, version-aware resolver should look at the demo
// provider in this module's demo package, which wires the core up to
// semver-style constraints purely as an example.
package resolve
