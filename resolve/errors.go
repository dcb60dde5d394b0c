package resolve

import (
	"bytes"
	"fmt"
)

// badOptsFailure indicates Resolve was called with invalid arguments. It
// mirrors the teacher solver's badOptsFailure: a bare string type whose
// Error() is just itself, used only for argument validation, never for
// search-time failures.
type badOptsFailure string

func (e badOptsFailure) Error() string { return string(e) }

// VersionConflict is returned when the backtracking search exhausts every
// rewind target without finding a consistent assignment. Conflicts holds
// the last conflict recorded for each package name still in conflict when
// the search ended; a package whose conflict was cleared by a later
// successful activation is not listed.
type VersionConflict struct {
	Conflicts map[Name]*Conflict
}

func (e *VersionConflict) Error() string {
	if len(e.Conflicts) == 0 {
		return "resolve: no solution found"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "resolve: no solution found; unresolved conflicts on %d package(s):", len(e.Conflicts))
	for name, c := range e.Conflicts {
		fmt.Fprintf(&buf, "\n\t%s: wanted by %d source(s)", name, len(c.GroupedRequirements))
	}
	return buf.String()
}

// NoSuchDependency is raised by a SpecificationProvider (typically from
// DependenciesFor, guarded by its own AllowMissing check) when a referenced
// package cannot be located. The core enriches RequiredBy with the names of
// every activated package (plus the explicit source, if applicable) that
// currently depends on the missing package, before re-raising it (§4.8).
type NoSuchDependency struct {
	Requirement Requirement
	RequiredBy  []Name
}

func (e *NoSuchDependency) Error() string {
	if len(e.RequiredBy) == 0 {
		return fmt.Sprintf("resolve: no such dependency: %v", e.Requirement)
	}
	return fmt.Sprintf("resolve: no such dependency: %v (required by %v)", e.Requirement, e.RequiredBy)
}
