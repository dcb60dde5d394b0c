package resolve

// Conflict records why an attempted activation for a package failed. It
// attributes every requirement that bears on the package to the name of
// whatever contributed it: the two reserved source names (explicit
// top-level requirements, and the locking requirement from base), or the
// name of some other already-activated package.
type Conflict struct {
	// Requirement is the requirement that could not be satisfied.
	Requirement Requirement

	// GroupedRequirements maps source name to the ordered requirements that
	// source contributed. Buckets that would otherwise be empty are
	// omitted.
	GroupedRequirements map[Name][]Requirement

	// Existing is the payload already activated for this package, if any.
	Existing    Possibility
	HasExisting bool

	// Possibility is the candidate that was being tried when the conflict
	// arose. Absent when the conflict was raised because no possibility was
	// left to try at all.
	Possibility    Possibility
	HasPossibility bool
}

// buildConflict assembles a Conflict for the vertex named name within g,
// per spec §4.5. lockedPayload/hasLocked describe the payload (if any) that
// base has locked for name; explicitSource/lockingSource are the two
// reserved bucket keys the provider supplies.
func buildConflict(
	g *DependencyGraph,
	name Name,
	requirement Requirement,
	possibility Possibility,
	hasPossibility bool,
	explicitSource, lockingSource Name,
	lockedPayload Possibility,
	hasLocked bool,
) *Conflict {
	vtx, _ := g.VertexNamed(name)

	c := &Conflict{
		Requirement:         requirement,
		GroupedRequirements: make(map[Name][]Requirement),
		Possibility:         possibility,
		HasPossibility:      hasPossibility,
	}

	if vtx.HasPayload() {
		c.Existing = vtx.Payload
		c.HasExisting = true
	}

	var explicit []Requirement
	var incoming []Edge
	if vtx != nil {
		explicit = vtx.Explicit
		incoming = vtx.Incoming
	}

	if len(explicit) > 0 {
		c.GroupedRequirements[explicitSource] = append([]Requirement(nil), explicit...)
	}
	if hasLocked {
		c.GroupedRequirements[lockingSource] = []Requirement{lockedPayload}
	}

	// Each incoming edge's requirements are prepended to the bucket for its
	// origin, so requirements from later-added edges end up ahead of
	// earlier ones in that origin's bucket.
	for _, e := range incoming {
		if len(e.Requirements) == 0 {
			continue
		}
		existing := c.GroupedRequirements[e.Origin]
		merged := make([]Requirement, 0, len(e.Requirements)+len(existing))
		merged = append(merged, e.Requirements...)
		merged = append(merged, existing...)
		c.GroupedRequirements[e.Origin] = merged
	}

	for k, v := range c.GroupedRequirements {
		if len(v) == 0 {
			delete(c.GroupedRequirements, k)
		}
	}

	return c
}

func snapshotConflicts(c map[Name]*Conflict) map[Name]*Conflict {
	cp := make(map[Name]*Conflict, len(c))
	for k, v := range c {
		cp[k] = v
	}
	return cp
}
