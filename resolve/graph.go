package resolve

import "github.com/armon/go-radix"

// Edge is an incoming dependency edge on some vertex: the vertex named
// Origin was activated and, in doing so, introduced Requirements on the
// vertex this edge belongs to.
type Edge struct {
	Origin       Name
	Requirements []Requirement
}

// Vertex is a node in a DependencyGraph: a named package, together with
// whatever explicit (root) requirements were declared against it, the
// incoming edges that carry requirements contributed by already-activated
// parents, and the payload chosen to satisfy all of the above, if any.
type Vertex struct {
	Name       Name
	Payload    Possibility
	hasPayload bool
	Explicit   []Requirement
	Incoming   []Edge
}

// HasPayload reports whether the vertex has been activated.
func (v *Vertex) HasPayload() bool {
	return v != nil && v.hasPayload
}

// DependencyGraph tracks activated packages, their payloads, and the
// parent -> child edges carrying the requirements responsible for each
// child's presence. It is the collaborator described in spec §3/§4.1: a
// passive structure that the resolution state machine mutates and snapshots
// as it searches.
//
// Vertices live in an arena (verts) and are addressed by a radix index
// keyed on vertex name, so that VertexNames (and therefore any caller that
// needs to iterate the whole graph, e.g. to build a deterministic conflict
// report) always produces a lexicographically stable order.
type DependencyGraph struct {
	idx    *radix.Tree
	verts  []*Vertex
	frozen bool
}

// NewDependencyGraph returns an empty, mutable graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{idx: radix.New()}
}

func (g *DependencyGraph) mustBeMutable() {
	if g.frozen {
		panic("resolve: attempted to mutate a frozen DependencyGraph")
	}
}

// VertexNamed looks up a vertex by name. The returned *Vertex aliases graph
// state and must not be mutated directly by callers outside this package.
func (g *DependencyGraph) VertexNamed(name Name) (*Vertex, bool) {
	v, ok := g.idx.Get(string(name))
	if !ok {
		return nil, false
	}
	return g.verts[v.(int)], true
}

func (g *DependencyGraph) vertexOrCreate(name Name) *Vertex {
	if v, ok := g.VertexNamed(name); ok {
		return v
	}
	vtx := &Vertex{Name: name}
	g.verts = append(g.verts, vtx)
	g.idx.Insert(string(name), len(g.verts)-1)
	return vtx
}

// AddRootVertex adds (or reuses) a root vertex for name and appends req to
// its explicit-requirements list. Calling this more than once for the same
// name accumulates explicit requirements on a single shared vertex, in
// call order.
func (g *DependencyGraph) AddRootVertex(name Name, req Requirement) *Vertex {
	g.mustBeMutable()
	vtx := g.vertexOrCreate(name)
	vtx.Explicit = append(vtx.Explicit, req)
	return vtx
}

// AddChildVertex adds (or reuses) a vertex for name and, for each listed
// parent, appends a new incoming edge from that parent carrying req. It is
// idempotent on name: re-adding never replaces the vertex, only grows its
// incoming edge list.
func (g *DependencyGraph) AddChildVertex(name Name, parents []Name, req Requirement) *Vertex {
	g.mustBeMutable()
	vtx := g.vertexOrCreate(name)
	for _, p := range parents {
		vtx.Incoming = append(vtx.Incoming, Edge{Origin: p, Requirements: []Requirement{req}})
	}
	return vtx
}

// Activate sets the payload of the vertex named name. It panics if no such
// vertex exists; the resolution protocol is expected to have added the
// vertex (as a root or a child) before ever trying to activate it.
func (g *DependencyGraph) Activate(name Name, payload Possibility) {
	g.mustBeMutable()
	vtx, ok := g.VertexNamed(name)
	if !ok {
		panic("resolve: Activate called for a vertex that was never added: " + string(name))
	}
	vtx.Payload = payload
	vtx.hasPayload = true
}

// Snapshot produces a deep copy of g: a new arena and index, with every
// vertex's slices (Explicit, Incoming, and each Edge's Requirements) copied
// so that mutating the result can never reach back into g. Each resolution
// state owns exactly one such snapshot.
func (g *DependencyGraph) Snapshot() *DependencyGraph {
	cp := &DependencyGraph{idx: radix.New(), verts: make([]*Vertex, len(g.verts))}
	for i, v := range g.verts {
		nv := &Vertex{
			Name:       v.Name,
			Payload:    v.Payload,
			hasPayload: v.hasPayload,
		}
		if v.Explicit != nil {
			nv.Explicit = append([]Requirement(nil), v.Explicit...)
		}
		if v.Incoming != nil {
			nv.Incoming = make([]Edge, len(v.Incoming))
			for j, e := range v.Incoming {
				nv.Incoming[j] = Edge{
					Origin:       e.Origin,
					Requirements: append([]Requirement(nil), e.Requirements...),
				}
			}
		}
		cp.verts[i] = nv
	}
	g.idx.Walk(func(s string, val interface{}) bool {
		cp.idx.Insert(s, val)
		return false
	})
	return cp
}

// Freeze makes any subsequent mutation of g panic. It is idempotent and is
// applied exactly once, to the graph Resolve ultimately returns.
func (g *DependencyGraph) Freeze() {
	g.frozen = true
}

// Frozen reports whether Freeze has been called.
func (g *DependencyGraph) Frozen() bool {
	return g.frozen
}

// VertexNames returns every vertex name currently in the graph, in
// lexicographic order.
func (g *DependencyGraph) VertexNames() []Name {
	names := make([]Name, 0, len(g.verts))
	g.idx.Walk(func(s string, _ interface{}) bool {
		names = append(names, Name(s))
		return false
	})
	return names
}

// Len reports the number of vertices in the graph.
func (g *DependencyGraph) Len() int {
	return len(g.verts)
}
