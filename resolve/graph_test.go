package resolve

import "testing"

func TestDependencyGraphRootAndChild(t *testing.T) {
	g := NewDependencyGraph()

	g.AddRootVertex("A", "reqA-1")
	g.AddRootVertex("A", "reqA-2")

	vtx, ok := g.VertexNamed("A")
	if !ok {
		t.Fatal("expected vertex A to exist")
	}
	if len(vtx.Explicit) != 2 {
		t.Fatalf("expected 2 explicit requirements on A, got %d", len(vtx.Explicit))
	}
	if vtx.HasPayload() {
		t.Fatal("root vertex should have no payload before activation")
	}

	g.AddChildVertex("B", []Name{"A"}, "reqB")
	b, ok := g.VertexNamed("B")
	if !ok {
		t.Fatal("expected vertex B to exist")
	}
	if len(b.Incoming) != 1 || b.Incoming[0].Origin != "A" {
		t.Fatalf("expected one incoming edge from A, got %+v", b.Incoming)
	}

	g.Activate("B", "B@1")
	if !b.HasPayload() {
		t.Fatal("expected B to be activated")
	}
}

func TestDependencyGraphActivatePanicsOnMissingVertex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic activating an unknown vertex")
		}
	}()
	NewDependencyGraph().Activate("ghost", "x")
}

func TestDependencyGraphSnapshotIsIndependent(t *testing.T) {
	g := NewDependencyGraph()
	g.AddRootVertex("A", "reqA")
	snap := g.Snapshot()

	snap.Activate("A", "A@1")

	orig, _ := g.VertexNamed("A")
	if orig.HasPayload() {
		t.Fatal("mutating a snapshot must not affect the graph it was taken from")
	}

	g.AddChildVertex("B", []Name{"A"}, "reqB")
	if _, ok := snap.VertexNamed("B"); ok {
		t.Fatal("mutating the original graph must not affect an earlier snapshot")
	}
}

func TestDependencyGraphFreezePanicsOnMutation(t *testing.T) {
	g := NewDependencyGraph()
	g.Freeze()
	if !g.Frozen() {
		t.Fatal("expected Frozen() to report true after Freeze")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic mutating a frozen graph")
		}
	}()
	g.AddRootVertex("A", "reqA")
}

func TestDependencyGraphVertexNamesSorted(t *testing.T) {
	g := NewDependencyGraph()
	g.AddRootVertex("zeta", "r")
	g.AddRootVertex("alpha", "r")
	g.AddRootVertex("mid", "r")

	names := g.VertexNames()
	want := []Name{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}
