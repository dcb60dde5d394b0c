package resolve

import "testing"

func TestBuildConflictGroupsBySource(t *testing.T) {
	g := NewDependencyGraph()
	g.AddRootVertex("B", "reqB-explicit")
	g.AddChildVertex("B", []Name{"A"}, "reqB-from-A")
	g.AddChildVertex("B", []Name{"C"}, "reqB-from-C")
	g.Activate("B", "B@2")

	c := buildConflict(g, "B", "reqB-from-C", "B@9", true, "$explicit", "$locked", "B@1", true)

	if len(c.GroupedRequirements) != 4 {
		t.Fatalf("expected 4 buckets, got %d: %+v", len(c.GroupedRequirements), c.GroupedRequirements)
	}
	if got := c.GroupedRequirements["$explicit"]; len(got) != 1 || got[0] != "reqB-explicit" {
		t.Fatalf("unexpected explicit bucket: %v", got)
	}
	if got := c.GroupedRequirements["$locked"]; len(got) != 1 || got[0] != "B@1" {
		t.Fatalf("unexpected locked bucket: %v", got)
	}
	if got := c.GroupedRequirements["A"]; len(got) != 1 || got[0] != "reqB-from-A" {
		t.Fatalf("unexpected A bucket: %v", got)
	}
	if got := c.GroupedRequirements["C"]; len(got) != 1 || got[0] != "reqB-from-C" {
		t.Fatalf("unexpected C bucket: %v", got)
	}
	if !c.HasExisting {
		t.Fatal("expected Existing to be populated from the vertex payload")
	}
}

func TestBuildConflictElidesEmptyBuckets(t *testing.T) {
	g := NewDependencyGraph()
	g.AddRootVertex("B", "req")

	c := buildConflict(g, "B", "req", nil, false, "$explicit", "$locked", nil, false)

	if _, ok := c.GroupedRequirements["$locked"]; ok {
		t.Fatal("expected no locked bucket when nothing is locked")
	}
	if c.HasExisting {
		t.Fatal("expected HasExisting false for an unpayloaded vertex")
	}
	if c.HasPossibility {
		t.Fatal("expected HasPossibility false when no candidate was supplied")
	}
}

func TestBuildConflictOnAbsentVertex(t *testing.T) {
	g := NewDependencyGraph()
	c := buildConflict(g, "ghost", "req", nil, false, "$explicit", "$locked", nil, false)
	if len(c.GroupedRequirements) != 0 {
		t.Fatalf("expected no buckets for a vertex that was never added, got %v", c.GroupedRequirements)
	}
}
