package topics

import "testing"

func TestFind(t *testing.T) {
	topic, ok := Find("waves")
	if !ok {
		t.Fatal("expected to find topic 'waves'")
	}
	if topic.Name != "Sóng ánh sáng" {
		t.Errorf("Name = %q, want %q", topic.Name, "Sóng ánh sáng")
	}
	if topic.Grade != 12 {
		t.Errorf("Grade = %d, want 12", topic.Grade)
	}

	if _, ok := Find("chemistry"); ok {
		t.Error("expected Find to miss for an unknown ID")
	}
}

func TestNextCyclesCatalog(t *testing.T) {
	first := Next(nil)
	if first.ID != Catalog[0].ID {
		t.Errorf("Next(nil) = %q, want %q", first.ID, Catalog[0].ID)
	}

	seen := map[string]bool{}
	cur := &first
	for range Catalog {
		seen[cur.ID] = true
		n := Next(cur)
		cur = &n
	}
	if len(seen) != len(Catalog) {
		t.Errorf("cycle visited %d topics, want %d", len(seen), len(Catalog))
	}
	if cur.ID != first.ID {
		t.Errorf("cycle did not wrap: ended at %q", cur.ID)
	}
}
