package tips

import "testing"

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("expected 6 tips, got %d", len(all))
	}

	expectedBadges := []string{
		"Basic planning",
		"Financial protection",
		"Efficiency",
		"Optimization",
		"Mindfulness",
		"Growth",
	}
	for i, tip := range all {
		if tip.Title == "" || tip.Body == "" || tip.Icon == "" {
			t.Errorf("tip %d is incomplete: %+v", i, tip)
		}
		if tip.Badge != expectedBadges[i] {
			t.Errorf("tip %d badge = %q, expected %q", i, tip.Badge, expectedBadges[i])
		}
	}

	all[0].Title = "changed"
	if All()[0].Title == "changed" {
		t.Error("All must return a copy")
	}
}
