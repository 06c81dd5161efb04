package validate

import (
	"testing"

	"github.com/FellOffFuji/vmdlpoints/internal/model"
)

func vec(a, b, c float64) []float64 {
	return []float64{a, b, c}
}

func TestValidator_ValidityMatrix(t *testing.T) {
	tests := []struct {
		name   string
		record model.Attachment
		valid  bool
	}{
		{"complete", model.Attachment{Name: "a", Origin: vec(1, 2, 3), Angles: vec(0, 0, 0)}, true},
		{"complete with bone", model.Attachment{Name: "a", ParentBone: "spine", Origin: vec(1, 2, 3), Angles: vec(0, 0, 0)}, true},
		{"missing name", model.Attachment{Origin: vec(1, 2, 3), Angles: vec(0, 0, 0)}, false},
		{"missing origin", model.Attachment{Name: "a", Angles: vec(0, 0, 0)}, false},
		{"missing angles", model.Attachment{Name: "a", Origin: vec(1, 2, 3)}, false},
		{"short origin", model.Attachment{Name: "a", Origin: []float64{1, 2}, Angles: vec(0, 0, 0)}, false},
		{"long angles", model.Attachment{Name: "a", Origin: vec(1, 2, 3), Angles: []float64{0, 0, 0, 0}}, false},
	}

	v := NewValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept, _ := v.Apply([]model.Attachment{tt.record})
			if got := len(kept) == 1; got != tt.valid {
				t.Errorf("expected valid=%v, got kept=%d", tt.valid, len(kept))
			}
		})
	}
}

func TestValidator_DropsInvalidSilently(t *testing.T) {
	records := []model.Attachment{
		{Name: "good_00", Origin: vec(1, 2, 3), Angles: vec(0, 0, 0)},
		{Name: "half", Origin: vec(1, 2, 3)}, // no angles
		{Name: "good_01", Origin: vec(4, 5, 6), Angles: vec(0, 0, 0)},
	}

	kept, outcome := NewValidator(nil).Apply(records)
	if outcome != model.OutcomeOK {
		t.Fatalf("expected OK outcome, got %s", outcome)
	}
	if len(kept) != 2 {
		t.Fatalf("expected 2 records, got %d", len(kept))
	}
	if kept[0].Name != "good_00" || kept[1].Name != "good_01" {
		t.Errorf("unexpected records kept: %v", kept)
	}
}

func TestValidator_FilterCorrectness(t *testing.T) {
	records := []model.Attachment{
		{Name: "far_00", Origin: vec(1, 2, 3), Angles: vec(0, 0, 0)},
		{Name: "foo", Origin: vec(4, 5, 6), Angles: vec(0, 0, 0)},
		{Name: "near_01", Origin: vec(7, 8, 9), Angles: vec(0, 0, 0)},
	}

	kept, outcome := NewValidator(WeaponPointNames()).Apply(records)
	if outcome != model.OutcomeOK {
		t.Fatalf("expected OK outcome, got %s", outcome)
	}
	if len(kept) != 2 {
		t.Fatalf("expected 2 records after filter, got %d", len(kept))
	}

	// Document order is preserved through the filter
	if kept[0].Name != "far_00" || kept[1].Name != "near_01" {
		t.Errorf("unexpected filter result: %q, %q", kept[0].Name, kept[1].Name)
	}
}

func TestValidator_Outcomes(t *testing.T) {
	valid := model.Attachment{Name: "custom_point", Origin: vec(1, 2, 3), Angles: vec(0, 0, 0)}
	invalid := model.Attachment{Name: "incomplete"}

	t.Run("no attachments at all", func(t *testing.T) {
		_, outcome := NewValidator(nil).Apply(nil)
		if outcome != model.OutcomeNoAttachments {
			t.Errorf("expected no_attachments, got %s", outcome)
		}
	})

	t.Run("only invalid records", func(t *testing.T) {
		_, outcome := NewValidator(nil).Apply([]model.Attachment{invalid})
		if outcome != model.OutcomeNoAttachments {
			t.Errorf("expected no_attachments, got %s", outcome)
		}
	})

	t.Run("valid records but none match filter", func(t *testing.T) {
		// Distinct from no_attachments so the user gets an accurate message.
		_, outcome := NewValidator(WeaponPointNames()).Apply([]model.Attachment{valid})
		if outcome != model.OutcomeNoMatchesAfterFilter {
			t.Errorf("expected no_matches_after_filter, got %s", outcome)
		}
	})

	t.Run("invalid records with active filter", func(t *testing.T) {
		// Nothing survived validation, so the filter never applied.
		_, outcome := NewValidator(WeaponPointNames()).Apply([]model.Attachment{invalid})
		if outcome != model.OutcomeNoAttachments {
			t.Errorf("expected no_attachments, got %s", outcome)
		}
	})
}

func TestWeaponPointNames(t *testing.T) {
	names := WeaponPointNames()
	if len(names) != 9 {
		t.Fatalf("expected 9 names, got %d", len(names))
	}

	want := map[string]bool{
		"far_00": true, "far_01": true, "far_02": true,
		"near_00": true, "near_01": true, "near_02": true,
		"gunaim_00": true, "gunaim_01": true, "gunaim_02": true,
	}
	for _, name := range names {
		if !want[name] {
			t.Errorf("unexpected name %q", name)
		}
		delete(want, name)
	}
	if len(want) != 0 {
		t.Errorf("missing names: %v", want)
	}
}

func TestAllowListForMode(t *testing.T) {
	if allowed, err := AllowListForMode(model.FilterAll); err != nil || allowed != nil {
		t.Errorf("all mode: expected nil list, got %v, %v", allowed, err)
	}
	if allowed, err := AllowListForMode(model.FilterWeaponPoints); err != nil || len(allowed) != 9 {
		t.Errorf("weapon-points mode: expected 9 names, got %v, %v", allowed, err)
	}
	if _, err := AllowListForMode("bogus"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
