package validate

import (
	"fmt"

	"github.com/FellOffFuji/vmdlpoints/internal/model"
)

// Validator keeps well-formed, optionally name-filtered attachment records
type Validator struct {
	allowed map[string]bool // nil when no filter is active
}

// NewValidator creates a validator. A nil or empty allow-list means no
// filtering: every valid record is kept.
func NewValidator(allowed []string) *Validator {
	v := &Validator{}
	if len(allowed) > 0 {
		v.allowed = make(map[string]bool, len(allowed))
		for _, name := range allowed {
			v.allowed[name] = true
		}
	}
	return v
}

// Filtering reports whether an allow-list is active
func (v *Validator) Filtering() bool {
	return v.allowed != nil
}

// Apply drops invalid records, then applies the allow-list if one is active.
// Document order is preserved. The outcome distinguishes "nothing valid in
// the document" from "valid records exist but none passed the filter".
func (v *Validator) Apply(records []model.Attachment) ([]model.Attachment, model.Outcome) {
	valid := make([]model.Attachment, 0, len(records))
	for _, r := range records {
		if r.Valid() {
			valid = append(valid, r)
		}
	}
	if len(valid) == 0 {
		return nil, model.OutcomeNoAttachments
	}

	if v.allowed == nil {
		return valid, model.OutcomeOK
	}

	kept := make([]model.Attachment, 0, len(valid))
	for _, r := range valid {
		if v.allowed[r.Name] {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil, model.OutcomeNoMatchesAfterFilter
	}
	return kept, model.OutcomeOK
}

// weaponPointPrefixes are the three attachment families that make up the
// weapon aim point set.
var weaponPointPrefixes = []string{"far", "near", "gunaim"}

// WeaponPointNames returns the fixed allow-list of weapon aim point names:
// far_00..far_02, near_00..near_02, gunaim_00..gunaim_02.
func WeaponPointNames() []string {
	names := make([]string, 0, len(weaponPointPrefixes)*3)
	for _, prefix := range weaponPointPrefixes {
		for i := 0; i < 3; i++ {
			names = append(names, fmt.Sprintf("%s_%02d", prefix, i))
		}
	}
	return names
}

// AllowListForMode maps a filter mode onto its allow-list (nil = keep all)
func AllowListForMode(mode model.FilterMode) ([]string, error) {
	switch mode {
	case model.FilterAll, "":
		return nil, nil
	case model.FilterWeaponPoints:
		return WeaponPointNames(), nil
	default:
		return nil, fmt.Errorf("unknown filter mode: %q", mode)
	}
}
