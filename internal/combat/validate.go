package combat

import (
	"strings"

	"github.com/osse101/Skirmish_Go/internal/domain"
)

// ValidationResult is the outcome of ValidateEntity
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateEntity checks an entity against the combatant invariants.
// It is advisory: none of the resolvers call it.
func ValidateEntity(e domain.Entity) ValidationResult {
	errs := make([]string, 0)

	if strings.TrimSpace(e.Name) == "" {
		errs = append(errs, ErrTagName)
	}
	if e.MaxHP <= 0 {
		errs = append(errs, ErrTagMaxHP)
	}
	if e.HP < 0 || e.HP > e.MaxHP {
		errs = append(errs, ErrTagHP)
	}
	if e.Armor < 0 {
		errs = append(errs, ErrTagArmor)
	}
	for _, name := range domain.AllAttrs {
		v := e.Attrs.Get(name)
		if v < domain.MinAttrValue || v > domain.MaxAttrValue {
			errs = append(errs, ErrTagAttrPref+string(name))
		}
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
