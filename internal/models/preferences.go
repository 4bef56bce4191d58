package models

import "strings"

// StyleType is the overall look a shopper is after.
type StyleType string

const (
	StyleCasual     StyleType = "casual"
	StyleFormal     StyleType = "formal"
	StyleStreetwear StyleType = "streetwear"
	StyleBohemian   StyleType = "bohemian"
	StyleMinimalist StyleType = "minimalist"
	StyleVintage    StyleType = "vintage"
)

// Occasion is what an outfit is meant for.
type Occasion string

const (
	OccasionEveryday Occasion = "everyday"
	OccasionWork     Occasion = "work"
	OccasionParty    Occasion = "party"
	OccasionDate     Occasion = "date"
	OccasionTravel   Occasion = "travel"
	OccasionWorkout  Occasion = "workout"
)

// DefaultBudget is the budget ceiling a fresh preference record starts with.
const DefaultBudget = 500

// StylePreferences drive outfit generation. Every change produces a new record
// and callers regenerate recommendations from it.
type StylePreferences struct {
	StyleType           StyleType `json:"style_type" validate:"required,oneof=casual formal streetwear bohemian minimalist vintage"`
	Occasion            Occasion  `json:"occasion" validate:"required,oneof=everyday work party date travel workout"`
	BudgetMax           float64   `json:"budget_max" validate:"gte=0"`
	PreferredColors     StringSet `json:"preferred_colors"`
	PreferredCategories StringSet `json:"preferred_categories"`
}

// DefaultPreferences mirrors the initial state of the recommendations page.
func DefaultPreferences() StylePreferences {
	return StylePreferences{
		StyleType: StyleCasual,
		Occasion:  OccasionEveryday,
		BudgetMax: DefaultBudget,
	}
}

// Validate checks the enums and the budget.
func (p StylePreferences) Validate() error {
	return validate.Struct(p)
}

// ToggleColor flips membership of a color. Colors are stored lower-case.
func (p StylePreferences) ToggleColor(color string) StylePreferences {
	p.PreferredColors = p.PreferredColors.Toggle(strings.ToLower(strings.TrimSpace(color)))
	return p
}

// ToggleCategory flips membership of a category.
func (p StylePreferences) ToggleCategory(category string) StylePreferences {
	p.PreferredCategories = p.PreferredCategories.Toggle(category)
	return p
}

// WithStyle returns the record with a different style type.
func (p StylePreferences) WithStyle(style StyleType) StylePreferences {
	p.StyleType = style
	return p
}

// WithOccasion returns the record with a different occasion.
func (p StylePreferences) WithOccasion(occasion Occasion) StylePreferences {
	p.Occasion = occasion
	return p
}

// WithBudget returns the record with a different budget ceiling.
func (p StylePreferences) WithBudget(budget float64) StylePreferences {
	p.BudgetMax = budget
	return p
}
