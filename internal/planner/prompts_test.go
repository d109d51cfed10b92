package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shaadiAi/internal/storage"
)

func samplePrefs() storage.Preferences {
	return storage.Preferences{
		PartnerOne:  "Aarav",
		PartnerTwo:  "Diya",
		GuestCount:  250,
		WeddingDate: "2026-11-21",
		Location:    "Jaipur",
		BudgetRange: "Premium",
		Theme:       storage.ThemePrefs{Name: "Royal Palace", Colors: "Maroon and Gold", Season: "Winter"},
		Venue:       storage.VenuePrefs{Type: "Palace", Capacity: 400, Setting: "Outdoor"},
		Catering:    storage.CateringPrefs{Cuisine: "Rajasthani", MealType: "Dinner", Dietary: "Vegetarian"},
		Photography: storage.PhotoPrefs{Style: "Cinematic", Coverage: "Two Days"},
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	prefs := samplePrefs()
	for _, kind := range Subtasks {
		first := BuildPrompt(kind, prefs)
		second := BuildPrompt(kind, prefs)
		assert.Equal(t, first, second, "prompt for %s should be stable", kind)
		assert.NotEmpty(t, first)
	}
}

func TestBuildPromptInterpolatesPreferences(t *testing.T) {
	prefs := samplePrefs()

	ceremony := BuildPrompt(KindCeremonyImage, prefs)
	assert.Contains(t, ceremony, "Royal Palace")
	assert.Contains(t, ceremony, "Jaipur")
	assert.Contains(t, ceremony, "250")

	summary := BuildPrompt(KindSummary, prefs)
	assert.Contains(t, summary, "Aarav and Diya")
	assert.Contains(t, summary, "2026-11-21")

	split := BuildPrompt(KindBudgetSplit, prefs)
	assert.Contains(t, split, "2500000")
	assert.Contains(t, split, "Premium")
}

func TestBuildPromptFillsDefaults(t *testing.T) {
	// Entirely empty preferences still yield complete prompts.
	for _, kind := range Subtasks {
		prompt := BuildPrompt(kind, storage.Preferences{})
		require.NotEmpty(t, prompt, "prompt for %s", kind)
		assert.NotContains(t, prompt, "  ", "prompt for %s has an empty interpolation", kind)
		assert.NotContains(t, strings.ToLower(prompt), "undefined")
	}

	summary := BuildPrompt(KindSummary, storage.Preferences{})
	assert.Contains(t, summary, "the couple")
	assert.Contains(t, summary, "Elegant")
	assert.Contains(t, summary, "Banquet Hall")
	assert.Contains(t, summary, "150")
}

func TestApplyDefaultsPreservesProvidedValues(t *testing.T) {
	prefs := samplePrefs()
	filled := applyDefaults(prefs)
	assert.Equal(t, prefs, filled)
}

func TestApplyDefaultsBudgetRange(t *testing.T) {
	filled := applyDefaults(storage.Preferences{})
	assert.Equal(t, "Mid Range", filled.BudgetRange)
	assert.Equal(t, 150, filled.GuestCount)
	assert.Equal(t, 150, filled.Venue.Capacity)
}

func TestCoupleLabel(t *testing.T) {
	assert.Equal(t, "Aarav and Diya", coupleLabel(storage.Preferences{PartnerOne: "Aarav", PartnerTwo: "Diya"}))
	assert.Equal(t, "Aarav", coupleLabel(storage.Preferences{PartnerOne: "Aarav"}))
	assert.Equal(t, "Diya", coupleLabel(storage.Preferences{PartnerTwo: "Diya"}))
	assert.Equal(t, "the couple", coupleLabel(storage.Preferences{}))
}
