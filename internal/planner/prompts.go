package planner

import (
	"fmt"
	"strings"

	"shaadiAi/internal/budget"
	"shaadiAi/internal/storage"
)

// systemPrompt is the persona shared by every text sub-task.
const systemPrompt = "You are an experienced Indian wedding planner. You give concrete, realistic suggestions grounded in the couple's stated preferences. Never invent facts about the couple. When asked for JSON, respond with JSON only: no markdown fences, no commentary."

// Defaults substituted for missing optional preference fields. Prompts must
// never carry an empty interpolation.
const (
	defaultThemeName  = "Elegant"
	defaultColors     = "White and Gold"
	defaultVenueType  = "Banquet Hall"
	defaultCuisine    = "Multi-Cuisine"
	defaultMealType   = "Dinner"
	defaultPhotoStyle = "Candid"
	defaultCoverage   = "Full Day"
	defaultLocation   = "Mumbai"
	defaultGuestCount = 150
)

// applyDefaults fills every optional field so prompt templates and fallback
// content always have a value to interpolate.
func applyDefaults(prefs storage.Preferences) storage.Preferences {
	if strings.TrimSpace(prefs.Theme.Name) == "" {
		prefs.Theme.Name = defaultThemeName
	}
	if strings.TrimSpace(prefs.Theme.Colors) == "" {
		prefs.Theme.Colors = defaultColors
	}
	if strings.TrimSpace(prefs.Venue.Type) == "" {
		prefs.Venue.Type = defaultVenueType
	}
	if strings.TrimSpace(prefs.Catering.Cuisine) == "" {
		prefs.Catering.Cuisine = defaultCuisine
	}
	if strings.TrimSpace(prefs.Catering.MealType) == "" {
		prefs.Catering.MealType = defaultMealType
	}
	if strings.TrimSpace(prefs.Photography.Style) == "" {
		prefs.Photography.Style = defaultPhotoStyle
	}
	if strings.TrimSpace(prefs.Photography.Coverage) == "" {
		prefs.Photography.Coverage = defaultCoverage
	}
	if strings.TrimSpace(prefs.Location) == "" {
		prefs.Location = defaultLocation
	}
	if prefs.GuestCount <= 0 {
		prefs.GuestCount = defaultGuestCount
	}
	if prefs.Venue.Capacity <= 0 {
		prefs.Venue.Capacity = prefs.GuestCount
	}
	if strings.TrimSpace(prefs.BudgetRange) == "" {
		prefs.BudgetRange = budget.DefaultRange
	}
	if strings.TrimSpace(prefs.WeddingDate) == "" {
		prefs.WeddingDate = "a date yet to be fixed"
	}
	return prefs
}

// coupleLabel renders the couple for prose templates.
func coupleLabel(prefs storage.Preferences) string {
	one := strings.TrimSpace(prefs.PartnerOne)
	two := strings.TrimSpace(prefs.PartnerTwo)
	switch {
	case one != "" && two != "":
		return one + " and " + two
	case one != "":
		return one
	case two != "":
		return two
	default:
		return "the couple"
	}
}

// BuildPrompt produces the prompt string for a sub-task. Deterministic:
// identical inputs yield byte-identical prompts.
func BuildPrompt(kind Kind, prefs storage.Preferences) string {
	p := applyDefaults(prefs)

	switch kind {
	case KindCeremonyImage:
		return fmt.Sprintf(
			"A wide shot of an Indian wedding ceremony in a %s theme. Venue: %s in %s, dressed for roughly %d guests. Color palette: %s. The mandap/altar is the focal point, with ceremonial seating, garlands and warm festive lighting. Photorealistic, no text or watermarks.",
			p.Theme.Name, p.Venue.Type, p.Location, p.GuestCount, p.Theme.Colors)

	case KindReceptionImage:
		return fmt.Sprintf(
			"An evening wedding reception in a %s theme at a %s in %s. Tables set for a %s %s service, stage and dance floor visible, color palette %s, elegant ambient lighting. Photorealistic, no text or watermarks.",
			p.Theme.Name, p.Venue.Type, p.Location, p.Catering.Cuisine, strings.ToLower(p.Catering.MealType), p.Theme.Colors)

	case KindDetailImage:
		return fmt.Sprintf(
			"A close-up detail shot from a %s themed wedding: table centerpiece, place settings and floral arrangements in %s. Shallow depth of field, %s photography style. Photorealistic, no text or watermarks.",
			p.Theme.Name, p.Theme.Colors, strings.ToLower(p.Photography.Style))

	case KindSummary:
		return fmt.Sprintf(
			`Write a short narrative summary of the wedding planned for %s on %s in %s: a %s theme in %s, a %s for about %d guests, %s cuisine served at %s, photography in a %s style with %s coverage. 3 to 4 sentences, warm but concrete.
Respond ONLY as JSON: {"summary": "..."}`,
			coupleLabel(p), p.WeddingDate, p.Location, p.Theme.Name, p.Theme.Colors,
			p.Venue.Type, p.GuestCount, p.Catering.Cuisine, strings.ToLower(p.Catering.MealType),
			strings.ToLower(p.Photography.Style), strings.ToLower(p.Photography.Coverage))

	case KindRecommendations:
		return fmt.Sprintf(
			`Suggest wedding vendors for a %s themed wedding in %s for %d guests in the "%s" budget range. Give 3 realistic suggestions per category: venue (type: %s), catering (cuisine: %s), photography (style: %s) and decor.
Respond ONLY as JSON: {"venue": ["..."], "catering": ["..."], "photography": ["..."], "decor": ["..."]}`,
			p.Theme.Name, p.Location, p.GuestCount, p.BudgetRange,
			p.Venue.Type, p.Catering.Cuisine, p.Photography.Style)

	case KindTimeline:
		return fmt.Sprintf(
			`Draft a wedding-day timeline for %s: a %s themed ceremony at a %s with a %s %s for %d guests. 6 to 10 entries from preparations through send-off, times in "h:mm AM/PM" format.
Respond ONLY as JSON: {"timeline": [{"time": "...", "event": "..."}]}`,
			coupleLabel(p), p.Theme.Name, p.Venue.Type,
			strings.ToLower(p.Catering.MealType), "reception", p.GuestCount)

	case KindBudgetSplit:
		return fmt.Sprintf(
			`Split a total wedding budget of %d INR ("%s" range) across four categories for a %s themed wedding with %d guests at a %s. Respond with whole-number percentages that sum to exactly 100.
Respond ONLY as JSON: {"venue": 0, "catering": 0, "photography": 0, "decor": 0}`,
			budget.TotalFor(p.BudgetRange), p.BudgetRange, p.Theme.Name, p.GuestCount, p.Venue.Type)

	default:
		return ""
	}
}

// buildThemeImagesPrompt is the prompt for the narrow theme-images entry
// point: one representative scene per requested image.
func buildThemeImagesPrompt(prefs storage.Preferences) string {
	p := applyDefaults(prefs)
	return fmt.Sprintf(
		"A signature scene from a %s themed Indian wedding at a %s in %s, color palette %s, festive decor and warm lighting. Photorealistic, no text or watermarks.",
		p.Theme.Name, p.Venue.Type, p.Location, p.Theme.Colors)
}
