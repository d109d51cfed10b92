package planner

import (
	"fmt"
	"strings"

	"shaadiAi/internal/budget"
	"shaadiAi/internal/storage"
	"shaadiAi/internal/vendors"
	"shaadiAi/internal/vision"
)

// themeStock holds the curated stock imagery for one theme, keyed by the
// image sub-task it illustrates.
type themeStock struct {
	Ceremony  []string
	Reception []string
	Detail    []string
}

// Stock image pools per theme. Lookup is case-insensitive on the map key;
// unknown themes use the Elegant pool.
var themeImages = map[string]themeStock{
	"elegant": {
		Ceremony: []string{
			"https://images.unsplash.com/photo-1519741497674-611481863552?w=1024",
			"https://images.unsplash.com/photo-1606800052052-a08af7148866?w=1024",
		},
		Reception: []string{
			"https://images.unsplash.com/photo-1519225421980-715cb0215aed?w=1024",
			"https://images.unsplash.com/photo-1464366400600-7168b8af9bc3?w=1024",
		},
		Detail: []string{
			"https://images.unsplash.com/photo-1478146059778-26028b07395a?w=1024",
			"https://images.unsplash.com/photo-1522673607200-164d1b6ce486?w=1024",
		},
	},
	"traditional hindu": {
		Ceremony: []string{
			"https://images.unsplash.com/photo-1583939003579-730e3918a45a?w=1024",
			"https://images.unsplash.com/photo-1617526738882-1ea945ce3e56?w=1024",
		},
		Reception: []string{
			"https://images.unsplash.com/photo-1610173826608-bd1f53a52db1?w=1024",
		},
		Detail: []string{
			"https://images.unsplash.com/photo-1629224316810-9d8805b95e76?w=1024",
		},
	},
	"royal palace": {
		Ceremony: []string{
			"https://images.unsplash.com/photo-1587271636175-90d58cdad458?w=1024",
		},
		Reception: []string{
			"https://images.unsplash.com/photo-1519167758481-83f550bb49b3?w=1024",
		},
		Detail: []string{
			"https://images.unsplash.com/photo-1549417229-aa67d3263c09?w=1024",
		},
	},
	"beach": {
		Ceremony: []string{
			"https://images.unsplash.com/photo-1507504031003-b417219a0fde?w=1024",
		},
		Reception: []string{
			"https://images.unsplash.com/photo-1545232979-8bf68ee9b1af?w=1024",
		},
		Detail: []string{
			"https://images.unsplash.com/photo-1520854221256-17451cc331bf?w=1024",
		},
	},
	"rustic": {
		Ceremony: []string{
			"https://images.unsplash.com/photo-1465495976277-4387d4b0b4c6?w=1024",
		},
		Reception: []string{
			"https://images.unsplash.com/photo-1510076857177-7470076d4098?w=1024",
		},
		Detail: []string{
			"https://images.unsplash.com/photo-1509610973147-232dfea52a97?w=1024",
		},
	},
	"garden": {
		Ceremony: []string{
			"https://images.unsplash.com/photo-1525772764200-be829a350797?w=1024",
		},
		Reception: []string{
			"https://images.unsplash.com/photo-1530023367847-a683933f4172?w=1024",
		},
		Detail: []string{
			"https://images.unsplash.com/photo-1526047932273-341f2a7631f9?w=1024",
		},
	},
}

func stockFor(theme string) themeStock {
	if s, ok := themeImages[strings.ToLower(strings.TrimSpace(theme))]; ok {
		return s
	}
	return themeImages["elegant"]
}

// FallbackImage returns the stable stock image for one image sub-task.
// Repeated calls with the same preferences return the same handle.
func FallbackImage(kind Kind, prefs storage.Preferences) vision.ImageHandle {
	p := applyDefaults(prefs)
	stock := stockFor(p.Theme.Name)
	var pool []string
	switch kind {
	case KindReceptionImage:
		pool = stock.Reception
	case KindDetailImage:
		pool = stock.Detail
	default:
		pool = stock.Ceremony
	}
	return vision.URLHandle(pool[0])
}

// FallbackImages composes count stock handles, cycling the theme's pools in
// ceremony, reception, detail order.
func FallbackImages(prefs storage.Preferences, count int) []vision.ImageHandle {
	if count <= 0 {
		count = 1
	}
	p := applyDefaults(prefs)
	stock := stockFor(p.Theme.Name)
	pool := make([]string, 0, len(stock.Ceremony)+len(stock.Reception)+len(stock.Detail))
	pool = append(pool, stock.Ceremony...)
	pool = append(pool, stock.Reception...)
	pool = append(pool, stock.Detail...)

	out := make([]vision.ImageHandle, count)
	for i := range out {
		out[i] = vision.URLHandle(pool[i%len(pool)])
	}
	return out
}

// FallbackSummary composes a deterministic narrative from the preferences.
func FallbackSummary(prefs storage.Preferences) Summary {
	p := applyDefaults(prefs)
	return Summary{Text: fmt.Sprintf(
		"%s are planning a %s themed wedding in %s with a palette of %s. The celebration centers on a %s hosting around %d guests, with %s cuisine served at %s. Photography will follow a %s style with %s coverage, and the overall plan fits a %s budget.",
		capitalize(coupleLabel(p)), p.Theme.Name, p.Location, p.Theme.Colors,
		strings.ToLower(p.Venue.Type), p.GuestCount, p.Catering.Cuisine,
		strings.ToLower(p.Catering.MealType), strings.ToLower(p.Photography.Style),
		strings.ToLower(p.Photography.Coverage), strings.ToLower(p.BudgetRange))}
}

// FallbackRecommendations draws three names per category from the static
// vendor catalog.
func FallbackRecommendations(prefs storage.Preferences) Recommendations {
	return Recommendations{
		Venue:       vendors.NamesFor(vendors.CategoryVenue, 3),
		Catering:    vendors.NamesFor(vendors.CategoryCatering, 3),
		Photography: vendors.NamesFor(vendors.CategoryPhotography, 3),
		Decor:       vendors.NamesFor(vendors.CategoryDecor, 3),
	}
}

// FallbackTimeline returns a standard wedding-day run sheet. Lunch service
// shifts the ceremony earlier in the day.
func FallbackTimeline(prefs storage.Preferences) []TimelineEntry {
	p := applyDefaults(prefs)
	if strings.EqualFold(p.Catering.MealType, "Lunch") {
		return []TimelineEntry{
			{Time: "7:00 AM", Event: "Hair, makeup and getting ready"},
			{Time: "9:30 AM", Event: "Baraat and guest welcome"},
			{Time: "10:30 AM", Event: "Wedding ceremony begins"},
			{Time: "12:30 PM", Event: "Lunch service opens"},
			{Time: "2:00 PM", Event: "Family photographs"},
			{Time: "3:30 PM", Event: "Couple portraits"},
			{Time: "5:00 PM", Event: "Vidaai and send-off"},
		}
	}
	return []TimelineEntry{
		{Time: "12:00 PM", Event: "Hair, makeup and getting ready"},
		{Time: "3:30 PM", Event: "Baraat and guest welcome"},
		{Time: "4:30 PM", Event: "Wedding ceremony begins"},
		{Time: "6:30 PM", Event: "Cocktail hour and family photographs"},
		{Time: "7:30 PM", Event: "Reception entrance and first dance"},
		{Time: "8:30 PM", Event: "Dinner service opens"},
		{Time: "10:00 PM", Event: "Open dance floor"},
		{Time: "11:30 PM", Event: "Vidaai and send-off"},
	}
}

// FallbackBudget returns the default split scaled to the preference's range.
func FallbackBudget(prefs storage.Preferences) budget.Breakdown {
	p := applyDefaults(prefs)
	return budget.DefaultBreakdown(p.BudgetRange)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
