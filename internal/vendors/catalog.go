package vendors

import "strings"

// Vendor is one entry in the static directory. The catalog is compiled in;
// it is reference data for the UI and for fallback recommendations, not
// user-managed state.
type Vendor struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	City      string   `json:"city"`
	PriceBand string   `json:"price_band"`
	Rating    float64  `json:"rating"`
	Capacity  int      `json:"capacity,omitempty"`
	Styles    []string `json:"styles,omitempty"`
	Contact   string   `json:"contact"`
}

// Vendor categories used across the catalog and budget breakdowns.
const (
	CategoryVenue       = "venue"
	CategoryCatering    = "catering"
	CategoryPhotography = "photography"
	CategoryDecor       = "decor"
)

var catalog = []Vendor{
	{ID: "ven-001", Name: "The Grand Maratha Ballroom", Category: CategoryVenue, City: "Mumbai", PriceBand: "Luxury", Rating: 4.8, Capacity: 600, Styles: []string{"Luxury Hotel", "Banquet Hall"}, Contact: "events@grandmaratha.in"},
	{ID: "ven-002", Name: "Sea Breeze Lawns", Category: CategoryVenue, City: "Goa", PriceBand: "Premium", Rating: 4.6, Capacity: 350, Styles: []string{"Beach Resort", "Open Lawn"}, Contact: "bookings@seabreezelawns.in"},
	{ID: "ven-003", Name: "Rambagh Heritage Courtyard", Category: CategoryVenue, City: "Jaipur", PriceBand: "Luxury", Rating: 4.9, Capacity: 450, Styles: []string{"Palace", "Heritage"}, Contact: "hello@rambaghcourtyard.in"},
	{ID: "ven-004", Name: "Lotus Garden Banquets", Category: CategoryVenue, City: "Delhi", PriceBand: "Mid Range", Rating: 4.3, Capacity: 400, Styles: []string{"Banquet Hall", "Garden"}, Contact: "lotus@gardenbanquets.in"},
	{ID: "ven-005", Name: "Cubbon Pavilion", Category: CategoryVenue, City: "Bengaluru", PriceBand: "Mid Range", Rating: 4.4, Capacity: 300, Styles: []string{"Open Lawn", "Garden"}, Contact: "host@cubbonpavilion.in"},
	{ID: "ven-006", Name: "Riverside Mandapam", Category: CategoryVenue, City: "Chennai", PriceBand: "Budget Friendly", Rating: 4.2, Capacity: 500, Styles: []string{"Traditional Mandapam"}, Contact: "care@riversidemandapam.in"},

	{ID: "cat-001", Name: "Saffron Trail Caterers", Category: CategoryCatering, City: "Delhi", PriceBand: "Premium", Rating: 4.7, Styles: []string{"North Indian", "Mughlai"}, Contact: "orders@saffrontrail.in"},
	{ID: "cat-002", Name: "Annapurna Feasts", Category: CategoryCatering, City: "Chennai", PriceBand: "Mid Range", Rating: 4.5, Styles: []string{"South Indian", "Vegetarian"}, Contact: "feast@annapurna.in"},
	{ID: "cat-003", Name: "Bombay Masala Kitchens", Category: CategoryCatering, City: "Mumbai", PriceBand: "Mid Range", Rating: 4.4, Styles: []string{"Multi-Cuisine", "Street Food Counters"}, Contact: "kitchens@bombaymasala.in"},
	{ID: "cat-004", Name: "Coastal Curry Co.", Category: CategoryCatering, City: "Goa", PriceBand: "Premium", Rating: 4.6, Styles: []string{"Seafood", "Goan"}, Contact: "curry@coastalco.in"},
	{ID: "cat-005", Name: "Shahi Dastarkhwan", Category: CategoryCatering, City: "Jaipur", PriceBand: "Luxury", Rating: 4.8, Styles: []string{"Rajasthani", "Mughlai"}, Contact: "shahi@dastarkhwan.in"},

	{ID: "pho-001", Name: "Candid Frames Studio", Category: CategoryPhotography, City: "Mumbai", PriceBand: "Premium", Rating: 4.7, Styles: []string{"Candid", "Cinematic"}, Contact: "studio@candidframes.in"},
	{ID: "pho-002", Name: "Eternal Light Films", Category: CategoryPhotography, City: "Delhi", PriceBand: "Luxury", Rating: 4.9, Styles: []string{"Cinematic", "Documentary"}, Contact: "films@eternallight.in"},
	{ID: "pho-003", Name: "Mehndi & Monsoon", Category: CategoryPhotography, City: "Jaipur", PriceBand: "Mid Range", Rating: 4.5, Styles: []string{"Traditional", "Candid"}, Contact: "hello@mehndimonsoon.in"},
	{ID: "pho-004", Name: "Shutter Shore", Category: CategoryPhotography, City: "Goa", PriceBand: "Mid Range", Rating: 4.3, Styles: []string{"Destination", "Drone"}, Contact: "shore@shutter.in"},

	{ID: "dec-001", Name: "Marigold & Co. Decor", Category: CategoryDecor, City: "Delhi", PriceBand: "Mid Range", Rating: 4.4, Styles: []string{"Traditional", "Floral"}, Contact: "decor@marigoldco.in"},
	{ID: "dec-002", Name: "Ivory Orchid Events", Category: CategoryDecor, City: "Mumbai", PriceBand: "Luxury", Rating: 4.8, Styles: []string{"Elegant", "Minimal"}, Contact: "events@ivoryorchid.in"},
	{ID: "dec-003", Name: "Rajwada Drapes", Category: CategoryDecor, City: "Jaipur", PriceBand: "Premium", Rating: 4.6, Styles: []string{"Royal", "Heritage"}, Contact: "drapes@rajwada.in"},
	{ID: "dec-004", Name: "Palm & Paper Styling", Category: CategoryDecor, City: "Goa", PriceBand: "Budget Friendly", Rating: 4.2, Styles: []string{"Beach", "Boho"}, Contact: "styling@palmpaper.in"},
}

// Filter narrows the catalog; empty fields match everything.
type Filter struct {
	Category  string
	City      string
	PriceBand string
}

// All returns a copy of the full catalog.
func All() []Vendor {
	out := make([]Vendor, len(catalog))
	copy(out, catalog)
	return out
}

// Find returns catalog entries matching the filter.
func Find(f Filter) []Vendor {
	out := make([]Vendor, 0)
	for _, v := range catalog {
		if f.Category != "" && !strings.EqualFold(v.Category, f.Category) {
			continue
		}
		if f.City != "" && !strings.EqualFold(v.City, f.City) {
			continue
		}
		if f.PriceBand != "" && !strings.EqualFold(v.PriceBand, f.PriceBand) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// ByID looks up a single vendor.
func ByID(id string) (Vendor, bool) {
	for _, v := range catalog {
		if v.ID == id {
			return v, true
		}
	}
	return Vendor{}, false
}

// NamesFor returns up to limit vendor names for a category, catalog order.
// Used by the fallback composer so degraded recommendations still point at
// real directory entries.
func NamesFor(category string, limit int) []string {
	names := make([]string, 0, limit)
	for _, v := range catalog {
		if !strings.EqualFold(v.Category, category) {
			continue
		}
		names = append(names, v.Name)
		if limit > 0 && len(names) == limit {
			break
		}
	}
	return names
}
