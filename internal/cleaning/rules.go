package cleaning

// Default thresholds shared by the cleaners and the consistency validator.
const (
	// DefaultRevenueTolerance is the absolute currency tolerance allowed
	// between revenue and price*quantity before a row counts as a mismatch.
	DefaultRevenueTolerance = 0.01

	// DefaultHighValueThreshold marks orders for manual review. Orders
	// above it are flagged, never filtered.
	DefaultHighValueThreshold = 50000.0
)

// Rules holds the lookup tables and thresholds used by all cleaners.
// A Rules value is immutable for the life of a pipeline run and safe to
// share across goroutines.
type Rules struct {
	CustomerChannels map[string]string
	OrderChannels    map[string]string

	RevenueTolerance   float64
	HighValueThreshold float64
}

// DefaultRules returns the standard normalization rules.
//
// Both channel maps are idempotent: every canonical value maps to itself,
// so cleaning already-cleaned data changes nothing.
func DefaultRules() *Rules {
	return &Rules{
		CustomerChannels: map[string]string{
			"instagram":   "Instagram",
			"Instagram":   "Instagram",
			"facebook":    "Instagram", // social media grouped under Instagram
			"Facebook":    "Instagram",
			"website":     "Website",
			"Website":     "Website",
			"Organic":     "Website",
			"marketplace": "Marketplace",
			"Marketplace": "Marketplace",
		},
		OrderChannels: map[string]string{
			"B2B (Wholesale)":               "B2B (Wholesale)",
			"B2C (E-commerce + Social)":     "B2C (E-commerce + Social)",
			"Service (Inst/repair)":         "Service (Installation/Repair)",
			"Service (Installation/Repair)": "Service (Installation/Repair)",
			"Instagram":                     "B2C (E-commerce + Social)",
			"Website":                       "B2C (E-commerce + Social)",
			"Marketplace":                   "B2C (E-commerce + Social)",
		},
		RevenueTolerance:   DefaultRevenueTolerance,
		HighValueThreshold: DefaultHighValueThreshold,
	}
}

// Canonicalize maps a categorical value through a canonicalization map.
// Unmapped values pass through unchanged; null stays null.
func Canonicalize(value interface{}, mapping map[string]string) interface{} {
	if value == nil {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return value
	}
	if canonical, found := mapping[s]; found {
		return canonical
	}
	return s
}
