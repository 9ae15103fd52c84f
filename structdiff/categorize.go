package structdiff

// Category is a semantic bucket for diff entries, keyed by the first path
// segment of the change.
type Category string

// The fixed category set. Any first segment outside this table lands in
// CategoryOther.
const (
	CategoryColors            Category = "colors"
	CategoryTypography        Category = "typography"
	CategorySpacing           Category = "spacing"
	CategoryBorderRadius      Category = "borderRadius"
	CategoryAnimations        Category = "animations"
	CategoryEffects           Category = "effects"
	CategoryLayout            Category = "layout"
	CategoryComponents        Category = "components"
	CategoryFocusIndicators   Category = "focusIndicators"
	CategoryInteractionStates Category = "interactionStates"
	CategoryOther             Category = "other"
)

// Categories lists every bucket in reporting order.
var Categories = []Category{
	CategoryColors,
	CategoryTypography,
	CategorySpacing,
	CategoryBorderRadius,
	CategoryAnimations,
	CategoryEffects,
	CategoryLayout,
	CategoryComponents,
	CategoryFocusIndicators,
	CategoryInteractionStates,
	CategoryOther,
}

var knownCategories = map[string]Category{
	string(CategoryColors):            CategoryColors,
	string(CategoryTypography):        CategoryTypography,
	string(CategorySpacing):           CategorySpacing,
	string(CategoryBorderRadius):      CategoryBorderRadius,
	string(CategoryAnimations):        CategoryAnimations,
	string(CategoryEffects):           CategoryEffects,
	string(CategoryLayout):            CategoryLayout,
	string(CategoryComponents):        CategoryComponents,
	string(CategoryFocusIndicators):   CategoryFocusIndicators,
	string(CategoryInteractionStates): CategoryInteractionStates,
}

// CategoryOf maps a change path to its bucket.
func CategoryOf(path string) Category {
	if cat, ok := knownCategories[FirstSegment(path)]; ok {
		return cat
	}
	return CategoryOther
}

// Categorize partitions entries into the fixed category set. Buckets with no
// entries are omitted from the result.
func Categorize(entries []Entry) map[Category][]Entry {
	buckets := make(map[Category][]Entry)
	for _, entry := range entries {
		cat := CategoryOf(entry.Path)
		buckets[cat] = append(buckets[cat], entry)
	}
	return buckets
}
