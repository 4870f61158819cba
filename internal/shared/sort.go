package shared

// Sort options for media listings
type SortOption string

const (
	SortNatural     SortOption = "natural"
	SortUploadedNew SortOption = "uploaded_new"
	SortUploadedOld SortOption = "uploaded_old"
	SortNameAZ      SortOption = "name_az"
	SortNameZA      SortOption = "name_za"
	DefaultSort     SortOption = SortNatural
)

// Valid sort values
var ValidSorts = map[SortOption]struct{}{
	SortNatural:     {},
	SortUploadedNew: {},
	SortUploadedOld: {},
	SortNameAZ:      {},
	SortNameZA:      {},
}

// ParseSort falls back to DefaultSort for unknown values.
func ParseSort(s string) SortOption {
	sort := SortOption(s)
	if _, ok := ValidSorts[sort]; !ok {
		return DefaultSort
	}
	return sort
}
