package model

// Finding is one structured accessibility defect record as it appears
// in the findings JSON. Constructed once by the loader and never
// mutated afterwards.
type Finding struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Severity       Severity `json:"severity"`
	WCAG           string   `json:"wcag"`
	Area           string   `json:"area"`
	URL            string   `json:"url"`
	Selector       string   `json:"selector"`
	Impact         string   `json:"impact"`
	Reproduction   []string `json:"reproduction"`
	Actual         string   `json:"actual"`
	Expected       string   `json:"expected"`
	RecommendedFix string   `json:"recommended_fix"`
}

// RequiredKeys are the JSON keys every finding must carry, in the
// order they are reported when missing.
var RequiredKeys = []string{
	"id",
	"title",
	"severity",
	"wcag",
	"area",
	"url",
	"selector",
	"impact",
	"reproduction",
	"actual",
	"expected",
	"recommended_fix",
}
