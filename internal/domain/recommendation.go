package domain

// Grade is the letter form of a sustainability score.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
)

// ScoreResult is derived from a Product and never persisted.
type ScoreResult struct {
	Score float64 `json:"score"`
	Grade Grade   `json:"grade"`
}

// ProductInsights summarises a product's sustainability with improvement hints.
type ProductInsights struct {
	Score           float64   `json:"sustainability_score"`
	Grade           Grade     `json:"sustainability_grade"`
	CarbonKg        float64   `json:"carbon_kg"`
	IsOrganic       bool      `json:"is_organic"`
	Packaging       Packaging `json:"packaging"`
	Recommendations []string  `json:"recommendations"`
}

// Recommendation is produced per request. Alternative is nil when the
// original is already the greenest option in its category.
type Recommendation struct {
	Original      Product  `json:"original"`
	Alternative   *Product `json:"alternative"`
	Reason        string   `json:"reason"`
	CarbonSavedKg float64  `json:"carbon_saved"`
	PointsAwarded int      `json:"points_awarded"`
}

// Found reports whether a greener alternative was selected.
func (r *Recommendation) Found() bool {
	return r.Alternative != nil
}
