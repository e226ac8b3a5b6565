package seo

const (
	baseScore       = 100
	criticalPenalty = 15
	warningPenalty  = 5
)

// Score computes the 0-100 health score for a set of issues. Each critical
// issue costs 15 points and each warning 5; the result never drops below 0.
func Score(issues []Issue) int {
	score := baseScore
	for _, is := range issues {
		switch is.Level {
		case LevelCritical:
			score -= criticalPenalty
		case LevelWarning:
			score -= warningPenalty
		}
	}
	return max(score, 0)
}

// Rating is the display band for a score.
type Rating string

const (
	RatingExcellent        Rating = "Excellent"
	RatingNeedsImprovement Rating = "Needs Improvement"
	RatingPoor             Rating = "Poor"
)

// Rate maps a score onto its band. Lower bounds are inclusive.
func Rate(score int) Rating {
	switch {
	case score >= 80:
		return RatingExcellent
	case score >= 50:
		return RatingNeedsImprovement
	default:
		return RatingPoor
	}
}

// Healthy reports whether the rating is the top band.
func (r Rating) Healthy() bool {
	return r == RatingExcellent
}
