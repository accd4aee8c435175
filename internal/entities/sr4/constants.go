package sr4

import "math"

// CharacterStatus is the advancement state of a character
type CharacterStatus string

// Advancement states. The transition is one-directional: creation
// characters enter their career and never return.
const (
	StatusCreation CharacterStatus = "creation"
	StatusCareer   CharacterStatus = "career"
)

// QualityCategory splits qualities into the two BP directions
type QualityCategory string

// Quality categories
const (
	QualityPositive QualityCategory = "positive"
	QualityNegative QualityCategory = "negative"
)

// ExpenseType is the currency an expense log entry moved
type ExpenseType string

// Expense log entry types
const (
	ExpenseKarma ExpenseType = "karma"
	ExpenseNuyen ExpenseType = "nuyen"
)

// Grade is the manufacturing tier of a cyberware or bioware implant,
// trading essence efficiency against nuyen cost
type Grade string

// Implant grades
const (
	GradeStandard  Grade = "standard"
	GradeAlphaware Grade = "alphaware"
	GradeBetaware  Grade = "betaware"
	GradeDeltaware Grade = "deltaware"
	GradeUsed      Grade = "used"
)

// Grades returns every defined implant grade
func Grades() []Grade {
	return []Grade{GradeStandard, GradeAlphaware, GradeBetaware, GradeDeltaware, GradeUsed}
}

// Valid reports whether the grade is one of the five defined tiers
func (g Grade) Valid() bool {
	switch g {
	case GradeStandard, GradeAlphaware, GradeBetaware, GradeDeltaware, GradeUsed:
		return true
	default:
		return false
	}
}

// EssenceMultiplier returns the factor applied to an implant's base
// essence cost
func (g Grade) EssenceMultiplier() float64 {
	switch g {
	case GradeAlphaware:
		return 0.8
	case GradeBetaware:
		return 0.7
	case GradeDeltaware:
		return 0.5
	case GradeUsed:
		return 1.2
	default:
		return 1.0
	}
}

// CostMultiplier returns the factor applied to an implant's base nuyen
// cost
func (g Grade) CostMultiplier() float64 {
	switch g {
	case GradeAlphaware:
		return 2.0
	case GradeBetaware:
		return 4.0
	case GradeDeltaware:
		return 10.0
	case GradeUsed:
		return 0.5
	default:
		return 1.0
	}
}

// Cost returns the graded nuyen cost, floored to a whole amount
func (g Grade) Cost(baseCost int32) int32 {
	return int32(math.Floor(float64(baseCost) * g.CostMultiplier()))
}

// Essence returns the graded essence cost, rounded to two decimals to
// keep repeated install/remove cycles from accumulating float drift
func (g Grade) Essence(baseEssence float64) float64 {
	return RoundEssence(baseEssence * g.EssenceMultiplier())
}

// RoundEssence rounds an essence amount to two decimal places
func RoundEssence(value float64) float64 {
	return math.Round(value*100) / 100
}

// DamageTrack selects which condition monitor damage lands on
type DamageTrack string

// Damage tracks
const (
	TrackPhysical DamageTrack = "physical"
	TrackStun     DamageTrack = "stun"
)

// Valid reports whether the track is one of the two condition monitors
func (t DamageTrack) Valid() bool {
	return t == TrackPhysical || t == TrackStun
}

// Default creation values
const (
	DefaultBuildPoints int32   = 400
	DefaultEssence     float64 = 6.0
	SkillRatingMax     int32   = 6
)
