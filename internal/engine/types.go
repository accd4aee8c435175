package engine

import (
	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
)

// MagicClassification identifies which awakened or emerged track a
// character is on. It is always derived from quality names, never stored.
type MagicClassification string

// Magic user classifications
const (
	ClassificationMundane          MagicClassification = "mundane"
	ClassificationMagician         MagicClassification = "magician"
	ClassificationMysticAdept      MagicClassification = "mystic_adept"
	ClassificationAdept            MagicClassification = "adept"
	ClassificationAspectedMagician MagicClassification = "aspected_magician"
	ClassificationTechnomancer     MagicClassification = "technomancer"
)

// IsAwakened reports whether the classification can hold a magic rating
func (c MagicClassification) IsAwakened() bool {
	switch c {
	case ClassificationMagician, ClassificationMysticAdept, ClassificationAdept, ClassificationAspectedMagician:
		return true
	default:
		return false
	}
}

// CastsSpells reports whether the classification can learn spells
func (c MagicClassification) CastsSpells() bool {
	switch c {
	case ClassificationMagician, ClassificationMysticAdept, ClassificationAspectedMagician:
		return true
	default:
		return false
	}
}

// HasAdeptPowers reports whether the classification can buy adept powers
func (c MagicClassification) HasAdeptPowers() bool {
	return c == ClassificationAdept || c == ClassificationMysticAdept
}

// Build point prices during character creation
const (
	AttributePointBP      int32 = 10
	SkillPointBP          int32 = 4
	KnowledgeSkillPointBP int32 = 2
	SpecializationBP      int32 = 2
	SpellBP               int32 = 3
	ComplexFormBP         int32 = 2
	MentorSpiritBP        int32 = 5
	MartialArtTechniqueBP int32 = 2

	// NuyenPerResourceBP is the conversion rate when build points are
	// traded for starting funds.
	NuyenPerResourceBP int32 = 4500
)

// Flat karma prices during career advancement
const (
	NewSkillKarma          int32 = 4
	NewKnowledgeSkillKarma int32 = 2
	SpecializationKarma    int32 = 2
	SpellKarma             int32 = 5
	ComplexFormKarma       int32 = 5
)

// CalculateDerivedStatsInput contains the character to project
type CalculateDerivedStatsInput struct {
	Character *sr4.Character
}

// CalculateDerivedStatsOutput contains the full derived projection.
// Nothing here is stored on the character; callers recompute on demand.
type CalculateDerivedStatsOutput struct {
	RemainingBuildPoints int32
	PhysicalMonitor      int32
	StunMonitor          int32
	WoundModifier        int32
	Initiative           int32
	AugmentedInitiative  int32
	BallisticArmor       int32
	ImpactArmor          int32
	EncumbrancePenalty   int32
	Classification       MagicClassification
	StreetCred           int32
	EdgeRemaining        int32
	EssenceRemaining     float64
	PowerPointsFree      float64
}

// ClassifyMagicUserInput contains the character to classify
type ClassifyMagicUserInput struct {
	Character *sr4.Character
}

// ClassifyMagicUserOutput contains the derived classification
type ClassifyMagicUserOutput struct {
	Classification MagicClassification
}

// CalculateArmorInput contains the character whose worn armor to total
type CalculateArmorInput struct {
	Character *sr4.Character
}

// CalculateArmorOutput contains stacked armor totals and the
// encumbrance penalty the stack imposes
type CalculateArmorOutput struct {
	Ballistic          int32
	Impact             int32
	EncumbrancePenalty int32
}

// RollPoolInput contains a dice pool request. Modifier is applied to
// the pool before rolling and is usually zero or negative.
type RollPoolInput struct {
	Pool     int32
	Modifier int32
}

// RollPoolOutput contains the rolled dice and the hit/glitch summary
type RollPoolOutput struct {
	Rolls          []int32
	Hits           int32
	Ones           int32
	Glitch         bool
	CriticalGlitch bool
}

// RollInitiativeInput contains the character rolling initiative
type RollInitiativeInput struct {
	Character *sr4.Character
}

// RollInitiativeOutput contains the initiative result. Total is the
// initiative score plus hits from the roll.
type RollInitiativeOutput struct {
	Score int32
	Rolls []int32
	Hits  int32
	Total int32
}
