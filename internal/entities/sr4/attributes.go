package sr4

// Attribute is a short attribute code as printed on the character sheet
type Attribute string

// Standard attribute codes
const (
	AttributeBody      Attribute = "BOD"
	AttributeAgility   Attribute = "AGI"
	AttributeReaction  Attribute = "REA"
	AttributeStrength  Attribute = "STR"
	AttributeCharisma  Attribute = "CHA"
	AttributeIntuition Attribute = "INT"
	AttributeLogic     Attribute = "LOG"
	AttributeWillpower Attribute = "WIL"
	AttributeEdge      Attribute = "EDG"
)

// Special attribute codes, present only while the matching capability
// block (Magic/Resonance) exists
const (
	AttributeMagic     Attribute = "MAG"
	AttributeResonance Attribute = "RES"
)

// StandardAttributes returns the nine attribute codes every character has
func StandardAttributes() []Attribute {
	return []Attribute{
		AttributeBody,
		AttributeAgility,
		AttributeReaction,
		AttributeStrength,
		AttributeCharisma,
		AttributeIntuition,
		AttributeLogic,
		AttributeWillpower,
		AttributeEdge,
	}
}

// IsStandard reports whether the code is one of the nine standard
// attributes
func (a Attribute) IsStandard() bool {
	switch a {
	case AttributeBody, AttributeAgility, AttributeReaction, AttributeStrength,
		AttributeCharisma, AttributeIntuition, AttributeLogic, AttributeWillpower,
		AttributeEdge:
		return true
	default:
		return false
	}
}

// IsSpecial reports whether the code is a capability-gated attribute
func (a Attribute) IsSpecial() bool {
	return a == AttributeMagic || a == AttributeResonance
}

// AttributeValue holds the three components of a rated attribute.
// Base comes from creation point-buy, Karma from career improvements,
// Bonus from metatype or augmentations.
type AttributeValue struct {
	Base  int32
	Bonus int32
	Karma int32
}

// Rating returns the natural rating (base plus karma improvements)
func (a *AttributeValue) Rating() int32 {
	if a == nil {
		return 0
	}
	return a.Base + a.Karma
}

// AugmentedRating returns the rating including augmentation bonuses
func (a *AttributeValue) AugmentedRating() int32 {
	if a == nil {
		return 0
	}
	return a.Base + a.Karma + a.Bonus
}

// AttributeLimit holds the metatype bounds for one attribute. Set when
// the metatype is chosen and replaced only by a full metatype change;
// initiation and submersion raise the Magic/Resonance caps by one per
// grade.
type AttributeLimit struct {
	Min          int32
	Max          int32
	AugmentedMax int32
}

// Clamp forces a value into [Min, Max]
func (l *AttributeLimit) Clamp(value int32) int32 {
	if value < l.Min {
		return l.Min
	}
	if value > l.Max {
		return l.Max
	}
	return value
}
