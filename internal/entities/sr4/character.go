// Package sr4 implements the Shadowrun 4e character entities
package sr4

import "strings"

// Character is the root snapshot aggregate for one character.
// NOTE: This is a data-only struct. All derived values (remaining build
// points, condition monitors, armor stacking, magic classification) are
// computed by the engine, not here. Mutation goes through the ledger
// orchestrator so resource totals and collections stay in step.
type Character struct {
	ID          string
	PlayerID    string
	Name        string
	Alias       string
	Metatype    string
	Metavariant string

	Status      CharacterStatus
	BuildPoints int32

	Attributes      map[Attribute]*AttributeValue
	AttributeLimits map[Attribute]*AttributeLimit
	Essence         float64

	Qualities       []Quality
	Skills          []Skill
	KnowledgeSkills []Skill

	// Magic and Resonance are nullable capability blocks. The game forbids
	// having both, but the model does not hard-enforce it.
	Magic     *Magic
	Resonance *Resonance

	Equipment Equipment

	BuildPointsSpent SpentBuildPoints

	Nuyen         int32
	StartingNuyen int32
	Karma         int32
	TotalKarma    int32

	// ExpenseLog is append-only; entries are immutable once written.
	ExpenseLog []ExpenseEntry

	Condition  Condition
	Reputation Reputation

	CreatedAt int64
	UpdatedAt int64
}

// Quality is one selected quality. BP is captured at add time so a later
// catalog price change never affects the refund on removal.
type Quality struct {
	ID       string
	Name     string
	Category QualityCategory
	BP       int32
	Rating   int32
}

// Skill is one active or knowledge skill entry
type Skill struct {
	Name           string
	Rating         int32
	Specialization string
	KarmaSpent     int32
}

// SpentBuildPoints tracks per-category build point totals. The qualities
// category can be negative when negative qualities grant more than
// positive ones cost.
type SpentBuildPoints struct {
	Metatype        int32
	Attributes      int32
	Qualities       int32
	Skills          int32
	KnowledgeSkills int32
	Spells          int32
	ComplexForms    int32
	Mentor          int32
	MartialArts     int32
	Resources       int32
}

// Total sums every category
func (s SpentBuildPoints) Total() int32 {
	return s.Metatype + s.Attributes + s.Qualities + s.Skills + s.KnowledgeSkills +
		s.Spells + s.ComplexForms + s.Mentor + s.MartialArts + s.Resources
}

// ExpenseEntry is one ledger movement of karma or nuyen
type ExpenseEntry struct {
	Date   int64
	Type   ExpenseType
	Amount int32
	Reason string
}

// Condition tracks damage taken and edge spent
type Condition struct {
	PhysicalDamage int32
	StunDamage     int32
	EdgeSpent      int32
}

// Reputation tracks earned notoriety; street cred is derived from total
// karma by the engine and never stored.
type Reputation struct {
	Notoriety       int32
	PublicAwareness int32
}

// RemainingBuildPoints returns the unspent build point balance
func (c *Character) RemainingBuildPoints() int32 {
	return c.BuildPoints - c.BuildPointsSpent.Total()
}

// Attribute returns the named attribute value, or nil if the character
// does not have it
func (c *Character) Attribute(code Attribute) *AttributeValue {
	if c.Attributes == nil {
		return nil
	}
	return c.Attributes[code]
}

// AttributeRating returns the natural rating of the named attribute,
// or 0 when the character does not have it
func (c *Character) AttributeRating(code Attribute) int32 {
	attr := c.Attribute(code)
	if attr == nil {
		return 0
	}
	return attr.Rating()
}

// AttributeLimit returns the limits for the named attribute, or nil
func (c *Character) AttributeLimit(code Attribute) *AttributeLimit {
	if c.AttributeLimits == nil {
		return nil
	}
	return c.AttributeLimits[code]
}

// FindQuality returns the quality with the given name (case-insensitive),
// or nil
func (c *Character) FindQuality(name string) *Quality {
	for i := range c.Qualities {
		if strings.EqualFold(c.Qualities[i].Name, name) {
			return &c.Qualities[i]
		}
	}
	return nil
}

// FindQualityByID returns the quality with the given instance ID, or nil
func (c *Character) FindQualityByID(id string) *Quality {
	for i := range c.Qualities {
		if c.Qualities[i].ID == id {
			return &c.Qualities[i]
		}
	}
	return nil
}

// HasQuality reports whether a quality with the given name is present
func (c *Character) HasQuality(name string) bool {
	return c.FindQuality(name) != nil
}

// RemoveQualityByID removes and returns the quality with the given
// instance ID, or nil if absent
func (c *Character) RemoveQualityByID(id string) *Quality {
	for i := range c.Qualities {
		if c.Qualities[i].ID == id {
			removed := c.Qualities[i]
			c.Qualities = append(c.Qualities[:i], c.Qualities[i+1:]...)
			return &removed
		}
	}
	return nil
}

// QualityNames returns the names of every selected quality
func (c *Character) QualityNames() []string {
	names := make([]string, 0, len(c.Qualities))
	for i := range c.Qualities {
		names = append(names, c.Qualities[i].Name)
	}
	return names
}

// FindSkill returns the active skill with the given name
// (case-insensitive), or nil
func (c *Character) FindSkill(name string) *Skill {
	return findSkill(c.Skills, name)
}

// FindKnowledgeSkill returns the knowledge skill with the given name
// (case-insensitive), or nil
func (c *Character) FindKnowledgeSkill(name string) *Skill {
	return findSkill(c.KnowledgeSkills, name)
}

func findSkill(skills []Skill, name string) *Skill {
	for i := range skills {
		if strings.EqualFold(skills[i].Name, name) {
			return &skills[i]
		}
	}
	return nil
}

// RemoveSkill removes the named active skill and reports whether it was
// present
func (c *Character) RemoveSkill(name string) bool {
	var removed bool
	c.Skills, removed = removeSkill(c.Skills, name)
	return removed
}

// RemoveKnowledgeSkill removes the named knowledge skill and reports
// whether it was present
func (c *Character) RemoveKnowledgeSkill(name string) bool {
	var removed bool
	c.KnowledgeSkills, removed = removeSkill(c.KnowledgeSkills, name)
	return removed
}

// AppendExpense adds one immutable entry to the expense log
func (c *Character) AppendExpense(date int64, entryType ExpenseType, amount int32, reason string) {
	c.ExpenseLog = append(c.ExpenseLog, ExpenseEntry{
		Date:   date,
		Type:   entryType,
		Amount: amount,
		Reason: reason,
	})
}

func removeSkill(skills []Skill, name string) ([]Skill, bool) {
	for i := range skills {
		if strings.EqualFold(skills[i].Name, name) {
			return append(skills[:i], skills[i+1:]...), true
		}
	}
	return skills, false
}
