// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
)

// CharacterBuilder provides a fluent interface for building test Character
// instances. The defaults are a creation-mode human with the metatype
// limits stamped and every attribute at its minimum.
type CharacterBuilder struct {
	character *sr4.Character
}

// NewCharacterBuilder creates a new builder with minimal defaults
func NewCharacterBuilder() *CharacterBuilder {
	attributes := make(map[sr4.Attribute]*sr4.AttributeValue)
	limits := make(map[sr4.Attribute]*sr4.AttributeLimit)
	for _, code := range sr4.StandardAttributes() {
		attributes[code] = &sr4.AttributeValue{Base: 1}
		limits[code] = &sr4.AttributeLimit{Min: 1, Max: 6, AugmentedMax: 9}
	}
	attributes[sr4.AttributeEdge] = &sr4.AttributeValue{Base: 2}
	limits[sr4.AttributeEdge] = &sr4.AttributeLimit{Min: 2, Max: 7, AugmentedMax: 7}

	now := int64(1700000000)
	return &CharacterBuilder{
		character: &sr4.Character{
			ID:              "char-test-123",
			PlayerID:        "player-test-123",
			Name:            "Test Character",
			Metatype:        "Human",
			Status:          sr4.StatusCreation,
			BuildPoints:     sr4.DefaultBuildPoints,
			Attributes:      attributes,
			AttributeLimits: limits,
			Essence:         sr4.DefaultEssence,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithPlayerID sets the player ID
func (b *CharacterBuilder) WithPlayerID(playerID string) *CharacterBuilder {
	b.character.PlayerID = playerID
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithAlias sets the street alias
func (b *CharacterBuilder) WithAlias(alias string) *CharacterBuilder {
	b.character.Alias = alias
	return b
}

// WithMetatype sets the metatype name without touching attribute limits;
// use WithAttributeLimit to adjust bounds for non-human metatypes
func (b *CharacterBuilder) WithMetatype(metatype string) *CharacterBuilder {
	b.character.Metatype = metatype
	return b
}

// AsCareer moves the character into career mode
func (b *CharacterBuilder) AsCareer() *CharacterBuilder {
	b.character.Status = sr4.StatusCareer
	return b
}

// WithBuildPoints sets the creation allowance
func (b *CharacterBuilder) WithBuildPoints(points int32) *CharacterBuilder {
	b.character.BuildPoints = points
	return b
}

// WithNuyen sets the nuyen balance
func (b *CharacterBuilder) WithNuyen(amount int32) *CharacterBuilder {
	b.character.Nuyen = amount
	return b
}

// WithKarma sets the spendable and lifetime karma totals
func (b *CharacterBuilder) WithKarma(amount int32) *CharacterBuilder {
	b.character.Karma = amount
	b.character.TotalKarma = amount
	return b
}

// WithEssence sets the essence balance
func (b *CharacterBuilder) WithEssence(essence float64) *CharacterBuilder {
	b.character.Essence = essence
	return b
}

// WithAttribute sets an attribute's base value
func (b *CharacterBuilder) WithAttribute(code sr4.Attribute, base int32) *CharacterBuilder {
	b.character.Attributes[code] = &sr4.AttributeValue{Base: base}
	return b
}

// WithAttributeLimit sets an attribute's metatype bounds
func (b *CharacterBuilder) WithAttributeLimit(code sr4.Attribute, minimum, maximum, augmentedMax int32) *CharacterBuilder {
	b.character.AttributeLimits[code] = &sr4.AttributeLimit{
		Min:          minimum,
		Max:          maximum,
		AugmentedMax: augmentedMax,
	}
	return b
}

// WithSkill adds an active skill
func (b *CharacterBuilder) WithSkill(name string, rating int32) *CharacterBuilder {
	b.character.Skills = append(b.character.Skills, sr4.Skill{Name: name, Rating: rating})
	return b
}

// WithKnowledgeSkill adds a knowledge skill
func (b *CharacterBuilder) WithKnowledgeSkill(name string, rating int32) *CharacterBuilder {
	b.character.KnowledgeSkills = append(b.character.KnowledgeSkills, sr4.Skill{Name: name, Rating: rating})
	return b
}

// WithQuality adds a selected quality
func (b *CharacterBuilder) WithQuality(id, name string, category sr4.QualityCategory, bp int32) *CharacterBuilder {
	b.character.Qualities = append(b.character.Qualities, sr4.Quality{
		ID:       id,
		Name:     name,
		Category: category,
		BP:       bp,
	})
	return b
}

// WithMagic initializes the magic block with the given tradition and a
// magic attribute of 1
func (b *CharacterBuilder) WithMagic(tradition string) *CharacterBuilder {
	b.character.Magic = &sr4.Magic{Tradition: tradition}
	b.character.Attributes[sr4.AttributeMagic] = &sr4.AttributeValue{Base: 1}
	b.character.AttributeLimits[sr4.AttributeMagic] = &sr4.AttributeLimit{Min: 1, Max: 6, AugmentedMax: 6}
	return b
}

// WithResonance initializes the resonance block with the given stream and
// a resonance attribute of 1
func (b *CharacterBuilder) WithResonance(stream string) *CharacterBuilder {
	b.character.Resonance = &sr4.Resonance{Stream: stream}
	b.character.Attributes[sr4.AttributeResonance] = &sr4.AttributeValue{Base: 1}
	b.character.AttributeLimits[sr4.AttributeResonance] = &sr4.AttributeLimit{Min: 1, Max: 6, AugmentedMax: 6}
	return b
}

// Build returns the constructed Character
func (b *CharacterBuilder) Build() *sr4.Character {
	return b.character
}
