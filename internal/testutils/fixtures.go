package testutils

import (
	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
)

// Default identifiers for test fixtures
const (
	TestCharacterID = "char-test-001"
	TestPlayerID    = "player-test-001"

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Kaz Winters"

	// TestFixtureTime is the fixed timestamp stamped on fixture characters
	TestFixtureTime int64 = 1700000000
)

// CreateTestCharacter creates a creation-mode human character with the
// metatype limits stamped and every attribute at its minimum
func CreateTestCharacter(playerID string) *sr4.Character {
	return &sr4.Character{
		ID:              TestCharacterID,
		PlayerID:        playerID,
		Name:            TestCharacterName,
		Metatype:        "Human",
		Status:          sr4.StatusCreation,
		BuildPoints:     sr4.DefaultBuildPoints,
		Attributes:      humanAttributes(),
		AttributeLimits: humanLimits(),
		Essence:         sr4.DefaultEssence,
		CreatedAt:       TestFixtureTime,
		UpdatedAt:       TestFixtureTime,
	}
}

// CreateTestCareerCharacter creates a career-mode human character with a
// karma and nuyen balance ready for advancement tests
func CreateTestCareerCharacter(playerID string) *sr4.Character {
	character := CreateTestCharacter(playerID)
	character.Alias = "Static"
	character.Status = sr4.StatusCareer
	character.Nuyen = 5000
	character.StartingNuyen = 5000
	character.Karma = 30
	character.TotalKarma = 30
	character.Skills = []sr4.Skill{
		{Name: "Pistols", Rating: 3},
		{Name: "Dodge", Rating: 2},
	}
	character.KnowledgeSkills = []sr4.Skill{
		{Name: "Seattle Street Gangs", Rating: 2},
	}
	return character
}

func humanAttributes() map[sr4.Attribute]*sr4.AttributeValue {
	attributes := make(map[sr4.Attribute]*sr4.AttributeValue, len(sr4.StandardAttributes()))
	for _, code := range sr4.StandardAttributes() {
		attributes[code] = &sr4.AttributeValue{Base: 1}
	}
	attributes[sr4.AttributeEdge] = &sr4.AttributeValue{Base: 2}
	return attributes
}

func humanLimits() map[sr4.Attribute]*sr4.AttributeLimit {
	limits := make(map[sr4.Attribute]*sr4.AttributeLimit, len(sr4.StandardAttributes()))
	for _, code := range sr4.StandardAttributes() {
		limits[code] = &sr4.AttributeLimit{Min: 1, Max: 6, AugmentedMax: 9}
	}
	limits[sr4.AttributeEdge] = &sr4.AttributeLimit{Min: 2, Max: 7, AugmentedMax: 7}
	return limits
}
