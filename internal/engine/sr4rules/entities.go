package sr4rules

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
)

// CharacterEntity wraps sr4.Character to implement core.Entity interface
type CharacterEntity struct {
	*sr4.Character
}

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return "character"
}

// WrapCharacter converts an sr4.Character to a CharacterEntity
func WrapCharacter(character *sr4.Character) *CharacterEntity {
	return &CharacterEntity{Character: character}
}

// Compile-time check that the wrapper implements core.Entity
var _ core.Entity = (*CharacterEntity)(nil)
