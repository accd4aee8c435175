// Package engine wraps the rpg toolkit
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/sr4-ledger/internal/engine Engine

import (
	"context"
)

// Engine provides game mechanics and rules calculations
type Engine interface {
	// Derived projections
	CalculateDerivedStats(ctx context.Context, input *CalculateDerivedStatsInput) (*CalculateDerivedStatsOutput, error)
	ClassifyMagicUser(ctx context.Context, input *ClassifyMagicUserInput) (*ClassifyMagicUserOutput, error)
	CalculateArmor(ctx context.Context, input *CalculateArmorInput) (*CalculateArmorOutput, error)

	// Dice pools
	RollPool(ctx context.Context, input *RollPoolInput) (*RollPoolOutput, error)
	RollInitiative(ctx context.Context, input *RollInitiativeInput) (*RollInitiativeOutput, error)

	// Utility methods
	CalculateConditionMonitors(body, willpower int32) (physical, stun int32)
	CalculateWoundModifier(physicalDamage, stunDamage int32) int32
	AttributeImprovementCost(newRating int32) int32
	SkillImprovementCost(newRating int32) int32
	KnowledgeSkillImprovementCost(newRating int32) int32
	InitiationCost(newGrade int32) int32
	SubmersionCost(newGrade int32) int32
}
