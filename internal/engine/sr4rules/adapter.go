// Package sr4rules provides the concrete implementation of the engine interface using rpg-toolkit modules.
package sr4rules

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/sr4-ledger/internal/engine"
	"github.com/KirkDiggler/sr4-ledger/internal/errors"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	eventBus   events.EventBus
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus   events.EventBus
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rules engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		eventBus:   cfg.EventBus,
		diceRoller: cfg.DiceRoller,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// CalculateConditionMonitors returns the physical and stun track sizes
// for the given attribute ratings
func (a *Adapter) CalculateConditionMonitors(body, willpower int32) (physical, stun int32) {
	physical = ceilHalf(body) + 8
	stun = ceilHalf(willpower) + 8
	return physical, stun
}

// CalculateWoundModifier returns the dice pool modifier imposed by the
// filled condition boxes. One point of penalty per three boxes on each
// track, returned as a negative number.
func (a *Adapter) CalculateWoundModifier(physicalDamage, stunDamage int32) int32 {
	if physicalDamage < 0 {
		physicalDamage = 0
	}
	if stunDamage < 0 {
		stunDamage = 0
	}
	return -(physicalDamage/3 + stunDamage/3)
}

// AttributeImprovementCost returns the karma price to raise an
// attribute to the given rating
func (a *Adapter) AttributeImprovementCost(newRating int32) int32 {
	return newRating * 5
}

// SkillImprovementCost returns the karma price to raise an active
// skill to the given rating
func (a *Adapter) SkillImprovementCost(newRating int32) int32 {
	return newRating * 2
}

// KnowledgeSkillImprovementCost returns the karma price to raise a
// knowledge skill to the given rating
func (a *Adapter) KnowledgeSkillImprovementCost(newRating int32) int32 {
	return newRating
}

// InitiationCost returns the karma price of the given initiate grade
func (a *Adapter) InitiationCost(newGrade int32) int32 {
	return 10 + newGrade*3
}

// SubmersionCost returns the karma price of the given submersion grade
func (a *Adapter) SubmersionCost(newGrade int32) int32 {
	return 10 + newGrade*3
}

func ceilHalf(v int32) int32 {
	if v <= 0 {
		return 0
	}
	return (v + 1) / 2
}
