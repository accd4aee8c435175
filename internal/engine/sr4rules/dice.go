package sr4rules

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/sr4-ledger/internal/engine"
	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	"github.com/KirkDiggler/sr4-ledger/internal/errors"
)

// Event types published on dice resolution
const (
	EventPoolRolled       = "dice.pool_rolled"
	EventInitiativeRolled = "dice.initiative_rolled"
)

const hitThreshold = 5

// RollPool rolls a d6 pool and scores it: fives and sixes are hits,
// more ones on the table than half the pool is a glitch, a glitch with
// zero hits is a critical glitch. The modifier shrinks the pool before
// any dice are thrown.
func (a *Adapter) RollPool(ctx context.Context, input *engine.RollPoolInput) (*engine.RollPoolOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Pool <= 0 {
		return nil, errors.InvalidArgument("pool must be positive")
	}

	pool := input.Pool + input.Modifier
	if pool < 0 {
		pool = 0
	}

	output, err := a.rollPool(pool)
	if err != nil {
		return nil, err
	}

	_ = a.eventBus.Publish(ctx, events.NewGameEvent(EventPoolRolled, nil, nil))

	return output, nil
}

// RollInitiative rolls the character's initiative test. The score is
// augmented Reaction plus augmented Intuition, the roll is that many
// dice less the wound modifier, and hits raise the final total.
func (a *Adapter) RollInitiative(
	ctx context.Context,
	input *engine.RollInitiativeInput,
) (*engine.RollInitiativeOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	character := input.Character

	reaction := character.Attribute(sr4.AttributeReaction)
	intuition := character.Attribute(sr4.AttributeIntuition)
	score := reaction.AugmentedRating() + intuition.AugmentedRating()

	pool := score + a.CalculateWoundModifier(
		character.Condition.PhysicalDamage,
		character.Condition.StunDamage,
	)
	if pool < 0 {
		pool = 0
	}

	rolled, err := a.rollPool(pool)
	if err != nil {
		return nil, err
	}

	_ = a.eventBus.Publish(ctx, events.NewGameEvent(EventInitiativeRolled, WrapCharacter(character), nil))

	return &engine.RollInitiativeOutput{
		Score: score,
		Rolls: rolled.Rolls,
		Hits:  rolled.Hits,
		Total: score + rolled.Hits,
	}, nil
}

func (a *Adapter) rollPool(pool int32) (*engine.RollPoolOutput, error) {
	output := &engine.RollPoolOutput{Rolls: []int32{}}
	if pool == 0 {
		return output, nil
	}

	rolls, err := a.diceRoller.RollN(int(pool), 6)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice pool")
	}

	output.Rolls = make([]int32, 0, len(rolls))
	for _, roll := range rolls {
		output.Rolls = append(output.Rolls, int32(roll))
		switch {
		case roll >= hitThreshold:
			output.Hits++
		case roll == 1:
			output.Ones++
		}
	}

	output.Glitch = output.Ones > pool/2
	output.CriticalGlitch = output.Glitch && output.Hits == 0
	return output, nil
}
