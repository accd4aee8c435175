package ledger

import (
	"context"

	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	"github.com/KirkDiggler/sr4-ledger/internal/errors"
	"github.com/KirkDiggler/sr4-ledger/internal/services/ledger"
)

// Condition tracking. Damage boxes clamp into the monitor computed from
// the character's current attributes; edge spends draw against the EDG
// rating until refreshed.

// ApplyDamage marks boxes on a condition monitor. Damage past the
// monitor's length clamps at full.
func (o *Orchestrator) ApplyDamage(
	ctx context.Context,
	input *ledger.ApplyDamageInput,
) (*ledger.ApplyDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if !input.Track.Valid() {
		vb.InvalidField("track", "must be physical or stun")
	}
	if input.Boxes <= 0 {
		vb.InvalidField("boxes", "must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	physical, stun := o.engine.CalculateConditionMonitors(
		character.AttributeRating(sr4.AttributeBody),
		character.AttributeRating(sr4.AttributeWillpower),
	)

	switch input.Track {
	case sr4.TrackPhysical:
		character.Condition.PhysicalDamage = clampBoxes(character.Condition.PhysicalDamage+input.Boxes, physical)
	case sr4.TrackStun:
		character.Condition.StunDamage = clampBoxes(character.Condition.StunDamage+input.Boxes, stun)
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.ApplyDamageOutput{Character: updated}, nil
}

// HealDamage clears boxes from a condition monitor, never below empty
func (o *Orchestrator) HealDamage(
	ctx context.Context,
	input *ledger.HealDamageInput,
) (*ledger.HealDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if !input.Track.Valid() {
		vb.InvalidField("track", "must be physical or stun")
	}
	if input.Boxes <= 0 {
		vb.InvalidField("boxes", "must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	switch input.Track {
	case sr4.TrackPhysical:
		character.Condition.PhysicalDamage = clampBoxes(character.Condition.PhysicalDamage-input.Boxes, character.Condition.PhysicalDamage)
	case sr4.TrackStun:
		character.Condition.StunDamage = clampBoxes(character.Condition.StunDamage-input.Boxes, character.Condition.StunDamage)
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.HealDamageOutput{Character: updated}, nil
}

// SpendEdge burns one point of edge until the pool runs dry
func (o *Orchestrator) SpendEdge(
	ctx context.Context,
	input *ledger.SpendEdgeInput,
) (*ledger.SpendEdgeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	remaining := character.AttributeRating(sr4.AttributeEdge) - character.Condition.EdgeSpent
	if remaining < 0 {
		remaining = 0
	}
	if remaining == 0 {
		return nil, errors.Insufficient("edge", 1, 0)
	}
	character.Condition.EdgeSpent++

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.SpendEdgeOutput{Character: updated}, nil
}

// RefreshEdge restores the full edge pool
func (o *Orchestrator) RefreshEdge(
	ctx context.Context,
	input *ledger.RefreshEdgeInput,
) (*ledger.RefreshEdgeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	character.Condition.EdgeSpent = 0

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.RefreshEdgeOutput{Character: updated}, nil
}

// clampBoxes forces a box count into [0, limit]
func clampBoxes(boxes, limit int32) int32 {
	if boxes < 0 {
		return 0
	}
	if boxes > limit {
		return limit
	}
	return boxes
}
