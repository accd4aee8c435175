package sr4rules

import (
	"context"
	"strings"

	"github.com/KirkDiggler/sr4-ledger/internal/engine"
	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	"github.com/KirkDiggler/sr4-ledger/internal/errors"
)

// Quality names that mark a character as awakened or emerged
const (
	qualityMagician         = "Magician"
	qualityMysticAdept      = "Mystic Adept"
	qualityAdept            = "Adept"
	qualityTechnomancer     = "Technomancer"
	qualityLatentTechno     = "Latent Technomancer"
	aspectedMagicianPrefix  = "aspected magician"
	encumbranceFreeMargin   = 2
	encumbrancePointsPerBox = 2
)

// CalculateDerivedStats projects the character sheet values that are
// never stored: monitors, initiative, armor totals, street cred and the
// rest. Callers get a fresh projection on every call.
func (a *Adapter) CalculateDerivedStats(
	ctx context.Context,
	input *engine.CalculateDerivedStatsInput,
) (*engine.CalculateDerivedStatsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	character := input.Character

	physical, stun := a.CalculateConditionMonitors(
		character.AttributeRating(sr4.AttributeBody),
		character.AttributeRating(sr4.AttributeWillpower),
	)

	armor, err := a.CalculateArmor(ctx, &engine.CalculateArmorInput{Character: character})
	if err != nil {
		return nil, err
	}

	classification, err := a.ClassifyMagicUser(ctx, &engine.ClassifyMagicUserInput{Character: character})
	if err != nil {
		return nil, err
	}

	reaction := character.Attribute(sr4.AttributeReaction)
	intuition := character.Attribute(sr4.AttributeIntuition)

	edgeRemaining := character.AttributeRating(sr4.AttributeEdge) - character.Condition.EdgeSpent
	if edgeRemaining < 0 {
		edgeRemaining = 0
	}

	return &engine.CalculateDerivedStatsOutput{
		RemainingBuildPoints: character.RemainingBuildPoints(),
		PhysicalMonitor:      physical,
		StunMonitor:          stun,
		WoundModifier: a.CalculateWoundModifier(
			character.Condition.PhysicalDamage,
			character.Condition.StunDamage,
		),
		Initiative:          reaction.Rating() + intuition.Rating(),
		AugmentedInitiative: reaction.AugmentedRating() + intuition.AugmentedRating(),
		BallisticArmor:      armor.Ballistic,
		ImpactArmor:         armor.Impact,
		EncumbrancePenalty:  armor.EncumbrancePenalty,
		Classification:      classification.Classification,
		StreetCred:          character.TotalKarma / 10,
		EdgeRemaining:       edgeRemaining,
		EssenceRemaining:    character.Essence,
		PowerPointsFree:     character.Magic.PowerPointsFree(),
	}, nil
}

// ClassifyMagicUser derives the magic classification from quality
// names. The classification is never cached on the character; removing
// the quality removes the capability on the next call.
func (a *Adapter) ClassifyMagicUser(
	_ context.Context,
	input *engine.ClassifyMagicUserInput,
) (*engine.ClassifyMagicUserOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	classification := engine.ClassificationMundane
	for _, quality := range input.Character.Qualities {
		switch {
		case strings.EqualFold(quality.Name, qualityMagician):
			classification = engine.ClassificationMagician
		case strings.EqualFold(quality.Name, qualityMysticAdept):
			classification = engine.ClassificationMysticAdept
		case strings.EqualFold(quality.Name, qualityAdept):
			classification = engine.ClassificationAdept
		case strings.HasPrefix(strings.ToLower(quality.Name), aspectedMagicianPrefix):
			classification = engine.ClassificationAspectedMagician
		case strings.EqualFold(quality.Name, qualityTechnomancer),
			strings.EqualFold(quality.Name, qualityLatentTechno):
			classification = engine.ClassificationTechnomancer
		}
		if classification != engine.ClassificationMundane {
			break
		}
	}

	return &engine.ClassifyMagicUserOutput{Classification: classification}, nil
}

// CalculateArmor totals the worn armor stack. The highest piece counts
// in full on each track, every other piece counts at half. Stacking
// past the body threshold costs dice: one point of penalty per two
// points of ballistic armor over BOD+2.
func (a *Adapter) CalculateArmor(
	_ context.Context,
	input *engine.CalculateArmorInput,
) (*engine.CalculateArmorOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	character := input.Character

	out := &engine.CalculateArmorOutput{}
	if len(character.Equipment.Armor) == 0 {
		return out, nil
	}

	out.Ballistic = stackArmor(character.Equipment.Armor, func(piece sr4.Armor) int32 { return piece.Ballistic })
	out.Impact = stackArmor(character.Equipment.Armor, func(piece sr4.Armor) int32 { return piece.Impact })

	threshold := character.AttributeRating(sr4.AttributeBody) + encumbranceFreeMargin
	if over := out.Ballistic - threshold; over > 0 {
		out.EncumbrancePenalty = -(over / encumbrancePointsPerBox)
	}

	return out, nil
}

func stackArmor(pieces []sr4.Armor, rating func(sr4.Armor) int32) int32 {
	bestIndex := -1
	var best int32
	for i, piece := range pieces {
		if value := rating(piece); bestIndex < 0 || value > best {
			best = value
			bestIndex = i
		}
	}

	var total int32
	for i, piece := range pieces {
		if i == bestIndex {
			total += rating(piece)
			continue
		}
		total += rating(piece) / 2
	}
	return total
}
