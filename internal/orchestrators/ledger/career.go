package ledger

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/sr4-ledger/internal/engine"
	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	"github.com/KirkDiggler/sr4-ledger/internal/errors"
	"github.com/KirkDiggler/sr4-ledger/internal/services/ledger"
)

// Career advancement operations. Karma is the sole advancement currency
// once a character leaves creation; every spend follows the two-phase
// contract in the orchestrator helpers.

// EnterCareerMode locks the character out of creation-time point buy.
// The transition is one-directional and refuses an overspent sheet.
func (o *Orchestrator) EnterCareerMode(
	ctx context.Context,
	input *ledger.EnterCareerModeInput,
) (*ledger.EnterCareerModeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if character.Status == sr4.StatusCareer {
		return nil, errors.FailedPrecondition("character is already in career mode")
	}
	if err := checkBuildPoints(character); err != nil {
		return nil, err
	}

	character.Status = sr4.StatusCareer

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.EnterCareerModeOutput{Character: updated}, nil
}

// AwardKarma grants karma. The award raises both the spendable balance
// and the lifetime total that street cred derives from.
func (o *Orchestrator) AwardKarma(
	ctx context.Context,
	input *ledger.AwardKarmaInput,
) (*ledger.AwardKarmaOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Amount <= 0 {
		vb.InvalidField("amount", "must be positive")
	}
	errors.ValidateRequired("reason", input.Reason, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	logMark := len(character.ExpenseLog)
	o.awardKarma(character, input.Amount, input.Reason)

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.AwardKarmaOutput{Character: updated}, nil
}

// AwardNuyen grants nuyen
func (o *Orchestrator) AwardNuyen(
	ctx context.Context,
	input *ledger.AwardNuyenInput,
) (*ledger.AwardNuyenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Amount <= 0 {
		vb.InvalidField("amount", "must be positive")
	}
	errors.ValidateRequired("reason", input.Reason, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	logMark := len(character.ExpenseLog)
	character.Nuyen += input.Amount
	character.AppendExpense(o.clock.Now().Unix(), sr4.ExpenseNuyen, input.Amount, input.Reason)

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.AwardNuyenOutput{Character: updated}, nil
}

// SpendNuyen deducts nuyen for expenses outside the equipment catalog,
// bribes and fixer fees and the like
func (o *Orchestrator) SpendNuyen(
	ctx context.Context,
	input *ledger.SpendNuyenInput,
) (*ledger.SpendNuyenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Amount <= 0 {
		vb.InvalidField("amount", "must be positive")
	}
	errors.ValidateRequired("reason", input.Reason, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	logMark := len(character.ExpenseLog)
	if err := o.spendNuyen(character, input.Amount, input.Reason); err != nil {
		return nil, err
	}

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.SpendNuyenOutput{Character: updated}, nil
}

// ImproveAttribute raises an attribute one step for newRating x 5 karma.
// The ceiling is the metatype augmented max. Adept magic raises power
// points alongside.
func (o *Orchestrator) ImproveAttribute(
	ctx context.Context,
	input *ledger.ImproveAttributeInput,
) (*ledger.ImproveAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCareer(character, "ImproveAttribute"); err != nil {
		return nil, err
	}

	attr := character.Attribute(input.Code)
	limit := character.AttributeLimit(input.Code)
	if attr == nil || limit == nil {
		return nil, errors.InvalidArgumentf("attribute %q is not available", input.Code)
	}

	newRating := attr.Rating() + 1
	if newRating > limit.AugmentedMax {
		return nil, errors.AtLimit(fmt.Sprintf("attribute %s", input.Code), int(limit.AugmentedMax))
	}

	logMark := len(character.ExpenseLog)
	cost := o.engine.AttributeImprovementCost(newRating)
	reason := fmt.Sprintf("Improved %s to %d", input.Code, newRating)
	if err := o.spendKarma(character, cost, reason); err != nil {
		return nil, err
	}
	attr.Karma++

	if input.Code == sr4.AttributeMagic && character.Magic != nil {
		classification, err := o.classify(ctx, character)
		if err != nil {
			return nil, err
		}
		if classification.HasAdeptPowers() {
			character.Magic.PowerPoints++
		}
	}

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.ImproveAttributeOutput{Character: updated}, nil
}

// ImproveSkill raises an active skill one step for newRating x 2 karma,
// or learns it at rating 1 for a flat 4
func (o *Orchestrator) ImproveSkill(
	ctx context.Context,
	input *ledger.ImproveSkillInput,
) (*ledger.ImproveSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCareer(character, "ImproveSkill"); err != nil {
		return nil, err
	}

	data, err := o.lookupSkill(ctx, input.Name, false)
	if err != nil {
		return nil, err
	}

	logMark := len(character.ExpenseLog)
	if skill := character.FindSkill(data.Name); skill != nil {
		newRating := skill.Rating + 1
		if newRating > sr4.SkillRatingMax {
			return nil, errors.AtLimit("skill "+data.Name, int(sr4.SkillRatingMax))
		}
		cost := o.engine.SkillImprovementCost(newRating)
		reason := fmt.Sprintf("Improved %s to %d", data.Name, newRating)
		if err := o.spendKarma(character, cost, reason); err != nil {
			return nil, err
		}
		skill.Rating = newRating
		skill.KarmaSpent += cost
	} else {
		cost := engine.NewSkillKarma
		if err := o.spendKarma(character, cost, "New skill: "+data.Name); err != nil {
			return nil, err
		}
		character.Skills = append(character.Skills, sr4.Skill{
			Name:       data.Name,
			Rating:     1,
			KarmaSpent: cost,
		})
	}

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.ImproveSkillOutput{Character: updated}, nil
}

// ImproveKnowledgeSkill raises a knowledge skill one step for newRating
// x 1 karma, or learns it at rating 1 for a flat 2
func (o *Orchestrator) ImproveKnowledgeSkill(
	ctx context.Context,
	input *ledger.ImproveKnowledgeSkillInput,
) (*ledger.ImproveKnowledgeSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCareer(character, "ImproveKnowledgeSkill"); err != nil {
		return nil, err
	}

	data, err := o.lookupSkill(ctx, input.Name, true)
	if err != nil {
		return nil, err
	}

	logMark := len(character.ExpenseLog)
	if skill := character.FindKnowledgeSkill(data.Name); skill != nil {
		newRating := skill.Rating + 1
		if newRating > sr4.SkillRatingMax {
			return nil, errors.AtLimit("knowledge skill "+data.Name, int(sr4.SkillRatingMax))
		}
		cost := o.engine.KnowledgeSkillImprovementCost(newRating)
		reason := fmt.Sprintf("Improved %s to %d", data.Name, newRating)
		if err := o.spendKarma(character, cost, reason); err != nil {
			return nil, err
		}
		skill.Rating = newRating
		skill.KarmaSpent += cost
	} else {
		cost := engine.NewKnowledgeSkillKarma
		if err := o.spendKarma(character, cost, "New knowledge skill: "+data.Name); err != nil {
			return nil, err
		}
		character.KnowledgeSkills = append(character.KnowledgeSkills, sr4.Skill{
			Name:       data.Name,
			Rating:     1,
			KarmaSpent: cost,
		})
	}

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.ImproveKnowledgeSkillOutput{Character: updated}, nil
}

// AddSpecialization buys a specialization on a known active skill for a
// flat 2 karma. One specialization per skill.
func (o *Orchestrator) AddSpecialization(
	ctx context.Context,
	input *ledger.AddSpecializationInput,
) (*ledger.AddSpecializationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("skill", input.Skill, vb)
	errors.ValidateRequired("specialization", input.Specialization, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCareer(character, "AddSpecialization"); err != nil {
		return nil, err
	}

	skill := character.FindSkill(input.Skill)
	if skill == nil {
		return nil, errors.NotFoundf("skill %q is not known", input.Skill)
	}
	if skill.Specialization != "" {
		return nil, errors.AlreadyExistsf("skill %q already has specialization %q", skill.Name, skill.Specialization)
	}

	logMark := len(character.ExpenseLog)
	cost := engine.SpecializationKarma
	reason := fmt.Sprintf("Specialization: %s (%s)", skill.Name, input.Specialization)
	if err := o.spendKarma(character, cost, reason); err != nil {
		return nil, err
	}
	skill.Specialization = input.Specialization
	skill.KarmaSpent += cost

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.AddSpecializationOutput{Character: updated}, nil
}

// Initiate raises the initiate grade for 10 + newGrade x 3 karma. Each
// grade lifts the magic cap by one and opens one metamagic slot.
func (o *Orchestrator) Initiate(
	ctx context.Context,
	input *ledger.InitiateInput,
) (*ledger.InitiateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCareer(character, "Initiate"); err != nil {
		return nil, err
	}
	if character.Magic == nil {
		return nil, errors.FailedPrecondition("initiation requires an initialized magic block")
	}

	logMark := len(character.ExpenseLog)
	newGrade := character.Magic.InitiateGrade + 1
	cost := o.engine.InitiationCost(newGrade)
	if err := o.spendKarma(character, cost, fmt.Sprintf("Initiation grade %d", newGrade)); err != nil {
		return nil, err
	}

	character.Magic.InitiateGrade = newGrade
	if limit := character.AttributeLimit(sr4.AttributeMagic); limit != nil {
		limit.Max++
		limit.AugmentedMax++
	}

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.InitiateOutput{Character: updated}, nil
}

// AddMetamagic fills one earned metamagic slot. Slots come only from
// initiation, so the count can never pass the initiate grade.
func (o *Orchestrator) AddMetamagic(
	ctx context.Context,
	input *ledger.AddMetamagicInput,
) (*ledger.AddMetamagicOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCareer(character, "AddMetamagic"); err != nil {
		return nil, err
	}
	if character.Magic == nil {
		return nil, errors.FailedPrecondition("metamagic requires an initialized magic block")
	}

	if character.Magic.HasMetamagic(input.Name) {
		return nil, errors.Duplicate("metamagic", input.Name)
	}
	if int32(len(character.Magic.Metamagics)) >= character.Magic.InitiateGrade {
		return nil, errors.AtLimit("metamagic techniques", int(character.Magic.InitiateGrade))
	}

	character.Magic.Metamagics = append(character.Magic.Metamagics, input.Name)

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.AddMetamagicOutput{Character: updated}, nil
}

// Submerge raises the submersion grade for 10 + newGrade x 3 karma. Each
// grade lifts the resonance cap by one and opens one echo slot.
func (o *Orchestrator) Submerge(
	ctx context.Context,
	input *ledger.SubmergeInput,
) (*ledger.SubmergeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCareer(character, "Submerge"); err != nil {
		return nil, err
	}
	if character.Resonance == nil {
		return nil, errors.FailedPrecondition("submersion requires an initialized resonance block")
	}

	logMark := len(character.ExpenseLog)
	newGrade := character.Resonance.SubmersionGrade + 1
	cost := o.engine.SubmersionCost(newGrade)
	if err := o.spendKarma(character, cost, fmt.Sprintf("Submersion grade %d", newGrade)); err != nil {
		return nil, err
	}

	character.Resonance.SubmersionGrade = newGrade
	if limit := character.AttributeLimit(sr4.AttributeResonance); limit != nil {
		limit.Max++
		limit.AugmentedMax++
	}

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.SubmergeOutput{Character: updated}, nil
}

// AddEcho fills one earned echo slot. Slots come only from submersion,
// so the count can never pass the submersion grade.
func (o *Orchestrator) AddEcho(
	ctx context.Context,
	input *ledger.AddEchoInput,
) (*ledger.AddEchoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCareer(character, "AddEcho"); err != nil {
		return nil, err
	}
	if character.Resonance == nil {
		return nil, errors.FailedPrecondition("echoes require an initialized resonance block")
	}

	if character.Resonance.HasEcho(input.Name) {
		return nil, errors.Duplicate("echo", input.Name)
	}
	if int32(len(character.Resonance.Echoes)) >= character.Resonance.SubmersionGrade {
		return nil, errors.AtLimit("echoes", int(character.Resonance.SubmersionGrade))
	}

	character.Resonance.Echoes = append(character.Resonance.Echoes, input.Name)

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.AddEchoOutput{Character: updated}, nil
}
