package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/sr4-ledger/internal/catalog"
	"github.com/KirkDiggler/sr4-ledger/internal/engine"
	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	"github.com/KirkDiggler/sr4-ledger/internal/errors"
	"github.com/KirkDiggler/sr4-ledger/internal/services/ledger"
)

// Creation point-buy methods. Every operation reprices its build point
// category from scratch off the collections, then verifies the total
// still fits the allowance before anything persists.

// SetAttribute sets an attribute's base rating during creation. Values
// outside the metatype range are clamped, not rejected; attribute points
// cost 10 BP per point above the metatype minimum.
func (o *Orchestrator) SetAttribute(
	ctx context.Context,
	input *ledger.SetAttributeInput,
) (*ledger.SetAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCreation(character, "SetAttribute"); err != nil {
		return nil, err
	}

	limit := character.AttributeLimit(input.Code)
	attr := character.Attribute(input.Code)
	if limit == nil || attr == nil {
		return nil, errors.InvalidArgumentf("attribute %q is not available", input.Code)
	}

	newBase := limit.Clamp(input.Value)

	if input.Code == sr4.AttributeMagic && character.Magic != nil {
		classification, err := o.classify(ctx, character)
		if err != nil {
			return nil, err
		}
		if classification.HasAdeptPowers() {
			// Adept power points track the magic rating; lowering it
			// below the points already spent would strand powers.
			newPoints := float64(newBase)
			if character.Magic.PowerPointsUsed > newPoints {
				return nil, errors.InsufficientPowerPoints(character.Magic.PowerPointsUsed, newPoints)
			}
			character.Magic.PowerPoints = newPoints
		}
	}

	attr.Base = newBase
	repriceAttributes(character)
	if err := checkBuildPoints(character); err != nil {
		return nil, err
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.SetAttributeOutput{Character: updated}, nil
}

// SetResources sets how many build points convert into starting nuyen at
// 4,500 nuyen per point. The current balance moves by the delta; shrinking
// the allocation below what has already been spent is rejected.
func (o *Orchestrator) SetResources(
	ctx context.Context,
	input *ledger.SetResourcesInput,
) (*ledger.SetResourcesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BP < 0 {
		return nil, errors.InvalidArgument("resource build points must not be negative")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCreation(character, "SetResources"); err != nil {
		return nil, err
	}

	logMark := len(character.ExpenseLog)

	newStarting := input.BP * engine.NuyenPerResourceBP
	delta := newStarting - character.StartingNuyen
	if character.Nuyen+delta < 0 {
		return nil, errors.Insufficient("nuyen", int(-delta), int(character.Nuyen))
	}

	character.BuildPointsSpent.Resources = input.BP
	if err := checkBuildPoints(character); err != nil {
		return nil, err
	}

	character.StartingNuyen = newStarting
	if delta != 0 {
		character.Nuyen += delta
		character.AppendExpense(o.clock.Now().Unix(), sr4.ExpenseNuyen, delta,
			fmt.Sprintf("Starting resources: %d BP", input.BP))
	}

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.SetResourcesOutput{Character: updated}, nil
}

// AddQuality takes a quality. During creation the catalog BP price is
// charged (negative qualities grant points back); in career mode a
// positive quality costs twice its BP in karma and a negative one is free
// to take. The BP value is captured on the instance so removal always
// reverses exactly what was charged.
func (o *Orchestrator) AddQuality(
	ctx context.Context,
	input *ledger.AddQualityInput,
) (*ledger.AddQualityOutput, error) {
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

	quality, err := o.catalog.GetQuality(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if character.HasQuality(quality.Name) {
		return nil, errors.Duplicate("quality", quality.Name)
	}

	logMark := len(character.ExpenseLog)

	if character.Status == sr4.StatusCareer && quality.Category == sr4.QualityPositive {
		cost := quality.BP * 2
		if err := o.spendKarma(character, cost, "Quality: "+quality.Name); err != nil {
			return nil, err
		}
	}

	character.Qualities = append(character.Qualities, sr4.Quality{
		ID:       o.idGen.Generate(),
		Name:     quality.Name,
		Category: quality.Category,
		BP:       quality.BP,
	})

	if character.Status == sr4.StatusCreation {
		repriceQualities(character)
		if err := checkBuildPoints(character); err != nil {
			return nil, err
		}
	}

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.AddQualityOutput{Character: updated}, nil
}

// RemoveQuality removes a quality by its instance ID. Creation reverses
// the captured BP; in career mode buying off a negative quality costs
// twice its BP in karma and dropping a positive one refunds nothing.
// Losing the last magical or technomancer quality closes the matching
// capability block.
func (o *Orchestrator) RemoveQuality(
	ctx context.Context,
	input *ledger.RemoveQualityInput,
) (*ledger.RemoveQualityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("qualityID", input.QualityID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	quality := character.FindQualityByID(input.QualityID)
	if quality == nil {
		return nil, errors.NotFoundf("quality %q not found", input.QualityID)
	}

	logMark := len(character.ExpenseLog)

	if character.Status == sr4.StatusCareer && quality.Category == sr4.QualityNegative {
		cost := -quality.BP * 2
		if err := o.spendKarma(character, cost, "Bought off quality: "+quality.Name); err != nil {
			return nil, err
		}
	}

	character.RemoveQualityByID(input.QualityID)

	if err := o.reconcileCapabilities(ctx, character); err != nil {
		return nil, err
	}

	if character.Status == sr4.StatusCreation {
		repriceQualities(character)
		repriceAttributes(character)
		repriceMagic(character)
		repriceComplexForms(character)
		if err := checkBuildPoints(character); err != nil {
			return nil, err
		}
	}

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveQualityOutput{Character: updated}, nil
}

// SetSkill upserts an active skill at a rating from 0 to 6 during
// creation. Rating zero drops the skill; a specialization adds 2 BP on
// top of 4 BP per rating point.
func (o *Orchestrator) SetSkill(
	ctx context.Context,
	input *ledger.SetSkillInput,
) (*ledger.SetSkillOutput, error) {
	return o.setSkill(ctx, input, false)
}

// SetKnowledgeSkill upserts a knowledge skill at a rating from 0 to 6
// during creation, at 2 BP per rating point.
func (o *Orchestrator) SetKnowledgeSkill(
	ctx context.Context,
	input *ledger.SetKnowledgeSkillInput,
) (*ledger.SetKnowledgeSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	output, err := o.setSkill(ctx, &ledger.SetSkillInput{
		ID:             input.ID,
		Name:           input.Name,
		Rating:         input.Rating,
		Specialization: input.Specialization,
	}, true)
	if err != nil {
		return nil, err
	}
	return &ledger.SetKnowledgeSkillOutput{Character: output.Character}, nil
}

func (o *Orchestrator) setSkill(
	ctx context.Context,
	input *ledger.SetSkillInput,
	knowledge bool,
) (*ledger.SetSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRange("rating", int(input.Rating), 0, int(sr4.SkillRatingMax), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	operation := "SetSkill"
	if knowledge {
		operation = "SetKnowledgeSkill"
	}
	if err := requireCreation(character, operation); err != nil {
		return nil, err
	}

	skill, err := o.lookupSkill(ctx, input.Name, knowledge)
	if err != nil {
		return nil, err
	}

	if input.Rating == 0 {
		if knowledge {
			character.RemoveKnowledgeSkill(skill.Name)
		} else {
			character.RemoveSkill(skill.Name)
		}
	} else {
		entry := sr4.Skill{
			Name:           skill.Name,
			Rating:         input.Rating,
			Specialization: input.Specialization,
		}
		if knowledge {
			upsertSkill(&character.KnowledgeSkills, entry)
		} else {
			upsertSkill(&character.Skills, entry)
		}
	}

	repriceSkills(character)
	repriceKnowledgeSkills(character)
	if err := checkBuildPoints(character); err != nil {
		return nil, err
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.SetSkillOutput{Character: updated}, nil
}

// RemoveSkill drops an active skill during creation. Removing a skill the
// character never had is a no-op, not an error.
func (o *Orchestrator) RemoveSkill(
	ctx context.Context,
	input *ledger.RemoveSkillInput,
) (*ledger.RemoveSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCreation(character, "RemoveSkill"); err != nil {
		return nil, err
	}

	if character.RemoveSkill(input.Name) {
		repriceSkills(character)
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveSkillOutput{Character: updated}, nil
}

// RemoveKnowledgeSkill drops a knowledge skill during creation. Absent
// names are a no-op.
func (o *Orchestrator) RemoveKnowledgeSkill(
	ctx context.Context,
	input *ledger.RemoveKnowledgeSkillInput,
) (*ledger.RemoveKnowledgeSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCreation(character, "RemoveKnowledgeSkill"); err != nil {
		return nil, err
	}

	if character.RemoveKnowledgeSkill(input.Name) {
		repriceKnowledgeSkills(character)
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveKnowledgeSkillOutput{Character: updated}, nil
}

// SetMentor selects a mentor spirit for 5 BP during creation. Requires an
// open magic block.
func (o *Orchestrator) SetMentor(
	ctx context.Context,
	input *ledger.SetMentorInput,
) (*ledger.SetMentorOutput, error) {
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
	if err := requireCreation(character, "SetMentor"); err != nil {
		return nil, err
	}
	if character.Magic == nil {
		return nil, errors.FailedPrecondition("mentor spirits require an initialized magic block")
	}

	mentor, err := o.catalog.GetMentor(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	character.Magic.Mentor = mentor.Name
	repriceMagic(character)
	if err := checkBuildPoints(character); err != nil {
		return nil, err
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.SetMentorOutput{Character: updated}, nil
}

// RemoveMentor drops the mentor spirit and refunds its 5 BP
func (o *Orchestrator) RemoveMentor(
	ctx context.Context,
	input *ledger.RemoveMentorInput,
) (*ledger.RemoveMentorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCreation(character, "RemoveMentor"); err != nil {
		return nil, err
	}
	if character.Magic == nil || character.Magic.Mentor == "" {
		return nil, errors.NotFound("no mentor spirit selected")
	}

	character.Magic.Mentor = ""
	repriceMagic(character)

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveMentorOutput{Character: updated}, nil
}

// AddMartialArt studies a martial art style during creation for its
// catalog BP price
func (o *Orchestrator) AddMartialArt(
	ctx context.Context,
	input *ledger.AddMartialArtInput,
) (*ledger.AddMartialArtOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("style", input.Style, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCreation(character, "AddMartialArt"); err != nil {
		return nil, err
	}

	style, err := o.catalog.GetMartialArt(ctx, input.Style)
	if err != nil {
		return nil, err
	}
	if character.Equipment.FindMartialArt(style.Name) != nil {
		return nil, errors.Duplicate("martial art", style.Name)
	}

	character.Equipment.MartialArts = append(character.Equipment.MartialArts, sr4.MartialArt{
		Style:  style.Name,
		Rating: 1,
		BP:     style.BP,
	})
	repriceMartialArts(character)
	if err := checkBuildPoints(character); err != nil {
		return nil, err
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.AddMartialArtOutput{Character: updated}, nil
}

// RemoveMartialArt drops a studied style along with its techniques,
// refunding everything spent on both
func (o *Orchestrator) RemoveMartialArt(
	ctx context.Context,
	input *ledger.RemoveMartialArtInput,
) (*ledger.RemoveMartialArtOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCreation(character, "RemoveMartialArt"); err != nil {
		return nil, err
	}

	if character.Equipment.RemoveMartialArt(input.Style) == nil {
		return nil, errors.NotFoundf("martial art %q not found", input.Style)
	}
	repriceMartialArts(character)

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveMartialArtOutput{Character: updated}, nil
}

// AddMartialArtTechnique learns a technique from a studied style for 2 BP
func (o *Orchestrator) AddMartialArtTechnique(
	ctx context.Context,
	input *ledger.AddMartialArtTechniqueInput,
) (*ledger.AddMartialArtTechniqueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("style", input.Style, vb)
	errors.ValidateRequired("technique", input.Technique, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCreation(character, "AddMartialArtTechnique"); err != nil {
		return nil, err
	}

	studied := character.Equipment.FindMartialArt(input.Style)
	if studied == nil {
		return nil, errors.NotFoundf("martial art %q not found", input.Style)
	}

	style, err := o.catalog.GetMartialArt(ctx, input.Style)
	if err != nil {
		return nil, err
	}
	technique, ok := matchTechnique(style.Techniques, input.Technique)
	if !ok {
		return nil, errors.InvalidArgumentf("style %q does not teach technique %q", style.Name, input.Technique)
	}
	for _, known := range studied.Techniques {
		if known == technique {
			return nil, errors.Duplicate("technique", technique)
		}
	}

	studied.Techniques = append(studied.Techniques, technique)
	repriceMartialArts(character)
	if err := checkBuildPoints(character); err != nil {
		return nil, err
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.AddMartialArtTechniqueOutput{Character: updated}, nil
}

// lookupSkill fetches a catalog skill and checks it sits on the right
// list (active vs knowledge)
func (o *Orchestrator) lookupSkill(ctx context.Context, name string, knowledge bool) (*catalog.SkillData, error) {
	data, err := o.catalog.GetSkill(ctx, name)
	if err != nil {
		return nil, err
	}
	if data.Knowledge != knowledge {
		if knowledge {
			return nil, errors.InvalidArgumentf("skill %q is an active skill", data.Name)
		}
		return nil, errors.InvalidArgumentf("skill %q is a knowledge skill", data.Name)
	}
	return data, nil
}

func upsertSkill(skills *[]sr4.Skill, entry sr4.Skill) {
	for i := range *skills {
		if strings.EqualFold((*skills)[i].Name, entry.Name) {
			entry.KarmaSpent = (*skills)[i].KarmaSpent
			(*skills)[i] = entry
			return
		}
	}
	*skills = append(*skills, entry)
}

func matchTechnique(taught []string, name string) (string, bool) {
	for _, technique := range taught {
		if strings.EqualFold(technique, name) {
			return technique, true
		}
	}
	return "", false
}

// Category repricing. Creation mode recomputes each affected category
// from scratch; career mode never touches these totals.

func repriceAttributes(character *sr4.Character) {
	var spent int32
	for code, limit := range character.AttributeLimits {
		attr := character.Attribute(code)
		if attr == nil {
			continue
		}
		spent += (attr.Base - limit.Min) * engine.AttributePointBP
	}
	character.BuildPointsSpent.Attributes = spent
}

func repriceQualities(character *sr4.Character) {
	var spent int32
	for i := range character.Qualities {
		spent += character.Qualities[i].BP
	}
	character.BuildPointsSpent.Qualities = spent
}

func repriceSkills(character *sr4.Character) {
	character.BuildPointsSpent.Skills = priceSkills(character.Skills, engine.SkillPointBP)
}

func repriceKnowledgeSkills(character *sr4.Character) {
	character.BuildPointsSpent.KnowledgeSkills = priceSkills(character.KnowledgeSkills, engine.KnowledgeSkillPointBP)
}

func priceSkills(skills []sr4.Skill, perPoint int32) int32 {
	var spent int32
	for i := range skills {
		spent += skills[i].Rating * perPoint
		if skills[i].Specialization != "" {
			spent += engine.SpecializationBP
		}
	}
	return spent
}

func repriceMagic(character *sr4.Character) {
	if character.Magic == nil {
		character.BuildPointsSpent.Spells = 0
		character.BuildPointsSpent.Mentor = 0
		return
	}
	character.BuildPointsSpent.Spells = int32(len(character.Magic.Spells)) * engine.SpellBP
	if character.Magic.Mentor != "" {
		character.BuildPointsSpent.Mentor = engine.MentorSpiritBP
	} else {
		character.BuildPointsSpent.Mentor = 0
	}
}

func repriceComplexForms(character *sr4.Character) {
	if character.Resonance == nil {
		character.BuildPointsSpent.ComplexForms = 0
		return
	}
	character.BuildPointsSpent.ComplexForms = int32(len(character.Resonance.ComplexForms)) * engine.ComplexFormBP
}

func repriceMartialArts(character *sr4.Character) {
	var spent int32
	for i := range character.Equipment.MartialArts {
		style := &character.Equipment.MartialArts[i]
		spent += style.BP + int32(len(style.Techniques))*engine.MartialArtTechniqueBP
	}
	character.BuildPointsSpent.MartialArts = spent
}
