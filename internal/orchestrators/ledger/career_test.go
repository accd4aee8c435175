package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	"github.com/KirkDiggler/sr4-ledger/internal/errors"
	"github.com/KirkDiggler/sr4-ledger/internal/services/ledger"
	"github.com/KirkDiggler/sr4-ledger/internal/testutils/builders"
)

type CareerTestSuite struct {
	ledgerSuite
}

func TestCareerSuite(t *testing.T) {
	suite.Run(t, new(CareerTestSuite))
}

func (s *CareerTestSuite) seedCareerMagician() *sr4.Character {
	return s.seedCharacter(builders.NewCharacterBuilder().
		AsCareer().
		WithKarma(30).
		WithQuality("quality-1", "Magician", sr4.QualityPositive, 15).
		WithMagic("Hermetic").
		Build())
}

func (s *CareerTestSuite) seedCareerTechnomancer() *sr4.Character {
	return s.seedCharacter(builders.NewCharacterBuilder().
		AsCareer().
		WithKarma(30).
		WithQuality("quality-1", "Technomancer", sr4.QualityPositive, 5).
		WithResonance("Machinist").
		Build())
}

func (s *CareerTestSuite) TestEnterCareerMode_Success() {
	char := s.createCharacter()

	output, err := s.orchestrator.EnterCareerMode(s.ctx, &ledger.EnterCareerModeInput{
		ID: char.ID,
	})

	s.Require().NoError(err)
	s.Equal(sr4.StatusCareer, output.Character.Status)
}

func (s *CareerTestSuite) TestEnterCareerMode_AlreadyInCareer() {
	char := s.seedCareerCharacter()

	output, err := s.orchestrator.EnterCareerMode(s.ctx, &ledger.EnterCareerModeInput{
		ID: char.ID,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsFailedPrecondition(err))
	s.Contains(err.Error(), "character is already in career mode")
}

func (s *CareerTestSuite) TestEnterCareerMode_RefusesOverspentSheet() {
	char := builders.NewCharacterBuilder().WithBuildPoints(10).Build()
	char.BuildPointsSpent.Attributes = 50
	s.seedCharacter(char)

	output, err := s.orchestrator.EnterCareerMode(s.ctx, &ledger.EnterCareerModeInput{
		ID: char.ID,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsResourceExhausted(err))
	s.Contains(err.Error(), "Not enough build points (need 50, have 10)")
}

func (s *CareerTestSuite) TestAwardKarma_Success() {
	char := s.seedCareerCharacter()

	output, err := s.orchestrator.AwardKarma(s.ctx, &ledger.AwardKarmaInput{
		ID:     char.ID,
		Amount: 10,
		Reason: "Completed the Renraku run",
	})

	s.Require().NoError(err)
	s.Equal(int32(40), output.Character.Karma)
	s.Equal(int32(40), output.Character.TotalKarma)

	entry := s.lastExpense(output.Character)
	s.Equal(sr4.ExpenseKarma, entry.Type)
	s.Equal(int32(10), entry.Amount)
	s.Equal("Completed the Renraku run", entry.Reason)
}

func (s *CareerTestSuite) TestAwardKarma_RequiresPositiveAmount() {
	char := s.seedCareerCharacter()

	output, err := s.orchestrator.AwardKarma(s.ctx, &ledger.AwardKarmaInput{
		ID:     char.ID,
		Reason: "Nothing happened",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "amount: is invalid: must be positive")
}

func (s *CareerTestSuite) TestAwardKarma_RequiresReason() {
	char := s.seedCareerCharacter()

	output, err := s.orchestrator.AwardKarma(s.ctx, &ledger.AwardKarmaInput{
		ID:     char.ID,
		Amount: 10,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "reason: is required")
}

func (s *CareerTestSuite) TestAwardNuyen_Success() {
	char := s.seedCareerCharacter()

	output, err := s.orchestrator.AwardNuyen(s.ctx, &ledger.AwardNuyenInput{
		ID:     char.ID,
		Amount: 2000,
		Reason: "Payday",
	})

	s.Require().NoError(err)
	s.Equal(int32(7000), output.Character.Nuyen)

	entry := s.lastExpense(output.Character)
	s.Equal(sr4.ExpenseNuyen, entry.Type)
	s.Equal(int32(2000), entry.Amount)
	s.Equal("Payday", entry.Reason)
}

func (s *CareerTestSuite) TestSpendNuyen_Success() {
	char := s.seedCareerCharacter()

	output, err := s.orchestrator.SpendNuyen(s.ctx, &ledger.SpendNuyenInput{
		ID:     char.ID,
		Amount: 1000,
		Reason: "Bribed the border guard",
	})

	s.Require().NoError(err)
	s.Equal(int32(4000), output.Character.Nuyen)

	entry := s.lastExpense(output.Character)
	s.Equal(int32(-1000), entry.Amount)
	s.Equal("Bribed the border guard", entry.Reason)
}

func (s *CareerTestSuite) TestSpendNuyen_Insufficient() {
	char := s.seedCareerCharacter()

	output, err := s.orchestrator.SpendNuyen(s.ctx, &ledger.SpendNuyenInput{
		ID:     char.ID,
		Amount: 6000,
		Reason: "Down payment",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsResourceExhausted(err))
	s.Contains(err.Error(), "Not enough nuyen (need 6000, have 5000)")
}

func (s *CareerTestSuite) TestImproveAttribute_Success() {
	char := s.seedCareerCharacter()

	output, err := s.orchestrator.ImproveAttribute(s.ctx, &ledger.ImproveAttributeInput{
		ID:   char.ID,
		Code: sr4.AttributeBody,
	})

	s.Require().NoError(err)
	s.Equal(int32(20), output.Character.Karma)

	attr := output.Character.Attributes[sr4.AttributeBody]
	s.Equal(int32(1), attr.Base)
	s.Equal(int32(1), attr.Karma)
	s.Equal(int32(2), attr.Rating())

	entry := s.lastExpense(output.Character)
	s.Equal(int32(-10), entry.Amount)
	s.Equal("Improved BOD to 2", entry.Reason)
}

func (s *CareerTestSuite) TestImproveAttribute_CostScalesWithRating() {
	char := s.seedCharacter(builders.NewCharacterBuilder().
		AsCareer().
		WithKarma(30).
		WithAttribute(sr4.AttributeBody, 4).
		Build())

	output, err := s.orchestrator.ImproveAttribute(s.ctx, &ledger.ImproveAttributeInput{
		ID:   char.ID,
		Code: sr4.AttributeBody,
	})

	s.Require().NoError(err)
	s.Equal(int32(5), output.Character.Attributes[sr4.AttributeBody].Rating())

	entry := s.lastExpense(output.Character)
	s.Equal(int32(-25), entry.Amount)
	s.Equal("Improved BOD to 5", entry.Reason)
}

func (s *CareerTestSuite) TestImproveAttribute_AtAugmentedMax() {
	char := s.seedCharacter(builders.NewCharacterBuilder().
		AsCareer().
		WithKarma(60).
		WithAttribute(sr4.AttributeBody, 9).
		Build())

	output, err := s.orchestrator.ImproveAttribute(s.ctx, &ledger.ImproveAttributeInput{
		ID:   char.ID,
		Code: sr4.AttributeBody,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsOutOfRange(err))
	s.Contains(err.Error(), "attribute BOD is already at its maximum of 9")
}

func (s *CareerTestSuite) TestImproveAttribute_InsufficientKarma() {
	char := s.seedCharacter(builders.NewCharacterBuilder().
		AsCareer().
		WithKarma(3).
		Build())

	output, err := s.orchestrator.ImproveAttribute(s.ctx, &ledger.ImproveAttributeInput{
		ID:   char.ID,
		Code: sr4.AttributeBody,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsResourceExhausted(err))
	s.Contains(err.Error(), "Not enough karma (need 10, have 3)")
}

func (s *CareerTestSuite) TestImproveAttribute_UnknownAttribute() {
	char := s.seedCareerCharacter()

	output, err := s.orchestrator.ImproveAttribute(s.ctx, &ledger.ImproveAttributeInput{
		ID:   char.ID,
		Code: sr4.Attribute("XYZ"),
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), `attribute "XYZ" is not available`)
}

func (s *CareerTestSuite) TestImproveAttribute_CreationMode() {
	char := s.createCharacter()

	output, err := s.orchestrator.ImproveAttribute(s.ctx, &ledger.ImproveAttributeInput{
		ID:   char.ID,
		Code: sr4.AttributeBody,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsFailedPrecondition(err))
	s.Contains(err.Error(), "ImproveAttribute requires career mode")
}

func (s *CareerTestSuite) TestImproveAttribute_AdeptMagicRaisesPowerPoints() {
	char := s.seedCharacter(builders.NewCharacterBuilder().
		AsCareer().
		WithKarma(30).
		WithQuality("quality-1", "Adept", sr4.QualityPositive, 5).
		WithMagic("Somatic").
		Build())
	char.Magic.PowerPoints = 1

	output, err := s.orchestrator.ImproveAttribute(s.ctx, &ledger.ImproveAttributeInput{
		ID:   char.ID,
		Code: sr4.AttributeMagic,
	})

	s.Require().NoError(err)
	s.Equal(int32(2), output.Character.Attributes[sr4.AttributeMagic].Rating())
	s.InDelta(2.0, output.Character.Magic.PowerPoints, 0.0001)
}

func (s *CareerTestSuite) TestImproveSkill_ExistingSkill() {
	char := s.seedCharacter(builders.NewCharacterBuilder().
		AsCareer().
		WithKarma(30).
		WithSkill("Pistols", 3).
		Build())

	output, err := s.orchestrator.ImproveSkill(s.ctx, &ledger.ImproveSkillInput{
		ID:   char.ID,
		Name: "Pistols",
	})

	s.Require().NoError(err)
	s.Equal(int32(22), output.Character.Karma)

	skill := output.Character.FindSkill("Pistols")
	s.Require().NotNil(skill)
	s.Equal(int32(4), skill.Rating)
	s.Equal(int32(8), skill.KarmaSpent)

	entry := s.lastExpense(output.Character)
	s.Equal(int32(-8), entry.Amount)
	s.Equal("Improved Pistols to 4", entry.Reason)
}

func (s *CareerTestSuite) TestImproveSkill_NewSkill() {
	char := s.seedCareerCharacter()

	output, err := s.orchestrator.ImproveSkill(s.ctx, &ledger.ImproveSkillInput{
		ID:   char.ID,
		Name: "Automatics",
	})

	s.Require().NoError(err)
	s.Equal(int32(26), output.Character.Karma)

	skill := output.Character.FindSkill("Automatics")
	s.Require().NotNil(skill)
	s.Equal(int32(1), skill.Rating)
	s.Equal(int32(4), skill.KarmaSpent)

	entry := s.lastExpense(output.Character)
	s.Equal(int32(-4), entry.Amount)
	s.Equal("New skill: Automatics", entry.Reason)
}

func (s *CareerTestSuite) TestImproveSkill_AtMaximum() {
	char := s.seedCharacter(builders.NewCharacterBuilder().
		AsCareer().
		WithKarma(60).
		WithSkill("Pistols", 6).
		Build())

	output, err := s.orchestrator.ImproveSkill(s.ctx, &ledger.ImproveSkillInput{
		ID:   char.ID,
		Name: "Pistols",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsOutOfRange(err))
	s.Contains(err.Error(), "skill Pistols is already at its maximum of 6")
}

func (s *CareerTestSuite) TestImproveSkill_RejectsKnowledgeSkill() {
	char := s.seedCareerCharacter()

	output, err := s.orchestrator.ImproveSkill(s.ctx, &ledger.ImproveSkillInput{
		ID:   char.ID,
		Name: "Magic Theory",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), `skill "Magic Theory" is a knowledge skill`)
}

func (s *CareerTestSuite) TestImproveKnowledgeSkill_ExistingSkill() {
	char := s.seedCharacter(builders.NewCharacterBuilder().
		AsCareer().
		WithKarma(30).
		WithKnowledgeSkill("Magic Theory", 2).
		Build())

	output, err := s.orchestrator.ImproveKnowledgeSkill(s.ctx, &ledger.ImproveKnowledgeSkillInput{
		ID:   char.ID,
		Name: "Magic Theory",
	})

	s.Require().NoError(err)
	s.Equal(int32(27), output.Character.Karma)

	skill := output.Character.FindKnowledgeSkill("Magic Theory")
	s.Require().NotNil(skill)
	s.Equal(int32(3), skill.Rating)

	entry := s.lastExpense(output.Character)
	s.Equal(int32(-3), entry.Amount)
	s.Equal("Improved Magic Theory to 3", entry.Reason)
}

func (s *CareerTestSuite) TestImproveKnowledgeSkill_NewSkill() {
	char := s.seedCareerCharacter()

	output, err := s.orchestrator.ImproveKnowledgeSkill(s.ctx, &ledger.ImproveKnowledgeSkillInput{
		ID:   char.ID,
		Name: "Seattle Street Gangs",
	})

	s.Require().NoError(err)
	s.Equal(int32(28), output.Character.Karma)

	skill := output.Character.FindKnowledgeSkill("Seattle Street Gangs")
	s.Require().NotNil(skill)
	s.Equal(int32(1), skill.Rating)

	entry := s.lastExpense(output.Character)
	s.Equal("New knowledge skill: Seattle Street Gangs", entry.Reason)
}

func (s *CareerTestSuite) TestAddSpecialization_Success() {
	char := s.seedCharacter(builders.NewCharacterBuilder().
		AsCareer().
		WithKarma(30).
		WithSkill("Pistols", 3).
		Build())

	output, err := s.orchestrator.AddSpecialization(s.ctx, &ledger.AddSpecializationInput{
		ID:             char.ID,
		Skill:          "Pistols",
		Specialization: "Semi-Automatics",
	})

	s.Require().NoError(err)
	s.Equal(int32(28), output.Character.Karma)
	s.Equal("Semi-Automatics", output.Character.FindSkill("Pistols").Specialization)

	entry := s.lastExpense(output.Character)
	s.Equal(int32(-2), entry.Amount)
	s.Equal("Specialization: Pistols (Semi-Automatics)", entry.Reason)
}

func (s *CareerTestSuite) TestAddSpecialization_SkillNotKnown() {
	char := s.seedCareerCharacter()

	output, err := s.orchestrator.AddSpecialization(s.ctx, &ledger.AddSpecializationInput{
		ID:             char.ID,
		Skill:          "Blades",
		Specialization: "Swords",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), `skill "Blades" is not known`)
}

func (s *CareerTestSuite) TestAddSpecialization_AlreadySpecialized() {
	char := s.seedCharacter(builders.NewCharacterBuilder().
		AsCareer().
		WithKarma(30).
		WithSkill("Pistols", 3).
		Build())

	_, err := s.orchestrator.AddSpecialization(s.ctx, &ledger.AddSpecializationInput{
		ID: char.ID, Skill: "Pistols", Specialization: "Semi-Automatics",
	})
	s.Require().NoError(err)

	output, err := s.orchestrator.AddSpecialization(s.ctx, &ledger.AddSpecializationInput{
		ID: char.ID, Skill: "Pistols", Specialization: "Revolvers",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsAlreadyExists(err))
	s.Contains(err.Error(), `skill "Pistols" already has specialization "Semi-Automatics"`)
}

func (s *CareerTestSuite) TestInitiate_Success() {
	char := s.seedCareerMagician()

	output, err := s.orchestrator.Initiate(s.ctx, &ledger.InitiateInput{
		ID: char.ID,
	})

	s.Require().NoError(err)
	s.Equal(int32(17), output.Character.Karma)
	s.Equal(int32(1), output.Character.Magic.InitiateGrade)

	limit := output.Character.AttributeLimits[sr4.AttributeMagic]
	s.Equal(int32(7), limit.Max)
	s.Equal(int32(7), limit.AugmentedMax)

	entry := s.lastExpense(output.Character)
	s.Equal(int32(-13), entry.Amount)
	s.Equal("Initiation grade 1", entry.Reason)
}

func (s *CareerTestSuite) TestInitiate_CostRisesPerGrade() {
	char := s.seedCareerMagician()

	_, err := s.orchestrator.Initiate(s.ctx, &ledger.InitiateInput{ID: char.ID})
	s.Require().NoError(err)

	output, err := s.orchestrator.Initiate(s.ctx, &ledger.InitiateInput{ID: char.ID})

	s.Require().NoError(err)
	s.Equal(int32(2), output.Character.Magic.InitiateGrade)
	s.Equal(int32(1), output.Character.Karma)

	entry := s.lastExpense(output.Character)
	s.Equal(int32(-16), entry.Amount)
	s.Equal("Initiation grade 2", entry.Reason)
}

func (s *CareerTestSuite) TestInitiate_RequiresMagic() {
	char := s.seedCareerCharacter()

	output, err := s.orchestrator.Initiate(s.ctx, &ledger.InitiateInput{
		ID: char.ID,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsFailedPrecondition(err))
	s.Contains(err.Error(), "initiation requires an initialized magic block")
}

func (s *CareerTestSuite) TestAddMetamagic_Success() {
	char := s.seedCareerMagician()

	_, err := s.orchestrator.Initiate(s.ctx, &ledger.InitiateInput{ID: char.ID})
	s.Require().NoError(err)

	output, err := s.orchestrator.AddMetamagic(s.ctx, &ledger.AddMetamagicInput{
		ID:   char.ID,
		Name: "Centering",
	})

	s.Require().NoError(err)
	s.Equal([]string{"Centering"}, output.Character.Magic.Metamagics)
}

func (s *CareerTestSuite) TestAddMetamagic_NoOpenSlot() {
	char := s.seedCareerMagician()

	output, err := s.orchestrator.AddMetamagic(s.ctx, &ledger.AddMetamagicInput{
		ID:   char.ID,
		Name: "Centering",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsOutOfRange(err))
	s.Contains(err.Error(), "metamagic techniques is already at its maximum of 0")
}

func (s *CareerTestSuite) TestAddMetamagic_Duplicate() {
	char := s.seedCareerMagician()

	_, err := s.orchestrator.Initiate(s.ctx, &ledger.InitiateInput{ID: char.ID})
	s.Require().NoError(err)
	_, err = s.orchestrator.AddMetamagic(s.ctx, &ledger.AddMetamagicInput{ID: char.ID, Name: "Centering"})
	s.Require().NoError(err)

	output, err := s.orchestrator.AddMetamagic(s.ctx, &ledger.AddMetamagicInput{
		ID:   char.ID,
		Name: "Centering",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsAlreadyExists(err))
	s.Contains(err.Error(), `metamagic "Centering" is already present`)
}

func (s *CareerTestSuite) TestSubmerge_Success() {
	char := s.seedCareerTechnomancer()

	output, err := s.orchestrator.Submerge(s.ctx, &ledger.SubmergeInput{
		ID: char.ID,
	})

	s.Require().NoError(err)
	s.Equal(int32(17), output.Character.Karma)
	s.Equal(int32(1), output.Character.Resonance.SubmersionGrade)

	limit := output.Character.AttributeLimits[sr4.AttributeResonance]
	s.Equal(int32(7), limit.Max)

	entry := s.lastExpense(output.Character)
	s.Equal(int32(-13), entry.Amount)
	s.Equal("Submersion grade 1", entry.Reason)
}

func (s *CareerTestSuite) TestSubmerge_RequiresResonance() {
	char := s.seedCareerCharacter()

	output, err := s.orchestrator.Submerge(s.ctx, &ledger.SubmergeInput{
		ID: char.ID,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsFailedPrecondition(err))
	s.Contains(err.Error(), "submersion requires an initialized resonance block")
}

func (s *CareerTestSuite) TestAddEcho_Success() {
	char := s.seedCareerTechnomancer()

	_, err := s.orchestrator.Submerge(s.ctx, &ledger.SubmergeInput{ID: char.ID})
	s.Require().NoError(err)

	output, err := s.orchestrator.AddEcho(s.ctx, &ledger.AddEchoInput{
		ID:   char.ID,
		Name: "Overclocking",
	})

	s.Require().NoError(err)
	s.Equal([]string{"Overclocking"}, output.Character.Resonance.Echoes)
}

func (s *CareerTestSuite) TestAddEcho_NoOpenSlot() {
	char := s.seedCareerTechnomancer()

	output, err := s.orchestrator.AddEcho(s.ctx, &ledger.AddEchoInput{
		ID:   char.ID,
		Name: "Overclocking",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsOutOfRange(err))
	s.Contains(err.Error(), "echoes is already at its maximum of 0")
}
