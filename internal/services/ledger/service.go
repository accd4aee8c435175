// Package ledger defines the interface for character resource ledger
// operations. Every mutation the engine supports goes through this
// interface; callers never touch the snapshot directly.
package ledger

import (
	"context"
)

// Service defines the interface for ledger operations. Each method loads
// the current snapshot, validates the request against it and the
// advancement state, applies the change, and persists the result as one
// atomic replacement. Failures are all-or-nothing: a rejected operation
// leaves the stored character untouched.
type Service interface {
	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	GetDerivedStats(ctx context.Context, input *GetDerivedStatsInput) (*GetDerivedStatsOutput, error)
	SetIdentity(ctx context.Context, input *SetIdentityInput) (*SetIdentityOutput, error)
	SetMetatype(ctx context.Context, input *SetMetatypeInput) (*SetMetatypeOutput, error)

	// Creation-mode point buy
	SetAttribute(ctx context.Context, input *SetAttributeInput) (*SetAttributeOutput, error)
	SetResources(ctx context.Context, input *SetResourcesInput) (*SetResourcesOutput, error)
	AddQuality(ctx context.Context, input *AddQualityInput) (*AddQualityOutput, error)
	RemoveQuality(ctx context.Context, input *RemoveQualityInput) (*RemoveQualityOutput, error)
	SetSkill(ctx context.Context, input *SetSkillInput) (*SetSkillOutput, error)
	RemoveSkill(ctx context.Context, input *RemoveSkillInput) (*RemoveSkillOutput, error)
	SetKnowledgeSkill(ctx context.Context, input *SetKnowledgeSkillInput) (*SetKnowledgeSkillOutput, error)
	RemoveKnowledgeSkill(ctx context.Context, input *RemoveKnowledgeSkillInput) (*RemoveKnowledgeSkillOutput, error)
	SetMentor(ctx context.Context, input *SetMentorInput) (*SetMentorOutput, error)
	RemoveMentor(ctx context.Context, input *RemoveMentorInput) (*RemoveMentorOutput, error)
	AddMartialArt(ctx context.Context, input *AddMartialArtInput) (*AddMartialArtOutput, error)
	RemoveMartialArt(ctx context.Context, input *RemoveMartialArtInput) (*RemoveMartialArtOutput, error)
	AddMartialArtTechnique(ctx context.Context, input *AddMartialArtTechniqueInput) (*AddMartialArtTechniqueOutput, error)

	// Equipment purchases and removals (both modes, nuyen gated)
	AddWeapon(ctx context.Context, input *AddWeaponInput) (*AddWeaponOutput, error)
	RemoveWeapon(ctx context.Context, input *RemoveWeaponInput) (*RemoveWeaponOutput, error)
	AddArmor(ctx context.Context, input *AddArmorInput) (*AddArmorOutput, error)
	RemoveArmor(ctx context.Context, input *RemoveArmorInput) (*RemoveArmorOutput, error)
	AddArmorMod(ctx context.Context, input *AddArmorModInput) (*AddArmorModOutput, error)
	RemoveArmorMod(ctx context.Context, input *RemoveArmorModInput) (*RemoveArmorModOutput, error)
	AddCyberware(ctx context.Context, input *AddCyberwareInput) (*AddCyberwareOutput, error)
	RemoveCyberware(ctx context.Context, input *RemoveCyberwareInput) (*RemoveCyberwareOutput, error)
	AddBioware(ctx context.Context, input *AddBiowareInput) (*AddBiowareOutput, error)
	RemoveBioware(ctx context.Context, input *RemoveBiowareInput) (*RemoveBiowareOutput, error)
	AddVehicle(ctx context.Context, input *AddVehicleInput) (*AddVehicleOutput, error)
	RemoveVehicle(ctx context.Context, input *RemoveVehicleInput) (*RemoveVehicleOutput, error)
	AddGear(ctx context.Context, input *AddGearInput) (*AddGearOutput, error)
	RemoveGear(ctx context.Context, input *RemoveGearInput) (*RemoveGearOutput, error)
	MoveGear(ctx context.Context, input *MoveGearInput) (*MoveGearOutput, error)
	SetLifestyle(ctx context.Context, input *SetLifestyleInput) (*SetLifestyleOutput, error)
	RemoveLifestyle(ctx context.Context, input *RemoveLifestyleInput) (*RemoveLifestyleOutput, error)

	// Magic and resonance
	InitializeMagic(ctx context.Context, input *InitializeMagicInput) (*InitializeMagicOutput, error)
	InitializeResonance(ctx context.Context, input *InitializeResonanceInput) (*InitializeResonanceOutput, error)
	AddSpell(ctx context.Context, input *AddSpellInput) (*AddSpellOutput, error)
	RemoveSpell(ctx context.Context, input *RemoveSpellInput) (*RemoveSpellOutput, error)
	AddPower(ctx context.Context, input *AddPowerInput) (*AddPowerOutput, error)
	RemovePower(ctx context.Context, input *RemovePowerInput) (*RemovePowerOutput, error)
	AddComplexForm(ctx context.Context, input *AddComplexFormInput) (*AddComplexFormOutput, error)
	RemoveComplexForm(ctx context.Context, input *RemoveComplexFormInput) (*RemoveComplexFormOutput, error)
	AddSpirit(ctx context.Context, input *AddSpiritInput) (*AddSpiritOutput, error)
	RemoveSpirit(ctx context.Context, input *RemoveSpiritInput) (*RemoveSpiritOutput, error)
	UseSpiritService(ctx context.Context, input *UseSpiritServiceInput) (*UseSpiritServiceOutput, error)
	AddSprite(ctx context.Context, input *AddSpriteInput) (*AddSpriteOutput, error)
	RemoveSprite(ctx context.Context, input *RemoveSpriteInput) (*RemoveSpriteOutput, error)
	UseSpriteTask(ctx context.Context, input *UseSpriteTaskInput) (*UseSpriteTaskOutput, error)
	AddFocus(ctx context.Context, input *AddFocusInput) (*AddFocusOutput, error)
	RemoveFocus(ctx context.Context, input *RemoveFocusInput) (*RemoveFocusOutput, error)

	// Career advancement
	EnterCareerMode(ctx context.Context, input *EnterCareerModeInput) (*EnterCareerModeOutput, error)
	AwardKarma(ctx context.Context, input *AwardKarmaInput) (*AwardKarmaOutput, error)
	AwardNuyen(ctx context.Context, input *AwardNuyenInput) (*AwardNuyenOutput, error)
	SpendNuyen(ctx context.Context, input *SpendNuyenInput) (*SpendNuyenOutput, error)
	ImproveAttribute(ctx context.Context, input *ImproveAttributeInput) (*ImproveAttributeOutput, error)
	ImproveSkill(ctx context.Context, input *ImproveSkillInput) (*ImproveSkillOutput, error)
	ImproveKnowledgeSkill(ctx context.Context, input *ImproveKnowledgeSkillInput) (*ImproveKnowledgeSkillOutput, error)
	AddSpecialization(ctx context.Context, input *AddSpecializationInput) (*AddSpecializationOutput, error)
	Initiate(ctx context.Context, input *InitiateInput) (*InitiateOutput, error)
	AddMetamagic(ctx context.Context, input *AddMetamagicInput) (*AddMetamagicOutput, error)
	Submerge(ctx context.Context, input *SubmergeInput) (*SubmergeOutput, error)
	AddEcho(ctx context.Context, input *AddEchoInput) (*AddEchoOutput, error)

	// Condition and edge
	ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error)
	HealDamage(ctx context.Context, input *HealDamageInput) (*HealDamageOutput, error)
	SpendEdge(ctx context.Context, input *SpendEdgeInput) (*SpendEdgeOutput, error)
	RefreshEdge(ctx context.Context, input *RefreshEdgeInput) (*RefreshEdgeOutput, error)
}
