package ledger

import (
	"github.com/KirkDiggler/sr4-ledger/internal/engine"
	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
)

// CreateCharacterInput defines the request for creating a new character.
// BuildPoints of zero selects the standard allowance.
type CreateCharacterInput struct {
	PlayerID    string
	Name        string
	Metatype    string
	Metavariant string
	BuildPoints int32
}

// CreateCharacterOutput contains the newly created character.
type CreateCharacterOutput struct {
	Character *sr4.Character
}

// GetCharacterInput defines the request for fetching a character.
type GetCharacterInput struct {
	ID string
}

// GetCharacterOutput contains the fetched character.
type GetCharacterOutput struct {
	Character *sr4.Character
}

// ListCharactersInput defines the request for listing a player's characters.
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput contains the player's characters.
type ListCharactersOutput struct {
	Characters []*sr4.Character
}

// DeleteCharacterInput defines the request for deleting a character.
type DeleteCharacterInput struct {
	ID string
}

// DeleteCharacterOutput confirms the deletion.
type DeleteCharacterOutput struct {
	Message string
}

// GetDerivedStatsInput defines the request for the derived projection.
type GetDerivedStatsInput struct {
	ID string
}

// GetDerivedStatsOutput pairs the character with its derived projection.
type GetDerivedStatsOutput struct {
	Character *sr4.Character
	Stats     *engine.CalculateDerivedStatsOutput
}

// SetIdentityInput defines the request for renaming a character.
type SetIdentityInput struct {
	ID    string
	Name  string
	Alias string
}

// SetIdentityOutput contains the updated character.
type SetIdentityOutput struct {
	Character *sr4.Character
}

// SetMetatypeInput defines the request for changing metatype during
// creation. Metavariant is optional.
type SetMetatypeInput struct {
	ID          string
	Metatype    string
	Metavariant string
}

// SetMetatypeOutput contains the updated character.
type SetMetatypeOutput struct {
	Character *sr4.Character
}

// SetAttributeInput defines the request for setting an attribute's base
// rating during creation. Values outside the metatype range are clamped.
type SetAttributeInput struct {
	ID    string
	Code  sr4.Attribute
	Value int32
}

// SetAttributeOutput contains the updated character.
type SetAttributeOutput struct {
	Character *sr4.Character
}

// SetResourcesInput defines the request for setting the build points
// converted into starting nuyen.
type SetResourcesInput struct {
	ID string
	BP int32
}

// SetResourcesOutput contains the updated character.
type SetResourcesOutput struct {
	Character *sr4.Character
}

// AddQualityInput defines the request for taking a quality.
type AddQualityInput struct {
	ID   string
	Name string
}

// AddQualityOutput contains the updated character.
type AddQualityOutput struct {
	Character *sr4.Character
}

// RemoveQualityInput defines the request for removing a quality by its
// instance ID.
type RemoveQualityInput struct {
	ID        string
	QualityID string
}

// RemoveQualityOutput contains the updated character.
type RemoveQualityOutput struct {
	Character *sr4.Character
}

// SetSkillInput defines the request for setting an active skill rating
// during creation. Rating zero removes the skill. Specialization is
// optional.
type SetSkillInput struct {
	ID             string
	Name           string
	Rating         int32
	Specialization string
}

// SetSkillOutput contains the updated character.
type SetSkillOutput struct {
	Character *sr4.Character
}

// RemoveSkillInput defines the request for dropping an active skill.
type RemoveSkillInput struct {
	ID   string
	Name string
}

// RemoveSkillOutput contains the updated character.
type RemoveSkillOutput struct {
	Character *sr4.Character
}

// SetKnowledgeSkillInput defines the request for setting a knowledge
// skill rating during creation.
type SetKnowledgeSkillInput struct {
	ID             string
	Name           string
	Rating         int32
	Specialization string
}

// SetKnowledgeSkillOutput contains the updated character.
type SetKnowledgeSkillOutput struct {
	Character *sr4.Character
}

// RemoveKnowledgeSkillInput defines the request for dropping a knowledge
// skill.
type RemoveKnowledgeSkillInput struct {
	ID   string
	Name string
}

// RemoveKnowledgeSkillOutput contains the updated character.
type RemoveKnowledgeSkillOutput struct {
	Character *sr4.Character
}

// SetMentorInput defines the request for choosing a mentor spirit.
type SetMentorInput struct {
	ID   string
	Name string
}

// SetMentorOutput contains the updated character.
type SetMentorOutput struct {
	Character *sr4.Character
}

// RemoveMentorInput defines the request for dropping the mentor spirit.
type RemoveMentorInput struct {
	ID string
}

// RemoveMentorOutput contains the updated character.
type RemoveMentorOutput struct {
	Character *sr4.Character
}

// AddMartialArtInput defines the request for learning a martial art
// style during creation.
type AddMartialArtInput struct {
	ID    string
	Style string
}

// AddMartialArtOutput contains the updated character.
type AddMartialArtOutput struct {
	Character *sr4.Character
}

// RemoveMartialArtInput defines the request for dropping a martial art
// style and its techniques.
type RemoveMartialArtInput struct {
	ID    string
	Style string
}

// RemoveMartialArtOutput contains the updated character.
type RemoveMartialArtOutput struct {
	Character *sr4.Character
}

// AddMartialArtTechniqueInput defines the request for learning a
// technique within a known style.
type AddMartialArtTechniqueInput struct {
	ID        string
	Style     string
	Technique string
}

// AddMartialArtTechniqueOutput contains the updated character.
type AddMartialArtTechniqueOutput struct {
	Character *sr4.Character
}

// AddWeaponInput defines the request for purchasing a weapon.
type AddWeaponInput struct {
	ID   string
	Name string
}

// AddWeaponOutput contains the updated character.
type AddWeaponOutput struct {
	Character *sr4.Character
}

// RemoveWeaponInput defines the request for selling back a weapon.
type RemoveWeaponInput struct {
	ID       string
	WeaponID string
}

// RemoveWeaponOutput contains the updated character.
type RemoveWeaponOutput struct {
	Character *sr4.Character
}

// AddArmorInput defines the request for purchasing armor.
type AddArmorInput struct {
	ID   string
	Name string
}

// AddArmorOutput contains the updated character.
type AddArmorOutput struct {
	Character *sr4.Character
}

// RemoveArmorInput defines the request for selling back armor.
type RemoveArmorInput struct {
	ID      string
	ArmorID string
}

// RemoveArmorOutput contains the updated character.
type RemoveArmorOutput struct {
	Character *sr4.Character
}

// AddArmorModInput defines the request for fitting a modification onto
// owned armor. Rating is ignored for mods without one.
type AddArmorModInput struct {
	ID      string
	ArmorID string
	Mod     string
	Rating  int32
}

// AddArmorModOutput contains the updated character.
type AddArmorModOutput struct {
	Character *sr4.Character
}

// RemoveArmorModInput defines the request for stripping a modification
// from owned armor.
type RemoveArmorModInput struct {
	ID      string
	ArmorID string
	Mod     string
}

// RemoveArmorModOutput contains the updated character.
type RemoveArmorModOutput struct {
	Character *sr4.Character
}

// AddCyberwareInput defines the request for installing cyberware at a
// given grade. Grade defaults to standard. Rating applies only to rated
// items.
type AddCyberwareInput struct {
	ID     string
	Name   string
	Grade  sr4.Grade
	Rating int32
}

// AddCyberwareOutput contains the updated character.
type AddCyberwareOutput struct {
	Character *sr4.Character
}

// RemoveCyberwareInput defines the request for removing installed
// cyberware, returning its stored cost and essence.
type RemoveCyberwareInput struct {
	ID          string
	CyberwareID string
}

// RemoveCyberwareOutput contains the updated character.
type RemoveCyberwareOutput struct {
	Character *sr4.Character
}

// AddBiowareInput defines the request for installing bioware at a given
// grade.
type AddBiowareInput struct {
	ID     string
	Name   string
	Grade  sr4.Grade
	Rating int32
}

// AddBiowareOutput contains the updated character.
type AddBiowareOutput struct {
	Character *sr4.Character
}

// RemoveBiowareInput defines the request for removing installed bioware.
type RemoveBiowareInput struct {
	ID        string
	BiowareID string
}

// RemoveBiowareOutput contains the updated character.
type RemoveBiowareOutput struct {
	Character *sr4.Character
}

// AddVehicleInput defines the request for purchasing a vehicle or drone.
type AddVehicleInput struct {
	ID   string
	Name string
}

// AddVehicleOutput contains the updated character.
type AddVehicleOutput struct {
	Character *sr4.Character
}

// RemoveVehicleInput defines the request for selling back a vehicle.
type RemoveVehicleInput struct {
	ID        string
	VehicleID string
}

// RemoveVehicleOutput contains the updated character.
type RemoveVehicleOutput struct {
	Character *sr4.Character
}

// AddGearInput defines the request for purchasing gear. Quantity zero
// buys one. ContainerID nests the purchase inside owned gear with
// capacity.
type AddGearInput struct {
	ID          string
	Name        string
	Rating      int32
	Quantity    int32
	ContainerID string
}

// AddGearOutput contains the updated character.
type AddGearOutput struct {
	Character *sr4.Character
}

// RemoveGearInput defines the request for selling back gear. Contents of
// a container are removed and refunded with it.
type RemoveGearInput struct {
	ID     string
	GearID string
}

// RemoveGearOutput contains the updated character.
type RemoveGearOutput struct {
	Character *sr4.Character
}

// MoveGearInput defines the request for moving gear between containers.
// An empty ContainerID moves the item to the top level.
type MoveGearInput struct {
	ID          string
	GearID      string
	ContainerID string
}

// MoveGearOutput contains the updated character.
type MoveGearOutput struct {
	Character *sr4.Character
}

// SetLifestyleInput defines the request for renting a lifestyle for a
// number of months. Months of zero rents one.
type SetLifestyleInput struct {
	ID     string
	Name   string
	Months int32
}

// SetLifestyleOutput contains the updated character.
type SetLifestyleOutput struct {
	Character *sr4.Character
}

// RemoveLifestyleInput defines the request for cancelling the lifestyle
// with a full refund.
type RemoveLifestyleInput struct {
	ID string
}

// RemoveLifestyleOutput contains the updated character.
type RemoveLifestyleOutput struct {
	Character *sr4.Character
}

// InitializeMagicInput defines the request for opening the magic block
// on an awakened character.
type InitializeMagicInput struct {
	ID        string
	Tradition string
}

// InitializeMagicOutput contains the updated character.
type InitializeMagicOutput struct {
	Character *sr4.Character
}

// InitializeResonanceInput defines the request for opening the resonance
// block on a technomancer.
type InitializeResonanceInput struct {
	ID     string
	Stream string
}

// InitializeResonanceOutput contains the updated character.
type InitializeResonanceOutput struct {
	Character *sr4.Character
}

// AddSpellInput defines the request for learning a spell.
type AddSpellInput struct {
	ID   string
	Name string
}

// AddSpellOutput contains the updated character.
type AddSpellOutput struct {
	Character *sr4.Character
}

// RemoveSpellInput defines the request for unlearning a spell.
type RemoveSpellInput struct {
	ID   string
	Name string
}

// RemoveSpellOutput contains the updated character.
type RemoveSpellOutput struct {
	Character *sr4.Character
}

// AddPowerInput defines the request for taking an adept power at a
// rating. Rating zero takes rating one.
type AddPowerInput struct {
	ID     string
	Name   string
	Rating int32
}

// AddPowerOutput contains the updated character.
type AddPowerOutput struct {
	Character *sr4.Character
}

// RemovePowerInput defines the request for dropping an adept power,
// returning its power points.
type RemovePowerInput struct {
	ID   string
	Name string
}

// RemovePowerOutput contains the updated character.
type RemovePowerOutput struct {
	Character *sr4.Character
}

// AddComplexFormInput defines the request for threading a new complex
// form.
type AddComplexFormInput struct {
	ID   string
	Name string
}

// AddComplexFormOutput contains the updated character.
type AddComplexFormOutput struct {
	Character *sr4.Character
}

// RemoveComplexFormInput defines the request for dropping a complex
// form.
type RemoveComplexFormInput struct {
	ID   string
	Name string
}

// RemoveComplexFormOutput contains the updated character.
type RemoveComplexFormOutput struct {
	Character *sr4.Character
}

// AddSpiritInput defines the request for recording a summoned spirit.
type AddSpiritInput struct {
	ID       string
	Type     string
	Force    int32
	Services int32
	Bound    bool
}

// AddSpiritOutput contains the updated character.
type AddSpiritOutput struct {
	Character *sr4.Character
}

// RemoveSpiritInput defines the request for dismissing a spirit.
type RemoveSpiritInput struct {
	ID       string
	SpiritID string
}

// RemoveSpiritOutput contains the updated character.
type RemoveSpiritOutput struct {
	Character *sr4.Character
}

// UseSpiritServiceInput defines the request for consuming one service
// from a bound or summoned spirit. A spirit at zero services departs.
type UseSpiritServiceInput struct {
	ID       string
	SpiritID string
}

// UseSpiritServiceOutput contains the updated character.
type UseSpiritServiceOutput struct {
	Character *sr4.Character
}

// AddSpriteInput defines the request for recording a compiled sprite.
type AddSpriteInput struct {
	ID         string
	Type       string
	Rating     int32
	Tasks      int32
	Registered bool
}

// AddSpriteOutput contains the updated character.
type AddSpriteOutput struct {
	Character *sr4.Character
}

// RemoveSpriteInput defines the request for decompiling a sprite.
type RemoveSpriteInput struct {
	ID       string
	SpriteID string
}

// RemoveSpriteOutput contains the updated character.
type RemoveSpriteOutput struct {
	Character *sr4.Character
}

// UseSpriteTaskInput defines the request for consuming one task from a
// compiled sprite. A sprite at zero tasks decompiles.
type UseSpriteTaskInput struct {
	ID       string
	SpriteID string
}

// UseSpriteTaskOutput contains the updated character.
type UseSpriteTaskOutput struct {
	Character *sr4.Character
}

// AddFocusInput defines the request for purchasing and bonding a focus.
type AddFocusInput struct {
	ID    string
	Name  string
	Type  string
	Force int32
	Cost  int32
}

// AddFocusOutput contains the updated character.
type AddFocusOutput struct {
	Character *sr4.Character
}

// RemoveFocusInput defines the request for selling back a focus.
type RemoveFocusInput struct {
	ID      string
	FocusID string
}

// RemoveFocusOutput contains the updated character.
type RemoveFocusOutput struct {
	Character *sr4.Character
}

// EnterCareerModeInput defines the request for finalizing creation and
// switching to karma-based advancement.
type EnterCareerModeInput struct {
	ID string
}

// EnterCareerModeOutput contains the updated character.
type EnterCareerModeOutput struct {
	Character *sr4.Character
}

// AwardKarmaInput defines the request for granting karma.
type AwardKarmaInput struct {
	ID     string
	Amount int32
	Reason string
}

// AwardKarmaOutput contains the updated character.
type AwardKarmaOutput struct {
	Character *sr4.Character
}

// AwardNuyenInput defines the request for granting nuyen.
type AwardNuyenInput struct {
	ID     string
	Amount int32
	Reason string
}

// AwardNuyenOutput contains the updated character.
type AwardNuyenOutput struct {
	Character *sr4.Character
}

// SpendNuyenInput defines the request for an ad hoc nuyen expense not
// tied to catalog equipment.
type SpendNuyenInput struct {
	ID     string
	Amount int32
	Reason string
}

// SpendNuyenOutput contains the updated character.
type SpendNuyenOutput struct {
	Character *sr4.Character
}

// ImproveAttributeInput defines the request for raising an attribute by
// one with karma.
type ImproveAttributeInput struct {
	ID   string
	Code sr4.Attribute
}

// ImproveAttributeOutput contains the updated character.
type ImproveAttributeOutput struct {
	Character *sr4.Character
}

// ImproveSkillInput defines the request for raising an active skill by
// one with karma, or learning it at rating one.
type ImproveSkillInput struct {
	ID   string
	Name string
}

// ImproveSkillOutput contains the updated character.
type ImproveSkillOutput struct {
	Character *sr4.Character
}

// ImproveKnowledgeSkillInput defines the request for raising a knowledge
// skill by one with karma, or learning it at rating one.
type ImproveKnowledgeSkillInput struct {
	ID   string
	Name string
}

// ImproveKnowledgeSkillOutput contains the updated character.
type ImproveKnowledgeSkillOutput struct {
	Character *sr4.Character
}

// AddSpecializationInput defines the request for buying a specialization
// on a known skill with karma.
type AddSpecializationInput struct {
	ID             string
	Skill          string
	Specialization string
}

// AddSpecializationOutput contains the updated character.
type AddSpecializationOutput struct {
	Character *sr4.Character
}

// InitiateInput defines the request for an initiation ordeal.
type InitiateInput struct {
	ID string
}

// InitiateOutput contains the updated character.
type InitiateOutput struct {
	Character *sr4.Character
}

// AddMetamagicInput defines the request for learning a metamagic
// technique. One technique per initiate grade.
type AddMetamagicInput struct {
	ID   string
	Name string
}

// AddMetamagicOutput contains the updated character.
type AddMetamagicOutput struct {
	Character *sr4.Character
}

// SubmergeInput defines the request for a submersion.
type SubmergeInput struct {
	ID string
}

// SubmergeOutput contains the updated character.
type SubmergeOutput struct {
	Character *sr4.Character
}

// AddEchoInput defines the request for learning an echo. One echo per
// submersion grade.
type AddEchoInput struct {
	ID   string
	Name string
}

// AddEchoOutput contains the updated character.
type AddEchoOutput struct {
	Character *sr4.Character
}

// ApplyDamageInput defines the request for marking damage boxes on a
// condition monitor.
type ApplyDamageInput struct {
	ID    string
	Track sr4.DamageTrack
	Boxes int32
}

// ApplyDamageOutput contains the updated character.
type ApplyDamageOutput struct {
	Character *sr4.Character
}

// HealDamageInput defines the request for clearing damage boxes from a
// condition monitor.
type HealDamageInput struct {
	ID    string
	Track sr4.DamageTrack
	Boxes int32
}

// HealDamageOutput contains the updated character.
type HealDamageOutput struct {
	Character *sr4.Character
}

// SpendEdgeInput defines the request for spending one point of edge.
type SpendEdgeInput struct {
	ID string
}

// SpendEdgeOutput contains the updated character.
type SpendEdgeOutput struct {
	Character *sr4.Character
}

// RefreshEdgeInput defines the request for restoring all spent edge.
type RefreshEdgeInput struct {
	ID string
}

// RefreshEdgeOutput contains the updated character.
type RefreshEdgeOutput struct {
	Character *sr4.Character
}
