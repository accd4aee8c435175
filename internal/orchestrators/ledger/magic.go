package ledger

import (
	"context"

	"github.com/KirkDiggler/sr4-ledger/internal/engine"
	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	"github.com/KirkDiggler/sr4-ledger/internal/errors"
	"github.com/KirkDiggler/sr4-ledger/internal/services/ledger"
)

// Magic and resonance operations. The capability blocks are nullable:
// they exist only while a quality grants the matching classification,
// and the special attribute (MAG or RES) exists only while its block
// does.

// InitializeMagic opens the magic block on an awakened character during
// creation. The MAG attribute appears at rating 1 with a cap of 6;
// adepts and mystic adepts start with power points equal to their magic.
func (o *Orchestrator) InitializeMagic(
	ctx context.Context,
	input *ledger.InitializeMagicInput,
) (*ledger.InitializeMagicOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("tradition", input.Tradition, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCreation(character, "InitializeMagic"); err != nil {
		return nil, err
	}
	if character.Magic != nil {
		return nil, errors.AlreadyExists("magic is already initialized")
	}

	classification, err := o.classify(ctx, character)
	if err != nil {
		return nil, err
	}
	if !classification.IsAwakened() {
		return nil, errors.FailedPrecondition("character has no awakened quality")
	}

	character.Magic = &sr4.Magic{Tradition: input.Tradition}
	character.Attributes[sr4.AttributeMagic] = &sr4.AttributeValue{Base: 1}
	character.AttributeLimits[sr4.AttributeMagic] = &sr4.AttributeLimit{Min: 1, Max: 6, AugmentedMax: 6}
	if classification.HasAdeptPowers() {
		character.Magic.PowerPoints = 1
	}

	repriceAttributes(character)
	if err := checkBuildPoints(character); err != nil {
		return nil, err
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.InitializeMagicOutput{Character: updated}, nil
}

// InitializeResonance opens the resonance block on a technomancer during
// creation. The RES attribute appears at rating 1 with a cap of 6.
func (o *Orchestrator) InitializeResonance(
	ctx context.Context,
	input *ledger.InitializeResonanceInput,
) (*ledger.InitializeResonanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("stream", input.Stream, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCreation(character, "InitializeResonance"); err != nil {
		return nil, err
	}
	if character.Resonance != nil {
		return nil, errors.AlreadyExists("resonance is already initialized")
	}

	classification, err := o.classify(ctx, character)
	if err != nil {
		return nil, err
	}
	if classification != engine.ClassificationTechnomancer {
		return nil, errors.FailedPrecondition("character has no technomancer quality")
	}

	character.Resonance = &sr4.Resonance{Stream: input.Stream}
	character.Attributes[sr4.AttributeResonance] = &sr4.AttributeValue{Base: 1}
	character.AttributeLimits[sr4.AttributeResonance] = &sr4.AttributeLimit{Min: 1, Max: 6, AugmentedMax: 6}

	repriceAttributes(character)
	if err := checkBuildPoints(character); err != nil {
		return nil, err
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.InitializeResonanceOutput{Character: updated}, nil
}

// AddSpell learns a spell: 3 BP during creation, flat 5 karma in career
// mode. Only spellcasting classifications qualify.
func (o *Orchestrator) AddSpell(
	ctx context.Context,
	input *ledger.AddSpellInput,
) (*ledger.AddSpellOutput, error) {
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
	if character.Magic == nil {
		return nil, errors.FailedPrecondition("spells require an initialized magic block")
	}

	classification, err := o.classify(ctx, character)
	if err != nil {
		return nil, err
	}
	if !classification.CastsSpells() {
		return nil, errors.FailedPreconditionf("%s characters cannot learn spells", classification)
	}

	spell, err := o.catalog.GetSpell(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if character.Magic.FindSpell(spell.Name) != nil {
		return nil, errors.Duplicate("spell", spell.Name)
	}

	logMark := len(character.ExpenseLog)
	if character.Status == sr4.StatusCareer {
		if err := o.spendKarma(character, engine.SpellKarma, "Learned spell: "+spell.Name); err != nil {
			return nil, err
		}
	}

	character.Magic.Spells = append(character.Magic.Spells, sr4.Spell{
		Name:     spell.Name,
		Category: spell.Category,
	})

	if character.Status == sr4.StatusCreation {
		repriceMagic(character)
		if err := checkBuildPoints(character); err != nil {
			return nil, err
		}
	}

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.AddSpellOutput{Character: updated}, nil
}

// RemoveSpell unlearns a spell. Creation refunds its 3 BP; career mode
// refunds nothing.
func (o *Orchestrator) RemoveSpell(
	ctx context.Context,
	input *ledger.RemoveSpellInput,
) (*ledger.RemoveSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if character.Magic == nil {
		return nil, errors.FailedPrecondition("spells require an initialized magic block")
	}

	if !character.Magic.RemoveSpell(input.Name) {
		return nil, errors.NotFoundf("spell %q not found", input.Name)
	}
	if character.Status == sr4.StatusCreation {
		repriceMagic(character)
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveSpellOutput{Character: updated}, nil
}

// AddPower takes an adept power, spending power points rather than build
// points or karma. Rated powers cost their per-level price times rating.
func (o *Orchestrator) AddPower(
	ctx context.Context,
	input *ledger.AddPowerInput,
) (*ledger.AddPowerOutput, error) {
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
	if character.Magic == nil {
		return nil, errors.FailedPrecondition("adept powers require an initialized magic block")
	}

	classification, err := o.classify(ctx, character)
	if err != nil {
		return nil, err
	}
	if !classification.HasAdeptPowers() {
		return nil, errors.FailedPreconditionf("%s characters cannot take adept powers", classification)
	}

	power, err := o.catalog.GetPower(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if character.Magic.FindPower(power.Name) != nil {
		return nil, errors.Duplicate("power", power.Name)
	}

	rating, err := resolveRating(input.Rating, power.MaxRating, "power "+power.Name)
	if err != nil {
		return nil, err
	}
	points := power.Cost
	if rating > 0 {
		points *= float64(rating)
	}
	if free := character.Magic.PowerPointsFree(); points > free {
		return nil, errors.InsufficientPowerPoints(points, free)
	}

	character.Magic.Powers = append(character.Magic.Powers, sr4.AdeptPower{
		Name:   power.Name,
		Rating: rating,
		Cost:   points,
	})
	character.Magic.PowerPointsUsed += points

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.AddPowerOutput{Character: updated}, nil
}

// RemovePower drops an adept power and returns the points it held
func (o *Orchestrator) RemovePower(
	ctx context.Context,
	input *ledger.RemovePowerInput,
) (*ledger.RemovePowerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if character.Magic == nil {
		return nil, errors.FailedPrecondition("adept powers require an initialized magic block")
	}

	power := character.Magic.RemovePower(input.Name)
	if power == nil {
		return nil, errors.NotFoundf("power %q not found", input.Name)
	}
	character.Magic.PowerPointsUsed -= power.Cost

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.RemovePowerOutput{Character: updated}, nil
}

// AddComplexForm threads a complex form: 2 BP during creation, flat 5
// karma in career mode. Technomancers only.
func (o *Orchestrator) AddComplexForm(
	ctx context.Context,
	input *ledger.AddComplexFormInput,
) (*ledger.AddComplexFormOutput, error) {
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
	if character.Resonance == nil {
		return nil, errors.FailedPrecondition("complex forms require an initialized resonance block")
	}

	form, err := o.catalog.GetComplexForm(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if character.Resonance.FindComplexForm(form.Name) != nil {
		return nil, errors.Duplicate("complex form", form.Name)
	}

	logMark := len(character.ExpenseLog)
	if character.Status == sr4.StatusCareer {
		if err := o.spendKarma(character, engine.ComplexFormKarma, "Learned complex form: "+form.Name); err != nil {
			return nil, err
		}
	}

	character.Resonance.ComplexForms = append(character.Resonance.ComplexForms, sr4.ComplexForm{
		Name:   form.Name,
		Target: form.Target,
	})

	if character.Status == sr4.StatusCreation {
		repriceComplexForms(character)
		if err := checkBuildPoints(character); err != nil {
			return nil, err
		}
	}

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.AddComplexFormOutput{Character: updated}, nil
}

// RemoveComplexForm drops a complex form. Creation refunds its 2 BP.
func (o *Orchestrator) RemoveComplexForm(
	ctx context.Context,
	input *ledger.RemoveComplexFormInput,
) (*ledger.RemoveComplexFormOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if character.Resonance == nil {
		return nil, errors.FailedPrecondition("complex forms require an initialized resonance block")
	}

	if !character.Resonance.RemoveComplexForm(input.Name) {
		return nil, errors.NotFoundf("complex form %q not found", input.Name)
	}
	if character.Status == sr4.StatusCreation {
		repriceComplexForms(character)
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveComplexFormOutput{Character: updated}, nil
}

// AddSpirit records a summoned spirit and its owed services
func (o *Orchestrator) AddSpirit(
	ctx context.Context,
	input *ledger.AddSpiritInput,
) (*ledger.AddSpiritOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("type", input.Type, vb)
	if input.Force < 1 {
		vb.InvalidField("force", "must be at least 1")
	}
	if input.Services < 0 {
		vb.InvalidField("services", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if character.Magic == nil {
		return nil, errors.FailedPrecondition("spirits require an initialized magic block")
	}

	character.Magic.Spirits = append(character.Magic.Spirits, sr4.Spirit{
		ID:       o.idGen.Generate(),
		Type:     input.Type,
		Force:    input.Force,
		Services: input.Services,
		Bound:    input.Bound,
	})

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.AddSpiritOutput{Character: updated}, nil
}

// RemoveSpirit dismisses a spirit
func (o *Orchestrator) RemoveSpirit(
	ctx context.Context,
	input *ledger.RemoveSpiritInput,
) (*ledger.RemoveSpiritOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if character.Magic == nil {
		return nil, errors.FailedPrecondition("spirits require an initialized magic block")
	}

	if !character.Magic.RemoveSpirit(input.SpiritID) {
		return nil, errors.NotFoundf("spirit %q not found", input.SpiritID)
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveSpiritOutput{Character: updated}, nil
}

// UseSpiritService consumes one owed service. The counter never goes
// below zero; a spirit whose last service is used departs.
func (o *Orchestrator) UseSpiritService(
	ctx context.Context,
	input *ledger.UseSpiritServiceInput,
) (*ledger.UseSpiritServiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if character.Magic == nil {
		return nil, errors.FailedPrecondition("spirits require an initialized magic block")
	}

	spirit := character.Magic.FindSpirit(input.SpiritID)
	if spirit == nil {
		return nil, errors.NotFoundf("spirit %q not found", input.SpiritID)
	}
	if spirit.Services <= 0 {
		return nil, errors.Insufficient("spirit services", 1, int(spirit.Services))
	}

	spirit.Services--
	if spirit.Services == 0 {
		character.Magic.RemoveSpirit(spirit.ID)
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.UseSpiritServiceOutput{Character: updated}, nil
}

// AddSprite records a compiled sprite and its owed tasks
func (o *Orchestrator) AddSprite(
	ctx context.Context,
	input *ledger.AddSpriteInput,
) (*ledger.AddSpriteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("type", input.Type, vb)
	if input.Rating < 1 {
		vb.InvalidField("rating", "must be at least 1")
	}
	if input.Tasks < 0 {
		vb.InvalidField("tasks", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if character.Resonance == nil {
		return nil, errors.FailedPrecondition("sprites require an initialized resonance block")
	}

	character.Resonance.Sprites = append(character.Resonance.Sprites, sr4.Sprite{
		ID:         o.idGen.Generate(),
		Type:       input.Type,
		Rating:     input.Rating,
		Tasks:      input.Tasks,
		Registered: input.Registered,
	})

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.AddSpriteOutput{Character: updated}, nil
}

// RemoveSprite decompiles a sprite
func (o *Orchestrator) RemoveSprite(
	ctx context.Context,
	input *ledger.RemoveSpriteInput,
) (*ledger.RemoveSpriteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if character.Resonance == nil {
		return nil, errors.FailedPrecondition("sprites require an initialized resonance block")
	}

	if !character.Resonance.RemoveSprite(input.SpriteID) {
		return nil, errors.NotFoundf("sprite %q not found", input.SpriteID)
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveSpriteOutput{Character: updated}, nil
}

// UseSpriteTask consumes one owed task. A sprite whose last task is used
// decompiles.
func (o *Orchestrator) UseSpriteTask(
	ctx context.Context,
	input *ledger.UseSpriteTaskInput,
) (*ledger.UseSpriteTaskOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if character.Resonance == nil {
		return nil, errors.FailedPrecondition("sprites require an initialized resonance block")
	}

	sprite := character.Resonance.FindSprite(input.SpriteID)
	if sprite == nil {
		return nil, errors.NotFoundf("sprite %q not found", input.SpriteID)
	}
	if sprite.Tasks <= 0 {
		return nil, errors.Insufficient("sprite tasks", 1, int(sprite.Tasks))
	}

	sprite.Tasks--
	if sprite.Tasks == 0 {
		character.Resonance.RemoveSprite(sprite.ID)
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.UseSpriteTaskOutput{Character: updated}, nil
}

// AddFocus purchases and bonds a focus. Foci are bespoke items priced by
// the caller rather than the catalog; the purchase is still nuyen-gated
// and logged like any other.
func (o *Orchestrator) AddFocus(
	ctx context.Context,
	input *ledger.AddFocusInput,
) (*ledger.AddFocusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if input.Force < 1 {
		vb.InvalidField("force", "must be at least 1")
	}
	if input.Cost < 0 {
		vb.InvalidField("cost", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if character.Magic == nil {
		return nil, errors.FailedPrecondition("foci require an initialized magic block")
	}

	logMark := len(character.ExpenseLog)
	if err := o.spendNuyen(character, input.Cost, "Purchased "+input.Name); err != nil {
		return nil, err
	}

	character.Magic.Foci = append(character.Magic.Foci, sr4.Focus{
		ID:    o.idGen.Generate(),
		Name:  input.Name,
		Type:  input.Type,
		Force: input.Force,
		Cost:  input.Cost,
	})

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.AddFocusOutput{Character: updated}, nil
}

// RemoveFocus sells back a focus for exactly what it cost
func (o *Orchestrator) RemoveFocus(
	ctx context.Context,
	input *ledger.RemoveFocusInput,
) (*ledger.RemoveFocusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if character.Magic == nil {
		return nil, errors.FailedPrecondition("foci require an initialized magic block")
	}

	logMark := len(character.ExpenseLog)
	focus := character.Magic.RemoveFocus(input.FocusID)
	if focus == nil {
		return nil, errors.NotFoundf("focus %q not found", input.FocusID)
	}
	o.refundNuyen(character, focus.Cost, "Sold "+focus.Name)

	updated, err := o.persist(ctx, character, logMark)
	if err != nil {
		return nil, err
	}
	return &ledger.RemoveFocusOutput{Character: updated}, nil
}

// reconcileCapabilities closes capability blocks whose backing quality is
// gone. Losing the last awakened quality discards the magic block and the
// MAG attribute, spells and powers included; losing the technomancer
// quality does the same for resonance.
func (o *Orchestrator) reconcileCapabilities(ctx context.Context, character *sr4.Character) error {
	classification, err := o.classify(ctx, character)
	if err != nil {
		return err
	}

	if character.Magic != nil && !classification.IsAwakened() {
		character.Magic = nil
		delete(character.Attributes, sr4.AttributeMagic)
		delete(character.AttributeLimits, sr4.AttributeMagic)
	}
	if character.Resonance != nil && classification != engine.ClassificationTechnomancer {
		character.Resonance = nil
		delete(character.Attributes, sr4.AttributeResonance)
		delete(character.AttributeLimits, sr4.AttributeResonance)
	}

	return nil
}
