// Package ledger implements the character resource ledger orchestrator
package ledger

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/sr4-ledger/internal/catalog"
	"github.com/KirkDiggler/sr4-ledger/internal/engine"
	"github.com/KirkDiggler/sr4-ledger/internal/engine/sr4rules"
	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	"github.com/KirkDiggler/sr4-ledger/internal/errors"
	"github.com/KirkDiggler/sr4-ledger/internal/pkg/clock"
	"github.com/KirkDiggler/sr4-ledger/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/sr4-ledger/internal/repositories/character"
	"github.com/KirkDiggler/sr4-ledger/internal/services/ledger"
)

// Event types published after successful mutations
const (
	EventCharacterUpdated = "character.updated"
	EventLedgerExpense    = "ledger.expense"
)

// Config holds the dependencies for the ledger orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Catalog       catalog.Catalog
	Engine        engine.Engine
	IDGenerator   idgen.Generator
	Clock         clock.Clock
	EventBus      events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

// Orchestrator implements the ledger.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	catalog       catalog.Catalog
	engine        engine.Engine
	idGen         idgen.Generator
	clock         clock.Clock
	eventBus      events.EventBus
}

// New creates a new ledger orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		catalog:       cfg.Catalog,
		engine:        cfg.Engine,
		idGen:         cfg.IDGenerator,
		clock:         cfg.Clock,
		eventBus:      cfg.EventBus,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ ledger.Service = (*Orchestrator)(nil)

// Character lifecycle methods

// CreateCharacter creates a new character in creation mode. Attributes
// start at the metatype minimums and essence at 6.0; the metatype's own
// build point price is charged up front.
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *ledger.CreateCharacterInput,
) (*ledger.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRequired("metatype", input.Metatype, vb)
	if input.BuildPoints < 0 {
		vb.InvalidField("buildPoints", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	metatype, err := o.resolveMetatype(ctx, input.Metatype, input.Metavariant)
	if err != nil {
		return nil, err
	}

	buildPoints := input.BuildPoints
	if buildPoints == 0 {
		buildPoints = sr4.DefaultBuildPoints
	}

	now := o.clock.Now().Unix()
	character := &sr4.Character{
		ID:              o.idGen.Generate(),
		PlayerID:        input.PlayerID,
		Name:            input.Name,
		Metatype:        input.Metatype,
		Metavariant:     input.Metavariant,
		Status:          sr4.StatusCreation,
		BuildPoints:     buildPoints,
		Attributes:      make(map[sr4.Attribute]*sr4.AttributeValue),
		AttributeLimits: make(map[sr4.Attribute]*sr4.AttributeLimit),
		Essence:         sr4.DefaultEssence,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	applyMetatype(character, metatype)
	if err := checkBuildPoints(character); err != nil {
		return nil, err
	}

	createOutput, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: character})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Created character",
		"character_id", character.ID,
		"player_id", character.PlayerID,
		"metatype", character.Metatype)

	o.publishUpdated(ctx, createOutput.Character)

	return &ledger.CreateCharacterOutput{Character: createOutput.Character}, nil
}

// GetCharacter retrieves a character by ID
func (o *Orchestrator) GetCharacter(
	ctx context.Context,
	input *ledger.GetCharacterInput,
) (*ledger.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &ledger.GetCharacterOutput{Character: character}, nil
}

// ListCharacters lists all characters owned by a player
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	input *ledger.ListCharactersInput,
) (*ledger.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	listOutput, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	return &ledger.ListCharactersOutput{Characters: listOutput.Characters}, nil
}

// DeleteCharacter deletes a character by ID
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *ledger.DeleteCharacterInput,
) (*ledger.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Deleted character", "character_id", input.ID)

	return &ledger.DeleteCharacterOutput{
		Message: "Character " + input.ID + " deleted",
	}, nil
}

// GetDerivedStats retrieves a character along with its full derived
// projection. Nothing in the projection is stored; the engine computes
// it fresh on every call.
func (o *Orchestrator) GetDerivedStats(
	ctx context.Context,
	input *ledger.GetDerivedStatsInput,
) (*ledger.GetDerivedStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	statsOutput, err := o.engine.CalculateDerivedStats(ctx, &engine.CalculateDerivedStatsInput{Character: character})
	if err != nil {
		return nil, err
	}

	return &ledger.GetDerivedStatsOutput{
		Character: character,
		Stats:     statsOutput,
	}, nil
}

// SetIdentity updates the character's name and street alias
func (o *Orchestrator) SetIdentity(
	ctx context.Context,
	input *ledger.SetIdentityInput,
) (*ledger.SetIdentityOutput, error) {
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

	character.Name = input.Name
	character.Alias = input.Alias

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.SetIdentityOutput{Character: updated}, nil
}

// SetMetatype replaces the character's metatype during creation. The new
// limits are stamped on, attribute bases are clamped into the new ranges,
// and the metatype and attribute categories are repriced.
func (o *Orchestrator) SetMetatype(
	ctx context.Context,
	input *ledger.SetMetatypeInput,
) (*ledger.SetMetatypeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("metatype", input.Metatype, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.loadCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := requireCreation(character, "SetMetatype"); err != nil {
		return nil, err
	}

	metatype, err := o.resolveMetatype(ctx, input.Metatype, input.Metavariant)
	if err != nil {
		return nil, err
	}

	character.Metatype = input.Metatype
	character.Metavariant = input.Metavariant
	applyMetatype(character, metatype)
	if err := checkBuildPoints(character); err != nil {
		return nil, err
	}

	updated, err := o.persist(ctx, character, len(character.ExpenseLog))
	if err != nil {
		return nil, err
	}
	return &ledger.SetMetatypeOutput{Character: updated}, nil
}

// Shared helpers

// loadCharacter fetches the snapshot an operation will mutate
func (o *Orchestrator) loadCharacter(ctx context.Context, id string) (*sr4.Character, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", id, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return getOutput.Character, nil
}

// persist writes the fully-updated snapshot back as one atomic
// replacement, then publishes one expense event per entry appended past
// logMark and a character update event. The repository write is the only
// failure that aborts; publish failures are logged and swallowed.
func (o *Orchestrator) persist(ctx context.Context, character *sr4.Character, logMark int) (*sr4.Character, error) {
	character.UpdatedAt = o.clock.Now().Unix()

	updateOutput, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: character})
	if err != nil {
		return nil, err
	}
	updated := updateOutput.Character

	for i := logMark; i < len(updated.ExpenseLog); i++ {
		entry := updated.ExpenseLog[i]
		event := events.NewGameEvent(EventLedgerExpense, sr4rules.WrapCharacter(updated), nil)
		event.Context().Set("resource", string(entry.Type))
		event.Context().Set("amount", entry.Amount)
		event.Context().Set("reason", entry.Reason)
		if err := o.eventBus.Publish(ctx, event); err != nil {
			slog.WarnContext(ctx, "Failed to publish expense event",
				"character_id", updated.ID,
				"reason", entry.Reason,
				"error", err)
		}
	}

	o.publishUpdated(ctx, updated)

	return updated, nil
}

func (o *Orchestrator) publishUpdated(ctx context.Context, character *sr4.Character) {
	event := events.NewGameEvent(EventCharacterUpdated, sr4rules.WrapCharacter(character), nil)
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "Failed to publish character update event",
			"character_id", character.ID,
			"error", err)
	}
}

// classify runs the engine's magic user classification for gating
// magic and resonance operations
func (o *Orchestrator) classify(ctx context.Context, character *sr4.Character) (engine.MagicClassification, error) {
	classifyOutput, err := o.engine.ClassifyMagicUser(ctx, &engine.ClassifyMagicUserInput{Character: character})
	if err != nil {
		return "", err
	}
	return classifyOutput.Classification, nil
}

// resolveMetatype looks up the effective metatype entry. A metavariant
// with its own catalog entry overrides the base metatype's limits and
// price; otherwise the base metatype applies.
func (o *Orchestrator) resolveMetatype(ctx context.Context, metatype, metavariant string) (*catalog.MetatypeData, error) {
	if metavariant != "" {
		data, err := o.catalog.GetMetatype(ctx, metavariant)
		if err == nil {
			return data, nil
		}
		if !errors.IsNotFound(err) {
			return nil, err
		}
	}
	return o.catalog.GetMetatype(ctx, metatype)
}

// applyMetatype stamps the metatype's attribute limits onto the
// character, clamps every standard attribute base into the new range,
// and reprices the metatype and attribute categories. Limits for special
// attributes survive so an open Magic or Resonance block keeps its caps.
func applyMetatype(character *sr4.Character, metatype *catalog.MetatypeData) {
	limits := make(map[sr4.Attribute]*sr4.AttributeLimit, len(metatype.Attributes))
	for code, bounds := range metatype.Attributes {
		limits[code] = &sr4.AttributeLimit{
			Min:          bounds.Min,
			Max:          bounds.Max,
			AugmentedMax: bounds.AugmentedMax,
		}
	}
	for code, limit := range character.AttributeLimits {
		if code.IsSpecial() {
			limits[code] = limit
		}
	}
	character.AttributeLimits = limits

	if character.Attributes == nil {
		character.Attributes = make(map[sr4.Attribute]*sr4.AttributeValue)
	}
	for _, code := range sr4.StandardAttributes() {
		limit := limits[code]
		if limit == nil {
			limit = &sr4.AttributeLimit{Min: 1, Max: 6, AugmentedMax: 9}
			limits[code] = limit
		}
		attr := character.Attribute(code)
		if attr == nil {
			attr = &sr4.AttributeValue{}
			character.Attributes[code] = attr
		}
		attr.Base = limit.Clamp(attr.Base)
	}

	character.BuildPointsSpent.Metatype = metatype.BP
	repriceAttributes(character)
}

// Mode gates

func requireCreation(character *sr4.Character, operation string) error {
	if character.Status != sr4.StatusCreation {
		return errors.CreationOnly(operation)
	}
	return nil
}

func requireCareer(character *sr4.Character, operation string) error {
	if character.Status != sr4.StatusCareer {
		return errors.CareerOnly(operation)
	}
	return nil
}

// Two-phase resource movements: affordability is checked before anything
// mutates, and every movement appends one signed expense entry.

func (o *Orchestrator) spendKarma(character *sr4.Character, cost int32, reason string) error {
	if character.Karma < cost {
		return errors.Insufficient("karma", int(cost), int(character.Karma))
	}
	character.Karma -= cost
	character.AppendExpense(o.clock.Now().Unix(), sr4.ExpenseKarma, -cost, reason)
	return nil
}

func (o *Orchestrator) spendNuyen(character *sr4.Character, cost int32, reason string) error {
	if character.Nuyen < cost {
		return errors.Insufficient("nuyen", int(cost), int(character.Nuyen))
	}
	character.Nuyen -= cost
	character.AppendExpense(o.clock.Now().Unix(), sr4.ExpenseNuyen, -cost, reason)
	return nil
}

func (o *Orchestrator) refundNuyen(character *sr4.Character, amount int32, reason string) {
	character.Nuyen += amount
	character.AppendExpense(o.clock.Now().Unix(), sr4.ExpenseNuyen, amount, reason)
}

func (o *Orchestrator) awardKarma(character *sr4.Character, amount int32, reason string) {
	character.Karma += amount
	character.TotalKarma += amount
	character.AppendExpense(o.clock.Now().Unix(), sr4.ExpenseKarma, amount, reason)
}

// checkBuildPoints verifies the repriced categories still fit inside the
// creation allowance
func checkBuildPoints(character *sr4.Character) error {
	if spent := character.BuildPointsSpent.Total(); spent > character.BuildPoints {
		return errors.Insufficient("build points", int(spent), int(character.BuildPoints))
	}
	return nil
}
