package ledger_test

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/sr4-ledger/internal/engine/sr4rules"
	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	ledgerorch "github.com/KirkDiggler/sr4-ledger/internal/orchestrators/ledger"
	"github.com/KirkDiggler/sr4-ledger/internal/pkg/clock"
	"github.com/KirkDiggler/sr4-ledger/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/sr4-ledger/internal/repositories/character"
	"github.com/KirkDiggler/sr4-ledger/internal/services/ledger"
	"github.com/KirkDiggler/sr4-ledger/internal/testutils"
	"github.com/KirkDiggler/sr4-ledger/internal/testutils/builders"
)

// ledgerSuite wires the orchestrator against the real rules engine, the
// shared test catalog, and an in-memory repository so operations run the
// same code paths a live server does. Suites embed it and seed their own
// characters.
type ledgerSuite struct {
	suite.Suite
	ctx          context.Context
	repo         *characterrepo.InMemoryRepository
	eventBus     events.EventBus
	orchestrator *ledgerorch.Orchestrator
}

func (s *ledgerSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = characterrepo.NewInMemory()
	s.eventBus = events.NewBus()

	eng, err := sr4rules.NewAdapter(&sr4rules.AdapterConfig{
		EventBus:   events.NewBus(),
		DiceRoller: dice.DefaultRoller,
	})
	s.Require().NoError(err)

	orchestrator, err := ledgerorch.New(&ledgerorch.Config{
		CharacterRepo: s.repo,
		Catalog:       testutils.CreateTestCatalog(),
		Engine:        eng,
		IDGenerator:   idgen.NewSequential("test"),
		Clock:         clock.New(),
		EventBus:      s.eventBus,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

// createCharacter runs a fresh Human through CreateCharacter and returns
// the stored snapshot.
func (s *ledgerSuite) createCharacter() *sr4.Character {
	output, err := s.orchestrator.CreateCharacter(s.ctx, &ledger.CreateCharacterInput{
		PlayerID: "player-test",
		Name:     "Test Character",
		Metatype: "Human",
	})
	s.Require().NoError(err)
	return output.Character
}

// createCharacterWithFunds creates a Human and converts build points into
// starting nuyen so purchase operations have a balance to draw on.
func (s *ledgerSuite) createCharacterWithFunds(bp int32) *sr4.Character {
	char := s.createCharacter()
	output, err := s.orchestrator.SetResources(s.ctx, &ledger.SetResourcesInput{
		ID: char.ID,
		BP: bp,
	})
	s.Require().NoError(err)
	return output.Character
}

// seedCharacter stores a prebuilt character directly in the repository,
// bypassing creation for career and condition scenarios.
func (s *ledgerSuite) seedCharacter(char *sr4.Character) *sr4.Character {
	_, err := s.repo.Create(s.ctx, characterrepo.CreateInput{Character: char})
	s.Require().NoError(err)
	return char
}

// seedCareerCharacter stores a career-mode character holding karma and
// nuyen to advance with.
func (s *ledgerSuite) seedCareerCharacter() *sr4.Character {
	return s.seedCharacter(builders.NewCharacterBuilder().
		AsCareer().
		WithKarma(30).
		WithNuyen(5000).
		Build())
}

// getCharacter re-fetches the stored snapshot.
func (s *ledgerSuite) getCharacter(id string) *sr4.Character {
	output, err := s.orchestrator.GetCharacter(s.ctx, &ledger.GetCharacterInput{ID: id})
	s.Require().NoError(err)
	return output.Character
}

// lastExpense returns the newest expense log entry.
func (s *ledgerSuite) lastExpense(char *sr4.Character) sr4.ExpenseEntry {
	s.Require().NotEmpty(char.ExpenseLog)
	return char.ExpenseLog[len(char.ExpenseLog)-1]
}
