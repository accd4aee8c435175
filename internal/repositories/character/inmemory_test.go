package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/sr4-ledger/internal/errors"
	"github.com/KirkDiggler/sr4-ledger/internal/repositories/character"
	"github.com/KirkDiggler/sr4-ledger/internal/testutils"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo *character.InMemoryRepository
	ctx  context.Context
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = character.NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemoryRepositoryTestSuite) TestCreateAndGet() {
	char := testutils.CreateTestCharacter(testutils.TestPlayerID)

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	fetched, err := s.repo.Get(s.ctx, character.GetInput{ID: char.ID})
	s.Require().NoError(err)
	s.Equal(char.Name, fetched.Character.Name)
	s.Equal(char.PlayerID, fetched.Character.PlayerID)
}

func (s *InMemoryRepositoryTestSuite) TestCreate_Duplicate() {
	char := testutils.CreateTestCharacter(testutils.TestPlayerID)

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *InMemoryRepositoryTestSuite) TestCreate_Validation() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	char := testutils.CreateTestCharacter(testutils.TestPlayerID)
	char.ID = ""
	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.True(errors.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestGet_ReturnsIsolatedCopy() {
	char := testutils.CreateTestCharacter(testutils.TestPlayerID)
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	first, err := s.repo.Get(s.ctx, character.GetInput{ID: char.ID})
	s.Require().NoError(err)

	// Mutating a fetched copy must not leak into the store.
	first.Character.Name = "Scribbled Over"
	first.Character.Karma = 99

	second, err := s.repo.Get(s.ctx, character.GetInput{ID: char.ID})
	s.Require().NoError(err)
	s.Equal(testutils.TestCharacterName, second.Character.Name)
	s.Equal(int32(0), second.Character.Karma)
}

func (s *InMemoryRepositoryTestSuite) TestCreate_StoresIsolatedCopy() {
	char := testutils.CreateTestCharacter(testutils.TestPlayerID)
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	char.Name = "Renamed After Create"

	fetched, err := s.repo.Get(s.ctx, character.GetInput{ID: char.ID})
	s.Require().NoError(err)
	s.Equal(testutils.TestCharacterName, fetched.Character.Name)
}

func (s *InMemoryRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "missing"})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestUpdate_Success() {
	char := testutils.CreateTestCharacter(testutils.TestPlayerID)
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	char.Nuyen = 4250
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: char})
	s.Require().NoError(err)

	fetched, err := s.repo.Get(s.ctx, character.GetInput{ID: char.ID})
	s.Require().NoError(err)
	s.Equal(int32(4250), fetched.Character.Nuyen)
}

func (s *InMemoryRepositoryTestSuite) TestUpdate_NotFound() {
	char := testutils.CreateTestCharacter(testutils.TestPlayerID)

	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: char})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestDelete_Success() {
	char := testutils.CreateTestCharacter(testutils.TestPlayerID)
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: char.ID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: char.ID})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestDelete_NotFound() {
	_, err := s.repo.Delete(s.ctx, character.DeleteInput{ID: "missing"})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestListByPlayerID() {
	first := testutils.CreateTestCharacter("player-one")
	first.ID = "char-1"
	second := testutils.CreateTestCharacter("player-one")
	second.ID = "char-2"
	other := testutils.CreateTestCharacter("player-two")
	other.ID = "char-3"

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: first})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: second})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: other})
	s.Require().NoError(err)

	listed, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player-one"})
	s.Require().NoError(err)
	s.Require().Len(listed.Characters, 2)

	ids := []string{listed.Characters[0].ID, listed.Characters[1].ID}
	s.ElementsMatch([]string{"char-1", "char-2"}, ids)
}

func (s *InMemoryRepositoryTestSuite) TestListByPlayerID_EmptyPlayerID() {
	_, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}
