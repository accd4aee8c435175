package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
	"github.com/KirkDiggler/sr4-ledger/internal/errors"
	"github.com/KirkDiggler/sr4-ledger/internal/redis"
	"github.com/KirkDiggler/sr4-ledger/internal/repositories/character"
	"github.com/KirkDiggler/sr4-ledger/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redis.Client
	cleanup func()
	repo    character.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) createCharacter(id, playerID string) *sr4.Character {
	s.T().Helper()

	char := testutils.CreateTestCharacter(playerID)
	char.ID = id

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	return char
}

func (s *RedisRepositoryTestSuite) TestNewRedis_RequiresClient() {
	_, err := character.NewRedis(&character.RedisConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = character.NewRedis(nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreate_Success() {
	char := testutils.CreateTestCharacter(testutils.TestPlayerID)

	output, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal(char.ID, output.Character.ID)

	fetched, err := s.repo.Get(s.ctx, character.GetInput{ID: char.ID})
	s.Require().NoError(err)
	s.Equal(testutils.TestCharacterName, fetched.Character.Name)
	s.Equal("Human", fetched.Character.Metatype)
	s.Equal(sr4.StatusCreation, fetched.Character.Status)
	s.Equal(sr4.DefaultEssence, fetched.Character.Essence)
}

func (s *RedisRepositoryTestSuite) TestCreate_AddsPlayerIndex() {
	s.createCharacter("char-1", testutils.TestPlayerID)

	listed, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{
		PlayerID: testutils.TestPlayerID,
	})
	s.Require().NoError(err)
	s.Require().Len(listed.Characters, 1)
	s.Equal("char-1", listed.Characters[0].ID)
}

func (s *RedisRepositoryTestSuite) TestCreate_NilCharacter() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "character cannot be nil")
}

func (s *RedisRepositoryTestSuite) TestCreate_EmptyID() {
	char := testutils.CreateTestCharacter(testutils.TestPlayerID)
	char.ID = ""

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "character ID cannot be empty")
}

func (s *RedisRepositoryTestSuite) TestCreate_Duplicate() {
	char := s.createCharacter("char-dup", testutils.TestPlayerID)

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})

	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
	s.Contains(err.Error(), "character with ID char-dup already exists")
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "missing"})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "character with ID missing not found")
}

func (s *RedisRepositoryTestSuite) TestGet_EmptyID() {
	_, err := s.repo.Get(s.ctx, character.GetInput{})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGet_RoundTripsSheetState() {
	char := testutils.CreateTestCareerCharacter(testutils.TestPlayerID)
	char.ExpenseLog = []sr4.ExpenseEntry{
		{Date: testutils.TestFixtureTime, Type: sr4.ExpenseKarma, Amount: 30, Reason: "Starting karma"},
	}

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	fetched, err := s.repo.Get(s.ctx, character.GetInput{ID: char.ID})
	s.Require().NoError(err)
	s.Equal(sr4.StatusCareer, fetched.Character.Status)
	s.Equal(int32(30), fetched.Character.Karma)
	s.Equal(int32(5000), fetched.Character.Nuyen)
	s.Require().Len(fetched.Character.Skills, 2)
	s.Equal("Pistols", fetched.Character.Skills[0].Name)
	s.Require().Len(fetched.Character.ExpenseLog, 1)
	s.Equal("Starting karma", fetched.Character.ExpenseLog[0].Reason)
}

func (s *RedisRepositoryTestSuite) TestUpdate_Success() {
	char := s.createCharacter("char-upd", testutils.TestPlayerID)

	char.Alias = "Static"
	char.Karma = 12
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: char})
	s.Require().NoError(err)

	fetched, err := s.repo.Get(s.ctx, character.GetInput{ID: "char-upd"})
	s.Require().NoError(err)
	s.Equal("Static", fetched.Character.Alias)
	s.Equal(int32(12), fetched.Character.Karma)
}

func (s *RedisRepositoryTestSuite) TestUpdate_NotFound() {
	char := testutils.CreateTestCharacter(testutils.TestPlayerID)
	char.ID = "never-created"

	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: char})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate_MigratesPlayerIndex() {
	char := s.createCharacter("char-mig", "player-old")

	char.PlayerID = "player-new"
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: char})
	s.Require().NoError(err)

	oldList, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player-old"})
	s.Require().NoError(err)
	s.Empty(oldList.Characters)

	newList, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player-new"})
	s.Require().NoError(err)
	s.Require().Len(newList.Characters, 1)
	s.Equal("char-mig", newList.Characters[0].ID)
}

func (s *RedisRepositoryTestSuite) TestDelete_Success() {
	s.createCharacter("char-del", testutils.TestPlayerID)

	_, err := s.repo.Delete(s.ctx, character.DeleteInput{ID: "char-del"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char-del"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	listed, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{
		PlayerID: testutils.TestPlayerID,
	})
	s.Require().NoError(err)
	s.Empty(listed.Characters)
}

func (s *RedisRepositoryTestSuite) TestDelete_NotFound() {
	_, err := s.repo.Delete(s.ctx, character.DeleteInput{ID: "missing"})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID_FiltersByPlayer() {
	s.createCharacter("char-a", "player-one")
	s.createCharacter("char-b", "player-one")
	s.createCharacter("char-c", "player-two")

	listed, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player-one"})
	s.Require().NoError(err)
	s.Require().Len(listed.Characters, 2)

	ids := []string{listed.Characters[0].ID, listed.Characters[1].ID}
	s.ElementsMatch([]string{"char-a", "char-b"}, ids)
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID_EmptyPlayerID() {
	_, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "player ID cannot be empty")
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID_NoCharacters() {
	listed, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "nobody"})

	s.Require().NoError(err)
	s.Empty(listed.Characters)
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID_CleansStaleIndexEntries() {
	s.createCharacter("char-live", testutils.TestPlayerID)
	s.createCharacter("char-stale", testutils.TestPlayerID)

	// Drop the character key out from under the index, as if a TTL or an
	// out-of-band cleanup removed it.
	err := s.client.Del(s.ctx, "character:char-stale").Err()
	s.Require().NoError(err)

	listed, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{
		PlayerID: testutils.TestPlayerID,
	})
	s.Require().NoError(err)
	s.Require().Len(listed.Characters, 1)
	s.Equal("char-live", listed.Characters[0].ID)

	members, err := s.client.SMembers(s.ctx, "character:player:"+testutils.TestPlayerID).Result()
	s.Require().NoError(err)
	s.Equal([]string{"char-live"}, members)
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
