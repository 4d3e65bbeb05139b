package breedingqueue_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
	"github.com/KirkDiggler/creature-api/internal/errors"
	breedingqueue "github.com/KirkDiggler/creature-api/internal/repositories/breeding_queue"
	"github.com/KirkDiggler/creature-api/internal/testutils"
)

type QueueRepoTestSuite struct {
	suite.Suite

	repo    breedingqueue.Repository
	cleanup func()
}

func TestQueueRepoSuite(t *testing.T) {
	suite.Run(t, new(QueueRepoTestSuite))
}

func (s *QueueRepoTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := breedingqueue.NewRedisRepository(&breedingqueue.Config{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *QueueRepoTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *QueueRepoTestSuite) testRequest(id string) *genetics.BreedingRequest {
	return &genetics.BreedingRequest{
		ID:          id,
		Parent1ID:   "creature_1",
		Parent2ID:   "creature_2",
		GameType:    genetics.GameTypeDNASequencing,
		Seed:        7,
		SubmittedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *QueueRepoTestSuite) TestFIFOOrder() {
	ctx := context.Background()

	for _, id := range []string{"request_1", "request_2", "request_3"} {
		_, err := s.repo.Enqueue(ctx, breedingqueue.EnqueueInput{Request: s.testRequest(id)})
		s.Require().NoError(err)
	}

	for _, want := range []string{"request_1", "request_2", "request_3"} {
		out, err := s.repo.Dequeue(ctx, breedingqueue.DequeueInput{})
		s.Require().NoError(err)
		s.Assert().Equal(want, out.Request.ID)
	}
}

func (s *QueueRepoTestSuite) TestDequeueRoundTrip() {
	ctx := context.Background()

	_, err := s.repo.Enqueue(ctx, breedingqueue.EnqueueInput{Request: s.testRequest("request_1")})
	s.Require().NoError(err)

	out, err := s.repo.Dequeue(ctx, breedingqueue.DequeueInput{})
	s.Require().NoError(err)
	s.Assert().Equal(genetics.GameTypeDNASequencing, out.Request.GameType)
	s.Assert().Equal(uint64(7), out.Request.Seed)
	s.Assert().Equal("creature_2", out.Request.Parent2ID)
}

func (s *QueueRepoTestSuite) TestDequeueEmpty() {
	_, err := s.repo.Dequeue(context.Background(), breedingqueue.DequeueInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *QueueRepoTestSuite) TestResultRoundTrip() {
	ctx := context.Background()

	result := &genetics.BreedingResult{
		RequestID:      "request_1",
		SessionID:      "session_1",
		Success:        true,
		FinalScore:     910,
		OffspringCount: 2,
		Offspring: []genetics.VisualGeneticData{
			{Strength: 64, Vitality: 71},
			{Strength: 59, Vitality: 68},
		},
	}

	_, err := s.repo.StoreResult(ctx, breedingqueue.StoreResultInput{Result: result})
	s.Require().NoError(err)

	out, err := s.repo.GetResult(ctx, breedingqueue.GetResultInput{RequestID: "request_1"})
	s.Require().NoError(err)
	s.Assert().True(out.Result.Success)
	s.Assert().Equal(int32(910), out.Result.FinalScore)
	s.Assert().Len(out.Result.Offspring, 2)
}

func (s *QueueRepoTestSuite) TestResultMissing() {
	_, err := s.repo.GetResult(context.Background(), breedingqueue.GetResultInput{RequestID: "request_missing"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *QueueRepoTestSuite) TestValidation() {
	ctx := context.Background()

	_, err := s.repo.Enqueue(ctx, breedingqueue.EnqueueInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.StoreResult(ctx, breedingqueue.StoreResultInput{Result: &genetics.BreedingResult{}})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.GetResult(ctx, breedingqueue.GetResultInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}
