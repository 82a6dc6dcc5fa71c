package referencecache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	apierrors "github.com/KirkDiggler/pokerole-api/internal/errors"
	referencecache "github.com/KirkDiggler/pokerole-api/internal/repositories/reference_cache"
	"github.com/KirkDiggler/pokerole-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo referencecache.Repository
	ctx  context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisServer(s.T())
	s.mr = mr

	repo, err := referencecache.NewRedisRepository(&referencecache.Config{
		Client: client,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TestIndexRoundTrip() {
	paths := map[string]string{
		"Water Gun": "v2.0/Moves/Water Gun.json",
		"Tackle":    "v2.0/Moves/Tackle.json",
	}

	out, err := s.repo.SaveIndex(s.ctx, referencecache.SaveIndexInput{Kind: "move", Paths: paths})
	s.Require().NoError(err)
	s.Equal(2, out.Count)
	s.Equal(time.Hour, s.mr.TTL("reference:index:move"))

	got, err := s.repo.GetIndex(s.ctx, referencecache.GetIndexInput{Kind: "move"})
	s.Require().NoError(err)
	s.Equal(paths, got.Paths)
}

func (s *RedisRepositoryTestSuite) TestSaveIndexReplaces() {
	_, err := s.repo.SaveIndex(s.ctx, referencecache.SaveIndexInput{
		Kind:  "nature",
		Paths: map[string]string{"Hardy": "a", "Bold": "b"},
	})
	s.Require().NoError(err)

	_, err = s.repo.SaveIndex(s.ctx, referencecache.SaveIndexInput{
		Kind:  "nature",
		Paths: map[string]string{"Calm": "c"},
	})
	s.Require().NoError(err)

	got, err := s.repo.GetIndex(s.ctx, referencecache.GetIndexInput{Kind: "nature"})
	s.Require().NoError(err)
	s.Equal(map[string]string{"Calm": "c"}, got.Paths)
}

func (s *RedisRepositoryTestSuite) TestGetIndexMissing() {
	_, err := s.repo.GetIndex(s.ctx, referencecache.GetIndexInput{Kind: "species"})
	s.Require().Error(err)
	s.True(apierrors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDocumentRoundTrip() {
	data := []byte(`{"Name":"Hardy","Confidence":"9"}`)
	_, err := s.repo.SaveDocument(s.ctx, referencecache.SaveDocumentInput{Kind: "nature", Name: "Hardy", Data: data})
	s.Require().NoError(err)

	got, err := s.repo.GetDocument(s.ctx, referencecache.GetDocumentInput{Kind: "nature", Name: "Hardy"})
	s.Require().NoError(err)
	s.JSONEq(string(data), string(got.Data))
}

func (s *RedisRepositoryTestSuite) TestDocumentExpires() {
	_, err := s.repo.SaveDocument(s.ctx, referencecache.SaveDocumentInput{
		Kind: "move",
		Name: "Tackle",
		Data: []byte(`{}`),
		TTL:  time.Minute,
	})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)

	_, err = s.repo.GetDocument(s.ctx, referencecache.GetDocumentInput{Kind: "move", Name: "Tackle"})
	s.True(apierrors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetDocumentsSkipsMisses() {
	for _, name := range []string{"Bulbasaur", "Squirtle"} {
		_, err := s.repo.SaveDocument(s.ctx, referencecache.SaveDocumentInput{
			Kind: "species",
			Name: name,
			Data: []byte(`{"Name":"` + name + `"}`),
		})
		s.Require().NoError(err)
	}

	got, err := s.repo.GetDocuments(s.ctx, referencecache.GetDocumentsInput{
		Kind:  "species",
		Names: []string{"Bulbasaur", "Charmander", "Squirtle"},
	})
	s.Require().NoError(err)
	s.Len(got.Documents, 2)
	s.Contains(got.Documents, "Squirtle")
	s.NotContains(got.Documents, "Charmander")
}

func (s *RedisRepositoryTestSuite) TestGetDocumentsEmpty() {
	got, err := s.repo.GetDocuments(s.ctx, referencecache.GetDocumentsInput{Kind: "species"})
	s.Require().NoError(err)
	s.Empty(got.Documents)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.GetIndex(s.ctx, referencecache.GetIndexInput{})
	s.True(apierrors.IsInvalidArgument(err))

	_, err = s.repo.GetDocument(s.ctx, referencecache.GetDocumentInput{Kind: "move"})
	s.True(apierrors.IsInvalidArgument(err))

	_, err = s.repo.SaveDocument(s.ctx, referencecache.SaveDocumentInput{Kind: "move", Name: "Tackle"})
	s.True(apierrors.IsInvalidArgument(err))

	_, err = referencecache.NewRedisRepository(&referencecache.Config{})
	s.True(apierrors.IsInvalidArgument(err))
}

type RedisErrorTestSuite struct {
	suite.Suite
	mock redismock.ClientMock
	repo referencecache.Repository
	ctx  context.Context
}

func TestRedisErrorSuite(t *testing.T) {
	suite.Run(t, new(RedisErrorTestSuite))
}

func (s *RedisErrorTestSuite) SetupTest() {
	db, mock := redismock.NewClientMock()
	s.mock = mock

	repo, err := referencecache.NewRedisRepository(&referencecache.Config{Client: db})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisErrorTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *RedisErrorTestSuite) TestGetIndexStorageError() {
	s.mock.ExpectHGetAll("reference:index:move").SetErr(errors.New("redis error"))

	_, err := s.repo.GetIndex(s.ctx, referencecache.GetIndexInput{Kind: "move"})
	s.Require().Error(err)
	s.True(apierrors.IsInternal(err))
}

func (s *RedisErrorTestSuite) TestGetDocumentStorageError() {
	s.mock.ExpectGet("reference:doc:move:Tackle").SetErr(errors.New("redis error"))

	_, err := s.repo.GetDocument(s.ctx, referencecache.GetDocumentInput{Kind: "move", Name: "Tackle"})
	s.Require().Error(err)
	s.True(apierrors.IsInternal(err))
}

func (s *RedisErrorTestSuite) TestGetDocumentsStorageError() {
	s.mock.ExpectMGet("reference:doc:species:Eevee").SetErr(errors.New("redis error"))

	_, err := s.repo.GetDocuments(s.ctx, referencecache.GetDocumentsInput{Kind: "species", Names: []string{"Eevee"}})
	s.Require().Error(err)
	s.True(apierrors.IsInternal(err))
}
