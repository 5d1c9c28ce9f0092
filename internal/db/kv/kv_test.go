package kv

import (
	"context"
	"healthmate/internal/core/domain/kv"
	"healthmate/internal/db"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	store *PgxStore
}

func (s *testSuite) SetupSuite() {
	s.pool = db.CreateTestPool(s.T())
	s.store = NewPgxStore(s.pool)
}

func (s *testSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *testSuite) SetupTest() {
	db.TruncateTables(s.pool)
}

func TestPgxStore(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestMissingKey() {
	_, err := s.store.Get(context.Background(), "missing")

	s.ErrorIs(err, kv.ErrKeyNotFound)
}

func (s *testSuite) TestSetOverwrites() {
	ctx := context.Background()

	s.Require().Nil(s.store.Set(ctx, "k", []byte(`[{"id":"1"}]`)))
	s.Require().Nil(s.store.Set(ctx, "k", []byte(`[]`)))

	value, err := s.store.Get(ctx, "k")
	s.Require().Nil(err)
	s.JSONEq(`[]`, string(value))
}
