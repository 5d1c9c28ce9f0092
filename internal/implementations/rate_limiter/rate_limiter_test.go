package ratelimiter

import (
	"context"
	"healthmate/internal/core/domain/logging"
	ratelimiter "healthmate/internal/core/domain/rate_limiter"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	client  *redis.Client
	limiter *Redis
}

func (s *testSuite) SetupSuite() {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		s.T().Skip("TEST_REDIS_URL is not set.")
	}
	opts, err := redis.ParseURL(url)
	s.Require().Nil(err)
	s.client = redis.NewClient(opts)
	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	s.limiter = NewRedis(s.client, logging.NewFakeLogger(), func() time.Time { return now })
}

func (s *testSuite) SetupTest() {
	s.Require().Nil(s.client.FlushDB(context.Background()).Err())
}

func (s *testSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
}

func TestRedisRateLimiter(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestLimit() {
	ctx := context.Background()
	limit := ratelimiter.Limit{Value: 5, Interval: ratelimiter.Hour}

	for i := 0; i < 5; i++ {
		s.True(s.limiter.CheckLimit(ctx, "user-1", limit).IsAllowed)
	}
	s.False(s.limiter.CheckLimit(ctx, "user-1", limit).IsAllowed)
	s.True(s.limiter.CheckLimit(ctx, "user-2", limit).IsAllowed)

	ttl, err := s.client.TTL(ctx, "user-1::h8").Result()
	s.Require().Nil(err)
	s.True(ttl > 0 && ttl <= time.Hour)
}
