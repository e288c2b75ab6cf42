package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"wikiquiz/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "wikiquiz:quiz:artifact:1"
	expectedValue := `{"title":"Turing Award"}`

	t.Run("Success", func(t *testing.T) {
		mock.ExpectGet(key).SetVal(expectedValue)
		val, err := cacheAdapter.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, expectedValue, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CacheMiss", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(redis.Nil)
		val, err := cacheAdapter.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectGet(key).SetErr(redisErr)
		val, err := cacheAdapter.Get(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "wikiquiz:quiz:artifact:1"
	value := `{"title":"Turing Award"}`
	expiration := 1 * time.Hour

	t.Run("Success", func(t *testing.T) {
		mock.ExpectSet(key, value, expiration).SetVal("OK")
		err := cacheAdapter.Set(ctx, key, value, expiration)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectSet(key, value, expiration).SetErr(redisErr)
		err := cacheAdapter.Set(ctx, key, value, expiration)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "wikiquiz:quiz:artifact:1"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectDel(key).SetVal(1)
		err := cacheAdapter.Delete(ctx, key)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
