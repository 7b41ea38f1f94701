package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcollection/internal/domain/book"
)

// fakeRedis 只实现仓储用到的GET/SET，其余命令调用会panic
type fakeRedis struct {
	redis.Cmdable
	data map[string]string
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	switch v, ok := f.data[key]; {
	case f.err != nil:
		cmd.SetErr(f.err)
	case !ok:
		cmd.SetErr(redis.Nil)
	default:
		cmd.SetVal(v)
	}
	return cmd
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "set", key, value, expiration)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.data[key] = string(value.([]byte))
	cmd.SetVal("OK")
	return cmd
}

const testKey = "bookcollection:books"

func TestBookRepository_MissingKey(t *testing.T) {
	repo := NewBookRepository(newFakeRedis(), testKey)

	books, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestBookRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	repo := NewBookRepository(client, testKey)

	books := []*book.Book{
		book.NewBook(1, "Some random book", "Jacob Wal", 2013),
		book.NewBook(2, "Next das", "Adam Szym", 2010),
	}
	require.NoError(t, repo.WriteAll(ctx, books))
	assert.Equal(t,
		`[{"Id":1,"Title":"Some random book","Author":"Jacob Wal","Year":2013},{"Id":2,"Title":"Next das","Author":"Adam Szym","Year":2010}]`,
		client.data[testKey])

	got, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, books, got)
}

func TestBookRepository_Errors(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	repo := NewBookRepository(client, testKey)

	client.data[testKey] = "not json"
	_, err := repo.ReadAll(ctx)
	assert.Error(t, err)

	client.err = errors.New("connection refused")
	_, err = repo.ReadAll(ctx)
	assert.ErrorContains(t, err, "connection refused")
	assert.ErrorContains(t, repo.WriteAll(ctx, nil), "connection refused")
}
