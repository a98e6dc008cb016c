package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediavault/instafetch/internal/cache"
	"github.com/mediavault/instafetch/internal/domain"
)

func setupRedis(t *testing.T) (*cache.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := cache.NewRedisStore(mr.Addr(), "", 0, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store, mr
}

func TestRedisStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store, _ := setupRedis(t)

	content := &domain.ResolvedContent{
		Shortcode: "Cxyz",
		IsReel:    true,
		Videos: []domain.MediaItem{
			{Kind: domain.KindVideo, SourceURL: "https://cdn.example/Cxyz.mp4", Filename: "Cxyz.mp4"},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	store.Put(ctx, "Cxyz", content, time.Minute)

	got, ok := store.Get(ctx, "Cxyz")
	require.True(t, ok)
	assert.Equal(t, "Cxyz", got.Shortcode)
	assert.True(t, got.IsReel)
	require.Len(t, got.Videos, 1)
	assert.Equal(t, "Cxyz.mp4", got.Videos[0].Filename)
}

func TestRedisStore_Miss(t *testing.T) {
	ctx := context.Background()
	store, _ := setupRedis(t)

	_, ok := store.Get(ctx, "absent")
	assert.False(t, ok)
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedis(t)

	store.Put(ctx, "Cxyz", &domain.ResolvedContent{Shortcode: "Cxyz"}, time.Minute)

	_, ok := store.Get(ctx, "Cxyz")
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)

	_, ok = store.Get(ctx, "Cxyz")
	assert.False(t, ok)
}

func TestRedisStore_CorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedis(t)

	require.NoError(t, mr.Set("instafetch:resolve:Cxyz", "{not json"))

	_, ok := store.Get(ctx, "Cxyz")
	assert.False(t, ok)
}

func TestRedisStore_CachesPrivateSentinel(t *testing.T) {
	ctx := context.Background()
	store, _ := setupRedis(t)

	store.Put(ctx, "Cpriv", &domain.ResolvedContent{Shortcode: "Cpriv", IsPrivate: true}, time.Minute)

	got, ok := store.Get(ctx, "Cpriv")
	require.True(t, ok)
	assert.True(t, got.IsPrivate)
	assert.Empty(t, got.Videos)
}
