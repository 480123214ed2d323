package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picklrzone/internal/adapter/repository/memory"
	"picklrzone/internal/domain/entity"
)

type mapCache struct {
	entries map[string][]byte
	gets    int
	hits    int
	failGet bool
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.gets++
	if c.failGet {
		return nil, false, fmt.Errorf("connection refused")
	}
	v, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return v, ok, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *mapCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func newCachedFixture(t *testing.T) (*mapCache, *entity.Course, *cachedCourseRepository) {
	t.Helper()
	store := memory.NewStore()
	c := newMapCache()
	repo := NewCachedCourseRepository(memory.NewCourseRepository(store), c, time.Minute).(*cachedCourseRepository)

	course := &entity.Course{Title: "Dinking Fundamentals", Price: 44.99, VendorID: "v", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(context.Background(), course))
	return c, course, repo
}

func TestCachedCourseRepositoryServesRepeatReads(t *testing.T) {
	c, course, repo := newCachedFixture(t)
	ctx := context.Background()

	first, err := repo.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Contains(t, c.entries, courseKey(course.ID))

	second, err := repo.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.hits)
	assert.Equal(t, first.Title, second.Title)

	_, err = repo.List(ctx)
	require.NoError(t, err)
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, c.hits)
}

func TestCachedCourseRepositoryInvalidatesOnWrite(t *testing.T) {
	c, course, repo := newCachedFixture(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, course.ID)
	require.NoError(t, err)
	_, err = repo.List(ctx)
	require.NoError(t, err)

	_, err = repo.RecordReview(ctx, &entity.Review{
		ID:       entity.ReviewID(course.ID, "s"),
		CourseID: course.ID,
		UserID:   "s",
		Rating:   5,
		Text:     "Great",
	})
	require.NoError(t, err)
	assert.NotContains(t, c.entries, courseKey(course.ID))
	assert.NotContains(t, c.entries, courseListKey)

	fresh, err := repo.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.TotalReviews)
	assert.Equal(t, 5.0, fresh.AverageRating)
}

func TestCachedCourseRepositoryFallsThroughOnCacheError(t *testing.T) {
	c, course, repo := newCachedFixture(t)
	c.failGet = true

	loaded, err := repo.GetByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dinking Fundamentals", loaded.Title)
}

func TestCachedCourseRepositoryDiscardsBadEntries(t *testing.T) {
	c, course, repo := newCachedFixture(t)
	c.entries[courseKey(course.ID)] = []byte("{not json")

	loaded, err := repo.GetByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, course.ID, loaded.ID)
}
