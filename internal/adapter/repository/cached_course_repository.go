package repository

import (
	"context"
	"encoding/json"
	"time"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/internal/infrastructure/cache"
	"picklrzone/pkg/logger"
)

const courseListKey = "courses:all"

func courseKey(id string) string { return "course:" + id }

// cachedCourseRepository serves course reads from the cache and drops the
// affected keys after every write. Cache failures fall through to the store.
type cachedCourseRepository struct {
	repository.CourseRepository
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedCourseRepository(next repository.CourseRepository, c cache.Cache, ttl time.Duration) repository.CourseRepository {
	return &cachedCourseRepository{
		CourseRepository: next,
		cache:            c,
		ttl:              ttl,
	}
}

func (r *cachedCourseRepository) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	var course entity.Course
	if r.load(ctx, courseKey(id), &course) {
		return &course, nil
	}

	loaded, err := r.CourseRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, courseKey(id), loaded)
	return loaded, nil
}

func (r *cachedCourseRepository) List(ctx context.Context) ([]*entity.Course, error) {
	var courses []*entity.Course
	if r.load(ctx, courseListKey, &courses) {
		return courses, nil
	}

	loaded, err := r.CourseRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, courseListKey, loaded)
	return loaded, nil
}

func (r *cachedCourseRepository) Create(ctx context.Context, course *entity.Course) error {
	if err := r.CourseRepository.Create(ctx, course); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedCourseRepository) Update(ctx context.Context, course *entity.Course) error {
	err := r.CourseRepository.Update(ctx, course)
	r.invalidate(ctx, course.ID)
	return err
}

func (r *cachedCourseRepository) Delete(ctx context.Context, id string) error {
	err := r.CourseRepository.Delete(ctx, id)
	r.invalidate(ctx, id)
	return err
}

func (r *cachedCourseRepository) RecordReview(ctx context.Context, review *entity.Review) (*entity.Course, error) {
	course, err := r.CourseRepository.RecordReview(ctx, review)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, review.CourseID)
	return course, nil
}

func (r *cachedCourseRepository) RecordEnrollment(ctx context.Context, enrollment *entity.Enrollment) (bool, error) {
	created, err := r.CourseRepository.RecordEnrollment(ctx, enrollment)
	if created {
		r.invalidate(ctx, enrollment.CourseID)
	}
	return created, err
}

func (r *cachedCourseRepository) load(ctx context.Context, key string, dst interface{}) bool {
	data, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("Course cache read failed for %s: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		logger.Warn("Discarding undecodable cache entry %s: %v", key, err)
		return false
	}
	return true
}

func (r *cachedCourseRepository) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
		logger.Warn("Course cache write failed for %s: %v", key, err)
	}
}

func (r *cachedCourseRepository) invalidate(ctx context.Context, courseIDs ...string) {
	keys := []string{courseListKey}
	for _, id := range courseIDs {
		keys = append(keys, courseKey(id))
	}
	if err := r.cache.Delete(ctx, keys...); err != nil {
		logger.Logger().Error().Err(err).Strs("keys", keys).Msg("Course cache invalidation failed")
	}
}
