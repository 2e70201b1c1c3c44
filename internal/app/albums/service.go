// Package albums coordinates album workflows, cover uploads and the cached
// like-count path.
package albums

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"openmusic/internal/cache"
	"openmusic/internal/store"
)

// ErrInvalidCover indicates a cover upload that is too large or not an image.
var ErrInvalidCover = errors.New("invalid cover upload")

// likeCountTTL bounds how stale an unread cached count can get.
const likeCountTTL = 30 * time.Minute

// maxCoverSize is the upload size ceiling in bytes.
const maxCoverSize = 512000

var allowedCoverTypes = map[string]struct{}{
	"image/apng": {},
	"image/avif": {},
	"image/gif":  {},
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// Store captures the persistence needs for album workflows.
type Store interface {
	CreateAlbum(ctx context.Context, name string, year int) (string, error)
	AlbumByID(ctx context.Context, id string) (store.AlbumWithSongs, error)
	UpdateAlbum(ctx context.Context, id, name string, year int) error
	SetAlbumCover(ctx context.Context, id, coverURL string) error
	DeleteAlbum(ctx context.Context, id string) error
	AlbumExists(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, userID, albumID string) (bool, error)
	CountLikes(ctx context.Context, albumID string) (int, error)
}

// Cache is the key/value store backing the like-count fast path. Get reports
// an absent key separately from a transport error.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// CoverStorage uploads cover images to object storage.
type CoverStorage interface {
	Upload(ctx context.Context, albumID, contentType string, size int64, r io.Reader) (string, error)
}

// Service coordinates album-related operations.
type Service interface {
	Create(ctx context.Context, name string, year int) (string, error)
	Get(ctx context.Context, id string) (store.AlbumWithSongs, error)
	Update(ctx context.Context, id, name string, year int) error
	Delete(ctx context.Context, id string) error
	UploadCover(ctx context.Context, id, contentType string, size int64, r io.Reader) (string, error)
	ToggleLike(ctx context.Context, userID, albumID string) (bool, error)
	LikeCount(ctx context.Context, albumID string) (count int, fromCache bool, err error)
}

type service struct {
	store  Store
	cache  Cache
	covers CoverStorage
	log    zerolog.Logger
}

// New constructs a Service backed by the provided collaborators.
func New(st Store, cache Cache, covers CoverStorage, log zerolog.Logger) Service {
	return &service{store: st, cache: cache, covers: covers, log: log}
}

func (s *service) Create(ctx context.Context, name string, year int) (string, error) {
	return s.store.CreateAlbum(ctx, name, year)
}

func (s *service) Get(ctx context.Context, id string) (store.AlbumWithSongs, error) {
	return s.store.AlbumByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id, name string, year int) error {
	return s.store.UpdateAlbum(ctx, id, name, year)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteAlbum(ctx, id)
}

func (s *service) UploadCover(ctx context.Context, id, contentType string, size int64, r io.Reader) (string, error) {
	if _, ok := allowedCoverTypes[contentType]; !ok {
		return "", fmt.Errorf("%w: content type %q is not an image", ErrInvalidCover, contentType)
	}
	if size > maxCoverSize {
		return "", fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidCover, maxCoverSize)
	}
	if err := s.store.AlbumExists(ctx, id); err != nil {
		return "", err
	}

	url, err := s.covers.Upload(ctx, id, contentType, size, r)
	if err != nil {
		return "", err
	}
	if err := s.store.SetAlbumCover(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}

// ToggleLike flips the caller's like on an album and reports whether the
// album was liked beforehand. The cache entry is invalidated exactly once,
// strictly after the store mutation, so a read racing the toggle either sees
// the old entry or falls through to the store.
func (s *service) ToggleLike(ctx context.Context, userID, albumID string) (bool, error) {
	if err := s.store.AlbumExists(ctx, albumID); err != nil {
		return false, err
	}

	wasLiked, err := s.store.ToggleLike(ctx, userID, albumID)
	if err != nil {
		return false, err
	}

	if err := s.cache.Delete(ctx, cache.LikesKey(albumID)); err != nil {
		// The toggle committed but the stale count may now outlive its TTL;
		// surfacing the failure beats silently serving a wrong count.
		return wasLiked, fmt.Errorf("invalidate like count: %w", err)
	}
	return wasLiked, nil
}

// LikeCount returns an album's like count, preferring the cache. An absent
// key repopulates the cache from the store; a cache transport failure is
// logged and degrades to a store-only read.
func (s *service) LikeCount(ctx context.Context, albumID string) (int, bool, error) {
	if err := s.store.AlbumExists(ctx, albumID); err != nil {
		return 0, false, err
	}

	key := cache.LikesKey(albumID)
	val, present, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("album_id", albumID).Msg("like count cache unavailable, reading store")
		count, err := s.store.CountLikes(ctx, albumID)
		return count, false, err
	}
	if present {
		count, convErr := strconv.Atoi(val)
		if convErr == nil {
			return count, true, nil
		}
		s.log.Warn().Str("album_id", albumID).Str("value", val).Msg("discarding malformed cached like count")
	}

	count, err := s.store.CountLikes(ctx, albumID)
	if err != nil {
		return 0, false, err
	}
	if err := s.cache.Set(ctx, key, strconv.Itoa(count), likeCountTTL); err != nil {
		s.log.Warn().Err(err).Str("album_id", albumID).Msg("failed to repopulate like count cache")
	}
	return count, false, nil
}
