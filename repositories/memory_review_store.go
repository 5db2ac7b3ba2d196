package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"beatbazaar/models"
)

// InMemoryReviewStore is the test/development counterpart of GormReviewStore.
type InMemoryReviewStore struct {
	mu      sync.RWMutex
	reviews map[uint]models.Review
	nextID  uint
}

func NewInMemoryReviewStore() *InMemoryReviewStore {
	return &InMemoryReviewStore{reviews: make(map[uint]models.Review)}
}

func (s *InMemoryReviewStore) Create(ctx context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.reviews {
		if existing.UserID == review.UserID && existing.AlbumID == review.AlbumID {
			return ErrDuplicateKey
		}
	}
	s.nextID++
	review.ID = s.nextID
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	s.reviews[review.ID] = *review
	return nil
}

func (s *InMemoryReviewStore) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	review, exists := s.reviews[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &review, nil
}

func (s *InMemoryReviewStore) ListAll(ctx context.Context) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(models.Review) bool { return true }), nil
}

func (s *InMemoryReviewStore) ListByAlbum(ctx context.Context, albumID uint) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(r models.Review) bool { return r.AlbumID == albumID }), nil
}

func (s *InMemoryReviewStore) Save(ctx context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.reviews[review.ID]; !exists {
		return ErrNotFound
	}
	review.UpdatedAt = time.Now()
	s.reviews[review.ID] = *review
	return nil
}

func (s *InMemoryReviewStore) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.reviews[id]; !exists {
		return ErrNotFound
	}
	delete(s.reviews, id)
	return nil
}

func (s *InMemoryReviewStore) collect(keep func(models.Review) bool) []models.Review {
	reviews := make([]models.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		if keep(r) {
			reviews = append(reviews, r)
		}
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID < reviews[j].ID })
	return reviews
}

var _ ReviewStore = (*InMemoryReviewStore)(nil)
