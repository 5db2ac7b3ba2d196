package repositories

import (
	"context"

	"gorm.io/gorm"

	"beatbazaar/models"
)

// ReviewStore provides review persistence.
type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	FindByID(ctx context.Context, id uint) (*models.Review, error)
	ListAll(ctx context.Context) ([]models.Review, error)
	ListByAlbum(ctx context.Context, albumID uint) ([]models.Review, error)
	Save(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uint) error
}

type GormReviewStore struct {
	db *gorm.DB
}

func NewGormReviewStore(db *gorm.DB) *GormReviewStore {
	return &GormReviewStore{db: db}
}

func (s *GormReviewStore) Create(ctx context.Context, review *models.Review) error {
	return translate(s.db.WithContext(ctx).Create(review).Error)
}

func (s *GormReviewStore) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

func (s *GormReviewStore) ListAll(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).Order("id").Find(&reviews).Error; err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}

func (s *GormReviewStore) ListByAlbum(ctx context.Context, albumID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).Where("album_id = ?", albumID).Order("id").Find(&reviews).Error; err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}

func (s *GormReviewStore) Save(ctx context.Context, review *models.Review) error {
	return translate(s.db.WithContext(ctx).Save(review).Error)
}

func (s *GormReviewStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Review{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ReviewStore = (*GormReviewStore)(nil)
