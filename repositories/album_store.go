package repositories

import (
	"context"

	"gorm.io/gorm"

	"beatbazaar/models"
)

// AlbumStore provides catalog persistence.
type AlbumStore interface {
	Create(ctx context.Context, album *models.Album) error
	FindByID(ctx context.Context, id uint) (*models.Album, error)
	ListAll(ctx context.Context) ([]models.Album, error)
	Save(ctx context.Context, album *models.Album) error
}

type GormAlbumStore struct {
	db *gorm.DB
}

func NewGormAlbumStore(db *gorm.DB) *GormAlbumStore {
	return &GormAlbumStore{db: db}
}

func (s *GormAlbumStore) Create(ctx context.Context, album *models.Album) error {
	return translate(s.db.WithContext(ctx).Create(album).Error)
}

func (s *GormAlbumStore) FindByID(ctx context.Context, id uint) (*models.Album, error) {
	var album models.Album
	if err := s.db.WithContext(ctx).First(&album, id).Error; err != nil {
		return nil, translate(err)
	}
	return &album, nil
}

func (s *GormAlbumStore) ListAll(ctx context.Context) ([]models.Album, error) {
	var albums []models.Album
	if err := s.db.WithContext(ctx).Order("id").Find(&albums).Error; err != nil {
		return nil, translate(err)
	}
	return albums, nil
}

func (s *GormAlbumStore) Save(ctx context.Context, album *models.Album) error {
	return translate(s.db.WithContext(ctx).Save(album).Error)
}

var _ AlbumStore = (*GormAlbumStore)(nil)
