package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"beatbazaar/models"
)

// InMemoryAlbumStore is the test/development counterpart of GormAlbumStore.
type InMemoryAlbumStore struct {
	mu     sync.RWMutex
	albums map[uint]models.Album
	nextID uint
}

func NewInMemoryAlbumStore() *InMemoryAlbumStore {
	return &InMemoryAlbumStore{albums: make(map[uint]models.Album)}
}

func (s *InMemoryAlbumStore) Create(ctx context.Context, album *models.Album) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.albums {
		if existing.Slug == album.Slug {
			return ErrDuplicateKey
		}
	}
	s.nextID++
	album.ID = s.nextID
	album.CreatedAt = time.Now()
	album.UpdatedAt = album.CreatedAt
	s.albums[album.ID] = *album
	return nil
}

func (s *InMemoryAlbumStore) FindByID(ctx context.Context, id uint) (*models.Album, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	album, exists := s.albums[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &album, nil
}

func (s *InMemoryAlbumStore) ListAll(ctx context.Context) ([]models.Album, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	albums := make([]models.Album, 0, len(s.albums))
	for _, a := range s.albums {
		albums = append(albums, a)
	}
	sort.Slice(albums, func(i, j int) bool { return albums[i].ID < albums[j].ID })
	return albums, nil
}

func (s *InMemoryAlbumStore) Save(ctx context.Context, album *models.Album) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.albums[album.ID]; !exists {
		return ErrNotFound
	}
	album.UpdatedAt = time.Now()
	s.albums[album.ID] = *album
	return nil
}

var _ AlbumStore = (*InMemoryAlbumStore)(nil)
