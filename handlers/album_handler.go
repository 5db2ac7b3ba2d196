package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"beatbazaar/models"
	"beatbazaar/repositories"
)

// AlbumLister serves the cached album list. The redis-backed implementation
// lives in the database package; tests run without one.
type AlbumLister interface {
	Get(ctx context.Context) ([]models.Album, bool)
}

// AlbumHandler handles HTTP operations for the album catalog.
type AlbumHandler struct {
	store repositories.AlbumStore
	cache AlbumLister
}

// NewAlbumHandler creates a new AlbumHandler. cache may be nil, in which
// case every list request hits the store.
func NewAlbumHandler(store repositories.AlbumStore, cache AlbumLister) *AlbumHandler {
	return &AlbumHandler{store: store, cache: cache}
}

type albumRequest struct {
	AlbumName  string `json:"albumName"`
	ArtistName string `json:"artistName"`
	Price      int64  `json:"price"`
	SpotifyURL string `json:"spotifyUrl"`
}

// CreateAlbum handles POST /api/v1/albums (admin only).
func (h *AlbumHandler) CreateAlbum(c *fiber.Ctx) error {
	var body albumRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if body.AlbumName == "" || body.ArtistName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please provide album name and artist name",
		})
	}

	album := &models.Album{
		AlbumName:  body.AlbumName,
		ArtistName: body.ArtistName,
		Price:      body.Price,
		SpotifyURL: body.SpotifyURL,
		Slug:       models.MakeSlug(body.ArtistName, body.AlbumName),
	}
	if err := h.store.Create(c.Context(), album); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Album already exists",
			})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"album": album})
}

// GetAllAlbums handles GET /api/v1/albums. Served from the redis cache when
// warm, straight from the store otherwise.
func (h *AlbumHandler) GetAllAlbums(c *fiber.Ctx) error {
	if h.cache != nil {
		if albums, ok := h.cache.Get(c.Context()); ok {
			return c.JSON(fiber.Map{"albums": albums, "count": len(albums)})
		}
	}

	albums, err := h.store.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"albums": albums, "count": len(albums)})
}

// GetSingleAlbum handles GET /api/v1/albums/:id.
func (h *AlbumHandler) GetSingleAlbum(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Album not found",
		})
	}

	album, err := h.store.FindByID(c.Context(), uint(id))
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Album not found",
		})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"album": album})
}

// UpdateAlbum handles PATCH /api/v1/albums/:id (admin only). Absent fields
// keep their current values.
func (h *AlbumHandler) UpdateAlbum(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Album not found",
		})
	}

	album, err := h.store.FindByID(c.Context(), uint(id))
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Album not found",
		})
	}
	if err != nil {
		return err
	}

	var body albumRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if body.AlbumName != "" {
		album.AlbumName = body.AlbumName
	}
	if body.ArtistName != "" {
		album.ArtistName = body.ArtistName
	}
	if body.Price != 0 {
		album.Price = body.Price
	}
	if body.SpotifyURL != "" {
		album.SpotifyURL = body.SpotifyURL
	}
	album.Slug = models.MakeSlug(album.ArtistName, album.AlbumName)

	if err := h.store.Save(c.Context(), album); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"album": album})
}
