package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"beatbazaar/authentication/middleware"
	authutil "beatbazaar/authentication/util"
	"beatbazaar/models"
	"beatbazaar/repositories"
)

// ReviewHandler handles HTTP operations for album reviews.
type ReviewHandler struct {
	reviews repositories.ReviewStore
	albums  repositories.AlbumStore
}

func NewReviewHandler(reviews repositories.ReviewStore, albums repositories.AlbumStore) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, albums: albums}
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// CreateReview handles POST /api/v1/reviews/album/:albumId.
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	albumID, err := c.ParamsInt("albumId")
	if err != nil || albumID < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Album not found",
		})
	}
	if _, err := h.albums.FindByID(c.Context(), uint(albumID)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Album not found",
			})
		}
		return err
	}

	var body reviewRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if body.Rating < 1 || body.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please provide a rating between 1 and 5",
		})
	}

	review := &models.Review{
		Rating:  body.Rating,
		Title:   body.Title,
		Comment: body.Comment,
		UserID:  claimsUserID(user),
		AlbumID: uint(albumID),
	}
	if err := h.reviews.Create(c.Context(), review); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Already submitted a review for this album",
			})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"review": review})
}

// GetAllReviews handles GET /api/v1/reviews.
func (h *ReviewHandler) GetAllReviews(c *fiber.Ctx) error {
	reviews, err := h.reviews.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"reviews": reviews, "count": len(reviews)})
}

// GetAllReviewsForAlbum handles GET /api/v1/reviews/album/:albumId.
func (h *ReviewHandler) GetAllReviewsForAlbum(c *fiber.Ctx) error {
	albumID, err := c.ParamsInt("albumId")
	if err != nil || albumID < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Album not found",
		})
	}

	reviews, err := h.reviews.ListByAlbum(c.Context(), uint(albumID))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"allProductReviews": reviews, "count": len(reviews)})
}

// GetSingleReview handles GET /api/v1/reviews/:id.
func (h *ReviewHandler) GetSingleReview(c *fiber.Ctx) error {
	review, err := h.findByParam(c)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"review": review})
}

// UpdateReview handles PATCH /api/v1/reviews/:id. Only the author or an
// admin may edit.
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	review, err := h.findByParam(c)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}
	if err != nil {
		return err
	}
	if !mayTouch(user, review) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized to access this route",
		})
	}

	var body reviewRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if body.Rating != 0 {
		if body.Rating < 1 || body.Rating > 5 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Please provide a rating between 1 and 5",
			})
		}
		review.Rating = body.Rating
	}
	if body.Title != "" {
		review.Title = body.Title
	}
	if body.Comment != "" {
		review.Comment = body.Comment
	}

	if err := h.reviews.Save(c.Context(), review); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"review": review})
}

// DeleteReview handles DELETE /api/v1/reviews/:id. Only the author or an
// admin may delete.
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	review, err := h.findByParam(c)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}
	if err != nil {
		return err
	}
	if !mayTouch(user, review) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized to access this route",
		})
	}

	if err := h.reviews.Delete(c.Context(), review.ID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"msg": "Success! Review removed"})
}

// findByParam fetches the review addressed by the :id param. Unparseable
// ids count as not found, matching how unknown ids behave.
func (h *ReviewHandler) findByParam(c *fiber.Ctx) (*models.Review, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, repositories.ErrNotFound
	}
	return h.reviews.FindByID(c.Context(), uint(id))
}

func mayTouch(user authutil.TokenUser, review *models.Review) bool {
	return user.Role == models.RoleAdmin || claimsUserID(user) == review.UserID
}

func claimsUserID(user authutil.TokenUser) uint {
	id, _ := strconv.ParseUint(user.UserID, 10, 64)
	return uint(id)
}
