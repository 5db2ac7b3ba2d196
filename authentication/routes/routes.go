package routes

import (
	"github.com/gofiber/fiber/v2"

	"beatbazaar/authentication/controllers"
	"beatbazaar/authentication/middleware"
	"beatbazaar/handlers"
)

// Setup wires every HTTP route onto the app.
func Setup(app *fiber.App, jwtSecret string, auth *controllers.AuthController, albums *handlers.AlbumHandler, reviews *handlers.ReviewHandler) {
	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", auth.Register)
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/logout", auth.Logout)
	authGroup.Post("/forgot_password", auth.ForgotPassword)
	authGroup.Post("/reset_password", auth.ResetPassword)

	authed := middleware.JwtAuthMiddleware(jwtSecret)
	admin := middleware.RequireAdmin()

	albumGroup := api.Group("/albums")
	albumGroup.Get("/", albums.GetAllAlbums)
	albumGroup.Get("/:id", albums.GetSingleAlbum)
	albumGroup.Post("/", authed, admin, albums.CreateAlbum)
	albumGroup.Patch("/:id", authed, admin, albums.UpdateAlbum)

	reviewGroup := api.Group("/reviews")
	reviewGroup.Get("/", reviews.GetAllReviews)
	reviewGroup.Get("/album/:albumId", reviews.GetAllReviewsForAlbum)
	reviewGroup.Post("/album/:albumId", authed, reviews.CreateReview)
	reviewGroup.Get("/:id", reviews.GetSingleReview)
	reviewGroup.Patch("/:id", authed, reviews.UpdateReview)
	reviewGroup.Delete("/:id", authed, reviews.DeleteReview)
}
