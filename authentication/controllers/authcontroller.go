package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	authutil "beatbazaar/authentication/util"
	"beatbazaar/config"
	"beatbazaar/internal/util"
	"beatbazaar/mailing"
	"beatbazaar/models"
	"beatbazaar/repositories"
)

var errEmailExists = errors.New("email already exists")

// AuthController implements registration, login/logout and the password
// reset flow. All state lives in the injected collaborators.
type AuthController struct {
	users  repositories.UserStore
	mailer mailing.Mailer
	cfg    config.Config
	log    *slog.Logger
}

func NewAuthController(users repositories.UserStore, mailer mailing.Mailer, cfg config.Config, log *slog.Logger) *AuthController {
	return &AuthController{users: users, mailer: mailer, cfg: cfg, log: log}
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Register creates a new user account. The uniqueness check, record
// creation, welcome email and token issuance run in one transaction; only
// after it commits does the response (and cookie) go out.
func (a *AuthController) Register(c *fiber.Ctx) error {
	var body registerRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	body.Email = normalizeEmail(body.Email)
	if body.Name == "" || body.Username == "" || body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please provide all required fields",
		})
	}

	var (
		tokenUser authutil.TokenUser
		token     string
	)
	err := a.users.WithinTx(c.Context(), func(tx repositories.UserStore) error {
		if _, err := tx.FindByEmail(c.Context(), body.Email); err == nil {
			return errEmailExists
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		count, err := tx.CountAll(c.Context())
		if err != nil {
			return err
		}
		role := models.RoleUser
		if count == 0 {
			role = models.RoleAdmin
		}

		hash, err := util.HashPassword(body.Password)
		if err != nil {
			return err
		}

		user := &models.User{
			Name:         body.Name,
			Username:     body.Username,
			Email:        body.Email,
			PasswordHash: hash,
			Role:         role,
		}
		if err := tx.Create(c.Context(), user); err != nil {
			// Two registrations racing on the same email both pass the
			// pre-check; the store's unique index catches the loser.
			if errors.Is(err, repositories.ErrDuplicateKey) {
				return errEmailExists
			}
			return err
		}

		if err := a.mailer.SendWelcomeEmail(c.Context(), user.Email, user.Name); err != nil {
			return fmt.Errorf("welcome email: %w", err)
		}

		tokenUser = authutil.NewTokenUser(user)
		token, err = util.CreateAccessToken(tokenUser, a.cfg.JWTSecret, a.cfg.JWTLifetime)
		return err
	})
	if errors.Is(err, errEmailExists) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email already exists",
		})
	}
	if err != nil {
		return err
	}

	a.attachCookie(c, token)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": tokenUser})
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password produce the identical response on purpose.
func (a *AuthController) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	body.Email = normalizeEmail(body.Email)
	if body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please provide email and password",
		})
	}

	user, err := a.users.FindByEmail(c.Context(), body.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		return invalidCredentials(c)
	}
	if err != nil {
		return err
	}

	if !util.CheckPassword(user.PasswordHash, body.Password) {
		return invalidCredentials(c)
	}

	tokenUser := authutil.NewTokenUser(user)
	token, err := util.CreateAccessToken(tokenUser, a.cfg.JWTSecret, a.cfg.JWTLifetime)
	if err != nil {
		return err
	}

	a.attachCookie(c, token)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": tokenUser})
}

// Logout clears the session cookie. There is no server-side session record,
// so this succeeds whether or not a valid cookie was presented.
func (a *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authutil.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "user logged out!"})
}

// ForgotPassword issues a reset token for the account and emails it. The
// email send is best effort: a delivery failure is logged but the request
// still succeeds, since the token is already persisted and the user can
// retry.
func (a *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var body forgotPasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	body.Email = normalizeEmail(body.Email)
	if body.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please provide an email",
		})
	}

	user, err := a.users.FindByEmail(c.Context(), body.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "user not found",
		})
	}
	if err != nil {
		return err
	}

	resetToken, expiry, err := util.GenerateResetToken()
	if err != nil {
		return err
	}
	user.ResetToken = &resetToken
	user.ResetTokenExpiry = &expiry
	if err := a.users.Save(c.Context(), user); err != nil {
		return err
	}

	if err := a.mailer.SendPasswordResetEmail(c.Context(), user.Email, resetToken); err != nil {
		a.log.Error("reset email delivery failed", "email", user.Email, "err", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Password reset email sent"})
}

// ResetPassword consumes a reset token: exact-match lookup first, expiry
// check second. On success the new password is hashed and the token and its
// expiry are cleared together.
func (a *AuthController) ResetPassword(c *fiber.Ctx) error {
	var body resetPasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if body.Token == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please provide token and new password",
		})
	}

	user, err := a.users.FindByResetToken(c.Context(), body.Token)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "reset token not found",
		})
	}
	if err != nil {
		return err
	}

	if user.ResetTokenExpiry == nil || time.Now().After(*user.ResetTokenExpiry) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Reset token has expired",
		})
	}

	hash, err := util.HashPassword(body.Password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.ClearResetToken()
	if err := a.users.Save(c.Context(), user); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Password reset successful"})
}

func (a *AuthController) attachCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     authutil.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(a.cfg.JWTLifetime),
		HTTPOnly: true,
	})
}

func invalidCredentials(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Invalid Credentials",
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
