package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beatbazaar/authentication/middleware"
	authutil "beatbazaar/authentication/util"
	"beatbazaar/internal/util"
	"beatbazaar/models"
	"beatbazaar/repositories"
)

const testSecret = "test-secret"

func newAlbumApp(t *testing.T) (*fiber.App, *repositories.InMemoryAlbumStore) {
	t.Helper()

	albums := repositories.NewInMemoryAlbumStore()
	h := NewAlbumHandler(albums, nil)

	app := fiber.New()
	authed := middleware.JwtAuthMiddleware(testSecret)
	admin := middleware.RequireAdmin()

	grp := app.Group("/api/v1/albums")
	grp.Get("/", h.GetAllAlbums)
	grp.Get("/:id", h.GetSingleAlbum)
	grp.Post("/", authed, admin, h.CreateAlbum)
	grp.Patch("/:id", authed, admin, h.UpdateAlbum)

	return app, albums
}

func sessionCookie(t *testing.T, role string) *http.Cookie {
	t.Helper()

	token, err := util.CreateAccessToken(authutil.TokenUser{Name: "ava", UserID: "1", Role: role}, testSecret, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: authutil.SessionCookieName, Value: token}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any, cookie *http.Cookie) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func parseBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func albumPayload() map[string]any {
	return map[string]any{
		"albumName":  "Unique Album",
		"artistName": "Unique Artist",
		"price":      999,
		"spotifyUrl": "https://api.spotify.com/v1/albums/unique",
	}
}

func TestCreateAlbumRequiresAdmin(t *testing.T) {
	app, _ := newAlbumApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/albums/", albumPayload(), nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/albums/", albumPayload(), sessionCookie(t, models.RoleUser))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCreateAlbumDerivesSlug(t *testing.T) {
	app, _ := newAlbumApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/albums/", albumPayload(), sessionCookie(t, models.RoleAdmin))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	album := parseBody(t, resp)["album"].(map[string]any)
	assert.Equal(t, "unique-artist-unique-album", album["slug"])
}

func TestGetAllAlbums(t *testing.T) {
	app, albums := newAlbumApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/albums/", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := parseBody(t, resp)
	assert.Equal(t, float64(0), body["count"])

	require.NoError(t, albums.Create(context.Background(), &models.Album{
		AlbumName:  "Unique Album",
		ArtistName: "Unique Artist",
		Slug:       models.MakeSlug("Unique Artist", "Unique Album"),
	}))

	resp = doJSON(t, app, http.MethodGet, "/api/v1/albums/", nil, nil)
	body = parseBody(t, resp)
	assert.Equal(t, float64(1), body["count"])
	assert.Len(t, body["albums"], 1)
}

func TestGetSingleAlbum(t *testing.T) {
	app, albums := newAlbumApp(t)

	album := &models.Album{AlbumName: "A", ArtistName: "B", Slug: models.MakeSlug("B", "A")}
	require.NoError(t, albums.Create(context.Background(), album))

	resp := doJSON(t, app, http.MethodGet, "/api/v1/albums/1", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/albums/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/albums/not-a-number", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateAlbumRecomputesSlug(t *testing.T) {
	app, albums := newAlbumApp(t)

	album := &models.Album{AlbumName: "Old Album", ArtistName: "Old Artist", Slug: models.MakeSlug("Old Artist", "Old Album")}
	require.NoError(t, albums.Create(context.Background(), album))

	resp := doJSON(t, app, http.MethodPatch, "/api/v1/albums/1",
		map[string]any{"albumName": "New Album"}, sessionCookie(t, models.RoleAdmin))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := parseBody(t, resp)["album"].(map[string]any)
	assert.Equal(t, "New Album", updated["albumName"])
	assert.Equal(t, "Old Artist", updated["artistName"])
	assert.Equal(t, "old-artist-new-album", updated["slug"])
}
