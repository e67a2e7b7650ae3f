package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anonto42/instapix/backend/internal/middleware"
	"github.com/anonto42/instapix/backend/internal/models"
	"github.com/anonto42/instapix/backend/internal/repositories"
	"github.com/anonto42/instapix/backend/internal/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authHarness struct {
	e       *echo.Echo
	handler *AuthHandler
	users   repositories.UserRepository
}

func newAuthHarness(users repositories.UserRepository) *authHarness {
	e := echo.New()
	e.Validator = validators.NewValidator()
	return &authHarness{
		e:       e,
		handler: NewAuthHandler(users, "testing-secret"),
		users:   users,
	}
}

// do runs an unauthenticated handler and returns the recorder. Echo HTTP
// errors are committed to the response the same way the default error
// handler would.
func (h *authHarness) do(fn echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := h.e.NewContext(req, rec)
	if err := fn(c); err != nil {
		h.e.HTTPErrorHandler(err, c)
	}
	return rec
}

func tokenCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.TokenCookieName {
			return cookie
		}
	}
	return nil
}

func TestRegister_CreatedWithSession(t *testing.T) {
	h := newAuthHarness(newMemUserRepo())

	rec := h.do(h.handler.Register, `{"username":"alice","email":"alice@example.com","password":"hunter2hunter2"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "user is created")
	assert.NotContains(t, rec.Body.String(), "hunter2hunter2")

	cookie := tokenCookie(rec)
	require.NotNil(t, cookie, "register must set the session cookie")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestRegister_UsernameConflictHint(t *testing.T) {
	h := newAuthHarness(newMemUserRepo("alice"))

	rec := h.do(h.handler.Register, `{"username":"alice","email":"other@example.com","password":"hunter2hunter2"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "please change the username")
}

func TestRegister_EmailConflictHint(t *testing.T) {
	h := newAuthHarness(newMemUserRepo("alice"))

	rec := h.do(h.handler.Register, `{"username":"alice2","email":"alice@example.com","password":"hunter2hunter2"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "please change the email")
}

// blindUserRepo reports no conflict on the advisory read, as if a concurrent
// registration inserted between the check and the write. The unique index
// (duplicate error on insert) must settle it.
type blindUserRepo struct {
	*memUserRepo
}

func (r *blindUserRepo) GetUserByUsernameOrEmail(context.Context, string, string) (*models.User, error) {
	return nil, repositories.ErrNotFound
}

func TestRegister_RaceSettledByIndex(t *testing.T) {
	users := &blindUserRepo{newMemUserRepo()}
	h := newAuthHarness(users)

	rec := h.do(h.handler.Register, `{"username":"alice","email":"alice@example.com","password":"hunter2hunter2"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = h.do(h.handler.Register, `{"username":"alice","email":"alice@example.com","password":"hunter2hunter2"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "user already exists")
	assert.Len(t, users.memUserRepo.users, 1)
}

func TestLogin_UnknownUser(t *testing.T) {
	h := newAuthHarness(newMemUserRepo())

	rec := h.do(h.handler.Login, `{"username":"ghost","password":"hunter2hunter2"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "user not exists")
	assert.Nil(t, tokenCookie(rec))
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newAuthHarness(newMemUserRepo())

	rec := h.do(h.handler.Register, `{"username":"alice","email":"alice@example.com","password":"hunter2hunter2"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = h.do(h.handler.Login, `{"username":"alice","password":"not-the-password"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "password is invalid")
	assert.Nil(t, tokenCookie(rec))
}

func TestLogin_ByUsernameOrEmail(t *testing.T) {
	h := newAuthHarness(newMemUserRepo())

	rec := h.do(h.handler.Register, `{"username":"alice","email":"alice@example.com","password":"hunter2hunter2"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = h.do(h.handler.Login, `{"username":"alice","password":"hunter2hunter2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User logged in successfully.")
	cookie := tokenCookie(rec)
	require.NotNil(t, cookie, "login must set the session cookie")
	assert.NotEmpty(t, cookie.Value)

	rec = h.do(h.handler.Login, `{"email":"alice@example.com","password":"hunter2hunter2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_MissingIdentifier(t *testing.T) {
	h := newAuthHarness(newMemUserRepo())

	rec := h.do(h.handler.Login, `{"password":"hunter2hunter2"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "username or email is required")
}
