package handler_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shortlinks/internal/auth"
	"shortlinks/internal/domain"
	"shortlinks/internal/handler"
	"shortlinks/internal/handler/mocks"
	"shortlinks/internal/middleware"
	"shortlinks/internal/service"
	"shortlinks/internal/validation"
)

func sampleLink(code string) domain.Link {
	return domain.Link{
		ID:          uuid.New(),
		OriginalURL: "https://example.com/page",
		ShortCode:   code,
		UserID:      1,
		CreatedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// CreateLink tests

func TestCreateLink_Success(t *testing.T) {
	e, d := newTestServer(t)
	link := sampleLink("promo")
	d.validator.EXPECT().ValidateURL("https://example.com/page").Return(nil)
	d.links.EXPECT().CreateLink(mock.Anything, domain.NewLink{
		OriginalURL: "https://example.com/page",
		CustomAlias: "promo",
		OwnerID:     1,
	}).Return(&link, nil)

	rec := do(e, http.MethodPost, "/api/links", "owner-1", `{"originalUrl":"https://example.com/page","customAlias":"promo"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decode[handler.LinkResponse](t, rec)
	assert.Equal(t, link.ID, resp.ID)
	assert.Equal(t, "promo", resp.ShortCode)
	assert.Equal(t, "http://sho.rt/promo", resp.ShortURL)
	assert.Nil(t, resp.ExpiresAt)
}

func TestCreateLink_WithExpiry(t *testing.T) {
	e, d := newTestServer(t)
	link := sampleLink("abc123")
	want := time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)
	d.validator.EXPECT().ValidateURL(mock.Anything).Return(nil)
	d.links.EXPECT().CreateLink(mock.Anything, mock.MatchedBy(func(in domain.NewLink) bool {
		return in.ExpiresAt != nil && in.ExpiresAt.Equal(want) && in.CustomAlias == ""
	})).Return(&link, nil)

	rec := do(e, http.MethodPost, "/api/links", "owner-1", `{"originalUrl":"https://example.com/page","expiresAt":"2030-01-02"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateLink_RejectedInput(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		urlErr  error
		message string
	}{
		{
			name:    "invalid url",
			body:    `{"originalUrl":"not-a-url"}`,
			urlErr:  validation.ErrInvalidURLFormat,
			message: "Invalid URL format",
		},
		{
			name:    "reserved alias",
			body:    `{"originalUrl":"https://example.com","customAlias":"api"}`,
			message: "Custom alias is reserved",
		},
		{
			name:    "alias with spaces",
			body:    `{"originalUrl":"https://example.com","customAlias":"my link"}`,
			message: "Invalid custom alias",
		},
		{
			name:    "unparseable expiry",
			body:    `{"originalUrl":"https://example.com","expiresAt":"next tuesday"}`,
			message: "Invalid expiration date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, d := newTestServer(t)
			d.validator.EXPECT().ValidateURL(mock.Anything).Return(tt.urlErr)

			rec := do(e, http.MethodPost, "/api/links", "owner-1", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decode[map[string]string](t, rec)["error"])
		})
	}
}

func TestCreateLink_RealURLValidator(t *testing.T) {
	d := testDeps{
		auth:      mocks.NewMockAuthService(t),
		links:     mocks.NewMockLinkService(t),
		redirects: mocks.NewMockRedirectService(t),
		analytics: mocks.NewMockAnalyticsService(t),
		recorder:  mocks.NewMockRedirectRecorder(t),
	}
	h := handler.New(d.auth, d.links, d.redirects, d.analytics,
		validation.NewURLValidator(2048, true), d.recorder, "http://sho.rt", zerolog.Nop())
	e := echo.New()
	e.JSONSerializer = handler.JSONSerializer{}
	e.Validator = validation.NewStructValidator()
	h.Register(e, middleware.RequireAuth(tokenVerifier{"owner-1": 1}))

	for body, msg := range map[string]string{
		`{"originalUrl":""}`:                        "URL is required",
		`{"originalUrl":"not-a-url"}`:               "Invalid URL format",
		`{"originalUrl":"javascript:alert(1)"}`:     "URL protocol not allowed",
		`{"originalUrl":"https://"}`:                "Invalid URL format",
		`{"originalUrl":"http://127.0.0.1/admin"}`:  "Private IP addresses not allowed",
		`{"originalUrl":"http://192.168.1.5:8080"}`: "Private IP addresses not allowed",
	} {
		rec := do(e, http.MethodPost, "/api/links", "owner-1", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, msg, decode[map[string]string](t, rec)["error"], body)
	}
}

func TestCreateLink_ServiceErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"alias taken", service.ErrAliasTaken, http.StatusBadRequest, "Custom alias already in use"},
		{"code space exhausted", service.ErrCodeSpaceExhausted, http.StatusInternalServerError, "Could not allocate short code"},
		{"database", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, d := newTestServer(t)
			d.validator.EXPECT().ValidateURL(mock.Anything).Return(nil)
			d.links.EXPECT().CreateLink(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := do(e, http.MethodPost, "/api/links", "owner-1", `{"originalUrl":"https://example.com","customAlias":"promo"}`)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, decode[map[string]string](t, rec)["error"])
		})
	}
}

func TestCreateLink_Unauthenticated(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/links", "", `{"originalUrl":"https://example.com"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodPost, "/api/links", "forged", `{"originalUrl":"https://example.com"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// ListLinks tests

func TestListLinks(t *testing.T) {
	e, d := newTestServer(t)
	d.links.EXPECT().ListLinks(mock.Anything, int64(2)).
		Return([]domain.Link{sampleLink("b"), sampleLink("a")}, nil)

	rec := do(e, http.MethodGet, "/api/links", "owner-2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[[]handler.LinkResponse](t, rec)
	require.Len(t, resp, 2)
	assert.Equal(t, "http://sho.rt/b", resp[0].ShortURL)
	assert.Equal(t, "http://sho.rt/a", resp[1].ShortURL)
}

func TestListLinks_Empty(t *testing.T) {
	e, d := newTestServer(t)
	d.links.EXPECT().ListLinks(mock.Anything, int64(1)).Return(nil, nil)

	rec := do(e, http.MethodGet, "/api/links", "owner-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

// DeleteLink tests

func TestDeleteLink(t *testing.T) {
	id := uuid.New()
	e, d := newTestServer(t)
	d.links.EXPECT().DeleteLink(mock.Anything, id, int64(1)).Return(nil)

	rec := do(e, http.MethodDelete, "/api/links/"+id.String(), "owner-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Link deleted"}`, rec.Body.String())
}

func TestDeleteLink_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", service.ErrLinkNotFound, http.StatusNotFound, "Link not found"},
		{"other owner", service.ErrForbidden, http.StatusForbidden, "Not authorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			e, d := newTestServer(t)
			d.links.EXPECT().DeleteLink(mock.Anything, id, int64(2)).Return(tt.err)

			rec := do(e, http.MethodDelete, "/api/links/"+id.String(), "owner-2", "")
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, decode[map[string]string](t, rec)["error"])
		})
	}
}

func TestDeleteLink_MalformedID(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodDelete, "/api/links/12345", "owner-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Login and verify against the real auth service.

func TestLoginThenVerify(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	authService := auth.NewService(auth.NewStaticStore(auth.Account{
		ID:           7,
		Email:        "Admin@Example.com",
		PasswordHash: string(hash),
	}), tokens)

	h := handler.New(authService, mocks.NewMockLinkService(t), mocks.NewMockRedirectService(t),
		mocks.NewMockAnalyticsService(t), mocks.NewMockURLValidator(t), mocks.NewMockRedirectRecorder(t),
		"http://sho.rt", zerolog.Nop())
	e := echo.New()
	e.JSONSerializer = handler.JSONSerializer{}
	e.Validator = validation.NewStructValidator()
	h.Register(e, middleware.RequireAuth(tokens))

	rec := do(e, http.MethodPost, "/api/login", "", `{"email":"admin@example.com","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	login := decode[domain.LoginResponse](t, rec)
	assert.Equal(t, int64(7), login.UserID)
	require.NotEmpty(t, login.AccessToken)

	rec = do(e, http.MethodPost, "/api/verifyToken", login.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isValid":true,"userId":7}`, rec.Body.String())

	rec = do(e, http.MethodPost, "/api/login", "", `{"email":"admin@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid password", decode[map[string]string](t, rec)["error"])
}


func TestCreateLink_DefaultValidatorAcceptsAnyAbsoluteURL(t *testing.T) {
	d := testDeps{
		auth:      mocks.NewMockAuthService(t),
		links:     mocks.NewMockLinkService(t),
		redirects: mocks.NewMockRedirectService(t),
		analytics: mocks.NewMockAnalyticsService(t),
		recorder:  mocks.NewMockRedirectRecorder(t),
	}
	h := handler.New(d.auth, d.links, d.redirects, d.analytics,
		validation.NewURLValidator(2048, false), d.recorder, "http://sho.rt", zerolog.Nop())
	e := echo.New()
	e.JSONSerializer = handler.JSONSerializer{}
	e.Validator = validation.NewStructValidator()
	h.Register(e, middleware.RequireAuth(tokenVerifier{"owner-1": 1}))

	for _, target := range []string{
		"ftp://files.example.com/a.zip",
		"mailto:ops@example.com",
		"http://10.0.0.5/intranet",
	} {
		link := sampleLink("abc123")
		link.OriginalURL = target
		d.links.EXPECT().CreateLink(mock.Anything, mock.MatchedBy(func(in domain.NewLink) bool {
			return in.OriginalURL == target
		})).Return(&link, nil).Once()

		rec := do(e, http.MethodPost, "/api/links", "owner-1", `{"originalUrl":"`+target+`"}`)
		assert.Equal(t, http.StatusCreated, rec.Code, target)
		assert.Equal(t, target, decode[handler.LinkResponse](t, rec).OriginalURL)
	}
}
