package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"shortlinks/internal/domain"
	"shortlinks/internal/metrics"
	"shortlinks/internal/middleware"
	"shortlinks/internal/service"
	"shortlinks/internal/validation"
)

const (
	msgLinkNotFound = "Link not found"
	msgLinkExpired  = "Link has expired"
	msgServerError  = "Server error"
)

var (
	errInvalidBody    = errorResponse{Error: "Invalid request body"}
	errInternal       = errorResponse{Error: "Internal server error"}
	respHealthOK      = map[string]string{"status": "ok"}
	respLinkDeleted   = domain.DeleteLinkResponse{Message: "Link deleted"}
	respTokenNotValid = domain.VerifyTokenResponse{IsValid: false}
)

type errorResponse struct {
	Error string `json:"error"`
}

// LinkResponse is a stored link plus its absolute short URL.
type LinkResponse struct {
	domain.Link
	ShortURL string `json:"shortUrl"`
}

type Handler struct {
	auth         AuthService
	links        LinkService
	redirects    RedirectService
	analytics    AnalyticsService
	urlValidator URLValidator
	recorder     RedirectRecorder
	baseURL      string
	logger       zerolog.Logger
}

func New(
	authService AuthService,
	links LinkService,
	redirects RedirectService,
	analytics AnalyticsService,
	urlValidator URLValidator,
	recorder RedirectRecorder,
	baseURL string,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		auth:         authService,
		links:        links,
		redirects:    redirects,
		analytics:    analytics,
		urlValidator: urlValidator,
		recorder:     recorder,
		baseURL:      strings.TrimRight(baseURL, "/"),
		logger:       logger,
	}
}

// Register mounts all routes. Link management routes run behind requireAuth.
func (h *Handler) Register(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	api := e.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/login", h.Login)
	api.POST("/verifyToken", h.VerifyToken)

	links := api.Group("/links", requireAuth)
	links.POST("", h.CreateLink)
	links.GET("", h.ListLinks)
	links.DELETE("/:id", h.DeleteLink)
	links.GET("/:id/analytics", h.GetAnalytics)

	e.GET("/:shortCode", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) Login(c echo.Context) error {
	var req domain.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return h.respondError(c, err)
	}

	res, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, domain.LoginResponse{
		AccessToken: res.AccessToken,
		UserID:      res.UserID,
	})
}

func (h *Handler) VerifyToken(c echo.Context) error {
	token, ok := middleware.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		return c.JSON(http.StatusBadRequest, respTokenNotValid)
	}

	res := h.auth.VerifyToken(token)
	if !res.Valid {
		return c.JSON(http.StatusBadRequest, respTokenNotValid)
	}

	return c.JSON(http.StatusOK, domain.VerifyTokenResponse{IsValid: true, UserID: &res.UserID})
}

func (h *Handler) CreateLink(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	var req domain.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.urlValidator.ValidateURL(req.OriginalURL); err != nil {
		return h.respondError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return h.respondError(c, err)
	}
	expiresAt, err := validation.ParseExpiry(req.ExpiresAt)
	if err != nil {
		return h.respondError(c, err)
	}

	link, err := h.links.CreateLink(c.Request().Context(), domain.NewLink{
		OriginalURL: req.OriginalURL,
		CustomAlias: req.CustomAlias,
		ExpiresAt:   expiresAt,
		OwnerID:     userID,
	})
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, h.toResponse(*link))
}

func (h *Handler) ListLinks(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	links, err := h.links.ListLinks(c.Request().Context(), userID)
	if err != nil {
		return h.respondError(c, err)
	}

	resp := make([]LinkResponse, len(links))
	for i, l := range links {
		resp[i] = h.toResponse(l)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteLink(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return h.respondError(c, service.ErrLinkNotFound)
	}

	if err := h.links.DeleteLink(c.Request().Context(), id, userID); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, respLinkDeleted)
}

func (h *Handler) GetAnalytics(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return h.respondError(c, service.ErrLinkNotFound)
	}

	analytics, err := h.analytics.GetAnalytics(c.Request().Context(), id, userID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, analytics)
}

// Redirect answers in plain text; browsers follow these links directly.
func (h *Handler) Redirect(c echo.Context) error {
	code := c.Param("shortCode")
	req := c.Request()

	target, err := h.redirects.Resolve(req.Context(), code, domain.RequestMeta{
		IP:        c.RealIP(),
		UserAgent: req.UserAgent(),
		Referrer:  req.Referer(),
	})
	switch {
	case err == nil:
		h.recorder.RecordRedirect(metrics.RedirectOK)
		return c.Redirect(http.StatusFound, target)
	case errors.Is(err, service.ErrLinkNotFound):
		h.recorder.RecordRedirect(metrics.RedirectNotFound)
		return c.String(http.StatusNotFound, msgLinkNotFound)
	case errors.Is(err, service.ErrLinkExpired):
		h.recorder.RecordRedirect(metrics.RedirectExpired)
		return c.String(http.StatusGone, msgLinkExpired)
	default:
		h.recorder.RecordRedirect(metrics.RedirectError)
		h.logger.Error().Err(err).Str("short_code", code).Msg("failed to resolve link")
		return c.String(http.StatusInternalServerError, msgServerError)
	}
}

func (h *Handler) toResponse(l domain.Link) LinkResponse {
	return LinkResponse{Link: l, ShortURL: h.baseURL + "/" + l.ShortCode}
}
