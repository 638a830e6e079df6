package resthandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo"

	"github.com/communitycal/events-api/internal/modules/event/domain"
	"github.com/communitycal/events-api/internal/modules/event/usecase"
	"github.com/communitycal/events-api/pkg/cache"
	"github.com/communitycal/events-api/pkg/helper"
	"github.com/communitycal/events-api/pkg/logger"
	"github.com/communitycal/events-api/pkg/middleware"
	"github.com/communitycal/events-api/pkg/shared"
	"github.com/communitycal/events-api/pkg/wrapper"
)

// RestEventHandler rest delivery
type RestEventHandler struct {
	mw            middleware.Middleware
	uc            usecase.EventUsecase
	queryCache    cache.Cache
	queryCacheTTL time.Duration
}

// NewRestEventHandler constructor
func NewRestEventHandler(mw middleware.Middleware, uc usecase.EventUsecase, queryCache cache.Cache, queryCacheTTL time.Duration) *RestEventHandler {
	return &RestEventHandler{
		mw:            mw,
		uc:            uc,
		queryCache:    queryCache,
		queryCacheTTL: queryCacheTTL,
	}
}

// Mount v1 routes plus the public feed endpoints
func (h *RestEventHandler) Mount(root *echo.Group) {
	root.GET("/cal", h.calendarFeed)
	root.GET("/geo", h.upcomingInPlace)

	events := root.Group(helper.V1 + "/events")
	events.GET("", h.findAll, h.mw.WithIdentity())
	events.GET("/:id", h.findByID, h.mw.WithIdentity())
	events.POST("", h.create, h.mw.Authenticate())
	events.PUT("/:id", h.update, h.mw.Authenticate())
}

func (h *RestEventHandler) calendarFeed(c echo.Context) error {
	ctx := c.Request().Context()

	query := &domain.CalendarQuery{
		Group:     c.QueryParam("group"),
		Geo:       c.QueryParam("geo"),
		ID:        c.QueryParam("id"),
		Tag:       c.QueryParam("tag"),
		HasParams: len(c.QueryParams()) > 0,
	}

	cacheKey := query.CacheKey()
	if cached, err := h.queryCache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
		return respondCalendar(c, cached)
	}

	feed, err := h.uc.CalendarFeed(ctx, query)
	if err != nil {
		return respondPlainError(c, err)
	}

	if err := h.queryCache.Set(ctx, cacheKey, feed, h.queryCacheTTL); err != nil {
		logger.LogEf("calendar feed: cache %s: %v", cacheKey, err)
	}
	return respondCalendar(c, feed)
}

func (h *RestEventHandler) upcomingInPlace(c echo.Context) error {
	ctx := c.Request().Context()

	docs, err := h.uc.UpcomingInPlace(ctx, c.QueryParam("location"))
	if err != nil {
		return respondPlainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"docs": docs})
}

func (h *RestEventHandler) findAll(c echo.Context) error {
	ctx := c.Request().Context()

	var filter domain.EventFilter
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.GroupSlugs = helper.ParseSlugList(c.QueryParam("group"))
	filter.TagSlugs = helper.ParseSlugList(c.QueryParam("tag"))

	events, meta, err := h.uc.FindAll(ctx, &filter)
	if err != nil {
		return respondError(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success get all events", meta, events).JSON(c.Response())
}

func (h *RestEventHandler) findByID(c echo.Context) error {
	ctx := c.Request().Context()

	event, err := h.uc.FindByID(ctx, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success get detail event", event).JSON(c.Response())
}

func (h *RestEventHandler) create(c echo.Context) error {
	ctx := c.Request().Context()

	var payload domain.Payload
	if err := json.NewDecoder(c.Request().Body).Decode(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(c.Response())
	}

	event, err := h.uc.Create(ctx, &payload)
	if err != nil {
		return respondError(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusCreated, "Success create event", event).JSON(c.Response())
}

func (h *RestEventHandler) update(c echo.Context) error {
	ctx := c.Request().Context()

	var payload domain.Payload
	if err := json.NewDecoder(c.Request().Body).Decode(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(c.Response())
	}

	event, err := h.uc.Update(ctx, c.Param("id"), &payload)
	if err != nil {
		return respondError(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success update event", event).JSON(c.Response())
}

// respondCalendar write feed with download headers
func respondCalendar(c echo.Context, feed []byte) error {
	c.Response().Header().Set(helper.HeaderContentDisposition, `attachment; filename="calendar.ics"`)
	return c.Blob(http.StatusOK, helper.MIMETextCalendar, feed)
}

// respondPlainError the public feed endpoints answer with plain text bodies
func respondPlainError(c echo.Context, err error) error {
	var apiError *shared.APIError
	if errors.As(err, &apiError) {
		return c.String(apiError.Code, apiError.Message)
	}

	logger.LogEf("event handler: %v", err)
	return c.String(http.StatusInternalServerError, "An error occurred")
}

// respondError v1 endpoints answer with the json envelope
func respondError(c echo.Context, err error) error {
	var apiError *shared.APIError
	if errors.As(err, &apiError) {
		return wrapper.NewHTTPResponse(apiError.Code, apiError.Message).JSON(c.Response())
	}

	var multiError helper.MultiError
	if errors.As(err, &multiError) {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid data", multiError).JSON(c.Response())
	}

	logger.LogEf("event handler: %v", err)
	return wrapper.NewHTTPResponse(http.StatusInternalServerError, "An error occurred").JSON(c.Response())
}
