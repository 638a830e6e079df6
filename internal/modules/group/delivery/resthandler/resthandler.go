package resthandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo"

	"github.com/communitycal/events-api/internal/modules/group/domain"
	"github.com/communitycal/events-api/internal/modules/group/usecase"
	"github.com/communitycal/events-api/pkg/helper"
	"github.com/communitycal/events-api/pkg/logger"
	"github.com/communitycal/events-api/pkg/middleware"
	"github.com/communitycal/events-api/pkg/shared"
	"github.com/communitycal/events-api/pkg/wrapper"
)

// RestGroupHandler rest delivery
type RestGroupHandler struct {
	mw middleware.Middleware
	uc usecase.GroupUsecase
}

// NewRestGroupHandler constructor
func NewRestGroupHandler(mw middleware.Middleware, uc usecase.GroupUsecase) *RestGroupHandler {
	return &RestGroupHandler{mw: mw, uc: uc}
}

// Mount v1 routes
func (h *RestGroupHandler) Mount(root *echo.Group) {
	groups := root.Group(helper.V1 + "/groups")
	groups.GET("", h.findAll)
	groups.GET("/:slug", h.findBySlug)
	groups.POST("", h.create, h.mw.Authenticate())
}

func (h *RestGroupHandler) findAll(c echo.Context) error {
	ctx := c.Request().Context()

	var filter shared.Filter
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))

	groups, meta, err := h.uc.FindAll(ctx, &filter)
	if err != nil {
		return respondError(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success get all groups", meta, groups).JSON(c.Response())
}

func (h *RestGroupHandler) findBySlug(c echo.Context) error {
	ctx := c.Request().Context()

	group, err := h.uc.FindBySlug(ctx, c.Param("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success get detail group", group).JSON(c.Response())
}

func (h *RestGroupHandler) create(c echo.Context) error {
	ctx := c.Request().Context()

	var payload domain.Payload
	if err := json.NewDecoder(c.Request().Body).Decode(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(c.Response())
	}

	group, err := h.uc.Create(ctx, &payload)
	if err != nil {
		return respondError(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusCreated, "Success create group", group).JSON(c.Response())
}

func respondError(c echo.Context, err error) error {
	var apiError *shared.APIError
	if errors.As(err, &apiError) {
		return wrapper.NewHTTPResponse(apiError.Code, apiError.Message).JSON(c.Response())
	}

	var multiError helper.MultiError
	if errors.As(err, &multiError) {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid data", multiError).JSON(c.Response())
	}

	logger.LogEf("group handler: %v", err)
	return wrapper.NewHTTPResponse(http.StatusInternalServerError, "An error occurred").JSON(c.Response())
}
