package resthandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo"

	"github.com/communitycal/events-api/internal/modules/tag/domain"
	"github.com/communitycal/events-api/internal/modules/tag/usecase"
	"github.com/communitycal/events-api/pkg/helper"
	"github.com/communitycal/events-api/pkg/logger"
	"github.com/communitycal/events-api/pkg/middleware"
	"github.com/communitycal/events-api/pkg/shared"
	"github.com/communitycal/events-api/pkg/wrapper"
)

// RestTagHandler rest delivery
type RestTagHandler struct {
	mw middleware.Middleware
	uc usecase.TagUsecase
}

// NewRestTagHandler constructor
func NewRestTagHandler(mw middleware.Middleware, uc usecase.TagUsecase) *RestTagHandler {
	return &RestTagHandler{mw: mw, uc: uc}
}

// Mount v1 routes
func (h *RestTagHandler) Mount(root *echo.Group) {
	tags := root.Group(helper.V1 + "/tags")
	tags.GET("", h.findAll)
	tags.POST("", h.create, h.mw.Authenticate())
}

func (h *RestTagHandler) findAll(c echo.Context) error {
	ctx := c.Request().Context()

	tags, err := h.uc.FindAll(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success get all tags", tags).JSON(c.Response())
}

func (h *RestTagHandler) create(c echo.Context) error {
	ctx := c.Request().Context()

	var payload domain.Payload
	if err := json.NewDecoder(c.Request().Body).Decode(&payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(c.Response())
	}

	tag, err := h.uc.Create(ctx, &payload)
	if err != nil {
		return respondError(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusCreated, "Success create tag", tag).JSON(c.Response())
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

	logger.LogEf("tag handler: %v", err)
	return wrapper.NewHTTPResponse(http.StatusInternalServerError, "An error occurred").JSON(c.Response())
}
