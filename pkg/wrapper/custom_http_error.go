package wrapper

import (
	"net/http"

	"github.com/labstack/echo"
)

// CustomHTTPErrorHandler custom echo http error handler
func CustomHTTPErrorHandler(err error, c echo.Context) {
	var message string
	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = he.Message.(string)
		if he.Internal != nil {
			message = he.Internal.Error()
		}
	}

	if code == http.StatusNotFound {
		message = "Resource not found"
	}
	NewHTTPResponse(code, message).JSON(c.Response())
}
