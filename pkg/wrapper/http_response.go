package wrapper

import (
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/communitycal/events-api/pkg/helper"
	"github.com/communitycal/events-api/pkg/shared"
)

// HTTPResponse default api response format
type HTTPResponse struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Meta    interface{} `json:"meta,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// NewHTTPResponse create new instance of HTTPResponse model
// Variadic params can be data, meta, or multi error
func NewHTTPResponse(code int, message string, params ...interface{}) *HTTPResponse {
	commonResponse := new(HTTPResponse)

	for _, param := range params {
		refValue := reflect.ValueOf(param)
		if refValue.Kind() == reflect.Ptr {
			refValue = refValue.Elem()
			param = refValue.Interface()
		}

		switch val := param.(type) {
		case shared.Meta:
			commonResponse.Meta = val
		case helper.MultiError:
			commonResponse.Errors = val.ToMap()
		default:
			commonResponse.Data = param
		}
	}

	if code < http.StatusBadRequest {
		commonResponse.Success = true
	}
	commonResponse.Code = code
	commonResponse.Message = message
	return commonResponse
}

// JSON write response to http writer
func (resp *HTTPResponse) JSON(w http.ResponseWriter) error {
	w.Header().Set(helper.HeaderContentType, helper.MIMEApplicationJSON)
	w.WriteHeader(resp.Code)
	return json.NewEncoder(w).Encode(resp)
}
