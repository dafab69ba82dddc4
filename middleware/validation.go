package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"parkpulse-analytics/pkg/response"
)

// TranslateBindingError flattens validator errors into one readable
// message for the error envelope.
func TranslateBindingError(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]string, len(ve))
		for i, fe := range ve {
			if fe.Param() != "" {
				out[i] = fe.Field() + " failed " + fe.Tag() + "=" + fe.Param()
			} else {
				out[i] = fe.Field() + " failed " + fe.Tag()
			}
		}
		return strings.Join(out, ", ")
	}
	if err.Error() == "EOF" {
		return "request body is empty or malformed"
	}
	return err.Error()
}

// BindQuery binds query parameters and writes the unified error reply
// on failure. Returns false when the request was rejected.
func BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		response.Abort(c, response.INVALID_PARAMS, TranslateBindingError(err))
		return false
	}
	return true
}
