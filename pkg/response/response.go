package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Unified error codes.
const (
	SUCCESS        = 200
	ERROR          = 500
	INVALID_PARAMS = 20001
	NOT_FOUND      = 20003
	INTERNAL_ERROR = 20006
)

var codeMsg = map[int]string{
	SUCCESS:        "OK",
	ERROR:          "internal server error",
	INVALID_PARAMS: "invalid request parameters",
	NOT_FOUND:      "resource not found",
	INTERNAL_ERROR: "internal service error",
}

// Response is the envelope every endpoint answers with.
type Response struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	OriginUrl string      `json:"originUrl"`
}

func GetMsg(code int) string {
	if msg, ok := codeMsg[code]; ok {
		return msg
	}
	return codeMsg[ERROR]
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:      SUCCESS,
		Message:   GetMsg(SUCCESS),
		Data:      data,
		OriginUrl: c.Request.URL.Path,
	})
}

func Error(c *gin.Context, code int, errMsg string) {
	c.JSON(http.StatusOK, Response{
		Code:      code,
		Message:   GetMsg(code),
		Error:     errMsg,
		OriginUrl: c.Request.URL.Path,
	})
}

// Abort ends the request inside middleware.
func Abort(c *gin.Context, code int, errMsg string) {
	c.AbortWithStatusJSON(http.StatusOK, Response{
		Code:      code,
		Message:   GetMsg(code),
		Error:     errMsg,
		OriginUrl: c.Request.URL.Path,
	})
}
