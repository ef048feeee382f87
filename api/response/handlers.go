/*
Package response - uniform API responses.

HTTP status mapping lives here and only here; the application and
domain layers know nothing about transport. Internal errors are logged
in full but reach the client as a generic message.
*/
package response

import (
	"net/http"

	"shopapi/pkg/apperrors"
	"shopapi/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var httpStatusMap = map[apperrors.Code]int{
	apperrors.CodeInternal:        http.StatusInternalServerError,
	apperrors.CodeBadRequest:      http.StatusBadRequest,
	apperrors.CodeNotFound:        http.StatusNotFound,
	apperrors.CodeConflict:        http.StatusConflict,
	apperrors.CodeInvalidArgument: http.StatusBadRequest,

	apperrors.CodeMemberNotFound:    http.StatusNotFound,
	apperrors.CodeItemNotFound:      http.StatusNotFound,
	apperrors.CodeOrderNotFound:     http.StatusNotFound,
	apperrors.CodeDuplicateMember:   http.StatusConflict,
	apperrors.CodeInsufficientStock: http.StatusConflict,
}

func mapCodeToHTTPStatus(code apperrors.Code) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetRequestID returns the request id placed by the middleware, or "".
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

// HandleError handles framework-level errors such as failed parameter
// binding.
func HandleError(c *gin.Context, err error, message string, code int) {
	requestID := GetRequestID(c)

	logger.Error(message,
		zap.String("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", code),
		zap.Error(err))

	c.JSON(code, &Response{
		Success:   false,
		Error:     string(apperrors.CodeBadRequest),
		Message:   message,
		Code:      code,
		RequestID: requestID,
	})
}

// HandleAppError translates a domain or application error into a coded
// response with the mapped HTTP status.
func HandleAppError(c *gin.Context, err error) {
	requestID := GetRequestID(c)
	appErr := apperrors.FromDomainError(err)
	httpStatus := mapCodeToHTTPStatus(appErr.Code)

	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("error_code", string(appErr.Code)),
		zap.Int("http_status", httpStatus),
	}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}
	logger.Error(appErr.Message, fields...)

	userMessage := appErr.Message
	if appErr.Code == apperrors.CodeInternal {
		userMessage = "internal server error"
	}

	c.JSON(httpStatus, &Response{
		Success:   false,
		Error:     string(appErr.Code),
		Message:   userMessage,
		Code:      httpStatus,
		RequestID: requestID,
	})
}

// HandleSuccess writes a 200 envelope.
func HandleSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, &Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      http.StatusOK,
		RequestID: GetRequestID(c),
	})
}

// HandleCreated writes a 201 envelope.
func HandleCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, &Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      http.StatusCreated,
		RequestID: GetRequestID(c),
	})
}
