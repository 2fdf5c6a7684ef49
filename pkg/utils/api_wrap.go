package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinels to HTTP responses. Input errors
// keep their message; AI failures collapse to a generic retryable message
// with the detail logged server side only.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCityNotFound),
		errors.Is(err, ErrInvalidCoordinate),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInterestsRequired),
		errors.Is(err, ErrUnsupportedMode):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrPremiumLimitReached):
		RespondError(c, http.StatusTooManyRequests,
			"Premium model limit reached for this session. Please use the standard model.")
	case errors.Is(err, ErrUnexpectedBehaviorOfAI), errors.Is(err, ErrMalformedAIResponse):
		log.Printf("AI generation error: %v", err)
		RespondError(c, http.StatusInternalServerError,
			"Failed to generate itinerary. Please try again.")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
