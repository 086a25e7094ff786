package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fenrirlabsnl/airesume/internal/delivery/http/response"
	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/pkg/apperror"
	"github.com/fenrirlabsnl/airesume/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Domain-level rejections are client errors, not failures
		switch {
		case errors.Is(err, domain.ErrEmptyMessage),
			errors.Is(err, domain.ErrEmptySessionID),
			errors.Is(err, domain.ErrEmptyJobDescription):
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}

		// Never expose internal error details to clients. Log the
		// actual error server-side and send a generic message.
		logger.Log.Error("unhandled request error", "error", err, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
