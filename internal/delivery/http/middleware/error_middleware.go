package middleware

import (
	"errors"
	"net/http"

	"valletta-hr-backend/internal/delivery/http/response"
	"valletta-hr-backend/pkg/apperror"
	"valletta-hr-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors attached to the context into the JSON
// envelope. Unclassified errors become 500; their message is echoed only
// outside production so internals never leak to real clients.
func ErrorHandler(production bool) gin.HandlerFunc {
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

		logger.Log.Error("Internal server error", "error", err, "path", c.Request.URL.Path)
		if production {
			response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера", err.Error())
	}
}
