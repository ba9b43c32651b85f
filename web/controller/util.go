package controller

import (
	"net/http"

	"bioanalytica/logger"
	"bioanalytica/web/entity"
	"bioanalytica/web/locale"

	"github.com/gin-gonic/gin"
)

// jsonError sends the uniform failure envelope with a localized message.
func jsonError(c *gin.Context, statusCode int, key string) {
	c.JSON(statusCode, entity.Error{Error: locale.I18n(c, key)})
}

// jsonInternalError logs the underlying failure server-side and sends a
// generic localized message, never the raw error.
func jsonInternalError(c *gin.Context, key string, err error) {
	logger.Errorf("%s: %v", key, err)
	jsonError(c, http.StatusInternalServerError, key)
}
