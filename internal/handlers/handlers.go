package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oceanline/cruise-admin-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// respondError maps service and repository errors to HTTP responses. Missing
// rows become 404s, AppErrors keep their status, anything else is a 500 with
// the detail kept server-side.
func respondError(c *gin.Context, err error, resource string) {
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"message": resource + " not found"})
		return
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Request failed")
		}
		c.JSON(appErr.Status, gin.H{"message": appErr.Message})
		return
	}

	logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
}
