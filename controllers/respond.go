package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/utils"
)

// respondError maps the failure taxonomy onto HTTP statuses. Every provider
// failure surfaces as a short human-readable message.
func respondError(c *gin.Context, err error) {
	var (
		cfgErr  *utils.ConfigurationError
		authErr *utils.AuthorizationError
		svcErr  *utils.RemoteServiceError
		nfErr   *utils.NotFoundError
		preErr  *utils.PreconditionError
	)

	switch {
	case errors.As(err, &cfgErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": cfgErr.Error()})
	case errors.As(err, &authErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": authErr.Error()})
	case errors.As(err, &svcErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": svcErr.Error()})
	case errors.As(err, &nfErr):
		c.JSON(http.StatusNotFound, gin.H{"error": nfErr.Error()})
	case errors.As(err, &preErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": preErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
