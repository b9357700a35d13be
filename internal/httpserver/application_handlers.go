package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clanPortal/internal/auth"
	"clanPortal/models"
)

type submitApplicationRequest struct {
	Content any `json:"content"`
}

func (s *server) submitApplication(c *gin.Context) {
	category, ok := models.ParseCategory(c.Param("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application type"})
		return
	}
	var req submitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	// RequireLogin already ran; the identity comes from the session, never
	// from the request body.
	p, _ := auth.PrincipalFrom(c)
	if _, err := s.deps.Applications.Submit(c.Request.Context(), category, p.Username, req.Content); err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application submitted"})
}

func (s *server) listApplications(c *gin.Context) {
	category, ok := models.ParseCategory(c.Param("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application type"})
		return
	}
	p, _ := auth.PrincipalFrom(c)
	if !auth.CanListCategory(p.Role, category) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
		return
	}
	apps, err := s.deps.Applications.List(c.Request.Context(), category)
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}
