package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *server) listPatchNotes(c *gin.Context) {
	notes, err := s.deps.Bulletins.PatchNotes(c.Request.Context())
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

type addPatchNoteRequest struct {
	Note string `json:"note"`
}

func (s *server) addPatchNote(c *gin.Context) {
	var req addPatchNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if _, err := s.deps.Bulletins.AddPatchNote(c.Request.Context(), req.Note); err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patch note added"})
}

func (s *server) listAnnouncements(c *gin.Context) {
	items, err := s.deps.Bulletins.Announcements(c.Request.Context())
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type addAnnouncementRequest struct {
	Announcement string `json:"announcement"`
}

func (s *server) addAnnouncement(c *gin.Context) {
	var req addAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if _, err := s.deps.Bulletins.AddAnnouncement(c.Request.Context(), req.Announcement); err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Announcement added"})
}
