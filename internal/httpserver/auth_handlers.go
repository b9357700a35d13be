package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clanPortal/internal/auth"
	"clanPortal/models"
	"clanPortal/repository"
)

type checkUsernameRequest struct {
	Username string `json:"username"`
}

func (s *server) checkUsername(c *gin.Context) {
	var req checkUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	exists, err := s.deps.Users.UsernameExists(c.Request.Context(), req.Username)
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

type signupRequest struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

func (s *server) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	_, err := s.deps.Users.Create(c.Request.Context(), req.Username, req.Password, req.Role)
	switch {
	case errors.Is(err, repository.ErrMissingField):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
	case errors.Is(err, repository.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already taken"})
	case errors.Is(err, repository.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
	case err != nil:
		s.storeError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Account created successfully"})
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	user, err := s.deps.Users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, repository.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		s.storeError(c, err)
		return
	}

	// The session snapshots username and role as of this login.
	sid := s.deps.Sessions.Create(auth.Principal{Username: user.Username, Role: user.Role})
	token, err := auth.EncodeSessionToken(sid, s.deps.Config.Session.Secret)
	if err != nil {
		s.deps.Sessions.Destroy(sid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	maxAge := 0
	if ttl := s.deps.Config.Session.TTL; ttl > 0 {
		maxAge = int(ttl.Seconds())
	}
	c.SetCookie(auth.CookieName, token, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "role": user.Role})
}

func (s *server) logout(c *gin.Context) {
	if sid, ok := auth.SessionIDFrom(c); ok {
		s.deps.Sessions.Destroy(sid)
	}
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
