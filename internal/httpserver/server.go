// Package httpserver exposes the portal's HTTP/JSON surface: account signup
// and login, per-category application submission and review, and the public
// bulletin boards.
package httpserver

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"clanPortal/internal/auth"
	"clanPortal/internal/config"
	"clanPortal/internal/store"
	"clanPortal/repository"
)

// Deps bundles everything the handlers need.
type Deps struct {
	Users        repository.UserRepositoryI
	Applications repository.ApplicationRepositoryI
	Bulletins    repository.BulletinRepositoryI
	Sessions     *auth.SessionManager
	Config       *config.Config
}

type server struct {
	deps Deps
}

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	if origins := d.Config.HTTP.CORSOrigins; len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
		}))
	}
	r.Use(auth.Middleware(d.Sessions, d.Config.Session.Secret))

	s := &server{deps: d}

	r.POST("/check-username", s.checkUsername)
	r.POST("/signup", s.signup)
	r.POST("/login", s.login)

	r.GET("/patchnotes", s.listPatchNotes)
	r.GET("/announcements", s.listAnnouncements)

	poster := auth.RequireRole(auth.BulletinPosterRoles...)
	r.POST("/patchnotes", poster, s.addPatchNote)
	r.POST("/announcements", poster, s.addAnnouncement)

	logged := r.Group("/", auth.RequireLogin())
	logged.POST("/logout", s.logout)
	logged.POST("/applications/:type", s.submitApplication)
	logged.GET("/applications/:type", s.listApplications)

	return r
}

// Start listens on the configured address and returns a shutdown function.
func Start(d Deps) (func(context.Context) error, error) {
	addr := d.Config.HTTP.Address
	if addr == "" {
		addr = ":3000"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{Addr: addr, Handler: NewRouter(d)}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http serve: %v", err)
		}
	}()
	return srv.Shutdown, nil
}

// storeError maps storage failures to a 500, logging the detail server-side
// instead of leaking file paths to clients. A corrupt collection is reported,
// never silently treated as empty.
func (s *server) storeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrCorrupt) {
		log.Printf("corrupt collection: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Stored data is corrupt"})
		return
	}
	log.Printf("store error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
