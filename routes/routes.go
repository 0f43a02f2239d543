package routes

import (
	"fmt"
	"io/fs"
	"net/http"

	"vibe-eats/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, staticFS fs.FS) error {
	// ── Auth ───────────────────────────────────────────────────────
	r.POST("/login", h.Login)
	r.POST("/signup", h.Signup)

	// ── User management ────────────────────────────────────────────
	// No auth middleware on purpose: the admin panel gates access in
	// the browser only, and the API mirrors that.
	r.GET("/users", h.ListUsers)
	r.PUT("/users/:id", h.UpdateUser)
	r.DELETE("/users/:id", h.DeleteUser)

	// ── Public ─────────────────────────────────────────────────────
	r.GET("/health", h.Health)
	r.GET("/menu", h.GetMenu)

	// ── Static frontend ────────────────────────────────────────────
	// index.html is served as raw bytes; http.FileServer would answer
	// GET /index.html with a 301 to ./ instead.
	indexHTML, err := fs.ReadFile(staticFS, "index.html")
	if err != nil {
		return fmt.Errorf("read index.html: %w", err)
	}
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	})

	fileServer := http.FileServer(http.FS(staticFS))
	r.NoRoute(func(c *gin.Context) {
		fileServer.ServeHTTP(c.Writer, c.Request)
	})

	return nil
}
