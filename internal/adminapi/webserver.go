package adminapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/adforgehq/adforge/internal/app"
)

// Server is the HTTP surface exposing the cache operations to the page layer
// and admin tooling.
type Server struct {
	echo *echo.Echo
	app  app.AppContext
}

func NewServer(appCtx app.AppContext) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{echo: e, app: appCtx}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.echo.Group("/api")

	api.GET("/products", s.listProducts)
	api.POST("/products", s.createProduct)
	api.PUT("/products/:id", s.updateProduct)
	api.DELETE("/products/:id", s.deleteProduct)

	api.GET("/avatars", s.listAvatars)
	api.POST("/avatars", s.createAvatar)
	api.PUT("/avatars/:id", s.updateAvatar)
	api.DELETE("/avatars/:id", s.deleteAvatar)

	api.GET("/integrity", s.validateIntegrity)
	api.POST("/integrity/repair", s.repairOrphans)

	api.POST("/generate", s.generate)
}

// Start blocks serving HTTP until the listener fails or is shut down.
func (s *Server) Start() error {
	cfg := s.app.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.S().Infof("admin api listening on %s", addr)
	return s.echo.Start(addr)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code": 0,
		"data": data,
	})
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"code":    code,
		"message": message,
		"detail":  detail,
	})
}
