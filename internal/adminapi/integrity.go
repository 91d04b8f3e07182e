package adminapi

import (
	"github.com/labstack/echo/v4"
)

func (s *Server) validateIntegrity(c echo.Context) error {
	return ok(c, s.app.Integrity().Validate())
}

// repairOrphans applies the best-effort reassignment heuristic. It is an
// explicit opt-in: a wrong match silently corrupts a persona-to-product
// association, so it never runs implicitly.
func (s *Server) repairOrphans(c echo.Context) error {
	s.app.Integrity().Repair()
	return ok(c, s.app.Integrity().Validate())
}
