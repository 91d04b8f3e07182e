package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adforgehq/adforge/internal/domain"
)

// listProducts serves the binder's cached snapshot, not a fresh datastore
// read: the snapshot is already invalidated synchronously with every write.
func (s *Server) listProducts(c echo.Context) error {
	return ok(c, s.app.Binder().Products())
}

func (s *Server) createProduct(c echo.Context) error {
	var candidate domain.Product
	if err := c.Bind(&candidate); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	candidate.Name = strings.TrimSpace(candidate.Name)
	if candidate.Name == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name is required", nil)
	}
	created := s.app.ProductRepo().Create(candidate)
	// created=false is not a failure: the page layer toasts "already exists"
	// and proceeds with the existing record
	return ok(c, map[string]interface{}{"created": created})
}

func (s *Server) updateProduct(c echo.Context) error {
	var entity domain.Product
	if err := c.Bind(&entity); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	entity.ID = c.Param("id")
	if entity.ID == "" {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	s.app.ProductRepo().Update(entity)
	return ok(c, map[string]interface{}{"id": entity.ID})
}

func (s *Server) deleteProduct(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	s.app.ProductRepo().Delete(id)
	return ok(c, map[string]interface{}{"id": id})
}
