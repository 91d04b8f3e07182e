package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adforgehq/adforge/internal/domain"
)

func (s *Server) listAvatars(c echo.Context) error {
	return ok(c, s.app.Binder().Avatars())
}

func (s *Server) createAvatar(c echo.Context) error {
	var candidate domain.Avatar
	if err := c.Bind(&candidate); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse avatar", err.Error())
	}
	candidate.Name = strings.TrimSpace(candidate.Name)
	if candidate.Name == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name is required", nil)
	}
	created := s.app.AvatarRepo().Create(candidate)
	return ok(c, map[string]interface{}{"created": created})
}

func (s *Server) updateAvatar(c echo.Context) error {
	var entity domain.Avatar
	if err := c.Bind(&entity); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse avatar", err.Error())
	}
	entity.ID = c.Param("id")
	if entity.ID == "" {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid avatar ID", nil)
	}
	s.app.AvatarRepo().Update(entity)
	return ok(c, map[string]interface{}{"id": entity.ID})
}

func (s *Server) deleteAvatar(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid avatar ID", nil)
	}
	s.app.AvatarRepo().Delete(id)
	return ok(c, map[string]interface{}{"id": id})
}
