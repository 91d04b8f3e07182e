package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adforgehq/adforge/internal/webhook"
)

type generateRequest struct {
	Action     string `json:"action"`
	Prompt     string `json:"prompt"`
	ProductURL string `json:"productUrl"`
}

func (r generateRequest) toWebhookRequest() webhook.Request {
	action := r.Action
	if action == "" {
		action = "generate"
	}
	return webhook.Request{
		Action:     action,
		Prompt:     r.Prompt,
		ProductURL: r.ProductURL,
	}
}

// generate drives the external workflow and merges the returned
// product/avatar payloads into the datastore.
func (s *Server) generate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	result, err := s.app.Generator().GenerateAndMerge(c.Request().Context(), req.toWebhookRequest())
	if err != nil {
		return fail(c, http.StatusBadGateway, "WEBHOOK_ERROR", "Generation workflow failed", err.Error())
	}
	return ok(c, result)
}
