package handler

import (
	"log/slog"
	"net/http"

	"backstage/internal/delivery/http/response"
	"backstage/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MailHandler holds dependencies for mail dispatch handlers.
type MailHandler struct {
	mailer service.Mailer
	logger *slog.Logger
}

// NewMailHandler is the constructor for MailHandler, injected by Fx.
func NewMailHandler(mailer service.Mailer, logger *slog.Logger) *MailHandler {
	return &MailHandler{mailer: mailer, logger: logger}
}

type sendTestMailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=255"`
	Body    string `json:"body" validate:"required"`
}

// SendTest dispatches a test message through the configured relay.
func (h *MailHandler) SendTest(c echo.Context) error {
	var input sendTestMailRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mail input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.mailer.SendMail(c.Request().Context(), input.To, input.Subject, input.Body); err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Test mail sent", slog.String("to", input.To))

	return response.Success(c, http.StatusOK, nil, "Mail sent successfully")
}
