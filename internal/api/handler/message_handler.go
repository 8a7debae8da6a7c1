package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadillo/storefront/internal/api/metrics"
	"github.com/mercadillo/storefront/internal/core/ports"
)

type MessageHandler struct {
	messageService ports.MessageService
}

func NewMessageHandler(messageService ports.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

type sendMessageRequest struct {
	To   string `json:"to"   form:"to"   validate:"required"`
	Body string `json:"body" form:"body" validate:"required"`
}

// Send records a support-chat message from the caller.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      sendMessageRequest  true  "Recipient and body"
// @Success      201   {object}  domain.Message
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.messageService.Send(c.Request().Context(), id.Username, req.To, req.Body)
	if err != nil {
		return err
	}

	metrics.MessagesSentTotal.Inc()
	return c.JSON(http.StatusCreated, message)
}

// Mine returns the caller's conversation, oldest first.
//
// @Summary      Own message history
// @Tags         messages
// @Produce      json
// @Success      200  {array}   domain.Message
// @Failure      401  {object}  map[string]string
// @Router       /api/messages/mine [get]
func (h *MessageHandler) Mine(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	messages, err := h.messageService.History(c.Request().Context(), id.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// Conversation returns the conversation of the user named in ?with=. Admin only.
//
// @Summary      A user's conversation
// @Tags         messages
// @Produce      json
// @Param        with  query     string  true  "Username"
// @Success      200   {array}   domain.Message
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/messages [get]
func (h *MessageHandler) Conversation(c echo.Context) error {
	username := c.QueryParam("with")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing query parameter: with")
	}

	messages, err := h.messageService.History(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// Partners lists the non-admin users with an open support conversation. Admin only.
//
// @Summary      Conversation partners
// @Tags         messages
// @Produce      json
// @Success      200  {array}   string
// @Failure      403  {object}  map[string]string
// @Router       /api/messages/partners [get]
func (h *MessageHandler) Partners(c echo.Context) error {
	partners, err := h.messageService.Partners(c.Request().Context())
	if err != nil {
		return err
	}
	if partners == nil {
		partners = []string{}
	}
	return c.JSON(http.StatusOK, partners)
}
