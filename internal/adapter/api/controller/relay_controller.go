package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/whop-relay/internal/adapter/api/dto"
	"github.com/hugohenrick/whop-relay/pkg/logger"
	"github.com/hugohenrick/whop-relay/pkg/whop"
)

// Messenger é a API de mensagens do upstream consumida pelo relay
type Messenger interface {
	SendMessageToChat(ctx context.Context, experienceID, message string) error
	ListMessagesFromChat(ctx context.Context, chatExperienceID string) (json.RawMessage, error)
	GetCurrentUser(ctx context.Context) (json.RawMessage, error)
	SendWebsocketMessage(ctx context.Context, message string, target whop.Target) error
}

// RelayController repassa as requisições do navegador à API de mensagens, uma chamada por requisição
type RelayController struct {
	messenger Messenger
	logger    logger.Logger
}

// NewRelayController cria uma nova instância de RelayController
func NewRelayController(messenger Messenger, logger logger.Logger) *RelayController {
	return &RelayController{
		messenger: messenger,
		logger:    logger,
	}
}

// SendMessage envia uma mensagem ao chat da experiência
// @Summary Envia uma mensagem ao chat
// @Description Repassa a mensagem para a API de mensagens do Whop
// @Tags relay
// @Accept json
// @Param message body dto.SendMessageRequest true "Mensagem e experiência"
// @Success 200
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /send-message [post]
func (c *RelayController) SendMessage(ctx *gin.Context) {
	req, ok := c.bindMessage(ctx)
	if !ok {
		return
	}

	if err := c.messenger.SendMessageToChat(ctx.Request.Context(), req.Experience(), req.Message); err != nil {
		c.upstreamFailure(ctx, "Erro ao enviar mensagem", err)
		return
	}

	ctx.Status(http.StatusOK)
}

// ListMessages retorna o histórico do chat
// @Summary Lista as mensagens do chat
// @Description Retorna o histórico no formato do upstream, sem alterações
// @Tags relay
// @Produce json
// @Param chatExperienceId query string true "ID da experiência de chat"
// @Success 200 {array} object
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /list-messages [get]
func (c *RelayController) ListMessages(ctx *gin.Context) {
	var query dto.ListMessagesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	experienceID := query.Experience()
	if experienceID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", "O parâmetro 'chatExperienceId' é obrigatório"))
		return
	}

	messages, err := c.messenger.ListMessagesFromChat(ctx.Request.Context(), experienceID)
	if err != nil {
		c.upstreamFailure(ctx, "Erro ao listar mensagens", err)
		return
	}

	ctx.Data(http.StatusOK, "application/json; charset=utf-8", messages)
}

// GetUser retorna o usuário atual
// @Summary Retorna o usuário atual
// @Description Retorna o usuário no formato do upstream, sem alterações
// @Tags relay
// @Produce json
// @Success 200 {object} object
// @Failure 502 {object} dto.ErrorResponse
// @Router /get-user [get]
func (c *RelayController) GetUser(ctx *gin.Context) {
	user, err := c.messenger.GetCurrentUser(ctx.Request.Context())
	if err != nil {
		c.upstreamFailure(ctx, "Erro ao buscar usuário", err)
		return
	}

	ctx.Data(http.StatusOK, "application/json; charset=utf-8", user)
}

// SendWebsocketMessage envia uma notificação efêmera aos espectadores da experiência
// @Summary Envia uma notificação efêmera
// @Description A notificação não é persistida no histórico do chat
// @Tags relay
// @Accept json
// @Param message body dto.SendMessageRequest true "Mensagem e experiência"
// @Success 200
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /send-websocket-message [post]
func (c *RelayController) SendWebsocketMessage(ctx *gin.Context) {
	req, ok := c.bindMessage(ctx)
	if !ok {
		return
	}

	target := whop.Target{Experience: req.Experience()}
	if err := c.messenger.SendWebsocketMessage(ctx.Request.Context(), req.Message, target); err != nil {
		c.upstreamFailure(ctx, "Erro ao enviar notificação", err)
		return
	}

	ctx.Status(http.StatusOK)
}

func (c *RelayController) bindMessage(ctx *gin.Context) (dto.SendMessageRequest, bool) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return req, false
	}

	if strings.TrimSpace(req.Message) == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", "O campo 'message' é obrigatório"))
		return req, false
	}
	if req.Experience() == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", "O campo 'experienceId' é obrigatório"))
		return req, false
	}

	return req, true
}

// upstreamFailure responde 502 a qualquer falha do upstream, preservando o status original quando existe
func (c *RelayController) upstreamFailure(ctx *gin.Context, message string, err error) {
	c.logger.Error(message, "path", ctx.FullPath(), "error", err)

	if upErr, ok := whop.IsUpstreamError(err); ok {
		ctx.JSON(http.StatusBadGateway, dto.NewUpstreamErrorResponse(http.StatusBadGateway, message, upErr.Message, upErr.Status))
		return
	}

	ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, message, err.Error()))
}
