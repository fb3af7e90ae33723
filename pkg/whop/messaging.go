package whop

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
)

const (
	messagesPath          = "/v5/messages"
	currentUserPath       = "/v5/me"
	websocketMessagesPath = "/v5/websockets/messages"
)

// Target identifica o destino de uma mensagem websocket
type Target struct {
	Experience string `json:"experience,omitempty"`
	User       string `json:"user,omitempty"`
}

type sendMessageRequest struct {
	ExperienceID string `json:"experienceId"`
	Message      string `json:"message"`
}

type websocketMessageRequest struct {
	Message string `json:"message"`
	Target  Target `json:"target"`
}

// MessagingClient é o cliente autenticado da API de mensagens do Whop.
// Guarda a credencial do aplicativo; nenhuma outra parte do processo a vê.
type MessagingClient struct {
	api *apiClient
}

// NewMessagingClient cria um novo cliente de mensagens
func NewMessagingClient(creds Credentials, opts ...Option) *MessagingClient {
	return &MessagingClient{api: newAPIClient(creds, opts...)}
}

// SendMessageToChat envia uma mensagem persistida para o chat da experiência
func (m *MessagingClient) SendMessageToChat(ctx context.Context, experienceID, message string) error {
	_, err := m.api.do(ctx, http.MethodPost, messagesPath, nil, sendMessageRequest{
		ExperienceID: experienceID,
		Message:      message,
	})
	return err
}

// ListMessagesFromChat retorna o histórico do chat no formato do upstream, sem alterações
func (m *MessagingClient) ListMessagesFromChat(ctx context.Context, chatExperienceID string) (json.RawMessage, error) {
	body, err := m.api.do(ctx, http.MethodGet, messagesPath, url.Values{"chatExperienceId": {chatExperienceID}}, nil)
	if err != nil {
		return nil, err
	}
	return rawOr(body, "[]")
}

// GetCurrentUser retorna o usuário atual no formato do upstream
func (m *MessagingClient) GetCurrentUser(ctx context.Context) (json.RawMessage, error) {
	body, err := m.api.do(ctx, http.MethodGet, currentUserPath, nil, nil)
	if err != nil {
		return nil, err
	}
	return rawOr(body, "{}")
}

// SendWebsocketMessage envia uma notificação efêmera aos espectadores do alvo; ela não entra no histórico
func (m *MessagingClient) SendWebsocketMessage(ctx context.Context, message string, target Target) error {
	_, err := m.api.do(ctx, http.MethodPost, websocketMessagesPath, nil, websocketMessageRequest{
		Message: message,
		Target:  target,
	})
	return err
}

// rawOr devolve o corpo como JSON bruto; corpo vazio vira fallback
func rawOr(body []byte, fallback string) (json.RawMessage, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return json.RawMessage(fallback), nil
	}
	if !json.Valid(body) {
		return nil, errors.New("resposta da API Whop não é JSON válido")
	}
	return json.RawMessage(body), nil
}
