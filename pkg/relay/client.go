package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hugohenrick/whop-relay/internal/domain/chat"
	"github.com/hugohenrick/whop-relay/internal/domain/session"
	"github.com/hugohenrick/whop-relay/pkg/whop"
)

// Rotas expostas pelo relay
const (
	SendMessagePath          = "/api/send-message"
	ListMessagesPath         = "/api/list-messages"
	GetUserPath              = "/api/get-user"
	SendWebsocketMessagePath = "/api/send-websocket-message"
)

// envelopes aceitos na lista de mensagens, caso o upstream não devolva um array puro
var messageEnvelopes = []string{"posts", "messages", "data"}

// Client fala com o relay local. Cada operação é uma única ida e volta, sem retry nem fila.
type Client struct {
	baseURL string
	token   string
	selfID  string
	client  *http.Client
}

// NewClient cria um novo cliente para o relay em baseURL
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

// WithSelfID retorna uma cópia do cliente que reconhece as mensagens de userID como self
func (c *Client) WithSelfID(userID string) *Client {
	cp := *c
	cp.selfID = userID
	return &cp
}

// WithToken retorna uma cópia do cliente que envia o token de sessão em cada chamada
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// ListMessages retorna o histórico da conversa exatamente na ordem entregue pelo relay
func (c *Client) ListMessages(ctx context.Context, conversationID string) ([]chat.Message, error) {
	body, err := c.do(ctx, "list-messages", http.MethodGet, ListMessagesPath, url.Values{"chatExperienceId": {conversationID}}, nil)
	if err != nil {
		return nil, err
	}

	wire, err := whop.DecodeEnvelope[chat.WireMessage](body, messageEnvelopes...)
	if err != nil {
		return nil, &RelayError{Op: "list-messages", Status: http.StatusOK, Message: "resposta inválida", Err: err}
	}

	return chat.CollapseAll(wire, c.selfID), nil
}

// SendMessage envia uma mensagem persistida para a conversa
func (c *Client) SendMessage(ctx context.Context, text, conversationID string) error {
	_, err := c.do(ctx, "send-message", http.MethodPost, SendMessagePath, nil, messageRequest{
		Message:      text,
		ExperienceID: conversationID,
	})
	return err
}

// SendEphemeralNotification envia um sinal transitório que não aparece em ListMessages
func (c *Client) SendEphemeralNotification(ctx context.Context, text, conversationID string) error {
	_, err := c.do(ctx, "send-websocket-message", http.MethodPost, SendWebsocketMessagePath, nil, messageRequest{
		Message:      text,
		ExperienceID: conversationID,
	})
	return err
}

// GetCurrentUser retorna a identidade de quem está chamando
func (c *Client) GetCurrentUser(ctx context.Context) (*session.Session, error) {
	body, err := c.do(ctx, "get-user", http.MethodGet, GetUserPath, nil, nil)
	if err != nil {
		return nil, err
	}

	var wire session.WireUser
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, &RelayError{Op: "get-user", Status: http.StatusOK, Message: "resposta inválida", Err: err}
	}

	return session.FromWire(wire), nil
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, payload interface{}) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		reqJSON, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar requisição: %w", err)
		}
		body = bytes.NewReader(reqJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição HTTP: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &RelayError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RelayError{Op: op, Status: resp.StatusCode, Message: "erro ao ler resposta", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message, upstreamStatus := parseError(respBody)
		return nil, &RelayError{Op: op, Status: resp.StatusCode, UpstreamStatus: upstreamStatus, Message: message}
	}

	return respBody, nil
}

// parseError extrai mensagem e status do upstream do corpo de erro do relay, ou usa o corpo cru
func parseError(body []byte) (string, int) {
	var errResp errorBody
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		if errResp.Details != "" {
			return errResp.Message + ": " + errResp.Details, errResp.UpstreamStatus
		}
		return errResp.Message, errResp.UpstreamStatus
	}
	return strings.TrimSpace(string(body)), 0
}
