package whop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/hugohenrick/whop-relay/pkg/logger"
)

// DefaultBaseURL é o endereço da API pública do Whop
const DefaultBaseURL = "https://api.whop.com"

// limite de bytes do corpo de erro levado para UpstreamError.Message
const maxErrorBody = 512

// Credentials reúne o que os clientes precisam para falar com a API.
// CompanyID e ProductURLBase só são usados pelo catálogo.
type Credentials struct {
	APIKey         string
	AppID          string
	CompanyID      string
	BaseURL        string
	ProductURLBase string
}

type contextKey string

const onBehalfOfKey contextKey = "whop_on_behalf_of"

// WithOnBehalfOf define o usuário em nome de quem as chamadas ao upstream são feitas
func WithOnBehalfOf(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, onBehalfOfKey, userID)
}

// OnBehalfOf obtém o usuário definido por WithOnBehalfOf
func OnBehalfOf(ctx context.Context) string {
	if userID, ok := ctx.Value(onBehalfOfKey).(string); ok {
		return userID
	}
	return ""
}

// Option configura os clientes do pacote
type Option func(*apiClient)

// WithHTTPClient substitui o *http.Client usado nas chamadas
func WithHTTPClient(client *http.Client) Option {
	return func(c *apiClient) {
		c.client = client
	}
}

// WithLogger define o logger dos clientes
func WithLogger(log logger.Logger) Option {
	return func(c *apiClient) {
		c.logger = log
	}
}

// apiClient concentra o transporte autenticado compartilhado pelos clientes de catálogo e mensagens
type apiClient struct {
	baseURL string
	apiKey  string
	appID   string
	client  *http.Client
	logger  logger.Logger
}

func newAPIClient(creds Credentials, opts ...Option) *apiClient {
	baseURL := creds.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  creds.APIKey,
		appID:   creds.AppID,
		client:  &http.Client{},
		logger:  logger.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do executa a requisição e devolve o corpo. Status fora de 2xx vira *UpstreamError.
func (c *apiClient) do(ctx context.Context, method, path string, query url.Values, payload interface{}) ([]byte, error) {
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

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.appID != "" {
		req.Header.Set("x-whop-app-id", c.appID)
	}
	if userID := OnBehalfOf(ctx); userID != "" {
		req.Header.Set("x-on-behalf-of", userID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Erro na chamada da API Whop", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("erro na comunicação com a API Whop: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta da API Whop: %w", err)
	}

	c.logger.Debug("Resposta da API Whop", "method", method, "path", path, "statusCode", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("API Whop retornou erro", "status", resp.Status, "path", path, "body", truncate(string(respBody)))
		message := strings.TrimSpace(truncate(string(respBody)))
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &UpstreamError{Status: resp.StatusCode, Message: message}
	}

	return respBody, nil
}

func truncate(s string) string {
	if len(s) <= maxErrorBody {
		return s
	}
	cut := maxErrorBody
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
