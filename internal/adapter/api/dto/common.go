package dto

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Code           int    `json:"code"`
	Message        string `json:"message"`
	Details        string `json:"details,omitempty"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewUpstreamErrorResponse cria uma resposta de erro que preserva o status devolvido pelo upstream
func NewUpstreamErrorResponse(code int, message, details string, upstreamStatus int) ErrorResponse {
	resp := NewErrorResponse(code, message, details)
	resp.UpstreamStatus = upstreamStatus
	return resp
}
