package whop

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSuperseded é retornado quando uma busca mais recente substituiu a chamada em andamento
var ErrSuperseded = errors.New("busca substituída por uma mais recente")

// UpstreamError indica que a API do marketplace respondeu com status de falha
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("erro da API Whop: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("erro da API Whop: %d %s", e.Status, e.Message)
}

// IsUpstreamError informa se err é (ou envolve) um *UpstreamError e o retorna
func IsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
