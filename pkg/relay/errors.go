package relay

import (
	"errors"
	"fmt"
)

// RelayError indica que o relay respondeu com falha ou não pôde ser alcançado.
// Status é zero quando não houve resposta HTTP. UpstreamStatus é o status que a
// API do marketplace devolveu ao relay, quando ele o informa.
type RelayError struct {
	Op             string
	Status         int
	UpstreamStatus int
	Message        string
	Err            error
}

func (e *RelayError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("relay indisponível em %s: %v", e.Op, e.Err)
	}
	if e.Message == "" {
		return fmt.Sprintf("relay retornou %d em %s", e.Status, e.Op)
	}
	return fmt.Sprintf("relay retornou %d em %s: %s", e.Status, e.Op, e.Message)
}

func (e *RelayError) Unwrap() error {
	return e.Err
}

// Unreachable informa se o relay não respondeu
func (e *RelayError) Unreachable() bool {
	return e.Status == 0
}

// UpstreamRejected informa se a falha veio da API do marketplace, e não do próprio relay
func (e *RelayError) UpstreamRejected() bool {
	return e.UpstreamStatus != 0
}

// AsRelayError informa se err é (ou envolve) um *RelayError e o retorna
func AsRelayError(err error) (*RelayError, bool) {
	var relayErr *RelayError
	if errors.As(err, &relayErr) {
		return relayErr, true
	}
	return nil, false
}
