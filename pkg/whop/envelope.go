package whop

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeEnvelope extrai a coleção de itens da resposta do upstream.
// Um array no topo é usado diretamente. Num objeto, as chaves são tentadas
// em ordem e a primeira que contém um array vence; sem nenhuma, o resultado é vazio.
func DecodeEnvelope[T any](body []byte, keys ...string) ([]T, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return []T{}, nil
	}

	if isArray(body) {
		return decodeArray[T](body)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("resposta do upstream em formato inesperado: %w", err)
	}

	for _, key := range keys {
		raw, ok := envelope[key]
		if !ok || !isArray(raw) {
			continue
		}
		return decodeArray[T](raw)
	}

	return []T{}, nil
}

func decodeArray[T any](raw []byte) ([]T, error) {
	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("erro ao decodificar itens do upstream: %w", err)
	}
	return items, nil
}

func isArray(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}
