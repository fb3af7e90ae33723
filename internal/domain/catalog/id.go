package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID é o identificador de um item no upstream. Aceita string ou número, pois o
// formato varia entre versões da API.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id inválido %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}
