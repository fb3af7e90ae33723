package chat

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Timestamp aceita segundos ou milissegundos Unix, como número ou string, e datas RFC 3339.
// Qualquer outro valor vira tempo zero: o horário só serve para exibição e não pode
// derrubar a decodificação da mensagem.
type Timestamp struct {
	time.Time
}

// milissegundos a partir deste valor; segundos abaixo dele
const millisThreshold = 1e11

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil || s == "" {
			return nil
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			t.Time = fromUnix(n)
			return nil
		}
		if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
			t.Time = parsed
		}
		return nil
	}

	n, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(n) || math.Abs(n) >= math.MaxInt64 {
		return nil
	}
	t.Time = fromUnix(int64(n))
	return nil
}

func fromUnix(n int64) time.Time {
	if n >= millisThreshold {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}
