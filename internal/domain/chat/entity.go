package chat

import (
	"time"
)

// Sender identifica o autor de uma mensagem do ponto de vista de quem lê
type Sender string

// Constantes para Sender
const (
	SenderSelf        Sender = "self"        // Mensagem enviada pelo próprio usuário
	SenderCounterpart Sender = "counterpart" // Mensagem de outro participante
	SenderSystem      Sender = "system"      // Mensagem gerada pela plataforma
)

// Message representa uma mensagem do histórico de uma conversa
type Message struct {
	ID         string    `json:"id"`
	Sender     Sender    `json:"sender"`
	SenderName string    `json:"senderName,omitempty"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

// WireUser é a identidade do autor como vem do upstream
type WireUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	IsBot    bool   `json:"isBot"`
}

// WireMessage é a mensagem como vem do upstream, repassada pelo relay sem alterações
type WireMessage struct {
	ID              string    `json:"id"`
	Content         string    `json:"content"`
	Text            string    `json:"text"`
	Message         string    `json:"message"`
	User            *WireUser `json:"user"`
	IsSystemMessage bool      `json:"isSystemMessage"`
	CreatedAt       Timestamp `json:"createdAt"`
}

// Collapse reduz o modelo de identidade do upstream a self, counterpart ou system.
// selfID vazio nunca casa, então toda mensagem de usuário vira counterpart.
func Collapse(w WireMessage, selfID string) Message {
	msg := Message{
		ID:        w.ID,
		Text:      firstNonEmpty(w.Content, w.Text, w.Message),
		Timestamp: w.CreatedAt.Time,
	}

	switch {
	case w.User == nil || w.IsSystemMessage || w.User.IsBot:
		msg.Sender = SenderSystem
	case selfID != "" && w.User.ID == selfID:
		msg.Sender = SenderSelf
	default:
		msg.Sender = SenderCounterpart
	}

	if w.User != nil {
		msg.SenderName = firstNonEmpty(w.User.Name, w.User.Username)
	}

	return msg
}

// CollapseAll converte a lista preservando exatamente a ordem recebida
func CollapseAll(wire []WireMessage, selfID string) []Message {
	messages := make([]Message, 0, len(wire))
	for _, w := range wire {
		messages = append(messages, Collapse(w, selfID))
	}
	return messages
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
