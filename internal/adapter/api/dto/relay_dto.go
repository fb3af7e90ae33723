package dto

import "strings"

// SendMessageRequest representa o corpo de envio de mensagem ao chat ou via websocket.
// conversationId é aceito como sinônimo de experienceId.
type SendMessageRequest struct {
	Message        string `json:"message"`
	ExperienceID   string `json:"experienceId,omitempty"`
	ConversationID string `json:"conversationId,omitempty"`
}

// Experience retorna o ID da experiência, com precedência para experienceId
func (r SendMessageRequest) Experience() string {
	if id := strings.TrimSpace(r.ExperienceID); id != "" {
		return id
	}
	return strings.TrimSpace(r.ConversationID)
}

// ListMessagesQuery representa os parâmetros de consulta do histórico
type ListMessagesQuery struct {
	ChatExperienceID string `form:"chatExperienceId"`
	ConversationID   string `form:"conversationId"`
}

// Experience retorna o ID da experiência, com precedência para chatExperienceId
func (q ListMessagesQuery) Experience() string {
	if id := strings.TrimSpace(q.ChatExperienceID); id != "" {
		return id
	}
	return strings.TrimSpace(q.ConversationID)
}
