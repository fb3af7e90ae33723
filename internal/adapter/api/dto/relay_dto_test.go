package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendMessageRequestExperience(t *testing.T) {
	assert.Equal(t, "exp1", SendMessageRequest{ExperienceID: "exp1", ConversationID: "conv"}.Experience())
	assert.Equal(t, "conv", SendMessageRequest{ConversationID: " conv "}.Experience())
	assert.Equal(t, "", SendMessageRequest{ExperienceID: "  "}.Experience())
}

func TestListMessagesQueryExperience(t *testing.T) {
	assert.Equal(t, "exp1", ListMessagesQuery{ChatExperienceID: "exp1", ConversationID: "conv"}.Experience())
	assert.Equal(t, "conv", ListMessagesQuery{ConversationID: "conv"}.Experience())
}

func TestNewUpstreamErrorResponse(t *testing.T) {
	resp := NewUpstreamErrorResponse(502, "falha", "detalhe", 403)
	assert.Equal(t, ErrorResponse{Code: 502, Message: "falha", Details: "detalhe", UpstreamStatus: 403}, resp)
}
