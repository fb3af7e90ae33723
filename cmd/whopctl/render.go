package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/hugohenrick/whop-relay/internal/domain/catalog"
	"github.com/hugohenrick/whop-relay/internal/domain/chat"
	"github.com/hugohenrick/whop-relay/internal/domain/session"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	selfStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	otherStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	systemStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
)

func renderItems(w io.Writer, items catalog.Results) {
	for _, item := range items {
		fmt.Fprintf(w, "%s %s\n", item.Icon, titleStyle.Render(item.Name))
		if item.Description != "" {
			fmt.Fprintf(w, "   %s\n", item.Description)
		}
		fmt.Fprintf(w, "   %s\n", mutedStyle.Render(item.URL))
	}
}

func renderResources(w io.Writer, resources []catalog.CommunityResource) {
	for _, res := range resources {
		fmt.Fprintf(w, "%s %s\n", titleStyle.Render(res.Title), mutedStyle.Render("["+res.Type+"]"))
		if res.Description != "" {
			fmt.Fprintf(w, "   %s\n", res.Description)
		}
		if res.URL != "" {
			fmt.Fprintf(w, "   %s\n", mutedStyle.Render(res.URL))
		}
	}
}

func renderMessages(w io.Writer, messages []chat.Message) {
	for _, msg := range messages {
		stamp := ""
		if !msg.Timestamp.IsZero() {
			stamp = mutedStyle.Render(msg.Timestamp.Local().Format("02/01 15:04")) + " "
		}

		switch msg.Sender {
		case chat.SenderSystem:
			fmt.Fprintf(w, "%s%s\n", stamp, systemStyle.Render(msg.Text))
		case chat.SenderSelf:
			fmt.Fprintf(w, "%s%s %s\n", stamp, selfStyle.Render(senderLabel(msg, "você")+":"), msg.Text)
		default:
			fmt.Fprintf(w, "%s%s %s\n", stamp, otherStyle.Render(senderLabel(msg, "?")+":"), msg.Text)
		}
	}
}

func renderSession(w io.Writer, s *session.Session) {
	name := s.Name
	if name == "" {
		name = s.Username
	}
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render(name), mutedStyle.Render("("+s.UserID+")"))
	fmt.Fprintf(w, "papel: %s\n", s.Role)
	if s.Privileged() {
		fmt.Fprintln(w, noticeStyle.Render("acesso administrativo"))
	}
}

func renderNotice(w io.Writer, message string) {
	fmt.Fprintln(w, noticeStyle.Render(message))
}

func senderLabel(msg chat.Message, fallback string) string {
	if msg.SenderName != "" {
		return msg.SenderName
	}
	return fallback
}
