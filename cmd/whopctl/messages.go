package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMessagesCmd(opts *options) *cobra.Command {
	var asSelf bool

	messagesCmd := &cobra.Command{
		Use:   "messages",
		Short: "Lê e envia mensagens do chat de uma experiência",
	}

	listCmd := &cobra.Command{
		Use:   "list <experiência>",
		Short: "Lista o histórico do chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.relayClient()

			if asSelf {
				me, err := client.GetCurrentUser(cmd.Context())
				if err != nil {
					return err
				}
				client = client.WithSelfID(me.UserID)
			}

			messages, err := client.ListMessages(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(messages) == 0 {
				renderNotice(cmd.ErrOrStderr(), "Nenhuma mensagem nesta conversa.")
				return nil
			}

			renderMessages(cmd.OutOrStdout(), messages)
			return nil
		},
	}
	listCmd.Flags().BoolVar(&asSelf, "mine", true, "Identifica as mensagens do usuário atual")

	sendCmd := &cobra.Command{
		Use:   "send <experiência> <texto...>",
		Short: "Envia uma mensagem ao chat",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.relayClient().SendMessage(cmd.Context(), strings.Join(args[1:], " "), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Mensagem enviada.")
			return nil
		},
	}

	notifyCmd := &cobra.Command{
		Use:   "notify <experiência> <texto...>",
		Short: "Envia uma notificação efêmera, que não fica no histórico",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.relayClient().SendEphemeralNotification(cmd.Context(), strings.Join(args[1:], " "), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Notificação enviada.")
			return nil
		},
	}

	messagesCmd.AddCommand(listCmd, sendCmd, notifyCmd)
	return messagesCmd
}

func newWhoamiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Mostra o usuário atual e seu papel",
		RunE: func(cmd *cobra.Command, args []string) error {
			me, err := opts.relayClient().GetCurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			renderSession(cmd.OutOrStdout(), me)
			return nil
		},
	}
}
