package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hugohenrick/whop-relay/internal/config"
	"github.com/hugohenrick/whop-relay/internal/domain/session"
	"github.com/hugohenrick/whop-relay/pkg/auth"
)

func newTokenCmd() *cobra.Command {
	var (
		userID string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite um token de sessão assinado com RELAY_JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return errors.New("--user é obrigatório")
			}

			jwtService, err := auth.NewJWTService(config.LoadClient().JWTSecret, ttl)
			if err != nil {
				return err
			}

			token, err := jwtService.GenerateToken(userID, session.ParseRole(role))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "ID do usuário")
	cmd.Flags().StringVar(&role, "role", string(session.RoleMember), "Papel: owner, admin, member ou guest")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Validade do token")
	return cmd
}
