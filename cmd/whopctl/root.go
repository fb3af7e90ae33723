package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hugohenrick/whop-relay/internal/config"
	"github.com/hugohenrick/whop-relay/pkg/logger"
	"github.com/hugohenrick/whop-relay/pkg/relay"
	"github.com/hugohenrick/whop-relay/pkg/whop"
)

// options guarda as flags globais e a configuração carregada no PersistentPreRun
type options struct {
	relayURL string
	token    string
	verbose  bool

	log logger.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{log: logger.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "whopctl",
		Short: "Busca apps no marketplace Whop e conversa pelo relay",
		Long: `Cliente de terminal para o catálogo do Whop e para o relay de chat.

As credenciais da API são lidas do ambiente (ou de um arquivo .env):
  WHOP_API_KEY, WHOP_COMPANY_ID   busca no catálogo
  RELAY_URL                       endereço do relay (padrão http://localhost:8080)

Exemplos:
  whopctl search assistente
  whopctl messages list exp_123
  whopctl messages send exp_123 "olá"`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				opts.log = logger.NewLogger("debug")
			}
			opts.loadEnv()
			if opts.relayURL == "" {
				opts.relayURL = config.LoadClient().RelayURL
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.relayURL, "relay", "", "Endereço do relay (padrão: RELAY_URL)")
	rootCmd.PersistentFlags().StringVar(&opts.token, "token", "", "Token de sessão do relay")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Habilita logs detalhados")

	rootCmd.AddCommand(
		newSearchCmd(opts),
		newCommunityCmd(opts),
		newMessagesCmd(opts),
		newWhoamiCmd(opts),
		newTokenCmd(),
	)

	return rootCmd
}

// loadEnv carrega o .env; a ausência do arquivo é normal no terminal e só aparece com --verbose
func (o *options) loadEnv(files ...string) {
	if err := config.LoadDotEnv(files...); err != nil {
		o.log.Debug("Arquivo .env não encontrado", "error", err)
	}
}

func (o *options) catalogClient() (*whop.CatalogClient, error) {
	cfg, err := config.LoadCatalog()
	if err != nil {
		return nil, err
	}
	return whop.NewCatalogClient(cfg.WhopCredentials(), whop.WithLogger(o.log)), nil
}

func (o *options) relayClient() *relay.Client {
	client := relay.NewClient(o.relayURL, nil)
	if o.token != "" {
		client = client.WithToken(o.token)
	}
	return client
}
