package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/hugohenrick/whop-relay/internal/domain/catalog"
)

func newSearchCmd(opts *options) *cobra.Command {
	var fallback bool

	cmd := &cobra.Command{
		Use:   "search [consulta]",
		Short: "Busca apps no catálogo da empresa",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			client, err := opts.catalogClient()
			if err != nil {
				if !fallback {
					return err
				}
				opts.log.Warn("Catálogo indisponível, usando dados locais", "error", err)
				renderNotice(cmd.ErrOrStderr(), "Não foi possível carregar os apps: "+err.Error())
				renderItems(cmd.OutOrStdout(), fallbackResults(query))
				return nil
			}

			results, err := client.Search(cmd.Context(), query)
			if err != nil {
				if !fallback {
					return err
				}
				opts.log.Warn("Busca falhou, usando dados locais", "error", err)
				renderNotice(cmd.ErrOrStderr(), "Falha ao buscar apps: "+err.Error())
				renderItems(cmd.OutOrStdout(), fallbackResults(query))
				return nil
			}

			if results.Empty() {
				renderNotice(cmd.ErrOrStderr(), "Nenhum app encontrado para a busca. Tente outras palavras.")
				return nil
			}

			renderItems(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fallback, "fallback", false, "Mostra apps locais se o catálogo falhar")
	return cmd
}

func newCommunityCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "community [consulta]",
		Short: "Busca conteúdos da comunidade",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.catalogClient()
			if err != nil {
				return err
			}

			resources, err := client.SearchCommunity(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if len(resources) == 0 {
				renderNotice(cmd.ErrOrStderr(), "Nenhum conteúdo encontrado.")
				return nil
			}

			renderResources(cmd.OutOrStdout(), resources)
			return nil
		},
	}
}

// fallbackApps é o catálogo local exibido quando a API não responde
var fallbackApps = catalog.Results{
	{ID: "1", Name: "Whop AI Assistant", Description: "Automate your Whop tasks and get instant answers.", Icon: "🤖", URL: "https://whop.com/ai-assistant"},
	{ID: "2", Name: "Community Insights", Description: "Analyze and visualize your Whop community engagement.", Icon: "📊", URL: "https://whop.com/community-insights"},
	{ID: "3", Name: "Event Scheduler", Description: "Plan, schedule, and manage events with ease.", Icon: "📅", URL: "https://whop.com/event-scheduler"},
	{ID: "4", Name: "Content Booster", Description: "AI-powered content suggestions for your Whop store.", Icon: "🚀", URL: "https://whop.com/content-booster"},
	{ID: "5", Name: "Support Genie", Description: "24/7 AI support for your Whop users.", Icon: "🧞‍♂️", URL: "https://whop.com/support-genie"},
}

// fallbackResults filtra o catálogo local; sem nenhum casamento, mostra tudo
func fallbackResults(query string) catalog.Results {
	q := strings.ToLower(query)
	filtered := catalog.Results{}
	for _, app := range fallbackApps {
		if strings.Contains(strings.ToLower(app.Name), q) || strings.Contains(strings.ToLower(app.Description), q) {
			filtered = append(filtered, app)
		}
	}
	if filtered.Empty() {
		return fallbackApps
	}
	return filtered
}
