package whop

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hugohenrick/whop-relay/internal/domain/catalog"
)

const (
	productsPath        = "/v2/products"
	communitySearchPath = "/v2/community/search"
)

// Envelopes aceitos, em ordem de precedência
var (
	productEnvelopes   = []string{"products", "data"}
	communityEnvelopes = []string{"resources", "data"}
)

// Searcher é o contrato de busca no catálogo
type Searcher interface {
	Search(ctx context.Context, query string) (catalog.Results, error)
}

// CatalogClient busca produtos no catálogo do marketplace, sempre no escopo da empresa configurada
type CatalogClient struct {
	api            *apiClient
	companyID      string
	productURLBase string
}

// NewCatalogClient cria um novo cliente de catálogo no escopo de creds.CompanyID
func NewCatalogClient(creds Credentials, opts ...Option) *CatalogClient {
	return &CatalogClient{
		api:            newAPIClient(creds, opts...),
		companyID:      creds.CompanyID,
		productURLBase: creds.ProductURLBase,
	}
}

// Search busca os produtos da empresa. Com query não vazia, filtra por nome OU descrição
// sem diferenciar maiúsculas, pois o upstream não garante a semântica de busca.
// Status de falha retorna *UpstreamError; nenhum fallback é aplicado aqui.
func (c *CatalogClient) Search(ctx context.Context, query string) (catalog.Results, error) {
	body, err := c.api.do(ctx, http.MethodGet, productsPath, url.Values{"company_id": {c.companyID}}, nil)
	if err != nil {
		return nil, err
	}

	raw, err := DecodeEnvelope[catalog.RawItem](body, productEnvelopes...)
	if err != nil {
		return nil, err
	}

	raw = catalog.Filter(raw, query)

	results := make(catalog.Results, 0, len(raw))
	for _, item := range raw {
		results = append(results, catalog.Normalize(item, c.productURLBase))
	}

	c.api.logger.Debug("Busca no catálogo concluída", "query", query, "items", len(results))
	return results, nil
}

// SearchCommunity busca conteúdos da comunidade da empresa
func (c *CatalogClient) SearchCommunity(ctx context.Context, query string) ([]catalog.CommunityResource, error) {
	params := url.Values{
		"company_id": {c.companyID},
		"q":          {query},
	}

	body, err := c.api.do(ctx, http.MethodGet, communitySearchPath, params, nil)
	if err != nil {
		return nil, err
	}

	raw, err := DecodeEnvelope[catalog.RawCommunityResource](body, communityEnvelopes...)
	if err != nil {
		return nil, err
	}

	resources := make([]catalog.CommunityResource, 0, len(raw))
	for _, item := range raw {
		resources = append(resources, catalog.NormalizeResource(item))
	}
	return resources, nil
}
