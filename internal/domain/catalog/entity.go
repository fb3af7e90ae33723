package catalog

import (
	"strings"
)

// Valores padrão aplicados na normalização
const (
	DefaultIcon           = "🟦"
	DefaultProductURLBase = "https://whop.com/product/"
	DefaultResourceTitle  = "Untitled"
	DefaultResourceType   = "resource"
)

// Item representa um produto do catálogo do marketplace
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	URL         string `json:"url"`
}

// RawItem é o formato do produto como vem do upstream, antes da normalização
type RawItem struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	URL         string `json:"url"`
}

// Results é o conjunto de itens de uma busca. Um conjunto vazio é um resultado válido, não um erro.
type Results []Item

// Empty informa se a busca não encontrou nenhum item
func (r Results) Empty() bool {
	return len(r) == 0
}

// Normalize aplica os valores padrão de ícone e URL. productURLBase vazio usa DefaultProductURLBase.
func Normalize(raw RawItem, productURLBase string) Item {
	if productURLBase == "" {
		productURLBase = DefaultProductURLBase
	}

	item := Item{
		ID:          string(raw.ID),
		Name:        raw.Name,
		Description: raw.Description,
		Icon:        raw.Icon,
		URL:         raw.URL,
	}
	if item.Icon == "" {
		item.Icon = DefaultIcon
	}
	if item.URL == "" {
		item.URL = productURLBase + string(raw.ID)
	}

	return item
}

// Matches verifica se o nome OU a descrição contém a consulta, sem diferenciar maiúsculas.
// Consulta vazia casa com qualquer item.
func (r RawItem) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Description), q)
}

// Filter retorna os itens que casam com a consulta, preservando a ordem
func Filter(raw []RawItem, query string) []RawItem {
	if query == "" {
		return raw
	}

	filtered := make([]RawItem, 0, len(raw))
	for _, item := range raw {
		if item.Matches(query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
