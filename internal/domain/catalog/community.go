package catalog

// CommunityResource representa um conteúdo da comunidade retornado pela busca
type CommunityResource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Type        string `json:"type"`
}

// RawCommunityResource é o formato do recurso como vem do upstream
type RawCommunityResource struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Type        string `json:"type"`
}

// NormalizeResource aplica as cadeias de fallback de título, descrição e tipo
func NormalizeResource(raw RawCommunityResource) CommunityResource {
	res := CommunityResource{
		ID:          string(raw.ID),
		Title:       firstNonEmpty(raw.Title, raw.Name, DefaultResourceTitle),
		Description: firstNonEmpty(raw.Description, raw.Content),
		URL:         raw.URL,
		Type:        firstNonEmpty(raw.Type, DefaultResourceType),
	}
	return res
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
