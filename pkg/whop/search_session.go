package whop

import (
	"context"
	"sync"

	"github.com/hugohenrick/whop-relay/internal/domain/catalog"
)

// SearchSession serializa buscas de uma mesma tela. Cada nova busca cancela a anterior,
// e um resultado que chega depois de ter sido substituído é descartado com ErrSuperseded.
type SearchSession struct {
	searcher Searcher

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// NewSearchSession cria uma sessão de busca sobre o Searcher informado
func NewSearchSession(searcher Searcher) *SearchSession {
	return &SearchSession{searcher: searcher}
}

// Search inicia uma nova busca, cancelando a que estiver em andamento
func (s *SearchSession) Search(ctx context.Context, query string) (catalog.Results, error) {
	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	gen := s.generation
	s.cancel = cancel
	s.mu.Unlock()

	results, err := s.searcher.Search(callCtx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return nil, ErrSuperseded
	}
	s.cancel = nil

	if err != nil {
		return nil, err
	}
	return results, nil
}

// Generation retorna o número da busca mais recente
func (s *SearchSession) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Close cancela a busca em andamento, se houver
func (s *SearchSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.generation++
}
