package session

import "strings"

// Role representa o papel do usuário na experiência
type Role string

// Constantes para Role
const (
	RoleOwner  Role = "owner"  // Dono da empresa
	RoleAdmin  Role = "admin"  // Administrador
	RoleMember Role = "member" // Membro com acesso
	RoleGuest  Role = "guest"  // Visitante sem acesso
)

// Session é a identidade efêmera do chamador, obtida uma vez no início da sessão
type Session struct {
	UserID   string `json:"userId"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
	Role     Role   `json:"role"`
}

// Privileged informa se o papel permite ações restritas
func (s *Session) Privileged() bool {
	return s.Role == RoleOwner || s.Role == RoleAdmin
}

// WireUser é o usuário atual como vem do upstream
type WireUser struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	AccessLevel string `json:"accessLevel"`
	Role        string `json:"role"`
}

// ParseRole reduz os níveis de acesso do upstream aos quatro papéis conhecidos
func ParseRole(level string) Role {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "owner":
		return RoleOwner
	case "admin":
		return RoleAdmin
	case "customer", "member":
		return RoleMember
	default:
		return RoleGuest
	}
}

// FromWire converte o usuário do upstream. accessLevel tem precedência sobre role.
func FromWire(w WireUser) *Session {
	level := w.AccessLevel
	if level == "" {
		level = w.Role
	}
	return &Session{
		UserID:   w.ID,
		Username: w.Username,
		Name:     w.Name,
		Role:     ParseRole(level),
	}
}
