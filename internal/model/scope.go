package model

const (
	RoleAdvisor = "Asesor"
	RoleManager = "Gerente"
	RoleAdmin   = "Admin"
)

// Scope is the authenticated caller, built from the JWT payload.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	JTI      string `json:"jti"`
}

// IsAdvisor checks if the scope carries the advisor role.
func (s Scope) IsAdvisor() bool {
	return s.Role == RoleAdvisor
}
