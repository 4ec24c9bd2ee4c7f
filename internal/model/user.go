package model

// User is a CRM user. Advisors own clients and prospects and receive the
// alert digest at Email.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// IsAdvisor reports whether the user holds the advisor role.
func (u User) IsAdvisor() bool {
	return u.Role == RoleAdvisor
}

// DisplayName falls back to the email when no name is recorded.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
