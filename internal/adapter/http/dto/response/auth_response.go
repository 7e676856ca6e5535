package response

import "oneflow/internal/domain/entities"

type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	TenantID string `json:"tenantId"`
}

// SessionResponse is the login payload: the token the client stores and
// the user snapshot it displays.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		Token: s.Token,
		User: UserResponse{
			ID:       s.User.ID,
			Name:     s.User.Name,
			Email:    s.User.Email,
			TenantID: s.User.TenantID,
		},
	}
}
