package entities

// User is the authenticated staff identity.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	TenantID string `json:"tenantId"`
}

// Session is the authenticated-identity state gating access to the
// console. A zero Session means "not logged in".
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// IsAuthenticated requires both a hydrated user and a token, mirroring
// the console's user+token pair.
func (s Session) IsAuthenticated() bool {
	return s.User.ID != "" && s.Token != ""
}
