package session

// User is the authenticated identity as served by the API. The zero
// value is the signed-out placeholder.
type User struct {
	UUID   string `json:"uuid"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Email  string `json:"email"`
	Admin  bool   `json:"admin"`
	Locked bool   `json:"locked"`
}

// Session pairs the current user with their API token. Sessions are
// replaced wholesale, never partially mutated.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
