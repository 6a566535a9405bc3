package prefs

// Tokens adapts a Store into the API client's token source. Only the token
// itself is cleared on rejection; the rest of the cached session is handled
// by ClearSession.
type Tokens struct {
	Store Store
}

// Token returns the cached bearer token, or "" when logged out.
func (t Tokens) Token() (string, error) {
	return t.Store.Get(KeyToken)
}

// ClearToken removes the cached bearer token.
func (t Tokens) ClearToken() error {
	return t.Store.Remove(KeyToken)
}
