package handlers

import "github.com/mymmrac/telego"

// Gate admits updates from the single configured administrator.
type Gate struct {
	admin string
}

// NewGate creates a gate for the given username.
func NewGate(admin string) Gate {
	return Gate{admin: admin}
}

// IsAuthorized reports whether update carries a message whose sender
// username equals the administrator's exactly.
func (g Gate) IsAuthorized(update telego.Update) bool {
	if g.admin == "" || update.Message == nil || update.Message.From == nil {
		return false
	}
	return update.Message.From.Username == g.admin
}
