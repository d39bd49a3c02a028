package model

// State is the transient result of an invoice form submission. It lives
// for one render cycle and is rebuilt from scratch on every attempt.
type State struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// UserState is the transient result of a create-user submission. Unlike
// invoice mutations it can carry a success string, because the caller
// stays on the form instead of being redirected.
type UserState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
	Success string              `json:"success,omitempty"`
}

// Outcome is what an invoice mutation hands back to the transport layer:
// either a navigation target or a state to render, never both.
type Outcome struct {
	RedirectTo string
	State      *State
}

// Redirected reports whether the caller should navigate instead of render.
func (o Outcome) Redirected() bool {
	return o.RedirectTo != ""
}
