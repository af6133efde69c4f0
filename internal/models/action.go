package models

// ActionOutcome is the result of one form action. Exactly one shape is
// populated: Redirect on success, Errors plus Message on validation failure,
// Message alone when the store rejected the statement.
type ActionOutcome struct {
	Redirect string              `json:"-"`
	Message  string              `json:"message,omitempty"`
	Errors   map[string][]string `json:"errors,omitempty"`
}

func RedirectTo(path string) ActionOutcome {
	return ActionOutcome{Redirect: path}
}

func (o ActionOutcome) OK() bool {
	return o.Redirect != ""
}
