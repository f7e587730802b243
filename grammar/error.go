package grammar

import "fmt"

// InvalidFormError reports the first production found to violate a
// normal-form check, with enough context to locate it.
type InvalidFormError struct {
	Form   string
	Head   Symbol
	Body   Body
	Reason string
}

func (e InvalidFormError) Error() string {
	return fmt.Sprintf("not in %s: %s -> %s: %s", e.Form, e.Head, e.Body, e.Reason)
}

func newFormError(form string, head Symbol, body Body, reason string) error {
	return InvalidFormError{Form: form, Head: head, Body: body, Reason: reason}
}
