package failure

import "strings"

// Backend and driver messages the web clients surface verbatim get replaced
// with the Spanish copy the product ships with.
var translations = []struct {
	contains string
	message  string
}{
	{contains: "value has to be unique", message: "ya está registrado"},
	{contains: "duplicate key value violates unique constraint", message: "ya está registrado"},
	{contains: "invalid email or password", message: "correo o contraseña incorrectos"},
	{contains: "violates foreign key constraint", message: "el registro relacionado no existe"},
}

// Translate maps known backend error substrings to their user-facing Spanish
// messages, preserving the HTTP code. Unknown messages pass through untouched.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	for _, tr := range translations {
		if strings.Contains(msg, tr.contains) {
			return &Failure{
				Code:    GetCode(err),
				Message: tr.message,
			}
		}
	}

	return err
}
