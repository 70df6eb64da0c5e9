package wire

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrBadRequest marks a body that decoded but failed a request rule
// (unknown typeFrom, malformed conversion data).
var ErrBadRequest = errors.New("wire: bad request")

func asValidation(err error, target *validator.ValidationErrors) bool {
	return errors.As(err, target)
}

// firstFailure returns the namespace of the first failed field, or "".
func firstFailure(err error) string {
	var verrs validator.ValidationErrors
	if !asValidation(err, &verrs) || len(verrs) == 0 {
		return ""
	}

	return verrs[0].Namespace()
}

// Describe renders validation failures as "field: rule" pairs; any other
// error is returned as its message.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !asValidation(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
	}

	return strings.Join(parts, "; ")
}
