package morse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupported is matched by every *TranslationError.
var ErrUnsupported = errors.New("unsupported unit")

// TranslationError reports the units that could not be translated.
// Partial holds the output with a Placeholder in place of each of them.
type TranslationError struct {
	Op          string
	Unsupported []string
	Partial     string
}

func (e *TranslationError) Error() string {
	quoted := make([]string, len(e.Unsupported))
	for i, u := range e.Unsupported {
		quoted[i] = strconv.Quote(u)
	}
	noun := "units"
	if len(e.Unsupported) == 1 {
		noun = "unit"
	}
	return fmt.Sprintf("morse: %s: %d unsupported %s: %s", e.Op, len(e.Unsupported), noun, strings.Join(quoted, ", "))
}

func (e *TranslationError) Unwrap() error {
	return ErrUnsupported
}

// result returns out, or out together with a *TranslationError when
// anything was left untranslated.
func result(op, out string, unsupported []string) (string, error) {
	if len(unsupported) == 0 {
		return out, nil
	}
	return out, &TranslationError{
		Op:          op,
		Unsupported: unsupported,
		Partial:     out,
	}
}
