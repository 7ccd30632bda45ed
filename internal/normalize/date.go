package normalize

import (
	"fmt"

	"github.com/itlightning/dateparse"

	"eventbook/internal/domain"
)

// Date parses free-form date text and returns the canonical YYYY-MM-DD form.
// ISO-8601 date-times collapse to their UTC date component; plain YYYY-MM-DD
// passes through unchanged. Ambiguous locale formats such as MM/DD/YYYY are
// accepted on a best-effort basis with no guarantee of interpretation.
// Unparseable input fails with domain.ErrInvalidFormat.
func Date(input string) (string, error) {
	t, err := dateparse.ParseAny(input)
	if err != nil {
		return "", fmt.Errorf("%w: date %q", domain.ErrInvalidFormat, input)
	}
	return t.UTC().Format("2006-01-02"), nil
}
