package querystring

import (
	"fmt"
	"github.com/go-andiamo/urit"
)

// ApplyTemplate fills the urit path template (e.g. "/pets/{id}") with the positional path values
// and appends this query string (if not empty)
//
// Path values are rendered the same way as values passed to Set
func (q *QueryString) ApplyTemplate(template string, pathValues ...any) (string, error) {
	t, err := urit.NewTemplate(template)
	if err != nil {
		return "", fmt.Errorf("querystring: path template %q: %w", template, err)
	}
	path, err := t.PathFrom(pathParams(pathValues))
	if err != nil {
		return "", fmt.Errorf("querystring: path template %q: %w", template, err)
	}
	if qs := q.String(); qs != "" {
		return path + "?" + qs, nil
	}
	return path, nil
}
