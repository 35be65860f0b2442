package profile

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/profile-v1.json
var Schema string

var schemaLoader = gojsonschema.NewStringLoader(Schema)

// ValidationError lists every schema violation found in a profile payload.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("profile invalid: %s", strings.Join(e.Problems, "; "))
}

func ValidateProfileJSON(b []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(b))
	if err != nil {
		return &ValidationError{Problems: []string{err.Error()}}
	}
	if !result.Valid() {
		return &ValidationError{Problems: collect(result.Errors())}
	}
	return nil
}

func collect(errs []gojsonschema.ResultError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.String())
	}
	return out
}
