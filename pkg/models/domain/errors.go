package domain

import (
	"errors"
	"fmt"
)

// NotFoundError reports that an id did not resolve to an existing entity.
// It is a deterministic business error and is never retried.
type NotFoundError struct {
	Kind string // "project", "sprint", ...
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
