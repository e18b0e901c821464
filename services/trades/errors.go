package trades

import (
	"errors"
	"fmt"
	"strings"
)

// Expected "no result" conditions are returned as tagged errors, never
// panicked. Callers switch on these to render user-facing replies.
var (
	NoMatch  = errors.New("nothing matched the query")
	NotFound = errors.New("offer not found")
)

// AmbiguousMatch carries the near-tied candidates so the caller can ask
// the user to disambiguate.
type AmbiguousMatch struct {
	Candidates []Candidate
}

func (e *AmbiguousMatch) Error() string {
	names := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		names[i] = c.Name
	}
	return fmt.Sprintf("query is ambiguous between: %s", strings.Join(names, ", "))
}

// ValidationError rejects an otherwise well-matched command, e.g.
// accepting your own offer.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// StorageError wraps a ledger failure. Transient failures (timeouts,
// a locked database) have already been retried once by the time one of
// these surfaces; callers should tell the user to try again.
type StorageError struct {
	Transient bool
	Err       error
}

func (e *StorageError) Error() string {
	if e.Transient {
		return fmt.Sprintf("storage temporarily unavailable: %v", e.Err)
	}
	return fmt.Sprintf("storage failure: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
