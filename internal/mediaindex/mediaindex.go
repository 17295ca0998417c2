package mediaindex

import (
	"context"
	"errors"
	"fmt"

	"github.com/emberfm/ember/internal/library"
)

// QueryRequest describes one query against the media index.
//
// MusicOnly maps to the index's "is music" selection predicate. SortByTitle
// requests title-ascending row order from the backend; callers still treat
// the order as advisory. Limit caps the number of returned rows, zero means
// no cap (the scanner applies its own admitted-row limit regardless).
type QueryRequest struct {
	MusicOnly   bool
	SortByTitle bool
	Limit       int
}

// Row is one raw record from the media index, before any catalog validation.
type Row struct {
	ID             int64
	Title          string
	Artist         string
	Album          string
	MIMEType       string
	Locator        string
	DurationMillis int64
	DateModified   int64
}

// Capabilities reports what the backend supports.
type Capabilities struct {
	Deletion library.DeletionCapabilityTier
}

// Service is the media index boundary consumed by the scanner and the
// deletion workflow.
type Service interface {
	// Name returns the backend name (e.g. "filesystem", "remote")
	Name() string

	// Capabilities reports backend support, including the deletion tier.
	Capabilities() Capabilities

	// Query returns raw rows matching the request. An unreachable index
	// yields an error wrapping shared.ErrScanUnavailable.
	Query(ctx context.Context, req QueryRequest) ([]Row, error)

	// Delete removes the item behind the locator. A denied delete returns a
	// *PermissionError; any other error is terminal.
	Delete(ctx context.Context, locator string) error

	// DeleteBatch removes all items behind the locators in one operation.
	// Used by the batch-consent deletion tier after consent is granted.
	DeleteBatch(ctx context.Context, locators []string) error
}

// ConsentAction is the recoverable consent flow bundled with a denied
// delete. The deletion workflow forwards it inside the consent handle; the
// presentation layer resolves it with the user.
type ConsentAction struct {
	Locators []string
	Reason   string
}

// PermissionError reports a delete denied by the backend's permission model.
//
// When Recoverable is true, Consent carries the action the consent UI must
// resolve before a single retry is allowed.
type PermissionError struct {
	Locator     string
	Recoverable bool
	Consent     *ConsentAction
	Err         error
}

func (e *PermissionError) Error() string {
	if e.Recoverable {
		return fmt.Sprintf("delete denied (recoverable) for %s: %v", e.Locator, e.Err)
	}
	return fmt.Sprintf("delete denied for %s: %v", e.Locator, e.Err)
}

func (e *PermissionError) Unwrap() error { return e.Err }

// AsPermissionError unwraps err to a *PermissionError if one is present.
func AsPermissionError(err error) (*PermissionError, bool) {
	var perr *PermissionError
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}
