package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Media index errors
	ErrScanUnavailable  = fmt.Errorf("media index unavailable")
	ErrUnresolvedFormat = fmt.Errorf("file format could not be resolved")

	// Library errors
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")
	ErrTrackNotFound    = fmt.Errorf("track not found")
	ErrCatalogNotLoaded = fmt.Errorf("catalog not loaded")

	// Deletion errors
	ErrDeletionDenied   = fmt.Errorf("deletion denied")
	ErrDeletionConflict = fmt.Errorf("deletion already pending for track")
	ErrConsentNotFound  = fmt.Errorf("consent handle not found")
	ErrConsentDismissed = fmt.Errorf("consent flow dismissed")
	ErrUnsupportedTier  = fmt.Errorf("unsupported deletion capability tier")

	// Input validation errors
	ErrInvalidInput       = fmt.Errorf("invalid input")
	ErrMissingArgument    = fmt.Errorf("missing required argument")
	ErrInvalidArgument    = fmt.Errorf("invalid argument")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
)
