package library

import (
	"fmt"
	"strings"
)

// DeletionCapabilityTier enumerates how the host media index permits removal
// of tracks. It is computed once at the boundary and passed into the deletion
// workflow, which never inspects platform details itself.
type DeletionCapabilityTier int

const (
	// BatchConsentRequired means every delete must go through an
	// up-front consent request before the backend will touch the file.
	BatchConsentRequired DeletionCapabilityTier = iota
	// PerItemConsentRecoverable means deletes are attempted directly and a
	// denial may carry a recoverable consent action worth one retry.
	PerItemConsentRecoverable
	// DirectDelete means deletes either succeed or fail terminally.
	DirectDelete
)

// String returns the configuration token for the tier.
func (d DeletionCapabilityTier) String() string {
	switch d {
	case BatchConsentRequired:
		return "batch"
	case PerItemConsentRecoverable:
		return "per-item"
	case DirectDelete:
		return "direct"
	}
	return "unknown"
}

// ParseDeletionTier maps a configuration token to a [DeletionCapabilityTier].
func ParseDeletionTier(s string) (DeletionCapabilityTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "batch":
		return BatchConsentRequired, nil
	case "per-item":
		return PerItemConsentRecoverable, nil
	case "direct":
		return DirectDelete, nil
	}
	return DirectDelete, fmt.Errorf("unknown deletion tier %q", s)
}
