package deletion

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/emberfm/ember/internal/library"
	"github.com/emberfm/ember/internal/mediaindex"
	"github.com/emberfm/ember/internal/shared"
)

// OutcomeKind enumerates the terminal and pending results of a deletion
// request.
type OutcomeKind int

const (
	OutcomeDeleted OutcomeKind = iota
	OutcomePendingConsent
	OutcomeFailed
)

// Outcome is the result of a deletion request or resume.
//
// Consent is set only for [OutcomePendingConsent]; Reason only for
// [OutcomeFailed].
type Outcome struct {
	Kind    OutcomeKind
	Consent *ConsentHandle
	Reason  error
}

// ConsentHandle identifies one parked deletion awaiting user consent.
//
// The handle is opaque to the engine: the presentation layer shows Reason
// to the user and resolves the handle through [Workflow.Resume] or
// [Workflow.Cancel].
type ConsentHandle struct {
	ID       string
	TrackID  int64
	Title    string
	Locators []string
	Reason   string
}

// pendingDeletion is one awaiting-consent entry.
type pendingDeletion struct {
	handle ConsentHandle
	tier   library.DeletionCapabilityTier
}

// Workflow drives tier-dependent track removal against the media index.
//
// At most one deletion may be pending per track identifier; a second
// request for the same identifier while the first awaits consent fails
// fast instead of queueing. The pending registry is mutex-guarded because
// consent resolution arrives asynchronously from the presentation layer.
type Workflow struct {
	index  mediaindex.Service
	logger *log.Logger

	mu       sync.Mutex
	byTrack  map[int64]*pendingDeletion
	byHandle map[string]*pendingDeletion
}

// NewWorkflow creates a Workflow deleting through the given media index.
func NewWorkflow(index mediaindex.Service, logger *log.Logger) *Workflow {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Workflow{
		index:    index,
		logger:   logger,
		byTrack:  make(map[int64]*pendingDeletion),
		byHandle: make(map[string]*pendingDeletion),
	}
}

// Request starts a deletion for the track under the given capability tier.
//
// Tier behavior:
//   - BatchConsentRequired: no backend call yet; a consent handle for the
//     track's locator is returned and the delete runs on grant.
//   - PerItemConsentRecoverable: the delete is attempted directly; a
//     recoverable denial parks the request behind the consent action
//     bundled in the denial, any other failure is terminal.
//   - DirectDelete: the delete is attempted once; failures are terminal
//     and logged.
func (w *Workflow) Request(ctx context.Context, track library.Track, tier library.DeletionCapabilityTier) Outcome {
	w.mu.Lock()
	if _, exists := w.byTrack[track.ID]; exists {
		w.mu.Unlock()
		return failed(fmt.Errorf("%w: track %d", shared.ErrDeletionConflict, track.ID))
	}
	w.mu.Unlock()

	switch tier {
	case library.BatchConsentRequired:
		handle := w.park(track, tier, []string{track.Locator}, "batch delete request requires consent")
		return Outcome{Kind: OutcomePendingConsent, Consent: handle}

	case library.PerItemConsentRecoverable:
		err := w.index.Delete(ctx, track.Locator)
		if err == nil {
			w.logger.Info("track deleted", "track", track.ID, "tier", tier)
			return Outcome{Kind: OutcomeDeleted}
		}

		if perr, ok := mediaindex.AsPermissionError(err); ok && perr.Recoverable && perr.Consent != nil {
			handle := w.park(track, tier, perr.Consent.Locators, perr.Consent.Reason)
			return Outcome{Kind: OutcomePendingConsent, Consent: handle}
		}

		w.logger.Warn("delete denied", "track", track.ID, "err", err)
		return failed(fmt.Errorf("%w: %v", shared.ErrDeletionDenied, err))

	case library.DirectDelete:
		if err := w.index.Delete(ctx, track.Locator); err != nil {
			w.logger.Warn("delete failed", "track", track.ID, "err", err)
			return failed(err)
		}
		w.logger.Info("track deleted", "track", track.ID, "tier", tier)
		return Outcome{Kind: OutcomeDeleted}
	}

	return failed(fmt.Errorf("%w: %v", shared.ErrUnsupportedTier, tier))
}

// Resume completes a parked deletion with the user's consent decision.
//
// A grant replays the delete once; a second denial from the backend is
// terminal. A deny fails the deletion without touching the backend.
func (w *Workflow) Resume(ctx context.Context, handleID string, granted bool) Outcome {
	pending, ok := w.take(handleID)
	if !ok {
		return failed(fmt.Errorf("%w: %s", shared.ErrConsentNotFound, handleID))
	}

	if !granted {
		w.logger.Info("consent denied", "track", pending.handle.TrackID)
		return failed(fmt.Errorf("%w: consent denied", shared.ErrDeletionDenied))
	}

	var err error
	switch pending.tier {
	case library.BatchConsentRequired:
		err = w.index.DeleteBatch(ctx, pending.handle.Locators)
	default:
		err = w.index.Delete(ctx, pending.handle.Locators[0])
	}
	if err != nil {
		w.logger.Warn("delete failed after consent", "track", pending.handle.TrackID, "err", err)
		return failed(fmt.Errorf("%w: %v", shared.ErrDeletionDenied, err))
	}

	w.logger.Info("track deleted", "track", pending.handle.TrackID, "tier", pending.tier)
	return Outcome{Kind: OutcomeDeleted}
}

// Cancel fails a parked deletion whose consent flow was dismissed without a
// decision, so it cannot hang in the awaiting-consent state.
func (w *Workflow) Cancel(handleID string) Outcome {
	pending, ok := w.take(handleID)
	if !ok {
		return failed(fmt.Errorf("%w: %s", shared.ErrConsentNotFound, handleID))
	}

	w.logger.Info("consent dismissed", "track", pending.handle.TrackID)
	return failed(fmt.Errorf("%w: track %d", shared.ErrConsentDismissed, pending.handle.TrackID))
}

// Pending reports whether a deletion is awaiting consent for the track.
func (w *Workflow) Pending(trackID int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.byTrack[trackID]
	return ok
}

// park registers an awaiting-consent entry and returns its handle.
func (w *Workflow) park(track library.Track, tier library.DeletionCapabilityTier, locators []string, reason string) *ConsentHandle {
	pending := &pendingDeletion{
		handle: ConsentHandle{
			ID:       shared.GenerateID(),
			TrackID:  track.ID,
			Title:    track.Title,
			Locators: locators,
			Reason:   reason,
		},
		tier: tier,
	}

	w.mu.Lock()
	w.byTrack[track.ID] = pending
	w.byHandle[pending.handle.ID] = pending
	w.mu.Unlock()

	w.logger.Info("deletion awaiting consent", "track", track.ID, "handle", pending.handle.ID)
	return &pending.handle
}

// take removes and returns the pending entry for a handle.
func (w *Workflow) take(handleID string) (*pendingDeletion, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	pending, ok := w.byHandle[handleID]
	if !ok {
		return nil, false
	}
	delete(w.byHandle, handleID)
	delete(w.byTrack, pending.handle.TrackID)
	return pending, true
}

func failed(reason error) Outcome {
	return Outcome{Kind: OutcomeFailed, Reason: reason}
}
