package deletion

import (
	"context"
	"errors"
	"testing"

	"github.com/emberfm/ember/internal/library"
	"github.com/emberfm/ember/internal/mediaindex"
	"github.com/emberfm/ember/internal/shared"
	tu "github.com/emberfm/ember/internal/testing"
)

func testTrack() library.Track {
	return library.Track{ID: 7, Title: "Echoes", Locator: "/music/echoes.mp3"}
}

func recoverableDenial(locator string) error {
	return &mediaindex.PermissionError{
		Locator:     locator,
		Recoverable: true,
		Consent: &mediaindex.ConsentAction{
			Locators: []string{locator},
			Reason:   "removal needs per-item approval",
		},
		Err: errors.New("permission denied"),
	}
}

func TestWorkflowDirectDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes without consent", func(t *testing.T) {
		index := &tu.FakeIndex{}
		w := NewWorkflow(index, nil)

		got := w.Request(ctx, testTrack(), library.DirectDelete)
		if got.Kind != OutcomeDeleted {
			t.Fatalf("expected OutcomeDeleted, got %v (%v)", got.Kind, got.Reason)
		}
		if len(index.Deleted) != 1 || index.Deleted[0] != "/music/echoes.mp3" {
			t.Errorf("unexpected delete calls: %v", index.Deleted)
		}
	})

	t.Run("backend failure is terminal", func(t *testing.T) {
		index := &tu.FakeIndex{DeleteResults: []error{errors.New("read-only filesystem")}}
		w := NewWorkflow(index, nil)

		got := w.Request(ctx, testTrack(), library.DirectDelete)
		if got.Kind != OutcomeFailed {
			t.Fatalf("expected OutcomeFailed, got %v", got.Kind)
		}
		if w.Pending(testTrack().ID) {
			t.Error("a failed direct delete must not leave a pending entry")
		}
	})
}

func TestWorkflowRecoverableConsent(t *testing.T) {
	ctx := context.Background()
	track := testTrack()

	t.Run("denial parks behind a handle, grant retries once", func(t *testing.T) {
		index := &tu.FakeIndex{DeleteResults: []error{recoverableDenial(track.Locator)}}
		w := NewWorkflow(index, nil)

		got := w.Request(ctx, track, library.PerItemConsentRecoverable)
		if got.Kind != OutcomePendingConsent {
			t.Fatalf("expected OutcomePendingConsent, got %v (%v)", got.Kind, got.Reason)
		}
		if got.Consent == nil || got.Consent.TrackID != track.ID {
			t.Fatalf("consent handle missing or wrong track: %+v", got.Consent)
		}
		if !w.Pending(track.ID) {
			t.Error("track should be pending while consent is unresolved")
		}

		resumed := w.Resume(ctx, got.Consent.ID, true)
		if resumed.Kind != OutcomeDeleted {
			t.Fatalf("expected OutcomeDeleted after grant, got %v (%v)", resumed.Kind, resumed.Reason)
		}
		if len(index.Deleted) != 2 {
			t.Errorf("expected the delete to be replayed exactly once, got %v", index.Deleted)
		}
		if w.Pending(track.ID) {
			t.Error("pending entry should be cleared after resolution")
		}
	})

	t.Run("second backend denial is terminal", func(t *testing.T) {
		index := &tu.FakeIndex{DeleteResults: []error{
			recoverableDenial(track.Locator),
			recoverableDenial(track.Locator),
		}}
		w := NewWorkflow(index, nil)

		got := w.Request(ctx, track, library.PerItemConsentRecoverable)
		resumed := w.Resume(ctx, got.Consent.ID, true)
		if resumed.Kind != OutcomeFailed {
			t.Fatalf("expected OutcomeFailed on repeat denial, got %v", resumed.Kind)
		}
		if !errors.Is(resumed.Reason, shared.ErrDeletionDenied) {
			t.Errorf("expected ErrDeletionDenied, got %v", resumed.Reason)
		}
	})

	t.Run("user denial fails without a backend call", func(t *testing.T) {
		index := &tu.FakeIndex{DeleteResults: []error{recoverableDenial(track.Locator)}}
		w := NewWorkflow(index, nil)

		got := w.Request(ctx, track, library.PerItemConsentRecoverable)
		calls := len(index.Deleted)

		resumed := w.Resume(ctx, got.Consent.ID, false)
		if resumed.Kind != OutcomeFailed || !errors.Is(resumed.Reason, shared.ErrDeletionDenied) {
			t.Fatalf("expected denied failure, got %v (%v)", resumed.Kind, resumed.Reason)
		}
		if len(index.Deleted) != calls {
			t.Error("denying consent must not touch the backend")
		}
	})

	t.Run("non-recoverable denial is terminal", func(t *testing.T) {
		index := &tu.FakeIndex{DeleteResults: []error{&mediaindex.PermissionError{
			Locator: track.Locator,
			Err:     errors.New("forbidden"),
		}}}
		w := NewWorkflow(index, nil)

		got := w.Request(ctx, track, library.PerItemConsentRecoverable)
		if got.Kind != OutcomeFailed || !errors.Is(got.Reason, shared.ErrDeletionDenied) {
			t.Fatalf("expected denied failure, got %v (%v)", got.Kind, got.Reason)
		}
	})
}

func TestWorkflowBatchConsent(t *testing.T) {
	ctx := context.Background()
	track := testTrack()

	t.Run("parks without touching the backend", func(t *testing.T) {
		index := &tu.FakeIndex{}
		w := NewWorkflow(index, nil)

		got := w.Request(ctx, track, library.BatchConsentRequired)
		if got.Kind != OutcomePendingConsent {
			t.Fatalf("expected OutcomePendingConsent, got %v", got.Kind)
		}
		if len(index.Deleted) != 0 || len(index.BatchCalls) != 0 {
			t.Error("batch tier must not call the backend before consent")
		}
	})

	t.Run("grant runs the batch delete", func(t *testing.T) {
		index := &tu.FakeIndex{}
		w := NewWorkflow(index, nil)

		got := w.Request(ctx, track, library.BatchConsentRequired)
		resumed := w.Resume(ctx, got.Consent.ID, true)
		if resumed.Kind != OutcomeDeleted {
			t.Fatalf("expected OutcomeDeleted, got %v (%v)", resumed.Kind, resumed.Reason)
		}
		if len(index.BatchCalls) != 1 || index.BatchCalls[0][0] != track.Locator {
			t.Errorf("expected one batch call with the track locator, got %v", index.BatchCalls)
		}
	})

	t.Run("deny fails the deletion", func(t *testing.T) {
		index := &tu.FakeIndex{}
		w := NewWorkflow(index, nil)

		got := w.Request(ctx, track, library.BatchConsentRequired)
		resumed := w.Resume(ctx, got.Consent.ID, false)
		if resumed.Kind != OutcomeFailed || !errors.Is(resumed.Reason, shared.ErrDeletionDenied) {
			t.Fatalf("expected denied failure, got %v (%v)", resumed.Kind, resumed.Reason)
		}
		if len(index.BatchCalls) != 0 {
			t.Error("denied batch consent must not call the backend")
		}
	})
}

func TestWorkflowPendingRegistry(t *testing.T) {
	ctx := context.Background()
	track := testTrack()

	t.Run("duplicate request fails fast", func(t *testing.T) {
		w := NewWorkflow(&tu.FakeIndex{}, nil)

		first := w.Request(ctx, track, library.BatchConsentRequired)
		if first.Kind != OutcomePendingConsent {
			t.Fatalf("setup: expected pending, got %v", first.Kind)
		}

		second := w.Request(ctx, track, library.BatchConsentRequired)
		if second.Kind != OutcomeFailed || !errors.Is(second.Reason, shared.ErrDeletionConflict) {
			t.Fatalf("expected ErrDeletionConflict, got %v (%v)", second.Kind, second.Reason)
		}
	})

	t.Run("resolution frees the track for a new request", func(t *testing.T) {
		w := NewWorkflow(&tu.FakeIndex{}, nil)

		first := w.Request(ctx, track, library.BatchConsentRequired)
		w.Resume(ctx, first.Consent.ID, false)

		second := w.Request(ctx, track, library.BatchConsentRequired)
		if second.Kind != OutcomePendingConsent {
			t.Errorf("expected a fresh pending request, got %v (%v)", second.Kind, second.Reason)
		}
	})

	t.Run("cancel dismisses without a decision", func(t *testing.T) {
		index := &tu.FakeIndex{}
		w := NewWorkflow(index, nil)

		got := w.Request(ctx, track, library.BatchConsentRequired)
		cancelled := w.Cancel(got.Consent.ID)
		if cancelled.Kind != OutcomeFailed || !errors.Is(cancelled.Reason, shared.ErrConsentDismissed) {
			t.Fatalf("expected dismissed failure, got %v (%v)", cancelled.Kind, cancelled.Reason)
		}
		if len(index.BatchCalls) != 0 {
			t.Error("cancel must not call the backend")
		}
		if w.Pending(track.ID) {
			t.Error("cancel should clear the pending entry")
		}
	})

	t.Run("unknown handle", func(t *testing.T) {
		w := NewWorkflow(&tu.FakeIndex{}, nil)

		got := w.Resume(ctx, "no-such-handle", true)
		if got.Kind != OutcomeFailed || !errors.Is(got.Reason, shared.ErrConsentNotFound) {
			t.Errorf("expected ErrConsentNotFound, got %v (%v)", got.Kind, got.Reason)
		}
	})
}
