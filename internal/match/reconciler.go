// Package match records swipes and turns reciprocal swipes into matches
// and negative chats.
package match

import (
	"context"
	"fmt"
	"time"

	svcErr "github.com/oggyb/lovespark/internal/errors"
	"github.com/oggyb/lovespark/internal/metrics"
	"github.com/oggyb/lovespark/internal/model"
	"github.com/oggyb/lovespark/internal/repository"
	"github.com/oggyb/lovespark/internal/store"
)

// Result is what the caller shows after a swipe.
type Result struct {
	Outcome   model.Outcome
	Candidate model.Profile
}

// Classify maps the actor's direction and the counterpart's recorded
// direction toward the actor ("" when none) to an outcome.
func Classify(dir, counterpart model.Direction) model.Outcome {
	switch {
	case dir == model.DirectionRight && counterpart == model.DirectionRight:
		return model.OutcomeMatch
	case dir == model.DirectionLeft && counterpart == model.DirectionLeft:
		return model.OutcomeNegativeChat
	case dir == model.DirectionRight:
		return model.OutcomeLiked
	default:
		return model.OutcomePassed
	}
}

// Reconciler applies swipes to the store.
type Reconciler struct {
	store store.Store
	now   func() time.Time
}

// NewReconciler returns a Reconciler stamping swipes with now (time.Now when nil).
func NewReconciler(s store.Store, now func() time.Time) *Reconciler {
	if now == nil {
		now = time.Now
	}
	return &Reconciler{store: s, now: now}
}

// RecordSwipe stores actor's swipe on candidate and classifies it.
//
// Behavior:
//   - No current user (actor id 0) → PreconditionError.
//   - Placeholder candidate, self swipe or unknown direction → ValidationError, nothing written.
//   - Swipe map and history are overwritten for the pair.
//   - Match / NegativeChat add each side's snapshot to the other's list, once.
//   - A pair already connected the opposite way keeps that connection and
//     the outcome falls back to Liked / Passed.
//
// All writes happen in one store transaction.
func (r *Reconciler) RecordSwipe(
	ctx context.Context,
	actor, candidate model.Profile,
	dir model.Direction,
) (Result, error) {
	switch {
	case actor.ID == model.PlaceholderID:
		return Result{}, svcErr.Precondition("no current user")
	case candidate.IsPlaceholder():
		return Result{}, svcErr.Validation("candidate", "the placeholder profile cannot be swiped")
	case actor.ID == candidate.ID:
		return Result{}, svcErr.Validation("candidate", "cannot swipe on yourself")
	case !dir.Valid():
		return Result{}, svcErr.Validation("direction", fmt.Sprintf("unknown direction %q", dir))
	}

	var outcome model.Outcome
	keys := repository.DecisionKeys(actor.ID, candidate.ID)
	err := r.store.Update(ctx, keys, func(tx store.Tx) error {
		d := repository.Decisions(tx)
		if err := d.PutSwipe(actor.ID, candidate.ID, dir, r.now().UTC()); err != nil {
			return err
		}

		theirs, err := d.Swipes(candidate.ID)
		if err != nil {
			return err
		}
		outcome = Classify(dir, theirs[actor.ID])

		switch outcome {
		case model.OutcomeMatch:
			return connect(actor, candidate, &outcome, model.OutcomeLiked,
				d.HasNegativeChat, d.AddMatch)
		case model.OutcomeNegativeChat:
			return connect(actor, candidate, &outcome, model.OutcomePassed,
				d.HasMatch, d.AddNegativeChat)
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("record swipe %d -> %d: %w", actor.ID, candidate.ID, err)
	}

	metrics.SwipesTotal.WithLabelValues(outcome.String()).Inc()
	return Result{Outcome: outcome, Candidate: candidate}, nil
}

// connect adds both snapshots via add, unless hasOpposite finds the pair
// already connected the other way, in which case *outcome becomes fallback.
func connect(
	actor, candidate model.Profile,
	outcome *model.Outcome,
	fallback model.Outcome,
	hasOpposite func(userID, partnerID uint64) (bool, error),
	add func(userID uint64, partner model.Profile) (bool, error),
) error {
	for _, pair := range [][2]uint64{{actor.ID, candidate.ID}, {candidate.ID, actor.ID}} {
		opposite, err := hasOpposite(pair[0], pair[1])
		if err != nil {
			return err
		}
		if opposite {
			*outcome = fallback
			return nil
		}
	}

	if _, err := add(actor.ID, candidate); err != nil {
		return err
	}
	_, err := add(candidate.ID, actor)
	return err
}
