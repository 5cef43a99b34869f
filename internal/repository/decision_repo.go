package repository

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/oggyb/lovespark/internal/model"
	"github.com/oggyb/lovespark/internal/store"
	"github.com/oggyb/lovespark/internal/utils/pagination"
)

// DecisionRepository provides read access to swipe history and the
// match and negative-chat lists. Writes go through DecisionTx so they
// can join a reconciliation transaction.
type DecisionRepository struct {
	store store.Store
}

// NewDecisionRepository creates a new repository bound to the given store.
func NewDecisionRepository(s store.Store) *DecisionRepository {
	return &DecisionRepository{store: s}
}

// Swipes returns the userSwipes_<id> map. Never nil.
func (r *DecisionRepository) Swipes(ctx context.Context, userID uint64) (model.SwipeMap, error) {
	swipes := model.SwipeMap{}
	if _, err := r.store.Get(ctx, store.UserSwipesKey(userID), &swipes); err != nil {
		return nil, fmt.Errorf("load swipes of %d: %w", userID, err)
	}
	return swipes, nil
}

// ListSwipes returns a page of swipedProfiles_<id>, oldest first. A
// re-swipe moves its record to the end, so a swipe made while paging
// shifts later offsets by one.
func (r *DecisionRepository) ListSwipes(
	ctx context.Context,
	userID uint64,
	paginationToken string,
	limit int,
) ([]model.SwipeRecord, string, error) {
	var history []model.SwipeRecord
	if _, err := r.store.Get(ctx, store.SwipedProfilesKey(userID), &history); err != nil {
		return nil, "", fmt.Errorf("load swipe history of %d: %w", userID, err)
	}
	return pagination.Page(history, paginationToken, limit)
}

// ListMatches returns a page of matches_<id> in the order they were made.
func (r *DecisionRepository) ListMatches(
	ctx context.Context,
	userID uint64,
	paginationToken string,
	limit int,
) ([]model.Profile, string, error) {
	return r.listProfiles(ctx, store.MatchesKey(userID), paginationToken, limit)
}

// ListNegativeChats returns a page of negativeChats_<id>.
func (r *DecisionRepository) ListNegativeChats(
	ctx context.Context,
	userID uint64,
	paginationToken string,
	limit int,
) ([]model.Profile, string, error) {
	return r.listProfiles(ctx, store.NegativeChatsKey(userID), paginationToken, limit)
}

// Connection returns the partner snapshot from the caller's list of kind,
// or false when the pair is not connected that way.
func (r *DecisionRepository) Connection(
	ctx context.Context,
	userID uint64,
	kind model.ChatKind,
	partnerID uint64,
) (model.Profile, bool, error) {
	key := store.MatchesKey(userID)
	if kind == model.ChatKindNegative {
		key = store.NegativeChatsKey(userID)
	}

	var list []model.Profile
	if _, err := r.store.Get(ctx, key, &list); err != nil {
		return model.Profile{}, false, fmt.Errorf("load %s: %w", key, err)
	}
	if i := profileIndex(list, partnerID); i >= 0 {
		return list[i], true, nil
	}
	return model.Profile{}, false, nil
}

func (r *DecisionRepository) listProfiles(
	ctx context.Context,
	key, paginationToken string,
	limit int,
) ([]model.Profile, string, error) {
	var list []model.Profile
	if _, err := r.store.Get(ctx, key, &list); err != nil {
		return nil, "", fmt.Errorf("load %s: %w", key, err)
	}
	return pagination.Page(list, paginationToken, limit)
}

// DecisionKeys lists every key a swipe between actor and candidate may touch.
func DecisionKeys(actorID, candidateID uint64) []string {
	return []string{
		store.UserSwipesKey(actorID),
		store.SwipedProfilesKey(actorID),
		store.UserSwipesKey(candidateID),
		store.MatchesKey(actorID),
		store.MatchesKey(candidateID),
		store.NegativeChatsKey(actorID),
		store.NegativeChatsKey(candidateID),
	}
}

// DecisionTx reads and writes decision records inside a store transaction.
type DecisionTx struct {
	tx store.Tx
}

// Decisions binds decision helpers to tx.
func Decisions(tx store.Tx) DecisionTx {
	return DecisionTx{tx: tx}
}

// Swipes returns the userSwipes_<id> map. Never nil.
func (d DecisionTx) Swipes(userID uint64) (model.SwipeMap, error) {
	swipes := model.SwipeMap{}
	if _, err := d.tx.Get(store.UserSwipesKey(userID), &swipes); err != nil {
		return nil, err
	}
	return swipes, nil
}

// PutSwipe records actor's latest direction on candidate.
//
// Behavior:
//   - userSwipes_<actor>[candidate] is overwritten.
//   - Any earlier swipedProfiles_<actor> entry for candidate is dropped and
//     the new record is appended, so the list holds one entry per candidate
//     ordered by last swipe.
func (d DecisionTx) PutSwipe(actorID, candidateID uint64, dir model.Direction, at time.Time) error {
	swipes, err := d.Swipes(actorID)
	if err != nil {
		return err
	}
	swipes[candidateID] = dir
	if err := d.tx.Set(store.UserSwipesKey(actorID), swipes); err != nil {
		return err
	}

	var history []model.SwipeRecord
	if _, err := d.tx.Get(store.SwipedProfilesKey(actorID), &history); err != nil {
		return err
	}
	history = slices.DeleteFunc(history, func(rec model.SwipeRecord) bool {
		return rec.ProfileID == candidateID
	})
	history = append(history, model.SwipeRecord{ProfileID: candidateID, Direction: dir, Date: at})
	return d.tx.Set(store.SwipedProfilesKey(actorID), history)
}

func (d DecisionTx) Matches(userID uint64) ([]model.Profile, error) {
	return d.profiles(store.MatchesKey(userID))
}

func (d DecisionTx) NegativeChats(userID uint64) ([]model.Profile, error) {
	return d.profiles(store.NegativeChatsKey(userID))
}

// HasMatch reports whether partnerID is in matches_<userID>.
func (d DecisionTx) HasMatch(userID, partnerID uint64) (bool, error) {
	return d.contains(store.MatchesKey(userID), partnerID)
}

// HasNegativeChat reports whether partnerID is in negativeChats_<userID>.
func (d DecisionTx) HasNegativeChat(userID, partnerID uint64) (bool, error) {
	return d.contains(store.NegativeChatsKey(userID), partnerID)
}

// AddMatch appends partner to matches_<userID> unless already present.
func (d DecisionTx) AddMatch(userID uint64, partner model.Profile) (bool, error) {
	return d.appendUnique(store.MatchesKey(userID), partner)
}

// AddNegativeChat appends partner to negativeChats_<userID> unless already present.
func (d DecisionTx) AddNegativeChat(userID uint64, partner model.Profile) (bool, error) {
	return d.appendUnique(store.NegativeChatsKey(userID), partner)
}

func (d DecisionTx) profiles(key string) ([]model.Profile, error) {
	var list []model.Profile
	if _, err := d.tx.Get(key, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (d DecisionTx) contains(key string, partnerID uint64) (bool, error) {
	list, err := d.profiles(key)
	if err != nil {
		return false, err
	}
	return profileIndex(list, partnerID) >= 0, nil
}

func (d DecisionTx) appendUnique(key string, partner model.Profile) (bool, error) {
	list, err := d.profiles(key)
	if err != nil {
		return false, err
	}
	if profileIndex(list, partner.ID) >= 0 {
		return false, nil
	}
	return true, d.tx.Set(key, append(list, partner.Clone()))
}

func profileIndex(list []model.Profile, id uint64) int {
	return slices.IndexFunc(list, func(p model.Profile) bool { return p.ID == id })
}
