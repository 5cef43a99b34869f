package repository

import (
	"context"
	"fmt"
	"slices"
	"time"

	svcErr "github.com/oggyb/lovespark/internal/errors"
	"github.com/oggyb/lovespark/internal/model"
	"github.com/oggyb/lovespark/internal/store"
)

// UserRepository provides access to the "users" record, a JSON array of
// every registered account in id order.
type UserRepository struct {
	store store.Store
	now   func() time.Time
}

// NewUserRepository creates a repository bound to the given store.
func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s, now: time.Now}
}

// List returns every user in id order. A missing record is an empty list.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if _, err := r.store.Get(ctx, store.KeyUsers, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetByID returns the user with id or a NotFoundError.
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return model.User{}, err
	}
	if i := indexByID(users, id); i >= 0 {
		return users[i], nil
	}
	return model.User{}, svcErr.NotFound("user")
}

// GetByEmail matches email exactly; callers pass it normalized.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, svcErr.NotFound("user")
}

// Create registers u and writes its initial settings.
//
// Behavior:
//   - u.ID is the next value of the userSeq counter, so ids start at 1 and
//     an id freed by Delete is never handed out again.
//   - An existing account with the same email → ConflictError.
//   - The users record, userSeq and userSettings_<id> are written in one transaction.
//
// Example:
//
//	u, err := repo.Create(ctx, model.User{Email: "a@b.c", ...}, model.DefaultPreferences())
func (r *UserRepository) Create(ctx context.Context, u model.User, prefs model.Preferences) (model.User, error) {
	err := r.store.Update(ctx, []string{store.KeyUsers, store.KeyUserSeq}, func(tx store.Tx) error {
		users, err := loadUsers(tx)
		if err != nil {
			return err
		}
		var seq uint64
		if _, err := tx.Get(store.KeyUserSeq, &seq); err != nil {
			return err
		}

		for _, existing := range users {
			if existing.Email == u.Email {
				return svcErr.Conflict("an account with this email already exists")
			}
			// records written before the counter existed
			seq = max(seq, existing.ID)
		}

		u.ID = seq + 1
		u.Profile.ID = u.ID
		if u.CreatedAt.IsZero() {
			u.CreatedAt = r.now().UTC()
		}

		if err := tx.Set(store.KeyUsers, append(users, u)); err != nil {
			return err
		}
		if err := tx.Set(store.KeyUserSeq, u.ID); err != nil {
			return err
		}
		return tx.Set(store.SettingsKey(u.ID), prefs)
	})
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// UpdateProfile applies fn to the stored profile of id and saves the result.
// fn runs inside the transaction and may be retried; it must not have side effects.
func (r *UserRepository) UpdateProfile(
	ctx context.Context,
	id uint64,
	fn func(current model.Profile) (model.Profile, error),
) (model.Profile, error) {
	var updated model.Profile
	err := r.store.Update(ctx, []string{store.KeyUsers}, func(tx store.Tx) error {
		users, err := loadUsers(tx)
		if err != nil {
			return err
		}
		i := indexByID(users, id)
		if i < 0 {
			return svcErr.NotFound("user")
		}

		p, err := fn(users[i].Profile.Clone())
		if err != nil {
			return err
		}
		p.ID = id
		users[i].Profile = p
		updated = p
		return tx.Set(store.KeyUsers, users)
	})
	if err != nil {
		return model.Profile{}, err
	}
	return updated, nil
}

// Delete removes the account and everything it owns.
//
// Behavior:
//   - The user leaves the "users" record.
//   - userSettings_, swipedProfiles_, userSwipes_, matches_ and negativeChats_
//     of the user are deleted.
//   - Transcripts with every partner in the user's match and negative
//     lists are deleted.
//   - Counterparts keep their snapshots of the user.
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	keys := append([]string{store.KeyUsers}, store.UserKeys(id)...)
	err := r.store.Update(ctx, keys, func(tx store.Tx) error {
		users, err := loadUsers(tx)
		if err != nil {
			return err
		}
		i := indexByID(users, id)
		if i < 0 {
			return svcErr.NotFound("user")
		}

		d := Decisions(tx)
		matches, err := d.Matches(id)
		if err != nil {
			return err
		}
		negatives, err := d.NegativeChats(id)
		if err != nil {
			return err
		}

		remove := store.UserKeys(id)
		for _, p := range append(matches, negatives...) {
			remove = append(remove, store.ChatKey(id, p.ID))
		}
		if err := tx.Remove(remove...); err != nil {
			return err
		}
		return tx.Set(store.KeyUsers, slices.Delete(users, i, i+1))
	})
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

func loadUsers(tx store.Tx) ([]model.User, error) {
	var users []model.User
	if _, err := tx.Get(store.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func indexByID(users []model.User, id uint64) int {
	return slices.IndexFunc(users, func(u model.User) bool { return u.ID == id })
}
