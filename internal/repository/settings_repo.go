package repository

import (
	"context"
	"fmt"

	"github.com/oggyb/lovespark/internal/model"
	"github.com/oggyb/lovespark/internal/store"
)

// SettingsRepository stores userSettings_<id>.
type SettingsRepository struct {
	store store.Store
}

func NewSettingsRepository(s store.Store) *SettingsRepository {
	return &SettingsRepository{store: s}
}

// Get returns the stored preferences, or the defaults when none are stored.
func (r *SettingsRepository) Get(ctx context.Context, userID uint64) (model.Preferences, error) {
	prefs, _, err := r.load(ctx, userID)
	return prefs, err
}

// GetOrInit is Get, but persists the defaults on a miss.
func (r *SettingsRepository) GetOrInit(ctx context.Context, userID uint64) (model.Preferences, error) {
	prefs, found, err := r.load(ctx, userID)
	if err != nil || found {
		return prefs, err
	}
	if err := r.Save(ctx, userID, prefs); err != nil {
		return model.Preferences{}, err
	}
	return prefs, nil
}

// Save overwrites the stored preferences. Callers validate first.
func (r *SettingsRepository) Save(ctx context.Context, userID uint64, prefs model.Preferences) error {
	if err := r.store.Set(ctx, store.SettingsKey(userID), prefs); err != nil {
		return fmt.Errorf("save settings of %d: %w", userID, err)
	}
	return nil
}

// Update applies fn to the current preferences (defaults on a miss) and
// stores the result in one transaction. An error from fn aborts the write.
func (r *SettingsRepository) Update(
	ctx context.Context,
	userID uint64,
	fn func(current model.Preferences) (model.Preferences, error),
) (model.Preferences, error) {
	key := store.SettingsKey(userID)
	var updated model.Preferences
	err := r.store.Update(ctx, []string{key}, func(tx store.Tx) error {
		current := model.DefaultPreferences()
		if _, err := tx.Get(key, &current); err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		updated = next
		return tx.Set(key, next)
	})
	if err != nil {
		return model.Preferences{}, err
	}
	return updated, nil
}

func (r *SettingsRepository) load(ctx context.Context, userID uint64) (model.Preferences, bool, error) {
	var prefs model.Preferences
	found, err := r.store.Get(ctx, store.SettingsKey(userID), &prefs)
	if err != nil {
		return model.Preferences{}, false, fmt.Errorf("load settings of %d: %w", userID, err)
	}
	if !found {
		return model.DefaultPreferences(), false, nil
	}
	return prefs, true, nil
}
