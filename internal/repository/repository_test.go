package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oggyb/lovespark/internal/db"
	svcErr "github.com/oggyb/lovespark/internal/errors"
	"github.com/oggyb/lovespark/internal/model"
	"github.com/oggyb/lovespark/internal/repository"
	"github.com/oggyb/lovespark/internal/store"
)

// setup in-memory store
func setupTestStore(t *testing.T) store.Store {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	require.NoError(t, err)
	// every connection to ":memory:" is a fresh database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Migrate(database); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return store.NewSQLStore(database)
}

func newUser(email, name string) model.User {
	return model.User{
		Email:        email,
		PasswordHash: "hash",
		Profile:      model.Profile{Name: name, Age: 25, Gender: model.GenderFemale},
	}
}

func TestCreateUser_AssignsSequentialIDsAndSettings(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	users := repository.NewUserRepository(s)
	settings := repository.NewSettingsRepository(s)

	a, err := users.Create(ctx, newUser("a@x.io", "A"), model.DefaultPreferences())
	require.NoError(t, err)
	b, err := users.Create(ctx, newUser("b@x.io", "B"), model.DefaultPreferences())
	require.NoError(t, err)

	assert.Equal(t, uint64(1), a.ID)
	assert.Equal(t, uint64(1), a.Profile.ID)
	assert.Equal(t, uint64(2), b.ID)
	assert.False(t, a.CreatedAt.IsZero())

	var stored model.Preferences
	found, err := s.Get(ctx, store.SettingsKey(b.ID), &stored)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, model.DefaultPreferences(), stored)

	prefs, err := settings.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, prefs.Distance)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users := repository.NewUserRepository(setupTestStore(t))

	_, err := users.Create(ctx, newUser("a@x.io", "A"), model.DefaultPreferences())
	require.NoError(t, err)
	_, err = users.Create(ctx, newUser("a@x.io", "Again"), model.DefaultPreferences())

	var conflict *svcErr.ConflictError
	assert.ErrorAs(t, err, &conflict)

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	users := repository.NewUserRepository(setupTestStore(t))
	created, _ := users.Create(ctx, newUser("a@x.io", "A"), model.DefaultPreferences())

	got, err := users.GetByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = users.GetByEmail(ctx, "nobody@x.io")
	assert.True(t, svcErr.IsNotFound(err))
	_, err = users.GetByID(ctx, 42)
	assert.True(t, svcErr.IsNotFound(err))
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	users := repository.NewUserRepository(setupTestStore(t))
	created, _ := users.Create(ctx, newUser("a@x.io", "A"), model.DefaultPreferences())

	p, err := users.UpdateProfile(ctx, created.ID, func(cur model.Profile) (model.Profile, error) {
		cur.Bio = "hello"
		cur.ID = 999 // id is not editable
		return cur, nil
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, p.ID)

	got, _ := users.GetByID(ctx, created.ID)
	assert.Equal(t, "hello", got.Profile.Bio)

	// fn errors abort the write
	_, err = users.UpdateProfile(ctx, created.ID, func(cur model.Profile) (model.Profile, error) {
		cur.Bio = "nope"
		return cur, svcErr.Validation("bio", "bad")
	})
	assert.True(t, svcErr.IsValidation(err))
	got, _ = users.GetByID(ctx, created.ID)
	assert.Equal(t, "hello", got.Profile.Bio)
}

func TestPutSwipe_OverwritesAndReorders(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	repo := repository.NewDecisionRepository(s)

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	swipe := func(candidate uint64, dir model.Direction, at time.Time) {
		err := s.Update(ctx, repository.DecisionKeys(1, candidate), func(tx store.Tx) error {
			return repository.Decisions(tx).PutSwipe(1, candidate, dir, at)
		})
		require.NoError(t, err)
	}

	swipe(2, model.DirectionRight, t0)
	swipe(3, model.DirectionLeft, t0.Add(time.Minute))
	// swipe 2 again: latest direction wins and moves to the end
	swipe(2, model.DirectionLeft, t0.Add(2*time.Minute))

	swipes, err := repo.Swipes(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.SwipeMap{2: model.DirectionLeft, 3: model.DirectionLeft}, swipes)

	history, next, err := repo.ListSwipes(ctx, 1, "", 20)
	require.NoError(t, err)
	assert.Empty(t, next)
	require.Len(t, history, 2)
	assert.Equal(t, uint64(3), history[0].ProfileID)
	assert.Equal(t, uint64(2), history[1].ProfileID)
	assert.Equal(t, model.DirectionLeft, history[1].Direction)
	assert.True(t, history[1].Date.Equal(t0.Add(2*time.Minute)))
}

// Offsets are positional: re-swiping an entry from page one while paging
// moves it behind the cursor, so the next page repeats it at the end and
// the entry that slid forward is skipped.
func TestListSwipes_ReswipeShiftsLaterPages(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	repo := repository.NewDecisionRepository(s)

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	put := func(candidate uint64, at time.Time) {
		err := s.Update(ctx, repository.DecisionKeys(1, candidate), func(tx store.Tx) error {
			return repository.Decisions(tx).PutSwipe(1, candidate, model.DirectionRight, at)
		})
		require.NoError(t, err)
	}
	ids := func(recs []model.SwipeRecord) []uint64 {
		var out []uint64
		for _, r := range recs {
			out = append(out, r.ProfileID)
		}
		return out
	}

	for i, c := range []uint64{2, 3, 4, 5} {
		put(c, t0.Add(time.Duration(i)*time.Minute))
	}

	first, next, err := repo.ListSwipes(ctx, 1, "", 2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3}, ids(first))

	put(2, t0.Add(time.Hour))

	second, _, err := repo.ListSwipes(ctx, 1, next, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{5, 2}, ids(second))
}

func TestAddMatch_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	repo := repository.NewDecisionRepository(s)
	partner := model.Profile{ID: 2, Name: "B"}

	var added []bool
	for i := 0; i < 2; i++ {
		err := s.Update(ctx, repository.DecisionKeys(1, 2), func(tx store.Tx) error {
			ok, err := repository.Decisions(tx).AddMatch(1, partner)
			added = append(added, ok)
			return err
		})
		require.NoError(t, err)
	}
	assert.Equal(t, []bool{true, false}, added)

	matches, _, err := repo.ListMatches(ctx, 1, "", 20)
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	p, ok, err := repo.Connection(ctx, 1, model.ChatKindMatch, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "B", p.Name)

	_, ok, err = repo.Connection(ctx, 1, model.ChatKindNegative, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListMatches_Paginates(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	repo := repository.NewDecisionRepository(s)

	var list []model.Profile
	for i := uint64(2); i <= 6; i++ {
		list = append(list, model.Profile{ID: i})
	}
	require.NoError(t, s.Set(ctx, store.NegativeChatsKey(1), list))

	page, next, err := repo.ListNegativeChats(ctx, 1, "", 3)
	require.NoError(t, err)
	assert.Len(t, page, 3)
	require.NotEmpty(t, next)

	page, next, err = repo.ListNegativeChats(ctx, 1, next, 3)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Empty(t, next)
}

func TestSettings_GetOrInit(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	repo := repository.NewSettingsRepository(s)

	var stored model.Preferences
	found, _ := s.Get(ctx, store.SettingsKey(9), &stored)
	assert.False(t, found)

	prefs, err := repo.GetOrInit(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPreferences(), prefs)

	found, _ = s.Get(ctx, store.SettingsKey(9), &stored)
	assert.True(t, found)

	prefs.Distance = 10
	require.NoError(t, repo.Save(ctx, 9, prefs))
	got, err := repo.Get(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Distance)
}

func TestChat_AppendAndList(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewChatRepository(setupTestStore(t))

	require.NoError(t, repo.Append(ctx, 1, 2, model.ChatMessage{ID: "m1", Text: "hi", SenderID: 1}))
	// either participant writes to the same transcript
	require.NoError(t, repo.Append(ctx, 2, 1, model.ChatMessage{ID: "m2", Text: "hey", SenderID: 2}))

	msgs, _, err := repo.ListMessages(ctx, 2, 1, "", 50)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "m1", msgs[0].ID)
	assert.Equal(t, "m2", msgs[1].ID)
}

func TestDeleteUser_Cascades(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	users := repository.NewUserRepository(s)
	chats := repository.NewChatRepository(s)
	decisions := repository.NewDecisionRepository(s)

	a, _ := users.Create(ctx, newUser("a@x.io", "A"), model.DefaultPreferences())
	b, _ := users.Create(ctx, newUser("b@x.io", "B"), model.DefaultPreferences())

	err := s.Update(ctx, repository.DecisionKeys(a.ID, b.ID), func(tx store.Tx) error {
		d := repository.Decisions(tx)
		if _, err := d.AddMatch(a.ID, b.Profile); err != nil {
			return err
		}
		_, err := d.AddMatch(b.ID, a.Profile)
		return err
	})
	require.NoError(t, err)
	require.NoError(t, chats.Append(ctx, a.ID, b.ID, model.ChatMessage{ID: "m1", Text: "hi"}))

	require.NoError(t, users.Delete(ctx, a.ID))

	_, err = users.GetByID(ctx, a.ID)
	assert.True(t, svcErr.IsNotFound(err))

	var raw any
	for _, key := range append(store.UserKeys(a.ID), store.ChatKey(a.ID, b.ID)) {
		found, err := s.Get(ctx, key, &raw)
		require.NoError(t, err)
		assert.False(t, found, key)
	}

	// the counterpart keeps its snapshot
	matches, _, err := decisions.ListMatches(ctx, b.ID, "", 20)
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	assert.True(t, svcErr.IsNotFound(users.Delete(ctx, a.ID)))
}

func TestCreateUser_NeverReusesDeletedIDs(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	users := repository.NewUserRepository(s)

	_, err := users.Create(ctx, newUser("a@x.io", "A"), model.DefaultPreferences())
	require.NoError(t, err)
	b, err := users.Create(ctx, newUser("b@x.io", "B"), model.DefaultPreferences())
	require.NoError(t, err)
	require.NoError(t, users.Delete(ctx, b.ID))

	c, err := users.Create(ctx, newUser("c@x.io", "C"), model.DefaultPreferences())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), c.ID)
	assert.Equal(t, uint64(3), c.Profile.ID)

	// re-registering the deleted email still gets a fresh id
	again, err := users.Create(ctx, newUser("b@x.io", "B"), model.DefaultPreferences())
	require.NoError(t, err)
	assert.Equal(t, uint64(4), again.ID)

	var seq uint64
	found, err := s.Get(ctx, store.KeyUserSeq, &seq)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(4), seq)
}

// Stores written before the counter existed continue after the highest id.
func TestCreateUser_SeqFollowsExistingUsers(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	require.NoError(t, s.Set(ctx, store.KeyUsers, []model.User{
		{ID: 7, Email: "old@x.io", Profile: model.Profile{ID: 7, Name: "Old", Age: 30, Gender: model.GenderMale}},
	}))

	u, err := repository.NewUserRepository(s).Create(ctx, newUser("new@x.io", "New"), model.DefaultPreferences())
	require.NoError(t, err)
	assert.Equal(t, uint64(8), u.ID)
}
