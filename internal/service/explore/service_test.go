package explore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/lovespark/internal/api"
	"github.com/oggyb/lovespark/internal/app"
	"github.com/oggyb/lovespark/internal/config"
	"github.com/oggyb/lovespark/internal/model"
	"github.com/oggyb/lovespark/internal/repository"
	"github.com/oggyb/lovespark/internal/service/explore"
	"github.com/oggyb/lovespark/internal/session"
	"github.com/oggyb/lovespark/internal/store"
)

//
// Test helpers
//

// SeedMinimalTestData inserts a minimal, deterministic dataset
// for repeatable service tests.
//
// Dataset:
//   - user1 Alex (female, 30): the caller in most tests
//   - user2 Bob (male, 28)
//   - user3 Casey (other, 22)
//   - user4 Dana (female, 40): hidden, showMeOnApp = false
//   - user5 Eli (male, 60): outside the default age range
func SeedMinimalTestData(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()
	users := repository.NewUserRepository(s)

	seed := []model.Profile{
		{Name: "Alex", Age: 30, Gender: model.GenderFemale},
		{Name: "Bob", Age: 28, Gender: model.GenderMale},
		{Name: "Casey", Age: 22, Gender: model.GenderOther},
		{Name: "Dana", Age: 40, Gender: model.GenderFemale},
		{Name: "Eli", Age: 60, Gender: model.GenderMale},
	}
	for i, p := range seed {
		prefs := model.DefaultPreferences()
		if p.Name == "Dana" {
			prefs.ShowMeOnApp = false
		}
		u, err := users.Create(ctx, model.User{
			Email:        p.Name + "@test.com",
			PasswordHash: "x",
			Profile:      p,
		}, prefs)
		require.NoError(t, err)
		require.Equal(t, uint64(i+1), u.ID)
	}
}

// setupService starts a miniredis, seeds test data and wires everything
// into an ExploreService instance.
//
// Each test gets its own isolated Redis.
func setupService(t *testing.T) (*explore.Service, store.Store) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	s := store.NewRedisStore(cfg)
	t.Cleanup(func() { _ = s.Close() })
	SeedMinimalTestData(t, s)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // discard logs in tests
	appCtx := app.New(s, logger, cfg)
	return explore.NewExploreService(appCtx), s
}

func as(userID uint64) context.Context {
	return session.NewContext(context.Background(), session.Session{UserID: userID})
}

func candidateIDs(resp *api.ListCandidatesResponse) []uint64 {
	var ids []uint64
	for _, p := range resp.Candidates {
		ids = append(ids, p.ID)
	}
	return ids
}

func swipe(t *testing.T, svc *explore.Service, actor, candidate uint64, dir string) *api.SwipeResponse {
	t.Helper()
	resp, err := svc.Swipe(as(actor), &api.SwipeRequest{CandidateID: candidate, Direction: dir})
	require.NoError(t, err)
	return resp
}

//
// Tests
//

// TestListCandidates_FiltersPool checks that hidden users, out-of-range ages
// and the caller are never shown.
func TestListCandidates_FiltersPool(t *testing.T) {
	svc, _ := setupService(t)

	resp, err := svc.ListCandidates(as(1), &api.ListCandidatesRequest{})
	require.NoError(t, err)
	assert.False(t, resp.Exhausted)
	assert.Equal(t, []uint64{2, 3}, candidateIDs(resp))

	resp, err = svc.ListCandidates(as(1), &api.ListCandidatesRequest{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []uint64{2}, candidateIDs(resp))
}

// TestListCandidates_AgeRange reproduces the [18,25] scenario: Bob (28) is excluded.
func TestListCandidates_AgeRange(t *testing.T) {
	svc, s := setupService(t)

	prefs := model.DefaultPreferences()
	prefs.AgeRange = [2]int{18, 25}
	require.NoError(t, repository.NewSettingsRepository(s).Save(context.Background(), 1, prefs))

	resp, err := svc.ListCandidates(as(1), &api.ListCandidatesRequest{})
	require.NoError(t, err)
	assert.Equal(t, []uint64{3}, candidateIDs(resp))
}

// TestListCandidates_ExhaustedShowsPlaceholder swipes through the whole pool.
func TestListCandidates_ExhaustedShowsPlaceholder(t *testing.T) {
	svc, _ := setupService(t)

	swipe(t, svc, 1, 2, "right")
	swipe(t, svc, 1, 3, "left")

	resp, err := svc.ListCandidates(as(1), &api.ListCandidatesRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Exhausted)
	require.Len(t, resp.Candidates, 1)
	assert.True(t, resp.Candidates[0].IsPlaceholder())
	assert.Equal(t, "No More Profiles", resp.Candidates[0].Name)
}

// TestSwipe_LikeThenMatch covers the liked and match scenarios end to end.
func TestSwipe_LikeThenMatch(t *testing.T) {
	svc, _ := setupService(t)

	first := swipe(t, svc, 2, 1, "right")
	assert.Equal(t, "liked", first.Outcome)
	assert.Empty(t, first.ChatKey)

	second := swipe(t, svc, 1, 2, "RIGHT")
	assert.Equal(t, "match", second.Outcome)
	assert.Equal(t, "match-2", second.ChatKey)
	assert.Equal(t, "Bob", second.Candidate.Name)

	for _, pair := range [][2]uint64{{1, 2}, {2, 1}} {
		matches, err := svc.ListMatches(as(pair[0]), &api.PageRequest{})
		require.NoError(t, err)
		require.Len(t, matches.Profiles, 1)
		assert.Equal(t, pair[1], matches.Profiles[0].ID)

		negatives, err := svc.ListNegativeChats(as(pair[0]), &api.PageRequest{})
		require.NoError(t, err)
		assert.Empty(t, negatives.Profiles)
	}
}

func TestSwipe_NegativeChat(t *testing.T) {
	svc, _ := setupService(t)

	assert.Equal(t, "passed", swipe(t, svc, 3, 1, "left").Outcome)
	resp := swipe(t, svc, 1, 3, "left")
	assert.Equal(t, "negative_chat", resp.Outcome)
	assert.Equal(t, "negative-3", resp.ChatKey)

	negatives, err := svc.ListNegativeChats(as(3), &api.PageRequest{})
	require.NoError(t, err)
	require.Len(t, negatives.Profiles, 1)
	assert.Equal(t, uint64(1), negatives.Profiles[0].ID)
}

func TestSwipe_Rejections(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Swipe(as(1), &api.SwipeRequest{CandidateID: model.PlaceholderID, Direction: "right"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.Swipe(as(1), &api.SwipeRequest{CandidateID: 99, Direction: "right"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = svc.Swipe(as(1), &api.SwipeRequest{CandidateID: 2, Direction: "up"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.Swipe(as(1), &api.SwipeRequest{CandidateID: 1, Direction: "left"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.Swipe(context.Background(), &api.SwipeRequest{CandidateID: 2, Direction: "left"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

// TestListSwipes checks overwrite semantics through the API: one record per
// candidate, latest swipe last.
func TestListSwipes(t *testing.T) {
	svc, _ := setupService(t)

	swipe(t, svc, 1, 2, "right")
	swipe(t, svc, 1, 3, "right")
	swipe(t, svc, 1, 2, "left")

	resp, err := svc.ListSwipes(as(1), &api.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Swipes, 2)
	assert.Equal(t, uint64(3), resp.Swipes[0].ProfileID)
	assert.Equal(t, uint64(2), resp.Swipes[1].ProfileID)
	assert.Equal(t, model.DirectionLeft, resp.Swipes[1].Direction)
	assert.Empty(t, resp.NextPaginationToken)

	_, err = svc.ListSwipes(as(1), &api.PageRequest{PaginationToken: "%%"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
