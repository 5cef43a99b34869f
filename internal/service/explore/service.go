package explore

import (
	"context"
	"strings"

	"github.com/oggyb/lovespark/internal/api"
	"github.com/oggyb/lovespark/internal/app"
	"github.com/oggyb/lovespark/internal/discovery"
	svcErr "github.com/oggyb/lovespark/internal/errors"
	"github.com/oggyb/lovespark/internal/match"
	"github.com/oggyb/lovespark/internal/model"
	"github.com/oggyb/lovespark/internal/repository"
	"github.com/oggyb/lovespark/internal/session"
)

const (
	defaultCandidateLimit = 10
	pageSize              = 20
)

// Service implements the Explore gRPC API.
// It contains the business logic on top of the repository layer.
type Service struct {
	appCtx     *app.AppContext
	users      *repository.UserRepository
	settings   *repository.SettingsRepository
	decisions  *repository.DecisionRepository
	reconciler *match.Reconciler
}

// NewExploreService creates a new Explore service with dependencies from AppContext.
func NewExploreService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:     appCtx,
		users:      repository.NewUserRepository(appCtx.Store),
		settings:   repository.NewSettingsRepository(appCtx.Store),
		decisions:  repository.NewDecisionRepository(appCtx.Store),
		reconciler: match.NewReconciler(appCtx.Store, appCtx.Now),
	}
}

// ListCandidates returns the next cards for the caller.
//
// Behavior:
//   - The pool is every registered user in id order, minus users who hid
//     themselves (showMeOnApp = false).
//   - Already swiped profiles, the caller, and profiles outside the caller's
//     gender set or age range are dropped; order is kept.
//   - At most limit cards (default 10) are returned.
//   - When nothing is left the single placeholder card is returned and
//     exhausted is set.
//
// Example:
//
//	svc.ListCandidates(ctx, &api.ListCandidatesRequest{Limit: 5})
func (s *Service) ListCandidates(ctx context.Context, req *api.ListCandidatesRequest) (*api.ListCandidatesResponse, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	s.appCtx.Logger.Debug("ListCandidates called", "user_id", sess.UserID, "limit", req.Limit)

	limit := req.Limit
	if limit <= 0 {
		limit = defaultCandidateLimit
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "ListCandidates", err)
	}
	prefs, err := s.settings.Get(ctx, sess.UserID)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "ListCandidates", err)
	}
	swipes, err := s.decisions.Swipes(ctx, sess.UserID)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "ListCandidates", err)
	}

	pool, err := s.visiblePool(ctx, users, sess.UserID)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "ListCandidates", err)
	}

	candidates := discovery.NextCandidates(pool, sess.UserID, discovery.SwipedSet(swipes), prefs)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	resp := &api.ListCandidatesResponse{
		Candidates: discovery.OrPlaceholder(candidates),
		Exhausted:  len(candidates) == 0,
	}
	s.appCtx.Logger.Debug("ListCandidates result", "count", len(candidates), "exhausted", resp.Exhausted)
	return resp, nil
}

// Swipe records the caller's swipe on a candidate and reports the outcome.
//
// Behavior:
//   - candidate_id 0 (the placeholder) → InvalidArgument; unknown id → NotFound.
//   - Direction is "left" or "right", case-insensitive.
//   - On match / negative_chat the response carries the chat key of the
//     unlocked conversation.
//
// Example:
//
//	svc.Swipe(ctx, &api.SwipeRequest{CandidateID: 2, Direction: "right"})
func (s *Service) Swipe(ctx context.Context, req *api.SwipeRequest) (*api.SwipeResponse, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	s.appCtx.Logger.Debug("Swipe called", "actor", sess.UserID, "candidate", req.CandidateID, "direction", req.Direction)

	if req.CandidateID == model.PlaceholderID {
		return nil, svcErr.InvalidArgument("candidate_id: the placeholder profile cannot be swiped")
	}

	actor, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "Swipe", err)
	}
	candidate, err := s.users.GetByID(ctx, req.CandidateID)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "Swipe", err)
	}

	dir := model.Direction(strings.ToLower(strings.TrimSpace(req.Direction)))
	res, err := s.reconciler.RecordSwipe(ctx, actor.Profile, candidate.Profile, dir)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "Swipe", err)
	}

	resp := &api.SwipeResponse{Outcome: res.Outcome.String(), Candidate: res.Candidate}
	switch res.Outcome {
	case model.OutcomeMatch:
		resp.ChatKey = model.ChatKey{Kind: model.ChatKindMatch, PartnerID: candidate.ID}.String()
	case model.OutcomeNegativeChat:
		resp.ChatKey = model.ChatKey{Kind: model.ChatKindNegative, PartnerID: candidate.ID}.String()
	}

	s.appCtx.Logger.Info("swipe recorded", "actor", actor.ID, "candidate", candidate.ID, "outcome", resp.Outcome)
	return resp, nil
}

// ListMatches returns the caller's matches, 20 per page, oldest first.
func (s *Service) ListMatches(ctx context.Context, req *api.PageRequest) (*api.ListProfilesResponse, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	profiles, next, err := s.decisions.ListMatches(ctx, sess.UserID, req.PaginationToken, pageSize)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "ListMatches", err)
	}
	return &api.ListProfilesResponse{Profiles: nonNil(profiles), NextPaginationToken: next}, nil
}

// ListNegativeChats returns the caller's negative chats, 20 per page.
func (s *Service) ListNegativeChats(ctx context.Context, req *api.PageRequest) (*api.ListProfilesResponse, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	profiles, next, err := s.decisions.ListNegativeChats(ctx, sess.UserID, req.PaginationToken, pageSize)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "ListNegativeChats", err)
	}
	return &api.ListProfilesResponse{Profiles: nonNil(profiles), NextPaginationToken: next}, nil
}

// ListSwipes returns the caller's swipe history ordered by last swipe.
func (s *Service) ListSwipes(ctx context.Context, req *api.PageRequest) (*api.ListSwipesResponse, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	swipes, next, err := s.decisions.ListSwipes(ctx, sess.UserID, req.PaginationToken, pageSize)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "ListSwipes", err)
	}
	if swipes == nil {
		swipes = []model.SwipeRecord{}
	}
	return &api.ListSwipesResponse{Swipes: swipes, NextPaginationToken: next}, nil
}

// visiblePool lists the profiles of users who show themselves on the app.
// Users without stored settings use the defaults, which show them.
func (s *Service) visiblePool(ctx context.Context, users []model.User, selfID uint64) ([]model.Profile, error) {
	pool := make([]model.Profile, 0, len(users))
	for _, u := range users {
		if u.ID == selfID {
			continue
		}
		prefs, err := s.settings.Get(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		if prefs.ShowMeOnApp {
			pool = append(pool, u.Profile)
		}
	}
	return pool, nil
}

func nonNil(ps []model.Profile) []model.Profile {
	if ps == nil {
		return []model.Profile{}
	}
	return ps
}
