package account

import (
	"context"
	"strings"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/oggyb/lovespark/internal/api"
	"github.com/oggyb/lovespark/internal/app"
	"github.com/oggyb/lovespark/internal/auth"
	svcErr "github.com/oggyb/lovespark/internal/errors"
	"github.com/oggyb/lovespark/internal/model"
	"github.com/oggyb/lovespark/internal/normalize"
	"github.com/oggyb/lovespark/internal/profile"
	"github.com/oggyb/lovespark/internal/repository"
	"github.com/oggyb/lovespark/internal/session"
)

// bcrypt ignores input past 72 bytes
const maxPasswordBytes = 72

var errInvalidCredentials = &svcErr.NotFoundError{Resource: "user", Msg: "invalid email or password"}

// Service implements the Account gRPC API: credentials, profile and settings.
type Service struct {
	appCtx   *app.AppContext
	users    *repository.UserRepository
	settings *repository.SettingsRepository
}

// NewAccountService creates a new Account service with dependencies from AppContext.
func NewAccountService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:   appCtx,
		users:    repository.NewUserRepository(appCtx.Store),
		settings: repository.NewSettingsRepository(appCtx.Store),
	}
}

// Signup registers an account and opens a session for it.
//
// Behavior:
//   - Email, password and name are required; age must be at least 18.
//   - The email is stored trimmed and lower-cased; a taken email → AlreadyExists.
//   - The password is stored as a bcrypt hash.
//   - Default settings are written with the account.
//
// Example:
//
//	svc.Signup(ctx, &api.SignupRequest{Email: "a@b.c", Password: "pw", Name: "Alex", Age: 30, Gender: "female"})
func (s *Service) Signup(ctx context.Context, req *api.SignupRequest) (*api.AuthResponse, error) {
	email := normalize.Email(req.GetEmail())
	s.appCtx.Logger.Debug("Signup called", "email", email)

	switch {
	case email == "" || !strings.Contains(email, "@"):
		return nil, svcErr.InvalidArgument("email: a valid email is required")
	case req.Password == "":
		return nil, svcErr.InvalidArgument("password: password is required")
	case len(req.Password) > maxPasswordBytes:
		return nil, svcErr.InvalidArgument("password: at most 72 bytes")
	case req.Age < model.MinAge:
		return nil, svcErr.InvalidArgument("age: you must be at least 18")
	}

	p := model.Profile{
		Name:      strings.TrimSpace(req.Name),
		Age:       req.Age,
		Bio:       strings.TrimSpace(req.Bio),
		Gender:    normalize.Gender(model.Gender(req.Gender)),
		Images:    []string{},
		Interests: []string{},
	}
	if err := profile.ValidateProfile(p); err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "Signup", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "Signup", err)
	}

	u, err := s.users.Create(ctx, model.User{
		Email:        email,
		PasswordHash: hash,
		Profile:      p,
		CreatedAt:    s.appCtx.Now().UTC(),
	}, model.DefaultPreferences())
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "Signup", err)
	}

	s.appCtx.Logger.Info("user signed up", "user_id", u.ID)
	return s.authResponse(u)
}

// Login checks credentials and opens a session. Unknown email and wrong
// password are reported the same way.
func (s *Service) Login(ctx context.Context, req *api.LoginRequest) (*api.AuthResponse, error) {
	email := normalize.Email(req.GetEmail())
	s.appCtx.Logger.Debug("Login called", "email", email)

	u, err := s.users.GetByEmail(ctx, email)
	if svcErr.IsNotFound(err) {
		return nil, svcErr.Map(errInvalidCredentials)
	} else if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "Login", err)
	}
	if err := auth.CheckPassword(u.PasswordHash, req.Password); err != nil {
		return nil, svcErr.Map(errInvalidCredentials)
	}
	return s.authResponse(u)
}

func (s *Service) GetProfile(ctx context.Context, _ *emptypb.Empty) (*api.ProfileResponse, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "GetProfile", err)
	}
	return &api.ProfileResponse{Profile: u.Profile}, nil
}

// UpdateProfile merges the set fields over the stored profile.
// More than 5 images or 10 interests is rejected as "limit reached".
func (s *Service) UpdateProfile(ctx context.Context, req *api.UpdateProfileRequest) (*api.ProfileResponse, error) {
	patch := profile.ProfilePatch{
		Name:      req.Name,
		Age:       req.Age,
		Bio:       req.Bio,
		Images:    req.Images,
		Interests: req.Interests,
	}
	if req.Gender != nil {
		g := model.Gender(*req.Gender)
		patch.Gender = &g
	}
	return s.editProfile(ctx, "UpdateProfile", func(cur model.Profile) (model.Profile, error) {
		return profile.ApplyProfileEdit(cur, patch)
	})
}

func (s *Service) AddImage(ctx context.Context, req *api.AddImageRequest) (*api.ProfileResponse, error) {
	return s.editProfile(ctx, "AddImage", func(cur model.Profile) (model.Profile, error) {
		return profile.AddImage(cur, req.URL)
	})
}

func (s *Service) RemoveImage(ctx context.Context, req *api.RemoveImageRequest) (*api.ProfileResponse, error) {
	return s.editProfile(ctx, "RemoveImage", func(cur model.Profile) (model.Profile, error) {
		return profile.RemoveImage(cur, req.Index)
	})
}

func (s *Service) AddInterest(ctx context.Context, req *api.InterestRequest) (*api.ProfileResponse, error) {
	return s.editProfile(ctx, "AddInterest", func(cur model.Profile) (model.Profile, error) {
		return profile.AddInterest(cur, req.Interest)
	})
}

func (s *Service) RemoveInterest(ctx context.Context, req *api.InterestRequest) (*api.ProfileResponse, error) {
	return s.editProfile(ctx, "RemoveInterest", func(cur model.Profile) (model.Profile, error) {
		return profile.RemoveInterest(cur, req.Interest), nil
	})
}

// GetSettings returns the stored settings, storing the defaults first when
// the user has none.
func (s *Service) GetSettings(ctx context.Context, _ *emptypb.Empty) (*api.SettingsResponse, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	prefs, err := s.settings.GetOrInit(ctx, sess.UserID)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "GetSettings", err)
	}
	return &api.SettingsResponse{Settings: prefs}, nil
}

// UpdateSettings merges the set fields and saves them. An empty discovery
// gender set is rejected and nothing is saved.
func (s *Service) UpdateSettings(ctx context.Context, req *api.UpdateSettingsRequest) (*api.SettingsResponse, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	patch := profile.SettingsPatch{
		ShowMeOnApp: req.ShowMeOnApp,
		AgeRange:    req.AgeRange,
		Distance:    req.Distance,
	}
	if req.DiscoveryGender != nil {
		genders := make([]model.Gender, 0, len(*req.DiscoveryGender))
		for _, g := range *req.DiscoveryGender {
			genders = append(genders, model.Gender(g))
		}
		patch.DiscoveryGender = &genders
	}
	if n := req.Notifications; n != nil {
		patch.Notifications = &profile.NotificationsPatch{
			NewMatches:  n.NewMatches,
			NewMessages: n.NewMessages,
			Promotions:  n.Promotions,
		}
	}

	prefs, err := s.settings.Update(ctx, sess.UserID, func(cur model.Preferences) (model.Preferences, error) {
		return profile.ApplySettingsEdit(cur, patch)
	})
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "UpdateSettings", err)
	}
	return &api.SettingsResponse{Settings: prefs}, nil
}

// DeleteAccount removes the caller and everything they own. Existing
// tokens stop resolving to a profile.
func (s *Service) DeleteAccount(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.Delete(ctx, sess.UserID); err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "DeleteAccount", err)
	}
	s.appCtx.Logger.Info("account deleted", "user_id", sess.UserID)
	return &emptypb.Empty{}, nil
}

func (s *Service) editProfile(
	ctx context.Context,
	method string,
	fn func(model.Profile) (model.Profile, error),
) (*api.ProfileResponse, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.users.UpdateProfile(ctx, sess.UserID, fn)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, method, err)
	}
	return &api.ProfileResponse{Profile: p}, nil
}

func (s *Service) authResponse(u model.User) (*api.AuthResponse, error) {
	token, expiresAt, err := s.appCtx.JWT.GenerateToken(u.ID, u.Email)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "GenerateToken", err)
	}
	return &api.AuthResponse{Token: token, ExpiresAt: expiresAt, Profile: u.Profile}, nil
}
