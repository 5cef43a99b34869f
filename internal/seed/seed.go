// Package seed loads the demo accounts and a random set of swipes.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oggyb/lovespark/internal/auth"
	"github.com/oggyb/lovespark/internal/match"
	"github.com/oggyb/lovespark/internal/model"
	"github.com/oggyb/lovespark/internal/normalize"
	"github.com/oggyb/lovespark/internal/profile"
	"github.com/oggyb/lovespark/internal/repository"
	"github.com/oggyb/lovespark/internal/store"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password"

//go:embed profiles.yaml
var profilesYAML []byte

type demoProfile struct {
	Name      string   `yaml:"name"`
	Age       int      `yaml:"age"`
	Gender    string   `yaml:"gender"`
	Bio       string   `yaml:"bio"`
	Images    []string `yaml:"images"`
	Interests []string `yaml:"interests"`
}

// Options controls a seeding run.
type Options struct {
	// Reset deletes every existing account first.
	Reset bool
	// Decisions is the number of random swipes to record.
	Decisions int
	// Seed makes the random swipes reproducible.
	Seed int64
}

// Summary reports what a run wrote.
type Summary struct {
	Skipped  bool
	Users    int
	Outcomes map[model.Outcome]int
}

// DemoProfiles parses the embedded demo accounts.
func DemoProfiles() ([]model.Profile, error) {
	var raw []demoProfile
	if err := yaml.Unmarshal(profilesYAML, &raw); err != nil {
		return nil, fmt.Errorf("parse demo profiles: %w", err)
	}
	out := make([]model.Profile, 0, len(raw))
	for _, d := range raw {
		p := model.Profile{
			Name:      d.Name,
			Age:       d.Age,
			Bio:       d.Bio,
			Gender:    normalize.Gender(model.Gender(d.Gender)),
			Images:    append([]string{}, d.Images...),
			Interests: append([]string{}, d.Interests...),
		}
		if err := profile.ValidateProfile(p); err != nil {
			return nil, fmt.Errorf("demo profile %q: %w", d.Name, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Run seeds the store with the demo accounts and opts.Decisions random
// swipes recorded through the reconciler.
//
// Behavior:
//  1. With Reset, every existing account is deleted with its data.
//  2. Without Reset, a store that already has accounts is left alone.
//  3. Accounts are created in file order, so ids start at 1.
//  4. Swipes lean right (~70%), so matches show up quickly.
func Run(ctx context.Context, s store.Store, log *slog.Logger, opts Options) (Summary, error) {
	users := repository.NewUserRepository(s)

	if opts.Reset {
		if err := Reset(ctx, s); err != nil {
			return Summary{}, err
		}
		log.Info("cleared existing data")
	} else {
		existing, err := users.List(ctx)
		if err != nil {
			return Summary{}, err
		}
		if len(existing) > 0 {
			log.Info("store already seeded, skipping", "users", len(existing))
			return Summary{Skipped: true, Users: len(existing)}, nil
		}
	}

	demo, err := DemoProfiles()
	if err != nil {
		return Summary{}, err
	}
	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return Summary{}, err
	}

	created := make([]model.Profile, 0, len(demo))
	for _, p := range demo {
		u, err := users.Create(ctx, model.User{
			Email:        strings.ToLower(p.Name) + "@lovespark.dev",
			PasswordHash: hash,
			Profile:      p,
		}, model.DefaultPreferences())
		if err != nil {
			return Summary{}, fmt.Errorf("failed to seed user: %w", err)
		}
		created = append(created, u.Profile)
	}
	log.Info("seeded users", "count", len(created))

	summary := Summary{Users: len(created), Outcomes: map[model.Outcome]int{}}
	if len(created) < 2 {
		return summary, nil
	}

	r := rand.New(rand.NewSource(opts.Seed))
	rec := match.NewReconciler(s, nil)
	for i := 0; i < opts.Decisions; i++ {
		actor := created[r.Intn(len(created))]
		candidate := created[r.Intn(len(created))]
		if actor.ID == candidate.ID {
			continue
		}
		dir := model.DirectionLeft
		if r.Float64() < 0.7 {
			dir = model.DirectionRight
		}
		res, err := rec.RecordSwipe(ctx, actor, candidate, dir)
		if err != nil {
			return summary, fmt.Errorf("failed to seed swipe: %w", err)
		}
		summary.Outcomes[res.Outcome]++
	}
	log.Info("seeded swipes", "outcomes", summary.Outcomes)
	return summary, nil
}

// Reset deletes every account along with its settings, swipes, lists and
// transcripts, and restarts ids at 1. Nothing keyed by an old id survives,
// so the counter may go back.
func Reset(ctx context.Context, s store.Store) error {
	users := repository.NewUserRepository(s)
	existing, err := users.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range existing {
		if err := users.Delete(ctx, u.ID); err != nil {
			return fmt.Errorf("failed to clear user %d: %w", u.ID, err)
		}
	}
	return s.Remove(ctx, store.KeyUsers, store.KeyUserSeq)
}
