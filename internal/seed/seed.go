// Package seed はロケーションカタログとデモユーザーの初期データを投入する。
// 何度実行しても同じ状態に収束する。
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/tabilog/internal/auth"
	"github.com/hitoshi/tabilog/internal/model"
	"github.com/hitoshi/tabilog/internal/repository"
)

// デモユーザーの資格情報。
const (
	DemoUsername = "demouser"
	DemoEmail    = "demo@example.com"
	DemoPassword = "password123"
)

// AccountRegistrar はデモユーザーの作成に使うアカウント登録インターフェース。
type AccountRegistrar interface {
	Register(ctx context.Context, in auth.RegisterInput) (*auth.Result, error)
}

// Summary はシード実行結果の集計。
type Summary struct {
	LocationsCreated int
	LocationsSkipped int
	DemoUserCreated  bool
	DemoVisits       int
}

// visitPlan はカテゴリごとのデモ訪問の件数と評価の割り当て。
type visitPlan struct {
	category model.Category
	limit    int // 0は全件
	ratings  []int
	notes    map[int]string
}

// デモユーザーはナイトライフを好み、それ以外は控えめに評価する。
var demoVisitPlans = []visitPlan{
	{
		category: model.CategoryNightlife,
		ratings:  []int{5, 4},
		notes: map[int]string{
			5: "Amazing night at %s! The music and atmosphere were incredible. Definitely coming back!",
			4: "Great experience at %s. Good DJs and vibrant crowd.",
		},
	},
	{
		category: model.CategoryNature,
		limit:    10,
		ratings:  []int{3, 4},
		notes: map[int]string{
			3: "Nice place, but a bit too quiet for my taste. %s was pretty though.",
			4: "Beautiful scenery at %s. Worth the trip!",
		},
	},
	{
		category: model.CategoryFood,
		limit:    5,
		ratings:  []int{4, 3, 2},
		notes: map[int]string{
			4: "Good food at %s. Would recommend.",
			3: "Decent food at %s, but nothing special.",
			2: "Overpriced for what %s offers.",
		},
	},
	{
		category: model.CategoryCulture,
		limit:    5,
		ratings:  []int{3, 4},
		notes: map[int]string{
			3: "Visited %s with friends. Interesting place with rich history.",
			4: "Loved the architecture at %s. Took far too many photos.",
		},
	},
}

// Seeder は初期データの投入を行う。
type Seeder struct {
	locations repository.LocationRepository
	users     repository.UserRepository
	visits    repository.VisitRepository
	accounts  AccountRegistrar
	logger    *slog.Logger
}

// NewSeeder はSeederを生成する。
func NewSeeder(
	locations repository.LocationRepository,
	users repository.UserRepository,
	visits repository.VisitRepository,
	accounts AccountRegistrar,
	logger *slog.Logger,
) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{
		locations: locations,
		users:     users,
		visits:    visits,
		accounts:  accounts,
		logger:    logger,
	}
}

// Run はカタログを投入し、withDemoUserがtrueの場合はデモユーザーと訪問履歴も作成する。
func (s *Seeder) Run(ctx context.Context, withDemoUser bool) (*Summary, error) {
	summary := &Summary{}

	if err := s.seedLocations(ctx, summary); err != nil {
		return nil, err
	}
	if withDemoUser {
		if err := s.seedDemoUser(ctx, summary); err != nil {
			return nil, err
		}
	}

	s.logger.Info("seed completed",
		slog.Int("locations_created", summary.LocationsCreated),
		slog.Int("locations_skipped", summary.LocationsSkipped),
		slog.Bool("demo_user_created", summary.DemoUserCreated),
		slog.Int("demo_visits", summary.DemoVisits),
	)
	return summary, nil
}

func (s *Seeder) seedLocations(ctx context.Context, summary *Summary) error {
	for _, entry := range catalog {
		loc := entry.toLocation()
		created, err := s.locations.CreateIfNotExists(ctx, &loc)
		if err != nil {
			return fmt.Errorf("failed to seed location %q: %w", entry.Name, err)
		}
		if created {
			summary.LocationsCreated++
		} else {
			summary.LocationsSkipped++
		}
	}
	return nil
}

// seedDemoUser はデモユーザーが未作成の場合のみ作成し、訪問履歴を付与する。
func (s *Seeder) seedDemoUser(ctx context.Context, summary *Summary) error {
	existing, err := s.users.FindByUsername(ctx, DemoUsername)
	if err != nil {
		return fmt.Errorf("failed to look up demo user: %w", err)
	}
	if existing != nil {
		s.logger.Info("demo user already exists", slog.String("user_id", existing.ID))
		return nil
	}

	res, err := s.accounts.Register(ctx, auth.RegisterInput{
		Username: DemoUsername,
		Email:    DemoEmail,
		Password: DemoPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}
	summary.DemoUserCreated = true

	all, err := s.locations.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list locations: %w", err)
	}
	byCategory := make(map[model.Category][]model.Location)
	for _, loc := range all {
		byCategory[loc.Category] = append(byCategory[loc.Category], loc)
	}

	for _, plan := range demoVisitPlans {
		locs := byCategory[plan.category]
		if plan.limit > 0 && len(locs) > plan.limit {
			locs = locs[:plan.limit]
		}
		for i, loc := range locs {
			rating := plan.ratings[i%len(plan.ratings)]
			notes := fmt.Sprintf(plan.notes[rating], loc.Name)
			if _, _, err := s.visits.UpsertWithRating(ctx, res.User.ID, loc.ID, rating, &notes); err != nil {
				return fmt.Errorf("failed to seed demo visit for location %d: %w", loc.ID, err)
			}
			summary.DemoVisits++
		}
	}
	return nil
}
