package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"agrox/config"
	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/domain/repository"
	"agrox/internal/infra/idgen"
	"agrox/internal/infra/metrics"
	"agrox/internal/infra/persistence/collection"
	"agrox/internal/infra/persistence/memory"
	"agrox/internal/infra/persistence/store"
	"agrox/internal/usecase"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testClock is a settable clock.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestConfig() *config.Config {
	return &config.Config{
		Notification: &config.NotificationConfig{BadgeCap: 99, DropdownLimit: 10},
		Wizard:       &config.WizardConfig{PreviewDescriptionLimit: 50},
		Seed:         &config.SeedConfig{Enabled: true, OwnerPassword: "Secret123"},
	}
}

// testEnv wires every repository on an in-memory backend.
type testEnv struct {
	cfg     *config.Config
	logger  *slog.Logger
	clock   *testClock
	ids     *idgen.Generator
	metrics *metrics.Metrics

	listings      repository.ListingRepository
	requests      repository.RequestRepository
	users         repository.UserRepository
	sessions      repository.SessionRepository
	facilities    repository.FacilityRepository
	services      repository.ServiceRepository
	inquiries     repository.InquiryRepository
	messages      repository.MessageRepository
	notifications repository.NotificationRepository
	bookmarks     repository.BookmarkRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	clock := &testClock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
	m := metrics.New()
	logger := newDiscardLogger()
	s := collection.NewStore(collection.Params{KV: memory.New(), Logger: logger, Metrics: m})

	return &testEnv{
		cfg:           newTestConfig(),
		logger:        logger,
		clock:         clock,
		ids:           idgen.New(clock),
		metrics:       m,
		listings:      store.NewListingRepository(s),
		requests:      store.NewRequestRepository(s),
		users:         store.NewUserRepository(s),
		sessions:      store.NewSessionRepository(s),
		facilities:    store.NewFacilityRepository(s),
		services:      store.NewServiceRepository(s),
		inquiries:     store.NewInquiryRepository(s),
		messages:      store.NewMessageRepository(s),
		notifications: store.NewNotificationRepository(s),
		bookmarks:     store.NewBookmarkRepository(s),
	}
}

func (env *testEnv) resolver() usecase.ResolverUsecase {
	return NewResolverService(ResolverServiceParams{
		UserRepo:     env.users,
		ListingRepo:  env.listings,
		FacilityRepo: env.facilities,
		ServiceRepo:  env.services,
	})
}

func (env *testEnv) notificationService() usecase.NotificationUsecase {
	return NewNotificationService(NotificationServiceParams{
		NotificationRepo: env.notifications,
		IDGen:            env.ids,
		Clock:            env.clock,
		Metrics:          env.metrics,
		Config:           env.cfg,
		Logger:           env.logger,
	})
}

func (env *testEnv) requestService(notifier usecase.NotificationUsecase) usecase.RequestUsecase {
	return NewRequestService(RequestServiceParams{
		RequestRepo:     env.requests,
		ListingRepo:     env.listings,
		UserRepo:        env.users,
		Resolver:        env.resolver(),
		NotificationSvc: notifier,
		IDGen:           env.ids,
		Clock:           env.clock,
		Logger:          env.logger,
	})
}

func (env *testEnv) listingService() usecase.ListingUsecase {
	return NewListingService(ListingServiceParams{
		ListingRepo: env.listings,
		RequestRepo: env.requests,
		UserRepo:    env.users,
		SessionRepo: env.sessions,
		Clock:       env.clock,
		Config:      env.cfg,
		Logger:      env.logger,
	})
}

// addUser registers a user directly and returns its session.
func (env *testEnv) addUser(t *testing.T, email, name string, role entity.Role) *entity.Session {
	t.Helper()

	user := &entity.User{Email: email, Password: "Secret123", Role: role, Name: name, CreatedAt: env.clock.Now()}
	require.NoError(t, env.users.Create(context.Background(), user))

	return entity.NewSession(user, env.clock.Now())
}

// addListing stores a listing owned by owner.
func (env *testEnv) addListing(t *testing.T, id, title, owner string, price, quantity float64) *entity.Listing {
	t.Helper()

	listing := &entity.Listing{
		ID:             id,
		Title:          title,
		Category:       "vegetables",
		Price:          price,
		PriceUnit:      "kg",
		Unit:           "kg",
		Quantity:       quantity,
		Location:       "Northern Region",
		Description:    title + " description",
		Certifications: []string{},
		Owner:          owner,
		CreatedAt:      env.clock.Now(),
		Status:         entity.ListingStatusActive,
	}
	require.NoError(t, env.listings.Save(context.Background(), listing))

	return listing
}

func validationMessages(t *testing.T, err error) []string {
	t.Helper()

	messages, ok := domainerrors.ValidationMessages(err)
	require.True(t, ok, "expected a validation error, got %v", err)

	return messages
}
