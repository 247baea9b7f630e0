package store

import (
	"agrox/internal/infra/persistence/collection"

	"go.uber.org/fx"
)

// Module provides the collection store and every repository
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		collection.NewStore,
		NewListingRepository,
		NewRequestRepository,
		NewUserRepository,
		NewSessionRepository,
		NewFacilityRepository,
		NewServiceRepository,
		NewInquiryRepository,
		NewMessageRepository,
		NewNotificationRepository,
		NewBookmarkRepository,
	),
)
