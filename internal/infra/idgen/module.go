package idgen

import (
	"agrox/internal/domain/service"

	"go.uber.org/fx"
)

// Module provides the wall clock and the id generator built on it
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		func() service.Clock { return SystemClock{} },
		func(clock service.Clock) service.IDGenerator { return New(clock) },
	),
)
