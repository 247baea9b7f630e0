package impl

import (
	"context"
	"testing"
	"time"

	"agrox/internal/domain/constants"
	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (env *testEnv) inquiryService(notifier usecase.NotificationUsecase) usecase.InquiryUsecase {
	return NewInquiryService(InquiryServiceParams{
		InquiryRepo:     env.inquiries,
		FacilityRepo:    env.facilities,
		ServiceRepo:     env.services,
		UserRepo:        env.users,
		Resolver:        env.resolver(),
		NotificationSvc: notifier,
		IDGen:           env.ids,
		Clock:           env.clock,
		Logger:          env.logger,
	})
}

type inquiryFixture struct {
	env       *testEnv
	provider  *entity.Session
	carrier   *entity.Session
	customer  *entity.Session
	facility  *entity.Facility
	transport *entity.Service
}

// newInquiryFixture registers a storage account with a facility and a
// logistics account with a service.
func newInquiryFixture(t *testing.T) *inquiryFixture {
	t.Helper()

	env := newTestEnv(t)
	ctx := context.Background()
	f := &inquiryFixture{
		env:      env,
		provider: env.addUser(t, testStorage, "Sam Storage", entity.RoleStorage),
		carrier:  env.addUser(t, testLogistics, "Lou Logistics", entity.RoleLogistics),
		customer: env.addUser(t, testFarmer, "Fay Farmer", entity.RoleFarmer),
		facility: &entity.Facility{ID: "f1", Name: "Cold Room A", Type: "cold", Price: 15, Location: "Port", Owner: testStorage},
		transport: &entity.Service{
			ID:    "s1",
			Title: "Refrigerated Truck",
			Type:  "truck",
			Price: 120,
			From:  "North",
			To:    "Port",
			Owner: testLogistics,
		},
	}
	require.NoError(t, env.facilities.Save(ctx, f.facility))
	require.NoError(t, env.services.Save(ctx, f.transport))

	return f
}

func TestInquiryService_NotifiesProvider(t *testing.T) {
	f := newInquiryFixture(t)
	notifications := f.env.notificationService()
	svc := f.env.inquiryService(notifications)
	ctx := context.Background()

	inquiry, err := svc.InquireFacility(ctx, f.customer, f.facility.ID, "  Space for 5 tons?  ")
	require.NoError(t, err)
	assert.Equal(t, f.facility.ID, inquiry.FacilityID)
	assert.Equal(t, "Space for 5 tons?", inquiry.Message)
	assert.Equal(t, entity.InquiryStorage, inquiry.Kind())

	list, err := notifications.List(ctx, f.provider, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, constants.NotificationNewInquiry, list[0].Type)
	assert.Equal(t, "Fay Farmer sent an inquiry about Cold Room A", list[0].Message)
	assert.Equal(t, inquiry.ID, list[0].RelatedID)
}

func TestInquiryService_ListIncoming(t *testing.T) {
	f := newInquiryFixture(t)
	svc := f.env.inquiryService(f.env.notificationService())
	ctx := context.Background()

	first, err := svc.InquireFacility(ctx, f.customer, f.facility.ID, "storage")
	require.NoError(t, err)
	f.env.clock.Advance(time.Minute)
	logistics, err := svc.InquireService(ctx, f.customer, f.transport.ID, "transport")
	require.NoError(t, err)
	f.env.clock.Advance(time.Minute)
	second, err := svc.InquireFacility(ctx, f.customer, f.facility.ID, "more storage")
	require.NoError(t, err)

	incoming, err := svc.ListIncoming(ctx, f.provider)
	require.NoError(t, err)
	require.Len(t, incoming, 2)
	assert.Equal(t, second.ID, incoming[0].Inquiry.ID)
	assert.Equal(t, first.ID, incoming[1].Inquiry.ID)
	assert.Equal(t, entity.InquiryStorage, incoming[1].Kind)
	assert.Equal(t, "Cold Room A", incoming[1].TargetTitle)
	assert.Equal(t, "Fay Farmer", incoming[1].CustomerName)

	carried, err := svc.ListIncoming(ctx, f.carrier)
	require.NoError(t, err)
	require.Len(t, carried, 1)
	assert.Equal(t, logistics.ID, carried[0].Inquiry.ID)
	assert.Equal(t, entity.InquiryLogistics, carried[0].Kind)
	assert.Equal(t, "Refrigerated Truck", carried[0].TargetTitle)

	// deleted offerings fall back to a placeholder title
	require.NoError(t, f.env.facilities.Delete(ctx, f.facility.ID))
	require.NoError(t, f.env.services.Delete(ctx, f.transport.ID))

	incoming, err = svc.ListIncoming(ctx, f.provider)
	require.NoError(t, err)
	require.Len(t, incoming, 2)
	assert.Equal(t, entity.UnknownFacility, incoming[0].TargetTitle)

	carried, err = svc.ListIncoming(ctx, f.carrier)
	require.NoError(t, err)
	require.Len(t, carried, 1)
	assert.Equal(t, entity.UnknownService, carried[0].TargetTitle)
}

func TestInquiryService_Errors(t *testing.T) {
	f := newInquiryFixture(t)
	svc := f.env.inquiryService(f.env.notificationService())
	ctx := context.Background()

	_, err := svc.InquireService(ctx, f.customer, "missing", "hi")
	require.ErrorIs(t, err, domainerrors.ErrServiceNotFound)

	_, err = svc.InquireFacility(ctx, nil, f.facility.ID, "hi")
	require.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)

	orphan := &entity.Facility{ID: "f2", Name: "Old Barn", Owner: "gone@example.com"}
	require.NoError(t, f.env.facilities.Save(ctx, orphan))
	_, err = svc.InquireFacility(ctx, f.customer, orphan.ID, "hi")
	require.ErrorIs(t, err, domainerrors.ErrProviderNotFound)

	// offerings held by accounts of the wrong role are not inquirable
	misfiled := &entity.Service{ID: "s2", Title: "Barn Van", Owner: testStorage}
	require.NoError(t, f.env.services.Save(ctx, misfiled))
	_, err = svc.InquireService(ctx, f.customer, misfiled.ID, "hi")
	require.ErrorIs(t, err, domainerrors.ErrProviderNotFound)

	held := &entity.Facility{ID: "f3", Name: "Truck Depot", Owner: testLogistics}
	require.NoError(t, f.env.facilities.Save(ctx, held))
	_, err = svc.InquireFacility(ctx, f.customer, held.ID, "hi")
	require.ErrorIs(t, err, domainerrors.ErrProviderNotFound)

	incoming, err := svc.ListIncoming(ctx, f.provider)
	require.NoError(t, err)
	assert.Empty(t, incoming)

	carried, err := svc.ListIncoming(ctx, f.carrier)
	require.NoError(t, err)
	assert.Empty(t, carried)
}
