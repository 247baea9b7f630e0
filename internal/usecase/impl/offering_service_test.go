package impl

import (
	"context"
	"testing"

	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testStorage   = "storage@example.com"
	testLogistics = "logistics@example.com"
)

func (env *testEnv) offeringParams() OfferingServiceParams {
	return OfferingServiceParams{
		FacilityRepo: env.facilities,
		ServiceRepo:  env.services,
		IDGen:        env.ids,
		Clock:        env.clock,
		Logger:       env.logger,
	}
}

func coldRoom() *usecase.FacilityInput {
	return &usecase.FacilityInput{
		Name:        " Cold Room A ",
		Type:        "cold",
		Price:       15,
		Location:    "Port District",
		Capacity:    ptr(40.0),
		Temperature: "2-4C",
	}
}

func truckRoute() *usecase.ServiceInput {
	return &usecase.ServiceInput{
		Title: "Refrigerated Truck",
		Type:  "truck",
		Price: 120,
		From:  "Northern Region",
		To:    "Capital City",
	}
}

func TestFacilityService_CRUD(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFacilityService(env.offeringParams())
	ctx := context.Background()
	owner := env.addUser(t, testStorage, "Sam Storage", entity.RoleStorage)
	other := env.addUser(t, "storage2@example.com", "Sid Storage", entity.RoleStorage)

	facility, err := svc.Create(ctx, owner, coldRoom())
	require.NoError(t, err)
	assert.Equal(t, "Cold Room A", facility.Name)
	assert.Equal(t, testStorage, facility.Owner)

	mine, err := svc.ListMine(ctx, owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	theirs, err := svc.ListMine(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	update := coldRoom()
	update.Price = 18
	_, err = svc.Update(ctx, other, facility.ID, update)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	updated, err := svc.Update(ctx, owner, facility.ID, update)
	require.NoError(t, err)
	assert.Equal(t, facility.ID, updated.ID)
	assert.InDelta(t, 18, updated.Price, 0)

	got, err := svc.Get(ctx, facility.ID)
	require.NoError(t, err)
	assert.InDelta(t, 18, got.Price, 0)

	require.ErrorIs(t, svc.Delete(ctx, other, facility.ID), domainerrors.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, owner, facility.ID))

	_, err = svc.Get(ctx, facility.ID)
	require.ErrorIs(t, err, domainerrors.ErrFacilityNotFound)
}

func TestFacilityService_Validation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFacilityService(env.offeringParams())
	owner := env.addUser(t, testStorage, "Sam Storage", entity.RoleStorage)

	_, err := svc.Create(context.Background(), owner, &usecase.FacilityInput{
		Name:     "   ",
		Price:    0,
		Location: "Port District",
		Capacity: ptr(-1.0),
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, []string{
		"Facility name is required",
		"Facility type is required",
		"Valid price is required",
		"Capacity must be positive",
	}, validationMessages(t, err))
}

func TestFacilityService_RequiresStorageRole(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFacilityService(env.offeringParams())
	farmer := env.addUser(t, testFarmer, "Fay Farmer", entity.RoleFarmer)

	_, err := svc.Create(context.Background(), farmer, coldRoom())
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = svc.Create(context.Background(), nil, coldRoom())
	require.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)
}

func TestServiceService_CRUD(t *testing.T) {
	env := newTestEnv(t)
	svc := NewServiceService(env.offeringParams())
	ctx := context.Background()
	owner := env.addUser(t, testLogistics, "Lou Logistics", entity.RoleLogistics)
	storage := env.addUser(t, testStorage, "Sam Storage", entity.RoleStorage)

	_, err := svc.Create(ctx, storage, truckRoute())
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	created, err := svc.Create(ctx, owner, truckRoute())
	require.NoError(t, err)
	assert.Equal(t, testLogistics, created.Owner)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Refrigerated Truck", all[0].Title)

	update := truckRoute()
	update.To = "Harbor"
	updated, err := svc.Update(ctx, owner, created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Harbor", updated.To)

	require.NoError(t, svc.Delete(ctx, owner, created.ID))
	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestServiceService_Validation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewServiceService(env.offeringParams())
	owner := env.addUser(t, testLogistics, "Lou Logistics", entity.RoleLogistics)

	in := truckRoute()
	in.From = ""
	in.To = " "
	_, err := svc.Create(context.Background(), owner, in)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, []string{"Origin is required", "Destination is required"}, validationMessages(t, err))
}
