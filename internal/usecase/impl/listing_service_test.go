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

func ptr[T any](v T) *T {
	return &v
}

func titles(listings []*entity.Listing) []string {
	result := make([]string, 0, len(listings))
	for _, l := range listings {
		result = append(result, l.Title)
	}

	return result
}

func TestListingService_Browse(t *testing.T) {
	env := newTestEnv(t)
	svc := env.listingService()
	ctx := context.Background()

	env.addListing(t, "1000", "Tomatoes", testFarmer, 3, 500)
	corn := env.addListing(t, "3000", "Sweet Corn", testFarmer, 1.2, 80)
	corn.Category = "grains"
	corn.Location = "Western Region"
	require.NoError(t, env.listings.Save(ctx, corn))
	honey := env.addListing(t, "2000", "Wildflower Honey", "seller@example.com", 12, 40)
	honey.Category = "other"
	honey.Certifications = []string{"Organic", "Fair Trade"}
	require.NoError(t, env.listings.Save(ctx, honey))

	tests := []struct {
		name   string
		filter *usecase.BrowseFilter
		want   []string
	}{
		{
			name:   "nil filter sorts newest first",
			filter: nil,
			want:   []string{"Sweet Corn", "Wildflower Honey", "Tomatoes"},
		},
		{
			name:   "category all",
			filter: &usecase.BrowseFilter{Category: "all"},
			want:   []string{"Sweet Corn", "Wildflower Honey", "Tomatoes"},
		},
		{
			name:   "category",
			filter: &usecase.BrowseFilter{Category: "grains"},
			want:   []string{"Sweet Corn"},
		},
		{
			name:   "location substring ignores case",
			filter: &usecase.BrowseFilter{Location: "western"},
			want:   []string{"Sweet Corn"},
		},
		{
			name:   "price range",
			filter: &usecase.BrowseFilter{MinPrice: ptr(2.0), MaxPrice: ptr(12.0), Sort: usecase.SortPriceLow},
			want:   []string{"Tomatoes", "Wildflower Honey"},
		},
		{
			name:   "minimum quantity",
			filter: &usecase.BrowseFilter{MinQuantity: ptr(50.0)},
			want:   []string{"Sweet Corn", "Tomatoes"},
		},
		{
			name:   "certifications require all",
			filter: &usecase.BrowseFilter{Certifications: []string{"organic", "fair trade"}},
			want:   []string{"Wildflower Honey"},
		},
		{
			name:   "query matches title",
			filter: &usecase.BrowseFilter{Query: "HONEY"},
			want:   []string{"Wildflower Honey"},
		},
		{
			name:   "query matches owner",
			filter: &usecase.BrowseFilter{Query: "seller@"},
			want:   []string{"Wildflower Honey"},
		},
		{
			name:   "price high to low",
			filter: &usecase.BrowseFilter{Sort: usecase.SortPriceHigh},
			want:   []string{"Wildflower Honey", "Tomatoes", "Sweet Corn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Browse(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestListingService_DeleteOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	svc := env.listingService()
	ctx := context.Background()

	owner := env.addUser(t, testFarmer, "Fay Farmer", entity.RoleFarmer)
	other := env.addUser(t, "farmer2@example.com", "Finn Farmer", entity.RoleFarmer)
	listing := env.addListing(t, "1", "Tomatoes", testFarmer, 3, 500)

	err := svc.Delete(ctx, other, listing.ID)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	require.NoError(t, svc.Delete(ctx, owner, listing.ID))

	_, err = svc.Get(ctx, listing.ID)
	require.ErrorIs(t, err, domainerrors.ErrListingNotFound)

	err = svc.Delete(ctx, owner, listing.ID)
	require.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestListingService_ListMine(t *testing.T) {
	env := newTestEnv(t)
	svc := env.listingService()
	ctx := context.Background()

	owner := env.addUser(t, testFarmer, "Fay Farmer", entity.RoleFarmer)
	env.addListing(t, "1", "Tomatoes", testFarmer, 3, 500)
	env.addListing(t, "2", "Wheat", "farmer2@example.com", 245, 50)

	mine, err := svc.ListMine(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tomatoes"}, titles(mine))

	_, err = svc.ListMine(ctx, nil)
	require.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)
}

func TestListingService_Stats(t *testing.T) {
	env := newTestEnv(t)
	svc := env.listingService()
	requests := env.requestService(env.notificationService())
	ctx := context.Background()

	farmer := env.addUser(t, testFarmer, "Fay Farmer", entity.RoleFarmer)
	buyer := env.addUser(t, testBuyer, "Bea Buyer", entity.RoleBuyer)
	tomatoes := env.addListing(t, "1", "Tomatoes", testFarmer, 2.5, 500)
	wheat := env.addListing(t, "2", "Wheat", testFarmer, 10, 50)

	create := func(listingID string, quantity int) *entity.Request {
		r, err := requests.Create(ctx, buyer, &usecase.CreateRequestInput{ListingID: listingID, Quantity: quantity})
		require.NoError(t, err)

		return r
	}

	approved := create(tomatoes.ID, 10)
	declined := create(tomatoes.ID, 5)
	create(wheat.ID, 1)
	orphan := create(wheat.ID, 3)

	_, err := requests.Approve(ctx, farmer, approved.ID)
	require.NoError(t, err)
	_, err = requests.Decline(ctx, farmer, declined.ID)
	require.NoError(t, err)
	_, err = requests.Approve(ctx, farmer, orphan.ID)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, farmer)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalListings)
	assert.Equal(t, 2, stats.ActiveListings)
	assert.Equal(t, 4, stats.TotalRequests)
	assert.Equal(t, 1, stats.PendingRequests)
	assert.Equal(t, 2, stats.ApprovedRequests)
	assert.InDelta(t, 55.0, stats.TotalEarnings, 1e-9)

	// approved requests on a deleted listing no longer earn
	require.NoError(t, env.listings.Delete(ctx, wheat.ID))
	stats, err = svc.Stats(ctx, farmer)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, stats.TotalEarnings, 1e-9)
}

func TestListingService_MarkForEdit(t *testing.T) {
	env := newTestEnv(t)
	svc := env.listingService()
	ctx := context.Background()

	owner := env.addUser(t, testFarmer, "Fay Farmer", entity.RoleFarmer)
	buyer := env.addUser(t, testBuyer, "Bea Buyer", entity.RoleBuyer)
	listing := env.addListing(t, "1", "Tomatoes", testFarmer, 3, 500)

	require.ErrorIs(t, svc.MarkForEdit(ctx, buyer, listing.ID), domainerrors.ErrForbidden)
	require.NoError(t, svc.MarkForEdit(ctx, owner, listing.ID))

	id, err := env.sessions.ConsumeEditListingID(ctx)
	require.NoError(t, err)
	assert.Equal(t, listing.ID, id)
}

func TestListingService_SeedSamples(t *testing.T) {
	t.Run("seeds an empty marketplace once", func(t *testing.T) {
		env := newTestEnv(t)
		svc := env.listingService()
		ctx := context.Background()

		seeded, err := svc.SeedSamples(ctx)
		require.NoError(t, err)
		assert.True(t, seeded)

		seeded, err = svc.SeedSamples(ctx)
		require.NoError(t, err)
		assert.False(t, seeded)

		all, err := svc.Browse(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Premium Wheat", "Fresh Organic Tomatoes"}, titles(all))

		for _, email := range []string{"farmer@example.com", "farmer2@example.com"} {
			owner, err := env.users.FindByEmail(ctx, email)
			require.NoError(t, err)
			assert.Equal(t, entity.RoleFarmer, owner.Role)
			assert.Equal(t, "Secret123", owner.Password)
		}
	})

	t.Run("seeded listings accept requests", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()
		buyer := env.addUser(t, testBuyer, "Bea Buyer", entity.RoleBuyer)

		_, err := env.listingService().SeedSamples(ctx)
		require.NoError(t, err)

		request, err := env.requestService(env.notificationService()).Create(ctx, buyer, &usecase.CreateRequestInput{ListingID: "2", Quantity: 3})
		require.NoError(t, err)
		assert.Equal(t, "farmer2@example.com", request.Provider)
	})

	t.Run("keeps registered owners", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()
		env.addUser(t, testFarmer, "Fay Farmer", entity.RoleFarmer)

		_, err := env.listingService().SeedSamples(ctx)
		require.NoError(t, err)

		owner, err := env.users.FindByEmail(ctx, testFarmer)
		require.NoError(t, err)
		assert.Equal(t, "Fay Farmer", owner.Name)
	})

	t.Run("keeps existing listings", func(t *testing.T) {
		env := newTestEnv(t)
		svc := env.listingService()
		env.addListing(t, "5", "Honey", testFarmer, 12, 40)

		seeded, err := svc.SeedSamples(context.Background())
		require.NoError(t, err)
		assert.False(t, seeded)
	})

	t.Run("disabled", func(t *testing.T) {
		env := newTestEnv(t)
		env.cfg.Seed.Enabled = false

		seeded, err := env.listingService().SeedSamples(context.Background())
		require.NoError(t, err)
		assert.False(t, seeded)

		_, err = env.users.FindByEmail(context.Background(), testFarmer)
		require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
