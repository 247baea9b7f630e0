package impl

import (
	"context"
	"testing"
	"time"

	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/domain/wizard"
	"agrox/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (env *testEnv) wizardService() usecase.WizardUsecase {
	return NewWizardService(WizardServiceParams{
		ListingRepo: env.listings,
		SessionRepo: env.sessions,
		IDGen:       env.ids,
		Clock:       env.clock,
		Config:      env.cfg,
		Logger:      env.logger,
	})
}

func appleFields() map[string]string {
	return map[string]string{
		wizard.FieldTitle:       "Fresh Apples",
		wizard.FieldCategory:    "fruits",
		wizard.FieldQuantity:    "200",
		wizard.FieldUnit:        "kg",
		wizard.FieldPrice:       "2.25",
		wizard.FieldPriceUnit:   "kg",
		wizard.FieldLocation:    "Orchard Hills Farm",
		wizard.FieldDescription: "Crisp, hand-picked apples",
	}
}

// walk advances state to the review step, failing on any validation message.
func walk(t *testing.T, svc usecase.WizardUsecase, state wizard.State) wizard.State {
	t.Helper()

	for state.Step != wizard.StepReview {
		v, err := svc.Next(context.Background(), state)
		require.NoError(t, err)
		require.Empty(t, v.Errors)
		state = v.State
	}

	return state
}

func TestWizardService_BeginNew(t *testing.T) {
	env := newTestEnv(t)
	svc := env.wizardService()
	farmer := env.addUser(t, testFarmer, "Fay Farmer", entity.RoleFarmer)

	v, err := svc.Begin(context.Background(), farmer)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepBasic, v.State.Step)
	assert.Equal(t, "Basic Info", v.Step)
	assert.Empty(t, v.State.EditingID)
	assert.NotNil(t, v.Errors)
	assert.Equal(t, "Product Title", v.Preview.Title)
}

func TestWizardService_BeginRequiresListingRole(t *testing.T) {
	env := newTestEnv(t)
	svc := env.wizardService()
	buyer := env.addUser(t, testBuyer, "Bea Buyer", entity.RoleBuyer)

	_, err := svc.Begin(context.Background(), buyer)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = svc.Begin(context.Background(), nil)
	require.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)

	_, err = svc.Submit(context.Background(), buyer, wizard.State{Step: wizard.StepReview, Fields: appleFields()})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestWizardService_NextBlocksOnErrors(t *testing.T) {
	env := newTestEnv(t)
	svc := env.wizardService()

	v, err := svc.Next(context.Background(), wizard.State{Step: wizard.StepBasic})
	require.NoError(t, err)
	assert.Equal(t, wizard.StepBasic, v.State.Step)
	assert.NotEmpty(t, v.Errors)

	messages, err := svc.Validate(context.Background(), wizard.State{Fields: appleFields()}, wizard.StepPricing)
	require.NoError(t, err)
	assert.Empty(t, messages)

	v, err = svc.Prev(context.Background(), wizard.State{Step: wizard.StepDetails})
	require.NoError(t, err)
	assert.Equal(t, wizard.StepPricing, v.State.Step)
	assert.Equal(t, "Pricing", v.Step)
}

func TestWizardService_SubmitCreatesListing(t *testing.T) {
	env := newTestEnv(t)
	svc := env.wizardService()
	ctx := context.Background()
	farmer := env.addUser(t, testFarmer, "Fay Farmer", entity.RoleFarmer)

	state := walk(t, svc, wizard.State{Step: wizard.StepBasic, Fields: appleFields(), Certifications: []string{"Organic"}})

	v, err := svc.Preview(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, "200 kg", v.Preview.Quantity)
	assert.Equal(t, "Review", v.Step)

	listing, err := svc.Submit(ctx, farmer, state)
	require.NoError(t, err)
	assert.Equal(t, testFarmer, listing.Owner)
	assert.Equal(t, entity.ListingStatusActive, listing.Status)
	assert.Equal(t, []string{"Organic"}, listing.Certifications)

	stored, err := env.listings.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Apples", stored.Title)
	assert.InDelta(t, 2.25, stored.Price, 0)
}

func TestWizardService_SubmitRevalidatesBackEdits(t *testing.T) {
	env := newTestEnv(t)
	svc := env.wizardService()
	ctx := context.Background()
	farmer := env.addUser(t, testFarmer, "Fay Farmer", entity.RoleFarmer)

	state := walk(t, svc, wizard.State{Step: wizard.StepBasic, Fields: appleFields()})
	state.Fields[wizard.FieldDescription] = ""

	_, err := svc.Submit(ctx, farmer, state)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, []string{"Product description is required"}, validationMessages(t, err))

	all, err := env.listings.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestWizardService_SubmitOutsideReview(t *testing.T) {
	env := newTestEnv(t)
	farmer := env.addUser(t, testFarmer, "Fay Farmer", entity.RoleFarmer)

	_, err := env.wizardService().Submit(context.Background(), farmer, wizard.State{Step: wizard.StepDetails, Fields: appleFields()})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, []string{wizard.MsgIncomplete}, validationMessages(t, err))
}

func TestWizardService_EditKeepsIdentity(t *testing.T) {
	env := newTestEnv(t)
	svc := env.wizardService()
	listings := env.listingService()
	ctx := context.Background()
	farmer := env.addUser(t, testFarmer, "Fay Farmer", entity.RoleFarmer)
	original := env.addListing(t, "42", "Tomatoes", testFarmer, 3.5, 100)

	require.NoError(t, listings.MarkForEdit(ctx, farmer, original.ID))

	v, err := svc.Begin(ctx, farmer)
	require.NoError(t, err)
	assert.Equal(t, original.ID, v.State.EditingID)
	assert.Equal(t, "3.5", v.State.Fields[wizard.FieldPrice])

	// the edit mark is consumed
	again, err := svc.Begin(ctx, farmer)
	require.NoError(t, err)
	assert.Empty(t, again.State.EditingID)

	state := v.State
	state.Fields[wizard.FieldTitle] = "Heirloom Tomatoes"
	state = walk(t, svc, state)

	env.clock.Advance(time.Hour)
	edited, err := svc.Submit(ctx, farmer, state)
	require.NoError(t, err)
	assert.Equal(t, original.ID, edited.ID)
	assert.Equal(t, original.CreatedAt, edited.CreatedAt)

	all, err := env.listings.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Heirloom Tomatoes", all[0].Title)
}

func TestWizardService_EditForeignListing(t *testing.T) {
	env := newTestEnv(t)
	svc := env.wizardService()
	ctx := context.Background()
	farmer := env.addUser(t, testFarmer, "Fay Farmer", entity.RoleFarmer)
	foreign := env.addListing(t, "7", "Wheat", "farmer2@example.com", 245, 50)

	state := wizard.NewForEdit(foreign).State()
	state.Step = wizard.StepReview

	_, err := svc.Submit(ctx, farmer, state)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	require.NoError(t, env.sessions.SetEditListingID(ctx, foreign.ID))
	_, err = svc.Begin(ctx, farmer)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestWizardService_BeginWithDeletedListing(t *testing.T) {
	env := newTestEnv(t)
	farmer := env.addUser(t, testFarmer, "Fay Farmer", entity.RoleFarmer)
	require.NoError(t, env.sessions.SetEditListingID(context.Background(), "gone"))

	v, err := env.wizardService().Begin(context.Background(), farmer)
	require.NoError(t, err)
	assert.Empty(t, v.State.EditingID)
	assert.Equal(t, wizard.StepBasic, v.State.Step)
}
