package wizard

import (
	"strings"
	"testing"
	"time"

	"agrox/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() map[string]string {
	return map[string]string{
		FieldTitle:       "Fresh Apples",
		FieldCategory:    "fruits",
		FieldQuantity:    "200",
		FieldUnit:        "kg",
		FieldPrice:       "2.25",
		FieldPriceUnit:   "kg",
		FieldLocation:    "Orchard Hills Farm",
		FieldDescription: "Crisp, hand-picked apples",
	}
}

func newFilled(t *testing.T, fields map[string]string) *Wizard {
	t.Helper()

	w := New()
	for field, value := range fields {
		require.NoError(t, w.Set(field, value))
	}

	return w
}

func advanceToReview(t *testing.T, w *Wizard) {
	t.Helper()

	for w.CurrentStep() < StepReview {
		require.Empty(t, w.Next())
	}
}

func TestNew_StartsAtBasic(t *testing.T) {
	w := New()

	assert.Equal(t, StepBasic, w.CurrentStep())
	assert.Empty(t, w.Fields())
	assert.False(t, w.Editing())
}

func TestValidate_ValidInputIsEmpty(t *testing.T) {
	w := newFilled(t, validFields())

	for _, step := range []Step{StepBasic, StepPricing, StepDetails, StepReview} {
		messages := w.Validate(step)
		assert.NotNil(t, messages)
		assert.Empty(t, messages, "step %s", step)
	}
}

func TestValidate_EachOmittedFieldYieldsExactlyItsMessage(t *testing.T) {
	tests := []struct {
		step    Step
		field   string
		message string
	}{
		{step: StepBasic, field: FieldTitle, message: "Product title is required"},
		{step: StepBasic, field: FieldCategory, message: "Category is required"},
		{step: StepBasic, field: FieldQuantity, message: "Valid quantity is required"},
		{step: StepBasic, field: FieldUnit, message: "Unit is required"},
		{step: StepPricing, field: FieldPrice, message: "Valid price is required"},
		{step: StepPricing, field: FieldPriceUnit, message: "Price unit is required"},
		{step: StepDetails, field: FieldDescription, message: "Product description is required"},
		{step: StepDetails, field: FieldLocation, message: "Location is required"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			fields := validFields()
			delete(fields, tt.field)
			w := newFilled(t, fields)

			assert.Equal(t, []string{tt.message}, w.Validate(tt.step))
		})
	}
}

func TestValidate_OrderFollowsTable(t *testing.T) {
	w := New()

	assert.Equal(t, []string{
		"Product title is required",
		"Category is required",
		"Valid quantity is required",
		"Unit is required",
	}, w.Validate(StepBasic))
	assert.Equal(t, []string{"Valid price is required", "Price unit is required"}, w.Validate(StepPricing))
	assert.Equal(t, []string{"Product description is required", "Location is required"}, w.Validate(StepDetails))
}

func TestValidate_FieldRules(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		step  Step
		valid bool
	}{
		{name: "blank title", field: FieldTitle, value: "   ", step: StepBasic},
		{name: "zero quantity", field: FieldQuantity, value: "0", step: StepBasic},
		{name: "negative quantity", field: FieldQuantity, value: "-3", step: StepBasic},
		{name: "non numeric quantity", field: FieldQuantity, value: "lots", step: StepBasic},
		{name: "fractional quantity", field: FieldQuantity, value: "0.5", step: StepBasic, valid: true},
		{name: "zero price", field: FieldPrice, value: "0", step: StepPricing},
		{name: "NaN price", field: FieldPrice, value: "NaN", step: StepPricing},
		{name: "price with spaces", field: FieldPrice, value: " 3.50 ", step: StepPricing, valid: true},
		{name: "blank location", field: FieldLocation, value: "\t", step: StepDetails},
		{name: "blank description", field: FieldDescription, value: " \n ", step: StepDetails},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			fields[tt.field] = tt.value
			w := newFilled(t, fields)

			assert.Equal(t, tt.valid, len(w.Validate(tt.step)) == 0)
		})
	}
}

func TestNext_NeverAdvancesWithErrors(t *testing.T) {
	fields := validFields()
	delete(fields, FieldPriceUnit)
	w := newFilled(t, fields)

	assert.Empty(t, w.Next())
	assert.Equal(t, StepPricing, w.CurrentStep())

	for range 3 {
		assert.Equal(t, []string{"Price unit is required"}, w.Next())
		assert.Equal(t, StepPricing, w.CurrentStep())
	}

	require.NoError(t, w.Set(FieldPriceUnit, "kg"))
	assert.Empty(t, w.Next())
	assert.Equal(t, StepDetails, w.CurrentStep())
}

func TestNext_NoOpAtReview(t *testing.T) {
	w := newFilled(t, validFields())
	advanceToReview(t, w)

	assert.Empty(t, w.Next())
	assert.Equal(t, StepReview, w.CurrentStep())
}

func TestPrev_DecrementsWithoutTouchingFields(t *testing.T) {
	w := newFilled(t, validFields())
	advanceToReview(t, w)
	before := w.Fields()

	for want := StepDetails; want >= StepBasic; want-- {
		w.Prev()
		assert.Equal(t, want, w.CurrentStep())
		assert.Equal(t, before, w.Fields())
	}

	w.Prev()
	assert.Equal(t, StepBasic, w.CurrentStep())
	assert.Equal(t, before, w.Fields())
}

func TestPrev_DoesNotRevalidate(t *testing.T) {
	w := newFilled(t, validFields())
	require.Empty(t, w.Next())
	require.NoError(t, w.Set(FieldTitle, ""))

	w.Prev()
	assert.Equal(t, StepBasic, w.CurrentStep())
}

func TestSet_UnknownField(t *testing.T) {
	w := New()

	require.ErrorIs(t, w.Set("colour", "red"), ErrUnknownField)
	assert.Empty(t, w.Fields())
}

func TestFields_ReturnsCopy(t *testing.T) {
	w := newFilled(t, validFields())

	fields := w.Fields()
	fields[FieldTitle] = "changed"

	assert.Equal(t, "Fresh Apples", w.Fields()[FieldTitle])
}

func TestSubmit_OnlyFromReview(t *testing.T) {
	w := newFilled(t, validFields())

	listing, messages := w.Submit(SubmitInput{Owner: "f@farm.test", ID: "1", Now: time.Now()})
	assert.Nil(t, listing)
	assert.Equal(t, []string{MsgIncomplete}, messages)
}

func TestSubmit_FreshApplesWithEmptyDescriptionIsRejected(t *testing.T) {
	w := newFilled(t, validFields())
	advanceToReview(t, w)

	// back-edit from the review step
	require.NoError(t, w.Set(FieldDescription, ""))
	assert.Empty(t, w.Validate(StepBasic))
	assert.Empty(t, w.Validate(StepPricing))

	listing, messages := w.Submit(SubmitInput{Owner: "f@farm.test", ID: "1", Now: time.Now()})
	assert.Nil(t, listing)
	assert.Equal(t, []string{"Product description is required"}, messages)
}

func TestSubmit_RestoredStateRevalidates(t *testing.T) {
	fields := validFields()
	fields[FieldDescription] = ""
	w := Restore(State{Step: StepReview, Fields: fields}, nil)

	require.Equal(t, StepReview, w.CurrentStep())
	listing, messages := w.Submit(SubmitInput{Owner: "f@farm.test", ID: "1", Now: time.Now()})
	assert.Nil(t, listing)
	assert.Equal(t, []string{"Product description is required"}, messages)
}

func TestSubmit_BuildsListing(t *testing.T) {
	fields := validFields()
	fields[FieldMinOrder] = "10"
	w := newFilled(t, fields)
	w.SetCertifications([]string{"Organic"})
	advanceToReview(t, w)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	listing, messages := w.Submit(SubmitInput{Owner: "f@farm.test", ID: "1714557600000", Now: now})
	require.Empty(t, messages)
	require.NotNil(t, listing)

	assert.Equal(t, "1714557600000", listing.ID)
	assert.Equal(t, "Fresh Apples", listing.Title)
	assert.Equal(t, "fruits", listing.Category)
	assert.InDelta(t, 2.25, listing.Price, 0)
	assert.InDelta(t, 200, listing.Quantity, 0)
	require.NotNil(t, listing.MinOrder)
	assert.InDelta(t, 10, *listing.MinOrder, 0)
	assert.Equal(t, []string{"Organic"}, listing.Certifications)
	assert.Equal(t, "f@farm.test", listing.Owner)
	assert.Equal(t, now, listing.CreatedAt)
	assert.Equal(t, entity.ListingStatusActive, listing.Status)
}

func TestSubmit_WithoutMinOrder(t *testing.T) {
	w := newFilled(t, validFields())
	advanceToReview(t, w)

	listing, messages := w.Submit(SubmitInput{Owner: "f@farm.test", ID: "1", Now: time.Now()})
	require.Empty(t, messages)
	assert.Nil(t, listing.MinOrder)
	assert.NotNil(t, listing.Certifications)
}

func TestNewForEdit_PrepopulatesAndKeepsIdentity(t *testing.T) {
	created := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	minOrder := 5.0
	original := &entity.Listing{
		ID:             "1672628645000",
		Title:          "Maize",
		Category:       "grains",
		Price:          3.5,
		PriceUnit:      "$ per kg",
		Unit:           "kg",
		Quantity:       100,
		MinOrder:       &minOrder,
		Location:       "Nakuru",
		Description:    "Dry maize",
		Certifications: []string{"Organic"},
		Owner:          "f@farm.test",
		CreatedAt:      created,
		Status:         entity.ListingStatusActive,
	}

	w := NewForEdit(original)
	assert.Equal(t, StepBasic, w.CurrentStep())
	assert.True(t, w.Editing())
	assert.Equal(t, "Maize", w.Fields()[FieldTitle])
	assert.Equal(t, "3.5", w.Fields()[FieldPrice])
	assert.Equal(t, "100", w.Fields()[FieldQuantity])
	assert.Equal(t, "5", w.Fields()[FieldMinOrder])

	require.NoError(t, w.Set(FieldPrice, "4"))
	advanceToReview(t, w)

	listing, messages := w.Submit(SubmitInput{Owner: "f@farm.test", ID: "new-id", Now: time.Now()})
	require.Empty(t, messages)
	assert.Equal(t, original.ID, listing.ID)
	assert.Equal(t, created, listing.CreatedAt)
	assert.InDelta(t, 4, listing.Price, 0)
	assert.InDelta(t, 3.5, original.Price, 0)
}

func TestStateRoundTrip(t *testing.T) {
	original := &entity.Listing{ID: "7", Title: "Beans", CreatedAt: time.Unix(0, 0)}
	w := NewForEdit(original)
	w.SetCertifications([]string{"GAP"})

	state := w.State()
	assert.Equal(t, "7", state.EditingID)

	restored := Restore(state, original)
	assert.True(t, restored.Editing())
	assert.Equal(t, w.Fields(), restored.Fields())
	assert.Equal(t, []string{"GAP"}, restored.State().Certifications)

	mismatched := Restore(state, &entity.Listing{ID: "8"})
	assert.False(t, mismatched.Editing())
}

func TestRestore_IgnoresInvalidStepAndUnknownFields(t *testing.T) {
	w := Restore(State{Step: 9, Fields: map[string]string{"colour": "red", FieldUnit: "kg"}}, nil)

	assert.Equal(t, StepBasic, w.CurrentStep())
	assert.Equal(t, map[string]string{FieldUnit: "kg"}, w.Fields())
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "Basic Info", StepBasic.String())
	assert.Equal(t, "Review", StepReview.String())
	assert.Equal(t, "Step(7)", Step(7).String())
}

func TestSteps_TableCoversEveryStep(t *testing.T) {
	require.Len(t, Steps, 4)
	for i, def := range Steps {
		assert.Equal(t, Step(i+1), def.Step)
		assert.NotEmpty(t, def.Name)
		for _, rule := range def.Rules {
			assert.True(t, knownFields[rule.Field], rule.Field)
		}
	}
	assert.Empty(t, Steps[3].Rules)
	assert.True(t, strings.HasPrefix(Steps[0].Rules[0].Message, "Product title"))
}
