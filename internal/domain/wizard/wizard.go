package wizard

import (
	"maps"
	"slices"
	"strings"
	"time"

	"agrox/internal/domain/entity"
	"agrox/internal/errors"
)

const (
	// DefaultDescriptionLimit is the preview description length before truncation.
	DefaultDescriptionLimit = 50

	// MsgIncomplete is returned by Submit outside the review step.
	MsgIncomplete = "Complete all steps before submitting"
)

// ErrUnknownField is returned by Set for a field the wizard does not collect.
var ErrUnknownField = errors.New("unknown listing field")

// State is the serializable form of a Wizard.
type State struct {
	Step           Step              `json:"step"`
	Fields         map[string]string `json:"fields"`
	Certifications []string          `json:"certifications"`
	EditingID      string            `json:"editingId,omitempty"`
}

// Wizard collects listing fields step by step. It only mutates through its
// methods and never touches storage.
type Wizard struct {
	step             Step
	fields           map[string]string
	certifications   []string
	editing          *entity.Listing
	descriptionLimit int
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithDescriptionLimit sets the preview description truncation length.
func WithDescriptionLimit(limit int) Option {
	return func(w *Wizard) {
		if limit > 0 {
			w.descriptionLimit = limit
		}
	}
}

// New starts an empty wizard at StepBasic.
func New(opts ...Option) *Wizard {
	w := &Wizard{
		step:             StepBasic,
		fields:           make(map[string]string),
		certifications:   []string{},
		descriptionLimit: DefaultDescriptionLimit,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// NewForEdit starts at StepBasic with every field taken from listing.
// Submit then keeps the listing's id and createdAt.
func NewForEdit(listing *entity.Listing, opts ...Option) *Wizard {
	w := New(opts...)
	w.editing = listing
	w.fields = fieldsOf(listing)
	w.certifications = slices.Clone(listing.Certifications)
	if w.certifications == nil {
		w.certifications = []string{}
	}

	return w
}

// Restore rebuilds a wizard from state. original is the listing being edited
// (nil for a new listing) and must match state.EditingID.
func Restore(state State, original *entity.Listing, opts ...Option) *Wizard {
	w := New(opts...)
	if state.Step.IsValid() {
		w.step = state.Step
	}
	for field, value := range state.Fields {
		if knownFields[field] {
			w.fields[field] = value
		}
	}
	if state.Certifications != nil {
		w.certifications = slices.Clone(state.Certifications)
	}
	if original != nil && original.ID == state.EditingID {
		w.editing = original
	}

	return w
}

// State returns a snapshot of the wizard.
func (w *Wizard) State() State {
	state := State{
		Step:           w.step,
		Fields:         maps.Clone(w.fields),
		Certifications: slices.Clone(w.certifications),
	}
	if w.editing != nil {
		state.EditingID = w.editing.ID
	}

	return state
}

func (w *Wizard) CurrentStep() Step {
	return w.step
}

// Editing reports whether the wizard edits an existing listing.
func (w *Wizard) Editing() bool {
	return w.editing != nil
}

// Fields returns a copy of the collected field values.
func (w *Wizard) Fields() map[string]string {
	return maps.Clone(w.fields)
}

// Set stores a field value.
func (w *Wizard) Set(field, value string) error {
	if !knownFields[field] {
		return errors.Wrapf(ErrUnknownField, "%q", field)
	}
	w.fields[field] = value

	return nil
}

// SetCertifications replaces the selected certifications.
func (w *Wizard) SetCertifications(certifications []string) {
	w.certifications = slices.Clone(certifications)
	if w.certifications == nil {
		w.certifications = []string{}
	}
}

// Validate runs every rule of step and returns the failures in order.
// The result is empty, never nil, when the step is valid.
func (w *Wizard) Validate(step Step) []string {
	messages := []string{}

	def, ok := Definition(step)
	if !ok {
		return messages
	}
	for _, rule := range def.Rules {
		if !rule.Check(w.fields[rule.Field]) {
			messages = append(messages, rule.Message)
		}
	}

	return messages
}

// Next advances one step when the current step is valid and returns the
// current step's failures otherwise. It does nothing at StepReview.
func (w *Wizard) Next() []string {
	if w.step == StepReview {
		return []string{}
	}

	messages := w.Validate(w.step)
	if len(messages) == 0 {
		w.step++
	}

	return messages
}

// Prev moves back one step without validating or touching fields.
func (w *Wizard) Prev() {
	if w.step > StepBasic {
		w.step--
	}
}

// SubmitInput carries what the wizard cannot know itself.
type SubmitInput struct {
	Owner string
	ID    string
	Now   time.Time
}

// Submit builds the listing. It is only allowed at StepReview and
// re-validates steps 1 to 3 first. When editing, the original id and
// createdAt are kept and in.ID / in.Now are ignored for them.
func (w *Wizard) Submit(in SubmitInput) (*entity.Listing, []string) {
	if w.step != StepReview {
		return nil, []string{MsgIncomplete}
	}

	messages := []string{}
	for _, step := range []Step{StepBasic, StepPricing, StepDetails} {
		messages = append(messages, w.Validate(step)...)
	}
	if len(messages) > 0 {
		return nil, messages
	}

	price, _ := parseNumber(w.fields[FieldPrice])
	quantity, _ := parseNumber(w.fields[FieldQuantity])

	listing := &entity.Listing{
		ID:             in.ID,
		Title:          strings.TrimSpace(w.fields[FieldTitle]),
		Category:       w.fields[FieldCategory],
		Price:          price,
		PriceUnit:      w.fields[FieldPriceUnit],
		Unit:           w.fields[FieldUnit],
		Quantity:       quantity,
		Location:       strings.TrimSpace(w.fields[FieldLocation]),
		Description:    strings.TrimSpace(w.fields[FieldDescription]),
		Certifications: slices.Clone(w.certifications),
		Owner:          in.Owner,
		CreatedAt:      in.Now,
		Status:         entity.ListingStatusActive,
	}
	if minOrder, ok := parseNumber(w.fields[FieldMinOrder]); ok && minOrder > 0 {
		listing.MinOrder = &minOrder
	}
	if w.editing != nil {
		listing.ID = w.editing.ID
		listing.CreatedAt = w.editing.CreatedAt
	}

	return listing, []string{}
}

func fieldsOf(l *entity.Listing) map[string]string {
	fields := map[string]string{
		FieldTitle:       l.Title,
		FieldCategory:    l.Category,
		FieldQuantity:    formatNumber(l.Quantity),
		FieldUnit:        l.Unit,
		FieldPrice:       formatNumber(l.Price),
		FieldPriceUnit:   l.PriceUnit,
		FieldLocation:    l.Location,
		FieldDescription: l.Description,
	}
	if l.MinOrder != nil {
		fields[FieldMinOrder] = formatNumber(*l.MinOrder)
	}

	return fields
}
