// Package wizard is the four-step listing creation state machine shared by
// every listing-owning dashboard.
package wizard

import (
	"math"
	"strconv"
	"strings"
)

// Step is a wizard position, 1 through 4.
type Step int

const (
	StepBasic Step = iota + 1
	StepPricing
	StepDetails
	StepReview
)

// IsValid checks if the step is one of the four wizard steps.
func (s Step) IsValid() bool {
	return s >= StepBasic && s <= StepReview
}

func (s Step) String() string {
	if def, ok := Definition(s); ok {
		return def.Name
	}

	return "Step(" + strconv.Itoa(int(s)) + ")"
}

// Field names accepted by Wizard.Set.
const (
	FieldTitle       = "title"
	FieldCategory    = "category"
	FieldQuantity    = "quantity"
	FieldUnit        = "unit"
	FieldPrice       = "price"
	FieldPriceUnit   = "priceUnit"
	FieldMinOrder    = "minOrder"
	FieldLocation    = "location"
	FieldDescription = "description"
)

var knownFields = map[string]bool{
	FieldTitle:       true,
	FieldCategory:    true,
	FieldQuantity:    true,
	FieldUnit:        true,
	FieldPrice:       true,
	FieldPriceUnit:   true,
	FieldMinOrder:    true,
	FieldLocation:    true,
	FieldDescription: true,
}

// Rule checks one field value and carries the message shown when it fails.
type Rule struct {
	Field   string
	Check   func(value string) bool
	Message string
}

// StepDefinition lists the rules of one step, in display order.
type StepDefinition struct {
	Step  Step
	Name  string
	Rules []Rule
}

// Steps is the step-definition table.
//
//nolint:gochecknoglobals
var Steps = []StepDefinition{
	{
		Step: StepBasic,
		Name: "Basic Info",
		Rules: []Rule{
			{Field: FieldTitle, Check: notBlank, Message: "Product title is required"},
			{Field: FieldCategory, Check: present, Message: "Category is required"},
			{Field: FieldQuantity, Check: positiveNumber, Message: "Valid quantity is required"},
			{Field: FieldUnit, Check: present, Message: "Unit is required"},
		},
	},
	{
		Step: StepPricing,
		Name: "Pricing",
		Rules: []Rule{
			{Field: FieldPrice, Check: positiveNumber, Message: "Valid price is required"},
			{Field: FieldPriceUnit, Check: present, Message: "Price unit is required"},
		},
	},
	{
		Step: StepDetails,
		Name: "Details",
		Rules: []Rule{
			{Field: FieldDescription, Check: notBlank, Message: "Product description is required"},
			{Field: FieldLocation, Check: notBlank, Message: "Location is required"},
		},
	},
	{
		Step: StepReview,
		Name: "Review",
	},
}

// Definition looks up the definition of step.
func Definition(step Step) (StepDefinition, bool) {
	for _, def := range Steps {
		if def.Step == step {
			return def, true
		}
	}

	return StepDefinition{}, false
}

func present(v string) bool {
	return v != ""
}

func notBlank(v string) bool {
	return strings.TrimSpace(v) != ""
}

func positiveNumber(v string) bool {
	n, ok := parseNumber(v)

	return ok && n > 0
}

// parseNumber accepts a finite decimal number, surrounding spaces allowed.
func parseNumber(v string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}

	return n, true
}
