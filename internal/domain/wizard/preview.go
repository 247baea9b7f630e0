package wizard

import (
	"strconv"
	"strings"

	"agrox/internal/domain/entity"
)

// Preview is the display projection of the current fields.
type Preview struct {
	Title              string   `json:"title"`
	Category           string   `json:"category"`
	CategoryLabel      string   `json:"categoryLabel"`
	Quantity           string   `json:"quantity"`
	Price              string   `json:"price"`
	Location           string   `json:"location"`
	Description        string   `json:"description"`
	Certifications     []string `json:"certifications"`
	CertificationsText string   `json:"certificationsText,omitempty"`
}

const (
	defaultTitle       = "Product Title"
	notSpecified       = "Not specified"
	noDescription      = "No description provided"
	noCertifications   = "No certifications selected"
	pricePerUnitPrefix = "$ per "
)

// Preview projects the fields for display. It never mutates the wizard.
func (w *Wizard) Preview() Preview {
	title := orDefault(strings.TrimSpace(w.fields[FieldTitle]), defaultTitle)
	category := orDefault(w.fields[FieldCategory], notSpecified)
	quantity := orDefault(w.fields[FieldQuantity], "0")
	price := orDefault(w.fields[FieldPrice], "0")
	location := orDefault(strings.TrimSpace(w.fields[FieldLocation]), notSpecified)
	description := orDefault(strings.TrimSpace(w.fields[FieldDescription]), noDescription)

	p := Preview{
		Title:          title,
		Category:       category,
		CategoryLabel:  entity.CategoryDisplayName(category),
		Quantity:       quantity + " " + w.fields[FieldUnit],
		Price:          "$" + price,
		Location:       location,
		Description:    truncate(description, w.descriptionLimit),
		Certifications: append([]string{}, w.certifications...),
	}
	if priceUnit := w.fields[FieldPriceUnit]; priceUnit != "" {
		p.Price += " " + strings.Replace(priceUnit, pricePerUnitPrefix, "per ", 1)
	}
	if len(p.Certifications) == 0 {
		p.CertificationsText = noCertifications
	}

	return p
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}

	return v
}

// truncate keeps the first limit runes and appends "..." when it cut anything.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit]) + "..."
}

// formatNumber renders stored numbers the way they were typed: 3.5, 100.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
