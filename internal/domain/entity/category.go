package entity

var categoryDisplayNames = map[string]string{
	"grains":     "Grains & Cereals",
	"vegetables": "Vegetables",
	"fruits":     "Fruits",
	"dairy":      "Dairy & Livestock",
	"storage":    "Storage Facilities",
	"logistics":  "Logistics Services",
	"inputs":     "Farming Inputs",
}

// CategoryDisplayName returns the human label of a category key, or the key itself.
func CategoryDisplayName(category string) string {
	if name, ok := categoryDisplayNames[category]; ok {
		return name
	}

	return category
}
