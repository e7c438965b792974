package models

type Recommendation struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Category            string   `json:"category"`
	NutritionHighlights []string `json:"nutritionHighlights"`
	Confidence          float64  `json:"confidence"`
}
