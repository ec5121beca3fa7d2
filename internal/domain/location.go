package domain

// Recommendation is one suggested place to visit near a destination.
type Recommendation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
