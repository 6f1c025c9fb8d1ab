package domain

// Tier is a revenue-share bracket. It applies from MinConverted (inclusive)
// up to the next tier's MinConverted (exclusive).
type Tier struct {
	Name         string  `json:"name"`
	MinConverted float64 `json:"min_converted"`
	SharePercent float64 `json:"share_percent"`
}
