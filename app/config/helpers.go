package config

// GetMinImpressions returns the impressions threshold of the prune rule
func (s *PruneSettings) GetMinImpressions() int {
	if s.MinImpressions <= 0 {
		return 300 // default
	}
	return s.MinImpressions
}

// GetMinClicks returns the clicks threshold of the prune rule
func (s *PruneSettings) GetMinClicks() int {
	if s.MinClicks <= 0 {
		return 50 // default
	}
	return s.MinClicks
}
