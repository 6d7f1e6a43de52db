package ecs

// StorageStats is a point-in-time summary of a Storage.
type StorageStats struct {
	SingletonCount int
	SingletonTypes []string
	// IdentityCount counts identities ever allocated, including removed singletons.
	IdentityCount int
}

// CollectStats gathers statistics about the singletons currently stored.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		SingletonTypes: make([]string, 0, s.SingletonCount()),
		IdentityCount:  s.registry.Len(),
	}

	for t := range s.Singletons() {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}
	stats.SingletonCount = len(stats.SingletonTypes)

	return stats
}
