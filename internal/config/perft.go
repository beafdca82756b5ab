package config

// PerftConfig holds settings for move-tree node counting.
type PerftConfig struct {
	// Depth of the count; 0 disables perft
	Depth int

	// Workers counting root subtrees in parallel
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: DefaultWorkers(),
	}
}
