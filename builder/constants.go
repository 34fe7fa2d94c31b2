package builder

// Method names prefix errors with the constructor name for context.
const (
	methodPath              = "Path"
	methodCycle             = "Cycle"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodGrid3D            = "Grid3D"
	methodRandomGNP         = "RandomGNP"
	methodRandomRegular     = "RandomRegular"
	methodIsolated          = "Isolated"
)

// Minimum sizes.
const (
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinCycleNodes: a simple cycle needs at least 3 nodes.
	MinCycleNodes = 3
	// MinStarNodes: one hub plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a rim of at least 3 plus the hub.
	MinWheelNodes = 4
	// MinGridDim applies to every lattice dimension. 1×1 is valid.
	MinGridDim = 1
	// MinPartition is the smallest side of CompleteBipartite.
	MinPartition = 1
)

// Probability bounds for RandomGNP, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// maxStubMatchingAttempts bounds RandomRegular reshuffles.
const maxStubMatchingAttempts = 1000
