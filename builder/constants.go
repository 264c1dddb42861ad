// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodRandomSparse      = "RandomSparse"
	methodTopology          = "Topology"
)

//-----------------------------------------------------------------------------
// Node ID Defaults
//-----------------------------------------------------------------------------

// CenterVertexID is the identifier for the hub node in Star and Wheel.
const CenterVertexID = "Center"

//-----------------------------------------------------------------------------
// Minimum Node Counts
//
// A stored node always has an edge, so every minimum below is the smallest
// size that produces at least one edge of the requested shape.
//-----------------------------------------------------------------------------

const (
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinCycleNodes: fewer than 3 nodes cannot form a ring without repeated edges.
	MinCycleNodes = 3
	// MinStarNodes: one hub plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a 3-cycle rim plus the hub.
	MinWheelNodes = 4
	// MinCompleteNodes: K_1 has no edges.
	MinCompleteNodes = 2
	// MinPartitionSize: each side of K_{n1,n2} needs one node.
	MinPartitionSize = 1
	// MinGridDim: a 1×C or R×1 grid is a path; 1×1 is rejected separately.
	MinGridDim = 1
	// MinRandomSparseNodes: fewer than 2 nodes admit no edge.
	MinRandomSparseNodes = 2
)

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

const (
	// MinProbability is the inclusive lower bound of p in RandomSparse.
	MinProbability = 0.0
	// MaxProbability is the inclusive upper bound of p in RandomSparse.
	MaxProbability = 1.0
)
