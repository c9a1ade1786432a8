// SPDX-License-Identifier: MIT

package align

// MemoryMode controls how Distance stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)×(m+1) matrix. Required for ReturnPath.
//   - TwoRows    — keep only the previous and current rows. Distance only.
type MemoryMode int

const (
	// FullMatrix stores all rows and supports path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows keeps two rows, O(M) memory, no path recovery.
	TwoRows
)

// Unlimited disables the Sakoe–Chiba window.
const Unlimited = -1

// Options configures Distance and CompareSpeed.
//
// Fields:
//   - Window       — maximum |i−j|; Unlimited (−1) disables the band.
//   - SlopePenalty — cost added to insertion/deletion steps (≥ 0).
//   - ReturnPath   — backtrack the optimal warping path (FullMatrix only).
//   - MemoryMode   — FullMatrix or TwoRows.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, penalty-free FullMatrix setup.
func DefaultOptions() Options {
	return Options{
		Window:     Unlimited,
		MemoryMode: FullMatrix,
	}
}

// Coord is one cell of a warping path: a[I] is matched with b[J].
type Coord struct {
	I, J int
}

// Result summarizes how a recorded speed trace matches the model.
//
//   - Distance   — DTW distance between observed and model speed.
//   - Path       — warping path (nil unless Options.ReturnPath).
//   - RMSE       — root-mean-square error without warping.
//   - PeakOffset — time of the observed maximum minus the model peak time.
type Result struct {
	Distance   float64
	Path       []Coord
	RMSE       float64
	PeakOffset float64
}
