// SPDX-License-Identifier: MIT

package align

import (
	"math"
)

// Distance computes the DTW distance between a and b.
//
// Recurrence (1-based DP, D[0][0] = 0, other borders +Inf):
//
//	D[i][j] = |a[i−1] − b[j−1]| + min(D[i−1][j−1],
//	                                 D[i−1][j] + SlopePenalty,
//	                                 D[i][j−1] + SlopePenalty)
//
// Cells outside the window are +Inf, so a window narrower than
// |len(a) − len(b)| yields +Inf distance rather than an error.
//
// Errors: ErrEmptyInput, ErrBadInput, ErrPathNeedsMatrix.
func Distance(a, b []float64, opts *Options) (float64, []Coord, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(methodDistance, a, b, o); err != nil {
		return 0, nil, err
	}

	if o.MemoryMode == TwoRows {
		return twoRows(a, b, o), nil, nil
	}

	dp := fullMatrix(a, b, o)
	dist := dp[len(a)][len(b)]
	if !o.ReturnPath || math.IsInf(dist, 1) {
		return dist, nil, nil
	}

	return dist, backtrack(dp, o.SlopePenalty), nil
}

func validate(method string, a, b []float64, o Options) error {
	if len(a) == 0 || len(b) == 0 {
		return alignErrorf(method, ErrEmptyInput, "len(a)=%d len(b)=%d", len(a), len(b))
	}
	if o.Window < Unlimited {
		return alignErrorf(method, ErrBadInput, "Window=%d", o.Window)
	}
	if !(o.SlopePenalty >= 0) {
		return alignErrorf(method, ErrBadInput, "SlopePenalty=%g", o.SlopePenalty)
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows {
		return alignErrorf(method, ErrBadInput, "MemoryMode=%d", o.MemoryMode)
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return alignErrorf(method, ErrPathNeedsMatrix, "MemoryMode=%d", o.MemoryMode)
	}
	if err := validateFinite(method, "a", a); err != nil {
		return err
	}

	return validateFinite(method, "b", b)
}

// validateFinite rejects NaN/±Inf samples; they would poison every DP cell
// downstream of them.
func validateFinite(method, name string, xs []float64) error {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return alignErrorf(method, ErrBadInput, "%s[%d]=%g", name, i, x)
		}
	}

	return nil
}

// outside reports whether cell (i, j) falls outside the Sakoe–Chiba band.
func outside(i, j, window int) bool {
	return window != Unlimited && abs(i-j) > window
}

func fullMatrix(a, b []float64, o Options) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				dp[i][j] = inf
				continue
			}
			best := min3(dp[i-1][j-1], dp[i-1][j]+o.SlopePenalty, dp[i][j-1]+o.SlopePenalty)
			dp[i][j] = math.Abs(a[i-1]-b[j-1]) + best
		}
	}

	return dp
}

// twoRows runs the same recurrence keeping only rows i−1 and i.
func twoRows(a, b []float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			best := min3(prev[j-1], prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty)
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrack walks from (n, m) to (1, 1) choosing the cheapest predecessor,
// preferring the diagonal on ties, and returns the path in forward order.
func backtrack(dp [][]float64, penalty float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := make([]Coord, 0, i+j)
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		if i == 1 {
			j--
			continue
		}
		if j == 1 {
			i--
			continue
		}
		diag := dp[i-1][j-1]
		up := dp[i-1][j] + penalty
		left := dp[i][j-1] + penalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
