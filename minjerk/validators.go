// SPDX-License-Identifier: MIT

package minjerk

// validate enforces the Evaluate preconditions in priority order:
// zero duration, then non-finite parameters, then non-finite times.
func validate(method string, p Params, t []float64, o options) error {
	if p.D == 0 {
		return minjerkErrorf(method, ErrZeroDuration, "D=%g", p.D)
	}
	if !o.finiteCheck {
		return nil
	}
	if !isFinite(p.T0) || !isFinite(p.D) || !isFinite(p.Ax) || !isFinite(p.Ay) {
		return minjerkErrorf(method, ErrNonFiniteParam, "T0=%g D=%g Ax=%g Ay=%g", p.T0, p.D, p.Ax, p.Ay)
	}
	for i, ti := range t {
		if !isFinite(ti) {
			return minjerkErrorf(method, ErrNonFiniteTime, "t[%d]=%g", i, ti)
		}
	}

	return nil
}
