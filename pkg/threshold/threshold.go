// Package threshold classifies agreement between a source and a target
// scalar under a tolerance policy.
package threshold

import (
	"math"

	"github.com/leapstack-labs/crosscheck/pkg/core"
)

// Evaluate classifies (source, target) as PASS or FAIL under the given
// policy. Both values must be non-NULL numerics; coercion is the engine's
// job before values reach here.
//
// EXACT and ABSOLUTE are the same absolute-difference test; the two names
// exist for configuration readability. PERCENTAGE compares the relative
// difference against the threshold. When the source value is zero the ratio
// is undefined, so the explicit policy is: PASS iff the target is also zero,
// FAIL otherwise (a zero baseline must stay zero).
func Evaluate(source, target float64, kind core.ThresholdKind, value float64) core.Status {
	switch kind {
	case core.Exact, core.Absolute:
		if math.Abs(target-source) <= value {
			return core.StatusPass
		}
		return core.StatusFail

	case core.Percentage:
		if source == 0 {
			if target == 0 {
				return core.StatusPass
			}
			return core.StatusFail
		}
		if math.Abs((target-source)/source) <= value {
			return core.StatusPass
		}
		return core.StatusFail

	default:
		return core.StatusFail
	}
}
