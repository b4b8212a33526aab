package shrink

import "github.com/sagarreddypatil/language/internal/cps"

// Run is C5's public contract (spec §4.4 "Driver"): apply Pass
// repeatedly until the tree's node count (cps.Size) stops strictly
// decreasing. Shrinking is idempotent at that fixed point — a further
// Pass is a structural no-op.
func Run(e cps.Expr) cps.Expr {
	cur := e
	for {
		next := Pass(cur)
		if cps.Size(next) >= cps.Size(cur) {
			return cur
		}
		cur = next
	}
}
