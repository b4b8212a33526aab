package cps

// Size counts the nodes in a CPS tree, the well-founded measure the
// shrinking driver watches for strict decrease (spec §4.4).
func Size(e Expr) int {
	switch n := e.(type) {
	case nil:
		return 0
	case *Const:
		return 1 + Size(n.Body)
	case *Prim:
		return 1 + Size(n.Body)
	case *Cnts:
		total := 1
		for _, c := range n.Cnts {
			total += 1 + Size(c.Body)
		}
		return total + Size(n.Body)
	case *Funs:
		total := 1
		for _, f := range n.Funs {
			total += 1 + Size(f.Body)
		}
		return total + Size(n.Body)
	case *AppC, *AppF, *If, *Halt:
		return 1
	default:
		return 0
	}
}
