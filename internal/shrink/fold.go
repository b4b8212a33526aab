package shrink

import "github.com/sagarreddypatil/language/internal/cps"

func boolLit(b bool) cps.LitHigh {
	if b {
		return 1
	}
	return 0
}

// foldPrim evaluates a primitive op over known-literal argument values
// (spec §4.4 rewrite 2): the arithmetic/comparison/logical subset, plus
// "id" (identity). "data"/"desc"/"field" are never folded — their
// arguments are never literal in a well-formed lowering (spec §4.4: folds
// "never apply to data").
func foldPrim(op string, args []cps.LitHigh) (cps.LitHigh, bool) {
	switch op {
	case "id":
		if len(args) == 1 {
			return args[0], true
		}
	case "+":
		if len(args) == 2 {
			return args[0] + args[1], true
		}
	case "-":
		if len(args) == 2 {
			return args[0] - args[1], true
		}
	case "*":
		if len(args) == 2 {
			return args[0] * args[1], true
		}
	case "/":
		if len(args) == 2 && args[1] != 0 {
			return args[0] / args[1], true
		}
	case "%":
		if len(args) == 2 && args[1] != 0 {
			return args[0] % args[1], true
		}
	case "~":
		if len(args) == 1 {
			return ^args[0], true
		}
	case "==":
		if len(args) == 2 {
			return boolLit(args[0] == args[1]), true
		}
	case "!=":
		if len(args) == 2 {
			return boolLit(args[0] != args[1]), true
		}
	case "<":
		if len(args) == 2 {
			return boolLit(args[0] < args[1]), true
		}
	case ">":
		if len(args) == 2 {
			return boolLit(args[0] > args[1]), true
		}
	case "<=":
		if len(args) == 2 {
			return boolLit(args[0] <= args[1]), true
		}
	case ">=":
		if len(args) == 2 {
			return boolLit(args[0] >= args[1]), true
		}
	case "&&":
		// Bitwise AND of the 0/1 encoding (spec §9 Open Question b):
		// equivalent to logical AND only because lowering never feeds
		// these ops anything but 0/1-valued results.
		if len(args) == 2 {
			return args[0] & args[1], true
		}
	case "||":
		if len(args) == 2 {
			return args[0] | args[1], true
		}
	case "!":
		if len(args) == 1 {
			if args[0] <= 0 {
				return 1, true
			}
			return 0, true
		}
	}
	return 0, false
}
