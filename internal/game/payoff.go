package game

// Compute scores one round. It returns the gain for the player who played a
// followed by the gain for the player who played b, using the classic matrix:
//
//	C/C -> 3,3   D/C -> 5,0   C/D -> 0,5   D/D -> 1,1
//
// The function is pure and symmetric: Compute(a, b) is Compute(b, a) with the
// results swapped.
func Compute(a, b Action) (gainA, gainB int) {
	switch {
	case a == Cooperate && b == Cooperate:
		return 3, 3
	case a == Defect && b == Cooperate:
		return 5, 0
	case a == Cooperate && b == Defect:
		return 0, 5
	default:
		return 1, 1
	}
}
