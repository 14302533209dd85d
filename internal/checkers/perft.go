package checkers

// Perft counts the leaf nodes of the legal ply tree depth plies deep.
func Perft(b Backend, toMove Color, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	plies := b.LegalPlies(toMove)
	if depth == 1 {
		return uint64(len(plies))
	}
	var nodes uint64
	for _, p := range plies {
		child := b.Clone()
		child.Ply(p)
		nodes += Perft(child, toMove.Opposite(), depth-1)
	}
	return nodes
}

// PerftDivide reports the perft count below each root ply, keyed by notation.
func PerftDivide(b Backend, toMove Color, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, p := range b.LegalPlies(toMove) {
		child := b.Clone()
		child.Ply(p)
		out[p.String()] += Perft(child, toMove.Opposite(), depth-1)
	}
	return out
}
