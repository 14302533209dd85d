package checkers

import "sync"

var (
	zobristOnce sync.Once

	zobristPieces [2][2][NumSquares]uint64 // [color][kind][square]
	zobristSide   [2]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for c := 0; c < 2; c++ {
			for k := 0; k < 2; k++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[c][k][sq] = next()
				}
			}
		}
		zobristSide[White] = next()
		zobristSide[Black] = next()
	})
}

func pieceHashKey(p Piece, sq int) uint64 {
	return zobristPieces[p.Color][p.Kind][sq]
}

// SideKey is mixed into a state hash by callers whose keys depend on the side to move.
func SideKey(c Color) uint64 {
	initZobrist()
	return zobristSide[c]
}
