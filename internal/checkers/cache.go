package checkers

const plyCacheCap = 1 << 16

type plyKey struct {
	hash  uint64
	color Color
}

// PlyCache memoizes LegalPlies by (state hash, color). Mutating a backend changes
// its hash, so an entry is never served for a different placement.
type PlyCache struct {
	entries map[plyKey][]Ply
	hits    int64
	misses  int64
}

func NewPlyCache() *PlyCache {
	return &PlyCache{entries: make(map[plyKey][]Ply, 64)}
}

// LegalPlies returns the plies of c on b, generating them on a miss. The
// returned slice is shared with the cache and must not be modified.
func (pc *PlyCache) LegalPlies(b Backend, c Color) []Ply {
	key := plyKey{hash: b.StateHash(), color: c}
	if plies, ok := pc.entries[key]; ok {
		pc.hits++
		return plies
	}
	pc.misses++
	plies := b.LegalPlies(c)
	if len(pc.entries) >= plyCacheCap {
		pc.entries = make(map[plyKey][]Ply, 64)
	}
	pc.entries[key] = plies
	return plies
}

// GameState reports the outcome with toMove to play: a side without pieces has
// lost, and so has a side to move without a legal ply. Draws are never detected.
func (pc *PlyCache) GameState(b Backend, toMove Color) GameState {
	switch {
	case PieceCount(b, White) == 0:
		return WinFor(Black)
	case PieceCount(b, Black) == 0:
		return WinFor(White)
	case len(pc.LegalPlies(b, toMove)) == 0:
		return WinFor(toMove.Opposite())
	}
	return OnGoingState()
}

func (pc *PlyCache) Invalidate() {
	pc.entries = make(map[plyKey][]Ply, 64)
}

func (pc *PlyCache) Len() int { return len(pc.entries) }

// Stats returns the hit and miss counters since creation.
func (pc *PlyCache) Stats() (hits, misses int64) { return pc.hits, pc.misses }
