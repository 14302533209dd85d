// Package bitfield provides a 64-bit set over board square indices.
package bitfield

import "math/bits"

// BitField is a set of indices in [0, 64). Bit i set means index i is a member.
//
// Indices outside [0, 64) are a caller error and are not checked.
type BitField uint64

const (
	Empty BitField = 0
	Full  BitField = ^BitField(0)
)

// Files[f] holds every index on file f of an 8x8 board (index = rank*8 + file).
var Files = [8]BitField{
	0x0101010101010101,
	0x0202020202020202,
	0x0404040404040404,
	0x0808080808080808,
	0x1010101010101010,
	0x2020202020202020,
	0x4040404040404040,
	0x8080808080808080,
}

// Ranks[r] holds every index on rank r.
var Ranks = [8]BitField{
	0x00000000000000FF,
	0x000000000000FF00,
	0x0000000000FF0000,
	0x00000000FF000000,
	0x000000FF00000000,
	0x0000FF0000000000,
	0x00FF000000000000,
	0xFF00000000000000,
}

// Of returns the set containing exactly the given indices.
func Of(indices ...int) BitField {
	var b BitField
	for _, i := range indices {
		b.Set(i)
	}
	return b
}

func (b BitField) Get(i int) bool { return b&(1<<uint(i)) != 0 }

func (b *BitField) Set(i int) { *b |= 1 << uint(i) }

func (b *BitField) Unset(i int) { *b &^= 1 << uint(i) }

func (b *BitField) Toggle(i int) { *b ^= 1 << uint(i) }

func (b BitField) IsEmpty() bool { return b == 0 }

// Count returns the number of members.
func (b BitField) Count() int { return bits.OnesCount64(uint64(b)) }

// First returns the lowest member, or false when the set is empty.
func (b BitField) First() (int, bool) {
	if b == 0 {
		return 0, false
	}
	return bits.TrailingZeros64(uint64(b)), true
}

// Last returns the highest member, or false when the set is empty.
func (b BitField) Last() (int, bool) {
	if b == 0 {
		return 0, false
	}
	return 63 - bits.LeadingZeros64(uint64(b)), true
}

func (b BitField) Union(o BitField) BitField { return b | o }

func (b BitField) Intersection(o BitField) BitField { return b & o }

func (b BitField) Difference(o BitField) BitField { return b &^ o }

func (b BitField) SymmetricDifference(o BitField) BitField { return b ^ o }

// IsSubset reports whether every member of b is also in o.
func (b BitField) IsSubset(o BitField) bool { return b&o == b }

// IsSuperset reports whether every member of o is also in b.
func (b BitField) IsSuperset(o BitField) bool { return b&o == o }

// Positions lists the members in ascending order.
func (b BitField) Positions() []int {
	out := make([]int, 0, b.Count())
	for rest := uint64(b); rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros64(rest))
	}
	return out
}
