package checkers

import (
	"strings"

	"github.com/fatih/color"
)

var selectedStyle = color.New(color.FgGreen, color.Bold)

const emptySymbol = "·"

// String draws the board with rank 8 on top; the selected square is highlighted.
func (b *Board) String() string {
	var sb strings.Builder
	for r := Ranks - 1; r >= 0; r-- {
		sb.WriteByte(byte('1' + r))
		sb.WriteByte(' ')
		for f := 0; f < Files; f++ {
			sq := NewSquare(f, r)
			symbol := emptySymbol
			if p, ok := b.backend.Piece(sq); ok {
				symbol = p.Symbol()
			}
			if sq == b.selected {
				symbol = selectedStyle.Sprint(symbol)
			}
			sb.WriteString(symbol)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
