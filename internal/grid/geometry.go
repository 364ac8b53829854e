package grid

// PeerCount is the number of peers of any cell: the 20 other cells
// sharing its row, column, or 3x3 box.
const PeerCount = 20

// Precomputed lookup tables. The row/column/box membership of a cell
// and its peer set are static properties of the 9x9 geometry, so they
// are built once at startup and shared read-only by all grids.
var (
	posToRow [CellCount]int
	posToCol [CellCount]int
	posToBox [CellCount]int
	peers    [CellCount][PeerCount]int
)

// MakePos transforms a row and column into a linear position.
// Returns InvalidCell if row and/or col are invalid.
func MakePos(row, col int) int {
	if row < 0 || row >= 9 || col < 0 || col >= 9 {
		return InvalidCell
	}
	return 9*row + col
}

// PeersOf returns the 20 peers of pos: the cells sharing its row,
// column, or box, excluding pos itself.
func PeersOf(pos int) [PeerCount]int {
	return peers[pos]
}

// init builds the geometry lookup tables.
func init() {
	for pos := 0; pos < CellCount; pos++ {
		posToRow[pos] = pos / 9
		posToCol[pos] = pos % 9
		posToBox[pos] = 3*(pos/27) + (pos%9)/3
	}

	for pos := 0; pos < CellCount; pos++ {
		n := 0
		for other := 0; other < CellCount; other++ {
			if other == pos {
				continue
			}
			if posToRow[other] == posToRow[pos] ||
				posToCol[other] == posToCol[pos] ||
				posToBox[other] == posToBox[pos] {
				peers[pos][n] = other
				n++
			}
		}
	}
}
