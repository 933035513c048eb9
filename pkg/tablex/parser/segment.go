package parser

// Block is a contiguous span of grid rows [Start, End) holding one table,
// anchored by the header at row Header (always equal to Start).
type Block struct {
	Start  int
	End    int
	Header int
}

// Segment groups classified rows into table blocks. A header row opens a
// block, closing any block still open — stacked tables with no blank
// separator split here. A blank run closes a block once it holds at least
// one data row; a blank directly under a header stays inside the block and
// is skipped later by the builder. Header-only blocks are kept so empty
// tables are still emitted.
func Segment(classes []RowClass) []Block {
	var blocks []Block
	open := -1
	hasData := false

	for i, class := range classes {
		switch class {
		case Header:
			if open >= 0 {
				blocks[open].End = i
			}
			blocks = append(blocks, Block{Start: i, End: len(classes), Header: i})
			open = len(blocks) - 1
			hasData = false
		case Data:
			hasData = true
		case Blank:
			if open >= 0 && hasData {
				blocks[open].End = i
				open = -1
			}
		}
	}
	return blocks
}
