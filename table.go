package godeck

// MergeState tags a table cell's role in the merge map.
type MergeState int

const (
	// MergeNone is an ordinary cell.
	MergeNone MergeState = iota
	// MergeAnchor is the top-left cell of a merge rectangle. The cell
	// carries the row and column spans.
	MergeAnchor
	// MergeH is a cell merged horizontally into an anchor on the same row.
	MergeH
	// MergeV is a cell merged vertically into an anchor on an earlier row.
	MergeV
)

// TableCell is one grid cell.
type TableCell struct {
	paragraphs []*Paragraph
	fill       *Fill
	merge      MergeState
	rowSpan    int
	colSpan    int
}

// SetText replaces the cell content with a single plain paragraph.
func (c *TableCell) SetText(text string) *TableCell {
	p := NewParagraph()
	p.AddText(text)
	c.paragraphs = []*Paragraph{p}
	return c
}

// AddParagraph appends a paragraph and returns it.
func (c *TableCell) AddParagraph() *Paragraph {
	p := NewParagraph()
	c.paragraphs = append(c.paragraphs, p)
	return p
}

// SetFill sets the cell background.
func (c *TableCell) SetFill(f *Fill) *TableCell {
	c.fill = f
	return c
}

// GetMergeState returns the cell's merge role.
func (c *TableCell) GetMergeState() MergeState { return c.merge }

// TableRow is one grid row.
type TableRow struct {
	height Dimension // zero means divide the table height evenly
	cells  []*TableCell
}

// SetHeight sets the row height.
func (r *TableRow) SetHeight(h Dimension) *TableRow {
	r.height = h
	return r
}

// GetCell returns the cell at col, nil when out of range.
func (r *TableRow) GetCell(col int) *TableCell {
	if col < 0 || col >= len(r.cells) {
		return nil
	}
	return r.cells[col]
}

// Table is a row/column grid placed on a slide.
type Table struct {
	BaseElement
	colWidths []Dimension
	rows      []*TableRow
	firstRow  bool // header-row styling flag
	bandRows  bool
}

func (*Table) element() {}

// NewTable builds a rows x cols grid. Column widths default to an even
// division of the table width.
func NewTable(rows, cols int, t Transform) *Table {
	tbl := &Table{firstRow: true, bandRows: true}
	tbl.transform = t
	tbl.colWidths = make([]Dimension, cols)
	for i := 0; i < rows; i++ {
		row := &TableRow{cells: make([]*TableCell, cols)}
		for j := 0; j < cols; j++ {
			row.cells[j] = &TableCell{}
		}
		tbl.rows = append(tbl.rows, row)
	}
	return tbl
}

// NumRows returns the row count.
func (t *Table) NumRows() int { return len(t.rows) }

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.colWidths) }

// GetRow returns a row by index, nil when out of range.
func (t *Table) GetRow(i int) *TableRow {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return t.rows[i]
}

// GetCell returns the cell at (row, col), nil when out of range.
func (t *Table) GetCell(row, col int) *TableCell {
	r := t.GetRow(row)
	if r == nil {
		return nil
	}
	return r.GetCell(col)
}

// SetColumnWidth sets an explicit width for one column.
func (t *Table) SetColumnWidth(col int, w Dimension) *Table {
	if col >= 0 && col < len(t.colWidths) {
		t.colWidths[col] = w
	}
	return t
}

// SetHeaderRow toggles first-row styling.
func (t *Table) SetHeaderRow(on bool) *Table {
	t.firstRow = on
	return t
}

// SetBandedRows toggles alternating row banding.
func (t *Table) SetBandedRows(on bool) *Table {
	t.bandRows = on
	return t
}

// Merge joins the rowSpan x colSpan rectangle anchored at (row, col) into a
// single visual cell. The anchor keeps its content; covered cells become
// HMerge on the anchor row and VMerge elsewhere. Rectangles must fit the
// grid and must not touch cells already claimed by another merge.
func (t *Table) Merge(row, col, rowSpan, colSpan int) error {
	if rowSpan < 1 || colSpan < 1 {
		return newError(ErrInvalidInput, "merge spans must be >= 1, got %dx%d", rowSpan, colSpan)
	}
	if row < 0 || col < 0 || row+rowSpan > t.NumRows() || col+colSpan > t.NumCols() {
		return newError(ErrInvalidInput,
			"merge (%d,%d) span %dx%d exceeds %dx%d grid",
			row, col, rowSpan, colSpan, t.NumRows(), t.NumCols())
	}
	if rowSpan == 1 && colSpan == 1 {
		return nil
	}
	for i := row; i < row+rowSpan; i++ {
		for j := col; j < col+colSpan; j++ {
			if t.rows[i].cells[j].merge != MergeNone {
				return newError(ErrOverlap,
					"merge (%d,%d) span %dx%d collides with an existing merge at (%d,%d)",
					row, col, rowSpan, colSpan, i, j)
			}
		}
	}
	for i := row; i < row+rowSpan; i++ {
		for j := col; j < col+colSpan; j++ {
			cell := t.rows[i].cells[j]
			switch {
			case i == row && j == col:
				cell.merge = MergeAnchor
				cell.rowSpan = rowSpan
				cell.colSpan = colSpan
			case i == row:
				cell.merge = MergeH
			default:
				cell.merge = MergeV
			}
		}
	}
	return nil
}

// validate re-checks the merge map: every anchor rectangle must be fully
// covered by matching HMerge/VMerge cells and nothing else may carry a
// merge tag.
func (t *Table) validate() error {
	claimed := make([][]bool, t.NumRows())
	for i := range claimed {
		claimed[i] = make([]bool, t.NumCols())
	}
	for i, row := range t.rows {
		if len(row.cells) != t.NumCols() {
			return newError(ErrInvalidInput, "table row %d has %d cells, want %d", i, len(row.cells), t.NumCols())
		}
		for j, cell := range row.cells {
			if cell.merge != MergeAnchor {
				continue
			}
			if i+cell.rowSpan > t.NumRows() || j+cell.colSpan > t.NumCols() {
				return newError(ErrInvalidInput, "merge anchor (%d,%d) span exceeds grid", i, j)
			}
			for mi := i; mi < i+cell.rowSpan; mi++ {
				for mj := j; mj < j+cell.colSpan; mj++ {
					if claimed[mi][mj] {
						return newError(ErrOverlap, "merge rectangles overlap at (%d,%d)", mi, mj)
					}
					claimed[mi][mj] = true
					want := MergeAnchor
					if mi == i && mj != j {
						want = MergeH
					} else if mi != i {
						want = MergeV
					}
					if t.rows[mi].cells[mj].merge != want {
						return newError(ErrInternal, "inconsistent merge state at (%d,%d)", mi, mj)
					}
				}
			}
		}
	}
	for i, row := range t.rows {
		for j, cell := range row.cells {
			if (cell.merge == MergeH || cell.merge == MergeV) && !claimed[i][j] {
				return newError(ErrInternal, "merged cell (%d,%d) has no anchor", i, j)
			}
		}
	}
	for _, row := range t.rows {
		for _, cell := range row.cells {
			if cell.fill != nil {
				if err := cell.fill.validate(); err != nil {
					return err
				}
			}
			for _, p := range cell.paragraphs {
				if err := p.validate(); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
