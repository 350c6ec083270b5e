package vocab

import (
	"preset-generator/internal/expr"
	"preset-generator/internal/fragment"
)

// Addressing holds the indices of the parameters dynamic addresses refer to.
type Addressing struct {
	// ColumnOffset is the parameter holding the first visible column.
	ColumnOffset int
	// RowOffset is the parameter holding the first visible row.
	RowOffset int
	// SendIndex is the parameter selecting the send addressed by route targets.
	SendIndex int
}

// Lib builds fragments whose clip matrix coordinates are relative to the
// offset parameters.
type Lib struct {
	addr Addressing
}

// NewLib returns a Lib bound to addr.
func NewLib(addr Addressing) Lib {
	return Lib{addr: addr}
}

// ColumnExpr is the expression for visible column col.
func (l Lib) ColumnExpr(col int) string {
	return expr.Offset(l.addr.ColumnOffset, col)
}

// RowExpr is the expression for visible row row.
func (l Lib) RowExpr(row int) string {
	return expr.Offset(l.addr.RowOffset, row)
}

func (l Lib) column(col int) fragment.Fragment {
	return fragment.Of("address", addressDynamic, "expression", l.ColumnExpr(col))
}

func (l Lib) row(row int) fragment.Fragment {
	return fragment.Of("address", addressDynamic, "expression", l.RowExpr(row))
}

func (l Lib) slot(col, row int) fragment.Fragment {
	return fragment.Of(
		"address", addressDynamic,
		"column_expression", l.ColumnExpr(col),
		"row_expression", l.RowExpr(row),
	)
}

// track resolves the track playing the clips of a column.
func (l Lib) track(col int) fragment.Fragment {
	return fragment.Of(
		"address", addressFromClipColumn,
		"column", l.column(col),
		"context", contextPlayback,
	)
}
