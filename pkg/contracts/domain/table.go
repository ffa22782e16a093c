package domain

// Known sheet names in a business workbook export
const (
	TableCustomers = "customers"
	TableOrders    = "orders"
	TableProducts  = "products"
	TableMarketing = "marketing_costs"
)

// KnownTables lists the sheet names the pipeline understands, in the
// order they are cleaned and written back.
var KnownTables = []string{TableCustomers, TableOrders, TableProducts, TableMarketing}

// Row maps column names to cell values. A nil value is a null cell.
type Row map[string]interface{}

// Table is an ordered sequence of rows sharing a fixed column schema.
// Column order is preserved from the source sheet; derived columns are
// appended at the end.
type Table struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// NewTable creates an empty table with the given name and columns.
func NewTable(name string, columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Name: name, Columns: cols}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// IsEmpty reports whether the table is nil or has no rows.
func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// HasColumn reports whether the column exists in the table schema.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the schema if not already present.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// AppendRow adds a row to the table.
func (t *Table) AppendRow(row Row) {
	t.Rows = append(t.Rows, row)
}

// Value returns the cell value for the column in row i, or nil when the
// column is absent.
func (t *Table) Value(i int, column string) interface{} {
	if t == nil || i < 0 || i >= len(t.Rows) {
		return nil
	}
	return t.Rows[i][column]
}

// Clone returns a deep copy of the table. Cleaners operate on clones so
// the caller's input is never mutated.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := NewTable(t.Name, t.Columns...)
	out.Rows = make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, row.Clone())
	}
	return out
}

// Clone returns a shallow copy of the row values under a fresh map.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
