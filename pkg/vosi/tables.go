package vosi

import (
	"encoding/xml"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/matzehuels/vosi/pkg/errors"
)

// TableSet is the content of a tables document.
//
// VOSI 1.0 groups tables in schemas; VOSI 1.1 also allows tables directly
// under the tableset. Declared order is schemas first, each in document
// order, followed by any top-level tables.
type TableSet struct {
	Schemas []Schema `xml:"schema" json:"schemas,omitempty"`
	Tables  []Table  `xml:"table" json:"tables,omitempty"`
}

// Schema is a named group of tables.
type Schema struct {
	Name        string  `xml:"name" json:"name"`
	Title       string  `xml:"title" json:"title,omitempty"`
	Description string  `xml:"description" json:"description,omitempty"`
	UType       string  `xml:"utype" json:"utype,omitempty"`
	Tables      []Table `xml:"table" json:"tables"`
}

// Table describes one table. A table fetched from a full tables document
// usually lists its columns; one from a summary document may only carry a
// name (see [Table.IsShallow]).
type Table struct {
	Name        string       `xml:"name" json:"name"`
	Type        string       `xml:"type,attr" json:"type,omitempty"`
	Title       string       `xml:"title" json:"title,omitempty"`
	Description string       `xml:"description" json:"description,omitempty"`
	UType       string       `xml:"utype" json:"utype,omitempty"`
	NRows       *int64       `xml:"nrows" json:"nrows,omitempty"`
	Columns     []Column     `xml:"column" json:"columns,omitempty"`
	ForeignKeys []ForeignKey `xml:"foreignKey" json:"foreign_keys,omitempty"`
}

// Column describes one table column.
type Column struct {
	Name        string   `xml:"name" json:"name"`
	Description string   `xml:"description" json:"description,omitempty"`
	Unit        string   `xml:"unit" json:"unit,omitempty"`
	UCD         string   `xml:"ucd" json:"ucd,omitempty"`
	UType       string   `xml:"utype" json:"utype,omitempty"`
	DataType    DataType `xml:"dataType" json:"datatype"`
	Flags       []string `xml:"flag" json:"flags,omitempty"`
	StdAttr     string   `xml:"std,attr" json:"-"`
}

// DataType is a column's declared type.
type DataType struct {
	Value        string `xml:",chardata" json:"value"`
	Type         string `xml:"type,attr" json:"type,omitempty"`
	ArraySize    string `xml:"arraysize,attr" json:"arraysize,omitempty"`
	Delim        string `xml:"delim,attr" json:"delim,omitempty"`
	ExtendedType string `xml:"extendedType,attr" json:"extended_type,omitempty"`
}

// String renders the type as value[arraysize], e.g. "char[*]".
func (d DataType) String() string {
	if d.ArraySize == "" || d.ArraySize == "1" {
		return d.Value
	}
	return d.Value + "[" + d.ArraySize + "]"
}

// ForeignKey links columns of a table to columns of TargetTable.
type ForeignKey struct {
	TargetTable string     `xml:"targetTable" json:"target_table"`
	Columns     []FKColumn `xml:"fkColumn" json:"columns"`
	Description string     `xml:"description" json:"description,omitempty"`
	UType       string     `xml:"utype" json:"utype,omitempty"`
}

// FKColumn is one column pair of a foreign key.
type FKColumn struct {
	From   string `xml:"fromColumn" json:"from"`
	Target string `xml:"targetColumn" json:"target"`
}

// IsShallow reports whether the table carries neither columns nor foreign
// keys, i.e. whether it is only a summary.
func (t *Table) IsShallow() bool {
	return len(t.Columns) == 0 && len(t.ForeignKeys) == 0
}

// Column returns the column called name.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// HasFlag reports whether the column carries flag (e.g. "indexed").
func (c *Column) HasFlag(flag string) bool {
	return slices.Contains(c.Flags, flag)
}

// Indexed reports whether the column is flagged as indexed.
func (c *Column) Indexed() bool { return c.HasFlag("indexed") }

// Primary reports whether the column is flagged as (part of) a primary key.
func (c *Column) Primary() bool { return c.HasFlag("primary") }

// Nullable reports whether the column is flagged as nullable.
func (c *Column) Nullable() bool { return c.HasFlag("nullable") }

// Std reports whether the column is defined by a standard.
func (c *Column) Std() bool {
	s := strings.TrimSpace(c.StdAttr)
	return s == "true" || s == "1"
}

// Len returns the number of declared tables.
func (ts *TableSet) Len() int {
	n := len(ts.Tables)
	for _, s := range ts.Schemas {
		n += len(s.Tables)
	}
	return n
}

// All yields every table in declared order.
func (ts *TableSet) All() iter.Seq[*Table] {
	return func(yield func(*Table) bool) {
		for i := range ts.Schemas {
			for j := range ts.Schemas[i].Tables {
				if !yield(&ts.Schemas[i].Tables[j]) {
					return
				}
			}
		}
		for i := range ts.Tables {
			if !yield(&ts.Tables[i]) {
				return
			}
		}
	}
}

// Names returns the declared table names in order.
func (ts *TableSet) Names() []string {
	names := make([]string, 0, ts.Len())
	for t := range ts.All() {
		names = append(names, t.Name)
	}
	return names
}

// Table returns the first declared table called name.
func (ts *TableSet) Table(name string) (*Table, bool) {
	for t := range ts.All() {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// First returns the first declared table.
func (ts *TableSet) First() (*Table, bool) {
	for t := range ts.All() {
		return t, true
	}
	return nil, false
}

// ParseTables reads a tables document from r. The root element may be a
// tableset or a single table; the latter yields a one-table set.
func ParseTables(r io.Reader) (*TableSet, error) {
	dec := xml.NewDecoder(r)
	root, err := rootElement(dec)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse tables")
	}

	ts := &TableSet{}
	switch root.Name.Local {
	case "tableset":
		if err := dec.DecodeElement(ts, &root); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse tables")
		}
	case "table":
		var t Table
		if err := dec.DecodeElement(&t, &root); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse table")
		}
		ts.Tables = []Table{t}
	default:
		return nil, errors.New(errors.ErrCodeInvalidDocument, "unexpected root element %q in tables document", root.Name.Local)
	}

	ts.normalize()
	return ts, nil
}

// ParseTable reads a single-table document from r and returns its table.
// A tableset document is accepted too, in which case its first table is
// returned.
func ParseTable(r io.Reader) (*Table, error) {
	ts, err := ParseTables(r)
	if err != nil {
		return nil, err
	}
	t, ok := ts.First()
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "tables document contains no table")
	}
	return t, nil
}

func rootElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return xml.StartElement{}, io.ErrUnexpectedEOF
			}
			return xml.StartElement{}, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

func (ts *TableSet) normalize() {
	for i := range ts.Schemas {
		s := &ts.Schemas[i]
		s.Name = strings.TrimSpace(s.Name)
		for j := range s.Tables {
			s.Tables[j].normalize()
		}
	}
	for i := range ts.Tables {
		ts.Tables[i].normalize()
	}
}

func (t *Table) normalize() {
	t.Name = strings.TrimSpace(t.Name)
	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)
	for i := range t.Columns {
		c := &t.Columns[i]
		c.Name = strings.TrimSpace(c.Name)
		c.Description = strings.TrimSpace(c.Description)
		c.Unit = strings.TrimSpace(c.Unit)
		c.UCD = strings.TrimSpace(c.UCD)
		c.DataType.Value = strings.TrimSpace(c.DataType.Value)
		for j := range c.Flags {
			c.Flags[j] = strings.TrimSpace(c.Flags[j])
		}
	}
	for i := range t.ForeignKeys {
		fk := &t.ForeignKeys[i]
		fk.TargetTable = strings.TrimSpace(fk.TargetTable)
		for j := range fk.Columns {
			fk.Columns[j].From = strings.TrimSpace(fk.Columns[j].From)
			fk.Columns[j].Target = strings.TrimSpace(fk.Columns[j].Target)
		}
	}
}
