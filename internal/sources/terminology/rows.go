package terminology

import (
	"bufio"
	"bytes"
	"encoding/csv"
	stderrors "errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/dictmap/pkg/errors"
)

// Column positions of the exported terminology sheet.
const (
	colRowNumber = iota
	colEntity
	colRole
	colName
	colCode
	colPreferredTerm
	colSynonyms
	colDefinition
	colValueList
)

// Roles of a terminology row.
const (
	RoleEntity       = "Entity"
	RoleAttribute    = "Attribute"
	RoleRelationship = "Relationship"
)

// sheetEnd marks the first row of the next worksheet in a flattened export.
const sheetEnd = "DDF valid value sets"

var bom = []byte{0xEF, 0xBB, 0xBF}

// Row is one line of the terminology table.
type Row struct {
	Line          int
	Entity        string
	Role          string
	Name          string // Logical data model name; empty for entity rows
	Code          string
	PreferredTerm string
	Synonyms      string
	Definition    string
	CodeList      string // Codelist reference from a "Y C12345" cell, or empty
}

// IsEntity reports whether the row describes a class.
func (r Row) IsEntity() bool {
	return strings.EqualFold(r.Role, RoleEntity)
}

// IsAttribute reports whether the row describes an attribute or relationship.
func (r Row) IsAttribute() bool {
	return strings.EqualFold(r.Role, RoleAttribute) || strings.EqualFold(r.Role, RoleRelationship)
}

// ReadRows parses a terminology CSV export. The header row is skipped, a
// UTF-8 byte order mark and non-breaking spaces are removed, and reading
// stops at the value-set worksheet marker. Rows with fewer than three
// cells are ignored.
func ReadRows(r io.Reader) ([]Row, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && bytes.Equal(head, bom) {
		_, _ = br.Discard(len(bom))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var d decoder
	for line := 1; ; line++ {
		record, err := cr.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &errors.ParseError{Format: "csv", Line: line, Message: err.Error(), Err: err}
		}
		if !d.add(line, record) {
			break
		}
	}
	return d.rows, nil
}

// ReadWorkbook parses the first worksheet of a terminology workbook with
// the same rules as ReadRows.
func ReadWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &errors.ParseError{Format: "xlsx", Message: err.Error(), Err: err}
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &errors.ParseError{Format: "xlsx", Message: err.Error(), Err: err}
	}

	var d decoder
	for i, record := range records {
		if !d.add(i+1, record) {
			break
		}
	}
	return d.rows, nil
}

// decoder turns table records into rows.
type decoder struct {
	rows []Row
}

// add consumes the record on the given 1-based line. It returns false once
// the value-set marker is reached.
func (d *decoder) add(line int, record []string) bool {
	if line == 1 {
		return true
	}
	if containsMarker(record) {
		return false
	}
	if len(record) < 3 {
		return true
	}
	d.rows = append(d.rows, Row{
		Line:          line,
		Entity:        cell(record, colEntity),
		Role:          cell(record, colRole),
		Name:          cell(record, colName),
		Code:          cell(record, colCode),
		PreferredTerm: cell(record, colPreferredTerm),
		Synonyms:      cell(record, colSynonyms),
		Definition:    cell(record, colDefinition),
		CodeList:      codeList(cell(record, colValueList)),
	})
	return true
}

func cell(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(strings.ReplaceAll(record[i], "\u00a0", ""))
}

// codeList extracts "C12345" from "Y C12345"; cells without a Y yield "".
func codeList(v string) string {
	if !strings.Contains(strings.ToUpper(v), "Y") {
		return ""
	}
	return strings.TrimSpace(strings.NewReplacer("Y", "", "y", "").Replace(v))
}

func containsMarker(record []string) bool {
	for _, c := range record {
		if strings.Contains(c, sheetEnd) {
			return true
		}
	}
	return false
}
