package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
	"github.com/SscSPs/greenpages_backend/internal/core/domain"
)

// ContentTypeXLSX is the media type of the generated workbooks.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// MaxJournalRows bounds the number of journal lines in one export.
const MaxJournalRows = 100_000

const journalSheet = "Journal"

// numFmtFixed2 is the built-in "0.00" number format.
const numFmtFixed2 = 2

// lineRow is one exported row: a journal line with its entry.
type lineRow struct {
	entry *domain.JournalEntry
	line  *domain.JournalLine
}

// column renders one workbook column. Amount columns return the decimal
// text of the value, written as a numeric cell without a float round trip.
type column struct {
	Header string
	Value  func(r lineRow) any
	Amount bool
}

var journalColumns = map[string]column{
	"entry_id":     {Header: "Entry ID", Value: func(r lineRow) any { return r.entry.EntryID }},
	"entry_date":   {Header: "Entry Date", Value: func(r lineRow) any { return r.entry.EntryDate.Format("2006-01-02") }},
	"description":  {Header: "Description", Value: func(r lineRow) any { return r.entry.Description }},
	"source":       {Header: "Source", Value: func(r lineRow) any { return string(r.entry.Source) }},
	"source_ref":   {Header: "Source Ref", Value: func(r lineRow) any { return stringPtr(r.entry.SourceRef) }},
	"line_no":      {Header: "Line", Value: func(r lineRow) any { return r.line.LineNo }},
	"account_code": {Header: "Account", Value: func(r lineRow) any { return r.line.AccountCode }},
	"debit":        {Header: "Debit", Value: func(r lineRow) any { return r.line.Debit.StringFixed(domain.MinorUnitPlaces) }, Amount: true},
	"credit":       {Header: "Credit", Value: func(r lineRow) any { return r.line.Credit.StringFixed(domain.MinorUnitPlaces) }, Amount: true},
	"memo":         {Header: "Memo", Value: func(r lineRow) any { return r.line.Memo }},
	"created_by":   {Header: "Created By", Value: func(r lineRow) any { return r.entry.CreatedBy }},
}

// DefaultJournalColumns is the column order of the accountant export.
var DefaultJournalColumns = []string{
	"entry_id", "entry_date", "description", "source", "source_ref",
	"line_no", "account_code", "debit", "credit", "memo", "created_by",
}

// JournalWorkbook accumulates journal entries into a single-sheet workbook,
// one row per line.
type JournalWorkbook struct {
	f           *excelize.File
	cols        []column
	rows        int
	amountStyle int
}

// NewJournalWorkbook creates a workbook with the header row written. Unknown
// column keys are ignored; an empty selection uses DefaultJournalColumns.
func NewJournalWorkbook(creator string, selected ...string) (*JournalWorkbook, error) {
	if len(selected) == 0 {
		selected = DefaultJournalColumns
	}
	var cols []column
	for _, key := range selected {
		if col, ok := journalColumns[key]; ok {
			cols = append(cols, col)
		}
	}
	if len(cols) == 0 {
		return nil, apperrors.NewValidationError("columns", "no known column selected")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), journalSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	_ = f.SetDocProps(&excelize.DocProperties{Creator: creator, Title: "Journal entries"})
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtFixed2})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create amount style: %w", err)
	}

	for i, col := range cols {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(journalSheet, cell, col.Header); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}
	return &JournalWorkbook{f: f, cols: cols, amountStyle: amountStyle}, nil
}

// Rows returns the number of data rows written so far.
func (wb *JournalWorkbook) Rows() int { return wb.rows }

// Append writes one row per line of entries. It fails with a ValidationError
// once the export would exceed MaxJournalRows.
func (wb *JournalWorkbook) Append(entries []domain.JournalEntry) error {
	for i := range entries {
		e := &entries[i]
		if wb.rows+len(e.Lines) > MaxJournalRows {
			return apperrors.NewValidationError("export", fmt.Sprintf("more than %d journal lines match the filter", MaxJournalRows))
		}
		for j := range e.Lines {
			rowIdx := wb.rows + 2 // header is row 1
			r := lineRow{entry: e, line: &e.Lines[j]}
			for colIdx, col := range wb.cols {
				cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
				if err := wb.setCell(cell, col, r); err != nil {
					return fmt.Errorf("failed to write cell %s: %w", cell, err)
				}
			}
			wb.rows++
		}
	}
	return nil
}

func (wb *JournalWorkbook) setCell(cell string, col column, r lineRow) error {
	if !col.Amount {
		return wb.f.SetCellValue(journalSheet, cell, col.Value(r))
	}
	if err := wb.f.SetCellDefault(journalSheet, cell, col.Value(r).(string)); err != nil {
		return err
	}
	return wb.f.SetCellStyle(journalSheet, cell, cell, wb.amountStyle)
}

// WriteTo serializes the workbook to w.
func (wb *JournalWorkbook) WriteTo(w io.Writer) (int64, error) {
	return wb.f.WriteTo(w)
}

// Close releases the workbook's resources.
func (wb *JournalWorkbook) Close() error {
	return wb.f.Close()
}

func stringPtr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
