package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	"github.com/SscSPs/greenpages_backend/internal/utils/export"
)

func sampleEntry() domain.JournalEntry {
	ref := "r1"
	return domain.JournalEntry{
		EntryID:     "e1",
		Description: "Renewal payment",
		EntryDate:   time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Source:      domain.SourceRenewalPayment,
		SourceRef:   &ref,
		CreatedBy:   "agent-1",
		Lines: []domain.JournalLine{
			{LineNo: 1, AccountCode: "1000", Debit: decimal.RequireFromString("250.5"), Credit: decimal.Zero},
			{LineNo: 2, AccountCode: "4000", Debit: decimal.Zero, Credit: decimal.RequireFromString("250.5")},
		},
	}
}

func readRows(t *testing.T, wb *export.JournalWorkbook) [][]string {
	t.Helper()
	var buf bytes.Buffer
	_, err := wb.WriteTo(&buf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Journal")
	require.NoError(t, err)
	return rows
}

func TestJournalWorkbook_DefaultColumns(t *testing.T) {
	wb, err := export.NewJournalWorkbook("accountant-1")
	require.NoError(t, err)
	defer wb.Close()

	require.NoError(t, wb.Append([]domain.JournalEntry{sampleEntry()}))
	assert.Equal(t, 2, wb.Rows())

	rows := readRows(t, wb)
	require.Len(t, rows, 3)
	assert.Equal(t, "Entry ID", rows[0][0])
	assert.Equal(t, "Created By", rows[0][10])
	assert.Equal(t, []string{"e1", "2025-03-10", "Renewal payment", "RENEWAL_PAYMENT", "r1", "1", "1000", "250.50", "0.00", "", "agent-1"}, rows[1])
	assert.Equal(t, "4000", rows[2][6])
	assert.Equal(t, "250.50", rows[2][8])
}

func TestJournalWorkbook_SelectedColumns(t *testing.T) {
	wb, err := export.NewJournalWorkbook("accountant-1", "account_code", "unknown", "debit")
	require.NoError(t, err)
	defer wb.Close()

	require.NoError(t, wb.Append([]domain.JournalEntry{sampleEntry()}))

	rows := readRows(t, wb)
	assert.Equal(t, []string{"Account", "Debit"}, rows[0])
	assert.Equal(t, []string{"1000", "250.50"}, rows[1])
}

func TestJournalWorkbook_NoKnownColumns(t *testing.T) {
	_, err := export.NewJournalWorkbook("accountant-1", "nope")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestJournalWorkbook_AmountsAreExactNumbers(t *testing.T) {
	entry := sampleEntry()
	entry.Lines[0].Debit = decimal.RequireFromString("999999999999.99")
	entry.Lines[1].Credit = decimal.RequireFromString("999999999999.99")

	wb, err := export.NewJournalWorkbook("accountant-1", "debit", "credit")
	require.NoError(t, err)
	defer wb.Close()
	require.NoError(t, wb.Append([]domain.JournalEntry{entry}))

	var buf bytes.Buffer
	_, err = wb.WriteTo(&buf)
	require.NoError(t, err)
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	raw, err := f.GetCellValue("Journal", "A2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "999999999999.99", raw)

	cellType, err := f.GetCellType("Journal", "A2")
	require.NoError(t, err)
	assert.NotContains(t, []excelize.CellType{excelize.CellTypeSharedString, excelize.CellTypeInlineString}, cellType)

	raw, err = f.GetCellValue("Journal", "B3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "999999999999.99", raw)
}
