package ingesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook monta um .xlsx em memória com uma única aba
func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Planilha1"
	idx, err := f.NewSheet(sheetName)
	require.NoError(t, err)
	f.SetActiveSheet(idx)
	require.NoError(t, f.DeleteSheet("Sheet1"))

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := row
		require.NoError(t, f.SetSheetRow(sheetName, cell, &values))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadWorkbook_XLSX(t *testing.T) {
	content := buildWorkbook(t, [][]any{
		{"Nome Cliente", "Valor Total", "Data"},
		{"Acme", 1000, 45354},
		{},
		{"Beta", 250.5, "05/03/2024"},
	})

	sheet, err := ReadWorkbook("contratos.XLSX", content)

	require.NoError(t, err)
	assert.Equal(t, "Planilha1", sheet.Name)
	assert.Equal(t, []string{"Nome Cliente", "Valor Total", "Data"}, sheet.Header)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, []string{"Acme", "1000", "45354"}, sheet.Rows[0])
	assert.Equal(t, []string{"Beta", "250.5", "05/03/2024"}, sheet.Rows[1])
}

func TestReadWorkbook_HeaderIsFirstFilledRow(t *testing.T) {
	content := buildWorkbook(t, [][]any{
		{},
		{"", " "},
		{"Nome Cliente", "Valor Total", "Data"},
		{"Acme", 1000, "05/03/2024"},
	})

	sheet, err := ReadWorkbook("contratos.xlsx", content)

	require.NoError(t, err)
	assert.Equal(t, []string{"Nome Cliente", "Valor Total", "Data"}, sheet.Header)
	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, "Acme", sheet.Rows[0][0])
}

func TestReadWorkbook_RequiresHeaderAndData(t *testing.T) {
	content := buildWorkbook(t, [][]any{
		{"Nome Cliente", "Valor Total", "Data"},
	})

	_, err := ReadWorkbook("contratos.xlsx", content)

	assert.ErrorIs(t, err, ErrEmptyWorkbook)
}

func TestReadWorkbook_UnsupportedExtension(t *testing.T) {
	_, err := ReadWorkbook("contratos.csv", []byte("Nome Cliente;Valor Total"))

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadWorkbook_CorruptFiles(t *testing.T) {
	_, err := ReadWorkbook("quebrado.xlsx", []byte("isto não é um zip"))
	assert.ErrorIs(t, err, ErrCorruptWorkbook)

	_, err = ReadWorkbook("quebrado.xls", []byte("isto não é um arquivo BIFF"))
	assert.Error(t, err)
}

func TestSupportedExtension(t *testing.T) {
	assert.True(t, SupportedExtension("a.xlsx"))
	assert.True(t, SupportedExtension("A.XLS"))
	assert.False(t, SupportedExtension("a.csv"))
	assert.False(t, SupportedExtension("xlsx"))
}
