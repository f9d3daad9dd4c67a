package ingesting

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	extXLSX = ".xlsx"
	extXLS  = ".xls"
)

// Sheet é a primeira aba do arquivo: cabeçalho e linhas de dados não vazias
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// SupportedExtension informa se o arquivo tem uma extensão aceita
func SupportedExtension(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	return ext == extXLSX || ext == extXLS
}

// ReadWorkbook lê a primeira aba de um arquivo .xlsx ou .xls
func ReadWorkbook(fileName string, content []byte) (Sheet, error) {
	var (
		sheet Sheet
		err   error
	)

	switch strings.ToLower(filepath.Ext(fileName)) {
	case extXLSX:
		sheet, err = readXLSX(content)
	case extXLS:
		sheet, err = readXLS(content)
	default:
		return Sheet{}, ErrUnsupportedFormat
	}
	if err != nil {
		return Sheet{}, err
	}

	if len(sheet.Header) == 0 || len(sheet.Rows) == 0 {
		return Sheet{}, ErrEmptyWorkbook
	}

	return sheet, nil
}

func readXLSX(content []byte) (Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return Sheet{}, errors.Wrap(ErrCorruptWorkbook, err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Sheet{}, ErrEmptyWorkbook
	}

	// RawCellValue mantém datas como número serial
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return Sheet{}, errors.Wrap(ErrCorruptWorkbook, err.Error())
	}

	return splitRows(sheets[0], rows), nil
}

func readXLS(content []byte) (sheet Sheet, err error) {
	// a biblioteca entra em pânico com alguns arquivos malformados
	defer func() {
		if r := recover(); r != nil {
			sheet = Sheet{}
			err = errors.Wrap(ErrCorruptWorkbook, fmt.Sprint(r))
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(content), "utf-8")
	if err != nil {
		return Sheet{}, errors.Wrap(ErrCorruptWorkbook, err.Error())
	}

	first := wb.GetSheet(0)
	if first == nil {
		return Sheet{}, ErrEmptyWorkbook
	}

	rows := make([][]string, 0, int(first.MaxRow)+1)
	for i := 0; i <= int(first.MaxRow); i++ {
		row := first.Row(i)
		if row == nil || row.LastCol() < 0 {
			continue
		}

		cells := make([]string, 0, row.LastCol()+1)
		for j := 0; j <= row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}

	return splitRows(first.Name, rows), nil
}

// splitRows separa o cabeçalho e descarta linhas totalmente em branco
func splitRows(name string, rows [][]string) Sheet {
	sheet := Sheet{Name: name}

	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if sheet.Header == nil {
			sheet.Header = row
			continue
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
