package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"boq_service/internal/domain/entities"
	"boq_service/internal/usecase/interfaces"
)

// FileName is the fixed name of the downloaded workbook.
const FileName = "BOQ_Generated.xlsx"

const sheetName = "BOQ"

var headers = []string{"Category", "Description", "Unit", "Rate", "Quantity", "Amount"}

// XlsxExporter renders a ledger as a single-sheet workbook with the BOQ
// table's columns in their on-screen order.

type XlsxExporter struct{}

var _ interfaces.IWorkbookExporter = (*XlsxExporter)(nil)

func NewXlsxExporter() *XlsxExporter {
	return &XlsxExporter{}
}

func (e *XlsxExporter) Write(items []entities.LineItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for i, it := range items {
		row := []interface{}{it.Category, it.Description, it.Unit, it.Rate, it.Quantity, it.Amount}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
