// Package export renders payments as documents: an xlsx spreadsheet of all
// records and a PDF receipt for one record.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"pagamentos/models"
)

// SpreadsheetFilename download name of the spreadsheet
const SpreadsheetFilename = "pagamentos.xlsx"

// SheetName name of the only sheet
const SheetName = "Pagamentos"

// SpreadsheetContentType xlsx MIME type
const SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SpreadsheetHeaders ID followed by the field labels in table order.
func SpreadsheetHeaders() []string {
	headers := make([]string, 0, len(models.PaymentFields)+1)
	headers = append(headers, "ID")
	for _, f := range models.PaymentFields {
		headers = append(headers, f.Label)
	}
	return headers
}

// ToSpreadsheet writes one header row and one row per record, in input order.
// Cells hold the raw field values.
func ToSpreadsheet(records []models.Payment) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := SpreadsheetHeaders()
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	// column widths
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	_ = f.SetColWidth(SheetName, "A", "A", 8)
	_ = f.SetColWidth(SheetName, "B", "E", 20)
	_ = f.SetColWidth(SheetName, "F", lastCol, 12)

	// header
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &row); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	// data
	for i := range records {
		p := &records[i]
		values := make([]interface{}, 0, len(headers))
		values = append(values, p.ID)
		for _, field := range models.PaymentFields {
			values = append(values, field.Get(p))
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
