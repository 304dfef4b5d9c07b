package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Relatório"

// ExportReportXLSX renders the current report analytics to a spreadsheet and
// returns the file bytes.
func (a *Analytics) ExportReportXLSX() ([]byte, error) {
	r := a.Report()

	f := excelize.NewFile()
	// WriteTo needs the file open, so Close only on the error paths
	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9EAD3"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create style: %w", err)
	}

	row := 1
	writeRow := func(values ...interface{}) error {
		for col, v := range values {
			if err := setCellValue(f, reportSheet, col+1, row, v); err != nil {
				return err
			}
		}
		row++
		return nil
	}
	writeHeader := func(values ...interface{}) error {
		start, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		end, err := excelize.CoordinatesToCellName(len(values), row)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(reportSheet, start, end, headerStyle); err != nil {
			return err
		}
		return writeRow(values...)
	}

	sections := func() error {
		if err := writeHeader("Resumo", ""); err != nil {
			return err
		}
		summary := [][]interface{}{
			{"Total de processos", r.TotalProcesses},
			{"Concluídos", r.CompletedProcesses},
			{"Ativos", r.ActiveProcesses},
			{"Pendentes", r.PendingProcesses},
			{"Taxa de conclusão (%)", r.CompletionRate},
			{"No prazo", r.Deadline.OnTime},
			{"Atrasados", r.Deadline.Delayed},
			{"Média de dias", r.Deadline.AvgDays},
		}
		for _, line := range summary {
			if err := writeRow(line...); err != nil {
				return err
			}
		}
		row++

		if err := writeHeader("Tipo", "Quantidade", "Percentual"); err != nil {
			return err
		}
		for _, b := range r.ByType {
			if err := writeRow(b.Name, b.Count, b.Percentage); err != nil {
				return err
			}
		}
		row++

		if err := writeHeader("Status", "Quantidade", "Percentual"); err != nil {
			return err
		}
		for _, b := range r.ByStatus {
			if err := writeRow(b.Name, b.Count, b.Percentage); err != nil {
				return err
			}
		}
		row++

		if err := writeHeader("Técnico", "Concluídos", "Ativos", "Eficiência", "Meta"); err != nil {
			return err
		}
		for _, p := range r.TechnicianPerformance {
			if err := writeRow(p.Name, p.Completed, p.Active, p.Efficiency, p.Goal); err != nil {
				return err
			}
		}
		return nil
	}
	if err := sections(); err != nil {
		f.Close()
		return nil, fmt.Errorf("write report: %w", err)
	}

	if err := f.SetColWidth(reportSheet, "A", "A", 28); err != nil {
		f.Close()
		return nil, fmt.Errorf("set column width: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setCellValue(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
