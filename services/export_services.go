package services

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ExportScoreboardXLSX renders a competition scoreboard as a spreadsheet
// with one sheet per category, suitable for printing official results
func ExportScoreboardXLSX(competitionID string) (*bytes.Buffer, string, error) {
	board, err := BuildScoreboard(competitionID)
	if err != nil {
		return nil, "", err
	}

	xlsx := excelize.NewFile()
	defer xlsx.Close()

	header, err := xlsx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to build header style: %w", err)
	}

	for i, group := range board.Categories {
		sheet := sheetName(group.CategoryName, i)
		if i == 0 {
			xlsx.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := xlsx.NewSheet(sheet); err != nil {
				return nil, "", fmt.Errorf("failed to add sheet %s: %w", sheet, err)
			}
		}

		xlsx.SetCellValue(sheet, "A1", board.Competition.Name)
		xlsx.SetCellValue(sheet, "A2", group.DisciplineName+" / "+group.CategoryName)

		columns := []string{"Pos", "Athlete", "Club", "Total", "Points"}
		for col, title := range columns {
			cell, _ := excelize.CoordinatesToCellName(col+1, 4)
			xlsx.SetCellValue(sheet, cell, title)
			xlsx.SetCellStyle(sheet, cell, cell, header)
		}

		for row, line := range group.Lines {
			values := []interface{}{line.Position, line.AthleteName, line.ClubName, line.Total, line.Points}
			for col, value := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+5)
				xlsx.SetCellValue(sheet, cell, value)
			}
		}

		xlsx.SetColWidth(sheet, "B", "C", 30)
	}

	buffer, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write spreadsheet: %w", err)
	}

	filename := "Resultados_" + sanitizeFilename(board.Competition.Name) + ".xlsx"
	return buffer, filename, nil
}

// sheetName keeps sheet titles inside the 31-character XLSX limit and
// unique across categories
func sheetName(categoryName string, index int) string {
	name := categoryName
	if name == "" {
		name = "Category " + strconv.Itoa(index+1)
	}
	if len(name) > 28 {
		name = name[:28]
	}
	return name + " " + strconv.Itoa(index+1)
}

func sanitizeFilename(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ', r == '-', r == '_':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "competencia"
	}
	return string(out)
}
