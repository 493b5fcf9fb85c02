// ABOUTME: Spreadsheet export of a snapshot via excelize
// ABOUTME: One sheet per collection with a bold header row
package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"pipecrm/models"
)

// WriteXLSX writes the snapshot to path as a workbook with one sheet per
// collection.
func WriteXLSX(snap Snapshot, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Contacts"); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := writeSheet(f, "Contacts", headerStyle, contactRows(snap.Contacts)); err != nil {
		return err
	}
	for _, sheet := range []string{"Deals", "Activities"} {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}
	}
	if err := writeSheet(f, "Deals", headerStyle, dealRows(snap.Deals)); err != nil {
		return err
	}
	if err := writeSheet(f, "Activities", headerStyle, activityRows(snap.Activities)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// writeSheet fills a sheet with a header row plus data rows. rows[0] is the
// header.
func writeSheet(f *excelize.File, sheet string, headerStyle int, rows [][]string) error {
	for colIdx, header := range rows[0] {
		cell, err := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set header: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
	}

	for rowIdx, row := range rows[1:] {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set cell: %w", err)
			}
		}
	}
	return nil
}

func contactRows(contacts []models.Contact) [][]string {
	rows := [][]string{{"ID", "Name", "Email", "Phone", "Company", "Position", "Status", "Last Contacted", "Created At", "Assigned To"}}
	for _, c := range contacts {
		rows = append(rows, []string{
			c.ID, c.Name, c.Email, c.Phone, c.Company, c.Position, c.Status,
			c.LastContacted.Format(time.RFC3339), c.CreatedAt.Format(time.RFC3339), c.AssignedTo,
		})
	}
	return rows
}

func dealRows(deals []models.Deal) [][]string {
	rows := [][]string{{"ID", "Name", "Value", "Stage", "Contact ID", "Probability", "Expected Close", "Created At", "Updated At", "Assigned To"}}
	for _, d := range deals {
		rows = append(rows, []string{
			d.ID, d.Name, strconv.FormatFloat(d.Value, 'f', -1, 64), d.Stage, d.ContactID,
			strconv.Itoa(d.Probability), d.ExpectedCloseDate.Format(time.RFC3339),
			d.CreatedAt.Format(time.RFC3339), d.UpdatedAt.Format(time.RFC3339), d.AssignedTo,
		})
	}
	return rows
}

func activityRows(activities []models.Activity) [][]string {
	rows := [][]string{{"ID", "Type", "Title", "Description", "Created At", "Created By", "Related Type", "Related ID", "Completed", "Due Date"}}
	for _, a := range activities {
		completed := ""
		if a.Completed != nil {
			completed = strconv.FormatBool(*a.Completed)
		}
		due := ""
		if a.DueDate != nil {
			due = a.DueDate.Format(time.RFC3339)
		}
		rows = append(rows, []string{
			a.ID, a.Type, a.Title, a.Description, a.CreatedAt.Format(time.RFC3339),
			a.CreatedBy, a.RelatedTo.Type, a.RelatedTo.ID, completed, due,
		})
	}
	return rows
}
