package portability

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/xuri/excelize/v2"

	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

// ArchiveVersion is the backup format version. Import accepts this shape.
const ArchiveVersion = "1.0"

// Archive is the JSON backup envelope.
type Archive struct {
	Workouts   []entity.Workout `json:"workouts"`
	ExportDate string           `json:"exportDate"`
	Version    string           `json:"version"`
}

var csvHeader = []string{
	"Date", "Workout Name", "Exercise", "Set Number",
	"Weight", "Reps", "RPE", "Personal Record", "Notes",
}

// ExportJSON serializes the workout history into the versioned backup
// envelope.
func ExportJSON(workouts []entity.Workout, now time.Time) ([]byte, error) {
	archive := Archive{
		Workouts:   workouts,
		ExportDate: now.UTC().Format(time.RFC3339),
		Version:    ArchiveVersion,
	}
	data, err := sonic.ConfigDefault.MarshalIndent(archive, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export json: %w", err)
	}
	return data, nil
}

// The workout name, exercise and notes columns are quoted unconditionally;
// the rest only when the value needs escaping.
var csvTextColumns = map[int]bool{1: true, 2: true, 8: true}

// ExportCSV writes one row per set. Workouts without sets produce no rows.
func ExportCSV(w io.Writer, workouts []entity.Workout) error {
	if err := writeCSVRow(w, csvHeader, nil); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range workouts {
		for _, record := range setRecords(&workouts[i]) {
			if err := writeCSVRow(w, record, csvTextColumns); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	return nil
}

func writeCSVRow(w io.Writer, record []string, forceQuote map[int]bool) error {
	var row strings.Builder
	for i, field := range record {
		if i > 0 {
			row.WriteByte(',')
		}
		if forceQuote[i] || strings.ContainsAny(field, ",\"\n") {
			row.WriteByte('"')
			row.WriteString(strings.ReplaceAll(field, `"`, `""`))
			row.WriteByte('"')
		} else {
			row.WriteString(field)
		}
	}
	row.WriteByte('\n')
	_, err := io.WriteString(w, row.String())
	return err
}

// ExportXLSX builds a single-sheet spreadsheet with the same columns as the
// CSV export.
func ExportXLSX(workouts []entity.Workout) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for col, name := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell name: %w", err)
		}
		if err = f.SetCellValue(sheet, cell, name); err != nil {
			return nil, fmt.Errorf("write header cell: %w", err)
		}
	}
	row := 2
	for i := range workouts {
		for _, record := range setRecords(&workouts[i]) {
			for col, value := range record {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return nil, fmt.Errorf("cell name: %w", err)
				}
				if err = f.SetCellValue(sheet, cell, value); err != nil {
					return nil, fmt.Errorf("write cell: %w", err)
				}
			}
			row++
		}
	}
	return f, nil
}

func setRecords(w *entity.Workout) [][]string {
	records := make([][]string, 0)
	for i := range w.Exercises {
		ex := &w.Exercises[i]
		for setIndex := range ex.Sets {
			set := &ex.Sets[setIndex]
			rpe := ""
			if set.RPE != nil {
				rpe = strconv.Itoa(*set.RPE)
			}
			pr := "No"
			if set.IsPersonalRecord {
				pr = "Yes"
			}
			records = append(records, []string{
				w.Date,
				w.Name,
				ex.Name,
				strconv.Itoa(setIndex + 1),
				strconv.FormatFloat(set.Weight, 'f', -1, 64),
				strconv.Itoa(set.Reps),
				rpe,
				pr,
				ex.Notes,
			})
		}
	}
	return records
}
