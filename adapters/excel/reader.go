package excel

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"heatlab/domain/cluster"
)

// MatrixData is a labeled numeric matrix read from a spreadsheet. Blank or
// non-numeric cells become NaN, the missing-value sentinel the clustering
// core expects.
type MatrixData struct {
	RowLabels    []string
	ColumnLabels []string
	Values       cluster.Matrix
}

// MatrixReader reads heatmap matrices from Excel and CSV files. The first
// row holds column labels (the corner cell is ignored) and the first column
// holds row labels.
type MatrixReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewMatrixReader creates a reader for the given file path, picking the
// format from the extension.
func NewMatrixReader(filePath string) *MatrixReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &MatrixReader{filePath: filePath, fileType: fileType}
}

// Read loads the matrix into structured form.
func (r *MatrixReader) Read() (*MatrixData, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("matrix file not found: %s", r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readExcel()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

func (r *MatrixReader) readExcel() (*MatrixData, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	return buildMatrix(rows)
}

func (r *MatrixReader) readCSV() (*MatrixData, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return buildMatrix(rows)
}

func buildMatrix(rows [][]string) (*MatrixData, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("matrix file must have a header row and at least one data row")
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("matrix file must have a label column and at least one data column")
	}
	columnLabels := append([]string(nil), header[1:]...)
	width := len(columnLabels)

	data := &MatrixData{ColumnLabels: columnLabels}
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		data.RowLabels = append(data.RowLabels, strings.TrimSpace(row[0]))

		// Spreadsheet rows drop trailing blanks; pad every row to the
		// header width so the matrix is never ragged.
		vector := make(cluster.Vector, width)
		for j := range vector {
			cell := ""
			if j+1 < len(row) {
				cell = strings.TrimSpace(row[j+1])
			}
			vector[j] = parseCell(cell)
		}
		data.Values = append(data.Values, vector)
	}

	return data, nil
}

// parseCell maps blank and non-numeric cells to NaN.
func parseCell(cell string) float64 {
	if cell == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
