package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/labstock-backend/internal/data/repos"
	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/pkg/pointers"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

var csvColumns = []string{
	"ID", "Drug Name", "Stock Concentration", "Unit", "Storage Temperature",
	"Supplier", "Preparation Date", "Notes", "Solvents", "Solubility",
	"Light Sensitive", "Preparation Time", "Expiration Time", "Sterility",
	"Lot Number", "Product Number", "Storage Section", "Storage Row", "Storage Column",
}

// ImportReport tallies one CSV import run. Errors carries the per-row
// messages in row order; a rolled-back import resets Imported but keeps
// the messages gathered so far.
type ImportReport struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

type TransferService interface {
	ExportCSV(ctx context.Context) (string, []byte, error)
	ImportCSV(ctx context.Context, src io.Reader, skipDuplicates bool) (*ImportReport, error)
}

type transferService struct {
	db       *gorm.DB
	log      *logger.Logger
	drugRepo repos.DrugRepo
}

func NewTransferService(db *gorm.DB, baseLog *logger.Logger, drugRepo repos.DrugRepo) TransferService {
	return &transferService{
		db:       db,
		log:      baseLog.With("service", "TransferService"),
		drugRepo: drugRepo,
	}
}

// ExportCSV renders the full inventory in list order (newest first) and
// returns the timestamped attachment name alongside the document bytes.
// Zero concentrations and grid coordinates export as blank cells.
func (s *transferService) ExportCSV(ctx context.Context) (string, []byte, error) {
	rows, err := s.drugRepo.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return "", nil, fmt.Errorf("export csv: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvColumns); err != nil {
		return "", nil, fmt.Errorf("export csv: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatInt(r.ID, 10),
			r.DrugName,
			csvFloat(r.StockConcentration),
			r.StockUnit,
			r.StorageTemp,
			r.Supplier,
			r.PreparationDate,
			r.Notes,
			r.Solvents,
			r.Solubility,
			r.LightSensitive,
			r.PreparationTime,
			r.ExpirationTime,
			r.Sterility,
			r.LotNumber,
			r.ProductNumber,
			stringOrBlank(r.StorageSection),
			csvInt(r.StorageRow),
			csvInt(r.StorageColumn),
		}
		if err := w.Write(record); err != nil {
			return "", nil, fmt.Errorf("export csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, fmt.Errorf("export csv: %w", err)
	}

	filename := "lab_inventory_" + time.Now().Format("20060102_150405") + ".csv"
	s.log.Info("inventory exported", "rows", len(rows), "filename", filename)
	return filename, buf.Bytes(), nil
}

// ImportCSV loads inventory rows from a CSV document inside one transaction.
// Row problems (missing name, duplicate, bad insert) are recorded and the
// import moves on; a malformed document rolls everything back and reports a
// single critical error while keeping the per-row messages gathered so far.
func (s *transferService) ImportCSV(ctx context.Context, src io.Reader, skipDuplicates bool) (*ImportReport, error) {
	report := &ImportReport{Errors: []string{}}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		reader := csv.NewReader(src)
		reader.FieldsPerRecord = -1

		header, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		col := make(map[string]int, len(header))
		for i, name := range header {
			col[name] = i
		}
		field := func(rec []string, name string) string {
			i, ok := col[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		rowNum := 1
		for {
			rec, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			rowNum++

			drugName := field(rec, "Drug Name")
			if drugName == "" {
				report.Errors = append(report.Errors, fmt.Sprintf("Row %d: Missing drug name", rowNum))
				continue
			}

			if skipDuplicates {
				// Counting inside the transaction also catches rows
				// inserted earlier in this same import.
				n, err := s.drugRepo.CountByName(dbc, drugName)
				if err != nil {
					return err
				}
				if n > 0 {
					report.Skipped++
					continue
				}
			}

			row := &types.Drug{
				DrugName:           drugName,
				StockConcentration: parseFloatField(field(rec, "Stock Concentration")),
				StockUnit:          field(rec, "Unit"),
				StorageTemp:        field(rec, "Storage Temperature"),
				Supplier:           field(rec, "Supplier"),
				PreparationDate:    field(rec, "Preparation Date"),
				Notes:              field(rec, "Notes"),
				Solvents:           field(rec, "Solvents"),
				Solubility:         field(rec, "Solubility"),
				LightSensitive:     field(rec, "Light Sensitive"),
				PreparationTime:    field(rec, "Preparation Time"),
				ExpirationTime:     field(rec, "Expiration Time"),
				Sterility:          field(rec, "Sterility"),
				LotNumber:          field(rec, "Lot Number"),
				ProductNumber:      field(rec, "Product Number"),
				StorageRow:         parseIntField(field(rec, "Storage Row")),
				StorageColumn:      parseIntField(field(rec, "Storage Column")),
			}
			if sect := field(rec, "Storage Section"); sect != "" {
				row.StorageSection = pointers.String(sect)
			}

			if _, err := s.drugRepo.Create(dbc, row); err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
				continue
			}
			report.Imported++
		}
		return nil
	})
	if err != nil {
		// Rolled back: nothing counted as imported survives.
		report.Imported = 0
		report.Errors = append(report.Errors, "Critical error - import rolled back: "+err.Error())
		s.log.Error("csv import rolled back", "error", err)
		return report, nil
	}

	s.log.Info("csv import finished",
		"imported", report.Imported, "skipped", report.Skipped, "errors", len(report.Errors))
	return report, nil
}

func csvFloat(v *float64) string {
	if v == nil || *v == 0 {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func csvInt(v *int) string {
	if v == nil || *v == 0 {
		return ""
	}
	return strconv.Itoa(*v)
}

func stringOrBlank(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// parseFloatField follows the import contract: blank or unparseable numeric
// cells load as NULL rather than failing the row.
func parseFloatField(v string) *float64 {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseIntField(v string) *int {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}
