package benchsheet

import (
	"encoding/json"
	"io/fs"
	"os"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/logging"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/parser"
	"github.com/xuri/excelize/v2"
)

// Append loads the JSON records at opts.InputPath and appends one row per
// record to opts.SheetName in the workbook at opts.OutputPath, after a blank
// separator row.
//
// Empty elements are skipped. Elements that fail to map or write are logged
// and recorded in the report; the rest of the batch continues. Row indexes
// are only consumed by rows actually written, so a row's index always equals
// its worksheet row number.
//
// A non-nil report is returned whenever the workbook was opened, including
// together with ErrPartialBatch in strict mode.
func Append(opts Options, logger logrus.FieldLogger) (*models.BatchReport, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	sheetName := opts.sheetName()

	report := &models.BatchReport{
		RunID:  uuid.NewString(),
		Input:  opts.InputPath,
		Output: opts.savePath(),
		Sheet:  sheetName,
	}
	log := logger.WithFields(logrus.Fields{
		"run_id": report.RunID,
		"sheet":  sheetName,
	})

	items, err := loadInput(opts.InputPath)
	if err != nil {
		log.WithError(err).Error("loading input failed")
		return nil, err
	}

	f, err := openWorkbook(opts.OutputPath)
	if err != nil {
		log.WithError(err).Error("opening workbook failed")
		return nil, err
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		err = errors.Wrapf(ErrSheetNotFound, "%s in %s", sheetName, opts.OutputPath)
		log.WithError(err).Error("opening workbook failed")
		return nil, err
	}

	maxRow, err := parser.MaxRow(f, sheetName)
	if err != nil {
		return nil, errors.Wrap(err, "read sheet")
	}
	report.SeparatorRow = maxRow + 1
	report.FirstRow = maxRow + 2
	log.WithField("row", report.SeparatorRow).Info("starting row")

	index := report.FirstRow
	written := make([]models.Row, 0, len(items))
	for pos, raw := range items {
		if parser.IsEmpty(raw) {
			report.Skipped = append(report.Skipped, pos)
			log.WithField("position", pos).Debug("skipping empty element")
			continue
		}

		row, err := MapRow(index, raw)
		if err != nil {
			var merr *MappingError
			if errors.As(err, &merr) {
				merr.Position = pos
			}
			report.Failures = append(report.Failures, failure(pos, "mapping", err))
			log.WithFields(logrus.Fields{"position": pos, "row": index}).
				WithError(err).Error("error while parsing json data")
			continue
		}

		if err := writeRow(f, sheetName, row); err != nil {
			aerr := &AppendError{Position: pos, Row: index, Err: err}
			report.Failures = append(report.Failures, failure(pos, "append", aerr))
			log.WithFields(logrus.Fields{"position": pos, "row": index}).
				WithError(err).Error("error while appending row")
			continue
		}

		written = append(written, row)
		log.WithFields(logrus.Fields{"position": pos, "row": index}).Info("row added")
		index++
	}

	report.Appended = len(written)
	report.Summary = Summarize(written)

	if opts.Strict && !report.Complete() {
		log.WithField("failures", len(report.Failures)).Warn("strict mode, workbook not saved")
		return report, ErrPartialBatch
	}

	if opts.DryRun {
		log.Info("dry run, workbook not saved")
		return report, nil
	}

	if err := saveWorkbook(f, opts); err != nil {
		log.WithError(err).Error("saving workbook failed")
		return report, err
	}
	report.Saved = true

	fields := logrus.Fields{
		"appended": report.Appended,
		"skipped":  len(report.Skipped),
		"failed":   len(report.Failures),
		"status":   report.Status(),
	}
	if s := report.Summary; s != nil {
		fields["total_requests"] = s.TotalRequests
		fields["mean_average"] = s.MeanAverage
		fields["max_p99"] = s.MaxP99
	}
	log.WithFields(fields).Info("workbook saved")

	return report, nil
}

func loadInput(path string) ([]json.RawMessage, error) {
	items, err := parser.LoadRecords(path)
	if err == nil {
		return items, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(ErrFileNotFound, "input %s", path)
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return nil, errors.Wrapf(ErrInvalidInput, "%s: %v", path, err)
	}
	return nil, errors.Wrap(err, "read input")
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(ErrFileNotFound, "workbook %s", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open workbook %s", path)
	}
	return f, nil
}

func saveWorkbook(f *excelize.File, opts Options) error {
	if opts.SaveAs != "" {
		if err := f.SaveAs(opts.SaveAs); err != nil {
			return errors.Wrapf(err, "save workbook %s", opts.SaveAs)
		}
		return nil
	}
	if err := f.Save(); err != nil {
		return errors.Wrapf(err, "save workbook %s", opts.OutputPath)
	}
	return nil
}

func writeRow(f *excelize.File, sheetName string, row models.Row) error {
	cell, err := excelize.CoordinatesToCellName(1, row.Index)
	if err != nil {
		return err
	}
	values := row.Values()
	return f.SetSheetRow(sheetName, cell, &values)
}

func failure(pos int, stage string, err error) models.Failure {
	fl := models.Failure{Position: pos, Stage: stage, Reason: err.Error()}
	var merr *MappingError
	var aerr *AppendError
	switch {
	case errors.As(err, &merr):
		fl.Row = merr.Index
		fl.Fields = merr.Fields
	case errors.As(err, &aerr):
		fl.Row = aerr.Row
	}
	return fl
}
