package report_generator

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/parquet_loader/internal/domain"
)

type outcomeRecord struct {
	RunID string `csv:"run_id"`
	domain.Outcome
}

// OutcomesCSV writes every outcome of a run as one CSV row, header included even for an empty run.
type OutcomesCSV struct{}

func NewOutcomesCSV() *OutcomesCSV {
	return &OutcomesCSV{}
}

func (g *OutcomesCSV) GenerateReport(outputPath string, report *domain.Report) (err error) {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create csv %q: %w", outputPath, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	w := csv.NewWriter(f)
	enc := csvutil.NewEncoder(w)

	if err := enc.EncodeHeader(outcomeRecord{}); err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}

	runID := report.Run.ID.String()
	for _, o := range report.Outcomes {
		if err := enc.Encode(outcomeRecord{RunID: runID, Outcome: o}); err != nil {
			return fmt.Errorf("failed to encode outcome %q: %w", o.Subject, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write csv %q: %w", outputPath, err)
	}

	return nil
}
