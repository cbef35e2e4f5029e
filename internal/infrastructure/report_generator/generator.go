package report_generator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/parquet_loader/internal/domain"
)

const (
	headerRowHeight = 8
	rowHeight       = 6
)

var (
	titleProps  = props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}
	headerProps = props.Text{Size: 9, Style: fontstyle.Bold}
	cellProps   = props.Text{Size: 8}
	errorProps  = props.Text{Size: 8, Color: &props.Color{Red: 200}}
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// GenerateReport renders one PDF per run: summary first, then every outcome in stage order.
func (g *Generator) GenerateReport(outputPath string, report *domain.Report) error {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	m.AddRows(text.NewRow(12, "Parquet load run "+report.Run.ID.String(), titleProps))
	m.AddRows(summaryRows(report)...)

	m.AddRows(row.New(headerRowHeight).Add(
		text.NewCol(2, "Stage", headerProps),
		text.NewCol(4, "Subject", headerProps),
		text.NewCol(3, "Target", headerProps),
		text.NewCol(3, "Error", headerProps),
	))

	for _, o := range report.Outcomes {
		m.AddRows(outcomeRow(o))
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save pdf %q: %w", outputPath, err)
	}

	return nil
}

func summaryRows(report *domain.Report) []core.Row {
	run := report.Run

	finished := "-"
	if run.FinishedAt != nil {
		finished = run.FinishedAt.Format(time.RFC3339)
	}

	lines := [][2]string{
		{"Status", string(run.Status)},
		{"Started", run.StartedAt.Format(time.RFC3339)},
		{"Finished", finished},
		{"Objects listed", strconv.Itoa(run.ObjectsCount)},
		{"Load jobs", strconv.Itoa(run.JobsCount)},
		{"Failures", strconv.Itoa(len(report.Failures()))},
	}
	if run.ErrorMessage != "" {
		lines = append(lines, [2]string{"Error", run.ErrorMessage})
	}

	rows := make([]core.Row, 0, len(lines)+1)
	for _, l := range lines {
		rows = append(rows, row.New(rowHeight).Add(
			text.NewCol(3, l[0], headerProps),
			text.NewCol(9, l[1], cellProps),
		))
	}

	return append(rows, row.New(rowHeight).Add(col.New(12)))
}

func outcomeRow(o domain.Outcome) core.Row {
	return row.New(rowHeight).Add(
		text.NewCol(2, string(o.Stage), cellProps),
		text.NewCol(4, o.Subject, cellProps),
		text.NewCol(3, o.Target, cellProps),
		text.NewCol(3, o.ErrorMessage, errorProps),
	)
}
