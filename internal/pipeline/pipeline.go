package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spacesedan/commentlabeler/internal/models"
)

const (
	MsgUnreadableCSV = "Could not read CSV. Make sure it is a valid CSV file."
	MsgMissingColumn = "CSV must contain a 'comment_text' column."

	filenameTimeLayout = "20060102_150405"
)

// Labeler classifies one cleaned comment. Implementations must not fail:
// problems are reported through a fallback LabelResult.
type Labeler interface {
	Classify(ctx context.Context, text string) models.LabelResult
}

// BadInputError is returned for uploads that cannot be processed. Msg is
// safe to show to the client; Err holds the underlying cause, if any.
type BadInputError struct {
	Msg string
	Err error
}

func (e *BadInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *BadInputError) Unwrap() error {
	return e.Err
}

// Result is the labeled CSV ready to be sent as a download.
type Result struct {
	Data      []byte
	Filename  string
	Rows      int
	Fallbacks int
}

type Pipeline struct {
	labeler Labeler
	now     func() time.Time
}

func New(labeler Labeler) *Pipeline {
	return &Pipeline{labeler: labeler, now: time.Now}
}

// Process reads an uploaded CSV, labels every comment_text value in order
// and returns the augmented CSV. Rows are labeled one at a time; the next
// model call starts only after the previous one has returned.
func (p *Pipeline) Process(ctx context.Context, upload io.Reader) (Result, error) {
	table, err := ReadTable(upload)
	if err != nil {
		return Result{}, &BadInputError{Msg: MsgUnreadableCSV, Err: err}
	}

	col := table.ColumnIndex(models.ColumnCommentText)
	if col < 0 {
		return Result{}, &BadInputError{Msg: MsgMissingColumn}
	}

	slog.Info("[Pipeline] Labeling comments",
		slog.Int("rows", len(table.Rows)),
		slog.Int("columns", len(table.Header)))
	start := time.Now()

	header := make([]string, 0, len(table.Header)+1+len(models.LabelColumns))
	header = append(header, table.Header...)
	header = append(header, models.ColumnCommentClean)
	header = append(header, models.LabelColumns...)

	out := make([][]string, 0, len(table.Rows))
	fallbacks := 0
	for i, row := range table.Rows {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("labeling stopped at row %d of %d: %w", i+1, len(table.Rows), err)
		}

		clean := CleanText(row[col])
		res := p.labeler.Classify(ctx, clean)
		if res.IsFallback() {
			fallbacks++
		}

		record := make([]string, 0, len(header))
		record = append(record, row...)
		record = append(record, clean)
		record = append(record, res.Label.Values()...)
		out = append(out, record)

		slog.Debug("[Pipeline] Row labeled",
			slog.Int("row", i+1),
			slog.Bool("fallback", res.IsFallback()))
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, header, out); err != nil {
		return Result{}, fmt.Errorf("serializing labeled CSV: %w", err)
	}

	slog.Info("[Pipeline] Labeling complete",
		slog.Int("rows", len(out)),
		slog.Int("fallbacks", fallbacks),
		slog.Duration("elapsed", time.Since(start)))

	return Result{
		Data:      buf.Bytes(),
		Filename:  OutputFilename(p.now()),
		Rows:      len(out),
		Fallbacks: fallbacks,
	}, nil
}

// OutputFilename names the download after the wall-clock time it was built.
func OutputFilename(t time.Time) string {
	return fmt.Sprintf("comments_labeled_%s.csv", t.Format(filenameTimeLayout))
}
