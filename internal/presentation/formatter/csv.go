package formatter

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/crmkit/go-crm-timeline/internal/core/model"
	"github.com/crmkit/go-crm-timeline/internal/core/timeline"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(result timeline.Result) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	headers := []string{
		"Bucket", "Id", "Kind", "Title", "Status",
		"Date", "Time", "When", "Tags", "Description",
	}
	if err := w.Write(headers); err != nil {
		return err
	}

	if err := f.writeBucket(w, "upcoming", result.Upcoming); err != nil {
		return err
	}
	return f.writeBucket(w, "past", result.Past)
}

func (f *CSVFormatter) writeBucket(w *csv.Writer, bucket string, activities []model.Activity) error {
	for _, a := range activities {
		record := []string{
			bucket,
			a.ID,
			string(a.Kind),
			a.Title,
			string(a.Status),
			a.DateLabel,
			a.TimeLabel,
			a.RelativeLabel,
			strings.Join(a.Meta, "; "),
			a.Description,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
