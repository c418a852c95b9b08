package formatter

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/crmkit/go-crm-timeline/internal/core/model"
	"github.com/crmkit/go-crm-timeline/internal/core/timeline"
	"github.com/crmkit/go-crm-timeline/internal/util"
)

type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{
			"Kind", "Title", "Status", "Date", "Time", "When", "Tags",
		},
	}
}

func (f *TableFormatter) Format(result timeline.Result) error {
	f.printSection("Upcoming", result.Upcoming)
	fmt.Println()
	f.printSection("Past", result.Past)
	return nil
}

func (f *TableFormatter) printSection(name string, activities []model.Activity) {
	fmt.Printf("%s (%d)\n", name, len(activities))
	if len(activities) == 0 {
		fmt.Println("  (none)")
		return
	}

	titleWidth := f.titleColumnWidth()
	rows := make([][]string, len(activities))
	for i, a := range activities {
		rows[i] = []string{
			string(a.Kind),
			util.TruncateString(a.Title, titleWidth),
			string(a.Status),
			a.DateLabel,
			a.TimeLabel,
			a.RelativeLabel,
			util.TruncateString(strings.Join(a.Meta, ", "), titleWidth),
		}
	}

	widths := f.columnWidths(rows)
	f.printBorder(widths)
	f.printRow(f.headers, widths)
	f.printBorder(widths)
	for _, row := range rows {
		f.printRow(row, widths)
	}
	f.printBorder(widths)
}

// titleColumnWidth caps free-text columns based on the terminal width so
// wide subjects don't wrap the whole table.
func (f *TableFormatter) titleColumnWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth < 80 {
		termWidth = 100
	}
	width := (termWidth - 50) / 2
	if width < 16 {
		width = 16
	}
	if width > 48 {
		width = 48
	}
	return width
}

func (f *TableFormatter) columnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, h := range f.headers {
		widths[i] = util.GetDisplayWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := util.GetDisplayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (f *TableFormatter) printBorder(widths []int) {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	fmt.Println("+" + strings.Join(parts, "+") + "+")
}

func (f *TableFormatter) printRow(cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = " " + util.PadString(cell, widths[i], true) + " "
	}
	fmt.Println("|" + strings.Join(parts, "|") + "|")
}
