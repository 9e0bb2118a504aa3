package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/gradecraft/rosterctl/pkg/config"
	"github.com/gradecraft/rosterctl/pkg/roster"
)

// studentView is the JSON rendering of a record.
type studentView struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Kind  string  `json:"kind"`
	Grade float64 `json:"grade"`
	Major string  `json:"major"`
}

func newStudentView(rec *roster.StudentRecord) studentView {
	return studentView{
		ID:    rec.ID(),
		Name:  rec.Name(),
		Kind:  rec.Kind().String(),
		Grade: rec.Grade(),
		Major: rec.Major(),
	}
}

// renderRecords writes records in the requested format.
func renderRecords(w io.Writer, records []*roster.StudentRecord, format string) error {
	if format == config.FormatJSON {
		return renderRecordsJSON(w, records)
	}
	return renderRecordsTable(w, records)
}

// renderRecordsTable writes records in table format.
func renderRecordsTable(w io.Writer, records []*roster.StudentRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tNAME\tKIND\tGRADE\tMAJOR")
	for _, rec := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			rec.ID(),
			rec.Name(),
			rec.Kind(),
			strconv.FormatFloat(rec.Grade(), 'f', -1, 64),
			rec.Major())
	}
	return nil
}

// renderRecordsJSON writes records as an indented JSON array.
func renderRecordsJSON(w io.Writer, records []*roster.StudentRecord) error {
	views := make([]studentView, 0, len(records))
	for _, rec := range records {
		views = append(views, newStudentView(rec))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(views)
}
