package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/caesar-dat-com/NAJU/internal/records"
)

// renderPatientTable prints one line per patient, most relevant columns
// only. Full detail is the show command's job.
func renderPatientTable(w io.Writer, patients []records.Patient) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDOCUMENT\tINSURER\tUPDATED")
	for _, p := range patients {
		doc := p.DocNumber
		if p.DocType != "" && doc != "" {
			doc = p.DocType + " " + doc
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, doc, p.Insurer, p.UpdatedAt)
	}
	tw.Flush()
}

// renderPatientDetail prints every stored field of one patient.
func renderPatientDetail(w io.Writer, p records.Patient) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := []struct{ label, value string }{
		{"ID", p.ID},
		{"Name", p.Name},
		{"Document type", p.DocType},
		{"Document number", p.DocNumber},
		{"Insurer", p.Insurer},
		{"Birth date", p.BirthDate},
		{"Sex", p.Sex},
		{"Phone", p.Phone},
		{"Email", p.Email},
		{"Address", p.Address},
		{"Emergency contact", p.EmergencyContact},
		{"Notes", p.Notes},
		{"Photo", p.PhotoAbsPath},
		{"Created", p.CreatedAt},
		{"Updated", p.UpdatedAt},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", r.label, r.value)
	}
	tw.Flush()
}

// renderFileTable prints one line per stored file.
func renderFileTable(w io.Writer, files []records.FileRecord) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tNAME\tADDED\tPATH")
	for _, f := range files {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", f.ID, f.Kind, f.Filename, f.CreatedAt, f.AbsPath)
	}
	tw.Flush()
}
