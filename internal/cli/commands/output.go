package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"advisor-alert-srv/internal/advisoralert"

	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

type alertView struct {
	ID           string            `json:"id" yaml:"id"`
	Type         string            `json:"type" yaml:"type"`
	Severity     string            `json:"severity" yaml:"severity"`
	Title        string            `json:"title" yaml:"title"`
	Description  string            `json:"description" yaml:"description"`
	ShouldEmail  bool              `json:"should_email" yaml:"should_email"`
	EmailSummary string            `json:"email_summary" yaml:"email_summary"`
	Meta         map[string]string `json:"meta,omitempty" yaml:"meta,omitempty"`
}

func toViews(alerts []advisoralert.Alert) []alertView {
	views := make([]alertView, 0, len(alerts))
	for _, a := range alerts {
		v := alertView{
			ID:           a.ID,
			Type:         string(a.Type),
			Severity:     string(a.Severity),
			Title:        a.Title,
			Description:  a.Description,
			ShouldEmail:  a.ShouldEmail,
			EmailSummary: a.EmailSummary,
		}
		if len(a.Meta) > 0 {
			v.Meta = make(map[string]string, len(a.Meta))
			for _, m := range a.Meta {
				v.Meta[m.Label] = m.Value
			}
		}
		views = append(views, v)
	}
	return views
}

func writeAlerts(w io.Writer, format string, alerts []advisoralert.Alert) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toViews(alerts))
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toViews(alerts)); err != nil {
			return err
		}
		return enc.Close()
	case outputTable, "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SEVERITY\tTYPE\tEMAIL\tID\tTITLE")
		for _, a := range alerts {
			email := "-"
			if a.ShouldEmail {
				email = "yes"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", a.Severity, a.Type, email, a.ID, a.Title)
		}
		return tw.Flush()
	}
	return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
}
