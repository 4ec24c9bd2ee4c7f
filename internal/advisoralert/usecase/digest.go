package usecase

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/internal/model"
	"advisor-alert-srv/pkg/calendar"
	"advisor-alert-srv/pkg/mail"
)

const (
	subjectPrefix  = "Alertas pendientes - "
	objectivesPath = "/objetivos"
)

var digestTemplate = template.Must(template.New("digest").Parse(`<p>Hola {{.Name}},</p>
<p>Tenés {{len .Items}} alertas que requieren tu atención:</p>
<ul>
{{- range .Items}}
<li>{{.}}</li>
{{- end}}
</ul>
<p><a href="{{.Link}}">Ver mis objetivos</a></p>
`))

type digestData struct {
	Name  string
	Items []string
	Link  string
}

func (uc *implUseCase) composeDigest(advisor model.User, pending []advisoralert.Alert, day time.Time) (mail.Message, error) {
	data := digestData{
		Name: advisor.DisplayName(),
		Link: strings.TrimRight(uc.opts.BaseURL, "/") + objectivesPath,
	}
	for _, a := range pending {
		data.Items = append(data.Items, a.EmailSummary)
	}

	var buf bytes.Buffer
	if err := digestTemplate.Execute(&buf, data); err != nil {
		return mail.Message{}, err
	}

	return mail.Message{
		To:      advisor.Email,
		Subject: subjectPrefix + calendar.FormatDisplay(day),
		HTML:    buf.String(),
	}, nil
}
