package postgres

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"advisor-alert-srv/internal/model"
	"advisor-alert-srv/pkg/calendar"
)

// docDate accepts the date shapes found in stored documents: strings, epoch
// milliseconds and {"seconds": n} timestamp objects. Any other shape decodes
// to an empty value so only the rules reading this field skip the record.
type docDate string

func (d *docDate) UnmarshalJSON(b []byte) error {
	*d = ""
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			*d = docDate(s)
		}
	case b[0] == '{':
		var ts struct {
			Seconds      json.RawMessage `json:"seconds"`
			LegacySecond json.RawMessage `json:"_seconds"`
		}
		if err := json.Unmarshal(b, &ts); err != nil {
			return nil
		}
		secs := ts.Seconds
		if len(secs) == 0 || bytes.Equal(secs, []byte("null")) {
			secs = ts.LegacySecond
		}
		if ms, ok := epochMillis(secs, 1000); ok {
			*d = docDate(strconv.FormatInt(ms, 10))
		}
	default:
		if ms, ok := epochMillis(b, 1); ok {
			*d = docDate(strconv.FormatInt(ms, 10))
		}
	}
	return nil
}

// epochMillis reads a JSON number and scales it to milliseconds.
func epochMillis(raw json.RawMessage, scale int64) (int64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	if i, err := n.Int64(); err == nil {
		return i * scale, true
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return int64(f * float64(scale)), true
}

// time returns nil when the value is missing or unparsable.
func (d docDate) time(loc *time.Location) *time.Time {
	t, ok := calendar.Parse(string(d), loc)
	if !ok {
		return nil
	}
	return &t
}

// stringList accepts a single string or a list of strings. Non-string
// entries are dropped.
type stringList []string

func (s *stringList) UnmarshalJSON(b []byte) error {
	*s = nil
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '"':
		var one string
		if err := json.Unmarshal(b, &one); err == nil {
			*s = stringList{one}
		}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(b, &items); err != nil {
			return nil
		}
		for _, item := range items {
			var v string
			if err := json.Unmarshal(item, &v); err == nil {
				*s = append(*s, v)
			}
		}
	}
	return nil
}

type userDoc struct {
	Email string `json:"email" validate:"omitempty,email"`
	Name  string `json:"name"`
	Role  string `json:"role" validate:"required"`
}

type clientDoc struct {
	OwnerID      string  `json:"ownerId" validate:"required"`
	Denominacion string  `json:"denominacion"`
	CreatedAt    docDate `json:"createdAt"`
}

type scheduledRunDoc struct {
	FechaInicio docDate `json:"fechaInicio"`
}

type opportunityDoc struct {
	ClientID         string            `json:"clientId" validate:"required"`
	Stage            string            `json:"stage"`
	Title            string            `json:"title"`
	CreatedAt        docDate           `json:"createdAt"`
	UpdatedAt        docDate           `json:"updatedAt"`
	StageChangedAt   docDate           `json:"stageChangedAt"`
	ManualUpdateDate docDate           `json:"manualUpdateDate"`
	CloseDate        docDate           `json:"closeDate"`
	FinalizationDate docDate           `json:"finalizationDate"`
	Periodicidad     stringList        `json:"periodicidad"`
	OrdenesPautado   []scheduledRunDoc `json:"ordenesPautado"`
}

type invoiceDoc struct {
	OpportunityID string  `json:"opportunityId" validate:"required"`
	InvoiceNumber string  `json:"invoiceNumber"`
	Status        string  `json:"status"`
	Date          docDate `json:"date"`
	DateGenerated docDate `json:"dateGenerated"`
}

type prospectDoc struct {
	OwnerID         string  `json:"ownerId" validate:"required"`
	CompanyName     string  `json:"companyName"`
	Status          string  `json:"status"`
	StatusChangedAt docDate `json:"statusChangedAt"`
	CreatedAt       docDate `json:"createdAt"`
	ContactName     string  `json:"contactName"`
}

// decodeDoc unmarshals and validates one stored document into dst.
func (r *implRepository) decodeDoc(data []byte, dst interface{}) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return err
	}
	return r.validate.Struct(dst)
}

func (r *implRepository) toUser(id string, d userDoc) model.User {
	return model.User{ID: id, Email: d.Email, Name: d.Name, Role: d.Role}
}

func (r *implRepository) toClient(id string, d clientDoc) model.Client {
	return model.Client{
		ID:           id,
		OwnerID:      d.OwnerID,
		Denominacion: d.Denominacion,
		CreatedAt:    d.CreatedAt.time(r.loc),
	}
}

func (r *implRepository) toOpportunity(id string, d opportunityDoc) model.Opportunity {
	o := model.Opportunity{
		ID:               id,
		ClientID:         d.ClientID,
		Stage:            model.ParseStage(d.Stage),
		Title:            d.Title,
		CreatedAt:        d.CreatedAt.time(r.loc),
		UpdatedAt:        d.UpdatedAt.time(r.loc),
		StageChangedAt:   d.StageChangedAt.time(r.loc),
		ManualUpdateDate: d.ManualUpdateDate.time(r.loc),
		CloseDate:        d.CloseDate.time(r.loc),
		FinalizationDate: d.FinalizationDate.time(r.loc),
	}
	for _, p := range d.Periodicidad {
		o.Periodicidad = append(o.Periodicidad, model.ParsePeriodicity(p))
	}
	for _, run := range d.OrdenesPautado {
		o.OrdenesPautado = append(o.OrdenesPautado, model.ScheduledRun{FechaInicio: run.FechaInicio.time(r.loc)})
	}
	return o
}

func (r *implRepository) toInvoice(id string, d invoiceDoc) model.Invoice {
	return model.Invoice{
		ID:            id,
		OpportunityID: d.OpportunityID,
		InvoiceNumber: d.InvoiceNumber,
		Status:        model.InvoiceStatus(d.Status),
		Date:          d.Date.time(r.loc),
		DateGenerated: d.DateGenerated.time(r.loc),
	}
}

func (r *implRepository) toProspect(id string, d prospectDoc) model.Prospect {
	return model.Prospect{
		ID:              id,
		OwnerID:         d.OwnerID,
		CompanyName:     d.CompanyName,
		Status:          model.ProspectStatus(d.Status),
		StatusChangedAt: d.StatusChangedAt.time(r.loc),
		CreatedAt:       d.CreatedAt.time(r.loc),
		ContactName:     d.ContactName,
	}
}
