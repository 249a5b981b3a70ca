package notifier

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

// Шаблоны писем по типу события. Текстовая и HTML версии
// рендерятся из одних и тех же данных события.

const submittedSubject = "Reservation received: {{.VenueName}} on {{.EventDate}}"

const submittedText = `Dear {{.ClientName}},

We have received your reservation request. Our staff will review it
and confirm shortly.

  Venue:       {{.VenueName}} ({{.Arrangement}})
  Date:        {{.EventDate}}{{if .StartTime}}
  Start time:  {{.StartTime}}{{end}}
  Duration:    {{.Duration}}
  Party size:  {{.PartySize}}
  Total:       {{.Total}}

Thank you for choosing us.
`

const submittedHTML = `<html>
<body>
<p>Dear {{.ClientName}},</p>
<p>We have received your reservation request. Our staff will review it and confirm shortly.</p>
<table>
<tr><td>Venue</td><td>{{.VenueName}} ({{.Arrangement}})</td></tr>
<tr><td>Date</td><td>{{.EventDate}}</td></tr>
{{if .StartTime}}<tr><td>Start time</td><td>{{.StartTime}}</td></tr>{{end}}
<tr><td>Duration</td><td>{{.Duration}}</td></tr>
<tr><td>Party size</td><td>{{.PartySize}}</td></tr>
<tr><td>Total</td><td>{{.Total}}</td></tr>
</table>
<p>Thank you for choosing us.</p>
</body>
</html>
`

const confirmedSubject = "Reservation confirmed: {{.VenueName}} on {{.EventDate}}"

const confirmedText = `Dear {{.ClientName}},

Your reservation has been confirmed.

  Venue:       {{.VenueName}} ({{.Arrangement}})
  Date:        {{.EventDate}}{{if .StartTime}}
  Start time:  {{.StartTime}}{{end}}
  Duration:    {{.Duration}}
  Party size:  {{.PartySize}}
  Total:       {{.Total}}

We look forward to hosting your event.
`

const confirmedHTML = `<html>
<body>
<p>Dear {{.ClientName}},</p>
<p>Your reservation has been <strong>confirmed</strong>.</p>
<table>
<tr><td>Venue</td><td>{{.VenueName}} ({{.Arrangement}})</td></tr>
<tr><td>Date</td><td>{{.EventDate}}</td></tr>
{{if .StartTime}}<tr><td>Start time</td><td>{{.StartTime}}</td></tr>{{end}}
<tr><td>Duration</td><td>{{.Duration}}</td></tr>
<tr><td>Party size</td><td>{{.PartySize}}</td></tr>
<tr><td>Total</td><td>{{.Total}}</td></tr>
</table>
<p>We look forward to hosting your event.</p>
</body>
</html>
`

type messageTemplates struct {
	subject *texttemplate.Template
	text    *texttemplate.Template
	html    *htmltemplate.Template
}

func mustTemplates(name, subject, text, html string) messageTemplates {
	return messageTemplates{
		subject: texttemplate.Must(texttemplate.New(name + "_subject").Parse(subject)),
		text:    texttemplate.Must(texttemplate.New(name + "_text").Parse(text)),
		html:    htmltemplate.Must(htmltemplate.New(name + "_html").Parse(html)),
	}
}

var templatesByKind = map[EventKind]messageTemplates{
	EventSubmitted: mustTemplates("submitted", submittedSubject, submittedText, submittedHTML),
	EventConfirmed: mustTemplates("confirmed", confirmedSubject, confirmedText, confirmedHTML),
}

// renderMessage заполняет Subject, TextBody и HTMLBody события
// по шаблонам его типа
func renderMessage(event *ReservationEvent) error {
	tmpls, ok := templatesByKind[event.Kind]
	if !ok {
		return fmt.Errorf("%w: unknown event kind %q", ErrRenderFailed, event.Kind)
	}

	var subject bytes.Buffer
	if err := tmpls.subject.Execute(&subject, event); err != nil {
		return fmt.Errorf("%w: subject: %v", ErrRenderFailed, err)
	}
	event.Subject = subject.String()

	var text bytes.Buffer
	if err := tmpls.text.Execute(&text, event); err != nil {
		return fmt.Errorf("%w: text body: %v", ErrRenderFailed, err)
	}
	event.TextBody = text.String()

	var html bytes.Buffer
	if err := tmpls.html.Execute(&html, event); err != nil {
		return fmt.Errorf("%w: html body: %v", ErrRenderFailed, err)
	}
	event.HTMLBody = html.String()

	return nil
}
