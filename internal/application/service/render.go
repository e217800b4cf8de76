package service

import (
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/domain/constant"
	"interview-scheduler/internal/domain/entity"
)

// renderTimezone is used when the policy carries no timezone.
const renderTimezone = "Asia/Kolkata"

const whenLayout = "Mon, 02 Jan 2006, 03:04 pm MST"

type messageView struct {
	Name     string
	Title    string
	When     string
	Previous string
	Headline string
}

var textTemplates = map[constant.EventType]*texttemplate.Template{
	constant.EventScheduled: texttemplate.Must(texttemplate.New("scheduled").Parse(
		"Hello{{if .Name}} {{.Name}}{{end}},\nYou have been scheduled for an interview.\nTitle: {{.Title}}\nWhen: {{.When}}\n\nRegards,\nRecruitment Team\n")),
	constant.EventRescheduled: texttemplate.Must(texttemplate.New("rescheduled").Parse(
		"Hello{{if .Name}} {{.Name}}{{end}},\nYour interview has been rescheduled.\nTitle: {{.Title}}\nPrevious: {{.Previous}}\nNew: {{.When}}\n\nRegards,\nRecruitment Team\n")),
	constant.EventCancelled: texttemplate.Must(texttemplate.New("cancelled").Parse(
		"Hello{{if .Name}} {{.Name}}{{end}},\nYour interview has been cancelled.\nTitle: {{.Title}}\nScheduled time was: {{.When}}\n\nRegards,\nRecruitment Team\n")),
	constant.EventReminder: texttemplate.Must(texttemplate.New("reminder").Parse(
		"Hello{{if .Name}} {{.Name}}{{end}},\nThis is a reminder for your upcoming interview.\nTitle: {{.Title}}\nWhen: {{.When}}\n\nRegards,\nRecruitment Team\n")),
}

var htmlTemplate = htmltemplate.Must(htmltemplate.New("email").Parse(`<p>Hello{{if .Name}} {{.Name}}{{end}},</p>
<p>{{.Headline}}</p>
<p><strong>Title:</strong> {{.Title}}</p>
{{if .Previous}}<p><strong>Previous:</strong> {{.Previous}}</p>
<p><strong>New:</strong> {{.When}}</p>
{{else}}<p><strong>When:</strong> {{.When}}</p>
{{end}}<p>Regards,<br/>Recruitment Team</p>
`))

var headlines = map[constant.EventType]string{
	constant.EventScheduled:   "You have been scheduled for an interview.",
	constant.EventRescheduled: "Your interview has been rescheduled.",
	constant.EventCancelled:   "Your interview has been cancelled.",
	constant.EventReminder:    "This is a friendly reminder for your upcoming interview.",
}

func subjectFor(event constant.EventType, title string) string {
	switch event {
	case constant.EventScheduled:
		return "Interview Scheduled: " + title
	case constant.EventRescheduled:
		return "Interview Rescheduled: " + title
	case constant.EventCancelled:
		return "Interview Cancelled: " + title
	case constant.EventReminder:
		return "Reminder: Interview " + title
	}
	return title
}

func renderLocation(p *entity.SchedulingPolicy) *time.Location {
	name := renderTimezone
	if p != nil && p.Timezone != "" {
		name = p.Timezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// formatWhen renders an interval in loc, omitting a missing end.
func formatWhen(start time.Time, end *time.Time, loc *time.Location) string {
	s := start.In(loc).Format(whenLayout)
	if end != nil {
		s += " - " + end.In(loc).Format(whenLayout)
	}
	return s
}

// renderMessage builds the email for a dispatch request.
func renderMessage(req dto.DispatchRequest, sender string) (dto.EmailMessage, error) {
	tt, ok := textTemplates[req.Event]
	if !ok {
		return dto.EmailMessage{}, fmt.Errorf("no template for event type %q", req.Event)
	}
	a := req.Appointment
	loc := renderLocation(req.Policy)

	view := messageView{
		Title:    a.Title,
		When:     formatWhen(a.Start, a.End, loc),
		Headline: headlines[req.Event],
	}
	if req.Candidate != nil {
		view.Name = strings.TrimSpace(req.Candidate.Name)
	}
	if req.Event == constant.EventRescheduled && req.Previous != nil {
		view.Previous = formatWhen(req.Previous.Start, req.Previous.End, loc)
	}

	var text, html strings.Builder
	if err := tt.Execute(&text, view); err != nil {
		return dto.EmailMessage{}, fmt.Errorf("render text: %w", err)
	}
	if err := htmlTemplate.Execute(&html, view); err != nil {
		return dto.EmailMessage{}, fmt.Errorf("render html: %w", err)
	}

	msg := dto.EmailMessage{
		From:    sender,
		To:      entity.NormalizeEmail(a.CandidateEmail),
		Subject: subjectFor(req.Event, a.Title),
		Text:    text.String(),
		HTML:    html.String(),
	}
	if p := req.Policy; p != nil {
		msg.FromName = strings.TrimSpace(p.EmailFromName)
		msg.ReplyTo = strings.TrimSpace(p.EmailReplyTo)
	}
	return msg, nil
}
