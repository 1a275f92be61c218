package services

import (
	"appsus/models"
	"net/url"
	"strings"
)

// PrepareParams builds the mail compose fields for a note.
func PrepareParams(note *models.Note) models.MailParams {
	subject := truncateRunes(note.Info.Title, models.MaxSubjectLength)

	body := note.Info.Txt
	if body == "" {
		body = note.Info.URL
	}
	if body == "" {
		items := make([]string, 0, len(note.Info.Todos))
		for _, todo := range note.Info.Todos {
			items = append(items, todo.Txt)
		}
		body = strings.Join(items, ", ")
	}
	if note.Type == models.NoteTypeVideo && note.Info.URL != "" {
		body = YouTubeWatchURL(note.Info.URL)
	}

	return models.MailParams{
		Subject: subject,
		Body:    body,
		Query:   url.Values{"subject": {subject}, "body": {body}}.Encode(),
	}
}

// ParseMailParams reads subject and body back out of a compose query string.
func ParseMailParams(query string) (subject, body string, err error) {
	values, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return "", "", err
	}
	return values.Get("subject"), values.Get("body"), nil
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
