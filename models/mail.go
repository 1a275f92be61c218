package models

import "time"

type Mail struct {
	ID        string    `json:"id" yaml:"-"`
	Title     string    `json:"title" yaml:"title"`
	Subject   string    `json:"subject" yaml:"subject"`
	Body      string    `json:"body" yaml:"body"`
	From      string    `json:"from" yaml:"from"`
	To        string    `json:"to" yaml:"to"`
	IsRead    bool      `json:"isRead" yaml:"isRead"`
	IsStarred bool      `json:"isStarred" yaml:"isStarred"`
	SentAt    time.Time `json:"sentAt" yaml:"-"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"-"`
}

func (m *Mail) EntityID() string      { return m.ID }
func (m *Mail) SetEntityID(id string) { m.ID = id }

type MailFolder string

const (
	FolderAll     MailFolder = "all"
	FolderInbox   MailFolder = "inbox"
	FolderSent    MailFolder = "sent"
	FolderStarred MailFolder = "starred"
	FolderUnread  MailFolder = "unread"
)

type MailSortKey string

const (
	SortByTitle   MailSortKey = "title"
	SortByDate    MailSortKey = "date"
	SortBySubject MailSortKey = "subject"
	SortByFrom    MailSortKey = "from"
)

// MailCriteria narrows and orders a mail listing.
type MailCriteria struct {
	Folder MailFolder  `query:"folder" validate:"omitempty,mailfolder"`
	Search string      `query:"search"`
	SortBy MailSortKey `query:"sortBy" validate:"omitempty,sortkey"`
	IsRead *bool       `query:"isRead"`
}

// MaxSubjectLength bounds mail subjects and note titles, so every note can be mailed.
const MaxSubjectLength = 300

type SendMailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required_without=Body,max=300"`
	Body    string `json:"body" validate:"required_without=Subject"`
}
