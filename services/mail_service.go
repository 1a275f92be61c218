package services

import (
	"appsus/models"
	"log/slog"
	"slices"
	"strings"
	"time"
)

// Mailbox identifies the local user of the mail app
type Mailbox struct {
	Email string
	Name  string
}

// MailService handles business logic for mails
type MailService struct {
	mails     MailStore
	mailbox   Mailbox
	validator Validator
	logger    *slog.Logger
	now       func() time.Time
}

// NewMailService creates a new mail service
func NewMailService(mails MailStore, mailbox Mailbox, validator Validator, logger *slog.Logger) *MailService {
	return &MailService{
		mails:     mails,
		mailbox:   mailbox,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

// Mailbox returns the local user
func (ms *MailService) Mailbox() Mailbox {
	return ms.mailbox
}

// Query lists mails in a folder, filtered by search text and sorted by criteria.SortBy
func (ms *MailService) Query(criteria models.MailCriteria) ([]models.Mail, error) {
	mails, err := ms.mails.Query()
	if err != nil {
		return nil, err
	}

	mails = FilterMails(mails, criteria, ms.mailbox.Email)
	SortMails(mails, criteria.SortBy)
	return mails, nil
}

// GetByID retrieves a single mail
func (ms *MailService) GetByID(mailID string) (*models.Mail, error) {
	mail, err := ms.mails.Get(mailID)
	if err != nil {
		return nil, notFound(err, ErrMailNotFound, mailID)
	}
	return mail, nil
}

// Send stores an outgoing mail from the local user
func (ms *MailService) Send(req models.SendMailRequest) (*models.Mail, error) {
	req.To = strings.TrimSpace(req.To)
	req.Subject = strings.TrimSpace(req.Subject)
	if strings.TrimSpace(req.Body) == "" {
		req.Body = ""
	}
	if err := ms.validator.Validate(req); err != nil {
		return nil, err
	}

	now := ms.now()
	mail := &models.Mail{
		Title:     ms.mailbox.Name,
		Subject:   req.Subject,
		Body:      req.Body,
		From:      ms.mailbox.Email,
		To:        req.To,
		IsRead:    true,
		SentAt:    now,
		UpdatedAt: now,
	}

	saved, err := ms.mails.Post(mail)
	if err != nil {
		return nil, err
	}

	ms.logger.Debug("mail sent", "mail_id", saved.ID, "to", saved.To)
	return saved, nil
}

// SendNote mails the content of a note to the given address, or to the local user when to is empty
func (ms *MailService) SendNote(note *models.Note, to string) (*models.Mail, error) {
	if strings.TrimSpace(to) == "" {
		to = ms.mailbox.Email
	}

	params := PrepareParams(note)
	return ms.Send(models.SendMailRequest{
		To:      to,
		Subject: params.Subject,
		Body:    params.Body,
	})
}

// ComposeFromParams turns a compose query string into a draft without recipient
func (ms *MailService) ComposeFromParams(query string) (models.SendMailRequest, error) {
	subject, body, err := ParseMailParams(query)
	if err != nil {
		return models.SendMailRequest{}, err
	}
	return models.SendMailRequest{Subject: subject, Body: body}, nil
}

// Remove deletes a mail
func (ms *MailService) Remove(mailID string) error {
	if err := ms.mails.Remove(mailID); err != nil {
		return notFound(err, ErrMailNotFound, mailID)
	}
	return nil
}

// ToggleRead flips the read flag
func (ms *MailService) ToggleRead(mailID string) (*models.Mail, error) {
	return ms.mutate(mailID, func(mail *models.Mail) {
		mail.IsRead = !mail.IsRead
	})
}

// MarkRead sets the read flag, typically when a mail is opened
func (ms *MailService) MarkRead(mailID string) (*models.Mail, error) {
	mail, err := ms.GetByID(mailID)
	if err != nil {
		return nil, err
	}
	if mail.IsRead {
		return mail, nil
	}
	return ms.mutate(mailID, func(mail *models.Mail) {
		mail.IsRead = true
	})
}

// ToggleStar flips the starred flag
func (ms *MailService) ToggleStar(mailID string) (*models.Mail, error) {
	return ms.mutate(mailID, func(mail *models.Mail) {
		mail.IsStarred = !mail.IsStarred
	})
}

// UnreadCount counts unread mails in the inbox
func (ms *MailService) UnreadCount() (int, error) {
	mails, err := ms.mails.Query()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, mail := range FilterMails(mails, models.MailCriteria{Folder: models.FolderInbox}, ms.mailbox.Email) {
		if !mail.IsRead {
			count++
		}
	}
	return count, nil
}

func (ms *MailService) mutate(mailID string, fn func(mail *models.Mail)) (*models.Mail, error) {
	mail, err := ms.GetByID(mailID)
	if err != nil {
		return nil, err
	}

	fn(mail)
	mail.UpdatedAt = ms.now()

	saved, err := ms.mails.Save(mail)
	if err != nil {
		return nil, notFound(err, ErrMailNotFound, mailID)
	}
	return saved, nil
}

// FilterMails keeps the mails of criteria.Folder matching the search text and read state
func FilterMails(mails []models.Mail, criteria models.MailCriteria, userEmail string) []models.Mail {
	search := strings.ToLower(strings.TrimSpace(criteria.Search))
	userEmail = strings.ToLower(userEmail)

	filtered := make([]models.Mail, 0, len(mails))
	for _, mail := range mails {
		if !inFolder(&mail, criteria.Folder, userEmail) {
			continue
		}
		if criteria.IsRead != nil && mail.IsRead != *criteria.IsRead {
			continue
		}
		if search != "" && !mailContains(&mail, search) {
			continue
		}
		filtered = append(filtered, mail)
	}
	return filtered
}

// SortMails orders mails in place. Text keys sort ascending ignoring case, date sorts newest first.
func SortMails(mails []models.Mail, key models.MailSortKey) {
	var field func(m *models.Mail) string
	switch key {
	case models.SortByTitle:
		field = func(m *models.Mail) string { return m.Title }
	case models.SortBySubject:
		field = func(m *models.Mail) string { return m.Subject }
	case models.SortByFrom:
		field = func(m *models.Mail) string { return m.From }
	default:
		slices.SortStableFunc(mails, func(a, b models.Mail) int {
			return b.SentAt.Compare(a.SentAt)
		})
		return
	}

	slices.SortStableFunc(mails, func(a, b models.Mail) int {
		return strings.Compare(strings.ToLower(field(&a)), strings.ToLower(field(&b)))
	})
}

func inFolder(mail *models.Mail, folder models.MailFolder, userEmail string) bool {
	switch folder {
	case models.FolderInbox:
		return strings.EqualFold(mail.To, userEmail)
	case models.FolderSent:
		return strings.EqualFold(mail.From, userEmail)
	case models.FolderStarred:
		return mail.IsStarred
	case models.FolderUnread:
		return !mail.IsRead
	default:
		return true
	}
}

func mailContains(mail *models.Mail, search string) bool {
	for _, field := range []string{mail.Title, mail.Subject, mail.Body, mail.From, mail.To} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
