package mail

// Inbox holds the demo email set
type Inbox struct {
	emails []*Email
}

// NewInbox returns an inbox populated with the demo fixture
func NewInbox() *Inbox {
	return &Inbox{emails: demoEmails()}
}

// ByID returns the email with the given id, or nil
func (in *Inbox) ByID(id int) *Email {
	for _, e := range in.emails {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// All returns every email in inbox order
func (in *Inbox) All() []*Email {
	return in.emails
}

// Len returns the number of emails
func (in *Inbox) Len() int {
	return len(in.emails)
}

func demoEmails() []*Email {
	return []*Email{
		{
			ID:        1,
			Sender:    "project.manager@company.com",
			Subject:   "Weekly Project Update - Urgent Review Needed",
			Body:      "Hi team, we need to review the Q4 deliverables by tomorrow. Please prepare your status reports and be ready to discuss blockers. The meeting is scheduled for 10 AM tomorrow.",
			Timestamp: "2024-01-15 09:30:00",
		},
		{
			ID:        2,
			Sender:    "newsletter@technews.com",
			Subject:   "Weekly Tech Digest: AI Innovations",
			Body:      "This week in AI: New breakthroughs in language models, industry updates, and more. Read about the latest developments in machine learning and artificial intelligence.",
			Timestamp: "2024-01-15 08:15:00",
			Read:      true,
		},
		{
			ID:        3,
			Sender:    "hr@company.com",
			Subject:   "Benefits Enrollment Reminder",
			Body:      "Reminder: Open enrollment for health benefits ends this Friday. Please complete your selections in the portal.",
			Timestamp: "2024-01-14 14:20:00",
		},
		{
			ID:        4,
			Sender:    "meeting.request@partner.com",
			Subject:   "Meeting Request: Project Collaboration",
			Body:      "Would you be available for a 30-minute call next Tuesday to discuss potential collaboration? Please let me know what time works best for you.",
			Timestamp: "2024-01-14 11:45:00",
		},
		{
			ID:        5,
			Sender:    "noreply@system.com",
			Subject:   "Your weekly system report",
			Body:      "System generated report for the week. No action needed.",
			Timestamp: "2024-01-14 10:00:00",
			Read:      true,
		},
	}
}
