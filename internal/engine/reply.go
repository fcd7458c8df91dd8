package engine

import "strings"

// Canned reply templates. No email content is interpolated: these are
// boilerplate drafts meant for human review before sending.
const (
	replyScheduling = `Thank you for reaching out about scheduling.

I'd be happy to connect. Please let me know what times work best for you next week.

Looking forward to our discussion.`

	replyQuestion = `Thank you for your question.

I'll look into this and get back to you with more information shortly.

Best regards`

	replyUrgent = `Thank you for your urgent message.

I've received this and will prioritize reviewing it. I'll follow up with you soon.

Best regards`

	replyGeneric = `Thank you for your email.

I have received your message and will review it shortly. I'll get back to you with a proper response.

Best regards`
)

// Template selectors, first match wins
var (
	schedulingWords   = []string{"meeting", "schedule", "call"}
	questionWords     = []string{"question", "help", "advice"}
	replyUrgencyWords = []string{"urgent", "asap", "immediately"}
)

// DraftReply picks one of four fixed templates based on the body.
// The subject does not influence the choice.
func DraftReply(subject, body string) string {
	text := strings.ToLower(body)

	switch {
	case containsAny(text, schedulingWords):
		return replyScheduling
	case containsAny(text, questionWords):
		return replyQuestion
	case containsAny(text, replyUrgencyWords):
		return replyUrgent
	default:
		return replyGeneric
	}
}
