package events

type EventType string

const (
	EventTypeAccountCreated   EventType = "account_created"
	EventTypeAccountDeleted   EventType = "account_deleted"
	EventTypeSubjectsReplaced EventType = "subjects_replaced"

	EventTypeSubjectCreated EventType = "subject_created"
	EventTypeSubjectDeleted EventType = "subject_deleted"

	EventTypeAssignmentPublished EventType = "assignment_published"
	EventTypeAnswerSubmitted     EventType = "answer_submitted"
	EventTypeSubmissionGraded    EventType = "submission_graded"
)
