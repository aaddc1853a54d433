package scope

import (
	"slices"

	"github.com/homework-evaluation/backend/ent/account"
)

// Capabilities required by the gated operations.
const (
	AccountWrite      = "account:write"
	AccountRead       = "account:read"
	SubjectWrite      = "subject:write"
	SubjectRead       = "subject:read"
	EnrollmentWrite   = "enrollment:write"
	EnrollmentRead    = "enrollment:read"
	EnrollmentRoster  = "enrollment:roster"
	AssignmentPublish = "assignment:publish"
	SubmissionGrade   = "submission:grade"
	SubmissionReview  = "submission:review"
	SubmissionAnswer  = "submission:answer"
	SubmissionRead    = "submission:read"
)

var roleScopes = map[account.Role][]string{
	account.RoleAdmin: {
		"account:*",
		"subject:*",
		"enrollment:*",
	},
	account.RoleTeacher: {
		EnrollmentRead,
		EnrollmentRoster,
		AssignmentPublish,
		SubmissionGrade,
		SubmissionReview,
	},
	account.RoleStudent: {
		EnrollmentRead,
		SubmissionAnswer,
		SubmissionRead,
	},
}

// ForRole returns the scopes granted to the role. Unknown roles get none.
func ForRole(role account.Role) []string {
	return slices.Clone(roleScopes[role])
}

// RoleAllows reports whether the role grants fnScope.
func RoleAllows(role account.Role, fnScope string) bool {
	return ShouldAllow(fnScope, roleScopes[role])
}
