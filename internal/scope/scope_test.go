package scope_test

import (
	"testing"

	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/internal/scope"
)

func TestShouldAllow(t *testing.T) {
	t.Run("public function is allowed without scopes", func(t *testing.T) {
		if !scope.ShouldAllow("", []string{}) {
			t.Fatal("public function should be allowed")
		}
	})

	t.Run("no scope denies private function", func(t *testing.T) {
		if scope.ShouldAllow("submission:read", []string{}) {
			t.Fatal("private function should not be allowed")
		}
	})

	t.Run("wildcard allows everything", func(t *testing.T) {
		if !scope.ShouldAllow("submission:grade", []string{"*"}) {
			t.Fatal("private function should be allowed")
		}
	})

	t.Run("exact scope", func(t *testing.T) {
		userScope := []string{"submission:read"}

		if !scope.ShouldAllow("submission:read", userScope) {
			t.Fatal("[submission:read] should be allowed")
		}

		if scope.ShouldAllow("submission:grade", userScope) {
			t.Fatal("[submission:grade] should not be allowed")
		}

		if scope.ShouldAllow("subject:read", userScope) {
			t.Fatal("[subject:read] should not be allowed")
		}
	})

	t.Run("resource wildcard", func(t *testing.T) {
		userScope := []string{"subject:*"}

		if !scope.ShouldAllow("subject:read", userScope) {
			t.Fatal("[subject:read] should be allowed")
		}

		if !scope.ShouldAllow("subject:write", userScope) {
			t.Fatal("[subject:write] should be allowed")
		}

		if scope.ShouldAllow("account:write", userScope) {
			t.Fatal("[account:write] should not be allowed")
		}
	})

	t.Run("action wildcard", func(t *testing.T) {
		userScope := []string{"*:read"}

		if !scope.ShouldAllow("subject:read", userScope) {
			t.Fatal("[subject:read] should be allowed")
		}

		if scope.ShouldAllow("subject:write", userScope) {
			t.Fatal("[subject:write] should not be allowed")
		}
	})

	t.Run("bad scope format", func(t *testing.T) {
		if scope.ShouldAllow("subject:read", []string{"subject:read:write", "subject"}) {
			t.Fatal("[subject:read] should not be allowed")
		}

		if scope.ShouldAllow("subject", []string{"subject:*"}) {
			t.Fatal("malformed function scope should not be allowed")
		}
	})
}

func TestRoleAllows(t *testing.T) {
	capabilities := []string{
		scope.AccountWrite,
		scope.AccountRead,
		scope.SubjectWrite,
		scope.SubjectRead,
		scope.EnrollmentWrite,
		scope.EnrollmentRead,
		scope.EnrollmentRoster,
		scope.AssignmentPublish,
		scope.SubmissionGrade,
		scope.SubmissionReview,
		scope.SubmissionAnswer,
		scope.SubmissionRead,
	}

	granted := map[account.Role]map[string]bool{
		account.RoleAdmin: {
			scope.AccountWrite: true, scope.AccountRead: true,
			scope.SubjectWrite: true, scope.SubjectRead: true,
			scope.EnrollmentWrite: true, scope.EnrollmentRead: true, scope.EnrollmentRoster: true,
		},
		account.RoleTeacher: {
			scope.EnrollmentRead: true, scope.EnrollmentRoster: true, scope.AssignmentPublish: true,
			scope.SubmissionGrade: true, scope.SubmissionReview: true,
		},
		account.RoleStudent: {
			scope.EnrollmentRead: true, scope.SubmissionAnswer: true, scope.SubmissionRead: true,
		},
	}

	for role, allowed := range granted {
		for _, capability := range capabilities {
			if got := scope.RoleAllows(role, capability); got != allowed[capability] {
				t.Errorf("RoleAllows(%s, %s) = %v, want %v", role, capability, got, allowed[capability])
			}
		}
	}

	if scope.RoleAllows(account.Role("janitor"), scope.EnrollmentRead) {
		t.Error("unknown role should have no capability")
	}
}

func TestForRole(t *testing.T) {
	scopes := scope.ForRole(account.RoleStudent)
	scopes[0] = "*"

	if scope.RoleAllows(account.RoleStudent, scope.AccountWrite) {
		t.Fatal("ForRole must return a copy")
	}
}
