package enrollment

import (
	"context"
	"fmt"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/ent/subject"
	"github.com/homework-evaluation/backend/internal/defs"
)

// SubjectsFor returns the subjects the account is enrolled in, by name.
func (c *Context) SubjectsFor(ctx context.Context, accountID int) ([]*ent.Subject, error) {
	exists, err := c.entClient.Account.Query().Where(account.ID(accountID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("query account: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("account %d: %w", accountID, defs.ErrNotFound)
	}

	subjects, err := c.entClient.Subject.Query().
		Where(subject.HasAccountsWith(account.ID(accountID))).
		Order(subject.ByName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subjects: %w", err)
	}

	return subjects, nil
}

// StudentsEnrolled returns the students of the subject, by display name.
func (c *Context) StudentsEnrolled(ctx context.Context, subjectID int) ([]*ent.Account, error) {
	return c.enrolledWithRole(ctx, subjectID, account.RoleStudent)
}

// TeachersEnrolled returns the teachers of the subject, by display name.
func (c *Context) TeachersEnrolled(ctx context.Context, subjectID int) ([]*ent.Account, error) {
	return c.enrolledWithRole(ctx, subjectID, account.RoleTeacher)
}

func (c *Context) enrolledWithRole(ctx context.Context, subjectID int, role account.Role) ([]*ent.Account, error) {
	exists, err := c.entClient.Subject.Query().Where(subject.ID(subjectID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subject: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("subject %d: %w", subjectID, defs.ErrNotFound)
	}

	accounts, err := c.entClient.Account.Query().
		Where(
			account.RoleEQ(role),
			account.HasSubjectsWith(subject.ID(subjectID)),
		).
		Order(account.ByDisplayName(), account.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query %s accounts: %w", role, err)
	}

	return accounts, nil
}

// IsEnrolled reports whether the account is enrolled in the subject.
func (c *Context) IsEnrolled(ctx context.Context, accountID, subjectID int) (bool, error) {
	return IsEnrolled(ctx, c.entClient, accountID, subjectID)
}

// IsEnrolled is the client-level form of Context.IsEnrolled, usable inside
// a transaction through tx.Client().
func IsEnrolled(ctx context.Context, client *ent.Client, accountID, subjectID int) (bool, error) {
	enrolled, err := client.Account.Query().
		Where(
			account.ID(accountID),
			account.HasSubjectsWith(subject.ID(subjectID)),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("query enrollment: %w", err)
	}

	return enrolled, nil
}
