package gate

import (
	"context"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/internal/directory"
	"github.com/homework-evaluation/backend/internal/enrollment"
	"github.com/homework-evaluation/backend/internal/scope"
)

func (g *Gate) CreateAccount(ctx context.Context, caller Caller, req directory.CreateAccountRequest) (*ent.Account, error) {
	ctx, err := g.authorize(ctx, caller, scope.AccountWrite)
	if err != nil {
		return nil, err
	}

	return g.directory.CreateAccount(ctx, req)
}

func (g *Gate) DeleteAccount(ctx context.Context, caller Caller, accountID int) error {
	ctx, err := g.authorize(ctx, caller, scope.AccountWrite)
	if err != nil {
		return err
	}

	return g.directory.DeleteAccount(ctx, accountID)
}

func (g *Gate) ListAccounts(ctx context.Context, caller Caller, role account.Role) ([]*ent.Account, error) {
	ctx, err := g.authorize(ctx, caller, scope.AccountRead)
	if err != nil {
		return nil, err
	}

	return g.directory.ListAccounts(ctx, role)
}

func (g *Gate) ReplaceSubjects(ctx context.Context, caller Caller, accountID int, refs []enrollment.SubjectRef) error {
	ctx, err := g.authorize(ctx, caller, scope.EnrollmentWrite)
	if err != nil {
		return err
	}

	return g.enrollment.ReplaceSubjects(ctx, accountID, refs)
}

func (g *Gate) CreateSubject(ctx context.Context, caller Caller, name, code string) (*ent.Subject, error) {
	ctx, err := g.authorize(ctx, caller, scope.SubjectWrite)
	if err != nil {
		return nil, err
	}

	return g.catalog.CreateSubject(ctx, name, code)
}

func (g *Gate) DeleteSubject(ctx context.Context, caller Caller, subjectID int) error {
	ctx, err := g.authorize(ctx, caller, scope.SubjectWrite)
	if err != nil {
		return err
	}

	return g.catalog.DeleteSubject(ctx, subjectID)
}

func (g *Gate) ListSubjects(ctx context.Context, caller Caller) ([]*ent.Subject, error) {
	ctx, err := g.authorize(ctx, caller, scope.SubjectRead)
	if err != nil {
		return nil, err
	}

	return g.catalog.ListSubjects(ctx)
}
