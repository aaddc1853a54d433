package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/directory"
	"github.com/homework-evaluation/backend/internal/enrollment"
	"github.com/samber/lo"
)

// SeedFile is the JSON document accepted by `seed`.
type SeedFile struct {
	Subjects []SubjectSeedRecord `json:"subjects"`
	Accounts []AccountSeedRecord `json:"accounts"`
}

type SubjectSeedRecord struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type AccountSeedRecord struct {
	Role        string   `json:"role"`
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	DisplayName string   `json:"display_name"`
	Subjects    []string `json:"subjects"` // subject codes
}

func (r AccountSeedRecord) request() directory.CreateAccountRequest {
	return directory.CreateAccountRequest{
		Role:        account.Role(r.Role),
		Username:    r.Username,
		Secret:      r.Password,
		DisplayName: r.DisplayName,
		Subjects:    lo.Map(r.Subjects, func(code string, _ int) enrollment.SubjectRef { return enrollment.ByCode(code) }),
	}
}

// ParseSeedFile decodes and validates a seed document.
func ParseSeedFile(content []byte) (SeedFile, error) {
	var file SeedFile
	if err := json.Unmarshal(content, &file); err != nil {
		return SeedFile{}, fmt.Errorf("unmarshal seed file: %w", err)
	}

	for i, record := range file.Subjects {
		if record.Name == "" || record.Code == "" {
			return SeedFile{}, fmt.Errorf("subject seed record #%d: name and code are required", i)
		}
	}
	for i, record := range file.Accounts {
		if err := record.request().Validate(); err != nil {
			return SeedFile{}, fmt.Errorf("account seed record #%d: %w", i, err)
		}
	}

	return file, nil
}

// SeedStep is one unit of seeding work.
type SeedStep struct {
	Label string
	Run   func(ctx context.Context) error
}

// SeedOutcome is what happened to a step.
type SeedOutcome int

const (
	SeedCreated SeedOutcome = iota
	SeedSkipped
	SeedFailed
)

// SeedSteps turns the file into steps: subjects first, so accounts can be
// enrolled in them.
func (c *Context) SeedSteps(file SeedFile) []SeedStep {
	steps := make([]SeedStep, 0, len(file.Subjects)+len(file.Accounts))

	for _, record := range file.Subjects {
		steps = append(steps, SeedStep{
			Label: fmt.Sprintf("subject %s (%s)", record.Name, record.Code),
			Run: func(ctx context.Context) error {
				_, err := c.catalog.CreateSubject(ctx, record.Name, record.Code)
				return err
			},
		})
	}

	for _, record := range file.Accounts {
		steps = append(steps, SeedStep{
			Label: fmt.Sprintf("%s %s", record.Role, record.Username),
			Run: func(ctx context.Context) error {
				_, err := c.directory.CreateAccount(ctx, record.request())
				return err
			},
		})
	}

	return steps
}

// RunSeedStep runs a step. Records that already exist are skipped, so
// seeding the same file twice is harmless.
func RunSeedStep(ctx context.Context, step SeedStep) (SeedOutcome, error) {
	err := step.Run(ctx)
	switch {
	case err == nil:
		return SeedCreated, nil
	case errors.Is(err, defs.ErrDuplicateSubject), errors.Is(err, defs.ErrDuplicateUsername):
		return SeedSkipped, nil
	default:
		return SeedFailed, err
	}
}

// SeedSummary counts the outcomes of a seed run.
type SeedSummary struct {
	Created int
	Skipped int
	Failed  int
	Errors  []error
}

func (s *SeedSummary) add(label string, outcome SeedOutcome, err error) {
	switch outcome {
	case SeedCreated:
		s.Created++
	case SeedSkipped:
		s.Skipped++
	case SeedFailed:
		s.Failed++
		s.Errors = append(s.Errors, fmt.Errorf("%s: %w", label, err))
	}
}

// Seed runs every step in order and reports the summary.
func (c *Context) Seed(ctx context.Context, file SeedFile) SeedSummary {
	var summary SeedSummary
	for _, step := range c.SeedSteps(file) {
		outcome, err := RunSeedStep(ctx, step)
		summary.add(step.Label, outcome, err)
	}
	return summary
}
