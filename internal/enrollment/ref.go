package enrollment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/predicate"
	"github.com/homework-evaluation/backend/ent/subject"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/samber/lo"
)

// SubjectRef points to a subject by ID or by code. ID wins when both are set.
type SubjectRef struct {
	ID   int    `json:"id,omitempty"`
	Code string `json:"code,omitempty"`
}

// ByID refers to a subject by its ID.
func ByID(id int) SubjectRef {
	return SubjectRef{ID: id}
}

// ByCode refers to a subject by its code.
func ByCode(code string) SubjectRef {
	return SubjectRef{Code: code}
}

func (r SubjectRef) String() string {
	if r.ID != 0 {
		return "#" + strconv.Itoa(r.ID)
	}
	return strconv.Quote(r.Code)
}

// ResolveSubjects returns the IDs of the referenced subjects, deduplicated
// and in reference order. Nothing is resolved unless every ref is known.
func ResolveSubjects(ctx context.Context, client *ent.Client, refs []SubjectRef) ([]int, error) {
	if len(refs) == 0 {
		return []int{}, nil
	}

	var ids []int
	var codes []string
	for _, ref := range refs {
		if ref.ID != 0 {
			ids = append(ids, ref.ID)
		} else {
			codes = append(codes, ref.Code)
		}
	}

	var predicates []predicate.Subject
	if len(ids) > 0 {
		predicates = append(predicates, subject.IDIn(ids...))
	}
	if len(codes) > 0 {
		predicates = append(predicates, subject.CodeIn(codes...))
	}

	subjects, err := client.Subject.Query().
		Where(subject.Or(predicates...)).
		Select(subject.FieldID, subject.FieldCode).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve subjects: %w", err)
	}

	byID := lo.KeyBy(subjects, func(s *ent.Subject) int { return s.ID })
	byCode := lo.KeyBy(subjects, func(s *ent.Subject) string { return s.Code })

	resolved := make([]int, 0, len(refs))
	for _, ref := range refs {
		var (
			s  *ent.Subject
			ok bool
		)
		if ref.ID != 0 {
			s, ok = byID[ref.ID]
		} else {
			s, ok = byCode[ref.Code]
		}
		if !ok {
			return nil, fmt.Errorf("subject %s: %w", ref, defs.ErrUnknownSubject)
		}

		resolved = append(resolved, s.ID)
	}

	return lo.Uniq(resolved), nil
}
