// Code generated by ent, DO NOT EDIT.

package assignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/homework-evaluation/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldID, id))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldSubjectID, v))
}

// AuthorID applies equality check predicate on the "author_id" field. It's identical to AuthorIDEQ.
func AuthorID(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAuthorID, v))
}

// QuestionNumber applies equality check predicate on the "question_number" field. It's identical to QuestionNumberEQ.
func QuestionNumber(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldQuestionNumber, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldQuestionText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldCreatedAt, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldSubjectID, vs...))
}

// AuthorIDEQ applies the EQ predicate on the "author_id" field.
func AuthorIDEQ(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorIDNEQ applies the NEQ predicate on the "author_id" field.
func AuthorIDNEQ(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldAuthorID, v))
}

// AuthorIDIn applies the In predicate on the "author_id" field.
func AuthorIDIn(vs ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldAuthorID, vs...))
}

// AuthorIDNotIn applies the NotIn predicate on the "author_id" field.
func AuthorIDNotIn(vs ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldAuthorID, vs...))
}

// AuthorIDIsNil applies the IsNil predicate on the "author_id" field.
func AuthorIDIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldAuthorID))
}

// AuthorIDNotNil applies the NotNil predicate on the "author_id" field.
func AuthorIDNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldAuthorID))
}

// QuestionNumberEQ applies the EQ predicate on the "question_number" field.
func QuestionNumberEQ(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldQuestionNumber, v))
}

// QuestionNumberNEQ applies the NEQ predicate on the "question_number" field.
func QuestionNumberNEQ(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldQuestionNumber, v))
}

// QuestionNumberIn applies the In predicate on the "question_number" field.
func QuestionNumberIn(vs ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldQuestionNumber, vs...))
}

// QuestionNumberNotIn applies the NotIn predicate on the "question_number" field.
func QuestionNumberNotIn(vs ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldQuestionNumber, vs...))
}

// QuestionNumberGT applies the GT predicate on the "question_number" field.
func QuestionNumberGT(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldQuestionNumber, v))
}

// QuestionNumberGTE applies the GTE predicate on the "question_number" field.
func QuestionNumberGTE(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldQuestionNumber, v))
}

// QuestionNumberLT applies the LT predicate on the "question_number" field.
func QuestionNumberLT(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldQuestionNumber, v))
}

// QuestionNumberLTE applies the LTE predicate on the "question_number" field.
func QuestionNumberLTE(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldQuestionNumber, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldQuestionText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSubject applies the HasEdge predicate on the "subject" edge.
func HasSubject() predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubjectTable, SubjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubjectWith applies the HasEdge predicate on the "subject" edge with a given conditions (other predicates).
func HasSubjectWith(preds ...predicate.Subject) predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := newSubjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuthor applies the HasEdge predicate on the "author" edge.
func HasAuthor() predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuthorTable, AuthorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthorWith applies the HasEdge predicate on the "author" edge with a given conditions (other predicates).
func HasAuthorWith(preds ...predicate.Account) predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := newAuthorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubmissions applies the HasEdge predicate on the "submissions" edge.
func HasSubmissions() predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionsWith applies the HasEdge predicate on the "submissions" edge with a given conditions (other predicates).
func HasSubmissionsWith(preds ...predicate.Submission) predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := newSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.NotPredicates(p))
}
