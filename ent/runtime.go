// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/ent/assignment"
	"github.com/homework-evaluation/backend/ent/event"
	"github.com/homework-evaluation/backend/ent/schema"
	"github.com/homework-evaluation/backend/ent/subject"
	"github.com/homework-evaluation/backend/ent/submission"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountMixin := schema.Account{}.Mixin()
	accountMixinFields0 := accountMixin[0].Fields()
	_ = accountMixinFields0
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountMixinFields0[0].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescUpdatedAt is the schema descriptor for updated_at field.
	accountDescUpdatedAt := accountMixinFields0[1].Descriptor()
	// account.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	account.DefaultUpdatedAt = accountDescUpdatedAt.Default.(func() time.Time)
	// account.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	account.UpdateDefaultUpdatedAt = accountDescUpdatedAt.UpdateDefault.(func() time.Time)
	// accountDescUsername is the schema descriptor for username field.
	accountDescUsername := accountFields[0].Descriptor()
	// account.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	account.UsernameValidator = accountDescUsername.Validators[0].(func(string) error)
	// accountDescSecret is the schema descriptor for secret field.
	accountDescSecret := accountFields[1].Descriptor()
	// account.SecretValidator is a validator for the "secret" field. It is called by the builders before save.
	account.SecretValidator = accountDescSecret.Validators[0].(func(string) error)
	// accountDescDisplayName is the schema descriptor for display_name field.
	accountDescDisplayName := accountFields[3].Descriptor()
	// account.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	account.DisplayNameValidator = accountDescDisplayName.Validators[0].(func(string) error)
	assignmentFields := schema.Assignment{}.Fields()
	_ = assignmentFields
	// assignmentDescQuestionNumber is the schema descriptor for question_number field.
	assignmentDescQuestionNumber := assignmentFields[2].Descriptor()
	// assignment.QuestionNumberValidator is a validator for the "question_number" field. It is called by the builders before save.
	assignment.QuestionNumberValidator = assignmentDescQuestionNumber.Validators[0].(func(int) error)
	// assignmentDescQuestionText is the schema descriptor for question_text field.
	assignmentDescQuestionText := assignmentFields[3].Descriptor()
	// assignment.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	assignment.QuestionTextValidator = assignmentDescQuestionText.Validators[0].(func(string) error)
	// assignmentDescCreatedAt is the schema descriptor for created_at field.
	assignmentDescCreatedAt := assignmentFields[4].Descriptor()
	// assignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	assignment.DefaultCreatedAt = assignmentDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescType is the schema descriptor for type field.
	eventDescType := eventFields[1].Descriptor()
	// event.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	event.TypeValidator = eventDescType.Validators[0].(func(string) error)
	// eventDescTriggeredAt is the schema descriptor for triggered_at field.
	eventDescTriggeredAt := eventFields[2].Descriptor()
	// event.DefaultTriggeredAt holds the default value on creation for the triggered_at field.
	event.DefaultTriggeredAt = eventDescTriggeredAt.Default.(func() time.Time)
	subjectMixin := schema.Subject{}.Mixin()
	subjectMixinFields0 := subjectMixin[0].Fields()
	_ = subjectMixinFields0
	subjectFields := schema.Subject{}.Fields()
	_ = subjectFields
	// subjectDescCreatedAt is the schema descriptor for created_at field.
	subjectDescCreatedAt := subjectMixinFields0[0].Descriptor()
	// subject.DefaultCreatedAt holds the default value on creation for the created_at field.
	subject.DefaultCreatedAt = subjectDescCreatedAt.Default.(func() time.Time)
	// subjectDescUpdatedAt is the schema descriptor for updated_at field.
	subjectDescUpdatedAt := subjectMixinFields0[1].Descriptor()
	// subject.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subject.DefaultUpdatedAt = subjectDescUpdatedAt.Default.(func() time.Time)
	// subject.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subject.UpdateDefaultUpdatedAt = subjectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// subjectDescName is the schema descriptor for name field.
	subjectDescName := subjectFields[0].Descriptor()
	// subject.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subject.NameValidator = subjectDescName.Validators[0].(func(string) error)
	// subjectDescCode is the schema descriptor for code field.
	subjectDescCode := subjectFields[1].Descriptor()
	// subject.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	subject.CodeValidator = subjectDescCode.Validators[0].(func(string) error)
	submissionMixin := schema.Submission{}.Mixin()
	submissionMixinFields0 := submissionMixin[0].Fields()
	_ = submissionMixinFields0
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionMixinFields0[0].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescUpdatedAt is the schema descriptor for updated_at field.
	submissionDescUpdatedAt := submissionMixinFields0[1].Descriptor()
	// submission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	submission.DefaultUpdatedAt = submissionDescUpdatedAt.Default.(func() time.Time)
	// submission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	submission.UpdateDefaultUpdatedAt = submissionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// submissionDescGrade is the schema descriptor for grade field.
	submissionDescGrade := submissionFields[3].Descriptor()
	// submission.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	submission.GradeValidator = submissionDescGrade.Validators[0].(func(int) error)
}
