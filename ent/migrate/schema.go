// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "secret", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "teacher", "student"}},
		{Name: "display_name", Type: field.TypeString},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "account_role",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[5]},
			},
		},
	}
	// AssignmentsColumns holds the columns for the "assignments" table.
	AssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_number", Type: field.TypeInt},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "author_id", Type: field.TypeInt, Nullable: true},
		{Name: "subject_id", Type: field.TypeInt},
	}
	// AssignmentsTable holds the schema information for the "assignments" table.
	AssignmentsTable = &schema.Table{
		Name:       "assignments",
		Columns:    AssignmentsColumns,
		PrimaryKey: []*schema.Column{AssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assignments_accounts_authored_assignments",
				Columns:    []*schema.Column{AssignmentsColumns[4]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "assignments_subjects_assignments",
				Columns:    []*schema.Column{AssignmentsColumns[5]},
				RefColumns: []*schema.Column{SubjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assignment_subject_id_question_number",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[5], AssignmentsColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "account_id", Type: field.TypeInt},
		{Name: "type", Type: field.TypeString},
		{Name: "triggered_at", Type: field.TypeTime},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_type",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_type_account_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[1]},
			},
		},
	}
	// SubjectsColumns holds the columns for the "subjects" table.
	SubjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "code", Type: field.TypeString, Unique: true},
	}
	// SubjectsTable holds the schema information for the "subjects" table.
	SubjectsTable = &schema.Table{
		Name:       "subjects",
		Columns:    SubjectsColumns,
		PrimaryKey: []*schema.Column{SubjectsColumns[0]},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "grade", Type: field.TypeInt, Nullable: true},
		{Name: "feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "answered_at", Type: field.TypeTime, Nullable: true},
		{Name: "graded_at", Type: field.TypeTime, Nullable: true},
		{Name: "student_id", Type: field.TypeInt},
		{Name: "assignment_id", Type: field.TypeInt},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submissions_accounts_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[8]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "submissions_assignments_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[9]},
				RefColumns: []*schema.Column{AssignmentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "submission_assignment_id_student_id",
				Unique:  true,
				Columns: []*schema.Column{SubmissionsColumns[9], SubmissionsColumns[8]},
			},
			{
				Name:    "submission_student_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[8]},
			},
		},
	}
	// AccountSubjectsColumns holds the columns for the "account_subjects" table.
	AccountSubjectsColumns = []*schema.Column{
		{Name: "account_id", Type: field.TypeInt},
		{Name: "subject_id", Type: field.TypeInt},
	}
	// AccountSubjectsTable holds the schema information for the "account_subjects" table.
	AccountSubjectsTable = &schema.Table{
		Name:       "account_subjects",
		Columns:    AccountSubjectsColumns,
		PrimaryKey: []*schema.Column{AccountSubjectsColumns[0], AccountSubjectsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "account_subjects_account_id",
				Columns:    []*schema.Column{AccountSubjectsColumns[0]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "account_subjects_subject_id",
				Columns:    []*schema.Column{AccountSubjectsColumns[1]},
				RefColumns: []*schema.Column{SubjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		AssignmentsTable,
		EventsTable,
		SubjectsTable,
		SubmissionsTable,
		AccountSubjectsTable,
	}
)

func init() {
	AssignmentsTable.ForeignKeys[0].RefTable = AccountsTable
	AssignmentsTable.ForeignKeys[1].RefTable = SubjectsTable
	SubmissionsTable.ForeignKeys[0].RefTable = AccountsTable
	SubmissionsTable.ForeignKeys[1].RefTable = AssignmentsTable
	AccountSubjectsTable.ForeignKeys[0].RefTable = AccountsTable
	AccountSubjectsTable.ForeignKeys[1].RefTable = SubjectsTable
}
