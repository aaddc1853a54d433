// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// Assignment is the predicate function for assignment builders.
type Assignment func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Subject is the predicate function for subject builders.
type Subject func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)
