// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobData is the predicate function for jobdata builders.
type JobData func(*sql.Selector)

// QueryLog is the predicate function for querylog builders.
type QueryLog func(*sql.Selector)

// Rule is the predicate function for rule builders.
type Rule func(*sql.Selector)

// RuleGroup is the predicate function for rulegroup builders.
type RuleGroup func(*sql.Selector)
