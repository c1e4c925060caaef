package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Job is a monitored delivery channel. Its id is the hex sha256 of
// (job_name + job_filename), so the same pair always resolves to the
// same row and duplicates cannot exist.
type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty().
			MinLen(64).
			MaxLen(64),
		field.String("job_name").NotEmpty(),
		field.String("job_filename").NotEmpty(),
		field.String("description").Optional(),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY jobs <-> MANY rule groups
		edge.To("rule_groups", RuleGroup.Type),
		// ONE job -> MANY submissions
		edge.To("executions", JobData.Type),
	}
}
