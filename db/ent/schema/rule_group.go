package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// RuleGroup bundles rules and attaches them to jobs. A rule contributes
// to an evaluation only when the rule, its group, and the group-to-job
// attachment are all in place and active.
type RuleGroup struct{ ent.Schema }

func (RuleGroup) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "rule_groups"},
	}
}

func (RuleGroup) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("name").NotEmpty(),
		field.String("description").Optional(),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (RuleGroup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("rules", Rule.Type),
		edge.From("jobs", Job.Type).
			Ref("rule_groups"),
	}
}
