package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Rule is a reusable validation statement. Its rule_text is injected
// verbatim into the classification prompt.
type Rule struct{ ent.Schema }

func (Rule) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "rules"},
	}
}

func (Rule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("name").NotEmpty(),
		field.String("description").Optional(),
		field.String("rule_text").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Rule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("groups", RuleGroup.Type).
			Ref("rules"),
	}
}
