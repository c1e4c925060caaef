package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// QueryLog is the audit trail: one write-once row per evaluation
// attempt, including skipped evaluations. job_id is a loose reference,
// not an FK, so audit rows outlive job management operations.
type QueryLog struct{ ent.Schema }

func (QueryLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "query_log"},
	}
}

func (QueryLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("job_id").NotEmpty().Immutable(),
		field.JSON("attributes", map[string]string{}).Optional(),
		// "true", "false", or the skipped-evaluation sentinel "null"
		field.String("result").NotEmpty().Immutable(),
		field.String("explanation").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("ip_address").NotEmpty().Immutable(),
		field.String("user_agent").Optional().Immutable(),
		field.String("referer").Optional().Immutable(),
		field.String("fingerprint").NotEmpty().Immutable(),
		field.Time("received_at").Default(time.Now).Immutable(),
		field.Int("history_count").Default(0),
	}
}

func (QueryLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "received_at"),
		index.Fields("fingerprint"),
		index.Fields("result"),
	}
}
