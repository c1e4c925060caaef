package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// JobData is one accepted metadata submission. Rows are write-once.
type JobData struct{ ent.Schema }

func (JobData) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_data"},
	}
}

func (JobData) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("job_id").NotEmpty(),
		field.JSON("attributes", map[string]string{}),
		field.Time("received_at").Default(time.Now).Immutable(),
		field.String("weekday").NotEmpty(),
		field.String("month").NotEmpty(),
		field.Bool("is_holiday").Default(false),
		field.Bool("is_outlier").Default(false),
		field.Bool("forced_result").Default(false),
	}
}

func (JobData) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("executions").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (JobData) Indexes() []ent.Index {
	return []ent.Index{
		// history windows read newest-first per job
		index.Fields("job_id", "received_at"),
		index.Fields("job_id", "is_outlier", "received_at"),
	}
}
