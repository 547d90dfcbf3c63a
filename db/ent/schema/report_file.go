package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ReportFile struct {
	ent.Schema
}

func (ReportFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "report_files"},
	}
}

func (ReportFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define a composite unique index
		field.UUID("tank_id", uuid.UUID{}),
		field.String("source_path").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (ReportFile) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY files -> ONE tank
		edge.From("tank", Tank.Type).
			Ref("files").
			Field("tank_id").
			Required().
			Unique(),
		// ONE file -> MANY jobs
		edge.To("jobs", ParseJob.Type),
		// ONE file -> MANY tests (one per water section)
		edge.To("tests", IcpTest.Type),
	}
}

func (ReportFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tank_id", "content_hash").Unique(),
		index.Fields("tank_id", "uploaded_at"),
	}
}
