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

type Tank struct{ ent.Schema }

func (Tank) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tanks"},
	}
}

func (Tank) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.Float("volume_liters").Optional().Nillable(),
		field.String("description").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Tank) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tests", IcpTest.Type),
		edge.To("files", ReportFile.Type),
		edge.To("jobs", ParseJob.Type),
	}
}
