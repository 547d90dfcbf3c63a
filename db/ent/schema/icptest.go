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

	"github.com/reefwatch/icp-tracker/constants"
	"github.com/reefwatch/icp-tracker/db/ent/schema/utils"
	"github.com/reefwatch/icp-tracker/internal/atiparse"
)

// IcpTest is one parsed test record: one row per water section of an
// uploaded report. Element columns are nullable floats paired with nullable
// status strings; NULL means "not tested", which is distinct from zero.
type IcpTest struct{ ent.Schema }

func (IcpTest) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "icp_tests"},
	}
}

func (IcpTest) Fields() []ent.Field {
	fields := []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("tank_id", uuid.UUID{}),
		field.UUID("file_id", uuid.UUID{}).Optional().Nillable(),

		// Test metadata
		field.Time("test_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("lab_name").NotEmpty(),
		field.String("test_id").Optional().Nillable(),
		field.String("water_type").
			GoType(constants.WaterType("")).
			Default(string(constants.WaterTypeSaltwater)).
			Validate(utils.EnumValidator(constants.WaterTypes...)),
		field.Time("sample_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("received_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("evaluated_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),

		// Quality scores (0-100)
		field.Int("score_major_elements").Optional().Nillable(),
		field.Int("score_minor_elements").Optional().Nillable(),
		field.Int("score_pollutants").Optional().Nillable(),
		field.Int("score_base_elements").Optional().Nillable(),
		field.Int("score_overall").Optional().Nillable(),
	}

	fields = append(fields, elementFields()...)

	fields = append(fields,
		field.Strings("recommendations").Optional(),
		field.String("dosing_instructions").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),

		// PDF storage info
		field.String("pdf_filename").Optional().Nillable(),
		field.String("pdf_path").Optional().Nillable(),

		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	)
	return fields
}

// elementFields derives the value/status column pair for every tracked
// symbol from the parser's element table, so schema and parser cannot
// drift apart.
func elementFields() []ent.Field {
	els := atiparse.Elements()
	fields := make([]ent.Field, 0, 2*len(els))
	for _, el := range els {
		fields = append(fields,
			field.Float(el.Key).Optional().Nillable(),
			field.String(el.Key+"_status").
				GoType(constants.ElementStatus("")).
				Optional().Nillable().
				Validate(utils.EnumValidator(constants.ElementStatuses...)),
		)
	}
	return fields
}

func (IcpTest) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY tests -> ONE tank
		edge.From("tank", Tank.Type).
			Ref("tests").
			Field("tank_id").
			Required().
			Unique(),
		// OPTIONAL: MANY tests -> ONE source file
		edge.From("file", ReportFile.Type).
			Ref("tests").
			Field("file_id").
			Unique(),
	}
}

func (IcpTest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tank_id", "test_date"),
		index.Fields("lab_name"),
		index.Fields("water_type"),
	}
}
