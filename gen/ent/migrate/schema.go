// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// IcpTestsColumns holds the columns for the "icp_tests" table.
	IcpTestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "test_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "lab_name", Type: field.TypeString},
		{Name: "test_id", Type: field.TypeString, Nullable: true},
		{Name: "water_type", Type: field.TypeString, Default: "saltwater"},
		{Name: "sample_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "received_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "evaluated_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "score_major_elements", Type: field.TypeInt, Nullable: true},
		{Name: "score_minor_elements", Type: field.TypeInt, Nullable: true},
		{Name: "score_pollutants", Type: field.TypeInt, Nullable: true},
		{Name: "score_base_elements", Type: field.TypeInt, Nullable: true},
		{Name: "score_overall", Type: field.TypeInt, Nullable: true},
		{Name: "salinity", Type: field.TypeFloat64, Nullable: true},
		{Name: "salinity_status", Type: field.TypeString, Nullable: true},
		{Name: "kh", Type: field.TypeFloat64, Nullable: true},
		{Name: "kh_status", Type: field.TypeString, Nullable: true},
		{Name: "cl", Type: field.TypeFloat64, Nullable: true},
		{Name: "cl_status", Type: field.TypeString, Nullable: true},
		{Name: "na", Type: field.TypeFloat64, Nullable: true},
		{Name: "na_status", Type: field.TypeString, Nullable: true},
		{Name: "mg", Type: field.TypeFloat64, Nullable: true},
		{Name: "mg_status", Type: field.TypeString, Nullable: true},
		{Name: "s", Type: field.TypeFloat64, Nullable: true},
		{Name: "s_status", Type: field.TypeString, Nullable: true},
		{Name: "ca", Type: field.TypeFloat64, Nullable: true},
		{Name: "ca_status", Type: field.TypeString, Nullable: true},
		{Name: "k", Type: field.TypeFloat64, Nullable: true},
		{Name: "k_status", Type: field.TypeString, Nullable: true},
		{Name: "br", Type: field.TypeFloat64, Nullable: true},
		{Name: "br_status", Type: field.TypeString, Nullable: true},
		{Name: "sr", Type: field.TypeFloat64, Nullable: true},
		{Name: "sr_status", Type: field.TypeString, Nullable: true},
		{Name: "b", Type: field.TypeFloat64, Nullable: true},
		{Name: "b_status", Type: field.TypeString, Nullable: true},
		{Name: "f", Type: field.TypeFloat64, Nullable: true},
		{Name: "f_status", Type: field.TypeString, Nullable: true},
		{Name: "li", Type: field.TypeFloat64, Nullable: true},
		{Name: "li_status", Type: field.TypeString, Nullable: true},
		{Name: "si", Type: field.TypeFloat64, Nullable: true},
		{Name: "si_status", Type: field.TypeString, Nullable: true},
		{Name: "i", Type: field.TypeFloat64, Nullable: true},
		{Name: "i_status", Type: field.TypeString, Nullable: true},
		{Name: "ba", Type: field.TypeFloat64, Nullable: true},
		{Name: "ba_status", Type: field.TypeString, Nullable: true},
		{Name: "mo", Type: field.TypeFloat64, Nullable: true},
		{Name: "mo_status", Type: field.TypeString, Nullable: true},
		{Name: "ni", Type: field.TypeFloat64, Nullable: true},
		{Name: "ni_status", Type: field.TypeString, Nullable: true},
		{Name: "mn", Type: field.TypeFloat64, Nullable: true},
		{Name: "mn_status", Type: field.TypeString, Nullable: true},
		{Name: "as", Type: field.TypeFloat64, Nullable: true},
		{Name: "as_status", Type: field.TypeString, Nullable: true},
		{Name: "be", Type: field.TypeFloat64, Nullable: true},
		{Name: "be_status", Type: field.TypeString, Nullable: true},
		{Name: "cr", Type: field.TypeFloat64, Nullable: true},
		{Name: "cr_status", Type: field.TypeString, Nullable: true},
		{Name: "co", Type: field.TypeFloat64, Nullable: true},
		{Name: "co_status", Type: field.TypeString, Nullable: true},
		{Name: "fe", Type: field.TypeFloat64, Nullable: true},
		{Name: "fe_status", Type: field.TypeString, Nullable: true},
		{Name: "cu", Type: field.TypeFloat64, Nullable: true},
		{Name: "cu_status", Type: field.TypeString, Nullable: true},
		{Name: "se", Type: field.TypeFloat64, Nullable: true},
		{Name: "se_status", Type: field.TypeString, Nullable: true},
		{Name: "ag", Type: field.TypeFloat64, Nullable: true},
		{Name: "ag_status", Type: field.TypeString, Nullable: true},
		{Name: "v", Type: field.TypeFloat64, Nullable: true},
		{Name: "v_status", Type: field.TypeString, Nullable: true},
		{Name: "zn", Type: field.TypeFloat64, Nullable: true},
		{Name: "zn_status", Type: field.TypeString, Nullable: true},
		{Name: "sn", Type: field.TypeFloat64, Nullable: true},
		{Name: "sn_status", Type: field.TypeString, Nullable: true},
		{Name: "no3", Type: field.TypeFloat64, Nullable: true},
		{Name: "no3_status", Type: field.TypeString, Nullable: true},
		{Name: "p", Type: field.TypeFloat64, Nullable: true},
		{Name: "p_status", Type: field.TypeString, Nullable: true},
		{Name: "po4", Type: field.TypeFloat64, Nullable: true},
		{Name: "po4_status", Type: field.TypeString, Nullable: true},
		{Name: "al", Type: field.TypeFloat64, Nullable: true},
		{Name: "al_status", Type: field.TypeString, Nullable: true},
		{Name: "sb", Type: field.TypeFloat64, Nullable: true},
		{Name: "sb_status", Type: field.TypeString, Nullable: true},
		{Name: "bi", Type: field.TypeFloat64, Nullable: true},
		{Name: "bi_status", Type: field.TypeString, Nullable: true},
		{Name: "pb", Type: field.TypeFloat64, Nullable: true},
		{Name: "pb_status", Type: field.TypeString, Nullable: true},
		{Name: "cd", Type: field.TypeFloat64, Nullable: true},
		{Name: "cd_status", Type: field.TypeString, Nullable: true},
		{Name: "la", Type: field.TypeFloat64, Nullable: true},
		{Name: "la_status", Type: field.TypeString, Nullable: true},
		{Name: "tl", Type: field.TypeFloat64, Nullable: true},
		{Name: "tl_status", Type: field.TypeString, Nullable: true},
		{Name: "ti", Type: field.TypeFloat64, Nullable: true},
		{Name: "ti_status", Type: field.TypeString, Nullable: true},
		{Name: "w", Type: field.TypeFloat64, Nullable: true},
		{Name: "w_status", Type: field.TypeString, Nullable: true},
		{Name: "hg", Type: field.TypeFloat64, Nullable: true},
		{Name: "hg_status", Type: field.TypeString, Nullable: true},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "dosing_instructions", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "pdf_filename", Type: field.TypeString, Nullable: true},
		{Name: "pdf_path", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "file_id", Type: field.TypeUUID, Nullable: true},
		{Name: "tank_id", Type: field.TypeUUID},
	}
	// IcpTestsTable holds the schema information for the "icp_tests" table.
	IcpTestsTable = &schema.Table{
		Name:       "icp_tests",
		Columns:    IcpTestsColumns,
		PrimaryKey: []*schema.Column{IcpTestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "icp_tests_report_files_tests",
				Columns:    []*schema.Column{IcpTestsColumns[105]},
				RefColumns: []*schema.Column{ReportFilesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "icp_tests_tanks_tests",
				Columns:    []*schema.Column{IcpTestsColumns[106]},
				RefColumns: []*schema.Column{TanksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "icptest_tank_id_test_date",
				Unique:  false,
				Columns: []*schema.Column{IcpTestsColumns[106], IcpTestsColumns[1]},
			},
			{
				Name:    "icptest_lab_name",
				Unique:  false,
				Columns: []*schema.Column{IcpTestsColumns[2]},
			},
			{
				Name:    "icptest_water_type",
				Unique:  false,
				Columns: []*schema.Column{IcpTestsColumns[4]},
			},
		},
	}
	// ParseJobsColumns holds the columns for the "parse_jobs" table.
	ParseJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "pages", Type: field.TypeInt, Nullable: true},
		{Name: "records_count", Type: field.TypeInt, Nullable: true},
		{Name: "parsed_json", Type: field.TypeJSON, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
		{Name: "tank_id", Type: field.TypeUUID},
	}
	// ParseJobsTable holds the schema information for the "parse_jobs" table.
	ParseJobsTable = &schema.Table{
		Name:       "parse_jobs",
		Columns:    ParseJobsColumns,
		PrimaryKey: []*schema.Column{ParseJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parse_jobs_report_files_jobs",
				Columns:    []*schema.Column{ParseJobsColumns[10]},
				RefColumns: []*schema.Column{ReportFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "parse_jobs_tanks_jobs",
				Columns:    []*schema.Column{ParseJobsColumns[11]},
				RefColumns: []*schema.Column{TanksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "parsejob_file_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[10], ParseJobsColumns[2]},
			},
			{
				Name:    "parsejob_tank_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[11], ParseJobsColumns[2]},
			},
		},
	}
	// ReportFilesColumns holds the columns for the "report_files" table.
	ReportFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "tank_id", Type: field.TypeUUID},
	}
	// ReportFilesTable holds the schema information for the "report_files" table.
	ReportFilesTable = &schema.Table{
		Name:       "report_files",
		Columns:    ReportFilesColumns,
		PrimaryKey: []*schema.Column{ReportFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "report_files_tanks_files",
				Columns:    []*schema.Column{ReportFilesColumns[7]},
				RefColumns: []*schema.Column{TanksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reportfile_tank_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{ReportFilesColumns[7], ReportFilesColumns[2]},
			},
			{
				Name:    "reportfile_tank_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ReportFilesColumns[7], ReportFilesColumns[6]},
			},
		},
	}
	// TanksColumns holds the columns for the "tanks" table.
	TanksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "volume_liters", Type: field.TypeFloat64, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TanksTable holds the schema information for the "tanks" table.
	TanksTable = &schema.Table{
		Name:       "tanks",
		Columns:    TanksColumns,
		PrimaryKey: []*schema.Column{TanksColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		IcpTestsTable,
		ParseJobsTable,
		ReportFilesTable,
		TanksTable,
	}
)

func init() {
	IcpTestsTable.ForeignKeys[0].RefTable = ReportFilesTable
	IcpTestsTable.ForeignKeys[1].RefTable = TanksTable
	IcpTestsTable.Annotation = &entsql.Annotation{
		Table: "icp_tests",
	}
	ParseJobsTable.ForeignKeys[0].RefTable = ReportFilesTable
	ParseJobsTable.ForeignKeys[1].RefTable = TanksTable
	ParseJobsTable.Annotation = &entsql.Annotation{
		Table: "parse_jobs",
	}
	ReportFilesTable.ForeignKeys[0].RefTable = TanksTable
	ReportFilesTable.Annotation = &entsql.Annotation{
		Table: "report_files",
	}
	TanksTable.Annotation = &entsql.Annotation{
		Table: "tanks",
	}
}
