// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Size: 64},
		{Name: "job_name", Type: field.TypeString},
		{Name: "job_filename", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
	}
	// JobDataColumns holds the columns for the "job_data" table.
	JobDataColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "attributes", Type: field.TypeJSON},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "weekday", Type: field.TypeString},
		{Name: "month", Type: field.TypeString},
		{Name: "is_holiday", Type: field.TypeBool, Default: false},
		{Name: "is_outlier", Type: field.TypeBool, Default: false},
		{Name: "forced_result", Type: field.TypeBool, Default: false},
		{Name: "job_id", Type: field.TypeString, Size: 64},
	}
	// JobDataTable holds the schema information for the "job_data" table.
	JobDataTable = &schema.Table{
		Name:       "job_data",
		Columns:    JobDataColumns,
		PrimaryKey: []*schema.Column{JobDataColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_data_jobs_executions",
				Columns:    []*schema.Column{JobDataColumns[8]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobdata_job_id_received_at",
				Unique:  false,
				Columns: []*schema.Column{JobDataColumns[8], JobDataColumns[2]},
			},
			{
				Name:    "jobdata_job_id_is_outlier_received_at",
				Unique:  false,
				Columns: []*schema.Column{JobDataColumns[8], JobDataColumns[6], JobDataColumns[2]},
			},
		},
	}
	// QueryLogColumns holds the columns for the "query_log" table.
	QueryLogColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeString},
		{Name: "attributes", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ip_address", Type: field.TypeString},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "referer", Type: field.TypeString, Nullable: true},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "history_count", Type: field.TypeInt, Default: 0},
	}
	// QueryLogTable holds the schema information for the "query_log" table.
	QueryLogTable = &schema.Table{
		Name:       "query_log",
		Columns:    QueryLogColumns,
		PrimaryKey: []*schema.Column{QueryLogColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "querylog_job_id_received_at",
				Unique:  false,
				Columns: []*schema.Column{QueryLogColumns[1], QueryLogColumns[9]},
			},
			{
				Name:    "querylog_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{QueryLogColumns[8]},
			},
			{
				Name:    "querylog_result",
				Unique:  false,
				Columns: []*schema.Column{QueryLogColumns[3]},
			},
		},
	}
	// RulesColumns holds the columns for the "rules" table.
	RulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "rule_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RulesTable holds the schema information for the "rules" table.
	RulesTable = &schema.Table{
		Name:       "rules",
		Columns:    RulesColumns,
		PrimaryKey: []*schema.Column{RulesColumns[0]},
	}
	// RuleGroupsColumns holds the columns for the "rule_groups" table.
	RuleGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RuleGroupsTable holds the schema information for the "rule_groups" table.
	RuleGroupsTable = &schema.Table{
		Name:       "rule_groups",
		Columns:    RuleGroupsColumns,
		PrimaryKey: []*schema.Column{RuleGroupsColumns[0]},
	}
	// JobRuleGroupsColumns holds the columns for the "job_rule_groups" table.
	JobRuleGroupsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Size: 64},
		{Name: "rule_group_id", Type: field.TypeUUID},
	}
	// JobRuleGroupsTable holds the schema information for the "job_rule_groups" table.
	JobRuleGroupsTable = &schema.Table{
		Name:       "job_rule_groups",
		Columns:    JobRuleGroupsColumns,
		PrimaryKey: []*schema.Column{JobRuleGroupsColumns[0], JobRuleGroupsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_rule_groups_job_id",
				Columns:    []*schema.Column{JobRuleGroupsColumns[0]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "job_rule_groups_rule_group_id",
				Columns:    []*schema.Column{JobRuleGroupsColumns[1]},
				RefColumns: []*schema.Column{RuleGroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// RuleGroupRulesColumns holds the columns for the "rule_group_rules" table.
	RuleGroupRulesColumns = []*schema.Column{
		{Name: "rule_group_id", Type: field.TypeUUID},
		{Name: "rule_id", Type: field.TypeUUID},
	}
	// RuleGroupRulesTable holds the schema information for the "rule_group_rules" table.
	RuleGroupRulesTable = &schema.Table{
		Name:       "rule_group_rules",
		Columns:    RuleGroupRulesColumns,
		PrimaryKey: []*schema.Column{RuleGroupRulesColumns[0], RuleGroupRulesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "rule_group_rules_rule_group_id",
				Columns:    []*schema.Column{RuleGroupRulesColumns[0]},
				RefColumns: []*schema.Column{RuleGroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "rule_group_rules_rule_id",
				Columns:    []*schema.Column{RuleGroupRulesColumns[1]},
				RefColumns: []*schema.Column{RulesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JobsTable,
		JobDataTable,
		QueryLogTable,
		RulesTable,
		RuleGroupsTable,
		JobRuleGroupsTable,
		RuleGroupRulesTable,
	}
)

func init() {
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	JobDataTable.ForeignKeys[0].RefTable = JobsTable
	JobDataTable.Annotation = &entsql.Annotation{
		Table: "job_data",
	}
	QueryLogTable.Annotation = &entsql.Annotation{
		Table: "query_log",
	}
	RulesTable.Annotation = &entsql.Annotation{
		Table: "rules",
	}
	RuleGroupsTable.Annotation = &entsql.Annotation{
		Table: "rule_groups",
	}
	JobRuleGroupsTable.ForeignKeys[0].RefTable = JobsTable
	JobRuleGroupsTable.ForeignKeys[1].RefTable = RuleGroupsTable
	RuleGroupRulesTable.ForeignKeys[0].RefTable = RuleGroupsTable
	RuleGroupRulesTable.ForeignKeys[1].RefTable = RulesTable
}
