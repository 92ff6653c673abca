// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertsColumns holds the columns for the "alerts" table.
	AlertsColumns = []*schema.Column{
		{Name: "alert_id", Type: field.TypeString, Unique: true},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"critical", "warning", "info", "success"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"firing", "resolved"}, Default: "firing"},
		{Name: "labels", Type: field.TypeJSON, Nullable: true},
		{Name: "annotations", Type: field.TypeJSON, Nullable: true},
		{Name: "raw_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "starts_at", Type: field.TypeTime, Nullable: true},
		{Name: "ends_at", Type: field.TypeTime, Nullable: true},
		{Name: "incident_id", Type: field.TypeString, Nullable: true},
	}
	// AlertsTable holds the schema information for the "alerts" table.
	AlertsTable = &schema.Table{
		Name:       "alerts",
		Columns:    AlertsColumns,
		PrimaryKey: []*schema.Column{AlertsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "alerts_incidents_alerts",
				Columns:    []*schema.Column{AlertsColumns[12]},
				RefColumns: []*schema.Column{IncidentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "alert_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[1]},
			},
			{
				Name:    "alert_fingerprint_status",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[1], AlertsColumns[5]},
			},
			{
				Name:    "alert_incident_id",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[12]},
			},
			{
				Name:    "alert_source",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[2]},
			},
		},
	}
	// AlertHistoriesColumns holds the columns for the "alert_histories" table.
	AlertHistoriesColumns = []*schema.Column{
		{Name: "history_id", Type: field.TypeString, Unique: true},
		{Name: "previous_status", Type: field.TypeString},
		{Name: "new_status", Type: field.TypeString},
		{Name: "details", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "alert_id", Type: field.TypeString},
	}
	// AlertHistoriesTable holds the schema information for the "alert_histories" table.
	AlertHistoriesTable = &schema.Table{
		Name:       "alert_histories",
		Columns:    AlertHistoriesColumns,
		PrimaryKey: []*schema.Column{AlertHistoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "alert_histories_alerts_history",
				Columns:    []*schema.Column{AlertHistoriesColumns[5]},
				RefColumns: []*schema.Column{AlertsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "alerthistory_alert_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AlertHistoriesColumns[5], AlertHistoriesColumns[4]},
			},
		},
	}
	// AnalysisRunsColumns holds the columns for the "analysis_runs" table.
	AnalysisRunsColumns = []*schema.Column{
		{Name: "analysis_run_id", Type: field.TypeString, Unique: true},
		{Name: "trace_id", Type: field.TypeString},
		{Name: "pipeline_run_id", Type: field.TypeString, Nullable: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "provider_config", Type: field.TypeJSON, Nullable: true},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"succeeded", "failed", "fallback"}},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "incident_id", Type: field.TypeString, Nullable: true},
	}
	// AnalysisRunsTable holds the schema information for the "analysis_runs" table.
	AnalysisRunsTable = &schema.Table{
		Name:       "analysis_runs",
		Columns:    AnalysisRunsColumns,
		PrimaryKey: []*schema.Column{AnalysisRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analysis_runs_incidents_analysis_runs",
				Columns:    []*schema.Column{AnalysisRunsColumns[10]},
				RefColumns: []*schema.Column{IncidentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysisrun_trace_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRunsColumns[1]},
			},
			{
				Name:    "analysisrun_incident_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRunsColumns[10]},
			},
		},
	}
	// CheckRunsColumns holds the columns for the "check_runs" table.
	CheckRunsColumns = []*schema.Column{
		{Name: "check_run_id", Type: field.TypeString, Unique: true},
		{Name: "checker_name", Type: field.TypeString},
		{Name: "hostname", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ok", "warning", "critical", "unknown"}},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "trace_id", Type: field.TypeString},
		{Name: "pipeline_run_id", Type: field.TypeString, Nullable: true},
		{Name: "executed_at", Type: field.TypeTime},
	}
	// CheckRunsTable holds the schema information for the "check_runs" table.
	CheckRunsTable = &schema.Table{
		Name:       "check_runs",
		Columns:    CheckRunsColumns,
		PrimaryKey: []*schema.Column{CheckRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkrun_trace_id",
				Unique:  false,
				Columns: []*schema.Column{CheckRunsColumns[7]},
			},
			{
				Name:    "checkrun_checker_name_executed_at",
				Unique:  false,
				Columns: []*schema.Column{CheckRunsColumns[1], CheckRunsColumns[9]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_run_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
		},
	}
	// IncidentsColumns holds the columns for the "incidents" table.
	IncidentsColumns = []*schema.Column{
		{Name: "incident_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"critical", "warning", "info", "success"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "acknowledged", "resolved", "closed"}, Default: "open"},
		{Name: "grouping_key", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// IncidentsTable holds the schema information for the "incidents" table.
	IncidentsTable = &schema.Table{
		Name:       "incidents",
		Columns:    IncidentsColumns,
		PrimaryKey: []*schema.Column{IncidentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "incident_status",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[4]},
			},
			{
				Name:    "incident_grouping_key_status",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[5], IncidentsColumns[4]},
			},
			{
				Name:    "incident_created_at",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[7]},
			},
		},
	}
	// IntelligenceProvidersColumns holds the columns for the "intelligence_providers" table.
	IntelligenceProvidersColumns = []*schema.Column{
		{Name: "provider_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "provider_type", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IntelligenceProvidersTable holds the schema information for the "intelligence_providers" table.
	IntelligenceProvidersTable = &schema.Table{
		Name:       "intelligence_providers",
		Columns:    IntelligenceProvidersColumns,
		PrimaryKey: []*schema.Column{IntelligenceProvidersColumns[0]},
	}
	// NotificationChannelsColumns holds the columns for the "notification_channels" table.
	NotificationChannelsColumns = []*schema.Column{
		{Name: "channel_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "driver", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// NotificationChannelsTable holds the schema information for the "notification_channels" table.
	NotificationChannelsTable = &schema.Table{
		Name:       "notification_channels",
		Columns:    NotificationChannelsColumns,
		PrimaryKey: []*schema.Column{NotificationChannelsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notificationchannel_driver_is_active",
				Unique:  false,
				Columns: []*schema.Column{NotificationChannelsColumns[2], NotificationChannelsColumns[4]},
			},
		},
	}
	// PipelineDefinitionsColumns holds the columns for the "pipeline_definitions" table.
	PipelineDefinitionsColumns = []*schema.Column{
		{Name: "definition_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "config", Type: field.TypeJSON},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PipelineDefinitionsTable holds the schema information for the "pipeline_definitions" table.
	PipelineDefinitionsTable = &schema.Table{
		Name:       "pipeline_definitions",
		Columns:    PipelineDefinitionsColumns,
		PrimaryKey: []*schema.Column{PipelineDefinitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinedefinition_is_active",
				Unique:  false,
				Columns: []*schema.Column{PipelineDefinitionsColumns[6]},
			},
		},
	}
	// PipelineRunsColumns holds the columns for the "pipeline_runs" table.
	PipelineRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "trace_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"fixed", "definition"}, Default: "fixed"},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "environment", Type: field.TypeString, Nullable: true},
		{Name: "definition_name", Type: field.TypeString, Nullable: true},
		{Name: "definition_version", Type: field.TypeInt, Nullable: true},
		{Name: "incident_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "ingested", "checked", "analyzed", "notified", "retrying", "completed", "failed"}, Default: "pending"},
		{Name: "current_stage", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "last_error_type", Type: field.TypeString, Nullable: true},
		{Name: "last_error_message", Type: field.TypeString, Nullable: true},
		{Name: "last_error_retryable", Type: field.TypeBool, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
	}
	// PipelineRunsTable holds the schema information for the "pipeline_runs" table.
	PipelineRunsTable = &schema.Table{
		Name:       "pipeline_runs",
		Columns:    PipelineRunsColumns,
		PrimaryKey: []*schema.Column{PipelineRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinerun_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[8]},
			},
			{
				Name:    "pipelinerun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[8], PipelineRunsColumns[16]},
			},
			{
				Name:    "pipelinerun_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[8], PipelineRunsColumns[21]},
			},
			{
				Name:    "pipelinerun_trace_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[1]},
			},
			{
				Name:    "pipelinerun_incident_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[7]},
			},
		},
	}
	// StageExecutionsColumns holds the columns for the "stage_executions" table.
	StageExecutionsColumns = []*schema.Column{
		{Name: "stage_execution_id", Type: field.TypeString, Unique: true},
		{Name: "stage", Type: field.TypeString, Size: 20},
		{Name: "node_id", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "succeeded", "failed", "skipped"}, Default: "pending"},
		{Name: "input_ref", Type: field.TypeString, Nullable: true},
		{Name: "output_ref", Type: field.TypeString, Nullable: true},
		{Name: "output_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "error_type", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_stack", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_retryable", Type: field.TypeBool, Default: false},
		{Name: "skip_reason", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "pipeline_run_id", Type: field.TypeString},
	}
	// StageExecutionsTable holds the schema information for the "stage_executions" table.
	StageExecutionsTable = &schema.Table{
		Name:       "stage_executions",
		Columns:    StageExecutionsColumns,
		PrimaryKey: []*schema.Column{StageExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stage_executions_pipeline_runs_stage_executions",
				Columns:    []*schema.Column{StageExecutionsColumns[18]},
				RefColumns: []*schema.Column{PipelineRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stageexecution_pipeline_run_id_stage_node_id_attempt",
				Unique:  true,
				Columns: []*schema.Column{StageExecutionsColumns[18], StageExecutionsColumns[1], StageExecutionsColumns[2], StageExecutionsColumns[3]},
			},
			{
				Name:    "stageexecution_pipeline_run_id_status",
				Unique:  false,
				Columns: []*schema.Column{StageExecutionsColumns[18], StageExecutionsColumns[5]},
			},
		},
	}
	// StageOutputsColumns holds the columns for the "stage_outputs" table.
	StageOutputsColumns = []*schema.Column{
		{Name: "stage_output_id", Type: field.TypeString, Unique: true},
		{Name: "pipeline_run_id", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StageOutputsTable holds the schema information for the "stage_outputs" table.
	StageOutputsTable = &schema.Table{
		Name:       "stage_outputs",
		Columns:    StageOutputsColumns,
		PrimaryKey: []*schema.Column{StageOutputsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stageoutput_pipeline_run_id",
				Unique:  false,
				Columns: []*schema.Column{StageOutputsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertsTable,
		AlertHistoriesTable,
		AnalysisRunsTable,
		CheckRunsTable,
		EventsTable,
		IncidentsTable,
		IntelligenceProvidersTable,
		NotificationChannelsTable,
		PipelineDefinitionsTable,
		PipelineRunsTable,
		StageExecutionsTable,
		StageOutputsTable,
	}
)

func init() {
	AlertsTable.ForeignKeys[0].RefTable = IncidentsTable
	AlertHistoriesTable.ForeignKeys[0].RefTable = AlertsTable
	AnalysisRunsTable.ForeignKeys[0].RefTable = IncidentsTable
	StageExecutionsTable.ForeignKeys[0].RefTable = PipelineRunsTable
}
