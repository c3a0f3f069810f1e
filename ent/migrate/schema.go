// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_tasks_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// QuotaEntriesColumns holds the columns for the "quota_entries" table.
	QuotaEntriesColumns = []*schema.Column{
		{Name: "quota_id", Type: field.TypeString, Unique: true},
		{Name: "owner", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "variant", Type: field.TypeEnum, Enums: []string{"file", "file_fast", "stream_async", "stream_realtime"}},
		{Name: "window_type", Type: field.TypeEnum, Enums: []string{"day", "month", "total"}},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "window_end", Type: field.TypeTime, Nullable: true},
		{Name: "quota_seconds", Type: field.TypeFloat64},
		{Name: "used_seconds", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "exhausted"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QuotaEntriesTable holds the schema information for the "quota_entries" table.
	QuotaEntriesTable = &schema.Table{
		Name:       "quota_entries",
		Columns:    QuotaEntriesColumns,
		PrimaryKey: []*schema.Column{QuotaEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quotaentry_owner_provider_variant_window_type",
				Unique:  true,
				Columns: []*schema.Column{QuotaEntriesColumns[1], QuotaEntriesColumns[2], QuotaEntriesColumns[3], QuotaEntriesColumns[4]},
			},
			{
				Name:    "quotaentry_provider_status",
				Unique:  false,
				Columns: []*schema.Column{QuotaEntriesColumns[2], QuotaEntriesColumns[9]},
			},
		},
	}
	// SummariesColumns holds the columns for the "summaries" table.
	SummariesColumns = []*schema.Column{
		{Name: "summary_id", Type: field.TypeString, Unique: true},
		{Name: "summary_type", Type: field.TypeEnum, Enums: []string{"overview", "key_points", "action_items", "chapters", "visual_mindmap", "visual_timeline", "visual_flowchart"}},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "visual_format", Type: field.TypeString, Nullable: true},
		{Name: "visual_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "image_key", Type: field.TypeString, Nullable: true},
		{Name: "model_used", Type: field.TypeString, Nullable: true},
		{Name: "prompt_version", Type: field.TypeString, Nullable: true},
		{Name: "token_count", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// SummariesTable holds the schema information for the "summaries" table.
	SummariesTable = &schema.Table{
		Name:       "summaries",
		Columns:    SummariesColumns,
		PrimaryKey: []*schema.Column{SummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "summaries_tasks_summaries",
				Columns:    []*schema.Column{SummariesColumns[12]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "summary_task_id_summary_type",
				Unique:  false,
				Columns: []*schema.Column{SummariesColumns[12], SummariesColumns[1]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"process", "visualize"}, Default: "process"},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"upload", "url"}},
		{Name: "file_key", Type: field.TypeString, Nullable: true},
		{Name: "source_url", Type: field.TypeString, Nullable: true},
		{Name: "content_hash", Type: field.TypeString, Nullable: true},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "extracting", "transcribing", "summarizing", "completed", "failed"}, Default: "pending"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "duration_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[9]},
			},
			{
				Name:    "task_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[13]},
			},
			{
				Name:    "task_user_id_content_hash",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[7]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[9], TasksColumns[13]},
			},
			{
				Name:    "task_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[9], TasksColumns[18]},
			},
			{
				Name:    "task_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[19]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// TaskStagesColumns holds the columns for the "task_stages" table.
	TaskStagesColumns = []*schema.Column{
		{Name: "stage_id", Type: field.TypeString, Unique: true},
		{Name: "stage_type", Type: field.TypeEnum, Enums: []string{"resolve", "download", "transcode", "upload_storage", "transcribe", "summarize", "visualize"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskStagesTable holds the schema information for the "task_stages" table.
	TaskStagesTable = &schema.Table{
		Name:       "task_stages",
		Columns:    TaskStagesColumns,
		PrimaryKey: []*schema.Column{TaskStagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_stages_tasks_stages",
				Columns:    []*schema.Column{TaskStagesColumns[10]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskstage_task_id_stage_type",
				Unique:  false,
				Columns: []*schema.Column{TaskStagesColumns[10], TaskStagesColumns[1]},
			},
			{
				Name:    "taskstage_task_id_status",
				Unique:  false,
				Columns: []*schema.Column{TaskStagesColumns[10], TaskStagesColumns[2]},
			},
		},
	}
	// TranscriptSegmentsColumns holds the columns for the "transcript_segments" table.
	TranscriptSegmentsColumns = []*schema.Column{
		{Name: "segment_id", Type: field.TypeString, Unique: true},
		{Name: "speaker_id", Type: field.TypeString, Nullable: true},
		{Name: "start_seconds", Type: field.TypeFloat64},
		{Name: "end_seconds", Type: field.TypeFloat64},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "words", Type: field.TypeJSON, Nullable: true},
		{Name: "is_edited", Type: field.TypeBool, Default: false},
		{Name: "original_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TranscriptSegmentsTable holds the schema information for the "transcript_segments" table.
	TranscriptSegmentsTable = &schema.Table{
		Name:       "transcript_segments",
		Columns:    TranscriptSegmentsColumns,
		PrimaryKey: []*schema.Column{TranscriptSegmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transcript_segments_tasks_segments",
				Columns:    []*schema.Column{TranscriptSegmentsColumns[10]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transcriptsegment_task_id_start_seconds",
				Unique:  false,
				Columns: []*schema.Column{TranscriptSegmentsColumns[10], TranscriptSegmentsColumns[2]},
			},
		},
	}
	// UsageRecordsColumns holds the columns for the "usage_records" table.
	UsageRecordsColumns = []*schema.Column{
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "service_type", Type: field.TypeEnum, Enums: []string{"asr", "llm", "storage"}},
		{Name: "provider", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "cost", Type: field.TypeFloat64},
		{Name: "tokens", Type: field.TypeInt, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "request_id", Type: field.TypeString},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsageRecordsTable holds the schema information for the "usage_records" table.
	UsageRecordsTable = &schema.Table{
		Name:       "usage_records",
		Columns:    UsageRecordsColumns,
		PrimaryKey: []*schema.Column{UsageRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usagerecord_request_id_attempt",
				Unique:  true,
				Columns: []*schema.Column{UsageRecordsColumns[8], UsageRecordsColumns[9]},
			},
			{
				Name:    "usagerecord_service_type_provider_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageRecordsColumns[1], UsageRecordsColumns[2], UsageRecordsColumns[10]},
			},
			{
				Name:    "usagerecord_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageRecordsColumns[3], UsageRecordsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventsTable,
		QuotaEntriesTable,
		SummariesTable,
		TasksTable,
		TaskStagesTable,
		TranscriptSegmentsTable,
		UsageRecordsTable,
	}
)

func init() {
	EventsTable.ForeignKeys[0].RefTable = TasksTable
	SummariesTable.ForeignKeys[0].RefTable = TasksTable
	TaskStagesTable.ForeignKeys[0].RefTable = TasksTable
	TranscriptSegmentsTable.ForeignKeys[0].RefTable = TasksTable
}
