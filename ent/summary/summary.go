// Code generated by ent, DO NOT EDIT.

package summary

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the summary type in the database.
	Label = "summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "summary_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldSummaryType holds the string denoting the summary_type field in the database.
	FieldSummaryType = "summary_type"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldVisualFormat holds the string denoting the visual_format field in the database.
	FieldVisualFormat = "visual_format"
	// FieldVisualContent holds the string denoting the visual_content field in the database.
	FieldVisualContent = "visual_content"
	// FieldImageKey holds the string denoting the image_key field in the database.
	FieldImageKey = "image_key"
	// FieldModelUsed holds the string denoting the model_used field in the database.
	FieldModelUsed = "model_used"
	// FieldPromptVersion holds the string denoting the prompt_version field in the database.
	FieldPromptVersion = "prompt_version"
	// FieldTokenCount holds the string denoting the token_count field in the database.
	FieldTokenCount = "token_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the summary in the database.
	Table = "summaries"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "summaries"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for summary fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldSummaryType,
	FieldVersion,
	FieldIsActive,
	FieldContent,
	FieldVisualFormat,
	FieldVisualContent,
	FieldImageKey,
	FieldModelUsed,
	FieldPromptVersion,
	FieldTokenCount,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// SummaryType defines the type for the "summary_type" enum field.
type SummaryType string

// SummaryType values.
const (
	SummaryTypeOverview        SummaryType = "overview"
	SummaryTypeKeyPoints       SummaryType = "key_points"
	SummaryTypeActionItems     SummaryType = "action_items"
	SummaryTypeChapters        SummaryType = "chapters"
	SummaryTypeVisualMindmap   SummaryType = "visual_mindmap"
	SummaryTypeVisualTimeline  SummaryType = "visual_timeline"
	SummaryTypeVisualFlowchart SummaryType = "visual_flowchart"
)

func (st SummaryType) String() string {
	return string(st)
}

// SummaryTypeValidator is a validator for the "summary_type" field enum values. It is called by the builders before save.
func SummaryTypeValidator(st SummaryType) error {
	switch st {
	case SummaryTypeOverview, SummaryTypeKeyPoints, SummaryTypeActionItems, SummaryTypeChapters, SummaryTypeVisualMindmap, SummaryTypeVisualTimeline, SummaryTypeVisualFlowchart:
		return nil
	default:
		return fmt.Errorf("summary: invalid enum value for summary_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the Summary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// BySummaryType orders the results by the summary_type field.
func BySummaryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryType, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByVisualFormat orders the results by the visual_format field.
func ByVisualFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisualFormat, opts...).ToFunc()
}

// ByVisualContent orders the results by the visual_content field.
func ByVisualContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisualContent, opts...).ToFunc()
}

// ByImageKey orders the results by the image_key field.
func ByImageKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageKey, opts...).ToFunc()
}

// ByModelUsed orders the results by the model_used field.
func ByModelUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelUsed, opts...).ToFunc()
}

// ByPromptVersion orders the results by the prompt_version field.
func ByPromptVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptVersion, opts...).ToFunc()
}

// ByTokenCount orders the results by the token_count field.
func ByTokenCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
