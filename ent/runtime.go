// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/scribeflow/scribeflow/ent/event"
	"github.com/scribeflow/scribeflow/ent/quotaentry"
	"github.com/scribeflow/scribeflow/ent/schema"
	"github.com/scribeflow/scribeflow/ent/summary"
	"github.com/scribeflow/scribeflow/ent/task"
	"github.com/scribeflow/scribeflow/ent/taskstage"
	"github.com/scribeflow/scribeflow/ent/transcriptsegment"
	"github.com/scribeflow/scribeflow/ent/usagerecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescID is the schema descriptor for id field.
	eventDescID := eventFields[0].Descriptor()
	// event.IDValidator is a validator for the "id" field. It is called by the builders before save.
	event.IDValidator = eventDescID.Validators[0].(func(int) error)
	quotaentryFields := schema.QuotaEntry{}.Fields()
	_ = quotaentryFields
	// quotaentryDescUsedSeconds is the schema descriptor for used_seconds field.
	quotaentryDescUsedSeconds := quotaentryFields[8].Descriptor()
	// quotaentry.DefaultUsedSeconds holds the default value on creation for the used_seconds field.
	quotaentry.DefaultUsedSeconds = quotaentryDescUsedSeconds.Default.(float64)
	// quotaentryDescCreatedAt is the schema descriptor for created_at field.
	quotaentryDescCreatedAt := quotaentryFields[10].Descriptor()
	// quotaentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	quotaentry.DefaultCreatedAt = quotaentryDescCreatedAt.Default.(func() time.Time)
	// quotaentryDescUpdatedAt is the schema descriptor for updated_at field.
	quotaentryDescUpdatedAt := quotaentryFields[11].Descriptor()
	// quotaentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	quotaentry.DefaultUpdatedAt = quotaentryDescUpdatedAt.Default.(func() time.Time)
	// quotaentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	quotaentry.UpdateDefaultUpdatedAt = quotaentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	summaryFields := schema.Summary{}.Fields()
	_ = summaryFields
	// summaryDescVersion is the schema descriptor for version field.
	summaryDescVersion := summaryFields[3].Descriptor()
	// summary.DefaultVersion holds the default value on creation for the version field.
	summary.DefaultVersion = summaryDescVersion.Default.(int)
	// summaryDescIsActive is the schema descriptor for is_active field.
	summaryDescIsActive := summaryFields[4].Descriptor()
	// summary.DefaultIsActive holds the default value on creation for the is_active field.
	summary.DefaultIsActive = summaryDescIsActive.Default.(bool)
	// summaryDescCreatedAt is the schema descriptor for created_at field.
	summaryDescCreatedAt := summaryFields[12].Descriptor()
	// summary.DefaultCreatedAt holds the default value on creation for the created_at field.
	summary.DefaultCreatedAt = summaryDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescProgress is the schema descriptor for progress field.
	taskDescProgress := taskFields[10].Descriptor()
	// task.DefaultProgress holds the default value on creation for the progress field.
	task.DefaultProgress = taskDescProgress.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[13].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[14].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskstageFields := schema.TaskStage{}.Fields()
	_ = taskstageFields
	// taskstageDescIsActive is the schema descriptor for is_active field.
	taskstageDescIsActive := taskstageFields[5].Descriptor()
	// taskstage.DefaultIsActive holds the default value on creation for the is_active field.
	taskstage.DefaultIsActive = taskstageDescIsActive.Default.(bool)
	// taskstageDescCreatedAt is the schema descriptor for created_at field.
	taskstageDescCreatedAt := taskstageFields[10].Descriptor()
	// taskstage.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskstage.DefaultCreatedAt = taskstageDescCreatedAt.Default.(func() time.Time)
	transcriptsegmentFields := schema.TranscriptSegment{}.Fields()
	_ = transcriptsegmentFields
	// transcriptsegmentDescIsEdited is the schema descriptor for is_edited field.
	transcriptsegmentDescIsEdited := transcriptsegmentFields[8].Descriptor()
	// transcriptsegment.DefaultIsEdited holds the default value on creation for the is_edited field.
	transcriptsegment.DefaultIsEdited = transcriptsegmentDescIsEdited.Default.(bool)
	// transcriptsegmentDescCreatedAt is the schema descriptor for created_at field.
	transcriptsegmentDescCreatedAt := transcriptsegmentFields[10].Descriptor()
	// transcriptsegment.DefaultCreatedAt holds the default value on creation for the created_at field.
	transcriptsegment.DefaultCreatedAt = transcriptsegmentDescCreatedAt.Default.(func() time.Time)
	usagerecordFields := schema.UsageRecord{}.Fields()
	_ = usagerecordFields
	// usagerecordDescAttempt is the schema descriptor for attempt field.
	usagerecordDescAttempt := usagerecordFields[9].Descriptor()
	// usagerecord.DefaultAttempt holds the default value on creation for the attempt field.
	usagerecord.DefaultAttempt = usagerecordDescAttempt.Default.(int)
	// usagerecordDescCreatedAt is the schema descriptor for created_at field.
	usagerecordDescCreatedAt := usagerecordFields[10].Descriptor()
	// usagerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	usagerecord.DefaultCreatedAt = usagerecordDescCreatedAt.Default.(func() time.Time)
}
