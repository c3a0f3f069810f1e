// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// QuotaEntry is the predicate function for quotaentry builders.
type QuotaEntry func(*sql.Selector)

// Summary is the predicate function for summary builders.
type Summary func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskStage is the predicate function for taskstage builders.
type TaskStage func(*sql.Selector)

// TranscriptSegment is the predicate function for transcriptsegment builders.
type TranscriptSegment func(*sql.Selector)

// UsageRecord is the predicate function for usagerecord builders.
type UsageRecord func(*sql.Selector)
