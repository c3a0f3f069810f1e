// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/scribeflow/scribeflow/ent/task"
	"github.com/scribeflow/scribeflow/ent/transcriptsegment"
)

// TranscriptSegment is the model entity for the TranscriptSegment schema.
type TranscriptSegment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Normalized speaker tag (spk_0, spk_1, ...) or nil when diarization is off
	SpeakerID *string `json:"speaker_id,omitempty"`
	// StartSeconds holds the value of the "start_seconds" field.
	StartSeconds float64 `json:"start_seconds,omitempty"`
	// EndSeconds holds the value of the "end_seconds" field.
	EndSeconds float64 `json:"end_seconds,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Vendor confidence [0,1]; nil when the vendor does not report it
	Confidence *float64 `json:"confidence,omitempty"`
	// Word-level timestamps; vendor-conditional, consumers must tolerate nil
	Words []map[string]interface{} `json:"words,omitempty"`
	// IsEdited holds the value of the "is_edited" field.
	IsEdited bool `json:"is_edited,omitempty"`
	// Pre-edit text, set when is_edited
	OriginalContent *string `json:"original_content,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TranscriptSegmentQuery when eager-loading is set.
	Edges        TranscriptSegmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TranscriptSegmentEdges holds the relations/edges for other nodes in the graph.
type TranscriptSegmentEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TranscriptSegmentEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TranscriptSegment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transcriptsegment.FieldWords:
			values[i] = new([]byte)
		case transcriptsegment.FieldIsEdited:
			values[i] = new(sql.NullBool)
		case transcriptsegment.FieldStartSeconds, transcriptsegment.FieldEndSeconds, transcriptsegment.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case transcriptsegment.FieldID, transcriptsegment.FieldTaskID, transcriptsegment.FieldSpeakerID, transcriptsegment.FieldContent, transcriptsegment.FieldOriginalContent:
			values[i] = new(sql.NullString)
		case transcriptsegment.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TranscriptSegment fields.
func (_m *TranscriptSegment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transcriptsegment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case transcriptsegment.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case transcriptsegment.FieldSpeakerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field speaker_id", values[i])
			} else if value.Valid {
				_m.SpeakerID = new(string)
				*_m.SpeakerID = value.String
			}
		case transcriptsegment.FieldStartSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field start_seconds", values[i])
			} else if value.Valid {
				_m.StartSeconds = value.Float64
			}
		case transcriptsegment.FieldEndSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field end_seconds", values[i])
			} else if value.Valid {
				_m.EndSeconds = value.Float64
			}
		case transcriptsegment.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case transcriptsegment.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case transcriptsegment.FieldWords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field words", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Words); err != nil {
					return fmt.Errorf("unmarshal field words: %w", err)
				}
			}
		case transcriptsegment.FieldIsEdited:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_edited", values[i])
			} else if value.Valid {
				_m.IsEdited = value.Bool
			}
		case transcriptsegment.FieldOriginalContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_content", values[i])
			} else if value.Valid {
				_m.OriginalContent = new(string)
				*_m.OriginalContent = value.String
			}
		case transcriptsegment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TranscriptSegment.
// This includes values selected through modifiers, order, etc.
func (_m *TranscriptSegment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the TranscriptSegment entity.
func (_m *TranscriptSegment) QueryTask() *TaskQuery {
	return NewTranscriptSegmentClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this TranscriptSegment.
// Note that you need to call TranscriptSegment.Unwrap() before calling this method if this TranscriptSegment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TranscriptSegment) Update() *TranscriptSegmentUpdateOne {
	return NewTranscriptSegmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TranscriptSegment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TranscriptSegment) Unwrap() *TranscriptSegment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TranscriptSegment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TranscriptSegment) String() string {
	var builder strings.Builder
	builder.WriteString("TranscriptSegment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	if v := _m.SpeakerID; v != nil {
		builder.WriteString("speaker_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("start_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartSeconds))
	builder.WriteString(", ")
	builder.WriteString("end_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndSeconds))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("words=")
	builder.WriteString(fmt.Sprintf("%v", _m.Words))
	builder.WriteString(", ")
	builder.WriteString("is_edited=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEdited))
	builder.WriteString(", ")
	if v := _m.OriginalContent; v != nil {
		builder.WriteString("original_content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TranscriptSegments is a parsable slice of TranscriptSegment.
type TranscriptSegments []*TranscriptSegment
