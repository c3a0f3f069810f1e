// Code generated by ent, DO NOT EDIT.

package transcriptsegment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/scribeflow/scribeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldTaskID, v))
}

// SpeakerID applies equality check predicate on the "speaker_id" field. It's identical to SpeakerIDEQ.
func SpeakerID(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldSpeakerID, v))
}

// StartSeconds applies equality check predicate on the "start_seconds" field. It's identical to StartSecondsEQ.
func StartSeconds(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldStartSeconds, v))
}

// EndSeconds applies equality check predicate on the "end_seconds" field. It's identical to EndSecondsEQ.
func EndSeconds(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldEndSeconds, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldContent, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldConfidence, v))
}

// IsEdited applies equality check predicate on the "is_edited" field. It's identical to IsEditedEQ.
func IsEdited(v bool) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldIsEdited, v))
}

// OriginalContent applies equality check predicate on the "original_content" field. It's identical to OriginalContentEQ.
func OriginalContent(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldOriginalContent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldContainsFold(FieldTaskID, v))
}

// SpeakerIDEQ applies the EQ predicate on the "speaker_id" field.
func SpeakerIDEQ(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldSpeakerID, v))
}

// SpeakerIDNEQ applies the NEQ predicate on the "speaker_id" field.
func SpeakerIDNEQ(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldSpeakerID, v))
}

// SpeakerIDIn applies the In predicate on the "speaker_id" field.
func SpeakerIDIn(vs ...string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldSpeakerID, vs...))
}

// SpeakerIDNotIn applies the NotIn predicate on the "speaker_id" field.
func SpeakerIDNotIn(vs ...string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldSpeakerID, vs...))
}

// SpeakerIDGT applies the GT predicate on the "speaker_id" field.
func SpeakerIDGT(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGT(FieldSpeakerID, v))
}

// SpeakerIDGTE applies the GTE predicate on the "speaker_id" field.
func SpeakerIDGTE(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGTE(FieldSpeakerID, v))
}

// SpeakerIDLT applies the LT predicate on the "speaker_id" field.
func SpeakerIDLT(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLT(FieldSpeakerID, v))
}

// SpeakerIDLTE applies the LTE predicate on the "speaker_id" field.
func SpeakerIDLTE(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLTE(FieldSpeakerID, v))
}

// SpeakerIDContains applies the Contains predicate on the "speaker_id" field.
func SpeakerIDContains(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldContains(FieldSpeakerID, v))
}

// SpeakerIDHasPrefix applies the HasPrefix predicate on the "speaker_id" field.
func SpeakerIDHasPrefix(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldHasPrefix(FieldSpeakerID, v))
}

// SpeakerIDHasSuffix applies the HasSuffix predicate on the "speaker_id" field.
func SpeakerIDHasSuffix(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldHasSuffix(FieldSpeakerID, v))
}

// SpeakerIDIsNil applies the IsNil predicate on the "speaker_id" field.
func SpeakerIDIsNil() predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIsNull(FieldSpeakerID))
}

// SpeakerIDNotNil applies the NotNil predicate on the "speaker_id" field.
func SpeakerIDNotNil() predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotNull(FieldSpeakerID))
}

// SpeakerIDEqualFold applies the EqualFold predicate on the "speaker_id" field.
func SpeakerIDEqualFold(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEqualFold(FieldSpeakerID, v))
}

// SpeakerIDContainsFold applies the ContainsFold predicate on the "speaker_id" field.
func SpeakerIDContainsFold(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldContainsFold(FieldSpeakerID, v))
}

// StartSecondsEQ applies the EQ predicate on the "start_seconds" field.
func StartSecondsEQ(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldStartSeconds, v))
}

// StartSecondsNEQ applies the NEQ predicate on the "start_seconds" field.
func StartSecondsNEQ(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldStartSeconds, v))
}

// StartSecondsIn applies the In predicate on the "start_seconds" field.
func StartSecondsIn(vs ...float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldStartSeconds, vs...))
}

// StartSecondsNotIn applies the NotIn predicate on the "start_seconds" field.
func StartSecondsNotIn(vs ...float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldStartSeconds, vs...))
}

// StartSecondsGT applies the GT predicate on the "start_seconds" field.
func StartSecondsGT(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGT(FieldStartSeconds, v))
}

// StartSecondsGTE applies the GTE predicate on the "start_seconds" field.
func StartSecondsGTE(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGTE(FieldStartSeconds, v))
}

// StartSecondsLT applies the LT predicate on the "start_seconds" field.
func StartSecondsLT(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLT(FieldStartSeconds, v))
}

// StartSecondsLTE applies the LTE predicate on the "start_seconds" field.
func StartSecondsLTE(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLTE(FieldStartSeconds, v))
}

// EndSecondsEQ applies the EQ predicate on the "end_seconds" field.
func EndSecondsEQ(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldEndSeconds, v))
}

// EndSecondsNEQ applies the NEQ predicate on the "end_seconds" field.
func EndSecondsNEQ(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldEndSeconds, v))
}

// EndSecondsIn applies the In predicate on the "end_seconds" field.
func EndSecondsIn(vs ...float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldEndSeconds, vs...))
}

// EndSecondsNotIn applies the NotIn predicate on the "end_seconds" field.
func EndSecondsNotIn(vs ...float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldEndSeconds, vs...))
}

// EndSecondsGT applies the GT predicate on the "end_seconds" field.
func EndSecondsGT(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGT(FieldEndSeconds, v))
}

// EndSecondsGTE applies the GTE predicate on the "end_seconds" field.
func EndSecondsGTE(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGTE(FieldEndSeconds, v))
}

// EndSecondsLT applies the LT predicate on the "end_seconds" field.
func EndSecondsLT(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLT(FieldEndSeconds, v))
}

// EndSecondsLTE applies the LTE predicate on the "end_seconds" field.
func EndSecondsLTE(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLTE(FieldEndSeconds, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldContainsFold(FieldContent, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotNull(FieldConfidence))
}

// WordsIsNil applies the IsNil predicate on the "words" field.
func WordsIsNil() predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIsNull(FieldWords))
}

// WordsNotNil applies the NotNil predicate on the "words" field.
func WordsNotNil() predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotNull(FieldWords))
}

// IsEditedEQ applies the EQ predicate on the "is_edited" field.
func IsEditedEQ(v bool) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldIsEdited, v))
}

// IsEditedNEQ applies the NEQ predicate on the "is_edited" field.
func IsEditedNEQ(v bool) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldIsEdited, v))
}

// OriginalContentEQ applies the EQ predicate on the "original_content" field.
func OriginalContentEQ(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldOriginalContent, v))
}

// OriginalContentNEQ applies the NEQ predicate on the "original_content" field.
func OriginalContentNEQ(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldOriginalContent, v))
}

// OriginalContentIn applies the In predicate on the "original_content" field.
func OriginalContentIn(vs ...string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldOriginalContent, vs...))
}

// OriginalContentNotIn applies the NotIn predicate on the "original_content" field.
func OriginalContentNotIn(vs ...string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldOriginalContent, vs...))
}

// OriginalContentGT applies the GT predicate on the "original_content" field.
func OriginalContentGT(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGT(FieldOriginalContent, v))
}

// OriginalContentGTE applies the GTE predicate on the "original_content" field.
func OriginalContentGTE(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGTE(FieldOriginalContent, v))
}

// OriginalContentLT applies the LT predicate on the "original_content" field.
func OriginalContentLT(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLT(FieldOriginalContent, v))
}

// OriginalContentLTE applies the LTE predicate on the "original_content" field.
func OriginalContentLTE(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLTE(FieldOriginalContent, v))
}

// OriginalContentContains applies the Contains predicate on the "original_content" field.
func OriginalContentContains(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldContains(FieldOriginalContent, v))
}

// OriginalContentHasPrefix applies the HasPrefix predicate on the "original_content" field.
func OriginalContentHasPrefix(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldHasPrefix(FieldOriginalContent, v))
}

// OriginalContentHasSuffix applies the HasSuffix predicate on the "original_content" field.
func OriginalContentHasSuffix(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldHasSuffix(FieldOriginalContent, v))
}

// OriginalContentIsNil applies the IsNil predicate on the "original_content" field.
func OriginalContentIsNil() predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIsNull(FieldOriginalContent))
}

// OriginalContentNotNil applies the NotNil predicate on the "original_content" field.
func OriginalContentNotNil() predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotNull(FieldOriginalContent))
}

// OriginalContentEqualFold applies the EqualFold predicate on the "original_content" field.
func OriginalContentEqualFold(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEqualFold(FieldOriginalContent, v))
}

// OriginalContentContainsFold applies the ContainsFold predicate on the "original_content" field.
func OriginalContentContainsFold(v string) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldContainsFold(FieldOriginalContent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.TranscriptSegment {
	return predicate.TranscriptSegment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TranscriptSegment) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TranscriptSegment) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TranscriptSegment) predicate.TranscriptSegment {
	return predicate.TranscriptSegment(sql.NotPredicates(p))
}
