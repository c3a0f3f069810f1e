// Code generated by ent, DO NOT EDIT.

package summary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/scribeflow/scribeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldTaskID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldVersion, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldIsActive, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldContent, v))
}

// VisualFormat applies equality check predicate on the "visual_format" field. It's identical to VisualFormatEQ.
func VisualFormat(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldVisualFormat, v))
}

// VisualContent applies equality check predicate on the "visual_content" field. It's identical to VisualContentEQ.
func VisualContent(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldVisualContent, v))
}

// ImageKey applies equality check predicate on the "image_key" field. It's identical to ImageKeyEQ.
func ImageKey(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldImageKey, v))
}

// ModelUsed applies equality check predicate on the "model_used" field. It's identical to ModelUsedEQ.
func ModelUsed(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldModelUsed, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldPromptVersion, v))
}

// TokenCount applies equality check predicate on the "token_count" field. It's identical to TokenCountEQ.
func TokenCount(v int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldTokenCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldTaskID, v))
}

// SummaryTypeEQ applies the EQ predicate on the "summary_type" field.
func SummaryTypeEQ(v SummaryType) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldSummaryType, v))
}

// SummaryTypeNEQ applies the NEQ predicate on the "summary_type" field.
func SummaryTypeNEQ(v SummaryType) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldSummaryType, v))
}

// SummaryTypeIn applies the In predicate on the "summary_type" field.
func SummaryTypeIn(vs ...SummaryType) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldSummaryType, vs...))
}

// SummaryTypeNotIn applies the NotIn predicate on the "summary_type" field.
func SummaryTypeNotIn(vs ...SummaryType) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldSummaryType, vs...))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldVersion, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldIsActive, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldContent, v))
}

// VisualFormatEQ applies the EQ predicate on the "visual_format" field.
func VisualFormatEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldVisualFormat, v))
}

// VisualFormatNEQ applies the NEQ predicate on the "visual_format" field.
func VisualFormatNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldVisualFormat, v))
}

// VisualFormatIn applies the In predicate on the "visual_format" field.
func VisualFormatIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldVisualFormat, vs...))
}

// VisualFormatNotIn applies the NotIn predicate on the "visual_format" field.
func VisualFormatNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldVisualFormat, vs...))
}

// VisualFormatGT applies the GT predicate on the "visual_format" field.
func VisualFormatGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldVisualFormat, v))
}

// VisualFormatGTE applies the GTE predicate on the "visual_format" field.
func VisualFormatGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldVisualFormat, v))
}

// VisualFormatLT applies the LT predicate on the "visual_format" field.
func VisualFormatLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldVisualFormat, v))
}

// VisualFormatLTE applies the LTE predicate on the "visual_format" field.
func VisualFormatLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldVisualFormat, v))
}

// VisualFormatContains applies the Contains predicate on the "visual_format" field.
func VisualFormatContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldVisualFormat, v))
}

// VisualFormatHasPrefix applies the HasPrefix predicate on the "visual_format" field.
func VisualFormatHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldVisualFormat, v))
}

// VisualFormatHasSuffix applies the HasSuffix predicate on the "visual_format" field.
func VisualFormatHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldVisualFormat, v))
}

// VisualFormatIsNil applies the IsNil predicate on the "visual_format" field.
func VisualFormatIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldVisualFormat))
}

// VisualFormatNotNil applies the NotNil predicate on the "visual_format" field.
func VisualFormatNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldVisualFormat))
}

// VisualFormatEqualFold applies the EqualFold predicate on the "visual_format" field.
func VisualFormatEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldVisualFormat, v))
}

// VisualFormatContainsFold applies the ContainsFold predicate on the "visual_format" field.
func VisualFormatContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldVisualFormat, v))
}

// VisualContentEQ applies the EQ predicate on the "visual_content" field.
func VisualContentEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldVisualContent, v))
}

// VisualContentNEQ applies the NEQ predicate on the "visual_content" field.
func VisualContentNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldVisualContent, v))
}

// VisualContentIn applies the In predicate on the "visual_content" field.
func VisualContentIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldVisualContent, vs...))
}

// VisualContentNotIn applies the NotIn predicate on the "visual_content" field.
func VisualContentNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldVisualContent, vs...))
}

// VisualContentGT applies the GT predicate on the "visual_content" field.
func VisualContentGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldVisualContent, v))
}

// VisualContentGTE applies the GTE predicate on the "visual_content" field.
func VisualContentGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldVisualContent, v))
}

// VisualContentLT applies the LT predicate on the "visual_content" field.
func VisualContentLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldVisualContent, v))
}

// VisualContentLTE applies the LTE predicate on the "visual_content" field.
func VisualContentLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldVisualContent, v))
}

// VisualContentContains applies the Contains predicate on the "visual_content" field.
func VisualContentContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldVisualContent, v))
}

// VisualContentHasPrefix applies the HasPrefix predicate on the "visual_content" field.
func VisualContentHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldVisualContent, v))
}

// VisualContentHasSuffix applies the HasSuffix predicate on the "visual_content" field.
func VisualContentHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldVisualContent, v))
}

// VisualContentIsNil applies the IsNil predicate on the "visual_content" field.
func VisualContentIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldVisualContent))
}

// VisualContentNotNil applies the NotNil predicate on the "visual_content" field.
func VisualContentNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldVisualContent))
}

// VisualContentEqualFold applies the EqualFold predicate on the "visual_content" field.
func VisualContentEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldVisualContent, v))
}

// VisualContentContainsFold applies the ContainsFold predicate on the "visual_content" field.
func VisualContentContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldVisualContent, v))
}

// ImageKeyEQ applies the EQ predicate on the "image_key" field.
func ImageKeyEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldImageKey, v))
}

// ImageKeyNEQ applies the NEQ predicate on the "image_key" field.
func ImageKeyNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldImageKey, v))
}

// ImageKeyIn applies the In predicate on the "image_key" field.
func ImageKeyIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldImageKey, vs...))
}

// ImageKeyNotIn applies the NotIn predicate on the "image_key" field.
func ImageKeyNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldImageKey, vs...))
}

// ImageKeyGT applies the GT predicate on the "image_key" field.
func ImageKeyGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldImageKey, v))
}

// ImageKeyGTE applies the GTE predicate on the "image_key" field.
func ImageKeyGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldImageKey, v))
}

// ImageKeyLT applies the LT predicate on the "image_key" field.
func ImageKeyLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldImageKey, v))
}

// ImageKeyLTE applies the LTE predicate on the "image_key" field.
func ImageKeyLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldImageKey, v))
}

// ImageKeyContains applies the Contains predicate on the "image_key" field.
func ImageKeyContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldImageKey, v))
}

// ImageKeyHasPrefix applies the HasPrefix predicate on the "image_key" field.
func ImageKeyHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldImageKey, v))
}

// ImageKeyHasSuffix applies the HasSuffix predicate on the "image_key" field.
func ImageKeyHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldImageKey, v))
}

// ImageKeyIsNil applies the IsNil predicate on the "image_key" field.
func ImageKeyIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldImageKey))
}

// ImageKeyNotNil applies the NotNil predicate on the "image_key" field.
func ImageKeyNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldImageKey))
}

// ImageKeyEqualFold applies the EqualFold predicate on the "image_key" field.
func ImageKeyEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldImageKey, v))
}

// ImageKeyContainsFold applies the ContainsFold predicate on the "image_key" field.
func ImageKeyContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldImageKey, v))
}

// ModelUsedEQ applies the EQ predicate on the "model_used" field.
func ModelUsedEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldModelUsed, v))
}

// ModelUsedNEQ applies the NEQ predicate on the "model_used" field.
func ModelUsedNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldModelUsed, v))
}

// ModelUsedIn applies the In predicate on the "model_used" field.
func ModelUsedIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldModelUsed, vs...))
}

// ModelUsedNotIn applies the NotIn predicate on the "model_used" field.
func ModelUsedNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldModelUsed, vs...))
}

// ModelUsedGT applies the GT predicate on the "model_used" field.
func ModelUsedGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldModelUsed, v))
}

// ModelUsedGTE applies the GTE predicate on the "model_used" field.
func ModelUsedGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldModelUsed, v))
}

// ModelUsedLT applies the LT predicate on the "model_used" field.
func ModelUsedLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldModelUsed, v))
}

// ModelUsedLTE applies the LTE predicate on the "model_used" field.
func ModelUsedLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldModelUsed, v))
}

// ModelUsedContains applies the Contains predicate on the "model_used" field.
func ModelUsedContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldModelUsed, v))
}

// ModelUsedHasPrefix applies the HasPrefix predicate on the "model_used" field.
func ModelUsedHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldModelUsed, v))
}

// ModelUsedHasSuffix applies the HasSuffix predicate on the "model_used" field.
func ModelUsedHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldModelUsed, v))
}

// ModelUsedIsNil applies the IsNil predicate on the "model_used" field.
func ModelUsedIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldModelUsed))
}

// ModelUsedNotNil applies the NotNil predicate on the "model_used" field.
func ModelUsedNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldModelUsed))
}

// ModelUsedEqualFold applies the EqualFold predicate on the "model_used" field.
func ModelUsedEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldModelUsed, v))
}

// ModelUsedContainsFold applies the ContainsFold predicate on the "model_used" field.
func ModelUsedContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldModelUsed, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldPromptVersion, v))
}

// PromptVersionContains applies the Contains predicate on the "prompt_version" field.
func PromptVersionContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldPromptVersion, v))
}

// PromptVersionHasPrefix applies the HasPrefix predicate on the "prompt_version" field.
func PromptVersionHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldPromptVersion, v))
}

// PromptVersionHasSuffix applies the HasSuffix predicate on the "prompt_version" field.
func PromptVersionHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldPromptVersion, v))
}

// PromptVersionIsNil applies the IsNil predicate on the "prompt_version" field.
func PromptVersionIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldPromptVersion))
}

// PromptVersionNotNil applies the NotNil predicate on the "prompt_version" field.
func PromptVersionNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldPromptVersion))
}

// PromptVersionEqualFold applies the EqualFold predicate on the "prompt_version" field.
func PromptVersionEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldPromptVersion, v))
}

// PromptVersionContainsFold applies the ContainsFold predicate on the "prompt_version" field.
func PromptVersionContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldPromptVersion, v))
}

// TokenCountEQ applies the EQ predicate on the "token_count" field.
func TokenCountEQ(v int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldTokenCount, v))
}

// TokenCountNEQ applies the NEQ predicate on the "token_count" field.
func TokenCountNEQ(v int) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldTokenCount, v))
}

// TokenCountIn applies the In predicate on the "token_count" field.
func TokenCountIn(vs ...int) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldTokenCount, vs...))
}

// TokenCountNotIn applies the NotIn predicate on the "token_count" field.
func TokenCountNotIn(vs ...int) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldTokenCount, vs...))
}

// TokenCountGT applies the GT predicate on the "token_count" field.
func TokenCountGT(v int) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldTokenCount, v))
}

// TokenCountGTE applies the GTE predicate on the "token_count" field.
func TokenCountGTE(v int) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldTokenCount, v))
}

// TokenCountLT applies the LT predicate on the "token_count" field.
func TokenCountLT(v int) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldTokenCount, v))
}

// TokenCountLTE applies the LTE predicate on the "token_count" field.
func TokenCountLTE(v int) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldTokenCount, v))
}

// TokenCountIsNil applies the IsNil predicate on the "token_count" field.
func TokenCountIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldTokenCount))
}

// TokenCountNotNil applies the NotNil predicate on the "token_count" field.
func TokenCountNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldTokenCount))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.Summary {
	return predicate.Summary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.Summary {
	return predicate.Summary(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.NotPredicates(p))
}
