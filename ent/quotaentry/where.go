// Code generated by ent, DO NOT EDIT.

package quotaentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/scribeflow/scribeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldContainsFold(FieldID, id))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldOwner, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldProvider, v))
}

// WindowStart applies equality check predicate on the "window_start" field. It's identical to WindowStartEQ.
func WindowStart(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldWindowStart, v))
}

// WindowEnd applies equality check predicate on the "window_end" field. It's identical to WindowEndEQ.
func WindowEnd(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldWindowEnd, v))
}

// QuotaSeconds applies equality check predicate on the "quota_seconds" field. It's identical to QuotaSecondsEQ.
func QuotaSeconds(v float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldQuotaSeconds, v))
}

// UsedSeconds applies equality check predicate on the "used_seconds" field. It's identical to UsedSecondsEQ.
func UsedSeconds(v float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldUsedSeconds, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldContainsFold(FieldOwner, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldContainsFold(FieldProvider, v))
}

// VariantEQ applies the EQ predicate on the "variant" field.
func VariantEQ(v Variant) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldVariant, v))
}

// VariantNEQ applies the NEQ predicate on the "variant" field.
func VariantNEQ(v Variant) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNEQ(FieldVariant, v))
}

// VariantIn applies the In predicate on the "variant" field.
func VariantIn(vs ...Variant) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldIn(FieldVariant, vs...))
}

// VariantNotIn applies the NotIn predicate on the "variant" field.
func VariantNotIn(vs ...Variant) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNotIn(FieldVariant, vs...))
}

// WindowTypeEQ applies the EQ predicate on the "window_type" field.
func WindowTypeEQ(v WindowType) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldWindowType, v))
}

// WindowTypeNEQ applies the NEQ predicate on the "window_type" field.
func WindowTypeNEQ(v WindowType) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNEQ(FieldWindowType, v))
}

// WindowTypeIn applies the In predicate on the "window_type" field.
func WindowTypeIn(vs ...WindowType) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldIn(FieldWindowType, vs...))
}

// WindowTypeNotIn applies the NotIn predicate on the "window_type" field.
func WindowTypeNotIn(vs ...WindowType) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNotIn(FieldWindowType, vs...))
}

// WindowStartEQ applies the EQ predicate on the "window_start" field.
func WindowStartEQ(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldWindowStart, v))
}

// WindowStartNEQ applies the NEQ predicate on the "window_start" field.
func WindowStartNEQ(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNEQ(FieldWindowStart, v))
}

// WindowStartIn applies the In predicate on the "window_start" field.
func WindowStartIn(vs ...time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldIn(FieldWindowStart, vs...))
}

// WindowStartNotIn applies the NotIn predicate on the "window_start" field.
func WindowStartNotIn(vs ...time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNotIn(FieldWindowStart, vs...))
}

// WindowStartGT applies the GT predicate on the "window_start" field.
func WindowStartGT(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGT(FieldWindowStart, v))
}

// WindowStartGTE applies the GTE predicate on the "window_start" field.
func WindowStartGTE(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGTE(FieldWindowStart, v))
}

// WindowStartLT applies the LT predicate on the "window_start" field.
func WindowStartLT(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLT(FieldWindowStart, v))
}

// WindowStartLTE applies the LTE predicate on the "window_start" field.
func WindowStartLTE(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLTE(FieldWindowStart, v))
}

// WindowEndEQ applies the EQ predicate on the "window_end" field.
func WindowEndEQ(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldWindowEnd, v))
}

// WindowEndNEQ applies the NEQ predicate on the "window_end" field.
func WindowEndNEQ(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNEQ(FieldWindowEnd, v))
}

// WindowEndIn applies the In predicate on the "window_end" field.
func WindowEndIn(vs ...time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldIn(FieldWindowEnd, vs...))
}

// WindowEndNotIn applies the NotIn predicate on the "window_end" field.
func WindowEndNotIn(vs ...time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNotIn(FieldWindowEnd, vs...))
}

// WindowEndGT applies the GT predicate on the "window_end" field.
func WindowEndGT(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGT(FieldWindowEnd, v))
}

// WindowEndGTE applies the GTE predicate on the "window_end" field.
func WindowEndGTE(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGTE(FieldWindowEnd, v))
}

// WindowEndLT applies the LT predicate on the "window_end" field.
func WindowEndLT(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLT(FieldWindowEnd, v))
}

// WindowEndLTE applies the LTE predicate on the "window_end" field.
func WindowEndLTE(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLTE(FieldWindowEnd, v))
}

// WindowEndIsNil applies the IsNil predicate on the "window_end" field.
func WindowEndIsNil() predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldIsNull(FieldWindowEnd))
}

// WindowEndNotNil applies the NotNil predicate on the "window_end" field.
func WindowEndNotNil() predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNotNull(FieldWindowEnd))
}

// QuotaSecondsEQ applies the EQ predicate on the "quota_seconds" field.
func QuotaSecondsEQ(v float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldQuotaSeconds, v))
}

// QuotaSecondsNEQ applies the NEQ predicate on the "quota_seconds" field.
func QuotaSecondsNEQ(v float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNEQ(FieldQuotaSeconds, v))
}

// QuotaSecondsIn applies the In predicate on the "quota_seconds" field.
func QuotaSecondsIn(vs ...float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldIn(FieldQuotaSeconds, vs...))
}

// QuotaSecondsNotIn applies the NotIn predicate on the "quota_seconds" field.
func QuotaSecondsNotIn(vs ...float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNotIn(FieldQuotaSeconds, vs...))
}

// QuotaSecondsGT applies the GT predicate on the "quota_seconds" field.
func QuotaSecondsGT(v float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGT(FieldQuotaSeconds, v))
}

// QuotaSecondsGTE applies the GTE predicate on the "quota_seconds" field.
func QuotaSecondsGTE(v float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGTE(FieldQuotaSeconds, v))
}

// QuotaSecondsLT applies the LT predicate on the "quota_seconds" field.
func QuotaSecondsLT(v float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLT(FieldQuotaSeconds, v))
}

// QuotaSecondsLTE applies the LTE predicate on the "quota_seconds" field.
func QuotaSecondsLTE(v float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLTE(FieldQuotaSeconds, v))
}

// UsedSecondsEQ applies the EQ predicate on the "used_seconds" field.
func UsedSecondsEQ(v float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldUsedSeconds, v))
}

// UsedSecondsNEQ applies the NEQ predicate on the "used_seconds" field.
func UsedSecondsNEQ(v float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNEQ(FieldUsedSeconds, v))
}

// UsedSecondsIn applies the In predicate on the "used_seconds" field.
func UsedSecondsIn(vs ...float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldIn(FieldUsedSeconds, vs...))
}

// UsedSecondsNotIn applies the NotIn predicate on the "used_seconds" field.
func UsedSecondsNotIn(vs ...float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNotIn(FieldUsedSeconds, vs...))
}

// UsedSecondsGT applies the GT predicate on the "used_seconds" field.
func UsedSecondsGT(v float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGT(FieldUsedSeconds, v))
}

// UsedSecondsGTE applies the GTE predicate on the "used_seconds" field.
func UsedSecondsGTE(v float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGTE(FieldUsedSeconds, v))
}

// UsedSecondsLT applies the LT predicate on the "used_seconds" field.
func UsedSecondsLT(v float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLT(FieldUsedSeconds, v))
}

// UsedSecondsLTE applies the LTE predicate on the "used_seconds" field.
func UsedSecondsLTE(v float64) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLTE(FieldUsedSeconds, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuotaEntry) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuotaEntry) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuotaEntry) predicate.QuotaEntry {
	return predicate.QuotaEntry(sql.NotPredicates(p))
}
