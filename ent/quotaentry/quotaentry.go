// Code generated by ent, DO NOT EDIT.

package quotaentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quotaentry type in the database.
	Label = "quota_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "quota_id"
	// FieldOwner holds the string denoting the owner field in the database.
	FieldOwner = "owner"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldVariant holds the string denoting the variant field in the database.
	FieldVariant = "variant"
	// FieldWindowType holds the string denoting the window_type field in the database.
	FieldWindowType = "window_type"
	// FieldWindowStart holds the string denoting the window_start field in the database.
	FieldWindowStart = "window_start"
	// FieldWindowEnd holds the string denoting the window_end field in the database.
	FieldWindowEnd = "window_end"
	// FieldQuotaSeconds holds the string denoting the quota_seconds field in the database.
	FieldQuotaSeconds = "quota_seconds"
	// FieldUsedSeconds holds the string denoting the used_seconds field in the database.
	FieldUsedSeconds = "used_seconds"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the quotaentry in the database.
	Table = "quota_entries"
)

// Columns holds all SQL columns for quotaentry fields.
var Columns = []string{
	FieldID,
	FieldOwner,
	FieldProvider,
	FieldVariant,
	FieldWindowType,
	FieldWindowStart,
	FieldWindowEnd,
	FieldQuotaSeconds,
	FieldUsedSeconds,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultUsedSeconds holds the default value on creation for the "used_seconds" field.
	DefaultUsedSeconds float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Variant defines the type for the "variant" enum field.
type Variant string

// Variant values.
const (
	VariantFile           Variant = "file"
	VariantFileFast       Variant = "file_fast"
	VariantStreamAsync    Variant = "stream_async"
	VariantStreamRealtime Variant = "stream_realtime"
)

func (v Variant) String() string {
	return string(v)
}

// VariantValidator is a validator for the "variant" field enum values. It is called by the builders before save.
func VariantValidator(v Variant) error {
	switch v {
	case VariantFile, VariantFileFast, VariantStreamAsync, VariantStreamRealtime:
		return nil
	default:
		return fmt.Errorf("quotaentry: invalid enum value for variant field: %q", v)
	}
}

// WindowType defines the type for the "window_type" enum field.
type WindowType string

// WindowType values.
const (
	WindowTypeDay   WindowType = "day"
	WindowTypeMonth WindowType = "month"
	WindowTypeTotal WindowType = "total"
)

func (wt WindowType) String() string {
	return string(wt)
}

// WindowTypeValidator is a validator for the "window_type" field enum values. It is called by the builders before save.
func WindowTypeValidator(wt WindowType) error {
	switch wt {
	case WindowTypeDay, WindowTypeMonth, WindowTypeTotal:
		return nil
	default:
		return fmt.Errorf("quotaentry: invalid enum value for window_type field: %q", wt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusExhausted Status = "exhausted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusExhausted:
		return nil
	default:
		return fmt.Errorf("quotaentry: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the QuotaEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwner orders the results by the owner field.
func ByOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwner, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByVariant orders the results by the variant field.
func ByVariant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariant, opts...).ToFunc()
}

// ByWindowType orders the results by the window_type field.
func ByWindowType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowType, opts...).ToFunc()
}

// ByWindowStart orders the results by the window_start field.
func ByWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStart, opts...).ToFunc()
}

// ByWindowEnd orders the results by the window_end field.
func ByWindowEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowEnd, opts...).ToFunc()
}

// ByQuotaSeconds orders the results by the quota_seconds field.
func ByQuotaSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuotaSeconds, opts...).ToFunc()
}

// ByUsedSeconds orders the results by the used_seconds field.
func ByUsedSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsedSeconds, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
