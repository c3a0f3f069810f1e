// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/scribeflow/scribeflow/ent/quotaentry"
)

// QuotaEntry is the model entity for the QuotaEntry schema.
type QuotaEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// User id, or "global" for the shared default lane
	Owner string `json:"owner,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// Variant holds the value of the "variant" field.
	Variant quotaentry.Variant `json:"variant,omitempty"`
	// WindowType holds the value of the "window_type" field.
	WindowType quotaentry.WindowType `json:"window_type,omitempty"`
	// WindowStart holds the value of the "window_start" field.
	WindowStart time.Time `json:"window_start,omitempty"`
	// Half-open [start, end); nil for total windows (never roll over)
	WindowEnd *time.Time `json:"window_end,omitempty"`
	// QuotaSeconds holds the value of the "quota_seconds" field.
	QuotaSeconds float64 `json:"quota_seconds,omitempty"`
	// UsedSeconds holds the value of the "used_seconds" field.
	UsedSeconds float64 `json:"used_seconds,omitempty"`
	// Status holds the value of the "status" field.
	Status quotaentry.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuotaEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quotaentry.FieldQuotaSeconds, quotaentry.FieldUsedSeconds:
			values[i] = new(sql.NullFloat64)
		case quotaentry.FieldID, quotaentry.FieldOwner, quotaentry.FieldProvider, quotaentry.FieldVariant, quotaentry.FieldWindowType, quotaentry.FieldStatus:
			values[i] = new(sql.NullString)
		case quotaentry.FieldWindowStart, quotaentry.FieldWindowEnd, quotaentry.FieldCreatedAt, quotaentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuotaEntry fields.
func (_m *QuotaEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quotaentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case quotaentry.FieldOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner", values[i])
			} else if value.Valid {
				_m.Owner = value.String
			}
		case quotaentry.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case quotaentry.FieldVariant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field variant", values[i])
			} else if value.Valid {
				_m.Variant = quotaentry.Variant(value.String)
			}
		case quotaentry.FieldWindowType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field window_type", values[i])
			} else if value.Valid {
				_m.WindowType = quotaentry.WindowType(value.String)
			}
		case quotaentry.FieldWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_start", values[i])
			} else if value.Valid {
				_m.WindowStart = value.Time
			}
		case quotaentry.FieldWindowEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_end", values[i])
			} else if value.Valid {
				_m.WindowEnd = new(time.Time)
				*_m.WindowEnd = value.Time
			}
		case quotaentry.FieldQuotaSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quota_seconds", values[i])
			} else if value.Valid {
				_m.QuotaSeconds = value.Float64
			}
		case quotaentry.FieldUsedSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field used_seconds", values[i])
			} else if value.Valid {
				_m.UsedSeconds = value.Float64
			}
		case quotaentry.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = quotaentry.Status(value.String)
			}
		case quotaentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case quotaentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuotaEntry.
// This includes values selected through modifiers, order, etc.
func (_m *QuotaEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuotaEntry.
// Note that you need to call QuotaEntry.Unwrap() before calling this method if this QuotaEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuotaEntry) Update() *QuotaEntryUpdateOne {
	return NewQuotaEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuotaEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuotaEntry) Unwrap() *QuotaEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuotaEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuotaEntry) String() string {
	var builder strings.Builder
	builder.WriteString("QuotaEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner=")
	builder.WriteString(_m.Owner)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("variant=")
	builder.WriteString(fmt.Sprintf("%v", _m.Variant))
	builder.WriteString(", ")
	builder.WriteString("window_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.WindowType))
	builder.WriteString(", ")
	builder.WriteString("window_start=")
	builder.WriteString(_m.WindowStart.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.WindowEnd; v != nil {
		builder.WriteString("window_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("quota_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuotaSeconds))
	builder.WriteString(", ")
	builder.WriteString("used_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsedSeconds))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuotaEntries is a parsable slice of QuotaEntry.
type QuotaEntries []*QuotaEntry
