package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/ent/quotaentry"
)

// ErrExhausted is returned when a consume would exceed any matching window.
var ErrExhausted = errors.New("quota exhausted")

// Manager tracks and enforces usage windows in the database. Consumption is
// an atomic in-database increment, so concurrent workers never lose updates.
type Manager struct {
	db  *ent.Client
	now func() time.Time
}

// NewManager creates a quota manager on db.
func NewManager(db *ent.Client) *Manager {
	return &Manager{db: db, now: time.Now}
}

// EnsureEntry creates the (owner, provider, variant, window_type) lane if it
// does not exist, with the current window bounds. Existing lanes keep their
// quota; expired windows roll over.
func (m *Manager) EnsureEntry(ctx context.Context, owner, provider, variant, windowType string, quotaSeconds float64) (*ent.QuotaEntry, error) {
	entry, err := m.db.QuotaEntry.Query().
		Where(
			quotaentry.Owner(owner),
			quotaentry.Provider(provider),
			quotaentry.VariantEQ(quotaentry.Variant(variant)),
			quotaentry.WindowTypeEQ(quotaentry.WindowType(windowType)),
		).
		Only(ctx)
	switch {
	case err == nil:
		return m.rollover(ctx, entry)
	case ent.IsNotFound(err):
		start, end := WindowBounds(windowType, m.now())
		create := m.db.QuotaEntry.Create().
			SetOwner(owner).
			SetProvider(provider).
			SetVariant(quotaentry.Variant(variant)).
			SetWindowType(quotaentry.WindowType(windowType)).
			SetWindowStart(start).
			SetQuotaSeconds(quotaSeconds)
		if end != nil {
			create.SetWindowEnd(*end)
		}
		return create.Save(ctx)
	default:
		return nil, fmt.Errorf("querying quota entry: %w", err)
	}
}

// matching returns all lanes that constrain (owner, provider, variant): the
// owner's own lanes plus the global provider lanes, rolled over as needed.
func (m *Manager) matching(ctx context.Context, owner, provider, variant string) ([]*ent.QuotaEntry, error) {
	owners := []string{OwnerGlobal}
	if owner != "" && owner != OwnerGlobal {
		owners = append(owners, owner)
	}

	entries, err := m.db.QuotaEntry.Query().
		Where(
			quotaentry.OwnerIn(owners...),
			quotaentry.Provider(provider),
			quotaentry.VariantEQ(quotaentry.Variant(variant)),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying quota entries: %w", err)
	}

	rolled := make([]*ent.QuotaEntry, 0, len(entries))
	for _, e := range entries {
		r, err := m.rollover(ctx, e)
		if err != nil {
			return nil, err
		}
		rolled = append(rolled, r)
	}
	return rolled, nil
}

// rollover resets an expired window in place. Day windows restart at the
// next 00:00 UTC, month windows at the first of the month. Total windows
// never roll.
func (m *Manager) rollover(ctx context.Context, e *ent.QuotaEntry) (*ent.QuotaEntry, error) {
	if !Expired(e.WindowEnd, m.now()) {
		return e, nil
	}

	start, end := WindowBounds(string(e.WindowType), m.now())
	update := e.Update().
		SetUsedSeconds(0).
		SetWindowStart(start).
		SetStatus(quotaentry.StatusActive)
	if end != nil {
		update.SetWindowEnd(*end)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("rolling over quota window: %w", err)
	}
	return updated, nil
}

// Available reports whether need seconds fit in every matching window.
// Availability is conjunctive: one exhausted lane blocks the whole tuple.
// No configured lanes means unconstrained.
func (m *Manager) Available(ctx context.Context, owner, provider, variant string, need float64) (bool, error) {
	entries, err := m.matching(ctx, owner, provider, variant)
	if err != nil {
		return false, err
	}

	for _, e := range entries {
		if e.UsedSeconds+need > e.QuotaSeconds {
			return false, nil
		}
	}
	return true, nil
}

// Consume records seconds of usage against every matching window. The
// increment runs in the database, then lanes that crossed their quota are
// flagged exhausted. Consumption of an actually-used amount is never
// rejected; enforcement happens on the next Available check.
func (m *Manager) Consume(ctx context.Context, owner, provider, variant string, seconds float64) error {
	entries, err := m.matching(ctx, owner, provider, variant)
	if err != nil {
		return err
	}

	for _, e := range entries {
		updated, err := e.Update().AddUsedSeconds(seconds).Save(ctx)
		if err != nil {
			return fmt.Errorf("consuming quota: %w", err)
		}
		if updated.UsedSeconds >= updated.QuotaSeconds && updated.Status != quotaentry.StatusExhausted {
			if _, err := updated.Update().SetStatus(quotaentry.StatusExhausted).Save(ctx); err != nil {
				return fmt.Errorf("flagging exhausted quota: %w", err)
			}
		}
	}
	return nil
}

// RemainingFraction returns the tightest remaining/quota ratio across the
// global lanes of (provider, variant), in [0,1]. Providers with no
// configured lanes report 1.
func (m *Manager) RemainingFraction(ctx context.Context, provider, variant string) (float64, error) {
	entries, err := m.matching(ctx, OwnerGlobal, provider, variant)
	if err != nil {
		return 0, err
	}

	fraction := 1.0
	for _, e := range entries {
		if e.QuotaSeconds <= 0 {
			continue
		}
		remaining := (e.QuotaSeconds - e.UsedSeconds) / e.QuotaSeconds
		if remaining < 0 {
			remaining = 0
		}
		if remaining < fraction {
			fraction = remaining
		}
	}
	return fraction, nil
}

// Refresh adjusts a lane's allowance and optionally resets its usage. A lane
// that does not exist yet is created first, so an admin refresh on a fresh
// (owner, provider, variant, window) key upserts.
func (m *Manager) Refresh(ctx context.Context, owner, provider, variant, windowType string, quotaSeconds *float64, reset bool) (*ent.QuotaEntry, error) {
	entry, err := m.db.QuotaEntry.Query().
		Where(
			quotaentry.Owner(owner),
			quotaentry.Provider(provider),
			quotaentry.VariantEQ(quotaentry.Variant(variant)),
			quotaentry.WindowTypeEQ(quotaentry.WindowType(windowType)),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		initial := 0.0
		if quotaSeconds != nil {
			initial = *quotaSeconds
		}
		entry, err = m.EnsureEntry(ctx, owner, provider, variant, windowType, initial)
	}
	if err != nil {
		return nil, fmt.Errorf("querying quota entry: %w", err)
	}

	update := entry.Update()
	if quotaSeconds != nil {
		update.SetQuotaSeconds(*quotaSeconds)
	}
	if reset {
		update.SetUsedSeconds(0).SetStatus(quotaentry.StatusActive)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("refreshing quota entry: %w", err)
	}
	return m.rollover(ctx, updated)
}

// List returns all lanes for an owner, for the admin surface.
func (m *Manager) List(ctx context.Context, owner string) ([]*ent.QuotaEntry, error) {
	return m.db.QuotaEntry.Query().
		Where(quotaentry.Owner(owner)).
		Order(ent.Asc(quotaentry.FieldProvider), ent.Asc(quotaentry.FieldVariant)).
		All(ctx)
}
