package domain

import "time"

// Tracked field names. They double as column names in both the host
// modules table and modules_versions.
const (
	FieldTitle       = "title"
	FieldNote        = "note"
	FieldContent     = "content"
	FieldOrdering    = "ordering"
	FieldPosition    = "position"
	FieldPublishUp   = "publish_up"
	FieldPublishDown = "publish_down"
	FieldPublished   = "published"
	FieldKind        = "module"
	FieldAccess      = "access"
	FieldShowTitle   = "showtitle"
	FieldParams      = "params"
	FieldClientID    = "client_id"
	FieldLanguage    = "language"
)

// TrackedFields is the fixed allowlist of snapshotted attributes, in
// column order.
var TrackedFields = []string{
	FieldTitle, FieldNote, FieldContent, FieldOrdering, FieldPosition,
	FieldPublishUp, FieldPublishDown, FieldPublished, FieldKind, FieldAccess,
	FieldShowTitle, FieldParams, FieldClientID, FieldLanguage,
}

// ModuleFields holds every tracked attribute of a module.
type ModuleFields struct {
	Title       string
	Note        string
	Content     string
	Ordering    int
	Position    string
	PublishUp   *time.Time
	PublishDown *time.Time
	Published   int
	Kind        string
	Access      int
	ShowTitle   bool
	// Params is the serialized parameter blob. It is never parsed.
	Params   string
	ClientID int
	Language string
}

// Module is the live content block owned by the host CMS.
type Module struct {
	ID int64
	ModuleFields
}

// ModuleVersion is an immutable snapshot of a module's tracked fields.
// Only Current changes after insertion.
type ModuleVersion struct {
	ID        int64
	ModuleID  int64
	Current   bool
	ChangedAt time.Time
	ModuleFields
}

// ExtensionKey identifies every module instance of one installed
// module type.
type ExtensionKey struct {
	Kind     string
	ClientID int
}

// Extension is the host's record of an installed extension.
type Extension struct {
	ID       int64
	Element  string
	ClientID int
}

// Key returns the module-type key used to purge versions on uninstall.
func (e Extension) Key() ExtensionKey {
	return ExtensionKey{Kind: e.Element, ClientID: e.ClientID}
}

// Normalized returns a copy with publish times truncated to whole seconds
// in UTC, the precision the versions table keeps.
func (f ModuleFields) Normalized() ModuleFields {
	f.PublishUp = normalizeTime(f.PublishUp)
	f.PublishDown = normalizeTime(f.PublishDown)
	return f
}

func normalizeTime(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	n := t.UTC().Truncate(time.Second)
	return &n
}

// Diff returns the names of tracked fields whose values differ, in
// TrackedFields order. A nil result means the field sets are equal.
func (f ModuleFields) Diff(other ModuleFields) []string {
	a, b := f.Normalized(), other.Normalized()

	var changed []string
	add := func(differs bool, name string) {
		if differs {
			changed = append(changed, name)
		}
	}

	add(a.Title != b.Title, FieldTitle)
	add(a.Note != b.Note, FieldNote)
	add(a.Content != b.Content, FieldContent)
	add(a.Ordering != b.Ordering, FieldOrdering)
	add(a.Position != b.Position, FieldPosition)
	add(!timesEqual(a.PublishUp, b.PublishUp), FieldPublishUp)
	add(!timesEqual(a.PublishDown, b.PublishDown), FieldPublishDown)
	add(a.Published != b.Published, FieldPublished)
	add(a.Kind != b.Kind, FieldKind)
	add(a.Access != b.Access, FieldAccess)
	add(a.ShowTitle != b.ShowTitle, FieldShowTitle)
	add(a.Params != b.Params, FieldParams)
	add(a.ClientID != b.ClientID, FieldClientID)
	add(a.Language != b.Language, FieldLanguage)

	return changed
}

// Equal reports whether every tracked field matches.
func (f ModuleFields) Equal(other ModuleFields) bool {
	return len(f.Diff(other)) == 0
}

func timesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// HasChanged reports whether the live module differs from its newest
// stored snapshot. Identity and bookkeeping columns are ignored.
func HasChanged(m Module, latest ModuleVersion) bool {
	return !m.ModuleFields.Equal(latest.ModuleFields)
}

// Snapshot builds the version record that Append persists for m.
func Snapshot(m Module, at time.Time) ModuleVersion {
	return ModuleVersion{
		ModuleID:     m.ID,
		Current:      true,
		ChangedAt:    at.UTC().Truncate(time.Second),
		ModuleFields: m.ModuleFields.Normalized(),
	}
}
