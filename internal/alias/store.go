package alias

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"draftscan/internal/jsontree"
	"draftscan/internal/logging"
	"draftscan/internal/store"
)

// Stats counts merge outcomes. Rejected candidates are not counted.
type Stats struct {
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
}

// Map is the persisted alias map.
type Map struct {
	path    string
	logger  *slog.Logger
	status  store.Status
	entries map[string]string
}

// Open loads the alias map at path. Missing or unreadable files yield an
// empty map; the reason is logged at debug level only.
func Open(path string, logger *slog.Logger) *Map {
	logger = logging.NewComponentLogger(logger, "alias")

	snap := store.Load(path, decode)
	m := &Map{
		path:    path,
		logger:  logger,
		status:  snap.Status,
		entries: snap.Value,
	}
	if !snap.Usable() {
		m.entries = make(map[string]string)
	}

	switch snap.Status {
	case store.StatusCorrupt:
		logger.Debug("alias map unreadable, starting empty",
			logging.String(logging.FieldEventType, "alias_store_corrupt"),
			logging.String(logging.FieldStorePath, path),
			logging.Error(snap.Err))
	case store.StatusValid:
		logger.Debug("loaded alias map",
			logging.String(logging.FieldStorePath, path),
			logging.Int("entry_count", len(m.entries)))
	}
	return m
}

func decode(data []byte) (map[string]string, error) {
	root, err := jsontree.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if root.Kind != jsontree.KindObject {
		return nil, fmt.Errorf("alias map is a JSON %s, want object", root.Kind)
	}
	// Values are kept as written: non-string values become their JSON text
	// and a repeated key keeps its last value, as the decoder does.
	entries := make(map[string]string, len(root.Members))
	for _, member := range root.Members {
		entries[member.Key] = member.Value.Literal()
	}
	return entries, nil
}

// Path returns the backing file.
func (m *Map) Path() string { return m.path }

// Status reports how the persisted file looked when it was opened.
func (m *Map) Status() store.Status { return m.status }

// Len returns the number of aliases.
func (m *Map) Len() int { return len(m.entries) }

// Lookup returns the name recorded for id.
func (m *Map) Lookup(id string) (string, bool) {
	name, ok := m.entries[strings.TrimSpace(id)]
	return name, ok
}

// Merge adds records whose identifier is not yet present. Existing entries
// are never replaced.
func (m *Map) Merge(records iter.Seq[Record]) Stats {
	var stats Stats
	for record := range records {
		if _, exists := m.entries[record.ID]; exists {
			stats.Unchanged++
			continue
		}
		m.entries[record.ID] = record.Name
		stats.Updated++
	}
	m.logger.Debug("merged aliases",
		logging.Int("updated", stats.Updated),
		logging.Int("unchanged", stats.Unchanged),
		logging.Int("entry_count", len(m.entries)))
	return stats
}

// List returns all aliases sorted by identifier.
func (m *Map) List() []Record {
	records := make([]Record, 0, len(m.entries))
	for id, name := range m.entries {
		records = append(records, Record{ID: id, Name: name})
	}
	slices.SortFunc(records, func(a, b Record) int {
		return strings.Compare(a.ID, b.ID)
	})
	return records
}

// Save persists the map as a JSON object with sorted keys.
func (m *Map) Save() error {
	if m.path == "" {
		return errors.New("alias map has no path")
	}
	return store.WriteJSON(m.path, m.entries)
}
