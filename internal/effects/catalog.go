package effects

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

// Stats counts merge outcomes. Added only counts identifiers new to the
// catalog; Total is the catalog size after the merge.
type Stats struct {
	Added int `json:"added"`
	Total int `json:"total"`
}

// Catalog is the persisted effect catalog.
type Catalog struct {
	path    string
	logger  *slog.Logger
	status  store.Status
	entries map[string]entry
}

// entry is one catalog item. raw holds the item as it was persisted; it is
// written back untouched, so keys outside Record survive a save.
type entry struct {
	record Record
	raw    *jsontree.Node
}

func (e entry) value() any {
	if e.raw != nil {
		return e.raw
	}
	return e.record
}

// Open loads the catalog at path. Missing or unreadable files yield an empty
// catalog; the reason is logged at debug level only.
func Open(path string, logger *slog.Logger) *Catalog {
	logger = logging.NewComponentLogger(logger, "effects")

	snap := store.Load(path, decode)
	c := &Catalog{
		path:    path,
		logger:  logger,
		status:  snap.Status,
		entries: snap.Value,
	}
	if !snap.Usable() {
		c.entries = make(map[string]entry)
	}

	switch snap.Status {
	case store.StatusCorrupt:
		logger.Debug("effect catalog unreadable, starting empty",
			logging.String(logging.FieldEventType, "catalog_store_corrupt"),
			logging.String(logging.FieldStorePath, path),
			logging.Error(snap.Err))
	case store.StatusValid:
		logger.Debug("loaded effect catalog",
			logging.String(logging.FieldStorePath, path),
			logging.Int("entry_count", len(c.entries)))
	}
	return c
}

// decode accepts a JSON array; items that are not objects or have no id are
// skipped. A repeated id keeps its first item.
func decode(data []byte) (map[string]entry, error) {
	root, err := jsontree.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if root.Kind != jsontree.KindArray {
		return nil, fmt.Errorf("effect catalog is a JSON %s, want array", root.Kind)
	}
	entries := make(map[string]entry, len(root.Items))
	for _, item := range root.Items {
		if item.Kind != jsontree.KindObject {
			continue
		}
		id := item.Field("id")
		if id == "" {
			continue
		}
		if _, exists := entries[id]; exists {
			continue
		}
		entries[id] = entry{
			record: Record{
				ID:           id,
				Name:         item.LiteralField("name"),
				Path:         item.LiteralField("path"),
				CategoryID:   item.LiteralField("category_id"),
				CategoryName: item.LiteralField("category_name"),
				Type:         item.LiteralField("type"),
			},
			raw: item,
		}
	}
	return entries, nil
}

// Path returns the backing file.
func (c *Catalog) Path() string { return c.path }

// Status reports how the persisted file looked when it was opened.
func (c *Catalog) Status() store.Status { return c.status }

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Lookup returns the record stored for id.
func (c *Catalog) Lookup(id string) (Record, bool) {
	e, ok := c.entries[strings.TrimSpace(id)]
	return e.record, ok
}

// Merge adds records whose identifier is not yet present. Existing entries
// are never replaced and repeated identifiers are not counted.
func (c *Catalog) Merge(records iter.Seq[Record]) Stats {
	var stats Stats
	for record := range records {
		if record.ID == "" {
			continue
		}
		if _, exists := c.entries[record.ID]; exists {
			continue
		}
		c.entries[record.ID] = entry{record: record}
		stats.Added++
	}
	stats.Total = len(c.entries)
	c.logger.Debug("merged effects",
		logging.Int("added", stats.Added),
		logging.Int("entry_count", stats.Total))
	return stats
}

// List returns all records sorted by identifier using byte-wise string order,
// so "10" sorts before "2".
func (c *Catalog) List() []Record {
	records := make([]Record, 0, len(c.entries))
	for _, id := range c.sortedIDs() {
		records = append(records, c.entries[id].record)
	}
	return records
}

func (c *Catalog) sortedIDs() []string {
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, strings.Compare)
	return ids
}

// Save persists the catalog as a JSON array sorted by identifier. Items
// loaded from disk are written back as they were read.
func (c *Catalog) Save() error {
	if c.path == "" {
		return errors.New("effect catalog has no path")
	}
	items := make([]any, 0, len(c.entries))
	for _, id := range c.sortedIDs() {
		items = append(items, c.entries[id].value())
	}
	return store.WriteJSON(c.path, items)
}
