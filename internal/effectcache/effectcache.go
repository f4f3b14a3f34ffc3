package effectcache

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"draftscan/internal/jsontree"
	"draftscan/internal/logging"
	"draftscan/internal/store"
)

const (
	// ConfigFileName is the per-package metadata file.
	ConfigFileName = "config.json"
	// UnknownType is used when a config names no link type.
	UnknownType = "unknown"

	partialSuffix = "_tmp"
)

// ErrNotFound reports a missing cache directory.
var ErrNotFound = errors.New("effect cache not found")

// Entry is one cached effect package.
type Entry struct {
	ID   string `json:"id" yaml:"id"`
	Hash string `json:"hash" yaml:"hash"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	Path string `json:"path" yaml:"path"`
}

// Group collects entries sharing a type.
type Group struct {
	Type    string  `json:"type"`
	Entries []Entry `json:"entries"`
}

// Scan walks dir and returns its entries ordered by id then hash.
func Scan(dir string, logger *slog.Logger) ([]Entry, error) {
	logger = logging.NewComponentLogger(logger, "effectcache")

	ids, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("read effect cache %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		idPath := filepath.Join(dir, id.Name())
		if !isDir(idPath) {
			continue
		}
		hashes, err := os.ReadDir(idPath)
		if err != nil {
			logger.Debug("skipping unreadable effect folder",
				logging.String("effect_path", idPath),
				logging.Error(err))
			continue
		}
		for _, hash := range hashes {
			if strings.HasSuffix(hash.Name(), partialSuffix) {
				continue
			}
			hashPath := filepath.Join(idPath, hash.Name())
			if !isDir(hashPath) {
				continue
			}
			entry, err := readEntry(hashPath)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					logger.Debug("skipping effect config",
						logging.String("effect_path", hashPath),
						logging.Error(err))
				}
				continue
			}
			entry.ID = id.Name()
			entry.Hash = hash.Name()
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func readEntry(hashPath string) (Entry, error) {
	file, err := os.Open(filepath.Join(hashPath, ConfigFileName))
	if err != nil {
		return Entry{}, err
	}
	defer file.Close()

	cfg, err := jsontree.Decode(bufio.NewReader(file))
	if err != nil {
		return Entry{}, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}
	if cfg.Kind != jsontree.KindObject {
		return Entry{}, fmt.Errorf("%s is a JSON %s, want object", ConfigFileName, cfg.Kind)
	}

	entryType := UnknownType
	effect, _ := cfg.Get("effect")
	if links, ok := effect.List("Link"); ok && len(links) > 0 {
		if linkType := links[0].Field("type"); linkType != "" {
			entryType = linkType
		}
	}
	return Entry{
		Name: cfg.Field("name"),
		Type: entryType,
		Path: hashPath,
	}, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// GroupByType groups entries by Type in order of first appearance.
func GroupByType(entries []Entry) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, entry := range entries {
		i, ok := index[entry.Type]
		if !ok {
			i = len(groups)
			index[entry.Type] = i
			groups = append(groups, Group{Type: entry.Type})
		}
		groups[i].Entries = append(groups[i].Entries, entry)
	}
	return groups
}

// Save writes entries to path as a JSON array, replacing any previous
// listing.
func Save(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	return store.WriteJSON(path, entries)
}
