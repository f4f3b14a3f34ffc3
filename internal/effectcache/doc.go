// Package effectcache lists the effect packages the editor has downloaded.
//
// The cache directory holds one folder per effect id, each with one or more
// content-hash folders containing a config.json. Scan reads every config,
// takes its display name and the type of its first link, and returns one
// Entry per hash folder. Folders still being downloaded (suffix "_tmp") and
// configs that cannot be parsed are skipped. Unlike the merge stores, the
// listing is rebuilt from scratch on every scan.
package effectcache
