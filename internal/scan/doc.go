// Package scan wires the extraction pipelines: load a draft, walk and
// normalize its records, then merge them into the persisted store.
//
// Each run follows the same order. The draft is loaded first, so a missing
// or malformed draft aborts before any store is read or written. The store
// lock (when enabled) is then held across load, merge and save, and the run
// is optionally recorded in the run log. A failure to record history is
// logged and never fails the run.
package scan
