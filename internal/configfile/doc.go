// Package configfile manages a single JSON-backed configuration or state
// file. A ConfigFile resolves its path once at construction, against either
// the user's home directory (global) or the discovered project root (local),
// and exposes read, write, existence, stat, and delete operations over the
// resolved path.
package configfile
