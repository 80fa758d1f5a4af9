// Package updater implements the version-check mechanism for the stash
// binary. It queries GitHub Releases for the latest version, compares it to
// the running build with semver, and keeps a daily-cached result in a global
// state file that powers the startup banner.
package updater
