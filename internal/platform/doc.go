// Package platform provides cross-platform filesystem helpers. On Unix
// systems permission changes use chmod directly; on Windows they are no-ops
// because Windows does not support Unix-style permission bits.
package platform
