// Package soliddocs provides a CLI tool for searching SolidJS documentation.
// It fetches the official solidjs/solid-docs repository through the external
// gitingest tool, caches the consolidated text locally for an hour, and
// prints the file sections matching a topic.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, gitingest/).
package soliddocs
