// Package index maintains the per-difficulty README.md files that log every
// solved problem. Files are append-only: a header is written once, then one
// Markdown list item per recorded solution, duplicates included.
package index
