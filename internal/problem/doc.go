// Package problem holds the domain values shared by the scaffolder, the index
// and the publisher: difficulty tiers, solved-problem entries and the names
// derived from a free-text problem title.
package problem
