// Package leetcode looks up problem metadata from LeetCode's public GraphQL
// endpoint. It backs the read-only "lookup" command and never writes files.
package leetcode
