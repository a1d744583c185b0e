// Package publish stages, commits and pushes the working tree after a problem
// is scaffolded.
//
// Publisher is the capability the CLI depends on; Git implements it by
// shelling out to the git binary through a Runner, which tests replace.
// PushChanges drives the three steps in order and never stops early: every
// step runs even if the previous one failed, and each failure is collected in
// the returned Report for the caller to surface or ignore.
package publish
