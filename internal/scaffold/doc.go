// Package scaffold generates solution files for solved problems from embedded
// templates and records them in the per-difficulty index. It powers the root
// "leetadd <difficulty> <name> <url>" command. Rendering is a pure function of
// the problem entry; only Scaffolder touches the file system.
package scaffold
