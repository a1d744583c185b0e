// Package doctor runs environment diagnostics for the "doctor" command: git
// availability and version, whether the target root is a git work tree with a
// usable remote, and whether the config file passes schema validation.
package doctor
