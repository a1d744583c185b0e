// Package config manages user-level settings stored at ~/.leetadd/config.yaml.
// Settings choose the target root, solution language, git remote and branch,
// commit message template and LeetCode lookup endpoint. The file is validated
// against an embedded JSON Schema before it is written.
package config
