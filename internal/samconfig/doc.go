// Package samconfig edits the per-deployment samconfig TOML files kept in the
// repository.
//
// A file holds one top-level table per stage plus the reserved "version" and
// "atlantis" keys. [File.RemoveStage] drops a stage and [File.StageCount]
// reports how many remain.
package samconfig
