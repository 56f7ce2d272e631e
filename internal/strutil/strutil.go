// Package strutil provides SQL naming helpers for derived object names
// (indexes, constraints, triggers) used throughout the sqlforge codebase.
package strutil

import "strings"

// IndexName derives a secondary index name: idx_<table>_<col1>_<col2>...
func IndexName(table string, cols ...string) string {
	return "idx_" + table + suffix(cols)
}

// UniqueIndexName derives a unique index name: uniq_<table>_<cols...>.
func UniqueIndexName(table string, cols ...string) string {
	return "uniq_" + table + suffix(cols)
}

// TriggerName derives a trigger name: trg_<table>_<event>.
func TriggerName(table, event string) string {
	return "trg_" + table + "_" + event
}

func suffix(cols []string) string {
	if len(cols) == 0 {
		return ""
	}
	return "_" + strings.Join(cols, "_")
}
