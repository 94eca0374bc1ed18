package models

// Row is one database row keyed by column name.
// It is rendered to clients as-is, so columns added by the database
// (for example in a reporting view) show up without code changes.
type Row map[string]any
