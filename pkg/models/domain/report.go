package domain

import "time"

// Report is a renderable view of a snapshot, consumed by the terminal
// reporters. Aggregators return typed snapshots; adapters flatten them
// into sections for display.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Sections    []ReportSection
	TotalAmount float64
	Currency    string
}

// ReportSection groups related figures under one heading.
type ReportSection struct {
	Title   string
	Details []ReportDetail
}

// ReportDetail is a single labeled figure within a section.
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
