// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// IcpTest is the predicate function for icptest builders.
type IcpTest func(*sql.Selector)

// ParseJob is the predicate function for parsejob builders.
type ParseJob func(*sql.Selector)

// ReportFile is the predicate function for reportfile builders.
type ReportFile func(*sql.Selector)

// Tank is the predicate function for tank builders.
type Tank func(*sql.Selector)
