// Package database provides a small positional-placeholder query builder for
// list endpoints with optional filters.
package database

import (
	"fmt"
	"strconv"
	"strings"
)

// ConditionType is the SQL comparison operator of a Condition.
type ConditionType string

const (
	Equal              ConditionType = "="
	NotEqual           ConditionType = "!="
	GreaterThan        ConditionType = ">"
	LessThan           ConditionType = "<"
	LessThanOrEqual    ConditionType = "<="
	GreaterThanOrEqual ConditionType = ">="
	Like               ConditionType = "LIKE"
	ILike              ConditionType = "ILIKE"
)

// Condition is one WHERE clause term.
type Condition struct {
	Field string
	Type  ConditionType
	Value any
}

// WhereCond builds a Condition for a field comparison.
func WhereCond(field string, condType ConditionType, value any) Condition {
	return Condition{Field: field, Type: condType, Value: value}
}

// ListQueryOptions describes a filtered, ordered, paginated SELECT.
type ListQueryOptions struct {
	Table      string
	Columns    []string
	CountOnly  bool
	Conditions []Condition
	OrderBy    string
	OrderDir   string
	Limit      int
	Offset     int
}

// BuildListQuery renders opts into SQL with positional placeholders and the
// matching argument slice. Field and order identifiers come from call sites,
// never from user input.
func BuildListQuery(opts ListQueryOptions) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, len(opts.Conditions)+2)

	sb.WriteString("SELECT ")
	if opts.CountOnly {
		sb.WriteString("COUNT(*)")
	} else if len(opts.Columns) > 0 {
		sb.WriteString(strings.Join(opts.Columns, ", "))
	} else {
		sb.WriteString("*")
	}
	sb.WriteString(" FROM ")
	sb.WriteString(opts.Table)

	if len(opts.Conditions) > 0 {
		sb.WriteString(" WHERE ")
		parts := make([]string, 0, len(opts.Conditions))
		for _, cond := range opts.Conditions {
			args = append(args, cond.Value)
			parts = append(parts, fmt.Sprintf("%s %s $%d", cond.Field, cond.Type, len(args)))
		}
		sb.WriteString(strings.Join(parts, " AND "))
	}

	if !opts.CountOnly {
		if opts.OrderBy != "" {
			sb.WriteString(" ORDER BY ")
			sb.WriteString(opts.OrderBy)
			dir := strings.ToUpper(opts.OrderDir)
			if dir == "ASC" || dir == "DESC" {
				sb.WriteString(" " + dir)
			}
		}
		if opts.Limit > 0 {
			args = append(args, opts.Limit)
			sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
		}
		if opts.Offset > 0 {
			args = append(args, opts.Offset)
			sb.WriteString(" OFFSET $" + strconv.Itoa(len(args)))
		}
	}

	return sb.String(), args
}
