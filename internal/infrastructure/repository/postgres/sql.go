package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// Transaction-mode poolers drop or reuse unnamed statements between
// connections. These fragments identify the failures that go away when
// the same query is sent with inlined literals.
var pooledStatementFailures = [][]string{
	{"bind message supplies", "prepared statement"},
	{"unnamed prepared statement does not exist"},
	{"prepared statement", "26000"},
}

// shouldRetryWithLiteral reports whether a parameterized read failed only
// because of statement handling in a connection pooler.
func shouldRetryWithLiteral(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && (pqErr.Code == "26000" || pqErr.Code == "08P01") {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, fragments := range pooledStatementFailures {
		if containsAll(msg, fragments) {
			return true
		}
	}
	return false
}

func containsAll(s string, parts []string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}

func quoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

func nullStringValue(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func toNullString(v string) sql.NullString {
	v = strings.TrimSpace(v)
	return sql.NullString{String: v, Valid: v != ""}
}
