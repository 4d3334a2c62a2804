package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestShouldRetryWithLiteral(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "bind mismatch message", err: errors.New(`pq: bind message supplies 2 parameters, but prepared statement "" requires 1 (08P01)`), want: true},
		{name: "unnamed statement missing", err: errors.New("pq: unnamed prepared statement does not exist"), want: true},
		{name: "pq 26000 code", err: &pq.Error{Code: "26000", Message: "prepared statement missing"}, want: true},
		{name: "wrapped pq 08P01 code", err: fmt.Errorf("get team: %w", &pq.Error{Code: "08P01"}), want: true},
		{name: "unrelated relation error", err: errors.New(`pq: relation "teams" does not exist`), want: false},
		{name: "no rows", err: sql.ErrNoRows, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldRetryWithLiteral(tt.err); got != tt.want {
				t.Fatalf("shouldRetryWithLiteral(%v)=%v want=%v", tt.err, got, tt.want)
			}
		})
	}
}

func TestQuoteLiteral(t *testing.T) {
	if got := quoteLiteral("Peña O'Neill"); got != "'Peña O''Neill'" {
		t.Fatalf("unexpected quoted literal: %s", got)
	}
}

func TestNullStrings(t *testing.T) {
	if got := nullStringValue(sql.NullString{}); got != "" {
		t.Fatalf("expected empty string for null, got %q", got)
	}
	if got := toNullString("  "); got.Valid {
		t.Fatalf("expected blank string to be null")
	}
	if got := toNullString(" 07-10-2026 "); !got.Valid || got.String != "07-10-2026" {
		t.Fatalf("unexpected null string: %+v", got)
	}
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get matchday: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(errors.New("boom")) {
		t.Fatalf("expected unrelated error not to be not found")
	}
}
