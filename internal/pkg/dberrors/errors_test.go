package dberrors

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("scan: %w", sql.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("boom")))
}

func TestIsInputRejected(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"pg not null", &pgconn.PgError{Code: "23502"}, true},
		{"pg invalid text", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "22P02"}), true},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"sqlite not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, true},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, false},
		{"plain", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInputRejected(tt.err))
		})
	}
}
