package sqlstore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"tareas-api/internal/repository"
)

func TestClassify(t *testing.T) {
	plain := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "mysql duplicate", err: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, want: repository.ErrDuplicate},
		{name: "mysql foreign key", err: &mysql.MySQLError{Number: 1452}, want: repository.ErrForeignKey},
		{name: "postgres unique", err: &pgconn.PgError{Code: "23505"}, want: repository.ErrDuplicate},
		{name: "postgres foreign key", err: &pgconn.PgError{Code: "23503"}, want: repository.ErrForeignKey},
		{name: "wrapped mysql duplicate", err: fmt.Errorf("exec: %w", &mysql.MySQLError{Number: 1062}), want: repository.ErrDuplicate},
		{name: "sqlite message fallback", err: errors.New("constraint failed: UNIQUE constraint failed: usuarios.correo (2067)"), want: repository.ErrDuplicate},
		{name: "sqlite fk message fallback", err: errors.New("constraint failed: FOREIGN KEY constraint failed (787)"), want: repository.ErrForeignKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err, "driver error must stay in the chain")
		})
	}

	t.Run("other errors pass through", func(t *testing.T) {
		got := classify(plain)
		assert.Same(t, plain, got)
		assert.NotErrorIs(t, got, repository.ErrDuplicate)
		assert.NotErrorIs(t, got, repository.ErrForeignKey)
	})

	t.Run("mysql other code", func(t *testing.T) {
		got := classify(&mysql.MySQLError{Number: 1045})
		assert.NotErrorIs(t, got, repository.ErrDuplicate)
		assert.NotErrorIs(t, got, repository.ErrForeignKey)
	})

	assert.NoError(t, classify(nil))
}
