package dao

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Competition{},
		&Team{},
		&TeamMember{},
		&TeamInvite{},
		&Registration{},
		&Submission{},
		&Notification{},
		&ExternalParticipation{},
	)
}

// DropTables removes every table in the public schema. Only used to reset a
// scratch database between integration runs.
func DropTables(db *gorm.DB) error {
	db.Exec("SET CONSTRAINTS ALL DEFERRED;")

	var tableNames []string
	if err := db.Table("information_schema.tables").
		Where("table_schema = ?", "public").
		Pluck("table_name", &tableNames).Error; err != nil {
		return err
	}

	for _, tableName := range tableNames {
		if err := db.Exec("DROP TABLE IF EXISTS " + tableName + " CASCADE").Error; err != nil {
			return err
		}
	}

	db.Exec("SET CONSTRAINTS ALL IMMEDIATE;")

	return nil
}

// isUniqueViolation reports whether err is a postgres unique violation on the
// named constraint or index.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}

	return pgErr.ConstraintName == constraint || strings.Contains(pgErr.Message, `"`+constraint+`"`)
}
