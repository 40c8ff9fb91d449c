package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"sportfy/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema and, on PostgreSQL, installs the overlap
// exclusion constraint that backstops the transactional conflict check:
// two committed non-cancelled bookings can never occupy overlapping time
// on one court, no matter how requests interleave.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Court{},
		&domain.Booking{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
			return err
		}
		if err := db.Exec("ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_no_overlap").Error; err != nil {
			return err
		}
		return db.Exec(`
ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
EXCLUDE USING gist (
    court_id WITH =,
    tstzrange(start_time, end_time, '[)') WITH &&
) WHERE (status NOT IN ('CANCELLED', 'EXPIRED'))
`).Error
	}
	return nil
}
