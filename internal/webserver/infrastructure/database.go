package infrastructure

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database pointed by dsn and migrates the schema. PostgreSQL
// URLs (postgres:// or postgresql://) use the PostgreSQL driver, anything else
// is treated as the path of a SQLite file.
func Connect(dsn string) *gorm.DB {
	cfg := &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var (
		db  *gorm.DB
		err error
	)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		db, err = openSQLite(dsn, cfg)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&model.Host{},
		&model.EventLineup{},
		&model.Event{},
		&model.Guest{},
		&model.Invitation{},
		&model.Response{},
		&model.EmailLog{},
	); err != nil {
		log.Fatal(err)
	}
	return db
}

func openSQLite(path string, cfg *gorm.Config) (*gorm.DB, error) {
	inMemory := strings.Contains(path, ":memory:")
	if _, err := os.Stat(path); os.IsNotExist(err) && !inMemory {
		if _, err = os.Create(path); err != nil {
			return nil, err
		}
		log.Printf("Created database at %s\n", path)
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)), cfg)
	if err != nil {
		return nil, err
	}

	// Every connection to an in-memory database sees a different, empty one
	if inMemory {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}
