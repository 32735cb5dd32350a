package database

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Migrator func(db *gorm.DB) error

type Configuration struct {
	migrations []Migrator
}

type ConfigurationModifier func(c *Configuration)

func SetMigrations(migrations ...Migrator) ConfigurationModifier {
	return func(c *Configuration) {
		c.migrations = append(c.migrations, migrations...)
	}
}

// Connect opens the service database and applies the configured migrations.
// Connection parameters come from the environment.
func Connect(l logrus.FieldLogger, modifiers ...ConfigurationModifier) *gorm.DB {
	c := &Configuration{}
	for _, modifier := range modifiers {
		modifier(c)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		l.WithError(err).Fatalf("Unable to connect to database.")
	}

	for _, migrator := range c.migrations {
		if err = migrator(db); err != nil {
			l.WithError(err).Fatalf("Unable to migrate database.")
		}
	}
	return db
}
