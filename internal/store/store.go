package store

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Topic is a named category used to scope question generation and scoring.
// Rows are seeded once at startup and are read-only afterwards.
type Topic struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Attempt is one persisted answer submission. The full question record is
// denormalized onto the row because nothing else persists it. TopicID is
// trusted input: the ledger records whatever the client asserts, integrity
// checks happen at the directory boundary on the generate path.
type Attempt struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TopicID    uint      `gorm:"index;not null" json:"topic_id"`
	Sentence   string    `gorm:"type:text;not null" json:"sentence"`
	Choices    string    `gorm:"type:text" json:"choices"`
	Answer     string    `gorm:"not null" json:"answer"`
	Hint       string    `gorm:"type:text" json:"hint"`
	UserAnswer string    `gorm:"not null" json:"user_answer"`
	Correct    bool      `gorm:"not null" json:"correct"`
	CreatedAt  time.Time `json:"timestamp"`
}

func (Attempt) TableName() string {
	return "game_history"
}

// SeedTopics is the fixed topic set inserted on first initialization.
var SeedTopics = []string{"Science", "Technology", "History"}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open connects to the configured database
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Init migrates the schema and seeds the topic set. It is idempotent:
// re-running against an existing database neither fails nor duplicates rows.
func Init(db *gorm.DB) error {
	if err := db.AutoMigrate(&Topic{}, &Attempt{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	var count int64
	if err := db.Model(&Topic{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count topics: %w", err)
	}
	if count > 0 {
		return nil
	}

	topics := make([]Topic, 0, len(SeedTopics))
	for _, name := range SeedTopics {
		topics = append(topics, Topic{Name: name})
	}
	if err := db.Create(&topics).Error; err != nil {
		return fmt.Errorf("failed to seed topics: %w", err)
	}
	return nil
}
