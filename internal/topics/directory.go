package topics

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"blankquiz/internal/store"
)

// ErrNotFound is returned when a topic id is absent from the directory
var ErrNotFound = errors.New("topic not found")

// Directory exposes the seeded topic set, read-only
type Directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

// List returns all topics ordered by id
func (d *Directory) List() ([]store.Topic, error) {
	var topics []store.Topic
	if err := d.db.Order("id ASC").Find(&topics).Error; err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	return topics, nil
}

// Resolve returns the name for a topic id, or ErrNotFound
func (d *Directory) Resolve(topicID uint) (string, error) {
	var topic store.Topic
	err := d.db.First(&topic, topicID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve topic %d: %w", topicID, err)
	}
	return topic.Name, nil
}
