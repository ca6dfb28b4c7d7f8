// Package journal records every dispatched command line in a sqlite
// database for usage statistics. It is never used to restore history.
package journal

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Outcome is what happened to a dispatched line.
type Outcome string

const (
	// OutcomeExecuted means an action ran.
	OutcomeExecuted Outcome = "executed"
	// OutcomeNoAction means the path resolved to a node without an action.
	OutcomeNoAction Outcome = "no_action"
	// OutcomeNotFound means the path did not resolve.
	OutcomeNotFound Outcome = "not_found"
)

type Journal struct {
	db *gorm.DB
}

type Entry struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`

	Line    string
	Command string `gorm:"index"`
	Params  string
	Outcome Outcome
}

// CommandStat summarises how often a command ran.
type CommandStat struct {
	Command  string
	Count    int64
	LastUsed time.Time
}

// Open opens (creating if needed) the journal database at path.
func Open(path string) (*Journal, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal schema: %w", err)
	}

	return &Journal{
		db: db,
	}, nil
}

// Record stores one dispatched line. command is the resolved command path
// and params the tokens passed to it.
func (j *Journal) Record(line string, command []string, params []string, outcome Outcome) (*Entry, error) {
	entry := Entry{
		Line:    line,
		Command: strings.Join(command, " "),
		Params:  strings.Join(params, " "),
		Outcome: outcome,
	}

	result := j.db.Create(&entry)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entry, nil
}

// RecentEntries returns the last limit entries, oldest first.
func (j *Journal) RecentEntries(limit int) ([]Entry, error) {
	var entries []Entry
	result := j.db.Order("created_at desc").Order("id desc").Limit(limit).Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	slices.Reverse(entries)
	return entries, nil
}

// TopCommands returns the most executed commands, most used first.
func (j *Journal) TopCommands(limit int) ([]CommandStat, error) {
	var rows []struct {
		Command  string
		Count    int64
		LastUsed string
	}
	result := j.db.Model(&Entry{}).
		Select("command, count(*) as count, max(created_at) as last_used").
		Where("outcome = ?", OutcomeExecuted).
		Group("command").
		Order("count desc").
		Order("command").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	stats := make([]CommandStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, CommandStat{
			Command:  row.Command,
			Count:    row.Count,
			LastUsed: parseTimestamp(row.LastUsed),
		})
	}
	return stats, nil
}

// parseTimestamp reads the text form sqlite returns for max(created_at).
func parseTimestamp(value string) time.Time {
	for _, layout := range []string{
		"2006-01-02 15:04:05.999999999-07:00",
		time.RFC3339Nano,
		"2006-01-02 15:04:05",
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Reset deletes every entry.
func (j *Journal) Reset() error {
	result := j.db.Exec("DELETE FROM entries")
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Close releases the database.
func (j *Journal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
