package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestRecordAndRecentEntries(t *testing.T) {
	j := openTestJournal(t)

	_, err := j.Record("git add a.txt", []string{"git", "add"}, []string{"a.txt"}, OutcomeExecuted)
	require.NoError(t, err)
	_, err = j.Record("nope", nil, nil, OutcomeNotFound)
	require.NoError(t, err)
	_, err = j.Record("git", []string{"git"}, nil, OutcomeNoAction)
	require.NoError(t, err)

	entries, err := j.RecentEntries(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "git add a.txt", entries[0].Line)
	assert.Equal(t, "git add", entries[0].Command)
	assert.Equal(t, "a.txt", entries[0].Params)
	assert.Equal(t, OutcomeExecuted, entries[0].Outcome)
	assert.Equal(t, OutcomeNotFound, entries[1].Outcome)
	assert.Equal(t, "git", entries[2].Line)
}

func TestRecentEntriesLimit(t *testing.T) {
	j := openTestJournal(t)

	for _, line := range []string{"a", "b", "c"} {
		_, err := j.Record(line, []string{line}, nil, OutcomeExecuted)
		require.NoError(t, err)
	}

	entries, err := j.RecentEntries(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].Line)
	assert.Equal(t, "c", entries[1].Line)
}

func TestTopCommands(t *testing.T) {
	j := openTestJournal(t)

	record := func(command []string, outcome Outcome) {
		_, err := j.Record("", command, nil, outcome)
		require.NoError(t, err)
	}
	record([]string{"docker", "run"}, OutcomeExecuted)
	record([]string{"git", "add"}, OutcomeExecuted)
	record([]string{"git", "add"}, OutcomeExecuted)
	record([]string{"git"}, OutcomeNoAction)
	record([]string{"git"}, OutcomeNoAction)
	record([]string{"git"}, OutcomeNoAction)
	record([]string{"git", "commit"}, OutcomeExecuted)

	stats, err := j.TopCommands(2)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "git add", stats[0].Command)
	assert.Equal(t, int64(2), stats[0].Count)
	assert.Equal(t, "docker run", stats[1].Command)
	assert.Equal(t, int64(1), stats[1].Count)
}

func TestReset(t *testing.T) {
	j := openTestJournal(t)

	_, err := j.Record("a", []string{"a"}, nil, OutcomeExecuted)
	require.NoError(t, err)
	require.NoError(t, j.Reset())

	entries, err := j.RecentEntries(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := Open(path)
	require.NoError(t, err)
	_, err = j.Record("a", []string{"a"}, nil, OutcomeExecuted)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	j, err = Open(path)
	require.NoError(t, err)
	defer j.Close()

	entries, err := j.RecentEntries(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Line)
}
