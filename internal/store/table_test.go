package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_AppendAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp.arrow")

	table, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, table.Append("notes.txt", "hello"))
	require.NoError(t, table.Append("trial.asc", "MSG\t1 start\r\nEFIX R 10 20\n"))
	assert.Equal(t, 2, table.Len())
	require.NoError(t, table.Close())

	rows, err := ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{Filename: "notes.txt", Contents: "hello"},
		{Filename: "trial.asc", Contents: "MSG\t1 start\r\nEFIX R 10 20\n"},
	}, rows)
}

func TestTable_ReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp.arrow")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Append("a.txt", "1"))
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []Row{{Filename: "a.txt", Contents: "1"}}, second.Rows())
	require.NoError(t, second.Append("b.txt", "2"))
	require.NoError(t, second.Close())

	rows, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a.txt", rows[0].Filename)
	assert.Equal(t, "b.txt", rows[1].Filename)
}

func TestTable_EmptySessionProducesReadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp.arrow")

	table, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, table.Close())

	rows, err := ReadAll(path)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTable_UnfinishedSessionLeavesOriginal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp.arrow")

	table, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, table.Append("kept.txt", "x"))
	require.NoError(t, table.Close())

	unfinished, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, unfinished.Append("lost.txt", "y"))

	rows, err := ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, []Row{{Filename: "kept.txt", Contents: "x"}}, rows)
	require.NoError(t, unfinished.Close())
}

func TestTable_AppendAfterClose(t *testing.T) {
	table, err := Open(filepath.Join(t.TempDir(), "temp.arrow"))
	require.NoError(t, err)
	require.NoError(t, table.Close())
	require.NoError(t, table.Close())

	assert.False(t, table.IsOpen())
	assert.ErrorIs(t, table.Append("a", "b"), ErrClosed)
}

func TestOpen_RejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp.arrow")
	require.NoError(t, os.WriteFile(path, []byte("not an arrow file"), 0644))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestReadAll_MissingFile(t *testing.T) {
	rows, err := ReadAll(filepath.Join(t.TempDir(), "missing.arrow"))
	require.NoError(t, err)
	assert.Nil(t, rows)
}
