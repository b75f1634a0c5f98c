package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestReadTextFileContent(t *testing.T) {
	dir := t.TempDir()
	gbk, err := simplifiedchinese.GBK.NewEncoder().String("一百\n")
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"utf8", []byte("123\n负数\n"), "123\n负数\n"},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, []byte("42")...), "42"},
		{"gbk", []byte(gbk), "一百\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".txt")
			require.NoError(t, os.WriteFile(path, tt.data, 0644))
			got, err := ReadTextFileContent(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadTextFileContentMissing(t *testing.T) {
	_, err := ReadTextFileContent(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "output.txt")
	require.NoError(t, WriteFileAtomic(path, "first"))
	require.NoError(t, WriteFileAtomic(path, "second"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must be cleaned up")
}

func TestNonEmptyLines(t *testing.T) {
	assert.Equal(t, []string{"1", "-20", "300"}, NonEmptyLines(" 1 \r\n\n-20\n   \n300"))
	assert.Nil(t, NonEmptyLines("\n \n"))
}

func TestIsDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	assert.True(t, IsDirectory(dir))
	assert.False(t, IsDirectory(file))
	assert.False(t, IsDirectory(filepath.Join(dir, "nope")))
}
