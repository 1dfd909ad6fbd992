package runner

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/minigrep/internal/config"
	"github.com/usestring/minigrep/internal/textfile"
)

const poem = `I'm nobody! Who are you?
Are you nobody, too?
Then there's a pair of us - don't tell!
They'd banish us, you know.

How dreary to be somebody!
How public, like a frog
To tell your name the livelong day
To an admiring bog!
`

func writePoem(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte(poem), 0o644))
	return path
}

func TestRun(t *testing.T) {
	path := writePoem(t)

	tests := []struct {
		name string
		cfg  config.SearchConfig
		want string
	}{
		{
			name: "case sensitive",
			cfg:  config.SearchConfig{Query: "to", Filename: path},
			want: "Are you nobody, too?\nHow dreary to be somebody!\n",
		},
		{
			name: "case insensitive",
			cfg:  config.SearchConfig{Query: "to", Filename: path, CaseInsensitive: true},
			want: "Are you nobody, too?\nHow dreary to be somebody!\nTo tell your name the livelong day\nTo an admiring bog!\n",
		},
		{
			name: "no matches",
			cfg:  config.SearchConfig{Query: "monomorphization", Filename: path},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Run(context.Background(), &tt.cfg, ReadFile, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRun_missingFile(t *testing.T) {
	var out bytes.Buffer
	cfg := &config.SearchConfig{Query: "to", Filename: filepath.Join(t.TempDir(), "nope.txt")}

	err := Run(context.Background(), cfg, ReadFile, &out)

	var fileErr *textfile.FileError
	require.ErrorAs(t, err, &fileErr)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, out.String())
}

func TestRun_customLoader(t *testing.T) {
	var gotPath string
	load := func(_ context.Context, path string) (string, error) {
		gotPath = path
		return "alpha\r\nbeta\r\nALPHA", nil
	}

	var out bytes.Buffer
	err := Run(context.Background(), &config.SearchConfig{Query: "alpha", Filename: "in-memory", CaseInsensitive: true}, load, &out)
	require.NoError(t, err)
	assert.Equal(t, "in-memory", gotPath)
	assert.Equal(t, "alpha\nALPHA\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRun_writeError(t *testing.T) {
	path := writePoem(t)
	err := Run(context.Background(), &config.SearchConfig{Query: "to", Filename: path}, ReadFile, failingWriter{})
	assert.ErrorContains(t, err, "closed pipe")
}
