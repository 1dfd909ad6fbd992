package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/minigrep/internal/cache"
	"github.com/usestring/minigrep/internal/config"
	"github.com/usestring/minigrep/internal/mcp/tools"
)

func newTestSession(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	files, err := cache.NewFileCache(4)
	require.NoError(t, err)

	srv, err := NewServer(&tools.Deps{Config: &config.Config{}, Files: files}, WithBuiltinTools())
	require.NoError(t, err)

	ctx := context.Background()
	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := srv.MCPServer().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func decodeOutput(t *testing.T, res *sdkmcp.CallToolResult) tools.SearchOutput {
	t.Helper()
	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)

	var out tools.SearchOutput
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestNewServer_requiresDeps(t *testing.T) {
	_, err := NewServer(nil)
	assert.Error(t, err)

	_, err = NewServer(&tools.Deps{})
	assert.Error(t, err)
}

func TestServer_listTools(t *testing.T) {
	session := newTestSession(t)

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"search_file", "search_text"}, names)
}

func TestServer_searchFile(t *testing.T) {
	session := newTestSession(t)
	path := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte("I'm nobody! Who are you?\nAre you nobody, too?\nThen there's a pair of us\n"), 0o644))

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "search_file",
		Arguments: map[string]any{"query": "nobody", "filename": path},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	out := decodeOutput(t, res)
	assert.Equal(t, 2, out.Count)
	require.Len(t, out.Matches, 2)
	assert.Equal(t, 1, out.Matches[0].Line)
	assert.Equal(t, "Are you nobody, too?", out.Matches[1].Text)
}

func TestServer_searchFileMissing(t *testing.T) {
	session := newTestSession(t)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "search_file",
		Arguments: map[string]any{"query": "x", "filename": filepath.Join(t.TempDir(), "missing.txt")},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestServer_searchTextNoMatches(t *testing.T) {
	session := newTestSession(t)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "search_text",
		Arguments: map[string]any{"query": "zzz", "text": "alpha\nbeta"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	out := decodeOutput(t, res)
	assert.Zero(t, out.Count)
	assert.Empty(t, out.Matches)
}

func TestServer_readFileResource(t *testing.T) {
	session := newTestSession(t)
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two\n"), 0o644))

	res, err := session.ReadResource(context.Background(), &sdkmcp.ReadResourceParams{URI: fileURIPrefix + path})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "line one\nline two\n", res.Contents[0].Text)
}

func TestParseFileURI(t *testing.T) {
	path, err := parseFileURI("minigrep://file//tmp/a%20b.txt")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a b.txt", path)

	_, err = parseFileURI("minigrep://file/")
	assert.Error(t, err)

	_, err = parseFileURI("file:///tmp/a.txt")
	assert.Error(t, err)
}
