package testserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/curriculum/internal/mcp"
	"github.com/rpggio/curriculum/internal/testserver"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "correct-horse"
)

func callTool[T any](t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) T {
	t.Helper()

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.False(t, res.IsError, "tool %s returned an error", name)

	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestHealthIsOpen(t *testing.T) {
	ts := testserver.New(t, adminEmail, adminPassword)

	resp, err := http.Get(ts.Server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthentication(t *testing.T) {
	ts := testserver.New(t, adminEmail, adminPassword)
	body := `{"jsonrpc":"2.0","method":"tools/call","params":{"name":"list_journeys"},"id":1}`

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/mcp", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err = http.NewRequest(http.MethodPost, ts.Server.URL+"/mcp", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(adminEmail, "wrong-password")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBrowseSeededCurriculum(t *testing.T) {
	ts := testserver.New(t, adminEmail, adminPassword)
	session := ts.Connect(t)

	list := callTool[mcp.ListJourneysResponse](t, session, "list_journeys", map[string]any{})
	require.Len(t, list.Journeys, 2)
	require.Equal(t, "beginner-english-journey", list.Journeys[0].Slug)
	require.Equal(t, 6, list.Journeys[0].LessonCount)

	published := callTool[mcp.ListJourneysResponse](t, session, "list_journeys", map[string]any{"published_only": true})
	require.Len(t, published.Journeys, 1)

	level := callTool[mcp.ResolveLevelResponse](t, session, "resolve_level", map[string]any{
		"slug":     "intermediate-english-journey",
		"level_id": 2,
	})
	require.True(t, level.FellBack)
	require.NotNil(t, level.Level)
	require.Equal(t, int64(19), level.Level.ID)

	activity := callTool[mcp.ActivityResponse](t, session, "get_activity", map[string]any{"id": 26})
	require.Equal(t, "READING", activity.Type)
	require.False(t, activity.LiveForLearners)
	require.True(t, activity.Flags.Activity)
	require.False(t, activity.Flags.Level)
}
