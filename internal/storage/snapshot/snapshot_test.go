package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/siteplan-view/internal/lib/memo"
	"github.com/magabrotheeeer/siteplan-view/internal/models"
)

const stateYAML = `
currentUser:
  id: 73705554
  capabilities:
    2916284:
      manage_options: false
      edit_posts: true
  actionLog:
    permanent:
      - type: GUIDED_TOUR_UPDATE
        timestamp: 1470000000000
    temporary:
      - type: ROUTE_SET
        timestamp: 1470000001000
        payload:
          path: /stats
users:
  items:
    73705554:
      ID: 73705554
      username: testonesite2014
      localeSlug: fr
`

const stateJSON = `{
  "currentUser": {
    "id": 73705554,
    "capabilities": {"2916284": {"manage_options": false, "edit_posts": true}},
    "actionLog": {
      "permanent": [{"type": "GUIDED_TOUR_UPDATE", "timestamp": 1470000000000}],
      "temporary": [{"type": "ROUTE_SET", "timestamp": 1470000001000, "payload": {"path": "/stats"}}]
    }
  },
  "users": {"items": {"73705554": {"ID": 73705554, "username": "testonesite2014", "localeSlug": "fr"}}}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func assertFixtureState(t *testing.T, state *models.State) {
	t.Helper()
	assert.Equal(t, int64(73705554), state.CurrentUser.ID)
	assert.Equal(t, map[string]bool{"manage_options": false, "edit_posts": true}, state.CurrentUser.Capabilities[2916284])
	require.Len(t, state.CurrentUser.ActionLog.Permanent, 1)
	require.Len(t, state.CurrentUser.ActionLog.Temporary, 1)
	assert.Equal(t, "ROUTE_SET", state.CurrentUser.ActionLog.Temporary[0].Type)
	assert.Equal(t, "/stats", state.CurrentUser.ActionLog.Temporary[0].Payload["path"])
	assert.Equal(t, "fr", state.Users.Items[73705554].LocaleSlug)
}

func TestDecode(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		state, err := Decode(strings.NewReader(stateYAML), FormatYAML)
		require.NoError(t, err)
		assertFixtureState(t, state)
	})

	t.Run("json", func(t *testing.T) {
		state, err := Decode(strings.NewReader(stateJSON), FormatJSON)
		require.NoError(t, err)
		assertFixtureState(t, state)
	})

	t.Run("empty input", func(t *testing.T) {
		state, err := Decode(strings.NewReader(""), FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, int64(0), state.CurrentUser.ID)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Decode(strings.NewReader("currentUser: [1, 2"), FormatYAML)
		assert.Error(t, err)
	})
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatOf("/tmp/state.JSON"))
	assert.Equal(t, FormatYAML, FormatOf("/tmp/state.yaml"))
	assert.Equal(t, FormatYAML, FormatOf("/tmp/state"))
}

func TestStore_NewAndReload(t *testing.T) {
	path := writeFile(t, "state.yaml", stateYAML)

	store, err := New(path)
	require.NoError(t, err)

	first, err := store.State()
	require.NoError(t, err)
	assertFixtureState(t, first)

	require.NoError(t, store.Reload())
	second, err := store.State()
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.False(t, memo.Same(first.CurrentUser.ActionLog.Temporary, second.CurrentUser.ActionLog.Temporary))
}

func TestStore_ReloadErrorKeepsPreviousSnapshot(t *testing.T) {
	path := writeFile(t, "state.yaml", stateYAML)
	store, err := New(path)
	require.NoError(t, err)
	before, _ := store.State()

	require.NoError(t, os.WriteFile(path, []byte("currentUser: [1, 2"), 0o600))
	assert.Error(t, store.Reload())

	after, err := store.State()
	require.NoError(t, err)
	assert.Same(t, before, after)
}

func TestStore_Errors(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	empty := &Store{}
	_, err = empty.State()
	assert.ErrorIs(t, err, ErrNoSnapshot)
	assert.Error(t, empty.Reload())
}

func TestNewFromStateAndReplace(t *testing.T) {
	a := &models.State{CurrentUser: models.CurrentUser{ID: 1}}
	b := &models.State{CurrentUser: models.CurrentUser{ID: 2}}

	store := NewFromState(a)
	got, err := store.State()
	require.NoError(t, err)
	assert.Same(t, a, got)

	store.Replace(b)
	got, err = store.State()
	require.NoError(t, err)
	assert.Same(t, b, got)
}
