package services

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/siteplan-view/internal/lib/memo"
	"github.com/magabrotheeeer/siteplan-view/internal/models"
	"github.com/magabrotheeeer/siteplan-view/internal/selectors/currentuser"
)

type StatesMock struct{ mock.Mock }

func (m *StatesMock) State() (*models.State, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.State), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func fixtureState() *models.State {
	return &models.State{
		CurrentUser: models.CurrentUser{
			ID:           42,
			Capabilities: models.Capabilities{7: {"edit_posts": true, "manage_options": false}},
			ActionLog: models.ActionLog{
				Permanent: []models.LogEntry{{Type: "A", Timestamp: 1}},
				Temporary: []models.LogEntry{{Type: "B", Timestamp: 2}},
			},
		},
		Users: models.Users{Items: map[int64]models.User{42: {ID: 42, Username: "alice", LocaleSlug: "de"}}},
	}
}

func TestCurrentUserService(t *testing.T) {
	states := new(StatesMock)
	states.On("State").Return(fixtureState(), nil)
	svc := NewCurrentUserService(states, currentuser.NewActionLog(nil), newNoopLogger())

	user, err := svc.CurrentUser()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	locale, ok, err := svc.Locale()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "de", locale)

	can, err := svc.Can(7, "edit_posts")
	require.NoError(t, err)
	assert.Equal(t, models.TristateTrue, can)

	can, err = svc.Can(7, "manage_options")
	require.NoError(t, err)
	assert.Equal(t, models.TristateFalse, can)

	can, err = svc.Can(8, "edit_posts")
	require.NoError(t, err)
	assert.Equal(t, models.TristateNull, can)

	first, err := svc.ActionLog()
	require.NoError(t, err)
	second, err := svc.ActionLog()
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.True(t, memo.Same(first, second))

	states.AssertExpectations(t)
}

func TestCurrentUserService_NoSnapshot(t *testing.T) {
	states := new(StatesMock)
	errNoState := errors.New("state snapshot is not loaded")
	states.On("State").Return(nil, errNoState)
	svc := NewCurrentUserService(states, nil, newNoopLogger())

	_, err := svc.CurrentUser()
	assert.ErrorIs(t, err, errNoState)

	_, _, err = svc.Locale()
	assert.ErrorIs(t, err, errNoState)

	can, err := svc.Can(1, "edit_posts")
	assert.ErrorIs(t, err, errNoState)
	assert.Equal(t, models.TristateNull, can)

	_, err = svc.ActionLog()
	assert.ErrorIs(t, err, errNoState)
}
