package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Get(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "alice", "a@example.com", "x", "Alice", "Rossi", now, now))
	mock.ExpectQuery("SELECT \\* FROM `user_profiles` WHERE user_id = \\?").
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow(1, 1, "2500.00", "EUR", true, now, now))

	p, err := NewProfileService(db).Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	require.NotNil(t, p.Profile)
	assert.True(t, p.Profile.OnboardingCompleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileService_Get_NoProfile(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "alice", "a@example.com", "x", "", "", now, now))
	mock.ExpectQuery("SELECT \\* FROM `user_profiles`").
		WillReturnRows(sqlmock.NewRows(profileColumns))

	p, err := NewProfileService(db).Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, p.Profile)
}

func TestProfileService_Get_UnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `users`").WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := NewProfileService(db).Get(context.Background(), 9)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}
