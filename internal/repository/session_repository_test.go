package repository

import (
	"testing"
	"time"

	"echoprep/internal/model"
	"echoprep/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_RecordSessionFlipsCompleted(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewSessionRepository(db)
	interview := seedInterview(t, db, 1, false)

	session := &model.InterviewSession{
		InterviewID: interview.ID,
		Transcript:  "Q: one\nA: answer",
		Feedback:    `{"overall_score":70}`,
		CompletedAt: time.Now(),
	}
	require.NoError(t, repo.RecordSession(session))
	assert.NotZero(t, session.ID)

	var got model.Interview
	require.NoError(t, db.First(&got, interview.ID).Error)
	assert.True(t, got.Completed, "session insert and completed flag move together")
}

func TestSessionRepository_RecordSessionRollsBackTogether(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewSessionRepository(db)
	interview := seedInterview(t, db, 1, false)

	// Transcript is NOT NULL at the insert; a failing insert must leave the
	// completed flag untouched.
	bad := &model.InterviewSession{InterviewID: interview.ID, CompletedAt: time.Now()}
	require.NoError(t, db.Migrator().DropTable(&model.InterviewSession{}))
	assert.Error(t, repo.RecordSession(bad))

	var got model.Interview
	require.NoError(t, db.First(&got, interview.ID).Error)
	assert.False(t, got.Completed)
}

func TestSessionRepository_FindLatestByInterview(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewSessionRepository(db)
	interview := seedInterview(t, db, 1, false)

	first := &model.InterviewSession{
		InterviewID: interview.ID,
		Transcript:  "first attempt",
		Feedback:    "{}",
		CompletedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.RecordSession(first))
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)

	second := &model.InterviewSession{
		InterviewID: interview.ID,
		Transcript:  "retake",
		Feedback:    "{}",
		CompletedAt: time.Now(),
	}
	require.NoError(t, repo.RecordSession(second))

	latest, err := repo.FindLatestByInterview(interview.ID)
	require.NoError(t, err)
	assert.Equal(t, "retake", latest.Transcript)
}

func TestSessionRepository_FindLatestNotFound(t *testing.T) {
	repo := NewSessionRepository(testhelpers.SetupTestDB(t))

	_, err := repo.FindLatestByInterview(123)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
