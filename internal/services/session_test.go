package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreCreateAndGet(t *testing.T) {
	store := NewSessionStore()

	session := store.Create()
	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.False(t, session.HasCV)
	assert.False(t, session.HasJob)

	loaded, ok := store.Get(session.ID)
	require.True(t, ok)
	assert.Equal(t, session.ID, loaded.ID)
}

func TestSessionStoreGetUnknown(t *testing.T) {
	store := NewSessionStore()

	_, ok := store.Get(uuid.New())
	assert.False(t, ok)
}

func TestSessionStoreSetCVText(t *testing.T) {
	store := NewSessionStore()
	session := store.Create()

	require.NoError(t, store.SetCVText(session.ID, "John Smith, Engineer"))

	loaded, ok := store.Get(session.ID)
	require.True(t, ok)
	assert.True(t, loaded.HasCV)
	assert.Equal(t, "John Smith, Engineer", loaded.CVText)
	assert.False(t, loaded.HasJob)
}

func TestSessionStoreSetEmptyCVTextMarksPresent(t *testing.T) {
	store := NewSessionStore()
	session := store.Create()

	require.NoError(t, store.SetCVText(session.ID, ""))

	loaded, ok := store.Get(session.ID)
	require.True(t, ok)
	assert.True(t, loaded.HasCV)
	assert.Empty(t, loaded.CVText)
}

func TestSessionStoreSetJobText(t *testing.T) {
	store := NewSessionStore()
	session := store.Create()

	require.NoError(t, store.SetJobText(session.ID, "Backend Engineer Remote OK"))

	loaded, ok := store.Get(session.ID)
	require.True(t, ok)
	assert.True(t, loaded.HasJob)
	assert.Equal(t, "Backend Engineer Remote OK", loaded.JobText)
}

func TestSessionStoreSetOnUnknownSession(t *testing.T) {
	store := NewSessionStore()

	assert.ErrorIs(t, store.SetCVText(uuid.New(), "x"), ErrSessionNotFound)
	assert.ErrorIs(t, store.SetJobText(uuid.New(), "x"), ErrSessionNotFound)
}

func TestSessionStoreGetReturnsCopy(t *testing.T) {
	store := NewSessionStore()
	session := store.Create()

	loaded, ok := store.Get(session.ID)
	require.True(t, ok)
	loaded.CVText = "mutated locally"

	again, ok := store.Get(session.ID)
	require.True(t, ok)
	assert.Empty(t, again.CVText)
}
