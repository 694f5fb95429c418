package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/technotes-api/internal/models"
	"github.com/yukikurage/technotes-api/internal/repository"
)

func createOwner(t *testing.T, env serviceTestEnv, username string) *models.User {
	t.Helper()
	user, err := env.userService.CreateUser(context.Background(), CreateUserInput{Username: username, Password: "secret"})
	require.NoError(t, err)
	return user
}

func TestNoteService_CreateNote_DefaultsToOpen(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	owner := createOwner(t, env, "alice")

	note, err := env.noteService.CreateNote(ctx, CreateNoteInput{UserID: owner.ID, Title: "Fix bug", Text: "details"})
	require.NoError(t, err)

	stored, err := env.noteRepo.FindByID(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, stored.UserID)
	assert.Equal(t, "Fix bug", stored.Title)
	assert.Equal(t, "details", stored.Text)
	assert.False(t, stored.Completed)
}

func TestNoteService_CreateNote_MissingFields(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	inputs := []CreateNoteInput{
		{Title: "t", Text: "x"},
		{UserID: "u", Text: "x"},
		{UserID: "u", Title: "t"},
		{UserID: "u", Title: " ", Text: "x"},
	}
	for _, input := range inputs {
		_, err := env.noteService.CreateNote(ctx, input)
		assert.ErrorIs(t, err, ErrMissingNoteFields)
	}

	notes, err := env.noteRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteService_CreateNote_DuplicateTitleIgnoresCase(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	owner := createOwner(t, env, "alice")

	_, err := env.noteService.CreateNote(ctx, CreateNoteInput{UserID: owner.ID, Title: "Fix bug", Text: "details"})
	require.NoError(t, err)

	_, err = env.noteService.CreateNote(ctx, CreateNoteInput{UserID: owner.ID, Title: "FIX BUG", Text: "again"})
	assert.ErrorIs(t, err, ErrDuplicateTitle)

	notes, err := env.noteRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestNoteService_ListNotes_EmbedsUsername(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	_, err := env.noteService.ListNotes(ctx)
	assert.ErrorIs(t, err, ErrNoNotes)

	alice := createOwner(t, env, "alice")
	bob := createOwner(t, env, "bob")
	_, err = env.noteService.CreateNote(ctx, CreateNoteInput{UserID: alice.ID, Title: "First", Text: "a"})
	require.NoError(t, err)
	_, err = env.noteService.CreateNote(ctx, CreateNoteInput{UserID: bob.ID, Title: "Second", Text: "b"})
	require.NoError(t, err)
	_, err = env.noteService.CreateNote(ctx, CreateNoteInput{UserID: "gone", Title: "Orphan", Text: "c"})
	require.NoError(t, err)

	notes, err := env.noteService.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)

	byTitle := map[string]NoteWithOwner{}
	for _, n := range notes {
		byTitle[n.Note.Title] = n
	}
	assert.Equal(t, "alice", byTitle["First"].Username)
	assert.Equal(t, "bob", byTitle["Second"].Username)
	assert.Equal(t, "", byTitle["Orphan"].Username)
}

func TestNoteService_UpdateNote(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	alice := createOwner(t, env, "alice")
	bob := createOwner(t, env, "bob")

	note, err := env.noteService.CreateNote(ctx, CreateNoteInput{UserID: alice.ID, Title: "Fix bug", Text: "details"})
	require.NoError(t, err)

	// same title in another casing belongs to the note itself
	updated, err := env.noteService.UpdateNote(ctx, UpdateNoteInput{
		ID:        note.ID,
		UserID:    bob.ID,
		Title:     "fix BUG",
		Text:      "reassigned",
		Completed: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "fix BUG", updated.Title)

	notes, err := env.noteService.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, bob.ID, notes[0].Note.UserID)
	assert.Equal(t, "bob", notes[0].Username)
	assert.Equal(t, "reassigned", notes[0].Note.Text)
	assert.True(t, notes[0].Note.Completed)
}

func TestNoteService_UpdateNote_Errors(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	owner := createOwner(t, env, "alice")

	first, err := env.noteService.CreateNote(ctx, CreateNoteInput{UserID: owner.ID, Title: "First", Text: "a"})
	require.NoError(t, err)
	_, err = env.noteService.CreateNote(ctx, CreateNoteInput{UserID: owner.ID, Title: "Second", Text: "b"})
	require.NoError(t, err)

	_, err = env.noteService.UpdateNote(ctx, UpdateNoteInput{
		ID: first.ID, UserID: owner.ID, Title: "First", Text: "a",
	})
	assert.ErrorIs(t, err, ErrMissingNoteUpdateFields)

	_, err = env.noteService.UpdateNote(ctx, UpdateNoteInput{
		ID: "missing", UserID: owner.ID, Title: "Third", Text: "c", Completed: boolPtr(false),
	})
	assert.ErrorIs(t, err, ErrNoteNotFound)

	_, err = env.noteService.UpdateNote(ctx, UpdateNoteInput{
		ID: first.ID, UserID: owner.ID, Title: "SECOND", Text: "a", Completed: boolPtr(false),
	})
	assert.ErrorIs(t, err, ErrDuplicateTitle)

	stored, err := env.noteRepo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", stored.Title)
}

func TestNoteService_DeleteNote(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	owner := createOwner(t, env, "alice")

	_, err := env.noteService.DeleteNote(ctx, "")
	assert.ErrorIs(t, err, ErrMissingNoteID)

	_, err = env.noteService.DeleteNote(ctx, "missing")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	note, err := env.noteService.CreateNote(ctx, CreateNoteInput{UserID: owner.ID, Title: "Fix bug", Text: "details"})
	require.NoError(t, err)

	deleted, err := env.noteService.DeleteNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.ID, deleted.ID)
	assert.Equal(t, "Fix bug", deleted.Title)

	_, err = env.noteService.ListNotes(ctx)
	assert.ErrorIs(t, err, ErrNoNotes)
}

func TestNoteService_CreateNote_TrailingSpaceIsDistinct(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	owner := createOwner(t, env, "alice")

	_, err := env.noteService.CreateNote(ctx, CreateNoteInput{UserID: owner.ID, Title: "Fix bug", Text: "first"})
	require.NoError(t, err)

	note, err := env.noteService.CreateNote(ctx, CreateNoteInput{UserID: owner.ID, Title: "Fix bug ", Text: "second"})
	require.NoError(t, err)
	assert.Equal(t, "Fix bug ", note.Title)

	notes, err := env.noteService.ListNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestNoteRepository_UpdateMissingRow(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	owner := createOwner(t, env, "alice")

	note, err := env.noteService.CreateNote(ctx, CreateNoteInput{UserID: owner.ID, Title: "Fix bug", Text: "details"})
	require.NoError(t, err)
	require.NoError(t, env.noteRepo.Delete(ctx, note.ID))

	// an update that loses the race with a delete must not bring the row back
	note.Text = "stale"
	assert.ErrorIs(t, env.noteRepo.Update(ctx, note), repository.ErrNotFound)

	_, err = env.noteRepo.FindByID(ctx, note.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNoteRepository_UpdateKeepsFalseCompletion(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()
	owner := createOwner(t, env, "alice")

	note, err := env.noteService.CreateNote(ctx, CreateNoteInput{UserID: owner.ID, Title: "Fix bug", Text: "details"})
	require.NoError(t, err)

	note.Completed = true
	require.NoError(t, env.noteRepo.Update(ctx, note))
	note.Completed = false
	note.Title = "FIX BUG"
	require.NoError(t, env.noteRepo.Update(ctx, note))

	stored, err := env.noteRepo.FindByTitle(ctx, "fix bug")
	require.NoError(t, err)
	assert.False(t, stored.Completed)
	assert.Equal(t, "FIX BUG", stored.Title)
}
