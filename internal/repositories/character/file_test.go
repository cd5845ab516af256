package character_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-character-creator/internal/errors"
	"github.com/KirkDiggler/dnd-character-creator/internal/repositories/character"
)

func newFileRepo(t *testing.T) (character.Repository, string) {
	t.Helper()

	dir := t.TempDir()
	repo, err := character.NewFile(&character.FileConfig{DataDir: dir})
	require.NoError(t, err)
	return repo, dir
}

func fileTestCharacter(id, name string, createdAt int64) *dnd5e.Character {
	return &dnd5e.Character{
		ID:          id,
		Name:        name,
		RaceID:      dnd5e.RaceDwarf,
		ClassID:     dnd5e.ClassFighter,
		AlignmentID: dnd5e.AlignmentLawfulGood,
		Level:       3,
		Backstory:   "A veteran of the border wars.",
		CreatedAt:   createdAt,
	}
}

func TestFileRepository_Lifecycle(t *testing.T) {
	repo, dir := newFileRepo(t)
	ctx := context.Background()

	char := fileTestCharacter("char_001", "Borin Ironfist", 100)

	_, err := repo.Create(ctx, character.CreateInput{Character: char})
	require.NoError(t, err)

	// File is named after the character with the ID as suffix
	path := filepath.Join(dir, "borin-ironfist_char_001.json")
	_, err = os.Stat(path)
	require.NoError(t, err, "expected %s to exist", path)

	getOut, err := repo.Get(ctx, character.GetInput{ID: "char_001"})
	require.NoError(t, err)
	assert.Equal(t, "Borin Ironfist", getOut.Character.Name)
	assert.Equal(t, dnd5e.ClassFighter, getOut.Character.ClassID)

	_, err = repo.Delete(ctx, character.DeleteInput{ID: "char_001"})
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	_, err = repo.Get(ctx, character.GetInput{ID: "char_001"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestFileRepository_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "characters")

	_, err := character.NewFile(&character.FileConfig{DataDir: dir})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileRepository_CreateDuplicate(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	char := fileTestCharacter("char_001", "Borin Ironfist", 100)

	_, err := repo.Create(ctx, character.CreateInput{Character: char})
	require.NoError(t, err)

	// Same ID under a different name is still a duplicate
	dup := fileTestCharacter("char_001", "Someone Else", 200)
	_, err = repo.Create(ctx, character.CreateInput{Character: dup})
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))
}

func TestFileRepository_UnnamedCharacter(t *testing.T) {
	repo, dir := newFileRepo(t)
	ctx := context.Background()

	// Characters that fell back to raw text have no parsed name
	char := fileTestCharacter("char_001", "", 100)
	char.RawResponse = "unparsed text"

	_, err := repo.Create(ctx, character.CreateInput{Character: char})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "char_001.json"))
	require.NoError(t, err)

	getOut, err := repo.Get(ctx, character.GetInput{ID: "char_001"})
	require.NoError(t, err)
	assert.Equal(t, "unparsed text", getOut.Character.RawResponse)
}

func TestFileRepository_List(t *testing.T) {
	repo, dir := newFileRepo(t)
	ctx := context.Background()

	out, err := repo.List(ctx, character.ListInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Characters)

	for _, tc := range []struct {
		id        string
		name      string
		createdAt int64
	}{
		{"char_001", "Kaelith", 100},
		{"char_002", "Borin", 300},
		{"char_003", "Elara", 200},
	} {
		_, err := repo.Create(ctx, character.CreateInput{
			Character: fileTestCharacter(tc.id, tc.name, tc.createdAt),
		})
		require.NoError(t, err)
	}

	// Non-character files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a character"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))

	out, err = repo.List(ctx, character.ListInput{})
	require.NoError(t, err)
	require.Len(t, out.Characters, 3)

	assert.Equal(t, "Borin", out.Characters[0].Name)
	assert.Equal(t, "Elara", out.Characters[1].Name)
	assert.Equal(t, "Kaelith", out.Characters[2].Name)
}

func TestFileRepository_Validation(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, character.CreateInput{})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = repo.Get(ctx, character.GetInput{})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = repo.Delete(ctx, character.DeleteInput{})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = character.NewFile(&character.FileConfig{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSanitizeFilenameThroughCreate(t *testing.T) {
	repo, dir := newFileRepo(t)
	ctx := context.Background()

	char := fileTestCharacter("char_001", `Sir Reginald "the Bold" O'Malley III`, 100)
	_, err := repo.Create(ctx, character.CreateInput{Character: char})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "sir-reginald-the-bold-o-malley-iii_char_001.json"))
	require.NoError(t, err)
}
