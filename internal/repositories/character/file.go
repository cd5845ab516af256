package character

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KirkDiggler/dnd-character-creator/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-character-creator/internal/errors"
)

const maxFilenameLength = 50

type fileRepository struct {
	dataDir string
}

// FileConfig contains configuration for the file-backed character repository.
type FileConfig struct {
	// DataDir is the directory character JSON files are written to.
	// It is created if it does not exist.
	DataDir string
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DataDir == "" {
		return errors.InvalidArgument("data directory cannot be empty")
	}
	return nil
}

// NewFile creates a new file-backed character repository. Each character is
// stored as one JSON file named after the character.
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create data directory %s", cfg.DataDir)
	}

	return &fileRepository{dataDir: cfg.DataDir}, nil
}

func (r *fileRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	if existing, err := r.pathFor(input.Character.ID); err != nil {
		return nil, err
	} else if existing != "" {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	data, err := json.MarshalIndent(input.Character, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	path := filepath.Join(r.dataDir, fileNameFor(input.Character))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, errors.Wrapf(err, "failed to write character file")
	}

	return &CreateOutput{Character: input.Character}, nil
}

func (r *fileRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	path, err := r.pathFor(input.ID)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from our own directory listing
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read character file")
	}

	char, err := unmarshalCharacter(data)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Character: char}, nil
}

func (r *fileRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	entries, err := os.ReadDir(r.dataDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read data directory")
	}

	var characters []*dnd5e.Character
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(r.dataDir, entry.Name())
		data, err := os.ReadFile(path) //nolint:gosec // path comes from our own directory listing
		if err != nil {
			slog.Warn("skipping unreadable character file", "path", path, "error", err)
			continue
		}

		char, err := unmarshalCharacter(data)
		if err != nil {
			slog.Warn("skipping malformed character file", "path", path, "error", err)
			continue
		}
		characters = append(characters, char)
	}

	sortNewestFirst(characters)

	return &ListOutput{Characters: characters}, nil
}

func (r *fileRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	path, err := r.pathFor(input.ID)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	if err := os.Remove(path); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character file")
	}

	return &DeleteOutput{}, nil
}

// pathFor finds the file holding the character with the given ID. The name
// portion of the filename varies, so matching is on the ID suffix. Returns
// an empty path when no file matches.
func (r *fileRepository) pathFor(id string) (string, error) {
	entries, err := os.ReadDir(r.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "failed to read data directory")
	}

	idSuffix := "_" + id + ".json"
	bareName := id + ".json"
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if entry.Name() == bareName || strings.HasSuffix(entry.Name(), idSuffix) {
			return filepath.Join(r.dataDir, entry.Name()), nil
		}
	}
	return "", nil
}

// fileNameFor builds "<sanitized-name>_<id>.json", or "<id>.json" when the
// character has no usable name.
func fileNameFor(char *dnd5e.Character) string {
	name := sanitizeFilename(char.Name)
	if name == "" {
		return char.ID + ".json"
	}
	return name + "_" + char.ID + ".json"
}

// sanitizeFilename lowercases the name and collapses anything outside
// [a-z0-9] into single hyphens so the result is safe on any filesystem.
func sanitizeFilename(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	s := strings.Trim(b.String(), "-")
	if len(s) > maxFilenameLength {
		s = strings.Trim(s[:maxFilenameLength], "-")
	}
	return s
}

func unmarshalCharacter(data []byte) (*dnd5e.Character, error) {
	var char dnd5e.Character
	if err := json.Unmarshal(data, &char); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}
	return &char, nil
}

func sortNewestFirst(characters []*dnd5e.Character) {
	sort.Slice(characters, func(i, j int) bool {
		if characters[i].CreatedAt != characters[j].CreatedAt {
			return characters[i].CreatedAt > characters[j].CreatedAt
		}
		return characters[i].ID < characters[j].ID
	})
}
