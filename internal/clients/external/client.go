// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/dnd-character-creator/internal/clients/external Client

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/dnd-character-creator/internal/errors"
)

// Client defines the interface for external SRD data lookups
type Client interface {
	// GetRaceData fetches race information from the D&D 5e API
	GetRaceData(ctx context.Context, raceID string) (*RaceData, error)

	// GetClassData fetches class information from the D&D 5e API
	GetClassData(ctx context.Context, classID string) (*ClassData, error)

	// ListAvailableRaces returns all available races with full details
	ListAvailableRaces(ctx context.Context) ([]*RaceData, error)

	// ListAvailableClasses returns all available classes with full details
	ListAvailableClasses(ctx context.Context) ([]*ClassData, error)
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	// Wrap with caching so catalog listings don't refetch per entry
	cachedClient := dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)

	return &client{
		dnd5eClient: cachedClient,
	}, nil
}

// toAPIFormat converts our internal constant format to the API key format,
// e.g. "RACE_DRAGONBORN" -> "dragonborn", "RACE_HALF_ELF" -> "half-elf".
func toAPIFormat(id string) string {
	parts := strings.SplitN(id, "_", 2)
	if len(parts) == 2 {
		return strings.ToLower(strings.ReplaceAll(parts[1], "_", "-"))
	}
	return strings.ToLower(id)
}

// fromAPIFormat converts an API key back to our internal constant format,
// e.g. "half-elf" + "RACE" -> "RACE_HALF_ELF".
func fromAPIFormat(key, prefix string) string {
	return prefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

func (c *client) GetRaceData(_ context.Context, raceID string) (*RaceData, error) {
	apiID := toAPIFormat(raceID)

	race, err := c.dnd5eClient.GetRace(apiID)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable,
			"failed to get race %s (api: %s)", raceID, apiID)
	}

	raceData := convertRace(race)
	raceData.ID = raceID
	return raceData, nil
}

func (c *client) GetClassData(_ context.Context, classID string) (*ClassData, error) {
	apiID := toAPIFormat(classID)

	class, err := c.dnd5eClient.GetClass(apiID)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable,
			"failed to get class %s (api: %s)", classID, apiID)
	}

	classData := convertClass(class)
	classData.ID = classID
	return classData, nil
}

func (c *client) ListAvailableRaces(_ context.Context) ([]*RaceData, error) {
	refs, err := c.dnd5eClient.ListRaces()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list races")
	}
	slog.Debug("Got race references", "count", len(refs))

	// Load full details concurrently; the cached client dedupes refetches
	races := make([]*RaceData, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()

			race, err := c.dnd5eClient.GetRace(key)
			if err != nil {
				errChan <- errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get race %s", key)
				return
			}

			raceData := convertRace(race)
			raceData.ID = fromAPIFormat(key, "RACE")
			races[idx] = raceData
		}(i, ref.Key)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return races, nil
}

func (c *client) ListAvailableClasses(_ context.Context) ([]*ClassData, error) {
	refs, err := c.dnd5eClient.ListClasses()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list classes")
	}

	classes := make([]*ClassData, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()

			class, err := c.dnd5eClient.GetClass(key)
			if err != nil {
				errChan <- errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get class %s", key)
				return
			}

			classData := convertClass(class)
			classData.ID = fromAPIFormat(key, "CLASS")
			classes[idx] = classData
		}(i, ref.Key)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return classes, nil
}

func convertRace(apiRace *entities.Race) *RaceData {
	if apiRace == nil {
		return nil
	}

	data := &RaceData{
		Name:  apiRace.Name,
		Size:  apiRace.Size,
		Speed: apiRace.Speed,
	}

	data.AbilityBonuses = make(map[string]int)
	for _, bonus := range apiRace.AbilityBonuses {
		if bonus.AbilityScore != nil {
			data.AbilityBonuses[strings.ToUpper(bonus.AbilityScore.Key)] = bonus.Bonus
		}
	}

	data.Traits = make([]string, len(apiRace.Traits))
	for i, trait := range apiRace.Traits {
		data.Traits[i] = trait.Name
	}

	return data
}

func convertClass(apiClass *entities.Class) *ClassData {
	if apiClass == nil {
		return nil
	}

	data := &ClassData{
		Name:   apiClass.Name,
		HitDie: apiClass.HitDie,
	}

	data.SavingThrows = make([]string, 0, len(apiClass.SavingThrows))
	for _, st := range apiClass.SavingThrows {
		data.SavingThrows = append(data.SavingThrows, strings.ToUpper(st.Key))
	}

	if apiClass.Spellcasting != nil && apiClass.Spellcasting.SpellcastingAbility != nil {
		data.SpellcastingAbility = strings.ToUpper(apiClass.Spellcasting.SpellcastingAbility.Key)
	}

	return data
}
