package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"menu-qr/models"
	"menu-qr/qr"
	"menu-qr/repository"

	"github.com/rs/zerolog"
)

// MenuStore keeps the ordered in-memory menu in step with the durable table.
// Every mutation hits the repository first and touches memory only on success.
type MenuStore struct {
	repo    repository.Repository
	log     zerolog.Logger
	mu      sync.Mutex
	entries []models.MenuEntry
}

func NewMenuStore(repo repository.Repository, log zerolog.Logger) *MenuStore {
	return &MenuStore{repo: repo, log: log}
}

// LoadAll creates the table if needed and replaces the in-memory list with
// every stored row. On failure the list is left empty.
func (s *MenuStore) LoadAll(ctx context.Context) ([]models.MenuEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	if err := s.repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("%w: ensure schema: %w", ErrStorage, err)
	}
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load menu: %w", ErrStorage, err)
	}
	s.entries = rows
	s.log.Debug().Int("entries", len(rows)).Msg("menu loaded")
	return s.snapshot(), nil
}

// Add normalizes dish and appends (dish, price) to the menu.
func (s *MenuStore) Add(ctx context.Context, dish, price string) (models.MenuEntry, error) {
	dish = NormalizeDish(dish)
	price = strings.TrimSpace(price)
	if dish == "" || price == "" {
		return models.MenuEntry{}, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.Dish == dish {
			return models.MenuEntry{}, fmt.Errorf("%w: %s", ErrDuplicate, dish)
		}
	}

	id, err := s.repo.Insert(ctx, dish, price)
	if err != nil {
		return models.MenuEntry{}, fmt.Errorf("%w: insert %q: %w", ErrStorage, dish, err)
	}
	entry := models.MenuEntry{ID: id, Dish: dish, Price: price}
	s.entries = append(s.entries, entry)
	s.log.Debug().Int64("id", id).Str("dish", dish).Msg("dish added")
	return entry, nil
}

// Remove deletes every entry whose dish matches exactly. ErrNotFound means
// nothing matched; callers usually ignore it.
func (s *MenuStore) Remove(ctx context.Context, dish string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.repo.DeleteByDish(ctx, dish)
	if err != nil {
		return fmt.Errorf("%w: delete %q: %w", ErrStorage, dish, err)
	}

	kept := make([]models.MenuEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.Dish != dish {
			kept = append(kept, e)
		}
	}
	removed := len(s.entries) - len(kept)
	s.entries = kept

	if n == 0 && removed == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, dish)
	}
	s.log.Debug().Str("dish", dish).Int64("rows", n).Msg("dish removed")
	return nil
}

// Entries returns a copy of the current ordered menu.
func (s *MenuStore) Entries() []models.MenuEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// ExportQR encodes the current menu payload into a PNG at path.
func (s *MenuStore) ExportQR(enc qr.Encoder, path string) error {
	payload := RenderPayload(s.Entries())
	if err := enc.WriteFile(payload, path); err != nil {
		return err
	}
	s.log.Info().Str("path", path).Int("bytes", len(payload)).Msg("menu qr exported")
	return nil
}

func (s *MenuStore) snapshot() []models.MenuEntry {
	out := make([]models.MenuEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// NormalizeDish trims surrounding space and upper-cases the first rune only.
func NormalizeDish(dish string) string {
	dish = strings.TrimSpace(dish)
	r, size := utf8.DecodeRuneInString(dish)
	if r == utf8.RuneError {
		return dish
	}
	return string(unicode.ToUpper(r)) + dish[size:]
}

// RenderPayload joins "<dish> - $<price>" lines in list order.
func RenderPayload(entries []models.MenuEntry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Dish + " - $" + e.Price
	}
	return strings.Join(lines, "\n")
}
