package services

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/database/repositories"
)

// nationNames implements fuzzy.Source over nation names.
type nationNames []*models.Nation

func (n nationNames) Len() int            { return len(n) }
func (n nationNames) String(i int) string { return strings.ToLower(n[i].Name) }

// NationSearchService resolves user-typed nation names to nations,
// tolerating typos and partial input.
type NationSearchService struct {
	nations repositories.NationRepository
}

func NewNationSearchService(nations repositories.NationRepository) *NationSearchService {
	return &NationSearchService{nations: nations}
}

// Resolve returns the best match for query, preferring an exact name hit.
func (s *NationSearchService) Resolve(ctx context.Context, query string) (*models.Nation, error) {
	if nation, err := s.nations.GetByName(ctx, query); err == nil {
		return nation, nil
	} else if err != repositories.ErrNotFound {
		return nil, err
	}

	all, err := s.nations.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), nationNames(all))
	if len(matches) == 0 {
		return nil, repositories.ErrNotFound
	}
	return all[matches[0].Index], nil
}

// Suggest returns up to limit nation names matching the partial query,
// for autocomplete.
func (s *NationSearchService) Suggest(ctx context.Context, partial string, limit int) ([]string, error) {
	all, err := s.nations.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if partial == "" {
		names := make([]string, 0, limit)
		for _, n := range all {
			if len(names) == limit {
				break
			}
			names = append(names, n.Name)
		}
		return names, nil
	}

	matches := fuzzy.FindFrom(strings.ToLower(partial), nationNames(all))
	names := make([]string, 0, limit)
	for _, m := range matches {
		if len(names) == limit {
			break
		}
		names = append(names, all[m.Index].Name)
	}
	return names, nil
}
