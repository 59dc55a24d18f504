package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"spam_detector/internal/model"
	"spam_detector/internal/repository"
)

// SearchService resolves name and phone queries against the combined pool
// of registered users and contact book entries. Every result carries a spam
// likelihood; emails are disclosed only under the mutual-contact rule.
type SearchService interface {
	SearchByName(ctx context.Context, query string, requester model.Requester) ([]model.SearchResult, error)
	SearchByPhone(ctx context.Context, query string, requester model.Requester) ([]model.SearchResult, error)
}

type searchService struct {
	userRepo    repository.UserRepository
	contactRepo repository.ContactRepository
	scorer      *ScoreCalculator
}

// NewSearchService creates a new SearchService
func NewSearchService(userRepo repository.UserRepository, contactRepo repository.ContactRepository, scorer *ScoreCalculator) SearchService {
	return &searchService{
		userRepo:    userRepo,
		contactRepo: contactRepo,
		scorer:      scorer,
	}
}

// SearchByName returns registered users whose full name matches the query,
// followed by contact entries whose name matches and whose number is not
// registered to any user. Within each block prefix matches sort before
// plain substring matches, then by name ascending.
func (s *searchService) SearchByName(ctx context.Context, query string, requester model.Requester) ([]model.SearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []model.SearchResult{}, nil
	}

	// One score map per search call; numbers with no reports score 0.
	scores, err := s.scorer.ScoreMap(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindByFullNameContains(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search users by name: %w", err)
	}
	contacts, err := s.contactRepo.FindUnregisteredByNameContains(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search contacts by name: %w", err)
	}

	// Rank, then name, then id: the order stays total even for identical names
	sort.SliceStable(users, func(i, j int) bool {
		ni, nj := users[i].FullName(), users[j].FullName()
		ri, rj := matchRank(ni, q), matchRank(nj, q)
		if ri != rj {
			return ri < rj
		}
		if ni != nj {
			return ni < nj
		}
		return users[i].ID < users[j].ID
	})
	sort.SliceStable(contacts, func(i, j int) bool {
		ri, rj := matchRank(contacts[i].Name, q), matchRank(contacts[j].Name, q)
		if ri != rj {
			return ri < rj
		}
		if contacts[i].Name != contacts[j].Name {
			return contacts[i].Name < contacts[j].Name
		}
		return contacts[i].ID < contacts[j].ID
	})

	results := make([]model.SearchResult, 0, len(users)+len(contacts))
	for i := range users {
		u := &users[i]
		email, err := s.disclosableEmail(ctx, u, requester)
		if err != nil {
			return nil, err
		}
		id := u.ID
		results = append(results, model.SearchResult{
			ID:             &id,
			Name:           u.FullName(),
			PhoneNumber:    u.PhoneNumber,
			SpamLikelihood: scores[u.PhoneNumber],
			Email:          email,
		})
	}
	for _, c := range contacts {
		results = append(results, model.SearchResult{
			ID:             nil,
			Name:           c.Name,
			PhoneNumber:    c.PhoneNumber,
			SpamLikelihood: scores[c.PhoneNumber],
			Email:          nil,
		})
	}
	return results, nil
}

// SearchByPhone resolves an exact phone number. A registered user for the
// number short-circuits to a single result; otherwise every contact entry
// for the number is returned in id order.
func (s *searchService) SearchByPhone(ctx context.Context, query string, requester model.Requester) ([]model.SearchResult, error) {
	phone := strings.TrimSpace(query)
	if phone == "" {
		return []model.SearchResult{}, nil
	}

	score, err := s.scorer.Score(ctx, phone)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user by phone: %w", err)
	}
	if user != nil {
		email, err := s.disclosableEmail(ctx, user, requester)
		if err != nil {
			return nil, err
		}
		id := user.ID
		return []model.SearchResult{{
			ID:             &id,
			Name:           user.FullName(),
			PhoneNumber:    user.PhoneNumber,
			SpamLikelihood: score,
			Email:          email,
		}}, nil
	}

	contacts, err := s.contactRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to look up contacts by phone: %w", err)
	}
	results := make([]model.SearchResult, 0, len(contacts))
	for _, c := range contacts {
		results = append(results, model.SearchResult{
			ID:             nil,
			Name:           c.Name,
			PhoneNumber:    c.PhoneNumber,
			SpamLikelihood: score,
			Email:          nil,
		})
	}
	return results, nil
}

// disclosableEmail applies the mutual-contact rule: the target's email is
// shown only if the target has saved the requester's phone number in their
// own contact book. The requester having saved the target is not enough.
func (s *searchService) disclosableEmail(ctx context.Context, target *model.User, requester model.Requester) (*string, error) {
	if target.Email == nil {
		return nil, nil
	}
	saved, err := s.contactRepo.ExistsForOwnerAndPhone(ctx, target.ID, requester.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check mutual contact: %w", err)
	}
	if !saved {
		return nil, nil
	}
	return target.Email, nil
}

// matchRank orders prefix matches (0) before substring matches (1). Callers
// pass an already lowercased query.
func matchRank(name, query string) int {
	if strings.HasPrefix(strings.ToLower(name), query) {
		return 0
	}
	return 1
}
