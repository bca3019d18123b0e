package catalog

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Service каталог ресторанов. Загружается один раз при старте и дальше только читается.
type Service struct {
	restaurants []*domain.Restaurant
	byID        map[string]*domain.Restaurant
	logger      Logger
}

// NewService загружает каталог из репозитория
func NewService(ctx context.Context, repo RestaurantRepository, logger Logger) (*Service, error) {
	restaurants, err := repo.GetRestaurants(ctx)
	if err != nil {
		logger.Error("NewService: failed to load restaurants: %v", err)
		return nil, fmt.Errorf("%w: load restaurants: %w", ErrInternal, err)
	}

	byID := make(map[string]*domain.Restaurant, len(restaurants))
	for _, r := range restaurants {
		byID[r.ID] = r
	}

	logger.Info("NewService: catalog has %d restaurants", len(restaurants))
	return &Service{
		restaurants: restaurants,
		byID:        byID,
		logger:      logger,
	}, nil
}

// List возвращает все рестораны в порядке файла
func (s *Service) List() []*domain.Restaurant {
	return append([]*domain.Restaurant(nil), s.restaurants...)
}

// Get возвращает ресторан по ID
func (s *Service) Get(id string) (*domain.Restaurant, error) {
	r, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRestaurantNotFound, id)
	}
	return r, nil
}

// Search ищет подстроку без учета регистра в названии, кухне и районе.
// Пустой запрос возвращает весь каталог.
func (s *Service) Search(query string) []*domain.Restaurant {
	s.logger.Info("Search: query=%q", query)
	return s.collect(func(r *domain.Restaurant) bool {
		return r.MatchesQuery(query)
	})
}

// Filter фильтрует по кухне ("" или "All" - любая) и минимальному рейтингу (0 - любой)
func (s *Service) Filter(cuisine string, minRating float64) ([]*domain.Restaurant, error) {
	s.logger.Info("Filter: cuisine=%q, minRating=%.1f", cuisine, minRating)

	if err := validateMinRating(minRating); err != nil {
		s.logger.Warn("Filter: %v", err)
		return nil, err
	}

	return s.collect(func(r *domain.Restaurant) bool {
		return r.MatchesCuisine(cuisine) && r.Rating >= minRating
	}), nil
}

// Browse применяет поиск и фильтр одновременно
func (s *Service) Browse(query, cuisine string, minRating float64) ([]*domain.Restaurant, error) {
	s.logger.Info("Browse: query=%q, cuisine=%q, minRating=%.1f", query, cuisine, minRating)

	if err := validateMinRating(minRating); err != nil {
		s.logger.Warn("Browse: %v", err)
		return nil, err
	}

	return s.collect(func(r *domain.Restaurant) bool {
		return r.MatchesQuery(query) && r.MatchesCuisine(cuisine) && r.Rating >= minRating
	}), nil
}

// Cuisines возвращает отсортированный список кухонь без повторов
func (s *Service) Cuisines() []string {
	seen := make(map[string]struct{})
	cuisines := make([]string, 0)
	for _, r := range s.restaurants {
		key := strings.ToLower(r.CuisineType)
		if _, ok := seen[key]; ok || r.CuisineType == "" {
			continue
		}
		seen[key] = struct{}{}
		cuisines = append(cuisines, r.CuisineType)
	}
	sort.Strings(cuisines)
	return cuisines
}

func (s *Service) collect(keep func(r *domain.Restaurant) bool) []*domain.Restaurant {
	result := make([]*domain.Restaurant, 0)
	for _, r := range s.restaurants {
		if keep(r) {
			result = append(result, r)
		}
	}
	return result
}

func validateMinRating(minRating float64) error {
	if math.IsNaN(minRating) || minRating < domain.MinRating || minRating > domain.MaxRating {
		return fmt.Errorf("%w: minRating must be in [%.1f, %.1f]", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	return nil
}
