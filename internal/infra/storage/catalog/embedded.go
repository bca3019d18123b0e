package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Вложенные значения (table_configuration, current_bookings) хранятся как литералы
// в стиле JSON или словаря с одинарными кавычками. Оба варианта - валидный
// YAML flow, поэтому декодируем их yaml-парсером без подмены кавычек.

// decodeTableConfiguration декодирует {"2-seat": 2, "4-seat": 1} с сохранением порядка ключей
func decodeTableConfiguration(raw string) ([]domain.TableClass, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: table_configuration: %v", ErrInvalidEmbeddedValue, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("%w: table_configuration is empty", ErrInvalidEmbeddedValue)
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: table_configuration must be a mapping", ErrInvalidEmbeddedValue)
	}

	classes := make([]domain.TableClass, 0, len(mapping.Content)/2)
	seen := make(map[string]struct{}, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valueNode := mapping.Content[i], mapping.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: table_configuration key at line %d is not a scalar",
				ErrInvalidEmbeddedValue, keyNode.Line)
		}

		key := keyNode.Value
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: table_configuration has duplicate class %q", ErrInvalidEmbeddedValue, key)
		}
		seen[key] = struct{}{}

		var count int
		if valueNode.Kind != yaml.ScalarNode || valueNode.Decode(&count) != nil {
			return nil, fmt.Errorf("%w: table_configuration count for %q is not an integer",
				ErrInvalidEmbeddedValue, key)
		}
		if count < 0 {
			return nil, fmt.Errorf("%w: table_configuration count for %q is negative", ErrInvalidEmbeddedValue, key)
		}

		class := domain.TableClass{Key: key, Count: count}
		if _, err := class.Capacity(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEmbeddedValue, err)
		}
		classes = append(classes, class)
	}

	return classes, nil
}

// bookingSummaryRecord схема элемента current_bookings
type bookingSummaryRecord struct {
	BookingID    string      `yaml:"booking_id"`
	RestaurantID string      `yaml:"restaurant_id"`
	Date         string      `yaml:"date"`
	Time         string      `yaml:"time"`
	TableID      string      `yaml:"table_id"`
	PartySize    flexibleInt `yaml:"party_size"`
}

// flexibleInt принимает как 4, так и "4": старые клиенты сохраняли размер компании строкой
type flexibleInt int

func (f *flexibleInt) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("party_size must be a scalar")
	}
	s := strings.TrimSpace(value.Value)
	if s == "" || value.Tag == "!!null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("party_size %q is not an integer", value.Value)
	}
	*f = flexibleInt(n)
	return nil
}

// decodeCurrentBookings декодирует список бронирований пользователя.
// Пустая ячейка и null означают отсутствие бронирований.
func decodeCurrentBookings(raw string) ([]domain.BookingSummary, error) {
	if strings.TrimSpace(raw) == "" {
		return []domain.BookingSummary{}, nil
	}

	var records []bookingSummaryRecord
	if err := yaml.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("%w: current_bookings: %v", ErrInvalidEmbeddedValue, err)
	}

	summaries := make([]domain.BookingSummary, 0, len(records))
	for i, rec := range records {
		if rec.RestaurantID == "" || rec.TableID == "" {
			return nil, fmt.Errorf("%w: current_bookings[%d] needs restaurant_id and table_id",
				ErrInvalidEmbeddedValue, i)
		}
		summaries = append(summaries, domain.BookingSummary{
			BookingID:    rec.BookingID,
			RestaurantID: rec.RestaurantID,
			Date:         rec.Date,
			Time:         rec.Time,
			TableID:      rec.TableID,
			PartySize:    int(rec.PartySize),
		})
	}

	return summaries, nil
}
