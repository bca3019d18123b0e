package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
)

// QueryString возвращает параметр запроса без пробелов по краям
func QueryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// QueryOptionalString возвращает nil, если параметр не передан или пуст
func QueryOptionalString(r *http.Request, name string) *string {
	value := QueryString(r, name)
	if value == "" {
		return nil
	}
	return &value
}

// QueryInt парсит обязательный целочисленный параметр
func QueryInt(r *http.Request, name string) (int, error) {
	raw := QueryString(r, name)
	if raw == "" {
		return 0, fmt.Errorf("query parameter %q is required", name)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q must be an integer: %w", name, err)
	}
	return value, nil
}

// QueryFloat парсит необязательный параметр с плавающей точкой, def если не передан
func QueryFloat(r *http.Request, name string, def float64) (float64, error) {
	raw := QueryString(r, name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q must be a number: %w", name, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("query parameter %q must be a finite number", name)
	}
	return value, nil
}
