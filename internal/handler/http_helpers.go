package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
	maxPage          = 1_000_000
)

// parseIntOr returns fallback when raw is blank, zero or not an integer.
// Negative values pass through for the caller to clamp.
func parseIntOr(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value == 0 {
		return fallback
	}
	return value
}

// paginationParams reads page and limit from the query string. page is clamped
// to [1, maxPage], limit defaults to 10 and is clamped to [1, 50].
func paginationParams(c *gin.Context) (page, limit int) {
	page = min(maxPage, max(1, parseIntOr(c.Query("page"), 1)))
	limit = min(maxPageLimit, max(1, parseIntOr(c.Query("limit"), defaultPageLimit)))
	return page, limit
}

func parseUintList(values []string) []uint {
	ids := make([]uint, 0, len(values))
	for _, raw := range values {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		parsed, err := strconv.ParseUint(trimmed, 10, 32)
		if err != nil || parsed == 0 {
			continue
		}
		ids = append(ids, uint(parsed))
	}
	return ids
}

// splitNames splits a comma separated list, dropping blank entries.
func splitNames(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func isChecked(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1":
		return true
	}
	return false
}
