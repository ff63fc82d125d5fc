package logic

import (
	"strings"

	"golang.org/x/text/cases"

	"userdir/internal/domain"
)

// fold returns the case-folded form of s. A Caser keeps state, so each
// call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// FilterUsers returns the users whose name, username or email contains
// query, compared case-insensitively. Order is preserved. An empty query
// returns users unchanged.
func FilterUsers(users []domain.User, query string) []domain.User {
	if query == "" {
		return users
	}

	needle := fold(query)
	filtered := make([]domain.User, 0, len(users))
	for _, user := range users {
		if matchesFolded(user, needle) {
			filtered = append(filtered, user)
		}
	}
	return filtered
}

// Matches reports whether a single user matches the query
func Matches(user domain.User, query string) bool {
	if query == "" {
		return true
	}
	return matchesFolded(user, fold(query))
}

func matchesFolded(user domain.User, needle string) bool {
	return strings.Contains(fold(user.Name), needle) ||
		strings.Contains(fold(user.Username), needle) ||
		strings.Contains(fold(user.Email), needle)
}

// IndexOf returns the position of the user with the given id, or -1
func IndexOf(users []domain.User, id domain.UserID) int {
	for i, user := range users {
		if user.ID == id {
			return i
		}
	}
	return -1
}
