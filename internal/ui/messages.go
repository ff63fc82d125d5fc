package ui

import (
	"userdir/internal/domain"
)

// usersFetchedMsg carries the result of a successful directory fetch
type usersFetchedMsg struct {
	users []domain.User
}

// usersFailedMsg carries the error of a failed directory fetch
type usersFailedMsg struct {
	err error
}

// detailsPagerMsg contains the result of a details pager command
type detailsPagerMsg struct {
	id  domain.UserID
	err error
}

// clearStatusMsg clears the footer status message
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
