package tui

import (
	"github.com/ndmitry/go-note-keeper/models"
)

type authDoneMsg struct {
	account models.Account
	err     error
}

type listLoadedMsg struct {
	notes []models.Note
	err   error
}

type noteSavedMsg struct {
	err error
}

type noteDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
