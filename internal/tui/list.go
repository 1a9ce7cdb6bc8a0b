package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/ndmitry/go-note-keeper/models"
)

type listModel struct {
	owner       string
	notes       []models.Note
	idx         int
	loading     bool
	refreshing  bool
	spinner     spinner.Model
	status      string
	searching   bool
	searchQuery string
	searchInput textinput.Model
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "поиск"
	search.Width = 40

	return listModel{spinner: s, searchInput: search, loading: true}
}

func (m listModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

// noteTitle returns the first line of the note content, shortened to fit a
// single list row.
func noteTitle(n models.Note) string {
	line, _, _ := strings.Cut(n.Content, "\n")
	return fitText(strings.TrimSpace(line), 48)
}

func originTag(n models.Note) string {
	switch {
	case n.Context.ServerName != "":
		return "[" + n.Context.ServerName + "]"
	case n.Context.ServerID != "":
		return "[" + n.Context.ServerID + "]"
	default:
		return "[—]"
	}
}

func (m listModel) View() string {
	header := titleStyle.Render("NoteKeeper")
	if m.owner != "" {
		header += "  (" + m.owner + ")"
	}
	if m.refreshing {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.searching {
		out += "Поиск: [" + m.searchInput.View() + "]\n\n"
	} else if m.searchQuery != "" {
		out += "Поиск: " + m.searchQuery + "\n\n"
	}

	switch {
	case m.loading:
		out += "Загрузка...\n"
	case len(m.notes) == 0:
		out += "Нет заметок\n"
	default:
		for i, note := range m.notes {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s %s\n", cursor, originTag(note), noteTitle(note))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	if m.searching {
		out += "\n" + helpStyle.Render("enter применить  esc сбросить")
	} else {
		out += "\n" + helpStyle.Render("n новая  / поиск  r обновить  l перелогин  q выход  enter открыть")
	}
	return out
}
