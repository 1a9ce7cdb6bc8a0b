package tui

import (
	"fmt"
	"time"

	"github.com/ndmitry/go-note-keeper/models"
)

type detailModel struct {
	note   models.Note
	status string
}

func formatNoteTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02.01.2006 15:04")
}

func (m detailModel) View() string {
	out := titleStyle.Render(noteTitle(m.note)) + "\n\n"
	out += m.note.Content + "\n\n"

	out += fmt.Sprintf("Сервер:    %s\n", valueOrDash(originName(m.note.Context.ServerName, m.note.Context.ServerID)))
	out += fmt.Sprintf("Канал:     %s\n", valueOrDash(originName(m.note.Context.ChannelName, m.note.Context.ChannelID)))
	out += fmt.Sprintf("Создана:   %s\n", formatNoteTime(m.note.CreatedAt))
	out += fmt.Sprintf("Изменена:  %s\n", formatNoteTime(m.note.UpdatedAt))

	out += "\n" + helpStyle.Render("e редакт.  d удалить  c копир. текст  esc назад")

	if m.status != "" {
		out += "\n\n" + m.status
	}

	return out
}

func originName(name, id string) string {
	if name != "" {
		return name
	}
	return id
}
