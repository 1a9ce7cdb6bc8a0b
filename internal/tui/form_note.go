package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/ndmitry/go-note-keeper/models"
)

type formNoteModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	noteID     string
	submitting bool
}

// newFormNoteModel builds the note form. With a nil note it is a creation
// form with optional origin tags; when editing only the content is mutable,
// so the form collapses to a single input.
func newFormNoteModel(note *models.Note) formNoteModel {
	if note != nil {
		content := textinput.New()
		content.Width = 50
		content.SetValue(note.Content)
		content.Focus()

		return formNoteModel{
			inputs:  []textinput.Model{content},
			editing: true,
			noteID:  note.ID,
		}
	}

	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Placeholder = "текст заметки"
	inputs[1].Placeholder = "server id"
	inputs[2].Placeholder = "channel id"
	inputs[0].Focus()

	return formNoteModel{inputs: inputs}
}

func (m formNoteModel) toCreateRequest() models.CreateNoteRequest {
	return models.CreateNoteRequest{
		Content:   m.inputs[0].Value(),
		ServerID:  m.inputs[1].Value(),
		ChannelID: m.inputs[2].Value(),
	}
}

func (m formNoteModel) toUpdateRequest() models.UpdateNoteRequest {
	return models.UpdateNoteRequest{Content: m.inputs[0].Value()}
}

func (m formNoteModel) View() string {
	if m.editing {
		out := "Редактирование заметки\n\n"
		out += "Текст:    [" + m.inputs[0].View() + "]\n\n"
		out += helpStyle.Render("esc отмена  enter сохранить")
		return out
	}

	out := "Новая заметка\n\n"
	out += "Текст:    [" + m.inputs[0].View() + "]\n"
	out += "Сервер:   [" + m.inputs[1].View() + "]\n"
	out += "Канал:    [" + m.inputs[2].View() + "]\n\n"
	out += helpStyle.Render("esc отмена  tab следующее поле  enter сохранить")
	return out
}
