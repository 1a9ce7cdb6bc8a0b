package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/ndmitry/go-note-keeper/models"
)

var accountColumns = []string{"id", "external_id", "display_name", "password_hash", "created_at"}

var noteColumns = []string{
	"id", "owner_external_id", "content",
	"server_id", "server_name", "channel_id", "channel_name",
	"created_at", "updated_at",
}

func (db *DB) insertAccountQuery(account models.Account) (string, []any, error) {
	return db.builder.
		Insert(account.TableName()).
		Columns(accountColumns...).
		Values(account.ID, account.ExternalID, account.DisplayName, account.PasswordHash, account.CreatedAt).
		ToSql()
}

func (db *DB) selectAccountByExternalIDQuery(externalID string) (string, []any, error) {
	return db.builder.
		Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(sq.Eq{"external_id": externalID}).
		ToSql()
}

func (db *DB) completeAccountQuery(account models.Account) (string, []any, error) {
	return db.builder.
		Update(account.TableName()).
		Set("display_name", account.DisplayName).
		Set("password_hash", account.PasswordHash).
		Where(sq.Eq{"external_id": account.ExternalID}).
		ToSql()
}

func (db *DB) insertNoteQuery(note models.Note) (string, []any, error) {
	return db.builder.
		Insert(note.TableName()).
		Columns(noteColumns...).
		Values(
			note.ID, note.OwnerExternalID, note.Content,
			note.Context.ServerID, note.Context.ServerName,
			note.Context.ChannelID, note.Context.ChannelName,
			note.CreatedAt, note.UpdatedAt,
		).
		ToSql()
}

// likeEscaper neutralizes LIKE metacharacters in user-supplied search
// terms so they match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// selectNotesQuery builds the listing query. Search is applied as a
// case-insensitive substring match on content; lower(...) LIKE with an
// explicit ESCAPE clause works identically in PostgreSQL and SQLite.
func (db *DB) selectNotesQuery(filter NoteFilter) (string, []any, error) {
	query := db.builder.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"owner_external_id": filter.OwnerExternalID})

	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
		query = query.Where(sq.Expr(`lower(content) LIKE ? ESCAPE '\'`, pattern))
	}
	if filter.ServerID != "" {
		query = query.Where(sq.Eq{"server_id": filter.ServerID})
	}

	query = query.OrderBy("created_at DESC", "id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}

func (db *DB) selectNoteByIDQuery(id string) (string, []any, error) {
	return db.builder.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) updateNoteContentQuery(id string, content string, updatedAt time.Time) (string, []any, error) {
	return db.builder.
		Update(models.Note{}.TableName()).
		Set("content", content).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) deleteNoteQuery(id string) (string, []any, error) {
	return db.builder.
		Delete(models.Note{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
