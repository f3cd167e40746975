package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const storedRequestsTable = "stored_requests"

var storedRequestColumns = []string{
	"ticket_id",
	"selected_action",
	"edit_buffer",
	"selected_entities",
	"temp_address_data",
	"assigned_reviewer",
	"saved_at",
}

func buildGetStoredRequestQuery(ticketID string) (string, []any, error) {
	return psql.
		Select(storedRequestColumns...).
		From(storedRequestsTable).
		Where(sq.Eq{"ticket_id": ticketID}).
		ToSql()
}

// buildUpsertStoredRequestQuery overwrites any existing draft for the ticket
// in place, keeping the one-outstanding-request-per-ticket invariant inside
// the database.
func buildUpsertStoredRequestQuery(
	ticketID, selectedAction string,
	editBuffer, selectedEntities, tempAddressData []byte,
	assignedReviewer string,
	savedAt time.Time,
) (string, []any, error) {
	return psql.
		Insert(storedRequestsTable).
		Columns(storedRequestColumns...).
		Values(ticketID, selectedAction, editBuffer, selectedEntities, tempAddressData, assignedReviewer, savedAt).
		Suffix(`ON CONFLICT (ticket_id) DO UPDATE SET
			selected_action = EXCLUDED.selected_action,
			edit_buffer = EXCLUDED.edit_buffer,
			selected_entities = EXCLUDED.selected_entities,
			temp_address_data = EXCLUDED.temp_address_data,
			assigned_reviewer = EXCLUDED.assigned_reviewer,
			saved_at = EXCLUDED.saved_at`).
		ToSql()
}

func buildClearStoredRequestQuery(ticketID string) (string, []any, error) {
	return psql.
		Delete(storedRequestsTable).
		Where(sq.Eq{"ticket_id": ticketID}).
		ToSql()
}

func buildDeleteExpiredQuery(cutoff time.Time) (string, []any, error) {
	return psql.
		Delete(storedRequestsTable).
		Where(sq.Lt{"saved_at": cutoff}).
		ToSql()
}
