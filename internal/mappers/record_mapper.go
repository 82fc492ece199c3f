// Package mappers reshapes health records between their client wire form and
// their store-side form. It is the single codec for the answers/result
// payloads, shared by the upload and download paths so the round trip cannot
// drift between them.
package mappers

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"healthsync-service/internal/domain/dtos"
	"healthsync-service/internal/domain/entities"
)

var (
	emptyAnswers = json.RawMessage(`[]`)
	emptyResult  = json.RawMessage(`{}`)
)

// NormalizeAnswers converts a client-supplied answers payload to storage
// form. An absent or null payload becomes an empty array, never an error.
func NormalizeAnswers(raw json.RawMessage) datatypes.JSON {
	return datatypes.JSON(normalize(raw, emptyAnswers))
}

// NormalizeResult converts a client-supplied result payload to storage form.
// An absent or null payload becomes an empty object, never an error.
func NormalizeResult(raw json.RawMessage) datatypes.JSON {
	return datatypes.JSON(normalize(raw, emptyResult))
}

func normalize(raw, empty json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return empty
	}
	return trimmed
}

// SanitizeStoredAnswers returns a stored answers payload in wire form,
// substituting an empty array when the stored text is not valid JSON so a
// single corrupt row cannot abort a download.
func SanitizeStoredAnswers(stored datatypes.JSON) json.RawMessage {
	return sanitize(stored, emptyAnswers)
}

// SanitizeStoredResult is the result counterpart of SanitizeStoredAnswers.
func SanitizeStoredResult(stored datatypes.JSON) json.RawMessage {
	return sanitize(stored, emptyResult)
}

func sanitize(stored datatypes.JSON, empty json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(stored)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || !json.Valid(trimmed) {
		return empty
	}
	return json.RawMessage(trimmed)
}

// ToEntity builds the store-side record for an uploaded client record. The
// client-observed Timestamp is used as created_at when present, otherwise
// now. UpdatedAt is always the server-observed now: it drives the
// incremental download, so a backdated client clock must never push a fresh
// record behind another device's high-water mark.
func ToEntity(ownerID uuid.UUID, rec dtos.ClientHealthRecord, now time.Time) *entities.HealthRecord {
	createdAt := now
	if rec.Timestamp != nil && *rec.Timestamp > 0 {
		createdAt = time.UnixMilli(*rec.Timestamp)
	}
	return &entities.HealthRecord{
		OwnerID:    ownerID,
		ExternalID: rec.ExternalID,
		TestType:   rec.TestType,
		TestName:   rec.TestName,
		TestDate:   time.UnixMilli(rec.TestDate),
		Answers:    NormalizeAnswers(rec.Answers),
		Result:     NormalizeResult(rec.Result),
		CreatedAt:  createdAt,
		UpdatedAt:  now,
	}
}

// ToView reshapes a stored record into client wire form. Timestamp repeats
// the test date in epoch milliseconds for the client's local comparisons.
func ToView(rec *entities.HealthRecord) dtos.HealthRecordView {
	testDateMillis := rec.TestDate.UnixMilli()
	return dtos.HealthRecordView{
		ExternalID: rec.ExternalID,
		TestType:   rec.TestType,
		TestName:   rec.TestName,
		TestDate:   testDateMillis,
		Answers:    SanitizeStoredAnswers(rec.Answers),
		Result:     SanitizeStoredResult(rec.Result),
		Timestamp:  testDateMillis,
	}
}
