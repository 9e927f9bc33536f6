// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/centavo/backend/test/integration/mock"
)

// testContext holds the state shared by the steps of a scenario.
type testContext struct {
	uri        string
	headers    map[string]string
	response   *response
	db         *mock.Db
	serverPort int

	accountID  uuid.UUID
	cardID     uuid.UUID
	entryID    uuid.UUID
	purchaseID uuid.UUID
	lastID     uuid.UUID
}

type response struct {
	status int
	body   any
}

// before resets per-scenario state and empties the database.
func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.accountID = uuid.Nil
	t.cardID = uuid.Nil
	t.entryID = uuid.Nil
	t.purchaseID = uuid.Nil
	t.lastID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

// replacePlaceholders substitutes captured IDs into request paths and bodies.
func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{account_id}}", t.accountID.String())
	content = strings.ReplaceAll(content, "{{card_id}}", t.cardID.String())
	content = strings.ReplaceAll(content, "{{entry_id}}", t.entryID.String())
	content = strings.ReplaceAll(content, "{{purchase_id}}", t.purchaseID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())
	return content
}

// captureIDs pulls well-known identifiers out of a response body so later
// steps can reference them through placeholders.
func (t *testContext) captureIDs(body map[string]any) {
	if idStr, ok := body["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastID = id
			if _, isEntry := body["due_date"]; isEntry {
				t.entryID = id
			}
		}
	}

	if purchase, ok := body["purchase"].(map[string]any); ok {
		if idStr, ok := purchase["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.purchaseID = id
				t.lastID = id
			}
		}
	}

	if entries, ok := body["entries"].([]any); ok && len(entries) > 0 {
		if entry, ok := entries[0].(map[string]any); ok {
			if idStr, ok := entry["id"].(string); ok {
				if id, err := uuid.Parse(idStr); err == nil {
					t.entryID = id
				}
			}
		}
	}
}

// getFieldValue resolves a dot separated path ("entry.status", "entries.0.id")
// inside a decoded JSON value.
func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
