package ledger

import (
	"encoding/json"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payledger/internal/domain/error"
)

// nextID returns a millisecond timestamp id that is strictly greater than last
func nextID(candidate, last int64) int64 {
	if candidate <= last {
		return last + 1
	}
	return candidate
}

// upsertContact returns a new contact list with txn's counterparty moved to the front,
// together with the highest id allocated so far
func upsertContact(contacts []entity.Contact, txn *entity.Transaction, lastID int64) ([]entity.Contact, int64) {
	out := make([]entity.Contact, 0, len(contacts)+1)

	for i := range contacts {
		if contacts[i].CounterpartyAddress != txn.CounterpartyAddress {
			continue
		}

		updated := contacts[i]
		updated.Touch(txn)
		out = append(out, updated)
		out = append(out, contacts[:i]...)
		out = append(out, contacts[i+1:]...)
		return out, lastID
	}

	contactID := nextID(txn.ID, lastID)
	out = append(out, *entity.NewContactFromTransaction(contactID, txn))
	out = append(out, contacts...)
	return out, contactID
}

func encode(values map[string]any) (map[string]string, error) {
	entries := make(map[string]string, len(values))
	for key, value := range values {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, errs.NewPersistenceError("encode", key, err)
		}
		entries[key] = string(raw)
	}
	return entries, nil
}
