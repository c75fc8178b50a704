package ledger

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
	eventport "github.com/amirhossein-jamali/payledger/internal/domain/port/event"
	"github.com/amirhossein-jamali/payledger/internal/domain/port/persistence"
)

// Store is the single writer of the transaction log and the contact index
type Store struct {
	kv           persistence.KeyValueStore
	bus          eventport.Publisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	mu           sync.RWMutex
	transactions []entity.Transaction // most recent first
	contacts     []entity.Contact     // most recent activity first
	lastID       int64
}

// NewStore creates an empty Store
func NewStore(
	kv persistence.KeyValueStore,
	bus eventport.Publisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Store {
	return &Store{
		kv:           kv,
		bus:          bus,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Open creates a Store and loads its state from kv
func Open(
	ctx context.Context,
	kv persistence.KeyValueStore,
	bus eventport.Publisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) (*Store, error) {
	s := NewStore(kv, bus, timeProvider, logger)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the in-memory state with the persisted one
func (s *Store) Load(ctx context.Context) error {
	var txns []entity.Transaction
	if err := s.read(ctx, persistence.KeyTransactions, &txns); err != nil {
		return err
	}

	var contacts []entity.Contact
	if err := s.read(ctx, persistence.KeyContacts, &contacts); err != nil {
		return err
	}

	var lastID int64
	for i := range txns {
		lastID = max(lastID, txns[i].ID)
	}
	for i := range contacts {
		lastID = max(lastID, contacts[i].ID)
	}

	s.mu.Lock()
	s.transactions = txns
	s.contacts = contacts
	s.lastID = lastID
	s.mu.Unlock()

	s.logger.Info("Ledger loaded", map[string]any{
		"transactions": len(txns),
		"contacts":     len(contacts),
	})
	return nil
}

// AppendTransaction validates and records a new transaction, then upserts its counterparty contact.
// Both collections are persisted in one batch; on failure neither memory nor store changes.
func (s *Store) AppendTransaction(
	ctx context.Context,
	name string,
	address string,
	amount int64,
	direction entity.Direction,
) (*entity.Transaction, error) {
	txn, err := s.appendLocked(ctx, name, address, amount, direction)
	if err != nil {
		return nil, err
	}

	s.publish(eventport.TopicTransactionsChanged, eventport.OriginLocal)
	s.publish(eventport.TopicContactsChanged, eventport.OriginLocal)

	s.logger.Info("Transaction appended", map[string]any{
		"transactionId": txn.ID,
		"direction":     txn.Direction,
		"amount":        txn.Amount,
		"counterparty":  txn.CounterpartyAddress,
	})

	out := *txn
	return &out, nil
}

func (s *Store) appendLocked(
	ctx context.Context,
	name string,
	address string,
	amount int64,
	direction entity.Direction,
) (*entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()
	txnID := nextID(now.UnixMilli(), s.lastID)

	txn, err := entity.NewTransaction(txnID, name, address, amount, direction, now)
	if err != nil {
		return nil, err
	}

	txns := make([]entity.Transaction, 0, len(s.transactions)+1)
	txns = append(txns, *txn)
	txns = append(txns, s.transactions...)

	contacts, lastID := upsertContact(s.contacts, txn, txnID)

	entries, err := encode(map[string]any{
		persistence.KeyTransactions: txns,
		persistence.KeyContacts:     contacts,
	})
	if err != nil {
		return nil, err
	}

	if err := s.kv.Put(ctx, entries); err != nil {
		s.logger.Error("Failed to persist transaction", map[string]any{
			"transactionId": txnID,
			"error":         err.Error(),
		})
		return nil, err
	}

	s.transactions = txns
	s.contacts = contacts
	s.lastID = lastID
	return txn, nil
}

// ListTransactions returns a copy of the log, most recent first
func (s *Store) ListTransactions(filter *entity.TransactionFilter) []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Transaction, 0, len(s.transactions))
	for i := range s.transactions {
		if filter.Matches(&s.transactions[i]) {
			out = append(out, s.transactions[i])
		}
	}
	return out
}

// ListContacts returns a copy of the contact index, most recent activity first
func (s *Store) ListContacts() []entity.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// RemoveContact drops a contact from the index. Transactions are never touched.
func (s *Store) RemoveContact(ctx context.Context, id int64) error {
	removed, err := s.removeContactLocked(ctx, id)
	if err != nil || !removed {
		return err
	}

	s.publish(eventport.TopicContactsChanged, eventport.OriginLocal)
	s.logger.Info("Contact removed", map[string]any{"contactId": id})
	return nil
}

func (s *Store) removeContactLocked(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	contacts := make([]entity.Contact, 0, len(s.contacts)-1)
	contacts = append(contacts, s.contacts[:idx]...)
	contacts = append(contacts, s.contacts[idx+1:]...)

	entries, err := encode(map[string]any{persistence.KeyContacts: contacts})
	if err != nil {
		return false, err
	}
	if err := s.kv.Put(ctx, entries); err != nil {
		s.logger.Error("Failed to persist contact removal", map[string]any{
			"contactId": id,
			"error":     err.Error(),
		})
		return false, err
	}

	s.contacts = contacts
	return true, nil
}

// MarkSynced flips every pending record of the kind to synced
func (s *Store) MarkSynced(ctx context.Context, kind entity.RecordKind) error {
	_, err := s.markSynced(ctx, kind, func(int64) bool { return true })
	return err
}

// MarkSyncedIDs flips the listed pending records of the kind to synced and returns how many changed.
// Records that are not listed stay pending.
func (s *Store) MarkSyncedIDs(ctx context.Context, kind entity.RecordKind, ids []int64) (int, error) {
	if len(ids) == 0 {
		if !kind.IsValid() {
			return 0, errs.NewValidationError("kind", kind, errs.ErrInvalidRequest)
		}
		return 0, nil
	}

	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return s.markSynced(ctx, kind, func(id int64) bool {
		_, ok := set[id]
		return ok
	})
}

// MarkContactsSynced flips the acknowledged contacts to synced and returns how many changed.
// A contact touched after its acknowledged copy was taken has a newer revision and stays pending.
func (s *Store) MarkContactsSynced(ctx context.Context, acked []entity.Contact) (int, error) {
	if len(acked) == 0 {
		return 0, nil
	}

	revisions := make(map[int64]uint64, len(acked))
	for i := range acked {
		revisions[acked[i].ID] = acked[i].Revision
	}

	changed, err := s.markContactsLocked(ctx, func(c *entity.Contact) bool {
		rev, ok := revisions[c.ID]
		return ok && rev == c.Revision
	})
	if err != nil || changed == 0 {
		return 0, err
	}

	s.publish(eventport.TopicContactsChanged, eventport.OriginSync)
	s.logger.Debug("Records marked synced", map[string]any{
		"kind":    entity.KindContacts,
		"changed": changed,
	})
	return changed, nil
}

func (s *Store) markSynced(ctx context.Context, kind entity.RecordKind, include func(id int64) bool) (int, error) {
	var (
		changed int
		err     error
		topic   eventport.Topic
	)

	switch kind {
	case entity.KindTransactions:
		topic = eventport.TopicTransactionsChanged
		changed, err = s.markTransactionsLocked(ctx, include)
	case entity.KindContacts:
		topic = eventport.TopicContactsChanged
		changed, err = s.markContactsLocked(ctx, func(c *entity.Contact) bool { return include(c.ID) })
	default:
		return 0, errs.NewValidationError("kind", kind, errs.ErrInvalidRequest)
	}

	if err != nil || changed == 0 {
		return 0, err
	}

	s.publish(topic, eventport.OriginSync)
	s.logger.Debug("Records marked synced", map[string]any{
		"kind":    kind,
		"changed": changed,
	})
	return changed, nil
}

func (s *Store) markTransactionsLocked(ctx context.Context, include func(id int64) bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txns := make([]entity.Transaction, len(s.transactions))
	copy(txns, s.transactions)

	changed := 0
	for i := range txns {
		if txns[i].IsPending() && include(txns[i].ID) {
			txns[i].SyncState = entity.SyncSynced
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}

	entries, err := encode(map[string]any{persistence.KeyTransactions: txns})
	if err != nil {
		return 0, err
	}
	if err := s.kv.Put(ctx, entries); err != nil {
		return 0, err
	}

	s.transactions = txns
	return changed, nil
}

func (s *Store) markContactsLocked(ctx context.Context, include func(c *entity.Contact) bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts := make([]entity.Contact, len(s.contacts))
	copy(contacts, s.contacts)

	changed := 0
	for i := range contacts {
		if contacts[i].IsPending() && include(&contacts[i]) {
			contacts[i].SyncState = entity.SyncSynced
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}

	entries, err := encode(map[string]any{persistence.KeyContacts: contacts})
	if err != nil {
		return 0, err
	}
	if err := s.kv.Put(ctx, entries); err != nil {
		return 0, err
	}

	s.contacts = contacts
	return changed, nil
}

// UnsyncedTransactions returns a copy of the pending transactions
func (s *Store) UnsyncedTransactions() []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Transaction, 0)
	for i := range s.transactions {
		if s.transactions[i].IsPending() {
			out = append(out, s.transactions[i])
		}
	}
	return out
}

// UnsyncedContacts returns a copy of the pending contacts
func (s *Store) UnsyncedContacts() []entity.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Contact, 0)
	for i := range s.contacts {
		if s.contacts[i].IsPending() {
			out = append(out, s.contacts[i])
		}
	}
	return out
}

func (s *Store) read(ctx context.Context, key string, dst any) error {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Error("Stored ledger data is corrupt", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return errs.NewPersistenceError("decode", key, err)
	}
	return nil
}

func (s *Store) publish(topic eventport.Topic, origin eventport.Origin) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(eventport.Event{
		Topic:      topic,
		Origin:     origin,
		OccurredAt: s.timeProvider.Now(),
	})
}
