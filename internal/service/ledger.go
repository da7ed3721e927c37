package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/teddybear-cooking/spend-tracker/internal/constants"
	"github.com/teddybear-cooking/spend-tracker/internal/log"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
	"github.com/teddybear-cooking/spend-tracker/internal/store"
)

// Ledger owns the transaction and custom category collections. Failures are
// logged and reported through the return value: an empty list, nil or false.
type Ledger interface {
	GetTransactions() []model.Transaction
	SaveTransaction(input model.TransactionInput) *model.Transaction
	UpdateTransaction(id string, update model.TransactionUpdate) *model.Transaction
	DeleteTransaction(id string) bool
	GetCustomCategories() []string
	SaveCustomCategory(name string) []string
	ClearAllData() bool
}

var errCorrupted = errors.New("stored data is not valid JSON")

// LocalLedger keeps both collections as JSON lists in a store.KV.
type LocalLedger struct {
	kv    store.KV
	log   *log.Logger
	now   func() time.Time
	newID func() string
}

type LedgerOption func(*LocalLedger)

func WithClock(now func() time.Time) LedgerOption {
	return func(l *LocalLedger) { l.now = now }
}

func WithIDGenerator(gen func() string) LedgerOption {
	return func(l *LocalLedger) { l.newID = gen }
}

func NewLocalLedger(kv store.KV, logger *log.Logger, opts ...LedgerOption) *LocalLedger {
	if logger == nil {
		logger = log.Discard()
	}
	l := &LocalLedger{
		kv:    kv,
		log:   logger.WithComponent(log.ComponentLedger),
		now:   time.Now,
		newID: func() string { return ulid.Make().String() },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *LocalLedger) GetTransactions() []model.Transaction {
	entries, err := l.loadTransactions()
	if err != nil {
		l.fail(log.OpRead, constants.TransactionsKey, err)
		return []model.Transaction{}
	}
	txs := make([]model.Transaction, len(entries))
	for i, e := range entries {
		txs[i] = e.tx
	}
	l.log.Debug("transactions loaded", log.FieldCount, len(txs))
	return txs
}

func (l *LocalLedger) SaveTransaction(input model.TransactionInput) *model.Transaction {
	if err := input.Validate(); err != nil {
		l.log.Warn("rejected invalid transaction", log.FieldOperation, log.OpCreate, log.FieldError, err)
		return nil
	}

	entries, err := l.loadTransactions()
	if err != nil {
		l.fail(log.OpCreate, constants.TransactionsKey, err)
		return nil
	}

	tx := model.Transaction{
		ID:          l.uniqueID(entries),
		Date:        strings.TrimSpace(input.Date),
		Amount:      input.Amount,
		Currency:    input.Currency.OrDefault(),
		Category:    input.Category,
		Description: input.Description,
		Timestamp:   l.now().UTC(),
	}

	if err := l.storeTransactions(append(entries, storedTx{tx: tx})); err != nil {
		l.fail(log.OpCreate, constants.TransactionsKey, err)
		return nil
	}

	l.log.Debug("transaction saved", log.FieldID, tx.ID, log.FieldCurrency, tx.Currency)
	return &tx
}

func (l *LocalLedger) UpdateTransaction(id string, update model.TransactionUpdate) *model.Transaction {
	entries, err := l.loadTransactions()
	if err != nil {
		l.fail(log.OpUpdate, constants.TransactionsKey, err)
		return nil
	}

	i := indexOf(entries, id)
	if i < 0 {
		l.log.Warn("transaction not found", log.FieldOperation, log.OpUpdate, log.FieldID, id)
		return nil
	}

	orig := entries[i].tx
	merged := update.Apply(orig)
	merged.ID = orig.ID
	merged.Timestamp = orig.Timestamp
	if err := merged.Validate(); err != nil {
		l.log.Warn("rejected invalid update", log.FieldOperation, log.OpUpdate, log.FieldID, id, log.FieldError, err)
		return nil
	}

	entries[i] = storedTx{tx: merged}
	if err := l.storeTransactions(entries); err != nil {
		l.fail(log.OpUpdate, constants.TransactionsKey, err)
		return nil
	}
	return &merged
}

func (l *LocalLedger) DeleteTransaction(id string) bool {
	entries, err := l.loadTransactions()
	if err != nil {
		l.fail(log.OpDelete, constants.TransactionsKey, err)
		return false
	}

	i := indexOf(entries, id)
	if i < 0 {
		return false
	}

	remaining := append(entries[:i:i], entries[i+1:]...)
	if err := l.storeTransactions(remaining); err != nil {
		l.fail(log.OpDelete, constants.TransactionsKey, err)
		return false
	}
	return true
}

func (l *LocalLedger) GetCustomCategories() []string {
	cats, err := l.loadCategories()
	if err != nil {
		l.fail(log.OpRead, constants.CustomCategoriesKey, err)
		return []string{}
	}
	return cats
}

// SaveCustomCategory appends name unless it is blank or already present and
// returns the resulting list.
func (l *LocalLedger) SaveCustomCategory(name string) []string {
	cats, err := l.loadCategories()
	if err != nil {
		l.fail(log.OpCreate, constants.CustomCategoriesKey, err)
		return []string{}
	}

	if strings.TrimSpace(name) == "" {
		return cats
	}
	for _, c := range cats {
		if c == name {
			return cats
		}
	}

	cats = append(cats, name)
	if err := l.storeJSON(constants.CustomCategoriesKey, cats); err != nil {
		l.fail(log.OpCreate, constants.CustomCategoriesKey, err)
		return []string{}
	}
	l.log.Debug("custom category saved", log.FieldCategory, name)
	return cats
}

func (l *LocalLedger) ClearAllData() bool {
	if err := l.kv.Delete(constants.TransactionsKey, constants.CustomCategoriesKey); err != nil {
		l.fail(log.OpClear, "", err)
		return false
	}
	return true
}

// storedTx pairs a decoded record with the bytes it was read from. Records
// with raw set are written back unchanged.
type storedTx struct {
	raw json.RawMessage
	tx  model.Transaction
}

func (l *LocalLedger) loadTransactions() ([]storedTx, error) {
	raws := []json.RawMessage{}
	if err := l.loadJSON(constants.TransactionsKey, &raws); err != nil {
		return nil, err
	}
	entries := make([]storedTx, 0, len(raws))
	for i, raw := range raws {
		var tx model.Transaction
		if err := json.Unmarshal(raw, &tx); err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %v", errCorrupted, constants.TransactionsKey, i, err)
		}
		entries = append(entries, storedTx{raw: raw, tx: model.Normalize(tx)})
	}
	return entries, nil
}

func (l *LocalLedger) loadCategories() ([]string, error) {
	cats := []string{}
	if err := l.loadJSON(constants.CustomCategoriesKey, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// loadJSON leaves dst untouched when the key has never been written.
func (l *LocalLedger) loadJSON(key string, dst any) error {
	raw, err := l.kv.Get(key)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %s: %v", errCorrupted, key, err)
	}
	return nil
}

func (l *LocalLedger) storeTransactions(entries []storedTx) error {
	parts := make([][]byte, len(entries))
	for i, e := range entries {
		if e.raw != nil {
			parts[i] = e.raw
			continue
		}
		b, err := json.Marshal(e.tx)
		if err != nil {
			return fmt.Errorf("failed to encode transaction %s: %w", e.tx.ID, err)
		}
		parts[i] = b
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	buf.Write(bytes.Join(parts, []byte{','}))
	buf.WriteByte(']')
	return l.kv.Set(constants.TransactionsKey, buf.String())
}

func (l *LocalLedger) storeJSON(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return l.kv.Set(key, string(b))
}

func (l *LocalLedger) uniqueID(entries []storedTx) string {
	for {
		id := l.newID()
		if indexOf(entries, id) < 0 {
			return id
		}
	}
}

func (l *LocalLedger) fail(op, key string, err error) {
	if errors.Is(err, errCorrupted) {
		op = log.OpDecode
	}
	l.log.Error("storage operation failed",
		log.FieldOperation, op,
		log.FieldKey, key,
		log.FieldError, err,
	)
}

func indexOf(entries []storedTx, id string) int {
	for i, e := range entries {
		if e.tx.ID == id {
			return i
		}
	}
	return -1
}
