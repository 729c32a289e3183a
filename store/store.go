// Package store persists account balances in pebble, keyed by the binary
// column form of chainnum.Address and stored as 32-byte big-endian words.
//
// Because both forms are fixed-width and big-endian, pebble's byte ordering
// of the keys is the same as Address.Cmp, and ForEach visits accounts in that
// order.
package store

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	lru "github.com/hashicorp/golang-lru"
	"github.com/shabbyrobe/go-chainnum"
)

// DefaultCacheSize is the number of decoded balances kept in memory when
// Options.CacheSize is zero.
const DefaultCacheSize = 8192

var (
	ErrInsufficientBalance = errors.New("store: insufficient balance")
	ErrDuplicateTransfer   = errors.New("store: transfer already applied")
	ErrCorruptValue        = errors.New("store: corrupt value")
)

var (
	balancePrefix  = []byte("bal:")
	transferPrefix = []byte("xfr:")
)

type Options struct {
	// Dir is the pebble directory. It is ignored when InMemory is set.
	Dir string

	// InMemory keeps the whole database in memory, for tests and one-shot
	// tools.
	InMemory bool

	// CacheSize is the number of balances to cache. Zero selects
	// DefaultCacheSize; a negative value disables the cache.
	CacheSize int
}

// Store is safe for concurrent use. Writes, and cache fills on a read miss,
// are serialised so concurrent updates to one account are never lost.
type Store struct {
	db    *pebble.DB
	cache *lru.Cache // nil when disabled

	mu sync.Mutex
}

func Open(opts Options) (*Store, error) {
	popts := &pebble.Options{}
	dir := opts.Dir
	if opts.InMemory {
		popts.FS = vfs.NewMem()
		dir = ""
	}
	db, err := pebble.Open(dir, popts)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", opts.Dir, err)
	}

	s := &Store{db: db}
	size := opts.CacheSize
	if size == 0 {
		size = DefaultCacheSize
	}
	if size > 0 {
		if s.cache, err = lru.New(size); err != nil {
			db.Close()
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func balanceKey(addr chainnum.Address) []byte {
	key := make([]byte, 0, len(balancePrefix)+chainnum.AddressBinaryLen)
	key = append(key, balancePrefix...)
	return addr.AppendBinary(key)
}

func transferKey(id chainnum.Hash32) []byte {
	key := make([]byte, 0, len(transferPrefix)+32)
	key = append(key, transferPrefix...)
	b := id.Bytes()
	return append(key, b[:]...)
}

// Balance returns the balance of addr. ok is false if the account has never
// been written.
func (s *Store) Balance(addr chainnum.Address) (bal chainnum.U256, ok bool, err error) {
	if s.cache != nil {
		if v, hit := s.cache.Get(addr); hit {
			return v.(chainnum.U256), true, nil
		}
	}

	// A miss fills the cache, which must not race with a write to addr.
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance(addr)
}

// balance is Balance for callers already holding s.mu.
func (s *Store) balance(addr chainnum.Address) (bal chainnum.U256, ok bool, err error) {
	if s.cache != nil {
		if v, hit := s.cache.Get(addr); hit {
			return v.(chainnum.U256), true, nil
		}
	}

	val, closer, err := s.db.Get(balanceKey(addr))
	if errors.Is(err, pebble.ErrNotFound) {
		return bal, false, nil
	} else if err != nil {
		return bal, false, err
	}
	bal, err = decodeBalance(val, closer)
	if err != nil {
		return bal, false, fmt.Errorf("store: balance of %s: %w", addr, err)
	}
	if s.cache != nil {
		s.cache.Add(addr, bal)
	}
	return bal, true, nil
}

func decodeBalance(val []byte, closer io.Closer) (chainnum.U256, error) {
	defer closer.Close()
	bal, err := chainnum.U256FromBigEndian(val)
	if err != nil {
		return bal, ErrCorruptValue
	}
	return bal, nil
}

// SetBalance overwrites the balance of addr.
func (s *Store) SetBalance(addr chainnum.Address, bal chainnum.U256) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setBalance(addr, bal)
}

func (s *Store) setBalance(addr chainnum.Address, bal chainnum.U256) error {
	w := bal.Bytes32()
	if err := s.db.Set(balanceKey(addr), w[:], pebble.Sync); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Add(addr, bal)
	}
	return nil
}

// Credit adds amount to the balance of addr and returns the new balance. A
// result beyond 2^256-1 fails with chainnum.ErrOverflow and leaves the
// balance unchanged.
func (s *Store) Credit(addr chainnum.Address, amount chainnum.U256) (chainnum.U256, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bal, _, err := s.balance(addr)
	if err != nil {
		return bal, err
	}
	next, err := bal.AddChecked(amount)
	if err != nil {
		return bal, fmt.Errorf("store: credit %s: %w", addr, err)
	}
	return next, s.setBalance(addr, next)
}

// Debit subtracts amount from the balance of addr and returns the new
// balance, or ErrInsufficientBalance.
func (s *Store) Debit(addr chainnum.Address, amount chainnum.U256) (chainnum.U256, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bal, _, err := s.balance(addr)
	if err != nil {
		return bal, err
	}
	next, err := bal.SubChecked(amount)
	if err != nil {
		return bal, fmt.Errorf("store: debit %s: %w", addr, ErrInsufficientBalance)
	}
	return next, s.setBalance(addr, next)
}

// Transfer moves amount from one account to another in a single batch. id
// identifies the transfer (typically the transaction hash); applying the same
// id twice fails with ErrDuplicateTransfer.
func (s *Store) Transfer(id chainnum.Hash32, from, to chainnum.Address, amount chainnum.U256) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	xkey := transferKey(id)
	if _, closer, err := s.db.Get(xkey); err == nil {
		closer.Close()
		return fmt.Errorf("store: transfer %s: %w", id, ErrDuplicateTransfer)
	} else if !errors.Is(err, pebble.ErrNotFound) {
		return err
	}

	fromBal, _, err := s.balance(from)
	if err != nil {
		return err
	}
	fromNext, err := fromBal.SubChecked(amount)
	if err != nil {
		return fmt.Errorf("store: transfer %s: %w", id, ErrInsufficientBalance)
	}

	// A self-transfer must see the debited balance.
	toBal := fromNext
	if from != to {
		if toBal, _, err = s.balance(to); err != nil {
			return err
		}
	}
	toNext, err := toBal.AddChecked(amount)
	if err != nil {
		return fmt.Errorf("store: transfer %s: %w", id, err)
	}

	fw, tw := fromNext.Bytes32(), toNext.Bytes32()
	batch := s.db.NewBatch()
	defer batch.Close()
	if err := batch.Set(balanceKey(from), fw[:], nil); err != nil {
		return err
	}
	if err := batch.Set(balanceKey(to), tw[:], nil); err != nil {
		return err
	}
	if err := batch.Set(xkey, nil, nil); err != nil {
		return err
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Add(from, fromNext)
		s.cache.Add(to, toNext)
	}
	return nil
}

// Delete removes the account. Deleting an unknown account is not an error.
func (s *Store) Delete(addr chainnum.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.Delete(balanceKey(addr), pebble.Sync); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Remove(addr)
	}
	return nil
}

// ForEach calls fn for every account in Address.Cmp order until fn returns
// false.
func (s *Store) ForEach(fn func(addr chainnum.Address, bal chainnum.U256) bool) error {
	upper := append([]byte(nil), balancePrefix...)
	upper[len(upper)-1]++

	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: balancePrefix,
		UpperBound: upper,
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		addr, err := chainnum.AddressFromBinary(iter.Key()[len(balancePrefix):])
		if err != nil {
			return fmt.Errorf("store: key %x: %w", iter.Key(), err)
		}
		bal, err := chainnum.U256FromBigEndian(iter.Value())
		if err != nil {
			return fmt.Errorf("store: balance of %s: %w", addr, ErrCorruptValue)
		}
		if !fn(addr, bal) {
			break
		}
	}
	return iter.Error()
}

// Total sums every balance. The sum of all balances fits in a U256 as long as
// every update went through Credit, Debit or Transfer, but SetBalance can
// break that, so overflow is reported rather than wrapped.
func (s *Store) Total() (chainnum.U256, error) {
	var total chainnum.U256
	var sumErr error
	err := s.ForEach(func(_ chainnum.Address, bal chainnum.U256) bool {
		total, sumErr = total.AddChecked(bal)
		return sumErr == nil
	})
	if err != nil {
		return chainnum.U256{}, err
	}
	if sumErr != nil {
		return chainnum.U256{}, fmt.Errorf("store: total: %w", sumErr)
	}
	return total, nil
}
