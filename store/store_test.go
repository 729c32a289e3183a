package store

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shabbyrobe/go-chainnum"
	"github.com/stretchr/testify/require"
)

func openMem(t *testing.T, cacheSize int) *Store {
	t.Helper()
	s, err := Open(Options{InMemory: true, CacheSize: cacheSize})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

var (
	alice = chainnum.MustParseAddress("0x52908400098527886E0F7030069857D2E4169EE7")
	bob   = chainnum.MustParseAddress("0x8617E340B3D01FA5F11F306F4090FD50E238070D")
	carol = chainnum.SolanaAddress([32]byte{31: 1})
)

func TestBalanceMissing(t *testing.T) {
	s := openMem(t, 0)
	bal, ok, err := s.Balance(alice)
	require.NoError(t, err)
	require.False(t, ok)
	require.True(t, bal.IsZero())
}

func TestSetBalance(t *testing.T) {
	for _, cache := range []int{0, -1, 1} {
		s := openMem(t, cache)
		v := chainnum.MustParseU256("0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
		require.NoError(t, s.SetBalance(alice, v))
		require.NoError(t, s.SetBalance(bob, chainnum.U256From64(7)))

		bal, ok, err := s.Balance(alice)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, v, bal)

		bal, ok, err = s.Balance(bob)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, chainnum.U256From64(7), bal)
	}
}

func TestCreditDebit(t *testing.T) {
	s := openMem(t, 0)

	bal, err := s.Credit(alice, chainnum.U256From64(100))
	require.NoError(t, err)
	require.Equal(t, chainnum.U256From64(100), bal)

	bal, err = s.Debit(alice, chainnum.U256From64(40))
	require.NoError(t, err)
	require.Equal(t, chainnum.U256From64(60), bal)

	_, err = s.Debit(alice, chainnum.U256From64(61))
	require.ErrorIs(t, err, ErrInsufficientBalance)

	bal, _, err = s.Balance(alice)
	require.NoError(t, err)
	require.Equal(t, chainnum.U256From64(60), bal)
}

func TestCreditOverflow(t *testing.T) {
	s := openMem(t, 0)
	require.NoError(t, s.SetBalance(alice, chainnum.MaxU256))

	_, err := s.Credit(alice, chainnum.U256From64(1))
	require.ErrorIs(t, err, chainnum.ErrOverflow)

	bal, _, err := s.Balance(alice)
	require.NoError(t, err)
	require.Equal(t, chainnum.MaxU256, bal)
}

func TestTransfer(t *testing.T) {
	s := openMem(t, 0)
	id := chainnum.Keccak256([]byte("transfer-1"))

	require.NoError(t, s.SetBalance(alice, chainnum.U256From64(10)))
	require.NoError(t, s.Transfer(id, alice, bob, chainnum.U256From64(4)))

	a, _, err := s.Balance(alice)
	require.NoError(t, err)
	b, _, err := s.Balance(bob)
	require.NoError(t, err)
	require.Equal(t, chainnum.U256From64(6), a)
	require.Equal(t, chainnum.U256From64(4), b)

	err = s.Transfer(id, alice, bob, chainnum.U256From64(1))
	require.ErrorIs(t, err, ErrDuplicateTransfer)

	err = s.Transfer(chainnum.Keccak256([]byte("transfer-2")), alice, bob, chainnum.U256From64(7))
	require.ErrorIs(t, err, ErrInsufficientBalance)

	a, _, err = s.Balance(alice)
	require.NoError(t, err)
	require.Equal(t, chainnum.U256From64(6), a)
}

func TestTransferSelf(t *testing.T) {
	s := openMem(t, 0)
	require.NoError(t, s.SetBalance(carol, chainnum.U256From64(5)))
	require.NoError(t, s.Transfer(chainnum.Keccak256([]byte("self")), carol, carol, chainnum.U256From64(5)))

	bal, _, err := s.Balance(carol)
	require.NoError(t, err)
	require.Equal(t, chainnum.U256From64(5), bal)
}

func TestDelete(t *testing.T) {
	s := openMem(t, 0)
	require.NoError(t, s.SetBalance(alice, chainnum.U256From64(1)))
	require.NoError(t, s.Delete(alice))
	require.NoError(t, s.Delete(alice))

	_, ok, err := s.Balance(alice)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestForEachOrder(t *testing.T) {
	s := openMem(t, 0)
	addrs := []chainnum.Address{carol, bob, alice}
	for i, a := range addrs {
		require.NoError(t, s.SetBalance(a, chainnum.U256From64(uint64(i+1))))
	}

	var seen []chainnum.Address
	require.NoError(t, s.ForEach(func(addr chainnum.Address, bal chainnum.U256) bool {
		seen = append(seen, addr)
		return true
	}))
	require.Len(t, seen, 3)
	for i := 1; i < len(seen); i++ {
		require.Equal(t, -1, seen[i-1].Cmp(seen[i]))
	}
	// EVM sorts before Solana.
	require.Equal(t, chainnum.AddressSolana, seen[2].Kind())

	var n int
	require.NoError(t, s.ForEach(func(chainnum.Address, chainnum.U256) bool {
		n++
		return false
	}))
	require.Equal(t, 1, n)

	total, err := s.Total()
	require.NoError(t, err)
	require.Equal(t, chainnum.U256From64(6), total)
}

func TestTotalOverflow(t *testing.T) {
	s := openMem(t, 0)
	require.NoError(t, s.SetBalance(alice, chainnum.MaxU256))
	require.NoError(t, s.SetBalance(bob, chainnum.U256From64(1)))

	_, err := s.Total()
	require.True(t, errors.Is(err, chainnum.ErrOverflow))
}

func TestConcurrentCredit(t *testing.T) {
	s := openMem(t, 4)
	const workers, per = 8, 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < per; j++ {
				if _, err := s.Credit(alice, chainnum.U256From64(1)); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	bal, _, err := s.Balance(alice)
	require.NoError(t, err)
	require.Equal(t, chainnum.U256From64(workers*per), bal)
}

func TestConcurrentBalanceCredit(t *testing.T) {
	// A single slot cache makes every read of the other account a miss that
	// refills the cache while credits are in flight.
	s := openMem(t, 1)
	const writers, readers, per = 4, 8, 200

	done := make(chan struct{})
	var rwg sync.WaitGroup
	for i := 0; i < readers; i++ {
		rwg.Add(1)
		go func() {
			defer rwg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				for _, addr := range []chainnum.Address{alice, bob} {
					if _, _, err := s.Balance(addr); err != nil {
						t.Error(err)
						return
					}
				}
			}
		}()
	}

	var wwg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wwg.Add(1)
		go func() {
			defer wwg.Done()
			for j := 0; j < per; j++ {
				for _, addr := range []chainnum.Address{alice, bob} {
					if _, err := s.Credit(addr, chainnum.U256From64(1)); err != nil {
						t.Error(err)
						return
					}
				}
			}
		}()
	}
	wwg.Wait()
	close(done)
	rwg.Wait()

	for _, addr := range []chainnum.Address{alice, bob} {
		bal, ok, err := s.Balance(addr)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, chainnum.U256From64(writers*per), bal)
	}
}

func TestReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	s, err := Open(Options{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, s.SetBalance(carol, chainnum.MaxU256))
	require.NoError(t, s.Close())

	s, err = Open(Options{Dir: dir})
	require.NoError(t, err)
	defer s.Close()

	bal, ok, err := s.Balance(carol)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, chainnum.MaxU256, bal)
}
