package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civic-notify/internal/model"
	"civic-notify/internal/syncbus"
)

type testLogger struct{}

func (testLogger) Debug(ctx context.Context, arg ...any)                   {}
func (testLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Info(ctx context.Context, arg ...any)                    {}
func (testLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Warn(ctx context.Context, arg ...any)                    {}
func (testLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Error(ctx context.Context, arg ...any)                   {}
func (testLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (testLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// fakeStore is an in-memory stand-in for the external inbox store.
type fakeStore struct {
	mu        sync.Mutex
	entries   map[string][]model.InboxEntry
	listErr   error
	markErr   error
	listGate  chan struct{}
	listCalls int
	markCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: make(map[string][]model.InboxEntry)}
}

func (s *fakeStore) CreateEntry(ctx context.Context, entry model.InboxEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries[entry.RecipientID] {
		if e.ID == entry.ID {
			return nil
		}
	}
	s.entries[entry.RecipientID] = append(s.entries[entry.RecipientID], entry)
	return nil
}

func (s *fakeStore) ListByRecipient(ctx context.Context, recipientID string) ([]model.InboxEntry, error) {
	s.mu.Lock()
	s.listCalls++
	gate := s.listGate
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]model.InboxEntry, len(s.entries[recipientID]))
	copy(out, s.entries[recipientID])
	return out, nil
}

func (s *fakeStore) MarkAllRead(ctx context.Context, recipientID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markCalls++
	if s.markErr != nil {
		return 0, s.markErr
	}
	var updated int
	list := s.entries[recipientID]
	for i := range list {
		if !list[i].Read {
			list[i].Read = true
			updated++
		}
	}
	return updated, nil
}

func (s *fakeStore) seed(recipientID string, unread, read int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < unread; i++ {
		s.entries[recipientID] = append(s.entries[recipientID], model.InboxEntry{
			ID:          model.EntryID("b", recipientID+"-u"+string(rune('a'+i))),
			RecipientID: recipientID,
		})
	}
	for i := 0; i < read; i++ {
		s.entries[recipientID] = append(s.entries[recipientID], model.InboxEntry{
			ID:          model.EntryID("b", recipientID+"-r"+string(rune('a'+i))),
			RecipientID: recipientID,
			Read:        true,
		})
	}
}

func (s *fakeStore) calls() (list, mark int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls, s.markCalls
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}

func newController(t *testing.T, store *fakeStore, recipientID string) *Controller {
	t.Helper()
	c := New(testLogger{}, store, syncbus.NewMemory().Session(), recipientID)
	t.Cleanup(c.Close)
	return c
}

func TestLoadComputesUnreadFromEntries(t *testing.T) {
	store := newFakeStore()
	store.seed("r1", 3, 2)

	c := newController(t, store, "r1")
	c.Load(context.Background())

	assert.Len(t, c.Entries(), 5)
	assert.Equal(t, 3, c.UnreadCount())
}

func TestLoadFailureDegradesToEmpty(t *testing.T) {
	store := newFakeStore()
	store.seed("r1", 2, 0)

	c := newController(t, store, "r1")
	c.Load(context.Background())
	require.Equal(t, 2, c.UnreadCount())

	store.mu.Lock()
	store.listErr = errors.New("store down")
	store.mu.Unlock()

	c.Load(context.Background())
	assert.Empty(t, c.Entries())
	assert.Equal(t, 0, c.UnreadCount())
}

func TestToggleOpenMarksAllRead(t *testing.T) {
	store := newFakeStore()
	store.seed("r1", 2, 1)

	c := newController(t, store, "r1")
	ctx := context.Background()
	c.Load(ctx)
	require.Equal(t, 2, c.UnreadCount())

	open := c.ToggleOpen(ctx)
	assert.True(t, open)
	assert.True(t, c.IsOpen())
	assert.Equal(t, 0, c.UnreadCount())

	entries := c.Entries()
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.True(t, e.Read)
	}

	_, marks := store.calls()
	assert.Equal(t, 1, marks)
}

func TestToggleOpenWithoutUnreadSkipsMark(t *testing.T) {
	store := newFakeStore()
	store.seed("r1", 0, 3)

	c := newController(t, store, "r1")
	ctx := context.Background()
	c.Load(ctx)

	assert.True(t, c.ToggleOpen(ctx))

	_, marks := store.calls()
	assert.Equal(t, 0, marks)
}

func TestToggleTwiceCloses(t *testing.T) {
	store := newFakeStore()
	c := newController(t, store, "r1")
	ctx := context.Background()

	assert.True(t, c.ToggleOpen(ctx))
	assert.False(t, c.ToggleOpen(ctx))
	assert.False(t, c.IsOpen())
}

func TestMarkAllReadFailureKeepsCount(t *testing.T) {
	store := newFakeStore()
	store.seed("r1", 2, 0)
	store.markErr = errors.New("store down")

	c := newController(t, store, "r1")
	ctx := context.Background()
	c.Load(ctx)

	open := c.ToggleOpen(ctx)
	assert.True(t, open, "overlay still opens when marking fails")
	// Count stays stale until a later load succeeds.
	assert.Equal(t, 2, c.UnreadCount())
}

func TestOutsideInteractionDismisses(t *testing.T) {
	store := newFakeStore()
	c := newController(t, store, "r1")
	ctx := context.Background()

	// Closed overlay: nothing to dismiss.
	c.OutsideInteraction()
	assert.False(t, c.IsOpen())

	c.ToggleOpen(ctx)
	require.True(t, c.IsOpen())

	c.OutsideInteraction()
	assert.False(t, c.IsOpen())

	// Dismissal disarmed after use.
	c.OutsideInteraction()
	assert.False(t, c.IsOpen())
}

func TestCloseStopsSyncRefresh(t *testing.T) {
	store := newFakeStore()
	m := syncbus.NewMemory()

	c := New(testLogger{}, store, m.Session(), "r1")
	c.Close()
	c.Close() // idempotent

	listBefore, _ := store.calls()

	other := m.Session()
	require.NoError(t, other.Announce(context.Background()))
	time.Sleep(50 * time.Millisecond)

	listAfter, _ := store.calls()
	assert.Equal(t, listBefore, listAfter, "closed controller still reloading")
}

func TestClosedControllerIgnoresLoadAndToggle(t *testing.T) {
	store := newFakeStore()
	store.seed("r1", 1, 0)

	c := newController(t, store, "r1")
	c.Load(context.Background())
	c.Close()

	c.Load(context.Background())
	assert.False(t, c.ToggleOpen(context.Background()))
	assert.False(t, c.IsOpen())
}

func TestTeardownDiscardsInFlightLoad(t *testing.T) {
	store := newFakeStore()
	store.seed("r1", 3, 0)
	gate := make(chan struct{})
	store.listGate = gate

	c := New(testLogger{}, store, syncbus.NewMemory().Session(), "r1")

	done := make(chan struct{})
	go func() {
		c.Load(context.Background())
		close(done)
	}()

	waitFor(t, func() bool {
		list, _ := store.calls()
		return list == 1
	})

	// Teardown races the fetch; the late result must be discarded.
	c.Close()
	close(gate)
	<-done

	assert.Empty(t, c.Entries())
	assert.Equal(t, 0, c.UnreadCount())
}

func TestCrossSessionMarkReadConverges(t *testing.T) {
	store := newFakeStore()
	store.seed("r1", 2, 0)
	m := syncbus.NewMemory()

	a := New(testLogger{}, store, m.Session(), "r1")
	defer a.Close()
	b := New(testLogger{}, store, m.Session(), "r1")
	defer b.Close()

	ctx := context.Background()
	a.Load(ctx)
	b.Load(ctx)
	require.Equal(t, 2, a.UnreadCount())
	require.Equal(t, 2, b.UnreadCount())

	// Session A opens the overlay: entries get marked read, the change is
	// announced and session B re-fetches on the signal.
	a.ToggleOpen(ctx)
	require.Equal(t, 0, a.UnreadCount())

	waitFor(t, func() bool { return b.UnreadCount() == 0 })
	assert.True(t, a.IsOpen())
	assert.False(t, b.IsOpen(), "sync refresh must not touch overlay state")
}

func TestCrossSessionDeliveryConverges(t *testing.T) {
	store := newFakeStore()
	m := syncbus.NewMemory()

	viewer := New(testLogger{}, store, m.Session(), "r1")
	defer viewer.Close()
	viewer.Load(context.Background())
	require.Equal(t, 0, viewer.UnreadCount())

	// Another session delivers an entry and announces.
	writer := m.Session()
	require.NoError(t, store.CreateEntry(context.Background(), model.InboxEntry{
		ID:          model.EntryID("b9", "r1"),
		RecipientID: "r1",
	}))
	require.NoError(t, writer.Announce(context.Background()))

	waitFor(t, func() bool { return viewer.UnreadCount() == 1 })
}
