package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audienceUC "civic-notify/internal/audience/usecase"
	"civic-notify/internal/broadcast"
	"civic-notify/internal/broadcast/repository"
	"civic-notify/internal/model"
	"civic-notify/internal/syncbus"
	pkgErrors "civic-notify/pkg/errors"
	"civic-notify/pkg/paginator"
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

type fakeRepo struct {
	mu        sync.Mutex
	created   []model.Broadcast
	createErr error
	detail    map[string]model.Broadcast
	deleteErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{detail: make(map[string]model.Broadcast)}
}

func (r *fakeRepo) Create(ctx context.Context, opts repository.CreateOptions) (model.Broadcast, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return model.Broadcast{}, r.createErr
	}
	r.created = append(r.created, opts.Broadcast)
	r.detail[opts.Broadcast.ID] = opts.Broadcast
	return opts.Broadcast, nil
}

func (r *fakeRepo) Get(ctx context.Context, opts repository.GetOptions) ([]model.Broadcast, paginator.Paginator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Broadcast, len(r.created))
	copy(out, r.created)
	return out, paginator.Paginator{Total: int64(len(out)), Count: int64(len(out))}, nil
}

func (r *fakeRepo) Detail(ctx context.Context, id string) (model.Broadcast, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.detail[id]
	if !ok {
		return model.Broadcast{}, repository.ErrNotFound
	}
	return b, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.detail[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.detail, id)
	return nil
}

type fakeDirectory struct {
	recipients []model.Recipient
	err        error
	calls      atomic.Int64
}

func (d *fakeDirectory) List(ctx context.Context) ([]model.Recipient, error) {
	d.calls.Add(1)
	if d.err != nil {
		return nil, d.err
	}
	return d.recipients, nil
}

type fakeInbox struct {
	mu      sync.Mutex
	entries []model.InboxEntry
	failFor map[string]bool
}

func (s *fakeInbox) CreateEntry(ctx context.Context, entry model.InboxEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failFor[entry.RecipientID] {
		return errors.New("store rejected entry")
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *fakeInbox) ListByRecipient(ctx context.Context, recipientID string) ([]model.InboxEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.InboxEntry
	for _, e := range s.entries {
		if e.RecipientID == recipientID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeInbox) MarkAllRead(ctx context.Context, recipientID string) (int, error) {
	return 0, nil
}

func (s *fakeInbox) created() []model.InboxEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.InboxEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

type fakeSync struct {
	announces atomic.Int64
	err       error
}

func (f *fakeSync) Announce(ctx context.Context) error {
	f.announces.Add(1)
	return f.err
}

func (f *fakeSync) Subscribe(h syncbus.Handler) func() { return func() {} }

type ucDeps struct {
	repo  *fakeRepo
	dir   *fakeDirectory
	inbox *fakeInbox
	sync  *fakeSync
}

func newUseCase(deps ucDeps) broadcast.UseCase {
	l := testLogger{}
	return New(l, deps.repo, deps.dir, deps.inbox, audienceUC.New(l), deps.sync)
}

func citizens(n int, zone string) []model.Recipient {
	out := make([]model.Recipient, n)
	for i := range out {
		id := strings.ToLower(zone) + "-" + string(rune('a'+i))
		out[i] = model.Recipient{
			ID:      "r-" + id,
			Name:    "Vecino " + id,
			Address: "Calle 1, " + zone,
			Email:   id + "@example.com",
			Role:    model.RoleCitizen,
		}
	}
	return out
}

func validInput() broadcast.SendInput {
	return broadcast.SendInput{
		Title:      "Corte de agua",
		Body:       "Suspensión del servicio de agua potable el martes.",
		Zone:       model.ZoneCentro,
		Category:   model.CategoryServiceInterruption,
		Priority:   model.PriorityHigh,
		SenderName: "Municipio",
	}
}

func TestSendValidationFailure(t *testing.T) {
	deps := ucDeps{repo: newFakeRepo(), dir: &fakeDirectory{}, inbox: &fakeInbox{}, sync: &fakeSync{}}
	uc := newUseCase(deps)

	tests := []struct {
		name   string
		mutate func(*broadcast.SendInput)
	}{
		{"empty title", func(ip *broadcast.SendInput) { ip.Title = "   " }},
		{"empty body", func(ip *broadcast.SendInput) { ip.Body = "" }},
		{"title too long", func(ip *broadcast.SendInput) { ip.Title = strings.Repeat("á", broadcast.MaxTitleLength+1) }},
		{"body too long", func(ip *broadcast.SendInput) { ip.Body = strings.Repeat("x", broadcast.MaxBodyLength+1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip := validInput()
			tt.mutate(&ip)

			_, err := uc.Send(context.Background(), ip)
			require.Error(t, err)

			var collector *pkgErrors.ValidationErrorCollector
			assert.ErrorAs(t, err, &collector)
		})
	}

	// A rejected send must leave no trace anywhere.
	assert.Equal(t, int64(0), deps.dir.calls.Load())
	assert.Empty(t, deps.inbox.created())
	assert.Empty(t, deps.repo.created)
	assert.Equal(t, int64(0), deps.sync.announces.Load())
}

func TestSendTitleAtLimit(t *testing.T) {
	deps := ucDeps{
		repo:  newFakeRepo(),
		dir:   &fakeDirectory{recipients: citizens(1, "Centro")},
		inbox: &fakeInbox{},
		sync:  &fakeSync{},
	}
	uc := newUseCase(deps)

	ip := validInput()
	ip.Title = strings.Repeat("é", broadcast.MaxTitleLength) // counted in runes, not bytes

	_, err := uc.Send(context.Background(), ip)
	require.NoError(t, err)
}

func TestSendDirectoryFailure(t *testing.T) {
	deps := ucDeps{
		repo:  newFakeRepo(),
		dir:   &fakeDirectory{err: errors.New("identity service down")},
		inbox: &fakeInbox{},
		sync:  &fakeSync{},
	}
	uc := newUseCase(deps)

	_, err := uc.Send(context.Background(), validInput())
	require.ErrorIs(t, err, broadcast.ErrAudienceResolution)

	assert.Empty(t, deps.inbox.created())
	assert.Empty(t, deps.repo.created)
	assert.Equal(t, int64(0), deps.sync.announces.Load())
}

func TestSendFansOutToResolvedAudience(t *testing.T) {
	recipients := citizens(5, "Centro")
	recipients = append(recipients, citizens(3, "Tarqui")...)
	deps := ucDeps{
		repo:  newFakeRepo(),
		dir:   &fakeDirectory{recipients: recipients},
		inbox: &fakeInbox{},
		sync:  &fakeSync{},
	}
	uc := newUseCase(deps)

	op, err := uc.Send(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, 5, op.Broadcast.RecipientCount)
	assert.Equal(t, 5, op.Delivered)
	assert.Len(t, op.Broadcast.RecipientIDs, 5)

	entries := deps.inbox.created()
	require.Len(t, entries, 5)
	for _, e := range entries {
		assert.Equal(t, model.EntryID(op.Broadcast.ID, e.RecipientID), e.ID)
		assert.False(t, e.Read)
		assert.Equal(t, "Corte de agua", e.Title)
		assert.Equal(t, "Municipio", e.SenderName)
	}

	require.Len(t, deps.repo.created, 1)
	assert.Equal(t, op.Broadcast.ID, deps.repo.created[0].ID)
	assert.Equal(t, int64(1), deps.sync.announces.Load(), "exactly one announce per send")
}

func TestSendPartialFailureKeepsResolvedCount(t *testing.T) {
	recipients := citizens(4, "Centro")
	deps := ucDeps{
		repo:  newFakeRepo(),
		dir:   &fakeDirectory{recipients: recipients},
		inbox: &fakeInbox{failFor: map[string]bool{recipients[1].ID: true}},
		sync:  &fakeSync{},
	}
	uc := newUseCase(deps)

	op, err := uc.Send(context.Background(), validInput())
	require.NoError(t, err)

	// The audit record reports the resolved audience; the delivered count
	// exposes the shortfall.
	assert.Equal(t, 4, op.Broadcast.RecipientCount)
	assert.Equal(t, 3, op.Delivered)
	assert.Len(t, deps.inbox.created(), 3)

	require.Len(t, deps.repo.created, 1)
	assert.Equal(t, 4, deps.repo.created[0].RecipientCount)
	assert.Equal(t, int64(1), deps.sync.announces.Load())
}

func TestSendZeroAudienceStillRecorded(t *testing.T) {
	deps := ucDeps{
		repo:  newFakeRepo(),
		dir:   &fakeDirectory{recipients: citizens(3, "Tarqui")},
		inbox: &fakeInbox{},
		sync:  &fakeSync{},
	}
	uc := newUseCase(deps)

	ip := validInput() // targets Centro, nobody matches
	op, err := uc.Send(context.Background(), ip)
	require.NoError(t, err)

	assert.Equal(t, 0, op.Broadcast.RecipientCount)
	assert.Equal(t, 0, op.Delivered)
	assert.Empty(t, deps.inbox.created())
	require.Len(t, deps.repo.created, 1)
	assert.Equal(t, int64(1), deps.sync.announces.Load())
}

func TestSendAuditFailureStillAnnounces(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("disk full")
	deps := ucDeps{
		repo:  repo,
		dir:   &fakeDirectory{recipients: citizens(2, "Centro")},
		inbox: &fakeInbox{},
		sync:  &fakeSync{},
	}
	uc := newUseCase(deps)

	_, err := uc.Send(context.Background(), validInput())
	require.Error(t, err)

	// Entries were already fanned out, so open sessions still get told.
	assert.Len(t, deps.inbox.created(), 2)
	assert.Equal(t, int64(1), deps.sync.announces.Load())
}

func TestSendAnnounceFailureDoesNotFailSend(t *testing.T) {
	deps := ucDeps{
		repo:  newFakeRepo(),
		dir:   &fakeDirectory{recipients: citizens(2, "Centro")},
		inbox: &fakeInbox{},
		sync:  &fakeSync{err: errors.New("signal transport down")},
	}
	uc := newUseCase(deps)

	op, err := uc.Send(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, 2, op.Delivered)
}

func TestSendFetchesDirectoryFresh(t *testing.T) {
	deps := ucDeps{
		repo:  newFakeRepo(),
		dir:   &fakeDirectory{recipients: citizens(1, "Centro")},
		inbox: &fakeInbox{},
		sync:  &fakeSync{},
	}
	uc := newUseCase(deps)

	ctx := context.Background()
	_, err := uc.Send(ctx, validInput())
	require.NoError(t, err)
	_, err = uc.Send(ctx, validInput())
	require.NoError(t, err)

	assert.Equal(t, int64(2), deps.dir.calls.Load())
}
