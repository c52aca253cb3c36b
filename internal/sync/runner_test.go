package sync

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"facultetus-sync/internal/config"
	"facultetus-sync/internal/domain"
	"facultetus-sync/internal/facultetus"
)

type mockUniversityRepo struct {
	rows map[int64]domain.University

	reactivated []int64
	sweptAbsent []int64
	deleteCount int64
}

func newMockUniversityRepo() *mockUniversityRepo {
	return &mockUniversityRepo{rows: make(map[int64]domain.University)}
}

func (m *mockUniversityRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.rows[id]
	return ok, nil
}

func (m *mockUniversityRepo) Insert(_ context.Context, u domain.University, _ time.Time) error {
	m.rows[u.UniversityID] = u
	return nil
}

func (m *mockUniversityRepo) Update(_ context.Context, u domain.University, _ time.Time) error {
	m.rows[u.UniversityID] = u
	return nil
}

func (m *mockUniversityRepo) Reactivate(_ context.Context, ids []int64) (int64, error) {
	m.reactivated = ids
	return 0, nil
}

func (m *mockUniversityRepo) SoftDeleteAbsent(_ context.Context, ids []int64, _ time.Time) (int64, error) {
	m.sweptAbsent = ids
	return m.deleteCount, nil
}

func (m *mockUniversityRepo) ListIDs(_ context.Context) ([]int64, error) {
	out := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		out = append(out, id)
	}
	return out, nil
}

type mockRunLogRepo struct {
	rows []domain.RunLog
}

func (m *mockRunLogRepo) Insert(_ context.Context, rl domain.RunLog) error {
	m.rows = append(m.rows, rl)
	return nil
}

func (m *mockRunLogRepo) ListRecent(context.Context, string, int) ([]domain.RunLog, error) {
	return nil, nil
}

type mockLocker struct {
	acquired bool
	keys     []string
	released atomic.Int32
}

func (m *mockLocker) Acquire(_ context.Context, key string, _ time.Duration) (func(), bool, error) {
	m.keys = append(m.keys, key)
	if !m.acquired {
		return func() {}, false, nil
	}
	return func() { m.released.Add(1) }, true, nil
}

type mockNotifier struct {
	runs []domain.RunLog
}

func (m *mockNotifier) RunCompleted(_ context.Context, rl domain.RunLog) {
	m.runs = append(m.runs, rl)
}

func universityTestRunner(apiURL string, repo *mockUniversityRepo, runLogs *mockRunLogRepo, locks Locker, notifier Notifier) *Runner {
	return NewRunner(RunnerParams{
		Config: config.SyncConfig{
			PageSize:           20,
			ActivityPageLimit:  80,
			UniversityPageSize: 2,
			StalenessWindow:    2 * time.Hour,
			LockTTL:            time.Minute,
		},
		API:          facultetus.NewClient(apiURL, "client-1", "secret-1", nil),
		Universities: repo,
		RunLogs:      runLogs,
		SphereStore:  &mockRegistryStore{existing: map[string]int64{}},
		TypeStore:    &mockRegistryStore{existing: map[string]int64{}},
		Locks:        locks,
		Notifier:     notifier,
	})
}

func TestRunner_SyncUniversities(t *testing.T) {
	pages := map[string]string{
		"0": `{"response": [{"university_id": "1", "title": "MSU"}, {"university_id": 2, "title": "SPbU"}]}`,
		"2": `{"response": [{"university_id": "3", "title": "NSU"}]}`,
		"4": `{"response": []}`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Query().Get("offset")]
		if !ok {
			t.Errorf("unexpected offset %q", r.URL.Query().Get("offset"))
			body = `{"response": []}`
		}
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	repo := newMockUniversityRepo()
	repo.deleteCount = 1
	runLogs := &mockRunLogRepo{}
	notifier := &mockNotifier{}
	locks := &mockLocker{acquired: true}

	r := universityTestRunner(srv.URL, repo, runLogs, locks, notifier)
	if err := r.SyncUniversities(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(repo.rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(repo.rows))
	}
	if len(repo.sweptAbsent) != 3 {
		t.Fatalf("expected sweep over 3 affected ids, got %v", repo.sweptAbsent)
	}

	if len(runLogs.rows) != 1 {
		t.Fatalf("expected one run-log row, got %d", len(runLogs.rows))
	}
	rl := runLogs.rows[0]
	if !rl.Success || rl.Added != 3 || rl.Updated != 0 || rl.Deleted != 1 {
		t.Fatalf("unexpected run log: %+v", rl)
	}
	if rl.RunID == "" || rl.StartedAt == nil || rl.FinishedAt == nil {
		t.Fatalf("expected run id and timestamps: %+v", rl)
	}

	if len(locks.keys) != 1 || locks.keys[0] != "facultetus:sync:universities" {
		t.Fatalf("unexpected lock keys: %v", locks.keys)
	}
	if locks.released.Load() != 1 {
		t.Fatalf("expected lock released once")
	}
	if len(notifier.runs) != 1 || notifier.runs[0].Resource != ResourceUniversities {
		t.Fatalf("expected completion notification, got %+v", notifier.runs)
	}
}

func TestRunner_SyncUniversities_SecondRunUpdates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("offset") == "0" {
			_, _ = w.Write([]byte(`{"response": [{"university_id": "1"}, {"university_id": "2"}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"response": []}`))
	}))
	defer srv.Close()

	repo := newMockUniversityRepo()
	runLogs := &mockRunLogRepo{}

	r := universityTestRunner(srv.URL, repo, runLogs, nil, nil)
	for i := 0; i < 2; i++ {
		if err := r.SyncUniversities(context.Background()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}

	if len(runLogs.rows) != 2 {
		t.Fatalf("expected 2 run-log rows, got %d", len(runLogs.rows))
	}
	if runLogs.rows[0].Added != 2 || runLogs.rows[1].Added != 0 || runLogs.rows[1].Updated != 2 {
		t.Fatalf("expected second run to only update: %+v", runLogs.rows)
	}
}

func TestRunner_FailureWritesMinimalRunLog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	repo := newMockUniversityRepo()
	runLogs := &mockRunLogRepo{}
	notifier := &mockNotifier{}

	r := universityTestRunner(srv.URL, repo, runLogs, nil, notifier)
	if err := r.SyncUniversities(context.Background()); err == nil {
		t.Fatalf("expected error")
	}

	if len(runLogs.rows) != 1 {
		t.Fatalf("expected one failure row, got %d", len(runLogs.rows))
	}
	rl := runLogs.rows[0]
	if rl.Success || rl.Added != 0 || rl.Updated != 0 || rl.Deleted != 0 {
		t.Fatalf("expected minimal failure row, got %+v", rl)
	}
	if len(notifier.runs) != 0 {
		t.Fatalf("expected no notification on failure")
	}
}

func TestRunner_RefusesWithoutLock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("expected no API calls when lock is held elsewhere")
	}))
	defer srv.Close()

	runLogs := &mockRunLogRepo{}
	locks := &mockLocker{acquired: false}

	r := universityTestRunner(srv.URL, newMockUniversityRepo(), runLogs, locks, nil)
	if err := r.SyncUniversities(context.Background()); err == nil {
		t.Fatalf("expected lock contention error")
	}
	if len(runLogs.rows) != 0 {
		t.Fatalf("expected no run-log rows, got %d", len(runLogs.rows))
	}
}
