package session

import (
	"errors"
	"sync"
	"testing"
	"time"
	"unsafe"

	"github.com/aaronromeo/healthplanner/internal/planner"
)

func TestStore_CreateGetDelete(t *testing.T) {
	s := NewStore(10, time.Hour, nil)
	sess := s.Create(nil)
	if sess.ID == "" {
		t.Fatal("expected session id")
	}
	st := sess.State()
	if st.PlansGenerated || st.Dietary != nil || st.Fitness != nil || len(st.History) != 0 {
		t.Fatalf("expected empty initial state, got %+v", st)
	}

	got, ok := s.Get(sess.ID)
	if !ok || got != sess {
		t.Fatal("expected to find the created session")
	}
	if _, ok := s.Get(""); ok {
		t.Fatal("empty id must not match")
	}
	if _, ok := s.Get("nope"); ok {
		t.Fatal("unknown id must not match")
	}
	if !s.Delete(sess.ID) {
		t.Fatal("expected delete to report removal")
	}
	if _, ok := s.Get(sess.ID); ok {
		t.Fatal("session still present after delete")
	}
}

func TestStore_EvictsOldest(t *testing.T) {
	s := NewStore(2, time.Hour, nil)
	a := s.Create(nil)
	b := s.Create(nil)
	c := s.Create(nil)

	if _, ok := s.Get(a.ID); ok {
		t.Fatal("expected oldest session to be evicted")
	}
	for _, sess := range []*Session{b, c} {
		if _, ok := s.Get(sess.ID); !ok {
			t.Fatalf("expected session %s to remain", sess.ID)
		}
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", s.Len())
	}
}

func TestStore_Expires(t *testing.T) {
	s := NewStore(10, 20*time.Millisecond, nil)
	sess := s.Create(nil)
	time.Sleep(60 * time.Millisecond)
	if _, ok := s.Get(sess.ID); ok {
		t.Fatal("expected session to expire")
	}
}

func TestSession_UpdateStoresReturnedState(t *testing.T) {
	sess := NewStore(10, time.Hour, nil).Create(nil)

	next, err := sess.Update(func(_ *planner.Planner, st planner.State) (planner.State, error) {
		st.PlanID = "2026-10-19-stay-fit-01"
		return st, nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if next.PlanID != "2026-10-19-stay-fit-01" || sess.State().PlanID != next.PlanID {
		t.Fatalf("state not stored: %+v", sess.State())
	}

	boom := errors.New("boom")
	_, err = sess.Update(func(_ *planner.Planner, st planner.State) (planner.State, error) {
		return st, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected error to pass through, got %v", err)
	}
	if sess.State().PlanID != "2026-10-19-stay-fit-01" {
		t.Fatal("failed update must keep the previous state")
	}
}

func TestSession_UpdateSerializes(t *testing.T) {
	sess := NewStore(10, time.Hour, nil).Create(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = sess.Update(func(_ *planner.Planner, st planner.State) (planner.State, error) {
				st.History = append(st.History[:len(st.History):len(st.History)], planner.QAPair{Question: "q"})
				return st, nil
			})
		}()
	}
	wg.Wait()
	if n := len(sess.State().History); n != 50 {
		t.Fatalf("expected 50 entries, got %d", n)
	}
}

func TestStore_GetDoesNotKeepCallerID(t *testing.T) {
	s := NewStore(10, time.Hour, nil)
	sess := s.Create(nil)

	// Request cookies arrive as strings backed by a reused buffer.
	buf := []byte(sess.ID)
	borrowed := unsafe.String(&buf[0], len(buf))
	if _, ok := s.Get(borrowed); !ok {
		t.Fatal("expected lookup by borrowed id to hit")
	}
	for i := range buf {
		buf[i] = 'x'
	}

	if _, ok := s.Get(sess.ID); !ok {
		t.Fatal("session lost after the caller's buffer was reused")
	}
}
