package identity

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/skillsenselab/authd/fault"
)

func TestStore_Add_Success(t *testing.T) {
	s := newTestStore(t, &stubProvider{})
	spec := passwordSpec("bob", "x")
	spec.Functions = []string{"api"}

	rec, f := s.Add(spec, Options{})
	if f != nil {
		t.Fatalf("Add: %v", f)
	}
	if rec.ID == "" {
		t.Error("expected a generated id")
	}
	if rec.Name != "bob" {
		t.Errorf("expected name bob, got %q", rec.Name)
	}
	if rec.Auth.String("hash") == "" {
		t.Error("expected committed credentials on the record")
	}
	if _, ok := rec.Auth["password"]; ok {
		t.Error("raw password must not be stored")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 record, got %d", s.Len())
	}
}

func TestStore_Add_GeneratedIDsAreUnique(t *testing.T) {
	s := newTestStore(t, &stubProvider{})
	a, _ := s.Add(passwordSpec("a", "x"), Options{})
	b, _ := s.Add(passwordSpec("b", "x"), Options{})
	if a.ID == b.ID {
		t.Error("record ids must never be reused")
	}
}

func TestStore_Uniqueness(t *testing.T) {
	s := newTestStore(t, &stubProvider{})
	if _, f := s.Add(passwordSpec("bob", "x"), Options{}); f != nil {
		t.Fatalf("Add: %v", f)
	}
	if _, f := s.Add(passwordSpec("bob", "y"), Options{}); f == nil {
		t.Fatal("expected duplicate name to be rejected")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 record after rejected duplicate, got %d", s.Len())
	}

	if f := s.Remove("bob"); f != nil {
		t.Fatalf("Remove: %v", f)
	}
	if _, f := s.Add(passwordSpec("bob", "z"), Options{}); f != nil {
		t.Fatalf("re-add after remove: %v", f)
	}
	if s.Len() != 1 {
		t.Errorf("expected exactly one bob, got %d", s.Len())
	}
}

func TestStore_Add_AtomicOnCommitError(t *testing.T) {
	s := newTestStore(t, &stubProvider{commitErr: errors.New("disk on fire")})
	_, f := s.Add(passwordSpec("bob", "x"), Options{})
	if f == nil {
		t.Fatal("expected a fault")
	}
	if f.State != fault.StateCommitFailed {
		t.Errorf("expected serverAuthCommitFailed, got %s", f.State)
	}
	if s.Len() != 0 {
		t.Errorf("store must be unchanged after failed commit, got %d records", s.Len())
	}
}

func TestStore_Add_AtomicOnCommitPanic(t *testing.T) {
	s := newTestStore(t, &stubProvider{commitPanic: true})
	_, f := s.Add(passwordSpec("bob", "x"), Options{})
	if f == nil {
		t.Fatal("expected a fault, not a crash")
	}
	if f.State != fault.StateCommitFailed {
		t.Errorf("expected serverAuthCommitFailed, got %s", f.State)
	}
	if s.Len() != 0 {
		t.Errorf("store must be unchanged after commit panic, got %d records", s.Len())
	}
}

func TestStore_Set_PartialUpdatePreservesAuth(t *testing.T) {
	s := newTestStore(t, &stubProvider{})
	if _, f := s.Add(passwordSpec("bob", "x"), Options{}); f != nil {
		t.Fatalf("Add: %v", f)
	}
	before, _ := s.Get("bob")

	rec, f := s.Set(Spec{Name: "bob", Functions: []string{"api"}}, Options{})
	if f != nil {
		t.Fatalf("Set: %v", f)
	}
	if !reflect.DeepEqual(rec.Functions, []string{"api"}) {
		t.Errorf("expected functions applied, got %v", rec.Functions)
	}

	after, _ := s.Get("bob")
	if !reflect.DeepEqual(before.Auth, after.Auth) {
		t.Error("auth blob must be untouched by a functions-only update")
	}
	if before.ID != after.ID {
		t.Error("id must be stable across updates")
	}
}

func TestStore_Set_ReplacesAuth(t *testing.T) {
	s := newTestStore(t, &stubProvider{})
	if _, f := s.Add(passwordSpec("bob", "x"), Options{}); f != nil {
		t.Fatalf("Add: %v", f)
	}
	before, _ := s.Get("bob")

	if _, f := s.Set(passwordSpec("bob", "new"), Options{}); f != nil {
		t.Fatalf("Set: %v", f)
	}
	after, _ := s.Get("bob")
	if reflect.DeepEqual(before.Auth, after.Auth) {
		t.Error("expected auth blob to be re-committed")
	}
	if !reflect.DeepEqual(before.Functions, after.Functions) {
		t.Error("functions must be untouched by an auth-only update")
	}
}

func TestStore_Set_CommitFailureLeavesRecordUntouched(t *testing.T) {
	p := &stubProvider{}
	s := newTestStore(t, p)
	if _, f := s.Add(passwordSpec("bob", "x"), Options{}); f != nil {
		t.Fatalf("Add: %v", f)
	}
	before, _ := s.Get("bob")

	p.commitErr = errors.New("nope")
	if _, f := s.Set(passwordSpec("bob", "new"), Options{}); f == nil {
		t.Fatal("expected a fault")
	}
	after, _ := s.Get("bob")
	if !reflect.DeepEqual(before.Auth, after.Auth) {
		t.Error("record must be untouched after failed commit")
	}
}

func TestStore_Remove_UnknownName(t *testing.T) {
	s := newTestStore(t, &stubProvider{})
	f := s.Remove("ghost")
	if f == nil || f.State != fault.StateRequest {
		t.Fatalf("expected requestError, got %v", f)
	}
}

func TestStore_Authenticate_Success(t *testing.T) {
	s := newTestStore(t, &stubProvider{})
	spec := passwordSpec("bob", "x")
	spec.Functions = []string{"api"}
	if _, f := s.Add(spec, Options{}); f != nil {
		t.Fatalf("Add: %v", f)
	}

	rec, f := s.Authenticate(passwordSpec("bob", "x"))
	if f != nil {
		t.Fatalf("Authenticate: %v", f)
	}
	if !reflect.DeepEqual(rec.Functions, []string{"api"}) {
		t.Errorf("expected granted functions on the snapshot, got %v", rec.Functions)
	}
}

func TestStore_Authenticate_WrongPassword(t *testing.T) {
	s := newTestStore(t, &stubProvider{})
	if _, f := s.Add(passwordSpec("bob", "x"), Options{}); f != nil {
		t.Fatalf("Add: %v", f)
	}
	_, f := s.Authenticate(passwordSpec("bob", "wrong"))
	if f == nil || f.State != fault.StateFailed {
		t.Fatalf("expected failed, got %v", f)
	}
}

func TestStore_Authenticate_UnknownUser(t *testing.T) {
	s := newTestStore(t, &stubProvider{})
	_, f := s.Authenticate(passwordSpec("ghost", "x"))
	if f == nil || f.State != fault.StateRequest {
		t.Fatalf("expected requestError, got %v", f)
	}
}

func TestStore_Get_ReturnsSnapshot(t *testing.T) {
	s := newTestStore(t, &stubProvider{})
	spec := passwordSpec("bob", "x")
	spec.Functions = []string{"api"}
	if _, f := s.Add(spec, Options{}); f != nil {
		t.Fatalf("Add: %v", f)
	}

	snap, ok := s.Get("bob")
	if !ok {
		t.Fatal("expected record")
	}
	snap.Functions[0] = "admin"
	snap.Auth["hash"] = "tampered"

	fresh, _ := s.Get("bob")
	if fresh.Functions[0] != "api" {
		t.Error("mutating a snapshot must not affect the store")
	}
	if fresh.Auth.String("hash") == "tampered" {
		t.Error("mutating a snapshot's auth must not affect the store")
	}
}

func TestStore_ConcurrentAddsKeepUniqueness(t *testing.T) {
	s := newTestStore(t, &stubProvider{})
	const workers = 16

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(passwordSpec("bob", "x"), Options{})
		}()
	}
	wg.Wait()

	if s.Len() != 1 {
		t.Errorf("expected exactly one record regardless of interleaving, got %d", s.Len())
	}
}
