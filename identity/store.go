package identity

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/skillsenselab/authd/fault"
	"github.com/skillsenselab/authd/logger"
	"github.com/skillsenselab/authd/provider"
)

// Store is the authoritative mapping of identity name to record. It is
// constructed at startup and passed to every operation; there is no
// module-level registry.
//
// Mutations take the exclusive lock only around the map write itself, so a
// provider Commit performing slow work never runs under the lock. Records
// are inserted fully formed; readers never observe a partial record.
type Store struct {
	mu        sync.RWMutex
	providers *provider.Registry
	records   map[string]*Record
	log       *logger.Logger
}

// NewStore creates an empty store resolving providers from the given
// registry.
func NewStore(providers *provider.Registry, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Global()
	}
	return &Store{
		providers: providers,
		records:   make(map[string]*Record),
		log:       log.WithComponent("identity"),
	}
}

// Add validates the spec in creation mode, commits the credentials through
// the named provider, and only then inserts the completed record. Commit
// failures (including panics) leave the store unchanged.
func (s *Store) Add(spec Spec, opts Options) (*Record, *fault.Error) {
	opts.NewIdentity = true
	clean, f := s.ValidateSpec(spec, opts)
	if f != nil {
		return nil, f
	}

	p, f := s.providers.Resolve(clean.AuthType)
	if f != nil {
		return nil, f
	}
	committed, err := commit(p, clean.Auth)
	if err != nil {
		s.log.Error("credential commit failed", logger.ErrorFields("add", err))
		return nil, fault.CommitFailed(err)
	}

	rec := &Record{
		ID:        uuid.NewString(),
		Name:      clean.Name,
		Auth:      committed,
		Functions: clean.Functions,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-check: another Add may have won the name between validation and here.
	if _, exists := s.records[rec.Name]; exists {
		return nil, fault.Requestf("name %q is already in use", rec.Name)
	}
	s.records[rec.Name] = rec

	s.log.Info("identity added", logger.Fields(
		logger.FieldIdentity, rec.Name,
		logger.FieldProvider, clean.AuthType,
		"functions", len(rec.Functions),
	))
	return rec.Clone(), nil
}

// Set validates the spec in update mode and applies each provided, validated
// field to the existing record. Absent fields are left untouched; replacing
// auth re-runs the provider's Commit.
func (s *Store) Set(spec Spec, opts Options) (*Record, *fault.Error) {
	opts.NewIdentity = false
	clean, f := s.ValidateSpec(spec, opts)
	if f != nil {
		return nil, f
	}

	var committed provider.Credentials
	if clean.Auth != nil {
		p, f := s.providers.Resolve(clean.AuthType)
		if f != nil {
			return nil, f
		}
		var err error
		committed, err = commit(p, clean.Auth)
		if err != nil {
			s.log.Error("credential commit failed", logger.ErrorFields("set", err))
			return nil, fault.CommitFailed(err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[spec.Name]
	if !ok {
		return nil, fault.Requestf("no such user %q", spec.Name)
	}
	if committed != nil {
		rec.Auth = committed
	}
	if clean.Functions != nil {
		rec.Functions = clean.Functions
	}

	s.log.Info("identity updated", logger.Fields(logger.FieldIdentity, rec.Name))
	return rec.Clone(), nil
}

// Remove deletes the named record. Outstanding tokens for the identity stay
// structurally valid until their own expiry.
func (s *Store) Remove(name string) *fault.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, f := s.validateSpec(Spec{Name: name}, Options{}); f != nil {
		return f
	}
	delete(s.records, name)
	s.log.Info("identity removed", logger.Fields(logger.FieldIdentity, name))
	return nil
}

// Authenticate looks up the named identity and delegates the credential
// comparison to its provider. The provider call runs outside the store lock.
// On success it returns a snapshot of the record for token issuance.
func (s *Store) Authenticate(spec Spec) (*Record, *fault.Error) {
	s.mu.RLock()
	_, f := s.validateSpec(Spec{Name: spec.Name}, Options{})
	if f != nil {
		s.mu.RUnlock()
		return nil, f
	}
	rec := s.records[spec.Name].Clone()
	s.mu.RUnlock()

	p, f := s.providers.Resolve(rec.Auth.Type())
	if f != nil {
		return nil, f
	}
	if f := p.Authenticate(rec.Auth, spec.Auth); f != nil {
		return nil, f
	}
	return rec, nil
}

// Get returns a snapshot of the named record.
func (s *Store) Get(name string) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[name]
	if !ok {
		return nil, false
	}
	return rec.Clone(), true
}

// Len returns the number of registered identities.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Names returns all registered identity names, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// commit invokes the provider's Commit, converting a panic into an ordinary
// error so a provider cannot crash the host process.
func commit(p provider.Provider, clean provider.Credentials) (committed provider.Credentials, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider commit panicked: %v", r)
		}
	}()
	return p.Commit(clean)
}
