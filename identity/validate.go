package identity

import (
	"github.com/skillsenselab/authd/fault"
	"github.com/skillsenselab/authd/validation"
)

// ValidateSpec checks a proposed identity specification against structural
// rules, delegating credential-shape checks to the named provider. It is the
// single entry point through which caller input may reach the store.
//
// Checks run in order and short-circuit on the first failure: name format,
// existence (absent in creation mode, present otherwise), auth details,
// functions. The returned Clean carries only fields that passed.
func (s *Store) ValidateSpec(spec Spec, opts Options) (*Clean, *fault.Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.validateSpec(spec, opts)
}

// validateSpec assumes the caller holds at least a read lock.
func (s *Store) validateSpec(spec Spec, opts Options) (*Clean, *fault.Error) {
	if f := validation.New().
		Required("name", spec.Name).
		Pattern("name", spec.Name, NamePattern).
		Fault(); f != nil {
		return nil, f
	}

	_, exists := s.records[spec.Name]
	if opts.NewIdentity && exists {
		return nil, fault.Requestf("name %q is already in use", spec.Name)
	}
	if !opts.NewIdentity && !exists {
		return nil, fault.Requestf("no such user %q", spec.Name)
	}

	clean := &Clean{Name: spec.Name}

	if spec.Auth == nil {
		if opts.NewIdentity {
			return nil, fault.Request("authentication details are required")
		}
	} else {
		p, f := s.providers.Resolve(spec.Auth.Type())
		if f != nil {
			return nil, f
		}
		cleanAuth, f := p.Validate(spec.Auth)
		if f != nil {
			return nil, f
		}
		clean.Auth = cleanAuth
		clean.AuthType = spec.Auth.Type()
	}

	if spec.Functions != nil {
		var malformed []string
		for _, fn := range spec.Functions {
			if !FunctionPattern.MatchString(fn) {
				malformed = append(malformed, fn)
			}
		}
		if len(malformed) > 0 {
			return nil, fault.RequestFields("invalid function names", malformed)
		}

		if opts.ValidFunctions != nil {
			var denied []string
			for _, fn := range spec.Functions {
				if !containsString(opts.ValidFunctions, fn) {
					denied = append(denied, fn)
				}
			}
			if len(denied) > 0 {
				return nil, fault.RequestFields("functions are not permitted", denied)
			}
		}

		clean.Functions = append([]string{}, spec.Functions...)
	} else if opts.NewIdentity {
		clean.Functions = []string{}
	}

	return clean, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
