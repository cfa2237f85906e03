package contact_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	domain "github.com/mohammadpnp/contact-import/internal/domain/contact"
)

// memoryStore keeps contacts and companies in memory with the same lookup rules as the
// postgres repositories.
type memoryStore struct {
	mu        sync.Mutex
	seq       int
	contacts  []domain.Contact
	companies []domain.Company

	findErr          error
	createContactErr error
	createCompanyErr error
	companyCreates   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{}
}

func (s *memoryStore) nextID() string {
	s.seq++
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", s.seq)
}

type memoryContacts struct{ *memoryStore }

type memoryCompanies struct{ *memoryStore }

func (s *memoryStore) contactRepo() memoryContacts   { return memoryContacts{s} }
func (s *memoryStore) companyRepo() memoryCompanies { return memoryCompanies{s} }

func (r memoryContacts) FindOne(ctx context.Context, ownerID string, match domain.ContactMatch) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}

	for i := range r.contacts {
		c := r.contacts[i]
		if c.OwnerID != ownerID {
			continue
		}
		if match.Email != "" && c.Email != match.Email {
			continue
		}
		if match.PhoneDigits != "" && domain.PhoneDigits(c.Phone) != match.PhoneDigits {
			continue
		}
		if match.FirstName != "" && c.FirstName != match.FirstName {
			continue
		}
		if match.LastName != "" && c.LastName != match.LastName {
			continue
		}
		if match.CompanyName != "" && r.companyName(c.CompanyID) != match.CompanyName {
			continue
		}
		return &c, nil
	}
	return nil, domain.ErrContactNotFound
}

func (s *memoryStore) companyName(id *string) string {
	if id == nil {
		return ""
	}
	for _, co := range s.companies {
		if co.ID == *id {
			return co.Name
		}
	}
	return ""
}

func (r memoryContacts) Create(ctx context.Context, c *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createContactErr != nil {
		return r.createContactErr
	}
	c.ID = r.nextID()
	c.CreatedAt = time.Date(2026, 1, 1, 0, 0, r.seq, 0, time.UTC)
	r.contacts = append(r.contacts, *c)
	return nil
}

func (r memoryContacts) Deactivate(ctx context.Context, ownerID string, ids []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for i := range r.contacts {
		for _, id := range ids {
			if r.contacts[i].ID == id && r.contacts[i].OwnerID == ownerID && r.contacts[i].IsActive {
				r.contacts[i].IsActive = false
				n++
			}
		}
	}
	return n, nil
}

func (r memoryContacts) Count(ctx context.Context, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, c := range r.contacts {
		if c.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r memoryCompanies) FindByName(ctx context.Context, ownerID, name string) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.companies {
		if r.companies[i].OwnerID == ownerID && r.companies[i].Name == name {
			co := r.companies[i]
			return &co, nil
		}
	}
	return nil, domain.ErrCompanyNotFound
}

func (r memoryCompanies) Create(ctx context.Context, c *domain.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.companyCreates++
	if r.createCompanyErr != nil {
		return r.createCompanyErr
	}
	if c.Domain != nil {
		for _, existing := range r.companies {
			if existing.Domain != nil && *existing.Domain == *c.Domain {
				return domain.ErrCompanyDomainTaken
			}
		}
	}
	c.ID = r.nextID()
	r.companies = append(r.companies, *c)
	return nil
}

func (r memoryCompanies) Count(ctx context.Context, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, c := range r.companies {
		if c.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (s *memoryStore) contactsOf(ownerID string) []domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Contact, 0)
	for _, c := range s.contacts {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out
}

type fakeImportRuns struct {
	startErr  error
	finishErr error
	started   []string
	finished  map[string]domain.ImportSummary
}

func newFakeImportRuns() *fakeImportRuns {
	return &fakeImportRuns{finished: map[string]domain.ImportSummary{}}
}

func (f *fakeImportRuns) Start(ctx context.Context, ownerID string, fileNames []string) (string, error) {
	if f.startErr != nil {
		return "", f.startErr
	}
	id := fmt.Sprintf("run-%d", len(f.started)+1)
	f.started = append(f.started, id)
	return id, nil
}

func (f *fakeImportRuns) Finish(ctx context.Context, runID string, summary domain.ImportSummary) error {
	if f.finishErr != nil {
		return f.finishErr
	}
	f.finished[runID] = summary
	return nil
}

func (f *fakeImportRuns) GetByID(ctx context.Context, ownerID, runID string) (*domain.ImportRun, error) {
	summary, ok := f.finished[runID]
	if !ok {
		return nil, domain.ErrImportRunNotFound
	}
	return &domain.ImportRun{ID: runID, OwnerID: ownerID, Status: summary.FinalStatus(), Summary: summary}, nil
}

func (f *fakeImportRuns) List(ctx context.Context, ownerID string) ([]domain.ImportRun, error) {
	runs := make([]domain.ImportRun, 0, len(f.started))
	for _, id := range f.started {
		run, err := f.GetByID(ctx, ownerID, id)
		if err != nil {
			continue
		}
		runs = append(runs, *run)
	}
	return runs, nil
}
