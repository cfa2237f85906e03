package contact

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/contact-import/internal/domain/contact"
)

type contactFinder interface {
	FindOne(ctx context.Context, ownerID string, match domain.ContactMatch) (*domain.Contact, error)
}

// duplicateStrategy is one pre-insert lookup. applies decides whether the drafts carry enough
// data for the lookup; match builds the predicate.
type duplicateStrategy struct {
	name    string
	applies func(c domain.ContactDraft, co domain.CompanyDraft) bool
	match   func(c domain.ContactDraft, co domain.CompanyDraft) domain.ContactMatch
}

// preInsertStrategies run in order; the first hit wins. Email is compared as written, phone by
// its digits with no length floor.
var preInsertStrategies = []duplicateStrategy{
	{
		name: "email",
		applies: func(c domain.ContactDraft, _ domain.CompanyDraft) bool {
			return c.Email != ""
		},
		match: func(c domain.ContactDraft, _ domain.CompanyDraft) domain.ContactMatch {
			return domain.ContactMatch{Email: c.Email}
		},
	},
	{
		name: "phone",
		applies: func(c domain.ContactDraft, _ domain.CompanyDraft) bool {
			return c.Email == "" && domain.PhoneDigits(c.Phone) != ""
		},
		match: func(c domain.ContactDraft, _ domain.CompanyDraft) domain.ContactMatch {
			return domain.ContactMatch{PhoneDigits: domain.PhoneDigits(c.Phone)}
		},
	},
	{
		name: "name_company",
		applies: func(c domain.ContactDraft, co domain.CompanyDraft) bool {
			return c.FirstName != "" && c.LastName != "" && co.Name != ""
		},
		match: func(c domain.ContactDraft, co domain.CompanyDraft) domain.ContactMatch {
			return domain.ContactMatch{FirstName: c.FirstName, LastName: c.LastName, CompanyName: co.Name}
		},
	},
}

// DuplicateHit names the strategy that matched and the existing contact.
type DuplicateHit struct {
	Strategy string
	Existing *domain.Contact
}

type DuplicateChecker struct {
	contacts   contactFinder
	strategies []duplicateStrategy
}

func NewDuplicateChecker(contacts contactFinder) *DuplicateChecker {
	return &DuplicateChecker{contacts: contacts, strategies: preInsertStrategies}
}

// Check looks for an existing contact of ownerID matching the drafts. It returns nil when
// no applicable strategy finds one.
func (d *DuplicateChecker) Check(ctx context.Context, ownerID string, c domain.ContactDraft, co domain.CompanyDraft) (*DuplicateHit, error) {
	for _, strategy := range d.strategies {
		if !strategy.applies(c, co) {
			continue
		}

		existing, err := d.contacts.FindOne(ctx, ownerID, strategy.match(c, co))
		if errors.Is(err, domain.ErrContactNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("check %s duplicate: %w", strategy.name, err)
		}
		return &DuplicateHit{Strategy: strategy.name, Existing: existing}, nil
	}

	return nil, nil
}
