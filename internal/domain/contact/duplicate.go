package contact

import (
	"sort"
	"strings"
	"time"
)

const minGroupPhoneDigits = 10

type DuplicateType string

const (
	DuplicateByEmail       DuplicateType = "email"
	DuplicateByPhone       DuplicateType = "phone"
	DuplicateByNameCompany DuplicateType = "name_company"
)

// ContactSnapshot is the redacted view of a persisted contact used for duplicate review.
type ContactSnapshot struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CompanyName string    `json:"company,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DuplicateGroup struct {
	Type       DuplicateType     `json:"type"`
	Field      string            `json:"field"`
	Keep       string            `json:"keep"`
	Duplicates []string          `json:"duplicates"`
	Contacts   []ContactSnapshot `json:"contacts"`
}

type groupPass struct {
	kind DuplicateType
	key  func(ContactSnapshot) (string, bool)
	// label turns a grouping key into the displayed field value.
	label func(string) string
}

var groupPasses = []groupPass{
	{
		kind:  DuplicateByEmail,
		key:   emailGroupKey,
		label: identity,
	},
	{
		kind:  DuplicateByPhone,
		key:   phoneGroupKey,
		label: identity,
	},
	{
		kind: DuplicateByNameCompany,
		key:  nameCompanyGroupKey,
		label: func(key string) string {
			return strings.ReplaceAll(key, "_", " ")
		},
	},
}

// GroupDuplicates partitions contacts into duplicate groups with three passes: email, phone, then
// name+company. A contact placed in a group is not considered by later passes. Within a group the
// earliest created contact is kept.
func GroupDuplicates(contacts []ContactSnapshot) []DuplicateGroup {
	ordered := make([]ContactSnapshot, len(contacts))
	copy(ordered, contacts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	grouped := make(map[string]bool, len(ordered))
	groups := make([]DuplicateGroup, 0)

	for _, pass := range groupPasses {
		buckets := make(map[string][]ContactSnapshot)
		keys := make([]string, 0)

		for _, c := range ordered {
			if grouped[c.ID] {
				continue
			}
			key, ok := pass.key(c)
			if !ok {
				continue
			}
			if _, seen := buckets[key]; !seen {
				keys = append(keys, key)
			}
			buckets[key] = append(buckets[key], c)
		}

		for _, key := range keys {
			members := buckets[key]
			if len(members) < 2 {
				continue
			}

			duplicates := make([]string, 0, len(members)-1)
			for _, m := range members[1:] {
				duplicates = append(duplicates, m.ID)
			}
			for _, m := range members {
				grouped[m.ID] = true
			}

			groups = append(groups, DuplicateGroup{
				Type:       pass.kind,
				Field:      pass.label(key),
				Keep:       members[0].ID,
				Duplicates: duplicates,
				Contacts:   members,
			})
		}
	}

	return groups
}

// CountDuplicates sums the non-kept members of every group.
func CountDuplicates(groups []DuplicateGroup) int {
	total := 0
	for _, g := range groups {
		total += len(g.Duplicates)
	}
	return total
}

func emailGroupKey(c ContactSnapshot) (string, bool) {
	if c.Email == "" {
		return "", false
	}
	return strings.ToLower(c.Email), true
}

func phoneGroupKey(c ContactSnapshot) (string, bool) {
	digits := PhoneDigits(c.Phone)
	if len(digits) < minGroupPhoneDigits {
		return "", false
	}
	return digits, true
}

func nameCompanyGroupKey(c ContactSnapshot) (string, bool) {
	if c.FirstName == "" || c.LastName == "" || c.CompanyName == "" {
		return "", false
	}
	return strings.ToLower(c.FirstName) + "_" + strings.ToLower(c.LastName) + "_" + strings.ToLower(c.CompanyName), true
}

func identity(s string) string {
	return s
}
