package service

import (
	"context"
	"sort"
	"strings"

	"spam_detector/internal/model"
	"spam_detector/internal/repository"
)

// In-memory repository fakes. Each one counts its calls so tests can assert
// that some code paths never touch the store.

type fakeUserRepo struct {
	users  []model.User
	nextID int
	calls  int
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.calls++
	for _, u := range f.users {
		if u.PhoneNumber == user.PhoneNumber {
			return repository.ErrDuplicate
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*model.User, error) {
	f.calls++
	var found *model.User
	for i := range f.users {
		u := f.users[i]
		if u.PhoneNumber == phone && (found == nil || u.ID < found.ID) {
			found = &u
		}
	}
	return found, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int) (*model.User, error) {
	f.calls++
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int, error) {
	f.calls++
	return len(f.users), nil
}

func (f *fakeUserRepo) FindByFullNameContains(_ context.Context, query string) ([]model.User, error) {
	f.calls++
	var out []model.User
	for _, u := range f.users {
		if strings.Contains(strings.ToLower(u.FullName()), strings.ToLower(query)) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) isRegistered(phone string) bool {
	for _, u := range f.users {
		if u.PhoneNumber == phone {
			return true
		}
	}
	return false
}

type fakeContactRepo struct {
	contacts []model.Contact
	users    *fakeUserRepo // for the registered-number exclusion
	nextID   int
	calls    int
}

func (f *fakeContactRepo) Create(_ context.Context, contact *model.Contact) error {
	f.calls++
	for _, c := range f.contacts {
		if c.UserID == contact.UserID && c.PhoneNumber == contact.PhoneNumber {
			return repository.ErrDuplicate
		}
	}
	f.nextID++
	contact.ID = f.nextID
	f.contacts = append(f.contacts, *contact)
	return nil
}

func (f *fakeContactRepo) CreateAll(ctx context.Context, contacts []*model.Contact) error {
	f.calls++
	before := len(f.contacts)
	for _, c := range contacts {
		if err := f.Create(ctx, c); err != nil {
			f.contacts = f.contacts[:before] // roll back
			return err
		}
	}
	return nil
}

func (f *fakeContactRepo) FindByOwner(_ context.Context, ownerID int) ([]model.Contact, error) {
	f.calls++
	var out []model.Contact
	for _, c := range f.contacts {
		if c.UserID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContactRepo) FindUnregisteredByNameContains(_ context.Context, query string) ([]model.Contact, error) {
	f.calls++
	var out []model.Contact
	for _, c := range f.contacts {
		if !strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) {
			continue
		}
		if f.users != nil && f.users.isRegistered(c.PhoneNumber) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeContactRepo) FindByPhone(_ context.Context, phone string) ([]model.Contact, error) {
	f.calls++
	var out []model.Contact
	for _, c := range f.contacts {
		if c.PhoneNumber == phone {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeContactRepo) ExistsForOwnerAndPhone(_ context.Context, ownerID int, phone string) (bool, error) {
	f.calls++
	for _, c := range f.contacts {
		if c.UserID == ownerID && c.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

type fakeSpamReportRepo struct {
	reports []model.SpamReport
	nextID  int
	calls   int
}

func (f *fakeSpamReportRepo) Create(_ context.Context, report *model.SpamReport) error {
	f.calls++
	for _, r := range f.reports {
		if r.ReporterID == report.ReporterID && r.PhoneNumber == report.PhoneNumber {
			return repository.ErrDuplicate
		}
	}
	f.nextID++
	report.ID = f.nextID
	f.reports = append(f.reports, *report)
	return nil
}

func (f *fakeSpamReportRepo) FindByReporter(_ context.Context, reporterID int) ([]model.SpamReport, error) {
	f.calls++
	var out []model.SpamReport
	for _, r := range f.reports {
		if r.ReporterID == reporterID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSpamReportRepo) CountByPhone(_ context.Context, phone string) (int, error) {
	f.calls++
	count := 0
	for _, r := range f.reports {
		if r.PhoneNumber == phone {
			count++
		}
	}
	return count, nil
}

func (f *fakeSpamReportRepo) CountsGroupedByPhone(_ context.Context) (map[string]int, error) {
	f.calls++
	counts := make(map[string]int)
	for _, r := range f.reports {
		counts[r.PhoneNumber]++
	}
	return counts, nil
}

var (
	_ repository.UserRepository       = (*fakeUserRepo)(nil)
	_ repository.ContactRepository    = (*fakeContactRepo)(nil)
	_ repository.SpamReportRepository = (*fakeSpamReportRepo)(nil)
)
