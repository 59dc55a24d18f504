package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spam_detector/internal/model"
	"spam_detector/internal/repository"
	"spam_detector/internal/utils"
)

var ErrDuplicateContact = errors.New("contact with this phone number already exists for this user")

// ContactService provides contact book operations
type ContactService interface {
	ListContacts(ctx context.Context, ownerID int) ([]model.Contact, error)
	CreateContact(ctx context.Context, ownerID int, req model.CreateContactRequest) (*model.Contact, error)
	BulkCreateContacts(ctx context.Context, ownerID int, req model.BulkCreateContactsRequest) (*model.BulkCreateContactsResult, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) ListContacts(ctx context.Context, ownerID int) ([]model.Contact, error) {
	contacts, err := s.contactRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}
	return contacts, nil
}

func (s *contactService) CreateContact(ctx context.Context, ownerID int, req model.CreateContactRequest) (*model.Contact, error) {
	if !utils.IsValidPhoneNumber(req.PhoneNumber) {
		return nil, &ValidationError{Field: "phone_number", Message: phoneFormatMessage}
	}

	contact := &model.Contact{
		UserID:      ownerID,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		CreatedAt:   time.Now(),
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateContact
		}
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

// BulkCreateContacts imports a batch of contacts. In atomic mode every entry
// must validate and insert, or nothing is persisted. In the default mode
// each entry is inserted on its own and failures are collected per entry.
func (s *contactService) BulkCreateContacts(ctx context.Context, ownerID int, req model.BulkCreateContactsRequest) (*model.BulkCreateContactsResult, error) {
	if req.Atomic {
		return s.bulkCreateAtomic(ctx, ownerID, req.Contacts)
	}
	return s.bulkCreatePartial(ctx, ownerID, req.Contacts)
}

func (s *contactService) bulkCreateAtomic(ctx context.Context, ownerID int, entries []model.CreateContactRequest) (*model.BulkCreateContactsResult, error) {
	contacts := make([]*model.Contact, 0, len(entries))
	now := time.Now()
	for _, e := range entries {
		if !utils.IsValidPhoneNumber(e.PhoneNumber) {
			return nil, &ValidationError{Field: "phone_number", Message: phoneFormatMessage}
		}
		contacts = append(contacts, &model.Contact{
			UserID:      ownerID,
			Name:        e.Name,
			PhoneNumber: e.PhoneNumber,
			CreatedAt:   now,
		})
	}

	if err := s.contactRepo.CreateAll(ctx, contacts); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateContact
		}
		return nil, fmt.Errorf("failed to bulk create contacts: %w", err)
	}

	result := &model.BulkCreateContactsResult{Created: make([]model.Contact, 0, len(contacts))}
	for _, c := range contacts {
		result.Created = append(result.Created, *c)
	}
	return result, nil
}

func (s *contactService) bulkCreatePartial(ctx context.Context, ownerID int, entries []model.CreateContactRequest) (*model.BulkCreateContactsResult, error) {
	result := &model.BulkCreateContactsResult{Created: []model.Contact{}}
	now := time.Now()
	for i, e := range entries {
		if !utils.IsValidPhoneNumber(e.PhoneNumber) {
			result.Failed = append(result.Failed, model.BulkContactFailure{
				Index:       i,
				PhoneNumber: e.PhoneNumber,
				Error:       phoneFormatMessage,
			})
			continue
		}

		contact := &model.Contact{
			UserID:      ownerID,
			Name:        e.Name,
			PhoneNumber: e.PhoneNumber,
			CreatedAt:   now,
		}
		if err := s.contactRepo.Create(ctx, contact); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				result.Failed = append(result.Failed, model.BulkContactFailure{
					Index:       i,
					PhoneNumber: e.PhoneNumber,
					Error:       ErrDuplicateContact.Error(),
				})
				continue
			}
			// A store failure mid-batch is not an entry problem; stop here.
			return nil, fmt.Errorf("failed to create contact in batch: %w", err)
		}
		result.Created = append(result.Created, *contact)
	}
	return result, nil
}
