package workbook

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Contact is an address book entry with a german phone number and an email.
//
// Contact is an immutable value, comparable with ==.
type Contact struct {
	id          uuid.UUID
	name        string
	phoneNumber string
	email       string
}

// NewContact returns a validated Contact. A random id is generated when id is
// uuid.Nil. The phone number and the email are kept as given: white spaces are
// ignored only for the validation.
func NewContact(id uuid.UUID, name, phoneNumber, email string) (Contact, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	if err := requireNonBlank("name", name); err != nil {
		return Contact{}, err
	}
	if err := validatePhoneNumber(phoneNumber); err != nil {
		return Contact{}, err
	}
	if err := validateEmail(email); err != nil {
		return Contact{}, err
	}
	return Contact{id: id, name: name, phoneNumber: phoneNumber, email: email}, nil
}

func (c Contact) ID() uuid.UUID       { return c.id }
func (c Contact) Name() string        { return c.name }
func (c Contact) PhoneNumber() string { return c.phoneNumber }
func (c Contact) Email() string       { return c.email }

// WithName returns a copy of c with another name, validated like NewContact.
func (c Contact) WithName(name string) (Contact, error) {
	return NewContact(c.id, name, c.phoneNumber, c.email)
}

// WithPhoneNumber returns a copy of c with another german phone number.
func (c Contact) WithPhoneNumber(phoneNumber string) (Contact, error) {
	return NewContact(c.id, c.name, phoneNumber, c.email)
}

// WithEmail returns a copy of c with another email.
func (c Contact) WithEmail(email string) (Contact, error) {
	return NewContact(c.id, c.name, c.phoneNumber, email)
}

type jsonContact struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
}

func (c Contact) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonContact{ID: c.id, Name: c.name, PhoneNumber: c.phoneNumber, Email: c.email})
}

// UnmarshalJSON validates the decoded fields like NewContact does.
func (c *Contact) UnmarshalJSON(data []byte) error {
	var j jsonContact
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	v, err := NewContact(j.ID, j.Name, j.PhoneNumber, j.Email)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
