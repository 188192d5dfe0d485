package workbook

import (
	"encoding/json"

	"github.com/etnz/workbook/date"
	"github.com/google/uuid"
)

// AccountHolder is the person owning a BankAccount.
//
// AccountHolder is an immutable value: the With methods return an updated
// copy. Two holders are equal (==) when all their fields are equal.
type AccountHolder struct {
	id       uuid.UUID
	name     string
	surname  string
	birthday date.Date
}

// NewAccountHolder returns a validated AccountHolder.
// A random id is generated when id is uuid.Nil. Name and surname must not be
// empty and birthday must be strictly before today.
func NewAccountHolder(id uuid.UUID, name, surname string, birthday date.Date) (AccountHolder, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	if err := requireNonBlank("name", name); err != nil {
		return AccountHolder{}, err
	}
	if err := requireNonBlank("surname", surname); err != nil {
		return AccountHolder{}, err
	}
	if err := validateBirthday(birthday); err != nil {
		return AccountHolder{}, err
	}
	return AccountHolder{id: id, name: name, surname: surname, birthday: birthday}, nil
}

func (h AccountHolder) ID() uuid.UUID       { return h.id }
func (h AccountHolder) Name() string        { return h.name }
func (h AccountHolder) Surname() string     { return h.surname }
func (h AccountHolder) Birthday() date.Date { return h.birthday }

// FullName returns "name surname".
func (h AccountHolder) FullName() string { return h.name + " " + h.surname }

// IsZero reports whether h is the zero value, i.e. was not built by NewAccountHolder.
func (h AccountHolder) IsZero() bool { return h == AccountHolder{} }

// WithName returns a copy of h with another name. h is unchanged; the zero
// AccountHolder is returned with the error when name is blank.
func (h AccountHolder) WithName(name string) (AccountHolder, error) {
	if err := requireNonBlank("name", name); err != nil {
		return AccountHolder{}, err
	}
	h.name = name
	return h, nil
}

// WithSurname returns a copy of h with another surname.
func (h AccountHolder) WithSurname(surname string) (AccountHolder, error) {
	if err := requireNonBlank("surname", surname); err != nil {
		return AccountHolder{}, err
	}
	h.surname = surname
	return h, nil
}

// WithBirthday returns a copy of h with another birthday, which must be in the past.
func (h AccountHolder) WithBirthday(birthday date.Date) (AccountHolder, error) {
	if err := validateBirthday(birthday); err != nil {
		return AccountHolder{}, err
	}
	h.birthday = birthday
	return h, nil
}

type jsonAccountHolder struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Surname  string    `json:"surname"`
	Birthday date.Date `json:"birthday"`
}

func (h AccountHolder) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonAccountHolder{ID: h.id, Name: h.name, Surname: h.surname, Birthday: h.birthday})
}

// UnmarshalJSON validates the decoded fields like NewAccountHolder does.
func (h *AccountHolder) UnmarshalJSON(data []byte) error {
	var j jsonAccountHolder
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	v, err := NewAccountHolder(j.ID, j.Name, j.Surname, j.Birthday)
	if err != nil {
		return err
	}
	*h = v
	return nil
}
