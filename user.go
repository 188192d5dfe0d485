package workbook

import (
	"encoding/json"

	"github.com/google/uuid"
)

// User is an account of the application, identified by an alphanumeric
// username.
//
// User is an immutable value, comparable with ==.
type User struct {
	id       uuid.UUID
	username string
	email    string
	name     string
	address  string
}

// NewUser returns a validated User. A random id is generated when id is
// uuid.Nil. No field may be blank.
func NewUser(id uuid.UUID, username, email, name, address string) (User, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	if err := validateUsername(username); err != nil {
		return User{}, err
	}
	if err := validateEmail(email); err != nil {
		return User{}, err
	}
	if err := requireNonBlank("name", name); err != nil {
		return User{}, err
	}
	if err := requireNonBlank("address", address); err != nil {
		return User{}, err
	}
	return User{id: id, username: username, email: email, name: name, address: address}, nil
}

func (u User) ID() uuid.UUID    { return u.id }
func (u User) Username() string { return u.username }
func (u User) Email() string    { return u.email }
func (u User) Name() string     { return u.name }
func (u User) Address() string  { return u.address }

// WithUsername returns a copy of u with another username. Like the other
// With methods, u is unchanged and the zero User is returned on error.
func (u User) WithUsername(username string) (User, error) {
	if err := validateUsername(username); err != nil {
		return User{}, err
	}
	u.username = username
	return u, nil
}

// WithEmail returns a copy of u with another email.
func (u User) WithEmail(email string) (User, error) {
	if err := validateEmail(email); err != nil {
		return User{}, err
	}
	u.email = email
	return u, nil
}

// WithName returns a copy of u with another name.
func (u User) WithName(name string) (User, error) {
	if err := requireNonBlank("name", name); err != nil {
		return User{}, err
	}
	u.name = name
	return u, nil
}

// WithAddress returns a copy of u with another address.
func (u User) WithAddress(address string) (User, error) {
	if err := requireNonBlank("address", address); err != nil {
		return User{}, err
	}
	u.address = address
	return u, nil
}

type jsonUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
}

func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonUser{ID: u.id, Username: u.username, Email: u.email, Name: u.name, Address: u.address})
}

// UnmarshalJSON validates the decoded fields like NewUser does.
func (u *User) UnmarshalJSON(data []byte) error {
	var j jsonUser
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	v, err := NewUser(j.ID, j.Username, j.Email, j.Name, j.Address)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
