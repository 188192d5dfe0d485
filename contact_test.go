package workbook

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContact(t *testing.T) {
	c, err := NewContact(uuid.Nil, "Peter", "0173 4542312", "klaus.peter@test.de")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, c.ID())
	assert.Equal(t, "Peter", c.Name())
	assert.Equal(t, "0173 4542312", c.PhoneNumber(), "the phone number is kept as given")
	assert.Equal(t, "klaus.peter@test.de", c.Email())

	for _, name := range []string{"", "   ", "\t"} {
		_, err := NewContact(uuid.Nil, name, "0173 4542312", "klaus.peter@test.de")
		assert.ErrorIs(t, err, ErrInvalidArgument, "name %q", name)
	}
	_, err = c.WithName(" ")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewContact_PhoneNumbers(t *testing.T) {
	testCases := []struct {
		phone string
		valid bool
	}{
		{"0173 4542312", true},
		{"+49 173 4542312", true},
		{"030123456", true},
		{"01", false},
		{"0049 173 4542312", false},
		{"+33 6 12 34 56 78", false},
		{"0173-4542312", false},
		{"0123456789012345", true},
		{"01234567890123456", false},
		{"phone", false},
		{"", false},
	}
	for _, tc := range testCases {
		t.Run(tc.phone, func(t *testing.T) {
			_, err := NewContact(uuid.Nil, "Peter", tc.phone, "peter@test.de")
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidArgument)
			}
		})
	}
}

func TestNewContact_Emails(t *testing.T) {
	testCases := []struct {
		email string
		valid bool
	}{
		{"klaus.peter@test.de", true},
		{"a_b+c%d-e@sub.domain.org", true},
		{"peter@test", false},
		{"peter@test.d", false},
		{"@test.de", false},
		{"peter test@test.de", false},
		{"   ", false},
		{"", false},
	}
	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			_, err := NewContact(uuid.Nil, "Peter", "0173 4542312", tc.email)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidArgument)
			}
		})
	}
}

func TestContact_With(t *testing.T) {
	c, err := NewContact(uuid.Nil, "Peter", "0173 4542312", "klaus.peter@test.de")
	require.NoError(t, err)
	copied := c

	renamed, err := c.WithName("Klaus")
	require.NoError(t, err)
	assert.Equal(t, "Klaus", renamed.Name())
	assert.Equal(t, c.ID(), renamed.ID())

	rephoned, err := c.WithPhoneNumber("+49 30 123456")
	require.NoError(t, err)
	assert.Equal(t, "+49 30 123456", rephoned.PhoneNumber())

	remailed, err := c.WithEmail("peter@test.com")
	require.NoError(t, err)
	assert.Equal(t, "peter@test.com", remailed.Email())

	_, err = c.WithName("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = c.WithPhoneNumber("12")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = c.WithEmail("nope")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, copied, c)
	assert.NotEqual(t, c, renamed)
}

func TestContact_JSON(t *testing.T) {
	c, err := NewContact(uuid.Nil, "Peter", "0173 4542312", "klaus.peter@test.de")
	require.NoError(t, err)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+c.ID().String()+`","name":"Peter","phoneNumber":"0173 4542312","email":"klaus.peter@test.de"}`, string(data))

	var got Contact
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, c, got)

	err = json.Unmarshal([]byte(`{"id":"`+c.ID().String()+`","name":"Peter","phoneNumber":"12","email":"klaus.peter@test.de"}`), &got)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
