package types

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Name is the name block of a user record
type Name struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	First string `json:"first" yaml:"first"`
	Last  string `json:"last" yaml:"last"`
}

// Location is the location block of a user record
type Location struct {
	City    string `json:"city,omitempty" yaml:"city,omitempty"`
	Country string `json:"country" yaml:"country"`
}

// User is a single record fetched from the Record Source
type User struct {
	Name     Name     `json:"name" yaml:"name"`
	Location Location `json:"location" yaml:"location"`
	Email    string   `json:"email" yaml:"email"`
	Phone    string   `json:"phone,omitempty" yaml:"phone,omitempty"`
	Nat      string   `json:"nat,omitempty" yaml:"nat,omitempty"`

	raw json.RawMessage // Original payload bytes, nil when built in code
}

// userFields avoids recursion into User's own (Un)MarshalJSON
type userFields struct {
	Name     Name     `json:"name"`
	Location Location `json:"location"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	Nat      string   `json:"nat,omitempty"`
}

// UnmarshalJSON decodes the known fields and keeps the full object
func (u *User) UnmarshalJSON(data []byte) error {
	var f userFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	u.Name = f.Name
	u.Location = f.Location
	u.Email = f.Email
	u.Phone = f.Phone
	u.Nat = f.Nat
	u.raw = bytes.Clone(data)
	return nil
}

// MarshalJSON re-emits the original payload when there is one
func (u User) MarshalJSON() ([]byte, error) {
	if len(u.raw) > 0 {
		return bytes.Clone(u.raw), nil
	}
	return json.Marshal(userFields{
		Name:     u.Name,
		Location: u.Location,
		Email:    u.Email,
		Phone:    u.Phone,
		Nat:      u.Nat,
	})
}

// FullName returns "First Last"
func (u User) FullName() string {
	switch {
	case u.Name.First == "":
		return u.Name.Last
	case u.Name.Last == "":
		return u.Name.First
	}
	return u.Name.First + " " + u.Name.Last
}

// UsersResponse is the Record Source payload
type UsersResponse struct {
	Results []User `json:"results"`
}
