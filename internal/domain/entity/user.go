// Package entity contains the core business objects of the project.
package entity

// User is read-only seed data used for login.
// The password is stored and compared in plain text.
type User struct {
	ID       int   `json:"id"`
	Email    Value `json:"email,omitempty"`
	Password Value `json:"password,omitempty"`
	Name     Value `json:"name,omitempty"`
	Extra    Extra `json:"-"`
}

// RecordID implements Record.
func (u User) RecordID() int { return u.ID }

// MarshalJSON implements json.Marshaler.
func (u User) MarshalJSON() ([]byte, error) {
	type plain User

	return marshalWithExtra(plain(u), u.Extra)
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var decoded plain
	extra, err := unmarshalWithExtra(data, &decoded, "user")
	if err != nil {
		return err
	}
	decoded.Extra = extra
	*u = User(decoded)

	return nil
}
