package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UserID identifies a directory record. The directory API sends ids as
// numbers, some mirrors send them as strings; both decode to the same value.
type UserID string

// UnmarshalJSON accepts a JSON number or a JSON string
func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("user id is empty")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
		*id = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}
	*id = UserID(n.String())
	return nil
}

// User represents one directory record
type User struct {
	ID       UserID  `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"` // handle, rendered as @username
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Address  Address `json:"address"`
	Company  Company `json:"company"`
}

// Address is the postal address of a user; only shown in the detail pager
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// Company is the organization a user is affiliated with
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// IsZero reports whether no address field is set
func (a Address) IsZero() bool {
	return a.Street == "" && a.Suite == "" && a.City == "" && a.Zipcode == ""
}
