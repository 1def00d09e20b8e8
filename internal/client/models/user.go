package models

// User is the authenticated member held by the session store.
type User struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Callsign   string  `json:"callsign"`
	Division   string  `json:"division"`
	Rating     string  `json:"rating"`
	Status     string  `json:"status"`
	TotalHours float64 `json:"totalHours"`
	JoinDate   string  `json:"joinDate"`
	Email      string  `json:"email,omitempty"`
}

// UserPatch is a partial update. Nil fields are left untouched.
type UserPatch struct {
	FirstName  *string  `json:"firstName,omitempty"`
	LastName   *string  `json:"lastName,omitempty"`
	Callsign   *string  `json:"callsign,omitempty"`
	Division   *string  `json:"division,omitempty"`
	Rating     *string  `json:"rating,omitempty"`
	Status     *string  `json:"status,omitempty"`
	TotalHours *float64 `json:"totalHours,omitempty"`
	JoinDate   *string  `json:"joinDate,omitempty"`
	Email      *string  `json:"email,omitempty"`
}

// Apply returns u with every non-nil field of p copied over.
func (p UserPatch) Apply(u User) User {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Callsign != nil {
		u.Callsign = *p.Callsign
	}
	if p.Division != nil {
		u.Division = *p.Division
	}
	if p.Rating != nil {
		u.Rating = *p.Rating
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.TotalHours != nil {
		u.TotalHours = *p.TotalHours
	}
	if p.JoinDate != nil {
		u.JoinDate = *p.JoinDate
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}

// FullName joins first and last name.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
