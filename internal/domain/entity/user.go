package entity

import "time"

type User struct {
	ID               string    `json:"id" firestore:"id"`
	Email            string    `json:"email" firestore:"email"`
	Username         string    `json:"username" firestore:"username"`
	FirstName        string    `json:"first_name,omitempty" firestore:"firstName,omitempty"`
	LastName         string    `json:"last_name,omitempty" firestore:"lastName,omitempty"`
	IsBuyer          bool      `json:"is_buyer" firestore:"isBuyer"`
	IsSeller         bool      `json:"is_seller" firestore:"isSeller"`
	IsAdmin          bool      `json:"is_admin" firestore:"isAdmin"`
	ProfilePicture   string    `json:"profile_picture,omitempty" firestore:"profilePicture,omitempty"`
	About            string    `json:"about,omitempty" firestore:"about,omitempty"`
	Interests        string    `json:"interests,omitempty" firestore:"interests,omitempty"`
	GraduationDate   string    `json:"graduation_date,omitempty" firestore:"graduationDate,omitempty"`
	CompanyName      string    `json:"company_name,omitempty" firestore:"companyName,omitempty"`
	DisplayAsCompany bool      `json:"display_as_company" firestore:"displayAsCompany"`
	PhoneNumber      string    `json:"phone_number,omitempty" firestore:"phoneNumber,omitempty"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updated_at" firestore:"updatedAt"`
}

// DisplayName mirrors how the storefront labels a user: real name first,
// company name when the user opts in, email/username as fallback.
func (u *User) DisplayName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	if u.CompanyName != "" && u.DisplayAsCompany {
		return u.CompanyName
	}
	if u.Email != "" {
		return u.Email
	}
	return u.Username
}
