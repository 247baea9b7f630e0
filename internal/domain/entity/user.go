package entity

import "time"

// User is a registered account. Email is the unique key.
type User struct {
	Email        string    `json:"email" validate:"required"` // Unique key, also the owner reference on offerings.
	Password     string    `json:"password,omitempty"`        // Plaintext credential checked at login.
	Role         Role      `json:"role"`                      // Account type chosen at registration.
	Name         string    `json:"name"`                      // "<first> <last>".
	Phone        string    `json:"phone"`                     // Contact phone number.
	Location     string    `json:"location"`                  // Free-text region or address.
	BusinessName string    `json:"businessName,omitempty"`    // Optional business name.
	FarmSize     string    `json:"farmSize,omitempty"`        // Optional farm size (farmers).
	CreatedAt    time.Time `json:"createdAt"`                 // Registration timestamp.
}

// Sanitized returns a copy without the credential, for display.
func (u *User) Sanitized() *User {
	clone := *u
	clone.Password = ""

	return &clone
}

// DisplayName falls back to the email when no name was given.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}

	return u.Email
}

// PasswordStrength scores a password from 0 to 100 in steps of 25:
// length of at least 8, a lowercase letter, an uppercase letter and a digit.
func PasswordStrength(password string) int {
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}

	score := 0
	for _, ok := range []bool{len(password) >= 8, lower, upper, digit} {
		if ok {
			score += 25
		}
	}

	return score
}

// PasswordStrengthLabel names a PasswordStrength score: Weak below 50, Fair
// below 75, Strong otherwise.
func PasswordStrengthLabel(score int) string {
	switch {
	case score < 50:
		return "Weak"
	case score < 75:
		return "Fair"
	default:
		return "Strong"
	}
}
