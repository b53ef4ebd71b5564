package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is a registered account. The four named profile columns are legacy
// top-level fields from before profiles became a free-form subdocument;
// the compiler checks them first. Everything newer lives in Profile.
type User struct {
	ID             string                 `json:"id" bson:"_id,omitempty"`
	Email          string                 `json:"email" bson:"email"`
	Name           string                 `json:"name" bson:"name"`
	Verified       bool                   `json:"verified" bson:"verified"`
	TargetCountry  string                 `json:"targetCountry,omitempty" bson:"targetCountry,omitempty"`
	Goal           string                 `json:"goal,omitempty" bson:"goal,omitempty"`
	DesiredCourse  string                 `json:"desiredCourse,omitempty" bson:"desiredCourse,omitempty"`
	BachelorStream string                 `json:"bachelorStream,omitempty" bson:"bachelorStream,omitempty"`
	Profile        map[string]interface{} `json:"profile,omitempty" bson:"profile,omitempty"`
	CreatedAt      time.Time              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt" bson:"updatedAt"`
}

// UserClaims are JWT claims issued after OTP verification.
type UserClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Email   string                 `json:"email"`
	Name    string                 `json:"name"`
	Profile map[string]interface{} `json:"profile,omitempty"`
}

// LoginRequest asks for a fresh passcode for an existing account.
type LoginRequest struct {
	Email string `json:"email"`
}

// VerifyRequest is the request body for passcode verification.
type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// VerifyResponse is returned after successful verification.
type VerifyResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
