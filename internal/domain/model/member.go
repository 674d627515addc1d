package model

import "time"

// 入会金。入会時に全額支払い済みとして記録する。
const EnrollmentFee = 30.0

// 会員。IDはレジストリが100始まりで採番し、退会後も再利用しない。
type Member struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	FeePaid    float64   `json:"fee_paid"`
	EnrolledAt time.Time `json:"enrolled_at"`
}
