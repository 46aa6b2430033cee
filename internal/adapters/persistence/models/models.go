package models

import (
	"time"

	"arunoday-portal/internal/core/domain"

	"gorm.io/gorm"
)

// TimeFormat is the canonical representation of every timestamp in API responses
const TimeFormat = time.RFC3339

// FormatTime normalizes a timestamp to UTC in TimeFormat
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// Admin represents the admins collection/table
type Admin struct {
	ID           string    `gorm:"primaryKey;size:36" bson:"id" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" bson:"email" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" bson:"password_hash" json:"-"`
	Name         string    `gorm:"size:100" bson:"name" json:"name"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}

// Student represents the students collection/table
type Student struct {
	ID           string           `gorm:"primaryKey;size:36" bson:"id" json:"id"`
	RollNumber   string           `gorm:"uniqueIndex;size:50;not null" bson:"roll_number" json:"roll_number"`
	Name         string           `gorm:"size:100;not null" bson:"name" json:"name"`
	Email        string           `gorm:"uniqueIndex;size:191;not null" bson:"email" json:"email"`
	PasswordHash string           `gorm:"size:255;not null" bson:"password_hash" json:"-"`
	ClassName    string           `gorm:"size:50" bson:"class_name" json:"class_name"`
	Section      string           `gorm:"size:20" bson:"section" json:"section"`
	Phone        string           `gorm:"size:30" bson:"phone" json:"phone"`
	ParentName   string           `gorm:"size:100" bson:"parent_name" json:"parent_name"`
	ParentPhone  string           `gorm:"size:30" bson:"parent_phone" json:"parent_phone"`
	Address      string           `gorm:"type:text" bson:"address" json:"address"`
	FeeStatus    domain.FeeStatus `gorm:"size:20;default:'pending'" bson:"fee_status" json:"fee_status"`
	FeeAmount    float64          `gorm:"type:decimal(12,2)" bson:"fee_amount" json:"fee_amount"`
	CreatedAt    time.Time        `gorm:"autoCreateTime:false" bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime:false" bson:"updated_at" json:"updated_at"`
}

func (Student) TableName() string {
	return "students"
}

// StudentResponse is the sanitized student shape, without the password hash
type StudentResponse struct {
	ID          string           `json:"id"`
	RollNumber  string           `json:"roll_number"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	ClassName   string           `json:"class_name"`
	Section     string           `json:"section"`
	Phone       string           `json:"phone"`
	ParentName  string           `json:"parent_name"`
	ParentPhone string           `json:"parent_phone"`
	Address     string           `json:"address"`
	FeeStatus   domain.FeeStatus `json:"fee_status"`
	FeeAmount   float64          `json:"fee_amount"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

func (s *Student) ToResponse() *StudentResponse {
	return &StudentResponse{
		ID:          s.ID,
		RollNumber:  s.RollNumber,
		Name:        s.Name,
		Email:       s.Email,
		ClassName:   s.ClassName,
		Section:     s.Section,
		Phone:       s.Phone,
		ParentName:  s.ParentName,
		ParentPhone: s.ParentPhone,
		Address:     s.Address,
		FeeStatus:   s.FeeStatus,
		FeeAmount:   s.FeeAmount,
		CreatedAt:   FormatTime(s.CreatedAt),
		UpdatedAt:   FormatTime(s.UpdatedAt),
	}
}

// FeePayment represents the payments collection/table. Immutable once written.
type FeePayment struct {
	ID            string    `gorm:"primaryKey;size:36" bson:"id" json:"id"`
	StudentID     string    `gorm:"index;size:36;not null" bson:"student_id" json:"student_id"`
	Amount        float64   `gorm:"type:decimal(12,2);not null" bson:"amount" json:"amount"`
	PaymentMethod string    `gorm:"size:100" bson:"payment_method" json:"payment_method"`
	TransactionID string    `gorm:"size:100;not null" bson:"transaction_id" json:"transaction_id"`
	Status        string    `gorm:"size:20" bson:"status" json:"status"`
	PaidAt        time.Time `bson:"paid_at" json:"paid_at"`
}

func (FeePayment) TableName() string {
	return "payments"
}

// PaymentResponse is the API shape of a fee payment
type PaymentResponse struct {
	ID            string  `json:"id"`
	StudentID     string  `json:"student_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id"`
	Status        string  `json:"status"`
	PaidAt        string  `json:"paid_at"`
}

func (p *FeePayment) ToResponse() *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID,
		StudentID:     p.StudentID,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
		Status:        p.Status,
		PaidAt:        FormatTime(p.PaidAt),
	}
}

// Contact represents the contacts collection/table. Write-only from the API.
type Contact struct {
	ID        string    `gorm:"primaryKey;size:36" bson:"id" json:"id"`
	Name      string    `gorm:"size:100;not null" bson:"name" json:"name"`
	Email     string    `gorm:"size:191;not null" bson:"email" json:"email"`
	Phone     string    `gorm:"size:30" bson:"phone" json:"phone"`
	Message   string    `gorm:"type:text;not null" bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

// AutoMigrate creates the relational tables when the mysql driver is selected
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Admin{},
		&Student{},
		&FeePayment{},
		&Contact{},
	)
}
