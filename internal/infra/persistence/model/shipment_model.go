package model

import (
	"time"

	"github.com/google/uuid"
)

// ReceiverModel holds the receiver columns, stored inline with a receiver_ prefix.
type ReceiverModel struct {
	FirstName     string `gorm:"type:varchar(100);not null"`
	LastName      string `gorm:"type:varchar(100);not null"`
	Email         string `gorm:"type:varchar(255);not null;index"`
	ContactNumber string `gorm:"type:varchar(30)"`
	Street        string `gorm:"type:varchar(255);not null"`
	City          string `gorm:"type:varchar(100);not null"`
	State         string `gorm:"type:varchar(100)"`
	ZipCode       string `gorm:"type:varchar(20)"`
}

// ShipmentModel is the GORM-specific struct for the 'shipments' table.
// Status updates go through a conditional UPDATE on (id, status), see shipmentRepository.UpdateStatus.
// shipping_cost has scale 6 so base_price numeric(12,2) times multiplier numeric(10,4) is stored unrounded.
type ShipmentModel struct {
	ID                    uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TrackingNumber        string        `gorm:"type:varchar(32);not null;uniqueIndex"`
	SenderID              uuid.UUID     `gorm:"type:uuid;not null;index"`
	Receiver              ReceiverModel `gorm:"embedded;embeddedPrefix:receiver_"`
	ReceiverCountryID     uuid.UUID     `gorm:"type:uuid;not null;index"`
	BoxTypeID             uuid.UUID     `gorm:"type:uuid;not null;index"`
	Weight                float64       `gorm:"type:numeric(10,2);not null"`
	Contents              string        `gorm:"type:text"`
	ShippingCost          float64       `gorm:"type:numeric(18,6);not null"`
	Priority              string        `gorm:"type:varchar(10);not null;default:NORMAL"`
	IsFragile             bool          `gorm:"not null;default:false"`
	Status                string        `gorm:"type:varchar(20);not null;index"`
	EstimatedDeliveryDate time.Time     `gorm:"not null;index"`
	ActualDeliveryDate    *time.Time
	PaymentStatus         string    `gorm:"type:varchar(10);not null;default:PENDING"`
	PaymentMethod         string    `gorm:"type:varchar(50)"`
	IsInsured             bool      `gorm:"not null;default:false"`
	InsuranceValue        float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Notes                 string    `gorm:"type:text"`
	CreatedAt             time.Time `gorm:"index"`
	UpdatedAt             time.Time

	Sender          *UserModel    `gorm:"foreignKey:SenderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ReceiverCountry *CountryModel `gorm:"foreignKey:ReceiverCountryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	BoxType         *BoxTypeModel `gorm:"foreignKey:BoxTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ShipmentModel) TableName() string {
	return "shipments"
}
