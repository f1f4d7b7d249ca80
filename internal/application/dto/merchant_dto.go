package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterCPORequest cuerpo de POST /merchants.
type RegisterCPORequest struct {
	PartyID       string `json:"party_id" validate:"required,len=3"`
	CPOOwnerName  string `json:"cpo_owner_name" validate:"required"`
	ContactName   string `json:"contact_name" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required"`
	ContactEmail  string `json:"contact_email" validate:"required,email"`
	Username      string `json:"username" validate:"required"`
}

// CheckRegisterCPOParams parámetros de GET /merchants/check/:type/:value.
type CheckRegisterCPOParams struct {
	Type  string `params:"type" validate:"required,oneof=username contact_number contact_email cpo_owner_name contact_name party_id"`
	Value string `params:"value" validate:"required"`
}

// AddRFIDsRequest cuerpo de POST /merchants/rfids/:cpo_owner_id.
type AddRFIDsRequest struct {
	RFIDs []string `json:"rfids" validate:"required,min=1,dive,required"`
}

// TopupRequest cuerpo de POST /merchants/topup/:cpo_owner_id.
type TopupRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TopupResponse resultado de una recarga.
type TopupResponse struct {
	Status     string          `json:"status"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// VoidTopupResponse resultado de una anulación.
type VoidTopupResponse struct {
	Status          string          `json:"status"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	ReferenceNumber string          `json:"reference_number"`
}

// TopupLogResponse recarga aún anulable.
type TopupLogResponse struct {
	ID              int64           `json:"id"`
	CPOOwnerID      int64           `json:"cpo_owner_id"`
	ReferenceNumber string          `json:"reference_number"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	PaymentType     string          `json:"payment_type"`
	DateCreated     time.Time       `json:"date_created"`
	VoidableUntil   time.Time       `json:"voidable_until"`
}

// ChangeAccountStatusParams parámetros de PATCH /merchants/:action/:user_id.
type ChangeAccountStatusParams struct {
	Action string `params:"action" validate:"required"`
	UserID int64  `params:"user_id" validate:"required,gt=0"`
}

// CPOResponse operador en listados.
type CPOResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	PartyID       string    `json:"party_id"`
	CPOOwnerName  string    `json:"cpo_owner_name"`
	ContactName   string    `json:"contact_name"`
	ContactNumber string    `json:"contact_number"`
	ContactEmail  string    `json:"contact_email"`
	Username      string    `json:"username"`
	UserStatus    string    `json:"user_status"`
	DateCreated   time.Time `json:"date_created"`
}

// CPOListResponse respuesta de GET /merchants.
type CPOListResponse struct {
	CPOs          []CPOResponse `json:"cpos"`
	TotalReturned int           `json:"total_cpos_returned"`
	Total         int64         `json:"total_cpos"`
	Limit         int           `json:"limit"`
	Offset        int           `json:"offset"`
}

// CompanyPartnerRequest cuerpo de POST/PATCH /company_partner_details.
type CompanyPartnerRequest struct {
	CompanyName string `json:"company_name" validate:"required"`
	Address     string `json:"address" validate:"required"`
}

// UpdateCompanyPartnerRequest cuerpo de PATCH /company_partner_details/:id.
type UpdateCompanyPartnerRequest struct {
	CompanyName string `json:"company_name"`
	Address     string `json:"address" validate:"required"`
}

// CompanyPartnerResponse socio comercial.
type CompanyPartnerResponse struct {
	ID          int64     `json:"id"`
	CompanyName string    `json:"company_name"`
	PartyID     string    `json:"party_id"`
	CountryCode string    `json:"country_code"`
	Status      string    `json:"status"`
	DateCreated time.Time `json:"date_created"`
}

// RegisterPartnerResponse resultado del alta de un socio comercial.
type RegisterPartnerResponse struct {
	PartyID string `json:"party_id"`
	Message string `json:"message"`
}
