package entities

import "time"

// Requirement (requisito documental) is a catalog entry describing a document
// subcontractors must supply every period.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
type Requirement struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"company_id"`
	Nombre        string    `json:"nombre"`
	Descripcion   string    `json:"descripcion"`
	Activo        bool      `json:"activo"`
	EsObligatorio bool      `json:"es_obligatorio"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
