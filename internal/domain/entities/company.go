package entities

// Company is a tenant. Only companies with the compliance module enabled are
// visited by the daily scheduler.
//
// Storage model (DynamoDB):
//   - PK: id
type Company struct {
	ID                      string `json:"id"`
	Nombre                  string `json:"nombre"`
	ComplianceModuleEnabled bool   `json:"feature_compliance_module_enabled"`
}
