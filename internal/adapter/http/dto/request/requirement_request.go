package request

type CreateRequirementRequest struct {
	Nombre        string `json:"nombre" binding:"required"`
	Descripcion   string `json:"descripcion"`
	EsObligatorio *bool  `json:"esObligatorio"`
}

// ResolveObligatorio defaults to mandatory when the flag is omitted.
func (r CreateRequirementRequest) ResolveObligatorio() bool {
	if r.EsObligatorio == nil {
		return true
	}
	return *r.EsObligatorio
}

type SetRequirementActiveRequest struct {
	Activo *bool `json:"activo" binding:"required"`
}
