package resident

// CreateResidentRequest represents the request body for creating a resident
type CreateResidentRequest struct {
	Name       string   `json:"name" validate:"required,min=1,max=100"`
	Index      int      `json:"index" validate:"gte=0"`
	RentWeight float64  `json:"rent_weight" validate:"gte=0"`
	Roles      []string `json:"roles,omitempty"`
}

// UpdateResidentRequest represents the request body for updating a resident
type UpdateResidentRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Index      *int     `json:"index,omitempty" validate:"omitempty,gte=0"`
	RentWeight *float64 `json:"rent_weight,omitempty" validate:"omitempty,gte=0"`
	Roles      []string `json:"roles,omitempty"`
}

// ResidentResponse represents the response for a single resident
type ResidentResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Index      int      `json:"index"`
	RentWeight float64  `json:"rent_weight"`
	Roles      []string `json:"roles"`
	CreatedAt  string   `json:"created_at"`
}

// ToResponse converts a Resident model to a ResidentResponse DTO
func (r *Resident) ToResponse() *ResidentResponse {
	roles := make([]string, 0, len(r.Roles))
	for _, role := range r.Roles {
		roles = append(roles, string(role))
	}
	return &ResidentResponse{
		ID:         r.ID,
		Name:       r.Name,
		Index:      r.Index,
		RentWeight: r.RentWeight,
		Roles:      roles,
		CreatedAt:  r.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// parseRoles validates and converts role strings to Role values
func parseRoles(raw []string) ([]Role, error) {
	roles := make([]Role, 0, len(raw))
	for _, s := range raw {
		role := Role(s)
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
		roles = append(roles, role)
	}
	return roles, nil
}
