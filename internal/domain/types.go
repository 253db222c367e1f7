package domain

import "strings"

// Role is the fixed set of account roles.
type Role string

const (
	RoleAdmin                     Role = "admin"
	RoleAccommodationReceptionist Role = "accommodation_receptionist"
	RoleAgencyReceptionist        Role = "agency_receptionist"
	RoleClient                    Role = "client"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAccommodationReceptionist, RoleAgencyReceptionist, RoleClient:
		return true
	}
	return false
}

// ParseRole normalizes s; empty input yields RoleClient.
func ParseRole(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RoleClient, true
	}
	r := Role(s)
	return r, r.Valid()
}

// PlanStatus is the lifecycle state of a travel plan.
type PlanStatus string

const (
	PlanActive   PlanStatus = "active"
	PlanComplete PlanStatus = "complete"
)

func (s PlanStatus) Valid() bool {
	return s == PlanActive || s == PlanComplete
}

// AccommodationType enumerates accommodation kinds.
type AccommodationType string

const (
	AccommodationHotel     AccommodationType = "hotel"
	AccommodationApartment AccommodationType = "apartment"
	AccommodationVilla     AccommodationType = "villa"
)

// Pagination carries paging params.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Limit returns the page size clamped to [1, 100], default 50.
func (p Pagination) Limit() int {
	switch {
	case p.PageSize <= 0:
		return 50
	case p.PageSize > 100:
		return 100
	}
	return p.PageSize
}

func (p Pagination) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID int64 `json:"userId"`
	Role   Role  `json:"role"`
}

// HasRole reports whether the caller holds one of roles.
func (rc RequestContext) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if rc.Role == r {
			return true
		}
	}
	return false
}
