package models

import "github.com/google/uuid"

type Member struct {
	ID                  uuid.UUID `json:"id"`
	Part                Part      `json:"part"`
	Generation          int       `json:"generation"`
	Name                string    `json:"name"`
	NameKana            string    `json:"name_kana"`
	Email               string    `json:"email"`
	Role                *Role     `json:"role"`
	IsCompetitionMember bool      `json:"is_competition_member"`
}

type MemberParams struct {
	Part       Part   `json:"part" binding:"required"`
	Generation int    `json:"generation" binding:"required"`
	Name       string `json:"name" binding:"required"`
	NameKana   string `json:"name_kana" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Role       *Role  `json:"role"`
}

// MemberParamsOptional carries a partial update; nil fields are left as-is.
type MemberParamsOptional struct {
	Part                *Part   `json:"part"`
	Generation          *int    `json:"generation"`
	Name                *string `json:"name"`
	NameKana            *string `json:"name_kana"`
	Email               *string `json:"email"`
	Role                *Role   `json:"role"`
	IsCompetitionMember *bool   `json:"is_competition_member"`
}

// MembersCompetitionParams flags several members in or out of the
// competition band at once.
type MembersCompetitionParams struct {
	MemberIDs           []uuid.UUID `json:"member_ids" binding:"required"`
	IsCompetitionMember *bool       `json:"is_competition_member" binding:"required"`
}

type MembersOperationalResult struct {
	Result bool `json:"result"`
}
