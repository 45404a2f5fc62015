package admin

import (
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/Winmix713/hekoprot2/internal/domain"
)

// SystemStatus is rendered as-is; the backend owns its keys.
type SystemStatus = domain.Document

type User struct {
	ID        uuid.UUID        `json:"id"`
	Email     string           `json:"email"`
	FullName  *string          `json:"full_name"`
	Role      string           `json:"role"`
	IsActive  bool             `json:"is_active"`
	CreatedAt domain.Timestamp `json:"created_at"`
	UpdatedAt domain.Timestamp `json:"updated_at"`
}

type UserList struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
	Pages int    `json:"pages"`
}

type UserFilter struct {
	Page int
	Size int
}

func (f UserFilter) Values() url.Values {
	values := url.Values{}
	if f.Page > 0 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	if f.Size > 0 {
		values.Set("size", strconv.Itoa(f.Size))
	}
	return values
}
