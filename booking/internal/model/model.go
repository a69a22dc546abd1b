package model

import (
	"strings"
	"time"
)

type Date struct {
	time.Time `json:",inline"`
}

func NewDate(y int, m time.Month, d int) Date {
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(b []byte) (err error) {
	s := strings.Trim(string(b), "\"")
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	date, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = date
	return
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

type User struct {
	ID      int64  `json:"id" db:"id"`
	Subject string `json:"subject" db:"subject"`
	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`
	Role    Role   `json:"role" db:"role"`
	UnitID  *int64 `json:"unitId,omitempty" db:"unit_id"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Room struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Capacity int     `json:"capacity" db:"capacity"`
	Area     float64 `json:"area" db:"area"`
	UnitID   int64   `json:"unitId" db:"unit_id"`
	UnitName string  `json:"unitName" db:"unit_name"`
	Active   bool    `json:"active" db:"active"`
}

type Equipment struct {
	ID       int64  `json:"id" db:"id"`
	RoomID   int64  `json:"roomId" db:"room_id"`
	Name     string `json:"name" db:"name"`
	AssetTag string `json:"assetTag" db:"asset_tag"`
	Quantity int    `json:"quantity" db:"quantity"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListRooms struct {
	Paging `json:",inline"`
	Items  []Room `json:"items"`
}
