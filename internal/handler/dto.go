package handler

import (
	"time"

	"github.com/novalith/novalith-backend/internal/domain"
)

// UserDTO is the JSON representation of a user. Password hashes are never
// serialized.
type UserDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = toUserDTO(&users[i])
	}
	return dtos
}

// AttendanceDTO is the JSON representation of an attendance record.
type AttendanceDTO struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"userId"`
	Date       string  `json:"date"`
	PunchIn    *string `json:"punchIn"`
	PunchOut   *string `json:"punchOut"`
	TotalHours float64 `json:"totalHours"`
	Status     string  `json:"status"`
	Notes      string  `json:"notes"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

func toAttendanceDTO(rec *domain.AttendanceRecord) AttendanceDTO {
	return AttendanceDTO{
		ID:         rec.ID,
		UserID:     rec.UserID,
		Date:       rec.Date.Format("2006-01-02"),
		PunchIn:    formatOptionalTime(rec.PunchIn),
		PunchOut:   formatOptionalTime(rec.PunchOut),
		TotalHours: rec.TotalHours,
		Status:     string(rec.Status),
		Notes:      rec.Notes,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  rec.UpdatedAt.Format(time.RFC3339),
	}
}

func toAttendanceDTOs(records []domain.AttendanceRecord) []AttendanceDTO {
	dtos := make([]AttendanceDTO, len(records))
	for i := range records {
		dtos[i] = toAttendanceDTO(&records[i])
	}
	return dtos
}

// AttendanceWithUserDTO adds the owning user's identity for the admin
// listing.
type AttendanceWithUserDTO struct {
	AttendanceDTO
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

func toAttendanceWithUserDTOs(entries []domain.AttendanceWithUser) []AttendanceWithUserDTO {
	dtos := make([]AttendanceWithUserDTO, len(entries))
	for i := range entries {
		dtos[i] = AttendanceWithUserDTO{
			AttendanceDTO: toAttendanceDTO(&entries[i].AttendanceRecord),
			UserName:      entries[i].UserName,
			UserEmail:     entries[i].UserEmail,
		}
	}
	return dtos
}

// BlogPostDTO is the JSON representation of a blog post.
type BlogPostDTO struct {
	ID        int64    `json:"id"`
	AuthorID  int64    `json:"authorId"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

func toBlogPostDTO(p *domain.BlogPost) BlogPostDTO {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return BlogPostDTO{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Title:     p.Title,
		Content:   p.Content,
		Tags:      tags,
		Published: p.Published,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

func toBlogPostDTOs(posts []domain.BlogPost) []BlogPostDTO {
	dtos := make([]BlogPostDTO, len(posts))
	for i := range posts {
		dtos[i] = toBlogPostDTO(&posts[i])
	}
	return dtos
}

// TeamMemberDTO is the JSON representation of a team member profile.
type TeamMemberDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photoUrl"`
	SortOrder int    `json:"sortOrder"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toTeamMemberDTO(m *domain.TeamMember) TeamMemberDTO {
	return TeamMemberDTO{
		ID:        m.ID,
		Name:      m.Name,
		Title:     m.Title,
		Bio:       m.Bio,
		PhotoURL:  m.PhotoURL,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
	}
}

func toTeamMemberDTOs(members []domain.TeamMember) []TeamMemberDTO {
	dtos := make([]TeamMemberDTO, len(members))
	for i := range members {
		dtos[i] = toTeamMemberDTO(&members[i])
	}
	return dtos
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
