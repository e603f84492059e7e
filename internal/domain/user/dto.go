package user

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     *Role  `json:"role,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Ref is the display-relevant projection of a user used when ticket
// references are resolved (name/email instead of a raw id).
type Ref struct {
	UID   uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Ref() Ref {
	return Ref{UID: u.UID, Name: u.Name, Email: u.Email}
}

// DirectoryEntry is what GET /users exposes for ticket assignment.
type DirectoryEntry struct {
	UID   uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
