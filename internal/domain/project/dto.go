package project

type CreateProjectDTO struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// WithTicketCount augments a project with the number of tickets currently
// referencing it. The count is computed per request by querying the ticket
// store, never cached on the project row.
type WithTicketCount struct {
	Project
	TicketCount int64 `json:"ticketCount"`
}

// Ref is the display-relevant projection used when ticket references are
// resolved.
type Ref struct {
	PID  uint   `json:"id"`
	Name string `json:"name"`
}

func (p Project) Ref() Ref {
	return Ref{PID: p.PID, Name: p.Name}
}
