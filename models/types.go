// ABOUTME: Data models for CRM entities
// ABOUTME: Defines User, Contact, Deal, PipelineStage, Activity, and SalesMetric structs
package models

import "time"

// User is the current operator of the CRM. Single record, never deleted.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
}

type Contact struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Company       string    `json:"company"`
	Position      string    `json:"position"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	LastContacted time.Time `json:"lastContacted"`
	CreatedAt     time.Time `json:"createdAt"`
	AssignedTo    string    `json:"assignedTo"`
	Avatar        string    `json:"avatar,omitempty"`
}

type Deal struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Value             float64   `json:"value"`
	Stage             string    `json:"stage"`
	ContactID         string    `json:"contactId"`
	Probability       int       `json:"probability"`
	ExpectedCloseDate time.Time `json:"expectedCloseDate"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	AssignedTo        string    `json:"assignedTo"`
}

// PipelineStage is one step of the sales funnel. The stage list is
// compiled-in configuration, not lifecycle-managed data.
type PipelineStage struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

// RelatedRef is a tagged reference from an activity to its parent record.
type RelatedRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type Activity struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatedBy   string     `json:"createdBy"`
	RelatedTo   RelatedRef `json:"relatedTo"`
	Completed   *bool      `json:"completed,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// SalesMetric is a read-only aggregate snapshot produced outside this
// application. Values are never recomputed from live data.
type SalesMetric struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Value         float64 `json:"value"`
	PreviousValue float64 `json:"previousValue"`
	Change        float64 `json:"change"`
	Period        string  `json:"period"`
}

// Contact statuses.
const (
	StatusLead     = "lead"
	StatusCustomer = "customer"
	StatusLost     = "lost"
)

// Pipeline stage ids.
const (
	StageLead        = "lead"
	StageDiscovery   = "discovery"
	StageProposal    = "proposal"
	StageNegotiation = "negotiation"
	StageClosedWon   = "closed-won"
	StageClosedLost  = "closed-lost"
)

// Activity types.
const (
	ActivityNote    = "note"
	ActivityEmail   = "email"
	ActivityCall    = "call"
	ActivityMeeting = "meeting"
	ActivityTask    = "task"
)

// Related record kinds.
const (
	RelatedContact = "contact"
	RelatedDeal    = "deal"
)

// Metric periods.
const (
	PeriodDaily     = "daily"
	PeriodWeekly    = "weekly"
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodYearly    = "yearly"
)

// IsClosed reports whether the deal sits in a terminal stage. Terminal is
// cosmetic only: closed deals may move back to any open stage.
func (d Deal) IsClosed() bool {
	return d.Stage == StageClosedWon || d.Stage == StageClosedLost
}
