// ABOUTME: Built-in sample data used to initialize the store
// ABOUTME: Persisted state, when present, overlays contacts/deals/activities
package store

import (
	"time"

	"pipecrm/models"
)

func seedTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("bad seed timestamp: " + value)
	}
	return t
}

var seedUser = models.User{
	ID:     "1",
	Name:   "John Doe",
	Email:  "john.doe@example.com",
	Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=256&h=256",
	Role:   "Sales Manager",
}

var seedStages = []models.PipelineStage{
	{ID: models.StageLead, Name: "Lead", Color: "blue", Order: 0},
	{ID: models.StageDiscovery, Name: "Discovery", Color: "purple", Order: 1},
	{ID: models.StageProposal, Name: "Proposal", Color: "yellow", Order: 2},
	{ID: models.StageNegotiation, Name: "Negotiation", Color: "orange", Order: 3},
	{ID: models.StageClosedWon, Name: "Closed Won", Color: "green", Order: 4},
	{ID: models.StageClosedLost, Name: "Closed Lost", Color: "red", Order: 5},
}

var seedContacts = []models.Contact{
	{
		ID:            "1",
		Name:          "Alice Johnson",
		Email:         "alice@techinnovate.com",
		Phone:         "(555) 123-4567",
		Company:       "Tech Innovate",
		Position:      "CTO",
		Status:        models.StatusLead,
		Notes:         "Met at TechCrunch conference. Interested in our enterprise solution.",
		LastContacted: seedTime("2023-06-15T10:30:00Z"),
		CreatedAt:     seedTime("2023-06-10T08:15:00Z"),
		AssignedTo:    "1",
		Avatar:        "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=256&h=256",
	},
	{
		ID:            "2",
		Name:          "Bob Smith",
		Email:         "bob@globalcorp.com",
		Phone:         "(555) 987-6543",
		Company:       "Global Corp",
		Position:      "Procurement Manager",
		Status:        models.StatusCustomer,
		Notes:         "Current customer looking to upgrade their package.",
		LastContacted: seedTime("2023-06-18T14:45:00Z"),
		CreatedAt:     seedTime("2023-01-20T11:30:00Z"),
		AssignedTo:    "1",
		Avatar:        "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=256&h=256",
	},
	{
		ID:            "3",
		Name:          "Carol Martinez",
		Email:         "carol@startupvision.co",
		Phone:         "(555) 234-5678",
		Company:       "Startup Vision",
		Position:      "CEO",
		Status:        models.StatusLead,
		Notes:         "Startup founder looking for scalable solutions.",
		LastContacted: seedTime("2023-06-12T09:15:00Z"),
		CreatedAt:     seedTime("2023-06-05T16:20:00Z"),
		AssignedTo:    "1",
		Avatar:        "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=256&h=256",
	},
	{
		ID:            "4",
		Name:          "David Wilson",
		Email:         "david@megaretail.com",
		Phone:         "(555) 345-6789",
		Company:       "Mega Retail",
		Position:      "IT Director",
		Status:        models.StatusLead,
		Notes:         "Looking to modernize their CRM system.",
		LastContacted: seedTime("2023-06-17T11:00:00Z"),
		CreatedAt:     seedTime("2023-06-01T10:45:00Z"),
		AssignedTo:    "1",
		Avatar:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=256&h=256",
	},
	{
		ID:            "5",
		Name:          "Eva Brown",
		Email:         "eva@financepro.org",
		Phone:         "(555) 456-7890",
		Company:       "Finance Pro",
		Position:      "CFO",
		Status:        models.StatusCustomer,
		Notes:         "Long-term customer with multiple contracts.",
		LastContacted: seedTime("2023-06-16T15:30:00Z"),
		CreatedAt:     seedTime("2022-11-15T09:30:00Z"),
		AssignedTo:    "1",
		Avatar:        "https://images.unsplash.com/photo-1573497019940-1c28c88b4f3e?w=256&h=256",
	},
}

var seedDeals = []models.Deal{
	{
		ID:                "1",
		Name:              "Tech Innovate Enterprise Package",
		Value:             75000,
		Stage:             models.StageDiscovery,
		ContactID:         "1",
		Probability:       60,
		ExpectedCloseDate: seedTime("2023-08-15T00:00:00Z"),
		Notes:             "Need to schedule a demo with their technical team.",
		CreatedAt:         seedTime("2023-06-12T09:30:00Z"),
		UpdatedAt:         seedTime("2023-06-18T14:15:00Z"),
		AssignedTo:        "1",
	},
	{
		ID:                "2",
		Name:              "Global Corp Upgrade",
		Value:             45000,
		Stage:             models.StageNegotiation,
		ContactID:         "2",
		Probability:       80,
		ExpectedCloseDate: seedTime("2023-07-20T00:00:00Z"),
		Notes:             "Negotiating final terms. They want additional user licenses.",
		CreatedAt:         seedTime("2023-06-05T11:45:00Z"),
		UpdatedAt:         seedTime("2023-06-17T16:30:00Z"),
		AssignedTo:        "1",
	},
	{
		ID:                "3",
		Name:              "Startup Vision Initial Package",
		Value:             15000,
		Stage:             models.StageProposal,
		ContactID:         "3",
		Probability:       50,
		ExpectedCloseDate: seedTime("2023-08-05T00:00:00Z"),
		Notes:             "Sent proposal. Waiting for feedback.",
		CreatedAt:         seedTime("2023-06-10T10:15:00Z"),
		UpdatedAt:         seedTime("2023-06-15T09:45:00Z"),
		AssignedTo:        "1",
	},
	{
		ID:                "4",
		Name:              "Mega Retail CRM Overhaul",
		Value:             120000,
		Stage:             models.StageLead,
		ContactID:         "4",
		Probability:       30,
		ExpectedCloseDate: seedTime("2023-09-30T00:00:00Z"),
		Notes:             "Initial discussions. Need to schedule a needs assessment meeting.",
		CreatedAt:         seedTime("2023-06-08T14:30:00Z"),
		UpdatedAt:         seedTime("2023-06-14T11:20:00Z"),
		AssignedTo:        "1",
	},
	{
		ID:                "5",
		Name:              "Finance Pro Contract Renewal",
		Value:             65000,
		Stage:             models.StageClosedWon,
		ContactID:         "5",
		Probability:       100,
		ExpectedCloseDate: seedTime("2023-06-10T00:00:00Z"),
		Notes:             "Contract signed for another year with 10% increase.",
		CreatedAt:         seedTime("2023-05-15T09:00:00Z"),
		UpdatedAt:         seedTime("2023-06-10T15:45:00Z"),
		AssignedTo:        "1",
	},
	{
		ID:                "6",
		Name:              "Tech Innovate Training Package",
		Value:             12000,
		Stage:             models.StageProposal,
		ContactID:         "1",
		Probability:       70,
		ExpectedCloseDate: seedTime("2023-07-25T00:00:00Z"),
		Notes:             "Additional training services for their team.",
		CreatedAt:         seedTime("2023-06-14T13:15:00Z"),
		UpdatedAt:         seedTime("2023-06-18T10:30:00Z"),
		AssignedTo:        "1",
	},
}

var seedActivities = []models.Activity{
	{
		ID:          "1",
		Type:        models.ActivityCall,
		Title:       "Initial discovery call",
		Description: "Discussed their needs and potential solutions.",
		CreatedAt:   seedTime("2023-06-12T10:30:00Z"),
		CreatedBy:   "1",
		RelatedTo:   models.RelatedRef{Type: models.RelatedDeal, ID: "1"},
	},
	{
		ID:          "2",
		Type:        models.ActivityEmail,
		Title:       "Sent proposal",
		Description: "Emailed the detailed proposal with pricing options.",
		CreatedAt:   seedTime("2023-06-15T14:45:00Z"),
		CreatedBy:   "1",
		RelatedTo:   models.RelatedRef{Type: models.RelatedDeal, ID: "3"},
	},
	{
		ID:          "3",
		Type:        models.ActivityMeeting,
		Title:       "Contract negotiation",
		Description: "Met with their legal team to discuss contract terms.",
		CreatedAt:   seedTime("2023-06-17T11:00:00Z"),
		CreatedBy:   "1",
		RelatedTo:   models.RelatedRef{Type: models.RelatedDeal, ID: "2"},
	},
	{
		ID:          "4",
		Type:        models.ActivityNote,
		Title:       "Follow-up required",
		Description: "Need to check back next week about their decision.",
		CreatedAt:   seedTime("2023-06-18T09:15:00Z"),
		CreatedBy:   "1",
		RelatedTo:   models.RelatedRef{Type: models.RelatedContact, ID: "4"},
	},
	{
		ID:          "5",
		Type:        models.ActivityTask,
		Title:       "Prepare demo",
		Description: "Set up customized demo for their technical team.",
		CreatedAt:   seedTime("2023-06-16T15:30:00Z"),
		CreatedBy:   "1",
		RelatedTo:   models.RelatedRef{Type: models.RelatedDeal, ID: "1"},
		Completed:   models.Ptr(false),
		DueDate:     models.Ptr(seedTime("2023-06-22T10:00:00Z")),
	},
}

var seedMetrics = []models.SalesMetric{
	{ID: "1", Name: "Total Pipeline Value", Value: 332000, PreviousValue: 285000, Change: 16.5, Period: models.PeriodMonthly},
	{ID: "2", Name: "Deals Won", Value: 65000, PreviousValue: 48000, Change: 35.4, Period: models.PeriodMonthly},
	{ID: "3", Name: "Win Rate", Value: 35, PreviousValue: 32, Change: 9.4, Period: models.PeriodMonthly},
	{ID: "4", Name: "Average Deal Size", Value: 55333, PreviousValue: 51000, Change: 8.5, Period: models.PeriodMonthly},
}
