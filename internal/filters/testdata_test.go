package filters

import "github.com/helping-hands/discovery/internal/models"

func sampleEvents() []models.Event {
	return []models.Event{
		{
			ID:             1,
			Name:           "Morning Cleanup",
			Description:    "Beach cleanup",
			Location:       "Beach",
			Category:       models.CategoryEnvironment,
			DateTime:       "2026-03-15T09:00:00",
			OrganizationID: 1,
		},
		{
			ID:             2,
			Name:           "Evening Tutoring",
			Description:    "Help students",
			Location:       "School",
			Category:       models.CategoryEducation,
			DateTime:       "2026-03-16T18:00:00",
			OrganizationID: 2,
		},
		{
			ID:             3,
			Name:           "Weekend Food Drive",
			Description:    "Collect food",
			Location:       "Community Center",
			Category:       models.CategoryCommunity,
			DateTime:       "2026-03-14T10:00:00",
			OrganizationID: 1,
		},
		{
			ID:             4,
			Name:           "Afternoon Workshop",
			Description:    "Skills workshop",
			Location:       "Library",
			Category:       models.CategoryEducation,
			DateTime:       "2026-03-17T14:00:00",
			OrganizationID: 3,
		},
	}
}

func sampleRoles() []models.Role {
	return []models.Role{
		{UserID: 1, OrganizationID: 1, PermissionLevel: models.PermissionAdmin},
		{UserID: 1, OrganizationID: 2, PermissionLevel: models.PermissionVolunteer},
	}
}

func ids(events []models.Event) []int64 {
	out := make([]int64, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}
