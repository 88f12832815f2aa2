package tracker

// SeedTasks returns the starter tasks, all due on the default reference date.
func SeedTasks() []Task {
	return []Task{
		{
			ID:       "1",
			Title:    "Prepare the client presentation",
			Category: CategoryWork,
			Tags:     []string{"urgent", "presentation"},
			DueDate:  DefaultReferenceDate,
			Priority: PriorityHigh,
		},
		{
			ID:       "2",
			Title:    "Buy groceries",
			Category: CategoryPersonal,
			Tags:     []string{"shopping"},
			DueDate:  DefaultReferenceDate,
			Priority: PriorityMedium,
		},
		{
			ID:        "3",
			Title:     "Gym workout",
			Completed: true,
			Category:  CategoryHealth,
			Tags:      []string{"fitness"},
			DueDate:   DefaultReferenceDate,
			Priority:  PriorityLow,
		},
	}
}

// SeedProjects returns the starter projects.
func SeedProjects() []Project {
	return []Project{
		{ID: "1", Name: "Website development", Color: "#9b87f5", TasksCount: 12},
		{ID: "2", Name: "Marketing", Color: "#7E69AB", TasksCount: 8},
		{ID: "3", Name: "Personal growth", Color: "#D6BCFA", TasksCount: 5},
	}
}
