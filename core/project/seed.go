package project

// SeedStudent returns the state every new student board starts from.
func SeedStudent() StudentState {
	return StudentState{Projects: []StudentProject{
		{
			ID:          "1",
			Title:       "Machine Learning Classification",
			Description: "Building a classification model for image recognition",
			Members:     []string{Founder, "Alice Johnson", "Bob Smith"},
			CreatedAt:   "2024-01-15",
			Status:      StatusActive,
		},
		{
			ID:          "2",
			Title:       "Web Development Portfolio",
			Description: "Creating a responsive portfolio website",
			Members:     []string{Founder, "Carol Davis"},
			CreatedAt:   "2024-01-10",
			Status:      StatusGraded,
			Grade:       "A-",
		},
	}}
}

// SeedProfessor returns the state every new professor board starts from.
// Submitted projects only ever come from here: no operation submits a project.
func SeedProfessor() ProfessorState {
	return ProfessorState{Projects: []ProfessorProject{
		{
			ID:          "1",
			Title:       "Machine Learning Classification",
			Description: "Building a classification model for image recognition using TensorFlow",
			Students:    []string{"Alice Johnson", "Bob Smith", "Carol Davis"},
			CreatedAt:   "2024-01-15",
			SubmittedAt: "2024-01-25",
			Status:      StatusSubmitted,
		},
		{
			ID:          "2",
			Title:       "Web Development Portfolio",
			Description: "Creating a responsive portfolio website with React and modern CSS",
			Students:    []string{"David Wilson", "Emma Brown"},
			CreatedAt:   "2024-01-10",
			SubmittedAt: "2024-01-20",
			Status:      StatusGraded,
			Grade:       "A-",
			Feedback:    "Excellent work on responsive design. Consider adding more interactive elements.",
		},
		{
			ID:          "3",
			Title:       "Database Management System",
			Description: "Design and implement a complete database system for a library",
			Students:    []string{"Frank Miller", "Grace Lee", "Henry Taylor"},
			CreatedAt:   "2024-01-20",
			Status:      StatusActive,
		},
		{
			ID:          "4",
			Title:       "Mobile App Development",
			Description: "Cross-platform mobile application using React Native",
			Students:    []string{"Ivy Chen", "Jack Anderson"},
			CreatedAt:   "2024-01-18",
			SubmittedAt: "2024-01-28",
			Status:      StatusSubmitted,
		},
	}}
}
