package content

// QuestExamples are per-category starter quest titles offered as templates.
var QuestExamples = map[string][]string{
	"wealth": {
		"Complete a client project",
		"Apply for 5 jobs",
		"Work on business plan",
		"Network with 3 professionals",
		"Update resume and portfolio",
		"Learn a marketable skill",
		"Create a side project",
	},
	"strength": {
		"Complete workout session",
		"Go for a run",
		"Do 100 push-ups",
		"Meal prep for the week",
		"Get 8 hours of sleep",
		"Go to the gym",
		"Take a walk outside",
	},
	"wisdom": {
		"Read 50 pages of a book",
		"Complete an online course module",
		"Practice coding for 1 hour",
		"Write in journal",
		"Study for exam",
		"Research a topic deeply",
	},
	"luck": {
		"Reach out to a mentor",
		"Attend a networking event",
		"Join a community or group",
		"Help someone with their problem",
		"Share your work publicly",
		"Ask for feedback",
	},
}

// CategoryDescription explains what each stat category covers.
func CategoryDescription(category string) string {
	switch category {
	case "wealth":
		return "Money, business, career, income-related tasks"
	case "strength":
		return "Physical health, discipline, consistency tasks"
	case "wisdom":
		return "Learning, knowledge, skill-building tasks"
	case "luck":
		return "Networking, opportunities, connections tasks"
	default:
		return ""
	}
}

// CategoryEmoji returns the icon shown next to a stat category.
func CategoryEmoji(category string) string {
	switch category {
	case "wealth":
		return "💰"
	case "strength":
		return "💪"
	case "wisdom":
		return "🧠"
	case "luck":
		return "🍀"
	default:
		return ""
	}
}
