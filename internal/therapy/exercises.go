package therapy

import (
	"strings"

	"github.com/Duggu05-coder/Lumos/internal/analysis/emotion"
)

// Exercise is a guided breathing exercise.
type Exercise struct {
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
	Duration     string `json:"duration"`
}

// DefaultExercise names the exercise returned for unknown names.
const DefaultExercise = "basic"

var exercises = map[string]Exercise{
	"basic": {
		Name:         "Deep Breathing",
		Instructions: "Breathe in slowly through your nose for 4 counts, hold for 2 counts, then breathe out through your mouth for 6 counts. Repeat 5 times.",
		Duration:     "3 minutes",
	},
	"478": {
		Name:         "4-7-8 Breathing",
		Instructions: "Breathe in through your nose for 4 counts, hold your breath for 7 counts, then exhale through your mouth for 8 counts. Repeat 4 times.",
		Duration:     "5 minutes",
	},
	"box": {
		Name:         "Box Breathing",
		Instructions: "Breathe in for 4 counts, hold for 4 counts, breathe out for 4 counts, hold empty for 4 counts. Repeat for several cycles.",
		Duration:     "5 minutes",
	},
}

// BreathingExercise looks up name, falling back to the basic exercise.
func BreathingExercise(name string) Exercise {
	if ex, ok := exercises[name]; ok {
		return ex
	}
	return exercises[DefaultExercise]
}

var defaultStrategies = []string{"Take deep breaths", "Practice mindfulness", "Be kind to yourself"}

var copingStrategies = map[emotion.Label][]string{
	emotion.Anger: {
		"Count to 10 before responding",
		"Take a cold shower or splash cold water on your face",
		"Write down your feelings in a journal",
		"Do some physical exercise",
	},
	emotion.Sadness: {
		"Reach out to a supportive friend or family member",
		"Engage in a creative activity",
		"Listen to uplifting music",
		"Practice self-compassion",
	},
	emotion.Fear: {
		"Break down the fear into smaller, manageable parts",
		"Challenge negative thoughts with realistic ones",
		"Use grounding techniques",
		"Seek support from others",
	},
	emotion.Joy: {
		"Share your happiness with others",
		"Practice gratitude",
		"Engage in activities that bring you joy",
		"Create positive memories",
	},
	emotion.Trauma: {
		"Practice grounding techniques like 5-4-3-2-1",
		"Use gentle breathing exercises",
		"Engage in soothing self-care activities",
		"Connect with trusted support people",
		"Listen to calming or empowering music",
		"Use humor as appropriate for healing",
	},
	emotion.Disgust: {
		"Take deep cleansing breaths",
		"Engage in physical cleansing activities",
		"Create physical distance from the trigger",
		"Practice boundary-setting exercises",
		"Use humor to lighten the mood",
		"Listen to uplifting music",
	},
	emotion.Surprise: {
		"Take grounding breaths to center yourself",
		"Focus on the present moment",
		"Give yourself time to process the unexpected",
		"Practice acceptance of change",
		"Use humor to cope with the unexpected",
		"Listen to calming or adaptive music",
	},
}

// CopingStrategies returns the strategies for label. Labels without a list,
// neutral included, get a generic three-item default.
func CopingStrategies(label emotion.Label) []string {
	if list, ok := copingStrategies[emotion.Label(strings.ToLower(strings.TrimSpace(string(label))))]; ok {
		return append([]string(nil), list...)
	}
	return append([]string(nil), defaultStrategies...)
}
