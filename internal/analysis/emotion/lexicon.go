package emotion

// LexiconEntry pairs a label with its trigger words.
type LexiconEntry struct {
	Label    Label
	Keywords []string
}

// keywordLexicon is ordered by label declaration order.
var keywordLexicon = []LexiconEntry{
	{Joy, []string{"happy", "excited", "joyful", "cheerful", "delighted", "pleased", "glad", "content"}},
	{Sadness, []string{"sad", "depressed", "down", "melancholy", "gloomy", "sorrowful", "upset", "blue"}},
	{Anger, []string{"angry", "furious", "mad", "irritated", "annoyed", "frustrated", "rage", "livid"}},
	{Fear, []string{"afraid", "scared", "anxious", "worried", "nervous", "terrified", "panic", "frightened"}},
	{Disgust, []string{"disgusted", "revolted", "repulsed", "sickened", "appalled"}},
	{Surprise, []string{"surprised", "shocked", "amazed", "astonished", "startled", "stunned"}},
	{Trauma, []string{
		"trauma", "traumatic", "ptsd", "flashback", "nightmare", "triggered", "abuse", "assault",
		"violence", "harassment", "bullying", "betrayal", "abandonment", "grief", "loss",
		"devastated", "overwhelmed", "helpless", "vulnerable", "violated",
	}},
	{Neutral, []string{"okay", "fine", "normal", "average", "regular", "typical"}},
}

// Lexicon returns a copy of the keyword lexicon in declaration order.
func Lexicon() []LexiconEntry {
	out := make([]LexiconEntry, len(keywordLexicon))
	for i, e := range keywordLexicon {
		out[i] = LexiconEntry{Label: e.Label, Keywords: append([]string(nil), e.Keywords...)}
	}
	return out
}
