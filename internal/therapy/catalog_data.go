package therapy

import "github.com/Duggu05-coder/Lumos/internal/analysis/emotion"

// catalog is initialised once and never mutated.
var catalog = map[emotion.Label]Entry{
	emotion.Joy: {
		Validations: []string{
			"I'm so glad to hear you're feeling positive! It's wonderful to see you in good spirits.",
			"Your joy is contagious! It's beautiful to witness your happiness.",
			"I can sense your enthusiasm, and it's truly uplifting. Embrace these positive moments!",
		},
		Encouragements: []string{
			"This positive energy you have is a strength. Try to remember this feeling during challenging times.",
			"Joy is a powerful emotion. Consider keeping a gratitude journal to capture more moments like this.",
			"Your happiness can be a source of resilience. What specifically is bringing you joy today?",
		},
		Remedies: []Remedy{
			{
				Kind:        KindJoke,
				Title:       "Happiness Joke",
				Description: "Why did the happy person bring a ladder to the party? Because they wanted to take their joy to the next level! Keep spreading those good vibes!",
				Duration:    "1 minute",
			},
			{
				Kind:        KindSong,
				Title:       "Joyful Song: \"Happy\" by Pharrell Williams",
				Description: "\"Because I'm happy, clap along if you feel like a room without a roof\" - Perfect soundtrack for your positive mood!",
				Duration:    "4 minutes",
			},
			{
				Kind:        KindSong,
				Title:       "Feel-Good Song: \"Good as Hell\" by Lizzo",
				Description: "An empowering anthem to celebrate feeling good about yourself and life.",
				Duration:    "3 minutes",
			},
			{
				Kind:        KindActivity,
				Title:       "Gratitude Practice",
				Description: "Write down three things you're grateful for today",
				Duration:    "5 minutes",
			},
			{
				Kind:        KindMindfulness,
				Title:       "Joy Meditation",
				Description: "Sit quietly and focus on the feeling of joy. Let it fill your entire being.",
				Duration:    "10 minutes",
			},
		},
	},
	emotion.Sadness: {
		Validations: []string{
			"I hear that you're going through a difficult time. Your feelings are completely valid.",
			"It's okay to feel sad. These emotions are part of the human experience, and I'm here with you.",
			"Thank you for sharing this with me. It takes courage to acknowledge when we're struggling.",
		},
		Encouragements: []string{
			"Remember that sadness is temporary. You have the strength to work through this.",
			"This difficult period doesn't define you. You've overcome challenges before.",
			"Be gentle with yourself right now. Healing takes time, and that's perfectly okay.",
		},
		Remedies: []Remedy{
			{
				Kind:        KindJoke,
				Title:       "Gentle Humor",
				Description: "Why don't scientists trust atoms? Because they make up everything! Sometimes a little smile can be the first step toward feeling better.",
				Duration:    "1 minute",
			},
			{
				Kind:        KindSong,
				Title:       "Comforting Song: \"Here Comes the Sun\" by The Beatles",
				Description: "\"Here comes the sun, and I say it's all right\" - A gentle reminder that difficult times pass.",
				Duration:    "3 minutes",
			},
			{
				Kind:        KindSong,
				Title:       "Healing Song: \"Three Little Birds\" by Bob Marley",
				Description: "\"Don't worry about a thing, 'cause every little thing gonna be all right\" - A soothing message of hope.",
				Duration:    "3 minutes",
			},
			{
				Kind:        KindBreathing,
				Title:       "4-7-8 Breathing Technique",
				Description: "Breathe in for 4 counts, hold for 7, exhale for 8. Repeat 4 times.",
				Duration:    "5 minutes",
			},
			{
				Kind:        KindActivity,
				Title:       "Gentle Movement",
				Description: "Take a slow walk outside or do some gentle stretching",
				Duration:    "15 minutes",
			},
			{
				Kind:        KindConnection,
				Title:       "Reach Out",
				Description: "Consider calling a friend or family member who makes you feel supported",
				Duration:    "10 minutes",
			},
		},
	},
	emotion.Anger: {
		Validations: []string{
			"I can sense your frustration, and it's understandable to feel this way.",
			"Anger often signals that something important to you has been threatened. Your feelings are valid.",
			"Thank you for expressing this. It's healthy to acknowledge angry feelings rather than suppress them.",
		},
		Encouragements: []string{
			"You have the power to channel this energy constructively. Let's work on some techniques together.",
			"Anger can be a catalyst for positive change when managed well. You're stronger than this feeling.",
			"Take a moment to breathe. You can navigate through this intense emotion.",
		},
		Remedies: []Remedy{
			{
				Kind:        KindJoke,
				Title:       "Anger Release Joke",
				Description: "Why did the angry person go to the gym? Because they wanted to work out their issues! Remember, laughter can be a great way to release tension.",
				Duration:    "1 minute",
			},
			{
				Kind:        KindSong,
				Title:       "Calming Song: \"Weightless\" by Marconi Union",
				Description: "Scientifically designed to reduce anxiety by 65%. Perfect for cooling down anger.",
				Duration:    "8 minutes",
			},
			{
				Kind:        KindSong,
				Title:       "Release Song: \"Let It Go\" from Frozen",
				Description: "Sometimes we need to let go of anger that no longer serves us.",
				Duration:    "4 minutes",
			},
			{
				Kind:        KindBreathing,
				Title:       "Box Breathing",
				Description: "Breathe in for 4, hold for 4, breathe out for 4, hold for 4. Repeat.",
				Duration:    "5 minutes",
			},
			{
				Kind:        KindActivity,
				Title:       "Physical Release",
				Description: "Do some jumping jacks, push-ups, or vigorous exercise to release tension",
				Duration:    "10 minutes",
			},
			{
				Kind:        KindMindfulness,
				Title:       "Progressive Muscle Relaxation",
				Description: "Tense and release each muscle group from toes to head",
				Duration:    "15 minutes",
			},
		},
	},
	emotion.Fear: {
		Validations: []string{
			"I understand you're feeling anxious or afraid. These feelings are your mind's way of trying to protect you.",
			"Fear can be overwhelming, but you're not alone in this. I'm here to support you.",
			"It's completely natural to feel scared sometimes. Acknowledging fear is the first step in addressing it.",
		},
		Encouragements: []string{
			"You are braver than you believe. You can face this fear step by step.",
			"Fear often feels bigger than it actually is. Let's break this down into manageable pieces.",
			"Remember past times when you've overcome fears. You have that same strength now.",
		},
		Remedies: []Remedy{
			{
				Kind:        KindJoke,
				Title:       "Courage Boost",
				Description: "What do you call a brave person facing their fears? A fear-less warrior! Remember, courage isn't the absence of fear - it's feeling the fear and doing it anyway.",
				Duration:    "1 minute",
			},
			{
				Kind:        KindSong,
				Title:       "Brave Song: \"Brave\" by Sara Bareilles",
				Description: "\"Say what you wanna say, and let the words fall out\" - Sometimes being brave means speaking up.",
				Duration:    "4 minutes",
			},
			{
				Kind:        KindSong,
				Title:       "Calming Song: \"Breathe\" by Telepopmusik",
				Description: "A soothing electronic track that helps calm anxiety and fear.",
				Duration:    "4 minutes",
			},
			{
				Kind:        KindBreathing,
				Title:       "Calm Breathing",
				Description: "Take slow, deep breaths. Focus on making your exhale longer than your inhale.",
				Duration:    "5 minutes",
			},
			{
				Kind:        KindGrounding,
				Title:       "5-4-3-2-1 Technique",
				Description: "Name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste",
				Duration:    "5 minutes",
			},
			{
				Kind:        KindMindfulness,
				Title:       "Safe Place Visualization",
				Description: "Imagine yourself in a place where you feel completely safe and calm",
				Duration:    "10 minutes",
			},
		},
	},
	emotion.Disgust: {
		Validations: []string{
			"I can sense that you're feeling disgusted or repulsed by something. These feelings are completely valid.",
			"Disgust is a natural protective emotion. It often tells us when something doesn't align with our values or comfort zone.",
			"Thank you for sharing this difficult feeling. Disgust can be overwhelming, but we can work through it together.",
		},
		Encouragements: []string{
			"This feeling will pass. Disgust is temporary, even when it feels intense in the moment.",
			"You have the right to feel disgusted when something violates your boundaries or values.",
			"Let's focus on what you can control and how to process these uncomfortable feelings healthily.",
		},
		Remedies: []Remedy{
			{
				Kind:        KindJoke,
				Title:       "Cleansing Humor",
				Description: "Why did the person feeling disgusted become a comedian? Because laughter is the best disinfectant for bad feelings! Sometimes humor helps wash away the icky stuff.",
				Duration:    "1 minute",
			},
			{
				Kind:        KindSong,
				Title:       "Cleansing Song: \"Shake It Off\" by Taylor Swift",
				Description: "\"I shake it off, I shake it off\" - Sometimes you just need to shake off those gross feelings.",
				Duration:    "4 minutes",
			},
			{
				Kind:        KindSong,
				Title:       "Fresh Start Song: \"New Rules\" by Dua Lipa",
				Description: "About setting boundaries and moving away from things that don't serve you.",
				Duration:    "3 minutes",
			},
			{
				Kind:        KindBreathing,
				Title:       "Cleansing Breath",
				Description: "Breathe in fresh, clean air for 4 counts, hold for 2, breathe out anything unpleasant for 6 counts.",
				Duration:    "5 minutes",
			},
			{
				Kind:        KindActivity,
				Title:       "Physical Cleansing",
				Description: "Take a shower, wash your hands, or clean your space to feel physically refreshed",
				Duration:    "10 minutes",
			},
		},
	},
	emotion.Surprise: {
		Validations: []string{
			"I can sense that something unexpected has happened. Surprise can bring many different emotions with it.",
			"Whether this surprise is positive or negative, it's natural to feel a bit unsettled by the unexpected.",
			"Thank you for sharing this moment of surprise. These sudden changes can be quite overwhelming.",
		},
		Encouragements: []string{
			"Surprises, whether good or challenging, often lead to growth and new perspectives.",
			"You have the resilience to adapt to unexpected situations. Take your time to process this.",
			"Remember that surprises are part of life's journey, and you can handle whatever comes your way.",
		},
		Remedies: []Remedy{
			{
				Kind:        KindJoke,
				Title:       "Surprise Joke",
				Description: "Why don't surprises ever get lost? Because they always know how to make an unexpected entrance! Life's surprises keep things interesting.",
				Duration:    "1 minute",
			},
			{
				Kind:        KindSong,
				Title:       "Uplifting Song: \"What a Wonderful World\" by Louis Armstrong",
				Description: "A reminder that even in surprising moments, there's beauty to be found in the world.",
				Duration:    "2 minutes",
			},
			{
				Kind:        KindSong,
				Title:       "Adaptability Song: \"Changes\" by David Bowie",
				Description: "\"Ch-ch-ch-changes\" - A song about embracing life's unexpected turns.",
				Duration:    "3 minutes",
			},
			{
				Kind:        KindBreathing,
				Title:       "Grounding Breath",
				Description: "Breathe deeply to center yourself after an unexpected event. In for 4, hold for 4, out for 4.",
				Duration:    "5 minutes",
			},
			{
				Kind:        KindMindfulness,
				Title:       "Present Moment Awareness",
				Description: "Focus on what you can observe right now to ground yourself in the present moment",
				Duration:    "10 minutes",
			},
		},
	},
	emotion.Trauma: {
		Validations: []string{
			"I recognize that you're dealing with something very difficult. Your courage in sharing this shows incredible strength.",
			"What you've experienced is significant, and your feelings are completely valid. I'm here to support you through this.",
			"Thank you for trusting me with this. Trauma can feel overwhelming, but you don't have to face it alone.",
		},
		Encouragements: []string{
			"Healing from trauma takes time, and it's okay to take it one step at a time. You are more resilient than you know.",
			"Recovery isn't linear, and that's perfectly normal. Every small step forward is a victory worth celebrating.",
			"You survived what happened to you, which shows your incredible inner strength. That same strength will help you heal.",
		},
		Remedies: []Remedy{
			{
				Kind:        KindJoke,
				Title:       "Healing Through Humor",
				Description: "Why did the trauma survivor go to therapy? Because they wanted to turn their pain into their superpower! Remember: healing doesn't mean forgetting - it means growing stronger.",
				Duration:    "1 minute",
			},
			{
				Kind:        KindJoke,
				Title:       "Gentle Smile",
				Description: "What do you call a person working through trauma? A warrior in training! Every therapy session, every moment of self-care, every breath you take is part of your training.",
				Duration:    "1 minute",
			},
			{
				Kind:        KindSong,
				Title:       "Healing Song: \"Stronger\" by Kelly Clarkson",
				Description: "\"What doesn't kill you makes you stronger, stand a little taller\" - Sometimes music can remind us of our resilience.",
				Duration:    "4 minutes",
			},
			{
				Kind:        KindSong,
				Title:       "Peaceful Song: \"Breathe Me\" by Sia",
				Description: "A gentle song about vulnerability and healing. Sometimes it's okay to feel small while you're rebuilding.",
				Duration:    "4 minutes",
			},
			{
				Kind:        KindSong,
				Title:       "Empowering Song: \"Rise Up\" by Andra Day",
				Description: "\"I'll rise up, I'll rise like the day\" - A powerful anthem for survivors finding their strength.",
				Duration:    "4 minutes",
			},
			{
				Kind:        KindBreathing,
				Title:       "Trauma-Informed Breathing",
				Description: "Breathe in safety for 4 counts, hold peace for 4 counts, breathe out tension for 6 counts. You are safe in this moment.",
				Duration:    "5 minutes",
			},
			{
				Kind:        KindGrounding,
				Title:       "5-4-3-2-1 Grounding Technique",
				Description: "Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, 1 you can taste. This brings you back to the present moment.",
				Duration:    "5 minutes",
			},
			{
				Kind:        KindSelfCare,
				Title:       "Gentle Self-Care",
				Description: "Wrap yourself in a soft blanket, make a warm drink, or take a gentle shower. Physical comfort can help soothe emotional pain.",
				Duration:    "15 minutes",
			},
		},
	},
	emotion.Neutral: {
		Validations: []string{
			"Thank you for sharing. How are you feeling in this moment?",
			"I'm here to listen and support you. What's on your mind today?",
			"It's perfectly okay to feel neutral or uncertain about your emotions.",
		},
		Encouragements: []string{
			"Sometimes taking a moment to check in with ourselves is exactly what we need.",
			"Neutral feelings can be a sign of balance. How can we build on this foundation?",
			"This is a good time to practice some self-care or mindfulness.",
		},
		Remedies: []Remedy{
			{
				Kind:        KindJoke,
				Title:       "Neutral Humor",
				Description: "Why did the neutral person become a referee? Because they're great at staying balanced! Sometimes a little laugh is all we need to shift our energy.",
				Duration:    "1 minute",
			},
			{
				Kind:        KindSong,
				Title:       "Peaceful Song: \"Weightless\" by Marconi Union",
				Description: "A scientifically designed ambient track to promote relaxation and calm focus.",
				Duration:    "8 minutes",
			},
			{
				Kind:        KindSong,
				Title:       "Motivating Song: \"Can't Stop the Feeling!\" by Justin Timberlake",
				Description: "An upbeat song to help shift from neutral into a more positive energy.",
				Duration:    "4 minutes",
			},
			{
				Kind:        KindMindfulness,
				Title:       "Body Scan",
				Description: "Slowly focus attention on each part of your body from head to toe",
				Duration:    "10 minutes",
			},
			{
				Kind:        KindActivity,
				Title:       "Intention Setting",
				Description: "Think about what you'd like to accomplish or focus on today",
				Duration:    "5 minutes",
			},
		},
	},
}
