package catalog

import "MoodFM/model"

var builtinMoods = []model.MoodCategory{
	{
		Name:        model.MoodHappy,
		Keywords:    []string{"happy", "joyful", "cheerful", "excited", "positive"},
		Description: "Uplifting songs to boost your mood",
	},
	{
		Name:        model.MoodSad,
		Keywords:    []string{"sad", "melancholic", "emotional", "heartbroken", "reflective"},
		Description: "Emotional songs for when you need to let it out",
	},
	{
		Name:        model.MoodCalm,
		Keywords:    []string{"calm", "peaceful", "relaxing", "chill", "serene"},
		Description: "Soothing songs to help you unwind",
	},
	{
		Name:        model.MoodEnergetic,
		Keywords:    []string{"energetic", "intense", "motivated", "pumped", "powerful"},
		Description: "High-energy songs to get you moving",
	},
}

var builtinSongs = []model.Song{
	// Happy
	{ID: 1, Title: "Happy Together", Artist: "The Turtles", Mood: model.MoodHappy, Genre: "Pop", Tempo: "upbeat", Duration: "2:55"},
	{ID: 2, Title: "Walking on Sunshine", Artist: "Katrina and The Waves", Mood: model.MoodHappy, Genre: "Pop", Tempo: "upbeat", Duration: "3:58"},
	{ID: 3, Title: "Good Vibrations", Artist: "The Beach Boys", Mood: model.MoodHappy, Genre: "Rock", Tempo: "upbeat", Duration: "3:36"},
	{ID: 4, Title: "Don't Stop Me Now", Artist: "Queen", Mood: model.MoodHappy, Genre: "Rock", Tempo: "upbeat", Duration: "3:29"},
	{ID: 5, Title: "Uptown Funk", Artist: "Mark Ronson ft. Bruno Mars", Mood: model.MoodHappy, Genre: "Funk", Tempo: "upbeat", Duration: "4:30"},

	// Sad
	{ID: 6, Title: "Someone Like You", Artist: "Adele", Mood: model.MoodSad, Genre: "Pop", Tempo: "slow", Duration: "4:45"},
	{ID: 7, Title: "The Night We Met", Artist: "Lord Huron", Mood: model.MoodSad, Genre: "Indie", Tempo: "slow", Duration: "3:28"},
	{ID: 8, Title: "Fix You", Artist: "Coldplay", Mood: model.MoodSad, Genre: "Alternative", Tempo: "slow", Duration: "4:54"},
	{ID: 9, Title: "Hurt", Artist: "Johnny Cash", Mood: model.MoodSad, Genre: "Country", Tempo: "slow", Duration: "3:38"},
	{ID: 10, Title: "All I Want", Artist: "Kodaline", Mood: model.MoodSad, Genre: "Indie", Tempo: "slow", Duration: "5:06"},

	// Calm
	{ID: 11, Title: "Weightless", Artist: "Marconi Union", Mood: model.MoodCalm, Genre: "Ambient", Tempo: "slow", Duration: "8:10"},
	{ID: 12, Title: "River Flows in You", Artist: "Yiruma", Mood: model.MoodCalm, Genre: "Classical", Tempo: "moderate", Duration: "3:40"},
	{ID: 13, Title: "Clair de Lune", Artist: "Claude Debussy", Mood: model.MoodCalm, Genre: "Classical", Tempo: "slow", Duration: "5:00"},
	{ID: 14, Title: "Electra", Artist: "Airstream", Mood: model.MoodCalm, Genre: "Ambient", Tempo: "slow", Duration: "4:47"},
	{ID: 15, Title: "Sunset", Artist: "Café del Mar", Mood: model.MoodCalm, Genre: "Chillout", Tempo: "slow", Duration: "6:20"},

	// Energetic
	{ID: 16, Title: "Eye of the Tiger", Artist: "Survivor", Mood: model.MoodEnergetic, Genre: "Rock", Tempo: "fast", Duration: "4:04"},
	{ID: 17, Title: "Thunder", Artist: "Imagine Dragons", Mood: model.MoodEnergetic, Genre: "Pop Rock", Tempo: "fast", Duration: "3:07"},
	{ID: 18, Title: "Titanium", Artist: "David Guetta ft. Sia", Mood: model.MoodEnergetic, Genre: "EDM", Tempo: "fast", Duration: "4:05"},
	{ID: 19, Title: "Stronger", Artist: "Kanye West", Mood: model.MoodEnergetic, Genre: "Hip Hop", Tempo: "fast", Duration: "5:12"},
	{ID: 20, Title: "Can't Hold Us", Artist: "Macklemore & Ryan Lewis", Mood: model.MoodEnergetic, Genre: "Hip Hop", Tempo: "fast", Duration: "4:18"},
}

// Default returns the catalog the service ships with.
func Default() *Catalog {
	c, err := New(builtinMoods, builtinSongs)
	if err != nil {
		panic("catalog: invalid built-in catalog: " + err.Error())
	}
	return c
}
