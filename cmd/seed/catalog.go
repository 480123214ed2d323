package main

import "picklrzone/internal/domain/entity"

var sampleCourses = []entity.Course{
	{
		Title:            "Mastering the Third Shot Drop",
		ShortDescription: "The most important shot in pickleball. Learn to control the kitchen line.",
		Description:      `The third shot drop is arguably the most critical shot in pickleball. It's the shot that transitions your team from defense to offense.

In this comprehensive course, I break down every aspect of the third shot drop:
- Proper grip and paddle angle
- Weight transfer and follow-through
- Reading your opponent's position
- When to drop vs drive
- Drills you can practice alone or with a partner

By the end of this course, you'll have a reliable third shot drop that keeps your opponents guessing.`,
		Price:            49.99,
		ThumbnailURL:     "https://images.unsplash.com/photo-1554068865-24cecd4e34b8?w=400&h=225&fit=crop",
		IntroVideoURL:    "https://www.youtube.com/watch?v=GM_Gx_iUbMg",
		Category:         "Third Shot Drop",
		Level:            "intermediate",
		VendorID:         "vendor-ben-johns",
		VendorName:       "Ben Johns",
		VendorLocation:   "Austin, TX",
		AverageRating:    4.8,
		TotalReviews:     3,
		TotalStudents:    142,
		Lessons: []entity.Lesson{
			{Title: "Why the Third Shot Drop Matters", Description: "Understanding the strategic importance of the third shot", VideoURL: "https://www.youtube.com/watch?v=GM_Gx_iUbMg", Duration: 12, Order: 1},
			{Title: "Grip and Paddle Position", Description: "Setting up the continental grip for the perfect drop", VideoURL: "https://www.youtube.com/watch?v=q_5zPCZ2MSY", Duration: 15, Order: 2},
			{Title: "The Drop Motion", Description: "Step-by-step breakdown of the swing path", VideoURL: "https://www.youtube.com/watch?v=fTODGsLGZEo", Duration: 20, Order: 3},
			{Title: "Reading the Court", Description: "When to drop vs. when to drive", VideoURL: "https://www.youtube.com/watch?v=CZwpaFT5UEg", Duration: 18, Order: 4},
			{Title: "Practice Drills", Description: "Solo and partner drills to master your drop", VideoURL: "https://www.youtube.com/watch?v=wm7VjIMbJoM", Duration: 25, Order: 5},
		},
	},
	{
		Title:            "Pickleball Fundamentals: Zero to Hero",
		ShortDescription: "Complete beginner course. Learn rules, grips, serves, and basic strategy.",
		Description:      `Never picked up a paddle before? This is the course for you!

I'll take you from absolute zero to confidently playing recreational games. We cover:
- Rules and scoring
- Choosing your paddle
- The continental grip
- Serving basics
- Returning serves
- Dinking fundamentals
- Basic doubles positioning

No prior experience needed. Just bring your enthusiasm!`,
		Price:            29.99,
		ThumbnailURL:     "https://images.unsplash.com/photo-1587280501635-68a0e82cd5ff?w=400&h=225&fit=crop",
		IntroVideoURL:    "https://www.youtube.com/watch?v=fTODGsLGZEo",
		Category:         "Fundamentals",
		Level:            "beginner",
		VendorID:         "vendor-anna-leigh",
		VendorName:       "Anna Leigh Waters",
		VendorLocation:   "Orlando, FL",
		AverageRating:    4.9,
		TotalReviews:     2,
		TotalStudents:    318,
		Lessons: []entity.Lesson{
			{Title: "Welcome to Pickleball!", Description: "History and why it's the fastest growing sport", VideoURL: "https://www.youtube.com/watch?v=fTODGsLGZEo", Duration: 8, Order: 1},
			{Title: "Rules & Scoring", Description: "Everything you need to know about pickleball rules", VideoURL: "https://www.youtube.com/watch?v=wm7VjIMbJoM", Duration: 15, Order: 2},
			{Title: "Choosing Your Paddle", Description: "What to look for in your first paddle", VideoURL: "https://www.youtube.com/watch?v=CZwpaFT5UEg", Duration: 10, Order: 3},
			{Title: "The Continental Grip", Description: "The foundation grip for every shot", VideoURL: "https://www.youtube.com/watch?v=eNg-KX7VBbM", Duration: 12, Order: 4},
			{Title: "Serving 101", Description: "Legal serves and smart placement", VideoURL: "https://www.youtube.com/watch?v=Kq5_E0FntzM", Duration: 18, Order: 5},
			{Title: "The Return of Serve", Description: "Getting into the right position", VideoURL: "https://www.youtube.com/watch?v=q_5zPCZ2MSY", Duration: 14, Order: 6},
			{Title: "Dinking Basics", Description: "Introduction to the soft game", VideoURL: "https://www.youtube.com/watch?v=xNHSFjjkfHo", Duration: 20, Order: 7},
			{Title: "Doubles Positioning", Description: "Where to stand and why", VideoURL: "https://www.youtube.com/watch?v=oyB5Hih3_8o", Duration: 16, Order: 8},
		},
	},
	{
		Title:            "Killer Serve Masterclass",
		ShortDescription: "Develop 5 different serves that keep opponents off balance every game.",
		Description:      `Your serve is the one shot where you have 100% control. Make it count!

In this masterclass, you'll learn 5 serve variations:
1. The Deep Power Serve
2. The Lob Serve
3. The Spin Serve (topspin & sidespin)
4. The Body Serve
5. The Short Angle Serve

For each serve, you'll learn the exact mechanics, when to use it, and how to practice it.`,
		Price:            39.99,
		ThumbnailURL:     "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=400&h=225&fit=crop",
		IntroVideoURL:    "https://www.youtube.com/watch?v=eNg-KX7VBbM",
		Category:         "Serving",
		Level:            "intermediate",
		VendorID:         "vendor-tyson-mcguffin",
		VendorName:       "Tyson McGuffin",
		VendorLocation:   "Seattle, WA",
		AverageRating:    4.6,
		TotalReviews:     2,
		TotalStudents:    89,
		Lessons: []entity.Lesson{
			{Title: "Serve Fundamentals Review", Description: "Perfect your base serve first", VideoURL: "https://www.youtube.com/watch?v=eNg-KX7VBbM", Duration: 14, Order: 1},
			{Title: "The Deep Power Serve", Description: "Push opponents behind the baseline", VideoURL: "https://www.youtube.com/watch?v=Kq5_E0FntzM", Duration: 18, Order: 2},
			{Title: "The Lob Serve", Description: "High arc, deep placement strategy", VideoURL: "https://www.youtube.com/watch?v=fTODGsLGZEo", Duration: 15, Order: 3},
			{Title: "Spin Serves", Description: "Topspin and sidespin variations", VideoURL: "https://www.youtube.com/watch?v=GM_Gx_iUbMg", Duration: 22, Order: 4},
			{Title: "The Body Serve & Short Angle", Description: "Target the opponent directly", VideoURL: "https://www.youtube.com/watch?v=q_5zPCZ2MSY", Duration: 16, Order: 5},
			{Title: "Serve Sequencing Strategy", Description: "Game-planning your serves for maximum effect", VideoURL: "https://www.youtube.com/watch?v=CZwpaFT5UEg", Duration: 20, Order: 6},
		},
	},
	{
		Title:            "The Art of Dinking",
		ShortDescription: "Master the soft game. Win points with patience, touch, and placement.",
		Description:      `Pickleball is a game of patience, and nowhere is that more true than at the kitchen line.

This course will transform your dinking game:
- Cross-court dinks with perfect placement
- Inside-out dinks to move opponents
- Reset dinks when you're in trouble
- Speed-up attacks from the dink
- Reading your opponent's body language

The soft game separates 3.5 players from 4.5+ players.`,
		Price:            44.99,
		ThumbnailURL:     "https://images.unsplash.com/photo-1560012057-4372e14c5085?w=400&h=225&fit=crop",
		IntroVideoURL:    "https://www.youtube.com/watch?v=xNHSFjjkfHo",
		Category:         "Dinking",
		Level:            "advanced",
		VendorID:         "vendor-simone-jardim",
		VendorName:       "Simone Jardim",
		VendorLocation:   "Naples, FL",
		AverageRating:    4.7,
		TotalReviews:     2,
		TotalStudents:    67,
		Lessons: []entity.Lesson{
			{Title: "The Dinking Mindset", Description: "Patience wins points at the kitchen", VideoURL: "https://www.youtube.com/watch?v=xNHSFjjkfHo", Duration: 10, Order: 1},
			{Title: "Cross-Court Dinks", Description: "The bread and butter of soft play", VideoURL: "https://www.youtube.com/watch?v=PfMm45VdUgo", Duration: 18, Order: 2},
			{Title: "Inside-Out Dinks", Description: "Move your opponent around the court", VideoURL: "https://www.youtube.com/watch?v=fTODGsLGZEo", Duration: 16, Order: 3},
			{Title: "Reset Dinks", Description: "Surviving the firefight and regaining control", VideoURL: "https://www.youtube.com/watch?v=GM_Gx_iUbMg", Duration: 20, Order: 4},
			{Title: "Speed-Up Attacks", Description: "When to pull the trigger from the dink", VideoURL: "https://www.youtube.com/watch?v=CZwpaFT5UEg", Duration: 22, Order: 5},
			{Title: "Reading Opponents", Description: "Body language tells all at the kitchen line", VideoURL: "https://www.youtube.com/watch?v=oyB5Hih3_8o", Duration: 15, Order: 6},
		},
	},
	{
		Title:            "Doubles Strategy Blueprint",
		ShortDescription: "Dominate doubles with pro-level positioning, stacking, and communication.",
		Description:      `Doubles is where pickleball really shines, and strategy is everything.

This blueprint covers:
- Ideal court positioning
- Stacking: when and how to use it
- Poaching and fake poaching
- Communication systems with your partner
- How to handle lobbers

Whether you're playing rec or tournaments, these strategies give you a massive edge.`,
		Price:            54.99,
		ThumbnailURL:     "https://images.unsplash.com/photo-1544298621-a23b9e325012?w=400&h=225&fit=crop",
		IntroVideoURL:    "https://www.youtube.com/watch?v=oyB5Hih3_8o",
		Category:         "Doubles",
		Level:            "all-levels",
		VendorID:         "vendor-ben-johns",
		VendorName:       "Ben Johns",
		VendorLocation:   "Austin, TX",
		AverageRating:    4.5,
		TotalReviews:     2,
		TotalStudents:    203,
		Lessons: []entity.Lesson{
			{Title: "Doubles Fundamentals", Description: "Court positioning basics", VideoURL: "https://www.youtube.com/watch?v=oyB5Hih3_8o", Duration: 14, Order: 1},
			{Title: "The Serve & Return Phase", Description: "Setting up the point correctly", VideoURL: "https://www.youtube.com/watch?v=eNg-KX7VBbM", Duration: 18, Order: 2},
			{Title: "Transitioning to the Net", Description: "Moving up together as a team", VideoURL: "https://www.youtube.com/watch?v=GM_Gx_iUbMg", Duration: 16, Order: 3},
			{Title: "Stacking Explained", Description: "Optimize your team's strengths", VideoURL: "https://www.youtube.com/watch?v=MjX5RO85JOg", Duration: 22, Order: 4},
			{Title: "Poaching & Faking", Description: "Aggressive net play tactics", VideoURL: "https://www.youtube.com/watch?v=q_5zPCZ2MSY", Duration: 18, Order: 5},
			{Title: "Communication Systems", Description: "Talk your way to wins", VideoURL: "https://www.youtube.com/watch?v=CZwpaFT5UEg", Duration: 12, Order: 6},
			{Title: "Advanced Situational Play", Description: "Handling lobs, drives, and resets", VideoURL: "https://www.youtube.com/watch?v=xNHSFjjkfHo", Duration: 20, Order: 7},
		},
	},
	{
		Title:            "Pickleball Fitness & Injury Prevention",
		ShortDescription: "Stay on the court longer. Workouts, stretches, and recovery for players.",
		Description:      `The best ability is availability. This course keeps you healthy and performing at your peak.

Designed specifically for pickleball players, covering:
- Dynamic warm-up routines
- Lateral agility drills
- Core strength for stability
- Shoulder and elbow injury prevention
- Recovery stretches and foam rolling

Every exercise is demonstrated with modifications. No gym required.`,
		Price:            0,
		ThumbnailURL:     "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=400&h=225&fit=crop",
		IntroVideoURL:    "https://www.youtube.com/watch?v=wm7VjIMbJoM",
		Category:         "Fitness & Conditioning",
		Level:            "all-levels",
		VendorID:         "vendor-anna-leigh",
		VendorName:       "Anna Leigh Waters",
		VendorLocation:   "Orlando, FL",
		AverageRating:    4.4,
		TotalReviews:     1,
		TotalStudents:    455,
		Lessons: []entity.Lesson{
			{Title: "Dynamic Warm-Up Routine", Description: "10 minutes before every game", VideoURL: "https://www.youtube.com/watch?v=wm7VjIMbJoM", Duration: 12, Order: 1},
			{Title: "Lateral Agility Drills", Description: "Quick feet win rallies", VideoURL: "https://www.youtube.com/watch?v=fTODGsLGZEo", Duration: 18, Order: 2},
			{Title: "Core Strength Program", Description: "Stability and power for every shot", VideoURL: "https://www.youtube.com/watch?v=CZwpaFT5UEg", Duration: 22, Order: 3},
			{Title: "Injury Prevention", Description: "Protecting shoulders, elbows, and knees", VideoURL: "https://www.youtube.com/watch?v=eNg-KX7VBbM", Duration: 16, Order: 4},
			{Title: "Post-Game Recovery", Description: "Stretches and foam rolling routines", VideoURL: "https://www.youtube.com/watch?v=GM_Gx_iUbMg", Duration: 14, Order: 5},
		},
	},
}

type sampleReview struct {
	course   int
	userID   string
	userName string
	rating   int
	text     string
}

var sampleReviews = []sampleReview{
	{0, "student-mike", "Mike Chen", 5, "Game changer! My third shot drop went from 20% consistency to over 70% in just two weeks."},
	{0, "student-sarah", "Sarah Kim", 5, "Even as a newer player, I could follow along. The drills section alone is worth the price."},
	{0, "student-james", "James Rodriguez", 4, "Great content overall. Coming from tennis, this course helped me unlearn some habits."},
	{1, "student-sarah", "Sarah Kim", 5, "PERFECT for beginners! I went from never holding a paddle to playing full games in a week."},
	{1, "student-mike", "Mike Chen", 5, "Bought this for my wife who just started. She loved it and now we play doubles every weekend!"},
	{2, "student-james", "James Rodriguez", 5, "The spin serve section is incredible. My opponents have no idea what's coming anymore."},
	{2, "student-mike", "Mike Chen", 4, "Solid course. The serve sequencing strategy was eye-opening."},
	{3, "student-mike", "Mike Chen", 5, "Simone is the queen of the soft game and it shows. My dinking has improved dramatically."},
	{3, "student-james", "James Rodriguez", 4, "Really helped me slow down my game. Dinking wins at higher levels."},
	{4, "student-sarah", "Sarah Kim", 5, "The stacking explanation finally clicked! We won our local tournament after this."},
	{4, "student-james", "James Rodriguez", 4, "Good strategic content. The communication systems section was very helpful."},
	{5, "student-mike", "Mike Chen", 4, "The warm-up routine alone has helped my knees feel better. Great free resource!"},
}
