package bank

import "careercompass/internal/model"

// defaultQuestions is the full catalog. All questions are answered on a
// 1-5 agreement scale.
var defaultQuestions = []model.Question{
	// RIASEC (101-106)
	{ID: 101, Text: "I enjoy working with tools, machines, or my hands.", Category: "realistic"},
	{ID: 102, Text: "I like investigating problems and figuring out how things work.", Category: "investigative"},
	{ID: 103, Text: "I am drawn to creative activities like design, writing, or music.", Category: "artistic"},
	{ID: 104, Text: "I enjoy helping, teaching, or counselling other people.", Category: "social"},
	{ID: 105, Text: "I like persuading others and taking the lead on projects.", Category: "enterprising"},
	{ID: 106, Text: "I prefer organized tasks with clear rules and defined outcomes.", Category: "conventional"},

	// Intelligence types (201-208)
	{ID: 201, Text: "I find it easy to express my thoughts in writing or speech.", Category: "linguistic"},
	{ID: 202, Text: "I enjoy puzzles, numbers, and logical reasoning.", Category: "logical"},
	{ID: 203, Text: "I can easily picture objects and spaces in my mind.", Category: "spatial"},
	{ID: 204, Text: "I learn best through movement and hands-on practice.", Category: "kinesthetic"},
	{ID: 205, Text: "I notice rhythm, melody, and patterns in sound.", Category: "musical"},
	{ID: 206, Text: "I understand other people's moods and motivations well.", Category: "interpersonal"},
	{ID: 207, Text: "I reflect on my own feelings and goals regularly.", Category: "intrapersonal"},
	{ID: 208, Text: "I am curious about nature, animals, and the environment.", Category: "naturalistic"},

	// Personality (301-310)
	{ID: 301, Text: "I feel energized after spending time with groups of people.", Category: "extraversion"},
	{ID: 302, Text: "I prefer a few deep friendships over many acquaintances.", Category: "introversion"},
	{ID: 303, Text: "I plan ahead rather than leaving things to the last minute.", Category: "conscientiousness"},
	{ID: 304, Text: "I stay calm under pressure and recover quickly from setbacks.", Category: "stability"},
	{ID: 305, Text: "I enjoy trying new approaches even when the old ones work.", Category: "openness"},
	{ID: 306, Text: "I put others' needs ahead of my own in team settings.", Category: "agreeableness"},
	{ID: 307, Text: "I double-check my work before calling it done.", Category: "conscientiousness"},
	{ID: 308, Text: "I speak up in meetings even when my view is unpopular.", Category: "assertiveness"},
	{ID: 309, Text: "I adapt quickly when plans change unexpectedly.", Category: "flexibility"},
	{ID: 310, Text: "I set ambitious goals for myself and track my progress.", Category: "drive"},

	// Workstyle (401-406)
	{ID: 401, Text: "I do my best work in a structured, predictable schedule.", Category: "structure"},
	{ID: 402, Text: "I prefer collaborating in a team over working alone.", Category: "collaboration"},
	{ID: 403, Text: "I am comfortable making decisions with incomplete information.", Category: "decision-making"},
	{ID: 404, Text: "I like switching between varied tasks during the day.", Category: "variety"},
	{ID: 405, Text: "Deadlines motivate me rather than stress me.", Category: "pace"},
	{ID: 406, Text: "I would trade a higher salary for more autonomy at work.", Category: "autonomy"},

	// Learning style (501-505)
	{ID: 501, Text: "I remember things better when I see diagrams or charts.", Category: "visual"},
	{ID: 502, Text: "I learn well from lectures, podcasts, and discussion.", Category: "auditory"},
	{ID: 503, Text: "I need to practice a skill myself before it sticks.", Category: "kinesthetic"},
	{ID: 504, Text: "I take detailed notes and revisit them when studying.", Category: "reading-writing"},
	{ID: 505, Text: "I learn fastest when taught by a mentor one-on-one.", Category: "social"},

	// Work values (601-606)
	{ID: 601, Text: "Job security matters more to me than rapid advancement.", Category: "security"},
	{ID: 602, Text: "I want my work to make a visible difference to society.", Category: "impact"},
	{ID: 603, Text: "Recognition for my achievements is important to me.", Category: "recognition"},
	{ID: 604, Text: "I value continuous learning over routine mastery.", Category: "growth"},
	{ID: 605, Text: "Work-life balance would win over a prestigious title.", Category: "balance"},
	{ID: 606, Text: "Earning potential is a primary factor in my career choice.", Category: "compensation"},

	// Aptitude self-assessment (701-708)
	{ID: 701, Text: "I can work through multi-step math problems without losing track.", Category: "numerical"},
	{ID: 702, Text: "I spot grammatical and logical errors in text quickly.", Category: "verbal"},
	{ID: 703, Text: "I can rotate and compare shapes mentally.", Category: "spatial"},
	{ID: 704, Text: "I notice small inconsistencies in data or documents.", Category: "attention"},
	{ID: 705, Text: "I pick up new software tools with little instruction.", Category: "technical"},
	{ID: 706, Text: "I can summarize a complex topic for a beginner.", Category: "communication"},
	{ID: 707, Text: "I estimate quantities and probabilities reasonably well.", Category: "numerical"},
	{ID: 708, Text: "I break large problems into smaller ordered steps.", Category: "analytical"},

	// Interests (801-806)
	{ID: 801, Text: "I follow developments in science and technology for fun.", Category: "technology"},
	{ID: 802, Text: "I enjoy reading about business, markets, or startups.", Category: "business"},
	{ID: 803, Text: "Health and medicine topics hold my attention.", Category: "healthcare"},
	{ID: 804, Text: "I am drawn to art, film, and cultural events.", Category: "arts"},
	{ID: 805, Text: "I care about law, policy, and current affairs.", Category: "public-affairs"},
	{ID: 806, Text: "I like teaching or explaining things to others in my free time.", Category: "education"},

	// Preferred environment (901-905)
	{ID: 901, Text: "I would thrive in a fast-paced startup environment.", Category: "startup"},
	{ID: 902, Text: "I prefer the stability of a large established organization.", Category: "corporate"},
	{ID: 903, Text: "Working outdoors or in the field appeals to me.", Category: "field"},
	{ID: 904, Text: "I want the option to work remotely most of the time.", Category: "remote"},
	{ID: 905, Text: "Frequent travel for work sounds exciting rather than tiring.", Category: "travel"},

	// Creativity (1001-1005)
	{ID: 1001, Text: "I generate many ideas before settling on one.", Category: "ideation"},
	{ID: 1002, Text: "I enjoy combining concepts from unrelated fields.", Category: "synthesis"},
	{ID: 1003, Text: "I sketch, write, or build things purely to experiment.", Category: "experimentation"},
	{ID: 1004, Text: "Constraints spark my creativity rather than limit it.", Category: "resourcefulness"},
	{ID: 1005, Text: "I often question why things are done the usual way.", Category: "curiosity"},
}
