package lexicon

// Conversational phrase lists. Greeting/farewell detection is a substring
// check against the lowercased raw input, so multi-word phrases match too.

// GreetingPhrases trigger a session reset and a greeting reply.
var GreetingPhrases = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}

// FarewellPhrases end the session with a final summary.
var FarewellPhrases = []string{"exit", "quit", "bye", "goodbye", "see you", "thanks bye"}

// GreetingResponses is the fixed pool a greeting reply is sampled from.
var GreetingResponses = []string{
	"Hello! I'm here to help you explore career options. Tell me about your interests!",
	"Hi there! Let's discover which course might be perfect for you. What are you passionate about?",
	"Welcome! I can help guide you toward B.Tech, B.Sc, B.A, BBA, or B.Com. What subjects do you enjoy?",
}

// EarlyQuestions probe broad preferences during the first turns.
var EarlyQuestions = []string{
	"What subjects do you enjoy the most in school?",
	"Do you prefer working with technology, conducting experiments, or creative writing?",
	"Are you more interested in problem-solving, business strategies, or artistic expression?",
}

// MidQuestions narrow toward a concrete career picture.
var MidQuestions = []string{
	"What kind of career are you imagining for yourself?",
	"Do you see yourself working in a lab, office, creative studio, or tech company?",
	"Would you rather lead a team, build things hands-on, or study something deeply?",
}

// FollowUpQuestions is the general pool sampled once the fixed per-stage
// schedule is exhausted.
var FollowUpQuestions = []string{
	"What subjects do you enjoy the most in school?",
	"Do you prefer working with technology, conducting experiments, or creative writing?",
	"Are you more interested in problem-solving, business strategies, or artistic expression?",
	"What kind of career are you imagining for yourself?",
	"Do you see yourself working in a lab, office, creative studio, or tech company?",
}
