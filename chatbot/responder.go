package chatbot

// Greeting opens every realtime chat session
const Greeting = "Hello! I'm here to support you. How are you feeling today?"

const defaultResponse = "I'm here to listen and support you. Can you tell me more about what you're experiencing?"

var responses = map[string]string{
	IntentStress:     "I understand you're feeling stressed. Here are some techniques that might help: 1) Deep breathing exercises, 2) Take a short walk, 3) Listen to calming music. Would you like to try any of these?",
	IntentAnxiety:    "Anxiety can be overwhelming. Try the 5-4-3-2-1 grounding technique: Name 5 things you see, 4 things you can touch, 3 things you hear, 2 things you smell, and 1 thing you taste.",
	IntentDepression: "I hear you're going through a difficult time. Remember, you're not alone. Would you like me to connect you with a professional counselor or share some helpline numbers?",
	IntentSleep:      "Good sleep is important for mental health. Try these tips: 1) Maintain a regular sleep schedule, 2) Avoid screens 1 hour before bed, 3) Create a relaxing bedtime routine, 4) Keep your bedroom cool and dark.",
	IntentEmergency:  "If you're in crisis or need immediate help, please contact these helplines immediately. Your safety is the priority. Would you like me to show you the helpline numbers?",
	IntentReferral:   "I can help you book an appointment with a professional counselor. They can provide personalized support. Would you like to see available time slots?",
	IntentGeneral:    defaultResponse,
}

// Respond returns the canned reply for intent. Unknown intents get the default reply.
func Respond(intent string) string {
	if msg, ok := responses[intent]; ok {
		return msg
	}
	return defaultResponse
}
