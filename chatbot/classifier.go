// Package chatbot holds the rule based support chatbot: a keyword intent classifier, the
// canned response table and the conversation service that records every exchange.
package chatbot

import "strings"

// Intents
const (
	IntentEmergency  = "emergency"
	IntentReferral   = "referral"
	IntentAnxiety    = "anxiety"
	IntentDepression = "depression"
	IntentStress     = "stress"
	IntentSleep      = "sleep"
	IntentGeneral    = "general"
)

// Sentiments
const (
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Classification is the outcome of classifying a single message
type Classification struct {
	Intent    string `json:"intent"`
	Sentiment string `json:"sentiment"`
}

type rule struct {
	intent    string
	sentiment string
	keywords  []string
}

// rules are checked in order and the first hit wins, so emergency must stay first
var rules = []rule{
	{IntentEmergency, SentimentNegative, []string{"suicide", "kill myself", "end it", "crisis", "emergency", "hurt myself"}},
	{IntentReferral, SentimentNeutral, []string{"counselor", "therapist", "appointment", "professional", "help"}},
	{IntentAnxiety, SentimentNegative, []string{"anxiety", "anxious", "worry", "nervous", "panic", "fear"}},
	{IntentDepression, SentimentNegative, []string{"depressed", "sad", "hopeless", "worthless", "empty"}},
	{IntentStress, SentimentNegative, []string{"stress", "stressed", "pressure", "overwhelmed", "burden"}},
	{IntentSleep, SentimentNeutral, []string{"sleep", "insomnia", "tired", "exhausted", "rest"}},
}

// Classify maps a message to an intent by plain substring matching on the lower cased
// text. Keywords match inside longer words too ("stressful" is stress, "helpless" is
// referral). Messages that match nothing are general and neutral.
func Classify(message string) Classification {
	text := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return Classification{Intent: r.intent, Sentiment: r.sentiment}
			}
		}
	}
	return Classification{Intent: IntentGeneral, Sentiment: SentimentNeutral}
}
